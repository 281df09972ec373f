package rainbow

import "math"

// UndefinedHue is the hue reported for achromatic colors (black, white and
// grays), where every hue maps to the same RGB value.
const UndefinedHue = -1.0

// hsvEpsilon bounds the approximate comparisons in RGBToHSV. It matches the
// tolerance of a single-precision approximate-equality test, so channels
// that differ only by rounding noise are treated as equal.
const hsvEpsilon = 1e-6

// HSV is a color in the hue/saturation/value model.
// H is in degrees [0, 360) or UndefinedHue; S and V are in [0, 1].
type HSV struct {
	H, S, V float64
}

// Defined reports whether the hue carries information.
func (c HSV) Defined() bool {
	return c.H >= 0
}

// RGB converts c to an opaque RGB color.
func (c HSV) RGB() RGBA {
	return HSVToRGB(c.H, c.S, c.V)
}

// HSVToRGB converts hue, saturation and value to an opaque RGB color.
// See HSVToRGBA.
func HSVToRGB(h, s, v float64) RGBA {
	return HSVToRGBA(h, s, v, 1)
}

// HSVToRGBA converts hue, saturation and value to RGB with the given alpha.
//
// With s == 0 the result is the gray (v, v, v) and h is ignored. Otherwise
// the hue circle is split into six 60° sectors; h is expected to be
// normalized into [0, 360) by the caller, and any sector index past 4 takes
// the last (magenta to red) row.
func HSVToRGBA(h, s, v, a float64) RGBA {
	if s == 0 {
		return RGBA{R: v, G: v, B: v, A: a}
	}

	sector := h / 60
	i := math.Floor(sector)
	f := sector - i

	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch int(i) {
	case 0:
		return RGBA{R: v, G: t, B: p, A: a}
	case 1:
		return RGBA{R: q, G: v, B: p, A: a}
	case 2:
		return RGBA{R: p, G: v, B: t, A: a}
	case 3:
		return RGBA{R: p, G: q, B: v, A: a}
	case 4:
		return RGBA{R: t, G: p, B: v, A: a}
	default:
		return RGBA{R: v, G: p, B: q, A: a}
	}
}

// RGBToHSV converts an RGB color to hue, saturation and value.
//
// Black and grays return S == 0 and H == UndefinedHue. The hue branch is
// chosen by the channel holding the maximum, checking red, then green, then
// blue, so ties resolve the same way as a direct equality test would. The
// function never divides by zero.
func RGBToHSV(c RGBA) HSV {
	lo := min(c.R, c.G, c.B)
	hi := max(c.R, c.G, c.B)
	delta := hi - lo

	if approximately(hi, 0) {
		return HSV{H: UndefinedHue, S: 0, V: hi}
	}
	if approximately(lo, hi) {
		return HSV{H: UndefinedHue, S: 0, V: hi}
	}

	var h float64
	switch hi {
	case c.R:
		h = (c.G - c.B) / delta // between yellow and magenta
	case c.G:
		h = 2 + (c.B-c.R)/delta // between cyan and yellow
	default:
		h = 4 + (c.R-c.G)/delta // between magenta and cyan
	}

	h *= 60
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h -= 360
	}
	return HSV{H: h, S: delta / hi, V: hi}
}

// approximately reports whether a and b are equal within hsvEpsilon,
// relative to their magnitude.
func approximately(a, b float64) bool {
	return math.Abs(b-a) < max(hsvEpsilon*max(math.Abs(a), math.Abs(b)), hsvEpsilon)
}
