package rainbow

import (
	"image/color"

	icolor "github.com/gogpu/rainbow/internal/color"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Alpha is carried along for the
// display but no drawing rule reads it.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGB8 creates an opaque color from 8-bit RGB components.
func RGB8(r, g, b uint8) RGBA {
	return RGBA(icolor.U8ToF64(icolor.ColorU8{R: r, G: g, B: b, A: 255}))
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	u := icolor.F64ToU8(icolor.ColorF64(c))
	return color.NRGBA{R: u.R, G: u.G, B: u.B, A: u.A}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
		A: float64(n.A) / 0xffff,
	}
}

// Darken scales the RGB channels by 1-coverage, keeping alpha.
// Coverage is clamped to [0, 1]: 1 yields black, 0 leaves c unchanged.
func (c RGBA) Darken(coverage float64) RGBA {
	k := 1 - clamp01(coverage)
	return RGBA{R: c.R * k, G: c.G * k, B: c.B * k, A: c.A}
}

// HSV converts c to hue, saturation and value. See RGBToHSV.
func (c RGBA) HSV() HSV {
	return RGBToHSV(c)
}

func clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors
var (
	Black = RGB(0, 0, 0)
	White = RGB(1, 1, 1)
	Red   = RGB(1, 0, 0)
	Green = RGB(0, 1, 0)
	Blue  = RGB(0, 0, 1)
	Gray  = RGB(0.5, 0.5, 0.5)
)
