package rainbow

// Policy decides the color written for each pixel of a solid primitive.
type Policy interface {
	// Paint recolors the pixel at (x, y) in b.
	Paint(b *Buffer, x, y int) error
}

// PolicyFunc adapts an ordinary function to the Policy interface.
type PolicyFunc func(b *Buffer, x, y int) error

// Paint calls f(b, x, y).
func (f PolicyFunc) Paint(b *Buffer, x, y int) error {
	return f(b, x, y)
}

// RainbowPolicy is the color-cycling rule for solid primitives.
//
// Every time a pixel is painted its hue advances by Step degrees and its
// saturation and value snap to a vivid setting. Once the hue has gone past
// Threshold it resets to 0, keeping whatever saturation and value the pixel
// had. There is no counter anywhere: the pixel's current color is the state,
// so overlapping strokes keep cycling through the spectrum.
//
// Achromatic pixels (white background, grays, black) have an undefined hue
// that counts as -1°, so the first stroke over the background lands on
// Step-1 degrees.
type RainbowPolicy struct {
	Step       float64 // hue advance per paint, in degrees
	Saturation float64 // saturation written by an advance
	Value      float64 // value written by an advance
	Threshold  float64 // largest hue that still advances
}

// DefaultRainbow returns the rainbow rule: +20° per paint at 0.95
// saturation and value, resetting past 340°.
func DefaultRainbow() RainbowPolicy {
	return RainbowPolicy{
		Step:       20,
		Saturation: 0.95,
		Value:      0.95,
		Threshold:  340,
	}
}

// Next returns the color that replaces c.
//
// The advanced hue is not folded back into [0,360): a pixel at exactly
// Threshold+Step = 360° falls through to the last row of the HSV table and
// comes out magenta (300°), so once a pixel has reset it keeps cycling
// 300°, 320°, 340°.
func (p RainbowPolicy) Next(c RGBA) RGBA {
	hsv := RGBToHSV(c)
	if hsv.H <= p.Threshold {
		return HSVToRGBA(hsv.H+p.Step, p.Saturation, p.Value, c.A)
	}
	return HSVToRGBA(0, hsv.S, hsv.V, c.A)
}

// Paint reads the pixel at (x, y), applies Next and writes the result back.
func (p RainbowPolicy) Paint(b *Buffer, x, y int) error {
	c, err := b.At(x, y)
	if err != nil {
		return err
	}
	return b.Set(x, y, p.Next(c))
}

// DarkPoint darkens the pixel at (x, y) toward black in proportion to the
// coverage weight, the ink rule of anti-aliased lines. Coverage 1 turns the
// pixel black; coverage 0 leaves it untouched.
func DarkPoint(b *Buffer, x, y int, coverage float64) error {
	c, err := b.At(x, y)
	if err != nil {
		return err
	}
	return b.Set(x, y, c.Darken(coverage))
}
