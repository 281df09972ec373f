package color

// U8ToF64 converts ColorU8 to ColorF64.
// Each uint8 component [0,255] is mapped to float64 [0,1].
func U8ToF64(c ColorU8) ColorF64 {
	return ColorF64{
		R: Expand(c.R),
		G: Expand(c.G),
		B: Expand(c.B),
		A: Expand(c.A),
	}
}

// F64ToU8 converts ColorF64 to ColorU8.
// Each float64 component [0,1] is mapped to uint8 [0,255] with rounding.
func F64ToU8(c ColorF64) ColorU8 {
	return ColorU8{
		R: Quantize(c.R),
		G: Quantize(c.G),
		B: Quantize(c.B),
		A: Quantize(c.A),
	}
}

// Expand maps an 8-bit channel to [0,1].
func Expand(v uint8) float64 {
	return float64(v) / 255.0
}

// Quantize clamps a channel to [0,1] and converts it to uint8 with rounding.
// NaN maps to 0.
func Quantize(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}

// PutRGBA8 encodes c into dst[0:4]. dst must hold at least BytesPerPixel bytes.
func PutRGBA8(dst []byte, c ColorF64) {
	_ = dst[3]
	dst[0] = Quantize(c.R)
	dst[1] = Quantize(c.G)
	dst[2] = Quantize(c.B)
	dst[3] = Quantize(c.A)
}
