// Package color provides the 8-bit display encoding for rainbow frames.
//
// The core keeps channels as normalized float64 values; displays consume
// 8-bit RGBA. This package is the single place where that quantization
// happens so that snapshots, images and texture uploads agree bit for bit.
package color

// ColorF64 represents a color with float64 components in [0,1].
type ColorF64 struct {
	R, G, B, A float64
}

// ColorU8 represents a color with uint8 components in [0,255].
type ColorU8 struct {
	R, G, B, A uint8
}

// BytesPerPixel is the size of one encoded RGBA8 pixel.
const BytesPerPixel = 4
