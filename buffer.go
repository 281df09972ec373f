package rainbow

import (
	"fmt"
	"image"

	icolor "github.com/gogpu/rainbow/internal/color"
)

// Reference buffer dimensions.
const (
	DefaultWidth  = 512
	DefaultHeight = 512
)

// MaxBufferCells bounds width*height. At 32 bytes per cell it keeps a buffer
// under 8 GiB.
const MaxBufferCells = 1 << 28

// Buffer is a fixed-size grid of RGBA colors with normalized float channels.
//
// Every coordinate access is bounds-checked; an access outside the grid
// returns a *RangeError and never touches memory of a neighbouring row.
// Buffer is not safe for concurrent use; Canvas serializes access to the
// buffer it owns.
type Buffer struct {
	width      int
	height     int
	pix        []RGBA // row-major, width*height entries
	background RGBA
	version    uint64
}

// NewBuffer creates a width x height buffer filled with the background color.
// Non-positive dimensions and sizes above MaxBufferCells fail with
// ErrInvalidSize.
func NewBuffer(width, height int, background RGBA) (*Buffer, error) {
	if width <= 0 || height <= 0 || width > MaxBufferCells/height {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	b := &Buffer{
		width:      width,
		height:     height,
		pix:        make([]RGBA, width*height),
		background: background,
	}
	b.Clear()
	return b, nil
}

// Width returns the width of the buffer.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the height of the buffer.
func (b *Buffer) Height() int {
	return b.height
}

// Bounds returns the rectangle covered by the buffer.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Background returns the color used by Clear.
func (b *Buffer) Background() RGBA {
	return b.background
}

// InBounds reports whether (x, y) addresses a cell of the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the color at (x, y).
func (b *Buffer) At(x, y int) (RGBA, error) {
	if !b.InBounds(x, y) {
		return RGBA{}, b.rangeError(x, y)
	}
	return b.pix[y*b.width+x], nil
}

// Set stores c at (x, y).
func (b *Buffer) Set(x, y int, c RGBA) error {
	if !b.InBounds(x, y) {
		return b.rangeError(x, y)
	}
	b.pix[y*b.width+x] = c
	return nil
}

// Clear resets every cell to the background color.
func (b *Buffer) Clear() {
	for i := range b.pix {
		b.pix[i] = b.background
	}
}

// Commit marks the current contents as ready for display and returns the
// new version. Versions start at 0 and increase by one per commit.
func (b *Buffer) Commit() uint64 {
	b.version++
	return b.version
}

// Version returns the number of commits so far.
func (b *Buffer) Version() uint64 {
	return b.version
}

// Snapshot encodes the current contents as an RGBA8 frame.
// The frame is a copy and stays valid after further drawing.
func (b *Buffer) Snapshot() *Frame {
	f := &Frame{
		Width:   b.width,
		Height:  b.height,
		Version: b.version,
		Pix:     make([]byte, len(b.pix)*icolor.BytesPerPixel),
	}
	for i, c := range b.pix {
		icolor.PutRGBA8(f.Pix[i*icolor.BytesPerPixel:], icolor.ColorF64(c))
	}
	return f
}

// clamp returns the buffer cell nearest to (x, y).
func (b *Buffer) clamp(x, y int) (int, int) {
	return min(max(x, 0), b.width-1), min(max(y, 0), b.height-1)
}

func (b *Buffer) rangeError(x, y int) error {
	return &RangeError{X: x, Y: y, Width: b.width, Height: b.height}
}
