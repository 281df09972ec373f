// Package raster provides integer scan conversion for pixel primitives.
//
// The algorithms enumerate the integer pixel coordinates that approximate a
// geometric primitive and hand each one to a sink:
//
//   - [Line] and [LineSwapless]: Bresenham's integer line algorithm in its
//     two classic formulations. Both visit the identical pixel set.
//   - [WuLine]: Xiaolin Wu's anti-aliased line, producing coverage samples.
//   - [Circle]: the midpoint circle algorithm with 8-way octant symmetry.
//
// Solid primitives report pixels to a [Plotter]; anti-aliased primitives
// report coverage samples to a [Blender]. The functions keep no state
// between calls and never look at pixel contents, so the same sink can be
// a pixel buffer, a recorder or a clipping adapter.
//
// Coordinates are not bounds-checked here. Clipping and range errors are
// the sink's business.
package raster

import "errors"

// ErrNegativeRadius is returned by [Circle] for a radius below zero.
var ErrNegativeRadius = errors.New("raster: negative radius")

// Plotter receives the pixels of a solid primitive.
type Plotter interface {
	// Plot is called once per visited pixel, in traversal order.
	Plot(x, y int)
}

// Blender receives the coverage samples of an anti-aliased primitive.
type Blender interface {
	// Blend is called with a coverage weight in [0,1]; 1 means the pixel
	// is fully covered, 0 means untouched.
	Blend(x, y int, coverage float64)
}

// PlotterFunc adapts an ordinary function to the Plotter interface.
type PlotterFunc func(x, y int)

// Plot calls f(x, y).
func (f PlotterFunc) Plot(x, y int) { f(x, y) }

// BlenderFunc adapts an ordinary function to the Blender interface.
type BlenderFunc func(x, y int, coverage float64)

// Blend calls f(x, y, coverage).
func (f BlenderFunc) Blend(x, y int, coverage float64) { f(x, y, coverage) }

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
