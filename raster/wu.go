package raster

import "math"

// WuLine rasterizes the segment (x0,y0)-(x1,y1) with Xiaolin Wu's
// anti-aliased line algorithm.
//
// Both endpoints are reported with full coverage first. Every interior
// column along the dominant axis then yields two samples straddling the
// ideal line: the pixel at floor(y) with coverage 1-frac(y) and the pixel
// below it with frac(y). The two weights of a column always sum to 1.
func WuLine(b Blender, x0, y0, x1, y1 int) {
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	blend := func(x, y int, c float64) {
		if steep {
			b.Blend(y, x, c)
		} else {
			b.Blend(x, y, c)
		}
	}

	blend(x0, y0, 1)
	blend(x1, y1, 1)

	dx := float64(x1 - x0)
	if dx == 0 {
		return
	}
	gradient := float64(y1-y0) / dx
	y := float64(y0) + gradient
	for x := x0 + 1; x <= x1-1; x++ {
		iy := math.Floor(y)
		frac := y - iy
		blend(x, int(iy), 1-frac)
		blend(x, int(iy)+1, frac)
		y += gradient
	}
}
