package raster

// Line rasterizes the segment (x0,y0)-(x1,y1) with Bresenham's algorithm,
// using the half-step error accumulator formulation.
//
// Steep segments are transposed so the loop always advances along the
// dominant axis, and endpoints are ordered so it advances in increasing
// order. Both endpoints are plotted; a zero-length segment plots one pixel.
func Line(p Plotter, x0, y0, x1, y1 int) {
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := abs(y1 - y0)
	err := dx / 2
	ystep := 1
	if y0 > y1 {
		ystep = -1
	}

	y := y0
	for x := x0; x <= x1; x++ {
		if steep {
			p.Plot(y, x)
		} else {
			p.Plot(x, y)
		}
		err -= dy
		if err < 0 {
			y += ystep
			err += dx
		}
	}
}

// LineSwapless rasterizes the segment (x0,y0)-(x1,y1) with the
// doubled-error Bresenham formulation that steps both axes with signed unit
// increments instead of transposing coordinates.
//
// The doubled-error test breaks ties toward the starting point, so the
// traversal always starts from the endpoint with the smaller coordinate on
// the dominant axis. With that ordering the visited pixel set and order are
// identical to [Line] for every input.
func LineSwapless(p Plotter, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	if (dy > dx && y0 > y1) || (dy <= dx && x0 > x1) {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	err := dx - dy
	for {
		p.Plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if x0 == x1 && y0 == y1 {
			p.Plot(x0, y0)
			return
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}
