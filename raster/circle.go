package raster

// Circle rasterizes the outline of a circle centered at (cx,cy) with the
// midpoint algorithm.
//
// Each step of the decision loop plots all 8 octant-symmetric points, so
// pixels on octant boundaries (and the center, for radius 0) are reported
// more than once. A negative radius returns ErrNegativeRadius and plots
// nothing.
func Circle(p Plotter, cx, cy, radius int) error {
	if radius < 0 {
		return ErrNegativeRadius
	}

	x := radius
	y := 0
	radiusError := 1 - x
	for x >= y {
		p.Plot(x+cx, y+cy)
		p.Plot(y+cx, x+cy)
		p.Plot(-x+cx, y+cy)
		p.Plot(-y+cx, x+cy)
		p.Plot(-x+cx, -y+cy)
		p.Plot(-y+cx, -x+cy)
		p.Plot(x+cx, -y+cy)
		p.Plot(y+cx, -x+cy)

		y++
		if radiusError < 0 {
			radiusError += 2*y + 1
		} else {
			x--
			radiusError += 2 * (y - x + 1)
		}
	}
	return nil
}
