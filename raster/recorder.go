package raster

import "image"

// Sample is one coverage sample reported to a Blender.
type Sample struct {
	X, Y     int
	Coverage float64
}

// Recorder is a Plotter and Blender that records every call in order.
type Recorder struct {
	Points  []image.Point
	Samples []Sample
}

// Plot records a solid pixel.
func (r *Recorder) Plot(x, y int) {
	r.Points = append(r.Points, image.Pt(x, y))
}

// Blend records a coverage sample.
func (r *Recorder) Blend(x, y int, coverage float64) {
	r.Samples = append(r.Samples, Sample{X: x, Y: y, Coverage: coverage})
}

// Reset drops everything recorded so far, keeping the allocations.
func (r *Recorder) Reset() {
	r.Points = r.Points[:0]
	r.Samples = r.Samples[:0]
}

// Counts returns how many times each distinct pixel was plotted.
func (r *Recorder) Counts() map[image.Point]int {
	m := make(map[image.Point]int, len(r.Points))
	for _, pt := range r.Points {
		m[pt]++
	}
	return m
}

// LinePoints returns the pixels visited by Line, in order.
func LinePoints(x0, y0, x1, y1 int) []image.Point {
	var r Recorder
	Line(&r, x0, y0, x1, y1)
	return r.Points
}

// CirclePoints returns the pixels plotted by Circle, in order and including
// repeats on octant boundaries.
func CirclePoints(cx, cy, radius int) ([]image.Point, error) {
	var r Recorder
	if err := Circle(&r, cx, cy, radius); err != nil {
		return nil, err
	}
	return r.Points, nil
}
