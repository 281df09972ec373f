package raster

import (
	"image"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestLineHorizontal(t *testing.T) {
	want := []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}}

	for _, tc := range []struct {
		name string
		draw func(Plotter, int, int, int, int)
	}{
		{"Line", Line},
		{"LineSwapless", LineSwapless},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var r Recorder
			tc.draw(&r, 0, 0, 5, 0)
			if !slices.Equal(r.Points, want) {
				t.Errorf("points = %v, want %v", r.Points, want)
			}
		})
	}
}

func TestLineDiagonal(t *testing.T) {
	want := []image.Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}}

	for _, tc := range []struct {
		name string
		draw func(Plotter, int, int, int, int)
	}{
		{"Line", Line},
		{"LineSwapless", LineSwapless},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var r Recorder
			tc.draw(&r, 0, 0, 5, 5)
			if !slices.Equal(r.Points, want) {
				t.Errorf("points = %v, want %v", r.Points, want)
			}
		})
	}
}

func TestLineZeroLength(t *testing.T) {
	for _, draw := range []func(Plotter, int, int, int, int){Line, LineSwapless} {
		var r Recorder
		draw(&r, 7, -3, 7, -3)
		if len(r.Points) != 1 || r.Points[0] != image.Pt(7, -3) {
			t.Errorf("points = %v, want [(7,-3)]", r.Points)
		}
	}
}

// TestLineShape checks the structural guarantees of a Bresenham line: both
// endpoints, one pixel per step along the dominant axis, and 8-connected
// neighbours with no gaps.
func TestLineShape(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
	}{
		{"shallow up", 0, 0, 9, 3},
		{"shallow down", 0, 5, 11, 1},
		{"steep up", 2, 0, 5, 12},
		{"steep down", 4, 10, 0, 1},
		{"reversed shallow", 8, 2, -3, 0},
		{"vertical", 3, 9, 3, -2},
		{"anti diagonal", 5, 0, 0, 5},
		{"negative coords", -10, -4, -2, -9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, draw := range []func(Plotter, int, int, int, int){Line, LineSwapless} {
				var r Recorder
				draw(&r, tt.x0, tt.y0, tt.x1, tt.y1)
				checkLineShape(t, r.Points, tt.x0, tt.y0, tt.x1, tt.y1)
			}
		})
	}
}

func checkLineShape(t *testing.T, pts []image.Point, x0, y0, x1, y1 int) {
	t.Helper()

	major := max(abs(x1-x0), abs(y1-y0))
	if len(pts) != major+1 {
		t.Fatalf("got %d points, want %d", len(pts), major+1)
	}

	start, end := image.Pt(x0, y0), image.Pt(x1, y1)
	if !slices.Contains(pts, start) || !slices.Contains(pts, end) {
		t.Errorf("endpoints %v, %v missing from %v", start, end, pts)
	}

	seen := make(map[image.Point]bool, len(pts))
	for i, pt := range pts {
		if seen[pt] {
			t.Errorf("duplicate point %v", pt)
		}
		seen[pt] = true
		if i == 0 {
			continue
		}
		d := pt.Sub(pts[i-1])
		if abs(d.X) > 1 || abs(d.Y) > 1 || (d.X == 0 && d.Y == 0) {
			t.Errorf("gap between %v and %v", pts[i-1], pt)
		}
	}
}

// TestLineFormulationsAgree draws random segments in all 8 octants with both
// formulations and requires identical output.
func TestLineFormulationsAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(20, 8))

	octants := []struct {
		sx, sy int
		steep  bool
	}{
		{1, 1, false}, {1, 1, true},
		{-1, 1, false}, {-1, 1, true},
		{-1, -1, false}, {-1, -1, true},
		{1, -1, false}, {1, -1, true},
	}

	for i, o := range octants {
		for n := 0; n < 20; n++ {
			major := rng.IntN(60) + 1
			minor := rng.IntN(major + 1)
			dx, dy := major, minor
			if o.steep {
				dx, dy = minor, major
			}
			x0, y0 := rng.IntN(200)-100, rng.IntN(200)-100
			x1, y1 := x0+o.sx*dx, y0+o.sy*dy

			var a, b Recorder
			Line(&a, x0, y0, x1, y1)
			LineSwapless(&b, x0, y0, x1, y1)
			if !slices.Equal(a.Points, b.Points) {
				t.Fatalf("octant %d: (%d,%d)-(%d,%d): Line=%v LineSwapless=%v",
					i, x0, y0, x1, y1, a.Points, b.Points)
			}
		}
	}
}

// TestLineFormulationsAgreeExhaustive covers every segment in a small window,
// including all tie cases of the error accumulators.
func TestLineFormulationsAgreeExhaustive(t *testing.T) {
	const lo, hi = -5, 5
	var a, b Recorder
	for x0 := lo; x0 <= hi; x0++ {
		for y0 := lo; y0 <= hi; y0++ {
			for x1 := lo; x1 <= hi; x1++ {
				for y1 := lo; y1 <= hi; y1++ {
					a.Reset()
					b.Reset()
					Line(&a, x0, y0, x1, y1)
					LineSwapless(&b, x0, y0, x1, y1)
					if !slices.Equal(a.Points, b.Points) {
						t.Fatalf("(%d,%d)-(%d,%d): Line=%v LineSwapless=%v",
							x0, y0, x1, y1, a.Points, b.Points)
					}
				}
			}
		}
	}
}

// TestLineReversible checks that swapping the endpoints yields the same set.
func TestLineReversible(t *testing.T) {
	fwd := LinePoints(1, 2, 14, 7)
	rev := LinePoints(14, 7, 1, 2)
	if !slices.Equal(fwd, rev) {
		t.Errorf("forward %v != reverse %v", fwd, rev)
	}
}

func TestPlotterFunc(t *testing.T) {
	var n int
	Line(PlotterFunc(func(x, y int) { n++ }), 0, 0, 3, 1)
	if n != 4 {
		t.Errorf("PlotterFunc called %d times, want 4", n)
	}
}
