package rainbow

import (
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/rainbow/raster"
)

// Stats counts what a single draw did to the buffer.
type Stats struct {
	Plotted int // pixels recolored by the policy
	Blended int // coverage samples applied by DarkPoint
	Clipped int // samples dropped outside the buffer (BoundsClip)
}

// Add returns the field-wise sum of s and o.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Plotted: s.Plotted + o.Plotted,
		Blended: s.Blended + o.Blended,
		Clipped: s.Clipped + o.Clipped,
	}
}

// Canvas binds a Buffer to the rasterizers, the solid-primitive Policy and
// an optional Presenter.
//
// Every operation holds the canvas lock for its whole duration, so a draw
// completes before the next one starts and Clear never interleaves with a
// draw. Each draw ends with a commit, which hands a frame to the presenter.
type Canvas struct {
	mu        sync.Mutex
	buf       *Buffer
	policy    Policy
	bounds    BoundsMode
	presenter Presenter
}

// NewCanvas creates a canvas with a freshly cleared buffer.
func NewCanvas(opts ...Option) (*Canvas, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	buf, err := NewBuffer(o.width, o.height, o.background)
	if err != nil {
		return nil, err
	}
	return &Canvas{
		buf:       buf,
		policy:    o.policy,
		bounds:    o.bounds,
		presenter: o.presenter,
	}, nil
}

// Width returns the buffer width.
func (c *Canvas) Width() int { return c.buf.Width() }

// Height returns the buffer height.
func (c *Canvas) Height() int { return c.buf.Height() }

// BoundsMode returns the configured bounds handling.
func (c *Canvas) BoundsMode() BoundsMode { return c.bounds }

// At returns the color at (x, y).
func (c *Canvas) At(x, y int) (RGBA, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.At(x, y)
}

// DrawLine draws a solid line from p0 to p1 with the transposing Bresenham
// formulation, recoloring every pixel through the policy.
func (c *Canvas) DrawLine(p0, p1 image.Point) (Stats, error) {
	return c.draw("line", func(t *target) error {
		raster.Line(t, p0.X, p0.Y, p1.X, p1.Y)
		return nil
	})
}

// DrawLineSwapless draws a solid line from p0 to p1 with the doubled-error
// Bresenham formulation. It touches the same pixels as DrawLine.
func (c *Canvas) DrawLineSwapless(p0, p1 image.Point) (Stats, error) {
	return c.draw("line", func(t *target) error {
		raster.LineSwapless(t, p0.X, p0.Y, p1.X, p1.Y)
		return nil
	})
}

// DrawWuLine draws an anti-aliased line from p0 to p1. Covered pixels are
// darkened in proportion to their coverage; the policy is not consulted.
func (c *Canvas) DrawWuLine(p0, p1 image.Point) (Stats, error) {
	return c.draw("wu line", func(t *target) error {
		raster.WuLine(t, p0.X, p0.Y, p1.X, p1.Y)
		return nil
	})
}

// DrawCircle draws a circle outline around center through the policy.
// A negative radius returns an error wrapping raster.ErrNegativeRadius and
// leaves the buffer untouched.
func (c *Canvas) DrawCircle(center image.Point, radius int) (Stats, error) {
	return c.draw("circle", func(t *target) error {
		return raster.Circle(t, center.X, center.Y, radius)
	})
}

// Clear resets every pixel to the background color and commits.
func (c *Canvas) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.buf.Clear()
	Logger().Info("rainbow: buffer cleared",
		"width", c.buf.Width(), "height", c.buf.Height())
	return c.commitLocked()
}

// Commit marks the buffer ready for display and presents it.
func (c *Canvas) Commit() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.commitLocked()
}

// Present hands the current contents to the presenter without committing.
// It is a no-op without a presenter.
func (c *Canvas) Present() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.presentLocked()
}

// Snapshot returns an RGBA8 copy of the buffer.
func (c *Canvas) Snapshot() *Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Snapshot()
}

// Version returns the number of commits so far.
func (c *Canvas) Version() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Version()
}

func (c *Canvas) draw(op string, rasterize func(t *target) error) (Stats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &target{buf: c.buf, policy: c.policy, bounds: c.bounds}
	if err := rasterize(t); err != nil {
		return t.stats, fmt.Errorf("rainbow: %s: %w", op, err)
	}

	if t.stats.Clipped > 0 {
		Logger().Debug("rainbow: samples clipped",
			"op", op, "clipped", t.stats.Clipped)
	}

	commitErr := c.commitLocked()
	if t.err != nil {
		Logger().Warn("rainbow: draw aborted",
			"op", op, "err", t.err, "plotted", t.stats.Plotted)
		return t.stats, fmt.Errorf("rainbow: %s: %w", op, t.err)
	}
	return t.stats, commitErr
}

func (c *Canvas) commitLocked() error {
	c.buf.Commit()
	return c.presentLocked()
}

func (c *Canvas) presentLocked() error {
	if c.presenter == nil {
		return nil
	}
	if err := c.presenter.Present(c.buf.Snapshot()); err != nil {
		return fmt.Errorf("rainbow: present: %w", err)
	}
	return nil
}

// target adapts a buffer to the raster sinks for the duration of one draw,
// applying the bounds mode to every sample. After the first error all
// further samples are ignored.
type target struct {
	buf    *Buffer
	policy Policy
	bounds BoundsMode
	stats  Stats
	err    error
}

func (t *target) resolve(x, y int) (int, int, bool) {
	if t.err != nil {
		return 0, 0, false
	}
	if t.buf.InBounds(x, y) {
		return x, y, true
	}
	switch t.bounds {
	case BoundsClamp:
		x, y = t.buf.clamp(x, y)
		return x, y, true
	case BoundsStrict:
		t.err = t.buf.rangeError(x, y)
		return 0, 0, false
	default:
		t.stats.Clipped++
		return 0, 0, false
	}
}

// Plot implements raster.Plotter.
func (t *target) Plot(x, y int) {
	x, y, ok := t.resolve(x, y)
	if !ok {
		return
	}
	if err := t.policy.Paint(t.buf, x, y); err != nil {
		t.err = err
		return
	}
	t.stats.Plotted++
}

// Blend implements raster.Blender.
func (t *target) Blend(x, y int, coverage float64) {
	x, y, ok := t.resolve(x, y)
	if !ok {
		return
	}
	if err := DarkPoint(t.buf, x, y, coverage); err != nil {
		t.err = err
		return
	}
	t.stats.Blended++
}
