package rainbow

import (
	"fmt"
	"image"
	"sync"
)

// Tool selects the primitive a Session draws.
type Tool uint8

const (
	// ToolLine draws a solid rainbow line from the anchor to the pointer.
	ToolLine Tool = iota

	// ToolWuLine draws an anti-aliased dark line from the anchor to the
	// pointer.
	ToolWuLine

	// ToolCircle draws a rainbow circle of fixed radius at the pointer.
	ToolCircle
)

// String returns the tool name.
func (t Tool) String() string {
	switch t {
	case ToolLine:
		return "line"
	case ToolWuLine:
		return "wu"
	case ToolCircle:
		return "circle"
	default:
		return fmt.Sprintf("Tool(%d)", uint8(t))
	}
}

// ParseTool returns the Tool named by s ("line", "wu" or "circle").
func ParseTool(s string) (Tool, error) {
	switch s {
	case "line":
		return ToolLine, nil
	case "wu":
		return ToolWuLine, nil
	case "circle":
		return ToolCircle, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTool, s)
	}
}

// LineAlgorithm selects the Bresenham formulation used by ToolLine.
type LineAlgorithm uint8

const (
	// LineSwapless uses the doubled-error formulation.
	LineSwapless LineAlgorithm = iota

	// LineClassic uses the transposing half-step formulation.
	LineClassic
)

// DefaultCircleRadius is the brush radius of ToolCircle.
const DefaultCircleRadius = 20

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithCircleRadius sets the radius drawn by ToolCircle. Negative values
// are kept and rejected by every Update, so misconfiguration is visible.
func WithCircleRadius(r int) SessionOption {
	return func(s *Session) {
		s.radius = r
	}
}

// WithLineAlgorithm selects the formulation used by ToolLine.
func WithLineAlgorithm(a LineAlgorithm) SessionOption {
	return func(s *Session) {
		s.line = a
	}
}

// Session is the gesture state machine that drives a Canvas.
//
// A gesture goes idle → active on Begin, which only captures the anchor.
// Every Update redraws the whole primitive from the fixed anchor to the
// latest point (or a circle at the latest point) instead of extending the
// previous draw, so the buffer always shows the live end position and
// pixels under the stroke keep cycling. End returns to idle.
//
// The anchor is the only thing a Session remembers; all color history lives
// in the canvas buffer.
type Session struct {
	canvas *Canvas
	radius int
	line   LineAlgorithm

	mu     sync.Mutex
	active bool
	tool   Tool
	anchor image.Point
}

// NewSession creates an idle session drawing on c.
func NewSession(c *Canvas, opts ...SessionOption) *Session {
	s := &Session{
		canvas: c,
		radius: DefaultCircleRadius,
		line:   LineSwapless,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Canvas returns the canvas the session draws on.
func (s *Session) Canvas() *Canvas {
	return s.canvas
}

// Begin starts a gesture with tool, anchored at start. It draws nothing.
func (s *Session) Begin(tool Tool, start image.Point) error {
	if tool > ToolCircle {
		return fmt.Errorf("%w: %v", ErrUnknownTool, tool)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return fmt.Errorf("%w: %v", ErrSessionActive, s.tool)
	}
	s.active = true
	s.tool = tool
	s.anchor = start
	return nil
}

// Update redraws the active primitive toward end.
func (s *Session) Update(end image.Point) (Stats, error) {
	s.mu.Lock()
	active, tool, anchor := s.active, s.tool, s.anchor
	s.mu.Unlock()

	if !active {
		return Stats{}, ErrSessionIdle
	}

	switch tool {
	case ToolWuLine:
		return s.canvas.DrawWuLine(anchor, end)
	case ToolCircle:
		return s.canvas.DrawCircle(end, s.radius)
	default:
		if s.line == LineClassic {
			return s.canvas.DrawLine(anchor, end)
		}
		return s.canvas.DrawLineSwapless(anchor, end)
	}
}

// End finishes the current gesture. It is a no-op when idle.
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = false
}

// Clear resets the canvas to its background and presents it. An active
// gesture stays active.
func (s *Session) Clear() error {
	return s.canvas.Clear()
}

// Active reports whether a gesture is in progress.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Tool returns the tool of the current or last gesture.
func (s *Session) Tool() Tool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tool
}

// Anchor returns the start point of the current or last gesture.
func (s *Session) Anchor() image.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.anchor
}
