// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpucanvas

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/rainbow"
)

// Input errors.
var (
	// ErrNilSession is returned when an Input is created without a session.
	ErrNilSession = errors.New("gpucanvas: nil session")

	// ErrInvalidViewport is returned when a viewport has a negative size.
	ErrInvalidViewport = errors.New("gpucanvas: invalid viewport")
)

// Viewport is the logical size of the window area showing the buffer.
// The zero value maps window pixels one-to-one onto buffer cells.
type Viewport struct {
	Width  float64
	Height float64
}

// Cell maps a window position to the buffer cell under it, for a buffer of
// width x height cells. The result may lie outside the buffer when the
// pointer does; the canvas bounds mode decides what happens then.
func (v Viewport) Cell(x, y float64, width, height int) image.Point {
	if v.Width > 0 {
		x = x / v.Width * float64(width)
	}
	if v.Height > 0 {
		y = y / v.Height * float64(height)
	}
	return image.Pt(int(math.Floor(x)), int(math.Floor(y)))
}

// InputOption configures an Input.
type InputOption func(*Input)

// WithViewport sets the window area that shows the buffer.
func WithViewport(v Viewport) InputOption {
	return func(in *Input) {
		in.viewport = v
	}
}

// WithQuit sets the callback run when Escape is pressed.
func WithQuit(fn func()) InputOption {
	return func(in *Input) {
		in.quit = fn
	}
}

// WithErrorHandler sets a callback for errors raised while handling events.
// Event callbacks cannot return errors; without a handler they are only
// logged.
func WithErrorHandler(fn func(error)) InputOption {
	return func(in *Input) {
		in.onError = fn
	}
}

// Input routes pointer and key events to a rainbow.Session.
type Input struct {
	session  *rainbow.Session
	viewport Viewport
	quit     func()
	onError  func(error)

	// button is the button that started the current gesture.
	button gpucontext.Button
}

// NewInput creates an Input driving s.
func NewInput(s *rainbow.Session, opts ...InputOption) (*Input, error) {
	if s == nil {
		return nil, ErrNilSession
	}
	in := &Input{session: s, button: gpucontext.ButtonNone}
	for _, opt := range opts {
		opt(in)
	}
	if in.viewport.Width < 0 || in.viewport.Height < 0 {
		return nil, fmt.Errorf("%w: %vx%v", ErrInvalidViewport, in.viewport.Width, in.viewport.Height)
	}
	return in, nil
}

// Bind registers the Input on a pointer event source.
func (in *Input) Bind(src gpucontext.PointerEventSource) {
	src.OnPointer(in.HandlePointer)
}

// BindKeys registers the Input's key handler on an event source.
func (in *Input) BindKeys(src gpucontext.EventSource) {
	src.OnKeyPress(in.HandleKey)
}

// SetViewport updates the window area, typically from a resize callback.
func (in *Input) SetViewport(v Viewport) {
	in.viewport = v
}

// ToolFor returns the tool bound to a pointer button.
func ToolFor(b gpucontext.Button) (rainbow.Tool, bool) {
	switch b {
	case gpucontext.ButtonLeft:
		return rainbow.ToolLine, true
	case gpucontext.ButtonRight:
		return rainbow.ToolWuLine, true
	case gpucontext.ButtonMiddle:
		return rainbow.ToolCircle, true
	default:
		return 0, false
	}
}

// HandlePointer applies one pointer event to the session.
//
// A press starts a gesture and draws immediately at the press point. Moves
// redraw while the gesture's button is held. Releasing that button or
// cancelling the pointer ends the gesture. Presses of other buttons during a
// gesture are ignored.
func (in *Input) HandlePointer(ev gpucontext.PointerEvent) {
	switch ev.Type {
	case gpucontext.PointerDown:
		if in.session.Active() {
			return
		}
		tool, ok := ToolFor(ev.Button)
		if !ok {
			return
		}
		p := in.cell(ev.X, ev.Y)
		if err := in.session.Begin(tool, p); err != nil {
			in.fail("begin", err)
			return
		}
		in.button = ev.Button
		in.update(p)

	case gpucontext.PointerMove:
		if in.button == gpucontext.ButtonNone {
			return
		}
		in.update(in.cell(ev.X, ev.Y))

	case gpucontext.PointerUp:
		if ev.Button == in.button {
			in.end()
		}

	case gpucontext.PointerCancel:
		in.end()
	}
}

// HandleKey applies one key press: Space clears the buffer, Escape quits.
func (in *Input) HandleKey(key gpucontext.Key, _ gpucontext.Modifiers) {
	switch key {
	case gpucontext.KeySpace:
		if err := in.session.Clear(); err != nil {
			in.fail("clear", err)
		}
	case gpucontext.KeyEscape:
		if in.quit != nil {
			in.quit()
		}
	}
}

func (in *Input) cell(x, y float64) image.Point {
	c := in.session.Canvas()
	return in.viewport.Cell(x, y, c.Width(), c.Height())
}

func (in *Input) update(p image.Point) {
	if _, err := in.session.Update(p); err != nil {
		in.fail("update", err)
	}
}

func (in *Input) end() {
	in.session.End()
	in.button = gpucontext.ButtonNone
}

func (in *Input) fail(op string, err error) {
	err = fmt.Errorf("gpucanvas: %s: %w", op, err)
	rainbow.Logger().Warn("gpucanvas: input event failed", "op", op, "err", err)
	if in.onError != nil {
		in.onError(err)
	}
}
