package rainbow

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so disabled log
// calls on the draw path cost one atomic load and no formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var silent = slog.New(nopHandler{})

// current is shared by the canvas, the presenters and integration/gpucanvas.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes rainbow diagnostics to l. Nothing is logged until it is
// called; nil switches logging off again. Safe to call while drawing.
//
// Records written:
//   - Debug "rainbow: samples clipped" (op, clipped) after a clipped draw
//   - Debug "rainbow: frame presented" and "gpucanvas: frame uploaded"
//   - Info "rainbow: buffer cleared" and "gpucanvas: texture created"
//   - Warn "rainbow: draw aborted" when a BoundsStrict draw leaves the buffer
//   - Warn "gpucanvas: input event failed" for errors raised by event handlers
//
// The demo command enables it with -v:
//
//	rainbow.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger, or a disabled one.
func Logger() *slog.Logger {
	return current.Load()
}
