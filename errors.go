package rainbow

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to test for them; the returned errors may
// be wrapped with more context.
var (
	// ErrOutOfRange reports a pixel coordinate outside the buffer.
	ErrOutOfRange = errors.New("rainbow: coordinate out of range")

	// ErrInvalidSize reports a non-positive buffer dimension.
	ErrInvalidSize = errors.New("rainbow: invalid buffer size")

	// ErrSessionActive is returned by Session.Begin while a primitive is
	// already in progress.
	ErrSessionActive = errors.New("rainbow: primitive already in progress")

	// ErrSessionIdle is returned by Session.Update when no primitive has
	// been started.
	ErrSessionIdle = errors.New("rainbow: no primitive in progress")

	// ErrUnknownTool reports a Tool value outside the defined set.
	ErrUnknownTool = errors.New("rainbow: unknown tool")
)

// RangeError describes an access outside the buffer. It matches
// ErrOutOfRange with errors.Is.
type RangeError struct {
	X, Y          int
	Width, Height int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("rainbow: coordinate (%d,%d) out of range %dx%d", e.X, e.Y, e.Width, e.Height)
}

// Is reports whether target is ErrOutOfRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
