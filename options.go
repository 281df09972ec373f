package rainbow

// BoundsMode selects how a draw treats pixels that fall outside the buffer.
type BoundsMode uint8

const (
	// BoundsClip clamps the primitive's extent to the buffer: samples
	// outside it are dropped and counted in Stats.Clipped.
	BoundsClip BoundsMode = iota

	// BoundsClamp snaps outside coordinates to the nearest edge pixel.
	BoundsClamp

	// BoundsStrict fails fast: the draw stops at the first outside pixel
	// and returns a *RangeError.
	BoundsStrict
)

// String returns the mode name.
func (m BoundsMode) String() string {
	switch m {
	case BoundsClip:
		return "clip"
	case BoundsClamp:
		return "clamp"
	case BoundsStrict:
		return "strict"
	default:
		return "unknown"
	}
}

// Option configures a Canvas during creation.
//
// Example:
//
//	c, err := rainbow.NewCanvas(
//	    rainbow.WithSize(256, 256),
//	    rainbow.WithBoundsMode(rainbow.BoundsStrict),
//	)
type Option func(*options)

// options holds optional configuration for Canvas creation.
type options struct {
	width      int
	height     int
	background RGBA
	policy     Policy
	bounds     BoundsMode
	presenter  Presenter
}

// defaultOptions returns the reference configuration: a 512x512 white
// buffer, the default rainbow rule, clipping, and no presenter.
func defaultOptions() options {
	return options{
		width:      DefaultWidth,
		height:     DefaultHeight,
		background: White,
		policy:     DefaultRainbow(),
		bounds:     BoundsClip,
	}
}

// WithSize sets the buffer dimensions.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithBackground sets the color used to initialize and clear the buffer.
func WithBackground(c RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithPolicy replaces the rainbow rule used for solid primitives.
// A nil policy keeps the default.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		if p != nil {
			o.policy = p
		}
	}
}

// WithBoundsMode selects how draws treat coordinates outside the buffer.
func WithBoundsMode(m BoundsMode) Option {
	return func(o *options) {
		o.bounds = m
	}
}

// WithPresenter sets the display that receives a frame after every commit.
func WithPresenter(p Presenter) Option {
	return func(o *options) {
		o.presenter = p
	}
}
