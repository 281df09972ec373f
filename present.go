package rainbow

import (
	"image"
	"image/color"
	"sync"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	icolor "github.com/gogpu/rainbow/internal/color"
)

// Frame is an immutable RGBA8 snapshot of a Buffer, the unit handed to a
// display. Pix holds Height rows of Width pixels, 4 bytes each, alpha last.
type Frame struct {
	Width   int
	Height  int
	Version uint64
	Pix     []byte
}

// Stride returns the number of bytes per row.
func (f *Frame) Stride() int {
	return f.Width * icolor.BytesPerPixel
}

// Format returns the GPU texture format matching Pix.
func (f *Frame) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// RGBAAt returns the encoded pixel at (x, y), or transparent black outside
// the frame.
func (f *Frame) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return color.RGBA{}
	}
	i := y*f.Stride() + x*icolor.BytesPerPixel
	return color.RGBA{R: f.Pix[i], G: f.Pix[i+1], B: f.Pix[i+2], A: f.Pix[i+3]}
}

// Image returns the frame as an *image.RGBA sharing Pix.
func (f *Frame) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    f.Pix,
		Stride: f.Stride(),
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}
}

// Presenter is the display collaborator. Present is called after every
// commit with a snapshot that reflects all writes made so far.
type Presenter interface {
	Present(f *Frame) error
}

// PresenterFunc adapts an ordinary function to the Presenter interface.
type PresenterFunc func(f *Frame) error

// Present calls fn(f).
func (fn PresenterFunc) Present(f *Frame) error {
	return fn(f)
}

// ImagePresenter keeps the most recent frame as an image, magnified for
// viewing. It is the display used by headless tools and tests.
//
// The zero value presents at 1:1 with point filtering.
type ImagePresenter struct {
	// Scale is the integer magnification; values below 1 mean 1.
	Scale int

	// Filter selects the magnification filter. FilterModeLinear smooths;
	// anything else keeps hard pixel edges (point filtering).
	Filter gputypes.FilterMode

	// Caption, if set, returns a line of text drawn in the top-left corner.
	Caption func(f *Frame) string

	mu     sync.Mutex
	last   *image.RGBA
	frames int
}

// Present renders f into a new image and keeps it.
func (p *ImagePresenter) Present(f *Frame) error {
	img := p.render(f)

	p.mu.Lock()
	p.last = img
	p.frames++
	p.mu.Unlock()

	Logger().Debug("rainbow: frame presented",
		"version", f.Version, "width", img.Rect.Dx(), "height", img.Rect.Dy())
	return nil
}

// Image returns the last presented image, or nil before the first frame.
func (p *ImagePresenter) Image() *image.RGBA {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

// Frames returns how many frames have been presented.
func (p *ImagePresenter) Frames() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frames
}

func (p *ImagePresenter) render(f *Frame) *image.RGBA {
	scale := max(p.Scale, 1)
	src := f.Image()
	dst := image.NewRGBA(image.Rect(0, 0, f.Width*scale, f.Height*scale))

	if scale == 1 {
		copy(dst.Pix, src.Pix)
	} else {
		p.interpolator().Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	}

	if p.Caption != nil {
		if text := p.Caption(f); text != "" {
			drawCaption(dst, text)
		}
	}
	return dst
}

func (p *ImagePresenter) interpolator() draw.Interpolator {
	if p.Filter == gputypes.FilterModeLinear {
		return draw.BiLinear
	}
	return draw.NearestNeighbor
}

// drawCaption writes text on a white box in the top-left corner of dst.
func drawCaption(dst *image.RGBA, text string) {
	face := basicfont.Face7x13
	const pad = 2

	width := font.MeasureString(face, text).Ceil()
	box := image.Rect(0, 0, width+2*pad, face.Height+2*pad).Intersect(dst.Bounds())
	draw.Draw(dst, box, image.White, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Black,
		Face: face,
		Dot:  fixed.P(pad, pad+face.Ascent),
	}
	d.DrawString(text)
}
