// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpucanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/rainbow"
)

// Presentation errors.
var (
	// ErrNilDrawer is returned when a TexturePresenter is created without a
	// draw context.
	ErrNilDrawer = errors.New("gpucanvas: nil TextureDrawer")

	// ErrInvalidRenderer is returned when the draw context cannot create
	// textures.
	ErrInvalidRenderer = errors.New("gpucanvas: renderer must implement gpucontext.TextureCreator")

	// ErrPresenterClosed is returned when a frame arrives after Close.
	ErrPresenterClosed = errors.New("gpucanvas: presenter is closed")
)

// textureDestroyer matches gogpu.Texture.Destroy.
type textureDestroyer interface {
	Destroy()
}

// TexturePresenter shows rainbow frames in a gogpu window.
// It implements rainbow.Presenter.
type TexturePresenter struct {
	dc      gpucontext.TextureDrawer
	x, y    float32
	texture gpucontext.Texture
	uploads int
	creates int
	closed  bool
}

// NewTexturePresenter creates a presenter drawing through dc.
// The texture is created lazily by the first Present.
func NewTexturePresenter(dc gpucontext.TextureDrawer) (*TexturePresenter, error) {
	if dc == nil {
		return nil, ErrNilDrawer
	}
	return &TexturePresenter{dc: dc}, nil
}

// SetPosition sets where frames are drawn, in window pixels.
func (p *TexturePresenter) SetPosition(x, y float32) {
	p.x, p.y = x, y
}

// Texture returns the current texture, or nil before the first frame.
func (p *TexturePresenter) Texture() gpucontext.Texture {
	return p.texture
}

// Stats returns how many textures were created and how many frames were
// uploaded into an existing texture.
func (p *TexturePresenter) Stats() (creates, uploads int) {
	return p.creates, p.uploads
}

// Present uploads f and draws it.
//
// The texture is recreated when the frame size changes or when the texture
// does not support in-place updates.
func (p *TexturePresenter) Present(f *rainbow.Frame) error {
	if p.closed {
		return ErrPresenterClosed
	}
	if err := p.upload(f); err != nil {
		return err
	}
	return p.dc.DrawTexture(p.texture, p.x, p.y)
}

func (p *TexturePresenter) upload(f *rainbow.Frame) error {
	if p.texture != nil && p.texture.Width() == f.Width && p.texture.Height() == f.Height {
		if u, ok := p.texture.(gpucontext.TextureUpdater); ok {
			if err := u.UpdateData(f.Pix); err != nil {
				return fmt.Errorf("gpucanvas: UpdateData failed: %w", err)
			}
			p.uploads++
			rainbow.Logger().Debug("gpucanvas: frame uploaded", "version", f.Version)
			return nil
		}
	}

	creator := p.dc.TextureCreator()
	if creator == nil {
		return ErrInvalidRenderer
	}
	tex, err := creator.NewTextureFromRGBA(f.Width, f.Height, f.Pix)
	if err != nil {
		return fmt.Errorf("gpucanvas: NewTextureFromRGBA failed: %w", err)
	}
	p.destroy()
	p.texture = tex
	p.creates++
	rainbow.Logger().Info("gpucanvas: texture created",
		"width", f.Width, "height", f.Height, "format", f.Format())
	return nil
}

// Close releases the texture. Later frames fail with ErrPresenterClosed.
func (p *TexturePresenter) Close() {
	p.destroy()
	p.closed = true
}

func (p *TexturePresenter) destroy() {
	if d, ok := p.texture.(textureDestroyer); ok {
		d.Destroy()
	}
	p.texture = nil
}
