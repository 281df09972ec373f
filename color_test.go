package rainbow

import (
	"image/color"
	"testing"
)

func TestRGBAColor(t *testing.T) {
	got := RGB(1, 0.5, 0).Color()
	want := color.NRGBA{R: 255, G: 128, B: 0, A: 255}
	if got != want {
		t.Errorf("Color() = %v, want %v", got, want)
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 255, G: 0, B: 255, A: 255})
	if got != RGB(1, 0, 1) {
		t.Errorf("FromColor() = %+v, want magenta", got)
	}

	// Premultiplied input is un-premultiplied.
	half := FromColor(color.RGBA{R: 0x80, G: 0, B: 0, A: 0x80})
	if half.R != 1 || half.A < 0.5 || half.A > 0.51 {
		t.Errorf("FromColor(premultiplied) = %+v", half)
	}
}

func TestDarken(t *testing.T) {
	tests := []struct {
		name     string
		in       RGBA
		coverage float64
		want     RGBA
	}{
		{"full coverage is black", White, 1, Black},
		{"zero coverage unchanged", RGB(0.2, 0.4, 0.6), 0, RGB(0.2, 0.4, 0.6)},
		{"half coverage", White, 0.5, RGB(0.5, 0.5, 0.5)},
		{"quarter on color", RGB(0.8, 0.4, 0), 0.25, RGB(0.6, 0.3, 0)},
		{"coverage clamped high", White, 2, Black},
		{"coverage clamped low", White, -1, White},
		{"alpha preserved", RGBA{1, 1, 1, 0.5}, 1, RGBA{0, 0, 0, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Darken(tt.coverage)
			if !rgbNear(got, tt.want, 1e-12) {
				t.Errorf("Darken(%v) = %+v, want %+v", tt.coverage, got, tt.want)
			}
		})
	}
}

func TestRGB8(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    RGBA
	}{
		{255, 255, 255, White},
		{0, 0, 0, Black},
		{255, 0, 0, Red},
		{51, 102, 204, RGB(0.2, 0.4, 0.8)},
	}
	for _, tt := range tests {
		if got := RGB8(tt.r, tt.g, tt.b); !rgbNear(got, tt.want, 1e-12) || got.A != 1 {
			t.Errorf("RGB8(%d, %d, %d) = %+v, want %+v", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}
