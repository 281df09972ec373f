package rainbow

import (
	"errors"
	"math"
	"testing"
)

const cycleTolerance = 1e-6

// TestRainbowCycleFromWhite paints one white pixel repeatedly: the hue
// climbs by 20° per paint from the undefined hue (-1°) until it passes 340°,
// then resets to 0 while keeping the saturation and value last read.
func TestRainbowCycleFromWhite(t *testing.T) {
	b, _ := NewBuffer(1, 1, White)
	p := DefaultRainbow()

	for i := 0; i < 18; i++ {
		if err := p.Paint(b, 0, 0); err != nil {
			t.Fatalf("Paint() error = %v", err)
		}
		c, _ := b.At(0, 0)
		hsv := RGBToHSV(c)
		want := float64(19 + 20*i)
		if math.Abs(hsv.H-want) > cycleTolerance {
			t.Fatalf("paint %d: hue = %v, want %v", i+1, hsv.H, want)
		}
		if math.Abs(hsv.S-0.95) > cycleTolerance || math.Abs(hsv.V-0.95) > cycleTolerance {
			t.Fatalf("paint %d: S,V = %v,%v, want 0.95", i+1, hsv.S, hsv.V)
		}
	}

	// Hue is now 359°, past the threshold.
	before, _ := b.At(0, 0)
	prev := RGBToHSV(before)
	if err := p.Paint(b, 0, 0); err != nil {
		t.Fatal(err)
	}
	c, _ := b.At(0, 0)
	got := RGBToHSV(c)
	if math.Abs(got.H) > cycleTolerance {
		t.Errorf("after reset hue = %v, want 0", got.H)
	}
	if math.Abs(got.S-prev.S) > cycleTolerance || math.Abs(got.V-prev.V) > cycleTolerance {
		t.Errorf("reset changed S,V: %v,%v -> %v,%v", prev.S, prev.V, got.S, got.V)
	}

	// And the cycle starts over from 0.
	_ = p.Paint(b, 0, 0)
	c, _ = b.At(0, 0)
	if h := RGBToHSV(c).H; math.Abs(h-20) > cycleTolerance {
		t.Errorf("hue after restart = %v, want 20", h)
	}
}

func TestRainbowNext(t *testing.T) {
	p := DefaultRainbow()

	tests := []struct {
		name string
		in   RGBA
		want HSV
	}{
		{"white starts at 19", White, HSV{19, 0.95, 0.95}},
		{"black starts at 19", Black, HSV{19, 0.95, 0.95}},
		{"gray starts at 19", Gray, HSV{19, 0.95, 0.95}},
		{"red advances", Red, HSV{20, 0.95, 0.95}},
		{"blue advances", Blue, HSV{260, 0.95, 0.95}},
		{"hue 340 lands on the last table row", HSVToRGB(340, 0.95, 0.95), HSV{300, 0.95, 0.95}},
		{"past threshold resets keeping S and V", HSVToRGB(350, 0.5, 0.6), HSV{0, 0.5, 0.6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSV(p.Next(tt.in))
			if math.Abs(got.H-tt.want.H) > cycleTolerance ||
				math.Abs(got.S-tt.want.S) > cycleTolerance ||
				math.Abs(got.V-tt.want.V) > cycleTolerance {
				t.Errorf("Next(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRainbowNextAt340(t *testing.T) {
	got := DefaultRainbow().Next(HSVToRGB(340, 0.95, 0.95))
	want := HSVToRGB(360, 0.95, 0.95)
	if !rgbNear(got, want, 1e-12) {
		t.Errorf("Next(hsv 340) = %+v, want HSVToRGB(360) = %+v", got, want)
	}
}

// TestRainbowCycleSettles follows one pixel past its first reset: the second
// lap climbs 20°..340° and then stays in the 300°, 320°, 340° loop.
func TestRainbowCycleSettles(t *testing.T) {
	b, _ := NewBuffer(1, 1, White)
	p := DefaultRainbow()

	var hues []float64
	for range 40 {
		if err := p.Paint(b, 0, 0); err != nil {
			t.Fatal(err)
		}
		c, _ := b.At(0, 0)
		hues = append(hues, RGBToHSV(c).H)
	}

	tests := []struct {
		paint int
		want  float64
	}{
		{19, 0},
		{20, 20},
		{36, 340},
		{37, 300},
		{38, 320},
		{39, 340},
		{40, 300},
	}
	for _, tt := range tests {
		if got := hues[tt.paint-1]; math.Abs(got-tt.want) > cycleTolerance {
			t.Errorf("paint %d: hue = %v, want %v", tt.paint, got, tt.want)
		}
	}
}

func TestRainbowNextKeepsAlpha(t *testing.T) {
	got := DefaultRainbow().Next(RGBA{1, 1, 1, 0.5})
	if got.A != 0.5 {
		t.Errorf("alpha = %v, want 0.5", got.A)
	}
}

func TestRainbowPaintOutOfRange(t *testing.T) {
	b, _ := NewBuffer(2, 2, White)
	if err := DefaultRainbow().Paint(b, 2, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Paint() error = %v, want ErrOutOfRange", err)
	}
}

func TestDarkPoint(t *testing.T) {
	b, _ := NewBuffer(2, 1, White)

	if err := DarkPoint(b, 0, 0, 0.25); err != nil {
		t.Fatal(err)
	}
	if err := DarkPoint(b, 0, 0, 0.5); err != nil {
		t.Fatal(err)
	}
	got, _ := b.At(0, 0)
	// 1 * 0.75 * 0.5
	if !rgbNear(got, RGB(0.375, 0.375, 0.375), 1e-12) {
		t.Errorf("after two blends = %+v, want 0.375 gray", got)
	}

	// Blending never rainbow-cycles: hue stays undefined.
	if RGBToHSV(got).Defined() {
		t.Errorf("DarkPoint introduced a hue: %+v", got)
	}

	if err := DarkPoint(b, 1, 1, 1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("DarkPoint() error = %v, want ErrOutOfRange", err)
	}
}

func TestPolicyFunc(t *testing.T) {
	b, _ := NewBuffer(1, 1, White)
	p := PolicyFunc(func(b *Buffer, x, y int) error {
		return b.Set(x, y, Green)
	})
	if err := p.Paint(b, 0, 0); err != nil {
		t.Fatal(err)
	}
	if got, _ := b.At(0, 0); got != Green {
		t.Errorf("At(0,0) = %+v, want green", got)
	}
}
