package graphics

import (
	"errors"
	"testing"
)

func TestParseHexForms(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#fa0", Color(0xFFFFAA00)},
		{"#FFAA00", Color(0xFFFFAA00)},
		{"#80FFAA00", Color(0x80FFAA00)},
		{"0xfa0", Color(0xFFFFAA00)},
		{"0xFFAA00", Color(0xFFFFAA00)},
		{"0x80FFAA00", Color(0x80FFAA00)},
		{"  #000  ", ColorBlack},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got.Hex(), tt.want.Hex())
		}
	}
}

func TestParseNamedColors(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"white", ColorWhite},
		{"Black", ColorBlack},
		{"RED", ColorRed},
		{"cornflowerblue", Color(0xFF6495ED)},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got.Hex(), tt.want.Hex())
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "#12345", "#GGGGGG", "notacolor", "0x"} {
		if _, err := Parse(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("Parse(%q) should return ErrInvalidColor, got %v", in, err)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on invalid input")
		}
	}()
	MustParse("notacolor")
}

func TestHexRoundTrip(t *testing.T) {
	c := RGBA8(0x12, 0x34, 0x56, 0x78)
	if got := c.Hex(); got != "#78123456" {
		t.Errorf("Hex() = %q, want %q", got, "#78123456")
	}
	back, err := Parse(c.Hex())
	if err != nil {
		t.Fatalf("Parse(Hex()) returned error: %v", err)
	}
	if back != c {
		t.Errorf("round trip changed color: %v != %v", back.Hex(), c.Hex())
	}
}

func TestWithAlpha(t *testing.T) {
	c := ColorRed.WithAlpha(0.5)
	if a := c.Alpha(); a < 0.49 || a > 0.51 {
		t.Errorf("expected alpha near 0.5, got %f", a)
	}
	if c.WithAlpha8(0xFF) != ColorRed {
		t.Error("restoring full alpha should recover the original color")
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(ColorBlack, ColorWhite, 0); got != ColorBlack {
		t.Errorf("Lerp at 0 should return from, got %v", got.Hex())
	}
	if got := Lerp(ColorBlack, ColorWhite, 1); got != ColorWhite {
		t.Errorf("Lerp at 1 should return to, got %v", got.Hex())
	}
	mid := Lerp(ColorBlack, ColorWhite, 0.5)
	r, g, b, _ := mid.RGBAF()
	if r < 0.45 || r > 0.55 || g != r || b != r {
		t.Errorf("midpoint should be mid gray, got %v", mid.Hex())
	}
	// t is clamped
	if got := Lerp(ColorBlack, ColorWhite, 2); got != ColorWhite {
		t.Errorf("Lerp should clamp t, got %v", got.Hex())
	}
}

func TestLuminance(t *testing.T) {
	if l := ColorBlack.Luminance(); l != 0 {
		t.Errorf("black luminance should be 0, got %f", l)
	}
	if l := ColorWhite.Luminance(); l < 0.99 {
		t.Errorf("white luminance should be ~1, got %f", l)
	}
	if ColorBlue.Luminance() > ColorGreen.Luminance() {
		t.Error("green should be brighter than blue")
	}
}
