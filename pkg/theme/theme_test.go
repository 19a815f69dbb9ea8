package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/appbase/pkg/graphics"
)

const testBundle = `
palettes:
  day:
    brightness: light
    colors:
      primary: "#6200EE"
      background: white
      onBackground: "#1C1B1F"
  night:
    brightness: dark
    colors:
      primary: "#D0BCFF"
      background: "#1C1B1F"
`

func TestParseBundle(t *testing.T) {
	b, err := Parse([]byte(testBundle))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if b.Len() != 2 {
		t.Fatalf("expected 2 palettes, got %d", b.Len())
	}

	day, ok := b.Palette("day")
	if !ok {
		t.Fatal("expected palette \"day\"")
	}
	if day.Brightness != BrightnessLight {
		t.Errorf("expected light brightness, got %v", day.Brightness)
	}
	if got := day.Color("primary"); got != graphics.MustParse("#6200EE") {
		t.Errorf("primary = %v, want #FF6200EE", got.Hex())
	}
	if got := day.Color("background"); got != graphics.ColorWhite {
		t.Errorf("named color lookup failed, background = %v", got.Hex())
	}

	night, ok := b.Palette("night")
	if !ok {
		t.Fatal("expected palette \"night\"")
	}
	if night.Brightness != BrightnessDark {
		t.Errorf("expected dark brightness, got %v", night.Brightness)
	}

	ids := b.IDs()
	if len(ids) != 2 || ids[0] != "day" || ids[1] != "night" {
		t.Errorf("unexpected IDs: %v", ids)
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	_, err := Parse([]byte("palettes:\n  broken:\n    colors:\n      primary: notacolor\n"))
	if err == nil {
		t.Fatal("expected error for unknown color string")
	}
}

func TestParseRejectsBadBrightness(t *testing.T) {
	_, err := Parse([]byte("palettes:\n  broken:\n    brightness: dim\n    colors: {}\n"))
	if err == nil {
		t.Fatal("expected error for unknown brightness")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.yaml")
	if err := os.WriteFile(path, []byte(testBundle), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if b.Len() != 2 {
		t.Errorf("expected 2 palettes, got %d", b.Len())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPaletteFallbackColors(t *testing.T) {
	light := DefaultLight()
	dark := DefaultDark()

	if light.Has("nonexistent") {
		t.Error("Has should be false for undefined roles")
	}
	if got := light.Color("nonexistent"); got != graphics.ColorBlack {
		t.Errorf("light fallback should be black, got %v", got.Hex())
	}
	if got := dark.Color("nonexistent"); got != graphics.ColorWhite {
		t.Errorf("dark fallback should be white, got %v", got.Hex())
	}
}

func TestCopyWith(t *testing.T) {
	base := DefaultLight()
	custom := base.CopyWith(map[string]graphics.Color{
		"primary": graphics.ColorRed,
	})

	if custom.Color("primary") != graphics.ColorRed {
		t.Error("override should apply to the copy")
	}
	if base.Color("primary") == graphics.ColorRed {
		t.Error("CopyWith must not modify the receiver")
	}
	if custom.Color("background") != base.Color("background") {
		t.Error("non-overridden roles should carry over")
	}
}

func TestManagerUseNotifies(t *testing.T) {
	m := NewManager(nil)
	if m.Current().ID != "light" {
		t.Errorf("expected default light palette, got %q", m.Current().ID)
	}

	var changes []string
	remove := m.AddHandler(func(p *Palette) {
		changes = append(changes, p.ID)
	})

	m.Use(DefaultDark())
	m.Use(DefaultDark()) // same ID, no notification
	m.Use(nil)           // no-op

	if len(changes) != 1 || changes[0] != "dark" {
		t.Errorf("expected single change to dark, got %v", changes)
	}
	if !m.Current().Has("primary") {
		t.Error("current palette should define primary")
	}

	remove()
	m.Use(DefaultLight())
	if len(changes) != 1 {
		t.Errorf("expected no notifications after removal, got %v", changes)
	}
}
