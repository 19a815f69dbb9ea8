// Package theme provides named color palettes keyed by identifier.
//
// Palettes are defined in YAML bundles (see [Load]) or built in code, and
// the active palette is tracked by a [Manager]. Color roles follow the
// usual scheme conventions: "primary", "onPrimary", "background",
// "onBackground", "surface", "onSurface", "error", "onError".
package theme

import (
	"fmt"

	"github.com/go-drift/appbase/pkg/graphics"
)

// Brightness indicates whether a palette is light or dark.
type Brightness int

const (
	// BrightnessLight is a light palette (dark content on light surfaces).
	BrightnessLight Brightness = iota
	// BrightnessDark is a dark palette (light content on dark surfaces).
	BrightnessDark
)

func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// Palette is a named set of color roles.
type Palette struct {
	// ID is the palette's identifier within its bundle.
	ID string
	// Brightness indicates if this is a light or dark palette.
	Brightness Brightness
	// Colors maps role names to colors.
	Colors map[string]graphics.Color
}

// Color returns the color for a role. Missing roles fall back to black
// for light palettes and white for dark ones, so lookups never fail at
// render time; use Has to distinguish.
func (p *Palette) Color(role string) graphics.Color {
	if c, ok := p.Colors[role]; ok {
		return c
	}
	if p.Brightness == BrightnessDark {
		return graphics.ColorWhite
	}
	return graphics.ColorBlack
}

// Has reports whether the palette defines the given role.
func (p *Palette) Has(role string) bool {
	_, ok := p.Colors[role]
	return ok
}

// CopyWith returns a copy of the palette with the given role overrides
// applied. The receiver is not modified.
func (p *Palette) CopyWith(overrides map[string]graphics.Color) *Palette {
	colors := make(map[string]graphics.Color, len(p.Colors)+len(overrides))
	for role, c := range p.Colors {
		colors[role] = c
	}
	for role, c := range overrides {
		colors[role] = c
	}
	return &Palette{
		ID:         p.ID,
		Brightness: p.Brightness,
		Colors:     colors,
	}
}

func (p *Palette) String() string {
	return fmt.Sprintf("Palette(%s, %s, %d roles)", p.ID, p.Brightness, len(p.Colors))
}

// DefaultLight returns the built-in light palette.
func DefaultLight() *Palette {
	return &Palette{
		ID:         "light",
		Brightness: BrightnessLight,
		Colors: map[string]graphics.Color{
			"primary":      graphics.MustParse("#6200EE"),
			"onPrimary":    graphics.ColorWhite,
			"background":   graphics.ColorWhite,
			"onBackground": graphics.MustParse("#1C1B1F"),
			"surface":      graphics.MustParse("#FFFBFE"),
			"onSurface":    graphics.MustParse("#1C1B1F"),
			"error":        graphics.MustParse("#B3261E"),
			"onError":      graphics.ColorWhite,
		},
	}
}

// DefaultDark returns the built-in dark palette.
func DefaultDark() *Palette {
	return &Palette{
		ID:         "dark",
		Brightness: BrightnessDark,
		Colors: map[string]graphics.Color{
			"primary":      graphics.MustParse("#D0BCFF"),
			"onPrimary":    graphics.MustParse("#381E72"),
			"background":   graphics.MustParse("#1C1B1F"),
			"onBackground": graphics.MustParse("#E6E1E5"),
			"surface":      graphics.MustParse("#141218"),
			"onSurface":    graphics.MustParse("#E6E1E5"),
			"error":        graphics.MustParse("#F2B8B5"),
			"onError":      graphics.MustParse("#601410"),
		},
	}
}
