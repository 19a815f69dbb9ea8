package theme

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/appbase/pkg/errors"
	"github.com/go-drift/appbase/pkg/graphics"
)

// Bundle is a set of palettes keyed by identifier, usually loaded from a
// YAML document:
//
//	palettes:
//	  day:
//	    brightness: light
//	    colors:
//	      primary: "#6200EE"
//	      background: white
//	  night:
//	    brightness: dark
//	    colors:
//	      primary: "#D0BCFF"
//	      background: "#1C1B1F"
type Bundle struct {
	palettes map[string]*Palette
}

// bundleDoc mirrors the YAML document structure.
type bundleDoc struct {
	Palettes map[string]paletteDoc `yaml:"palettes"`
}

type paletteDoc struct {
	Brightness string            `yaml:"brightness,omitempty"`
	Colors     map[string]string `yaml:"colors"`
}

// Load reads a palette bundle from a YAML file.
func Load(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme bundle: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Parse decodes a palette bundle from YAML bytes. Color values accept
// every form understood by [graphics.Parse]; an unknown color string or
// brightness is a parse error, reported and returned.
func Parse(data []byte) (*Bundle, error) {
	var doc bundleDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		parseErr := fmt.Errorf("failed to parse theme bundle: %w", err)
		errors.Report(&errors.AppError{
			Op:   "theme.Parse",
			Kind: errors.KindTheme,
			Err:  parseErr,
		})
		return nil, parseErr
	}

	b := &Bundle{palettes: make(map[string]*Palette, len(doc.Palettes))}
	for id, pd := range doc.Palettes {
		p, err := buildPalette(id, pd)
		if err != nil {
			errors.Report(&errors.AppError{
				Op:   "theme.Parse",
				Kind: errors.KindTheme,
				ID:   id,
				Err:  err,
			})
			return nil, err
		}
		b.palettes[id] = p
	}
	return b, nil
}

// buildPalette converts a decoded palette document into a Palette.
func buildPalette(id string, doc paletteDoc) (*Palette, error) {
	brightness := BrightnessLight
	switch doc.Brightness {
	case "", "light":
	case "dark":
		brightness = BrightnessDark
	default:
		return nil, fmt.Errorf("palette %q: unknown brightness %q", id, doc.Brightness)
	}

	colors := make(map[string]graphics.Color, len(doc.Colors))
	for role, value := range doc.Colors {
		c, err := graphics.Parse(value)
		if err != nil {
			return nil, fmt.Errorf("palette %q, role %q: %w", id, role, err)
		}
		colors[role] = c
	}

	return &Palette{
		ID:         id,
		Brightness: brightness,
		Colors:     colors,
	}, nil
}

// Palette returns the palette with the given identifier.
func (b *Bundle) Palette(id string) (*Palette, bool) {
	p, ok := b.palettes[id]
	return p, ok
}

// IDs returns the bundle's palette identifiers in sorted order.
func (b *Bundle) IDs() []string {
	ids := make([]string, 0, len(b.palettes))
	for id := range b.palettes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of palettes in the bundle.
func (b *Bundle) Len() int {
	return len(b.palettes)
}
