// Package graphics provides the color primitives shared by the theme
// system and by application code.
package graphics

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
func RGBA(r, g, b uint8, a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// WithAlpha8 returns a copy of the color with the given alpha byte (0-255).
func (c Color) WithAlpha8(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// Hex returns the canonical "#AARRGGBB" form of the color.
func (c Color) Hex() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// Luminance returns the relative luminance of the color (0.0 to 1.0),
// ignoring alpha. Useful for picking readable foreground colors.
func (c Color) Luminance() float64 {
	r, g, b, _ := c.RGBAF()
	return 0.2126*linearize(r) + 0.7152*linearize(g) + 0.0722*linearize(b)
}

// linearize converts an sRGB component to linear light.
func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Lerp linearly interpolates between two colors. t is clamped to [0, 1];
// each ARGB component is interpolated independently.
func Lerp(from, to Color, t float64) Color {
	t = clamp01(t)
	lerpByte := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return RGBA8(
		lerpByte(uint8(from>>16), uint8(to>>16)),
		lerpByte(uint8(from>>8), uint8(to>>8)),
		lerpByte(uint8(from), uint8(to)),
		lerpByte(uint8(from>>24), uint8(to>>24)),
	)
}

// ErrInvalidColor is returned by Parse for unrecognized color strings.
var ErrInvalidColor = fmt.Errorf("invalid color")

// Parse converts a color string to a Color. Accepted forms:
//
//   - "#RGB" shorthand, each digit doubled ("#fa0" is "#FFAA00")
//   - "#RRGGBB" opaque hex
//   - "#AARRGGBB" hex with alpha
//   - the same three forms with an "0x" prefix instead of "#"
//   - any SVG 1.1 color name ("white", "cornflowerblue", ...)
//
// Names are matched case-insensitively.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}

	hex := ""
	switch {
	case strings.HasPrefix(s, "#"):
		hex = s[1:]
	case strings.HasPrefix(s, "0x"):
		hex = s[2:]
	default:
		if c, ok := colornames.Map[s]; ok {
			return RGB(c.R, c.G, c.B), nil
		}
		return 0, fmt.Errorf("%w: unknown color name %q", ErrInvalidColor, s)
	}

	switch len(hex) {
	case 3:
		expanded := make([]byte, 0, 6)
		for i := 0; i < 3; i++ {
			expanded = append(expanded, hex[i], hex[i])
		}
		hex = string(expanded)
		fallthrough
	case 6:
		hex = "ff" + hex
		fallthrough
	case 8:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return Color(uint32(v)), nil
	default:
		return 0, fmt.Errorf("%w: %q has %d hex digits", ErrInvalidColor, s, len(hex))
	}
}

// MustParse is like Parse but panics on invalid input.
// Intended for compile-time-constant color literals.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// alpha01ToByte converts a 0-1 alpha to 0-255 with proper rounding.
func alpha01ToByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)
