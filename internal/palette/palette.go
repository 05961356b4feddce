// Package palette holds the object colors and the rainbow cycle.
package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"golang.org/x/image/colornames"
)

// Color is a normalized RGBA color, each channel in [0, 1].
type Color struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
	A float32 `json:"a"`
}

// WithAlpha returns c with alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// RGBA8 converts to 8-bit channels, clamping out-of-range values.
func (c Color) RGBA8() color.RGBA {
	return color.RGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

func to8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// FromRGBA converts an 8-bit color.
func FromRGBA(c color.RGBA) Color {
	return Color{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

// Default returns the eight built-in object colors.
func Default() []Color {
	return []Color{
		{1.0, 0.3, 0.3, 1}, // red
		{1.0, 0.7, 0.2, 1}, // orange
		{1.0, 1.0, 0.3, 1}, // yellow
		{0.4, 1.0, 0.4, 1}, // green
		{0.3, 0.6, 1.0, 1}, // blue
		{0.9, 0.3, 1.0, 1}, // purple
		{1.0, 0.5, 1.0, 1}, // pink
		{0.2, 1.0, 1.0, 1}, // cyan
	}
}

// Parse accepts "#rgb", "#rrggbb", "#rrggbbaa" or a CSS color name ("tomato").
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return Color{}, fmt.Errorf("empty color")
	}
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[s]
		if !ok {
			return Color{}, fmt.Errorf("unknown color name %q", s)
		}
		return FromRGBA(c), nil
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return FromRGBA(color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}), nil
}

// Rainbow returns a fully opaque color cycling through the hue wheel once per unit of t.
func Rainbow(t float32) Color {
	const tau = 2 * math32.Pi
	return Color{
		R: 0.5 + 0.5*math32.Sin(t*tau),
		G: 0.5 + 0.5*math32.Sin((t+1.0/3)*tau),
		B: 0.5 + 0.5*math32.Sin((t+2.0/3)*tau),
		A: 1,
	}
}
