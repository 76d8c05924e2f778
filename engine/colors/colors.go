package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a linear RGBA colour with components in [0, 1].
type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Red      = Color{1, 0, 0, 1}
	Green    = Color{0, 1, 0, 1}
	Blue     = Color{0, 0, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Magenta  = Color{1, 0, 1, 1}
	Cyan     = Color{0, 1, 1, 1}
	Yellow   = Color{1, 1, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
)

var named = map[string]Color{
	"white":    White,
	"red":      Red,
	"green":    Green,
	"blue":     Blue,
	"black":    Black,
	"magenta":  Magenta,
	"cyan":     Cyan,
	"yellow":   Yellow,
	"gray":     Gray,
	"grey":     Gray,
	"darkgray": DarkGray,
}

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// RGBA converts to an 8-bit colour for rasterising.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: to8(c[0]), G: to8(c[1]), B: to8(c[2]), A: to8(c[3])}
}

func to8(f float32) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(f*255 + 0.5)
}

// Parse accepts a colour name or a "#rrggbb" / "#rrggbbaa" hex string.
func Parse(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := named[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") || (len(s) != 7 && len(s) != 9) {
		return Color{}, fmt.Errorf("unknown colour %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("bad colour %q: %w", s, err)
	}
	if len(s) == 7 {
		v = v<<8 | 0xff
	}
	return Color{
		float32(v>>24&0xff) / 255,
		float32(v>>16&0xff) / 255,
		float32(v>>8&0xff) / 255,
		float32(v&0xff) / 255,
	}, nil
}

// UnmarshalText allows colours in config files.
func (c *Color) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalText writes the colour as "#rrggbbaa".
func (c Color) MarshalText() ([]byte, error) {
	p := c.RGBA()
	return []byte(fmt.Sprintf("#%02x%02x%02x%02x", p.R, p.G, p.B, p.A)), nil
}
