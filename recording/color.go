package recording

import (
	"fmt"
	"image/color"
	"strconv"
)

// RGBA is a color with float components in [0, 1], not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	Black = RGBA{0, 0, 0, 1}
	White = RGBA{1, 1, 1, 1}
)

// Hex parses a CSS style hex color: "#rgb", "#rgba", "#rrggbb" or
// "#rrggbbaa". The leading '#' is optional. Malformed input yields black.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint64
	a = 255
	var err error
	parse := func(s string, scale uint64, v *uint64) {
		if err != nil {
			return
		}
		var n uint64
		n, err = strconv.ParseUint(s, 16, 8)
		*v = n * scale
	}

	switch len(hex) {
	case 3, 4:
		parse(hex[0:1], 17, &r)
		parse(hex[1:2], 17, &g)
		parse(hex[2:3], 17, &b)
		if len(hex) == 4 {
			parse(hex[3:4], 17, &a)
		}
	case 6, 8:
		parse(hex[0:2], 1, &r)
		parse(hex[2:4], 1, &g)
		parse(hex[4:6], 1, &b)
		if len(hex) == 8 {
			parse(hex[6:8], 1, &a)
		}
	default:
		return Black
	}
	if err != nil {
		return Black
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// WithAlpha returns c with its alpha multiplied by opacity.
func (c RGBA) WithAlpha(opacity float64) RGBA {
	c.A *= opacity
	return c
}

// Hex formats c as "#rrggbb", ignoring alpha.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

// Color converts c to a color.Color.
func (c RGBA) Color() color.Color {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

func to8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}
