// Package palette holds the swatch colors offered by the toolbar and the hex
// conversions shared by the toolbar, the clipboard and the config file.
package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Swatch is a named palette entry.
type Swatch struct {
	Name  string
	Color color.RGBA
}

// DefaultStroke is the stroke color used before the user picks one.
var DefaultStroke = color.RGBA{0, 0, 0, 255}

var swatches = []Swatch{
	{"Black", color.RGBA{0, 0, 0, 255}},
	{"White", color.RGBA{255, 255, 255, 255}},
	{"Red", color.RGBA{255, 0, 0, 255}},
	{"Lime", color.RGBA{0, 255, 0, 255}},
	{"Blue", color.RGBA{0, 0, 255, 255}},
	{"Yellow", color.RGBA{255, 255, 0, 255}},
	{"Cyan", color.RGBA{0, 255, 255, 255}},
	{"Magenta", color.RGBA{255, 0, 255, 255}},
	{"Maroon", color.RGBA{128, 0, 0, 255}},
	{"Green", color.RGBA{0, 128, 0, 255}},
	{"Navy", color.RGBA{0, 0, 128, 255}},
	{"Gray", color.RGBA{128, 128, 128, 255}},
}

// Swatches returns a copy of the toolbar palette.
func Swatches() []Swatch {
	out := make([]Swatch, len(swatches))
	copy(out, swatches)
	return out
}

// ParseHex parses #RGB, #RRGGBB or #RRGGBBAA. The leading # is optional.
func ParseHex(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) == 9 {
		val, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		return color.RGBA{
			R: uint8(val >> 24),
			G: uint8((val >> 16) & 0xFF),
			B: uint8((val >> 8) & 0xFF),
			A: uint8(val & 0xFF),
		}, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}

// Hex formats c as #RRGGBB, or #RRGGBBAA when it is not opaque.
func Hex(c color.RGBA) string {
	if c.A == 255 {
		cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
		return strings.ToUpper(cf.Hex())
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// FromUnit converts channel values in the 0..1 range, as reported by the
// desktop portal, into an opaque color.
func FromUnit(r, g, b float64) color.RGBA {
	c := colorful.Color{R: r, G: g, B: b}.Clamped()
	r8, g8, b8 := c.RGB255()
	return color.RGBA{r8, g8, b8, 255}
}

// Opaque returns c with full alpha. Hex colors keep straight channel values,
// so the channels are left as they are.
func Opaque(c color.RGBA) color.RGBA {
	c.A = 255
	return c
}
