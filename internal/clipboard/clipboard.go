// Package clipboard moves stroke colors to and from the system clipboard as
// hex text.
package clipboard

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/example/sketchpad/internal/palette"
)

// ReadColor parses the clipboard text as a hex color.
func ReadColor() (color.RGBA, error) {
	text, err := ReadText()
	if err != nil {
		return color.RGBA{}, err
	}
	col, err := palette.ParseHex(strings.TrimSpace(text))
	if err != nil {
		return color.RGBA{}, fmt.Errorf("clipboard: %w", err)
	}
	return col, nil
}

// WriteColor publishes c as "#RRGGBB" text.
func WriteColor(c color.RGBA) error {
	return WriteText(palette.Hex(c))
}
