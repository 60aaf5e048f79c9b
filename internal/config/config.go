package config

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/example/sketchpad/internal/palette"
	"github.com/example/sketchpad/internal/theme"
)

// Widths holds the line width used by each drawing mode.
type Widths struct {
	Draw      int
	Erase     int
	Rectangle int
	Ellipse   int
}

// NotifyConfig selects which events raise desktop notifications.
type NotifyConfig struct {
	Pick bool
	Copy bool
}

// Config holds the application configuration.
type Config struct {
	Theme       string
	Color       color.RGBA
	Picker      string
	LegacyShift bool
	Width       int
	Height      int
	Widths      Widths
	Notify      NotifyConfig
	Themes      map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme:  "", // Default to empty to allow fallback to Env/Default
		Color:  palette.DefaultStroke,
		Picker: "auto",
		Width:  800,
		Height: 600,
		Widths: Widths{Draw: 2, Erase: 20, Rectangle: 2, Ellipse: 2},
		Themes: make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	fmt.Fprintf(&sb, "color = %s\n", palette.Hex(c.Color))
	fmt.Fprintf(&sb, "picker = %s\n", c.Picker)
	fmt.Fprintf(&sb, "legacy_shift = %v\n", c.LegacyShift)
	fmt.Fprintf(&sb, "width = %d\n", c.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Height)
	sb.WriteString("\n")

	sb.WriteString("[widths]\n")
	fmt.Fprintf(&sb, "draw = %d\n", c.Widths.Draw)
	fmt.Fprintf(&sb, "erase = %d\n", c.Widths.Erase)
	fmt.Fprintf(&sb, "rectangle = %d\n", c.Widths.Rectangle)
	fmt.Fprintf(&sb, "ellipse = %d\n", c.Widths.Ellipse)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "pick = %v\n", c.Notify.Pick)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, f := range theme.Fields(t) {
			fmt.Fprintf(&sb, "%s: %s\n", f.Name, palette.Hex(f.Color))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
