package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
color = #FF0000
picker = X11
legacy_shift = true
width = 640
height = 480

[widths]
draw = 3
erase = 30

[notify]
pick = true

[theme.my_custom_theme]
Background = #111111
Foreground = #FFFFFF
`
	r := strings.NewReader(input)
	cfg, err := Parse(r)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}
	if cfg.Color != (color.RGBA{R: 0xFF, A: 0xFF}) {
		t.Errorf("Unexpected color: %+v", cfg.Color)
	}
	if cfg.Picker != "x11" {
		t.Errorf("Expected picker 'x11', got %q", cfg.Picker)
	}
	if !cfg.LegacyShift {
		t.Error("Expected legacy_shift to be true")
	}
	if cfg.Width != 640 || cfg.Height != 480 {
		t.Errorf("Unexpected size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Widths.Draw != 3 || cfg.Widths.Erase != 30 {
		t.Errorf("Unexpected widths: %+v", cfg.Widths)
	}
	if cfg.Widths.Rectangle != 2 || cfg.Widths.Ellipse != 2 {
		t.Errorf("Unset widths should keep defaults: %+v", cfg.Widths)
	}

	if !cfg.Notify.Pick || cfg.Notify.Copy {
		t.Errorf("Unexpected notify settings: %+v", cfg.Notify)
	}

	theme, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}

	if theme.Background.R != 0x11 || theme.Background.G != 0x11 || theme.Background.B != 0x11 {
		t.Errorf("Unexpected Background color: %+v", theme.Background)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bad color", "color = purple\n"},
		{"bad bool", "legacy_shift = maybe\n"},
		{"bad notify", "[notify]\npick = often\n"},
		{"zero width", "[widths]\nerase = 0\n"},
		{"bad theme color", "[theme.x]\nBackground = #XYZ\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.input)); err == nil {
				t.Fatalf("expected error for %q", tt.input)
			}
		})
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
color = #12345680
picker = portal

[widths]
draw = 4
rectangle = 6

[notify]
copy = true

[theme.custom]
Name = custom
Background = #000000
Foreground = #FFFFFF
`
	// 1. Parse initial input
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	// 2. Generate string representation
	generated := cfg.String()

	// 3. Parse generated string
	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v\n%s", err, generated)
	}

	// 4. Compare relevant fields
	if cfg.Theme != cfg2.Theme {
		t.Errorf("Theme mismatch: %q vs %q", cfg.Theme, cfg2.Theme)
	}
	if cfg.Color != cfg2.Color {
		t.Errorf("Color mismatch: %v vs %v", cfg.Color, cfg2.Color)
	}
	if cfg.Picker != cfg2.Picker {
		t.Errorf("Picker mismatch: %q vs %q", cfg.Picker, cfg2.Picker)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}
	if cfg.Widths != cfg2.Widths {
		t.Errorf("Widths mismatch: %+v vs %+v", cfg.Widths, cfg2.Widths)
	}

	// Check theme persistence
	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if *t1 != *t2 {
		t.Errorf("Theme mismatch: %+v vs %+v", t1, t2)
	}
}

func TestLoaderOverridePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.rc")
	if err := os.WriteFile(path, []byte("picker = none\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HOME", dir)

	cfg, err := NewLoader("1.0.0", path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Picker != "none" {
		t.Errorf("Expected picker 'none', got %q", cfg.Picker)
	}
}

func TestLoaderDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	l := NewLoader("1.0.0", "")
	if p := l.GetConfigPath(); p != "" {
		t.Fatalf("expected no config path, got %q", p)
	}
	cfg, err := l.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Picker != "auto" || cfg.Widths.Erase != 20 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}
