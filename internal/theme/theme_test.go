package theme

import (
	"image/color"
	"strings"
	"testing"
)

func TestParseOverridesDefaults(t *testing.T) {
	th, err := Parse(strings.NewReader(`
# comment
Name: Mine
ButtonBackgroundActive: #102030
CanvasBackground: #00000080
Unknown: #FFFFFF
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if th.Name != "Mine" {
		t.Errorf("name = %q", th.Name)
	}
	if th.ButtonBackgroundActive != (color.RGBA{0x10, 0x20, 0x30, 0xFF}) {
		t.Errorf("active = %+v", th.ButtonBackgroundActive)
	}
	if th.CanvasBackground != (color.RGBA{0, 0, 0, 0x80}) {
		t.Errorf("canvas = %+v", th.CanvasBackground)
	}
	if th.ButtonText != Default().ButtonText {
		t.Errorf("missing keys should keep defaults")
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	if _, err := Parse(strings.NewReader("ButtonText: red\n")); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoaderEmbedded(t *testing.T) {
	l := &Loader{ConfigDir: t.TempDir(), SystemDir: t.TempDir()}
	th, err := l.Load("dark")
	if err != nil {
		t.Fatalf("load dark: %v", err)
	}
	if th.Name != "Dark" {
		t.Fatalf("name = %q", th.Name)
	}
	if def, err := l.Load(""); err != nil || def.Name != "Default" {
		t.Fatalf("empty name = %v, %v", def, err)
	}
	if _, err := l.Load("no-such-theme"); err == nil {
		t.Fatal("expected error for unknown theme")
	}
}
