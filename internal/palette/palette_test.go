package palette

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"#FF0000", color.RGBA{255, 0, 0, 255}},
		{"00ff00", color.RGBA{0, 255, 0, 255}},
		{"#00f", color.RGBA{0, 0, 255, 255}},
		{" #11223380 ", color.RGBA{0x11, 0x22, 0x33, 0x80}},
	}
	for _, c := range cases {
		got, err := ParseHex(c.in)
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseHex(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestParseHexRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "#12", "#zzzzzz", "red"} {
		if _, err := ParseHex(in); err == nil {
			t.Errorf("ParseHex(%q): expected error", in)
		}
	}
}

func TestHex(t *testing.T) {
	if got := Hex(color.RGBA{0x12, 0xAB, 0xEF, 255}); got != "#12ABEF" {
		t.Errorf("Hex opaque = %s", got)
	}
	if got := Hex(color.RGBA{1, 2, 3, 4}); got != "#01020304" {
		t.Errorf("Hex translucent = %s", got)
	}
}

func TestFromUnit(t *testing.T) {
	got := FromUnit(1, 0, 0.5)
	if got.R != 255 || got.G != 0 || got.A != 255 {
		t.Fatalf("FromUnit = %+v", got)
	}
	if got.B != 127 && got.B != 128 {
		t.Fatalf("FromUnit blue = %d", got.B)
	}
	if c := FromUnit(2, -1, 0); c.R != 255 || c.G != 0 {
		t.Fatalf("FromUnit out of range = %+v", c)
	}
}

func TestOpaque(t *testing.T) {
	if got := Opaque(color.RGBA{0x11, 0x22, 0x33, 0x80}); got != (color.RGBA{0x11, 0x22, 0x33, 0xFF}) {
		t.Fatalf("Opaque = %+v", got)
	}
}
