package picker

import (
	"context"
	"errors"
	"image/color"
	"testing"

	"github.com/jezek/xgb/xproto"
)

type fakeSampler struct {
	name      string
	available bool
	col       color.RGBA
	probes    int
}

func (f *fakeSampler) Name() string { return f.name }
func (f *fakeSampler) Available() bool {
	f.probes++
	return f.available
}
func (f *fakeSampler) Sample(context.Context) (color.RGBA, error) { return f.col, nil }

func TestAutoPicksFirstAvailable(t *testing.T) {
	a := &fakeSampler{name: "a"}
	b := &fakeSampler{name: "b", available: true, col: color.RGBA{1, 2, 3, 255}}
	s := Auto(a, b)
	if !s.Available() {
		t.Fatal("expected auto to be available")
	}
	got, err := s.Sample(context.Background())
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	if got != b.col {
		t.Fatalf("sample = %+v, want %+v", got, b.col)
	}
	if s.Name() != "auto:b" {
		t.Fatalf("name = %q", s.Name())
	}
	s.Available()
	if a.probes != 1 || b.probes != 1 {
		t.Fatalf("expected one probe each, got %d %d", a.probes, b.probes)
	}
}

func TestAutoWithoutBackends(t *testing.T) {
	s := Auto(&fakeSampler{name: "a"})
	if s.Available() {
		t.Fatal("expected unavailable")
	}
	if _, err := s.Sample(context.Background()); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestNew(t *testing.T) {
	for _, name := range []string{"", "auto", "portal", "x11", "none", " X11 "} {
		if _, err := New(name); err != nil {
			t.Errorf("New(%q): %v", name, err)
		}
	}
	if _, err := New("webcam"); err == nil {
		t.Error("expected error for unknown backend")
	}
	s, _ := New("none")
	if s.Available() {
		t.Error("none backend must be unavailable")
	}
}

func TestDecodeZPixel(t *testing.T) {
	formats := []xproto.Format{{Depth: 24, BitsPerPixel: 32}}
	got, err := decodeZPixel(formats, 24, []byte{0x30, 0x20, 0x10, 0x00})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if want := (color.RGBA{0x10, 0x20, 0x30, 0xFF}); got != want {
		t.Fatalf("decode = %+v, want %+v", got, want)
	}
	if _, err := decodeZPixel(formats, 16, []byte{1, 2}); err == nil {
		t.Fatal("expected unsupported depth error")
	}
}
