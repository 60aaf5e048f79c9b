package toolbar

import (
	"image"
	"image/color"
	"testing"

	"github.com/example/sketchpad/internal/palette"
	"github.com/example/sketchpad/internal/surface"
	"github.com/example/sketchpad/internal/theme"
	"github.com/example/sketchpad/internal/tool"
)

func center(r image.Rectangle) image.Point {
	return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

func toolRect(t *testing.T, c *Controller, m tool.Mode) image.Rectangle {
	t.Helper()
	for _, cb := range c.tools {
		if cb.Button.(*ToolButton).mode == m {
			return cb.Rect()
		}
	}
	t.Fatalf("no button for %v", m)
	return image.Rectangle{}
}

func TestSingleActiveControl(t *testing.T) {
	c := New(theme.Default(), WithPickerEnabled(true))
	if got := c.ActiveLabels(); len(got) != 0 {
		t.Fatalf("expected no active control before SetActive, got %v", got)
	}
	for _, m := range []tool.Mode{tool.ModeDraw, tool.ModeErase, tool.ModeRectangle, tool.ModeEllipse, tool.ModePicker, tool.ModeDraw} {
		c.SetActive(m)
		got := c.ActiveLabels()
		if len(got) != 1 || got[0] != labels[m] {
			t.Fatalf("after SetActive(%v) active = %v", m, got)
		}
	}
}

func TestDrivesMachine(t *testing.T) {
	var m *tool.Machine
	c := New(theme.Default(), WithHandler(func(a Action) {
		switch a.Kind {
		case ActionMode:
			m.SetMode(a.Mode)
		case ActionClear:
			m.Clear()
		case ActionColor:
			m.SetColor(a.Color)
		}
	}))
	m = tool.New(surface.New(20, 20), tool.WithIndicator(c))
	defer m.Close()

	if got := c.ActiveLabels(); len(got) != 1 || got[0] != "B:Draw" {
		t.Fatalf("initial active = %v", got)
	}
	c.Click(center(toolRect(t, c, tool.ModeEllipse)))
	if m.Mode() != tool.ModeEllipse {
		t.Fatalf("mode = %v, want ellipse", m.Mode())
	}
	if got := c.ActiveLabels(); len(got) != 1 || got[0] != "O:Ellipse" {
		t.Fatalf("active = %v", got)
	}
	c.Click(center(c.swRects[4]))
	if m.Color() != palette.Swatches()[4].Color || c.Color() != m.Color() {
		t.Fatalf("color machine=%v toolbar=%v", m.Color(), c.Color())
	}
}

func TestClickEmitsActions(t *testing.T) {
	var got []Action
	c := New(theme.Default(), WithPickerEnabled(true), WithHandler(func(a Action) { got = append(got, a) }))

	if !c.Click(center(toolRect(t, c, tool.ModeRectangle))) {
		t.Fatal("click on rectangle button missed")
	}
	if !c.Click(center(c.clear.Rect())) {
		t.Fatal("click on clear button missed")
	}
	if !c.Click(center(c.swRects[2])) {
		t.Fatal("click on swatch missed")
	}
	if c.Click(image.Pt(c.Width()/2, c.Height()+100)) {
		t.Fatal("click below the toolbar should miss")
	}

	want := []Action{
		{Kind: ActionMode, Mode: tool.ModeRectangle},
		{Kind: ActionClear},
		{Kind: ActionColor, Color: palette.Swatches()[2].Color},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d actions, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("action %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestClearIsNotActive(t *testing.T) {
	c := New(theme.Default())
	c.SetActive(tool.ModeDraw)
	c.Click(center(c.clear.Rect()))
	if got := c.ActiveLabels(); len(got) != 1 || got[0] != "B:Draw" {
		t.Fatalf("active = %v", got)
	}
}

func TestPickerDisabled(t *testing.T) {
	var got []Action
	c := New(theme.Default(), WithHandler(func(a Action) { got = append(got, a) }))
	r := toolRect(t, c, tool.ModePicker)
	c.Click(center(r))
	if len(got) != 0 {
		t.Fatalf("disabled picker emitted %+v", got)
	}

	th := theme.Default()
	img := image.NewRGBA(image.Rect(0, 0, c.Width(), c.Height()))
	c.Draw(img, c.Height())
	if px := img.RGBAAt(r.Min.X+1, r.Min.Y+1); px != th.ButtonBackgroundDisabled {
		t.Errorf("picker background = %v, want disabled %v", px, th.ButtonBackgroundDisabled)
	}

	c.SetPickerEnabled(true)
	c.Click(center(r))
	if len(got) != 1 || got[0].Mode != tool.ModePicker {
		t.Fatalf("enabled picker emitted %+v", got)
	}
}

func TestDrawShowsActiveAndColor(t *testing.T) {
	th := theme.Default()
	c := New(th)
	c.SetActive(tool.ModeErase)
	c.SetColor(color.RGBA{R: 255, A: 255})

	img := image.NewRGBA(image.Rect(0, 0, c.Width(), c.Height()))
	c.Draw(img, c.Height())

	er := toolRect(t, c, tool.ModeErase)
	if px := img.RGBAAt(er.Min.X+2, er.Max.Y-3); px != th.ButtonBackgroundActive {
		t.Errorf("erase background = %v, want active %v", px, th.ButtonBackgroundActive)
	}
	dr := toolRect(t, c, tool.ModeDraw)
	if px := img.RGBAAt(dr.Min.X+2, dr.Max.Y-3); px != th.ButtonBackground {
		t.Errorf("draw background = %v, want %v", px, th.ButtonBackground)
	}
	if px := img.RGBAAt(center(c.color.Rect()).X, center(c.color.Rect()).Y); px != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("color control = %v", px)
	}
}

func TestHover(t *testing.T) {
	c := New(theme.Default())
	p := center(toolRect(t, c, tool.ModeDraw))
	if !c.Hover(p) {
		t.Fatal("first hover should request repaint")
	}
	if c.Hover(p) {
		t.Fatal("hover on same button should not request repaint")
	}
	if !c.Hover(image.Pt(-5, -5)) {
		t.Fatal("leaving the button should request repaint")
	}
}
