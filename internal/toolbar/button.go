package toolbar

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/sketchpad/internal/theme"
	"github.com/example/sketchpad/internal/tool"
)

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
	StateDisabled
)

const buttonHeight = 24

// Button represents an interactive UI element.
// Activate performs the button's action when clicked.
type Button interface {
	Draw(dst *image.RGBA, state ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Activate()
}

// CacheButton wraps another Button and caches its rendered states.
// It delegates all interface methods to the wrapped Button while
// caching the result of Draw for each state.
type CacheButton struct {
	Button
	cache [4]*image.RGBA
}

var _ Button = (*CacheButton)(nil)

func (cb *CacheButton) Draw(dst *image.RGBA, state ButtonState) {
	if cb.cache[state] == nil {
		rect := cb.Button.Rect()
		img := image.NewRGBA(rect)
		cb.Button.Draw(img, state)
		cb.cache[state] = img
	}
	draw.Draw(dst, cb.Button.Rect(), cb.cache[state], cb.Button.Rect().Min, draw.Src)
}

func (cb *CacheButton) Rect() image.Rectangle { return cb.Button.Rect() }

func (cb *CacheButton) SetRect(r image.Rectangle) {
	if r != cb.Button.Rect() {
		cb.Button.SetRect(r)
		cb.cache = [4]*image.RGBA{}
	}
}

func (cb *CacheButton) Activate() { cb.Button.Activate() }

// labelButton paints a themed rectangle with a text label. It backs both the
// tool buttons and the momentary action buttons.
type labelButton struct {
	label string
	rect  image.Rectangle
	theme *theme.Theme
}

func (lb *labelButton) Draw(dst *image.RGBA, state ButtonState) {
	bg := lb.theme.ButtonBackground
	fg := lb.theme.ButtonText
	switch state {
	case StateHover:
		bg = lb.theme.ButtonBackgroundHover
	case StatePressed:
		bg = lb.theme.ButtonBackgroundActive
	case StateDisabled:
		bg = lb.theme.ButtonBackgroundDisabled
		fg = lb.theme.ButtonTextDisabled
	}
	draw.Draw(dst, lb.rect, &image.Uniform{bg}, image.Point{}, draw.Src)
	if state == StatePressed {
		drawRect(dst, lb.rect, lb.theme.ButtonBorder, 1)
	}
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(fg), Face: basicfont.Face7x13,
		Dot: fixed.P(lb.rect.Min.X+4, lb.rect.Min.Y+16)}
	d.DrawString(lb.label)
}

func (lb *labelButton) Rect() image.Rectangle { return lb.rect }

func (lb *labelButton) SetRect(r image.Rectangle) {
	if r != lb.rect {
		lb.rect = r
	}
}

// ToolButton represents a toolbar button that selects a tool mode.
type ToolButton struct {
	labelButton
	mode tool.Mode
	// onSelect is called when the button is activated.
	onSelect func()
}

func (tb *ToolButton) Activate() {
	if tb.onSelect != nil {
		tb.onSelect()
	}
}

// ActionButton performs a momentary action and never stays pressed.
type ActionButton struct {
	labelButton
	onActivate func()
}

func (ab *ActionButton) Activate() {
	if ab.onActivate != nil {
		ab.onActivate()
	}
}

// ColorButton shows the current stroke color. It is redrawn every frame, so
// it is never wrapped in a CacheButton.
type ColorButton struct {
	rect  image.Rectangle
	color color.RGBA
	theme *theme.Theme
}

func (cb *ColorButton) Draw(dst *image.RGBA, state ButtonState) {
	draw.Draw(dst, cb.rect, &image.Uniform{cb.theme.ToolbarBackground}, image.Point{}, draw.Src)
	inner := cb.rect.Inset(3)
	draw.Draw(dst, inner, &image.Uniform{cb.color}, image.Point{}, draw.Over)
	drawRect(dst, inner, cb.theme.ButtonBorder, 1)
}

func (cb *ColorButton) Rect() image.Rectangle { return cb.rect }

func (cb *ColorButton) SetRect(r image.Rectangle) { cb.rect = r }

func (cb *ColorButton) Activate() {}

func drawRect(img *image.RGBA, r image.Rectangle, col color.Color, w int) {
	u := &image.Uniform{col}
	draw.Draw(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+w), u, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(r.Min.X, r.Max.Y-w, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+w, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(r.Max.X-w, r.Min.Y, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
}
