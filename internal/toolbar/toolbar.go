// Package toolbar draws the tool column beside the canvas and turns clicks on
// it into commands for the tool state machine.
package toolbar

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/example/sketchpad/internal/palette"
	"github.com/example/sketchpad/internal/theme"
	"github.com/example/sketchpad/internal/tool"
)

// ActionKind identifies what a toolbar click requests.
type ActionKind int

const (
	ActionMode ActionKind = iota
	ActionClear
	ActionColor
)

// Action is a command emitted by the toolbar.
type Action struct {
	Kind  ActionKind
	Mode  tool.Mode
	Color color.RGBA
}

const (
	swatchSize = 16
	swatchStep = 18
)

var labels = map[tool.Mode]string{
	tool.ModeDraw:      "B:Draw",
	tool.ModeErase:     "E:Erase",
	tool.ModeRectangle: "X:Rect",
	tool.ModeEllipse:   "O:Ellipse",
	tool.ModePicker:    "I:Picker",
}

const clearLabel = "Del:Clear"

// Controller owns the toolbar buttons and their active/enabled state. It
// implements tool.Indicator so the state machine can mark the active tool
// and the current color.
type Controller struct {
	theme    *theme.Theme
	width    int
	tools    []*CacheButton
	clear    *CacheButton
	color    *ColorButton
	swatches []palette.Swatch
	swRects  []image.Rectangle

	active    tool.Mode
	hasActive bool
	picker    bool
	hover     Button
	handler   func(Action)
}

var _ tool.Indicator = (*Controller)(nil)

// Option configures a Controller.
type Option func(*Controller)

// WithPickerEnabled sets whether the Picker button accepts clicks.
func WithPickerEnabled(ok bool) Option { return func(c *Controller) { c.picker = ok } }

// WithHandler registers the callback that receives toolbar actions.
func WithHandler(fn func(Action)) Option { return func(c *Controller) { c.handler = fn } }

// WithSwatches replaces the palette shown below the tools.
func WithSwatches(s []palette.Swatch) Option { return func(c *Controller) { c.swatches = s } }

// New builds a toolbar painted with th.
func New(th *theme.Theme, opts ...Option) *Controller {
	if th == nil {
		th = theme.Default()
	}
	c := &Controller{
		theme:    th,
		swatches: palette.Swatches(),
		color:    &ColorButton{color: palette.DefaultStroke, theme: th},
	}
	for _, o := range opts {
		o(c)
	}

	// Wide enough for the longest label so nothing is clipped.
	d := &font.Drawer{Face: basicfont.Face7x13}
	c.width = 2*swatchStep + 8
	for _, lbl := range append(toolLabels(), clearLabel) {
		if w := d.MeasureString(lbl).Ceil() + 8; w > c.width {
			c.width = w
		}
	}

	for _, m := range tool.Modes() {
		tb := &ToolButton{labelButton: labelButton{label: labels[m], theme: th}, mode: m}
		mode := m
		tb.onSelect = func() {
			if mode == tool.ModePicker && !c.picker {
				return
			}
			c.emit(Action{Kind: ActionMode, Mode: mode})
		}
		c.tools = append(c.tools, &CacheButton{Button: tb})
	}
	c.clear = &CacheButton{Button: &ActionButton{
		labelButton: labelButton{label: clearLabel, theme: th},
		onActivate:  func() { c.emit(Action{Kind: ActionClear}) },
	}}
	c.layout()
	return c
}

func toolLabels() []string {
	var out []string
	for _, m := range tool.Modes() {
		out = append(out, labels[m])
	}
	return out
}

func (c *Controller) emit(a Action) {
	if c.handler != nil {
		c.handler(a)
	}
}

func (c *Controller) layout() {
	y := 0
	for _, cb := range c.tools {
		cb.SetRect(image.Rect(0, y, c.width, y+buttonHeight))
		y += buttonHeight
	}
	c.clear.SetRect(image.Rect(0, y, c.width, y+buttonHeight))
	y += buttonHeight + 4
	c.color.SetRect(image.Rect(0, y, c.width, y+buttonHeight))
	y += buttonHeight + 4

	c.swRects = c.swRects[:0]
	x := 4
	for range c.swatches {
		c.swRects = append(c.swRects, image.Rect(x, y, x+swatchSize, y+swatchSize))
		x += swatchStep
		if x+swatchSize > c.width {
			x = 4
			y += swatchStep
		}
	}
}

// Width is the horizontal space the toolbar occupies at the left edge.
func (c *Controller) Width() int { return c.width }

// Height is the minimum height needed to show every control.
func (c *Controller) Height() int {
	h := c.color.Rect().Max.Y
	if n := len(c.swRects); n > 0 {
		h = c.swRects[n-1].Max.Y
	}
	return h + 4
}

// SetActive marks m as the single active tool control.
func (c *Controller) SetActive(m tool.Mode) {
	c.active = m
	c.hasActive = true
}

// SetColor updates the color control.
func (c *Controller) SetColor(col color.RGBA) { c.color.color = col }

// Color returns the color shown in the color control.
func (c *Controller) Color() color.RGBA { return c.color.color }

// SetPickerEnabled enables or disables the Picker button.
func (c *Controller) SetPickerEnabled(ok bool) { c.picker = ok }

// PickerEnabled reports whether the Picker button accepts clicks.
func (c *Controller) PickerEnabled() bool { return c.picker }

// ActiveLabels lists the labels of every control drawn as active.
func (c *Controller) ActiveLabels() []string {
	var out []string
	for _, cb := range c.tools {
		if c.state(cb) == StatePressed {
			out = append(out, cb.Button.(*ToolButton).label)
		}
	}
	return out
}

func (c *Controller) state(cb *CacheButton) ButtonState {
	if tb, ok := cb.Button.(*ToolButton); ok {
		if tb.mode == tool.ModePicker && !c.picker {
			return StateDisabled
		}
		if c.hasActive && tb.mode == c.active {
			return StatePressed
		}
	}
	if c.hover == Button(cb) {
		return StateHover
	}
	return StateDefault
}

func (c *Controller) buttonAt(p image.Point) Button {
	for _, cb := range c.tools {
		if p.In(cb.Rect()) {
			return cb
		}
	}
	if p.In(c.clear.Rect()) {
		return c.clear
	}
	return nil
}

// Contains reports whether p lies over the toolbar.
func (c *Controller) Contains(p image.Point) bool {
	return p.X >= 0 && p.X < c.width && p.Y >= 0
}

// Hover updates the hovered control. It reports whether a repaint is needed.
func (c *Controller) Hover(p image.Point) bool {
	b := c.buttonAt(p)
	if b == c.hover {
		return false
	}
	c.hover = b
	return true
}

// Click activates the control under p. It reports whether anything was hit.
func (c *Controller) Click(p image.Point) bool {
	if b := c.buttonAt(p); b != nil {
		b.Activate()
		return true
	}
	for i, r := range c.swRects {
		if p.In(r) {
			c.emit(Action{Kind: ActionColor, Color: c.swatches[i].Color})
			return true
		}
	}
	return false
}

// Draw paints the toolbar into dst, filling a column of the given height.
func (c *Controller) Draw(dst *image.RGBA, height int) {
	draw.Draw(dst, image.Rect(0, 0, c.width, height), &image.Uniform{c.theme.ToolbarBackground}, image.Point{}, draw.Src)
	for _, cb := range c.tools {
		cb.Draw(dst, c.state(cb))
	}
	c.clear.Draw(dst, c.state(c.clear))
	c.color.Draw(dst, StateDefault)
	for i, r := range c.swRects {
		sw := c.swatches[i].Color
		draw.Draw(dst, r, &image.Uniform{sw}, image.Point{}, draw.Src)
		if sw == c.color.color {
			drawRect(dst, r, c.theme.ButtonBorder, 1)
		}
	}
}
