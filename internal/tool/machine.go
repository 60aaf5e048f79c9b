// Package tool implements the drawing tool state machine. A Machine owns the
// current mode, the per-gesture stroke state and the picker hand-off, and
// turns normalized pointer events into surface primitives. It must only be
// used from the goroutine running the UI event loop.
package tool

import (
	"context"
	"image"
	"image/color"

	"github.com/example/sketchpad/internal/input"
	"github.com/example/sketchpad/internal/palette"
	"github.com/example/sketchpad/internal/picker"
	"github.com/example/sketchpad/internal/surface"
)

// Indicator receives visual feedback from the machine, normally the toolbar.
type Indicator interface {
	SetActive(m Mode)
	SetColor(c color.RGBA)
}

// PickResult carries the outcome of a color sample back to the event loop.
type PickResult struct {
	ID    uint64
	Color color.RGBA
	Err   error
}

// Poster delivers a PickResult to the goroutine that owns the Machine.
type Poster func(PickResult)

type stroke struct {
	start   image.Point
	last    image.Point
	drawing bool
	snap    *surface.Snapshot
}

// Machine is the tool-mode state machine.
type Machine struct {
	surf    *surface.Surface
	ind     Indicator
	sampler picker.Sampler
	post    Poster
	widths  Widths

	pickerOK bool

	mode   Mode
	cursor Cursor
	stroke stroke

	prior      Mode
	pickID     uint64
	cancelPick context.CancelFunc

	ctx    context.Context
	cancel context.CancelFunc
}

// Option configures a Machine.
type Option func(*Machine)

// WithIndicator registers the toolbar feedback target.
func WithIndicator(ind Indicator) Option { return func(m *Machine) { m.ind = ind } }

// WithSampler sets the color sampler used by the picker mode.
func WithSampler(s picker.Sampler) Option { return func(m *Machine) { m.sampler = s } }

// WithPoster sets how sample results reach the event loop.
func WithPoster(p Poster) Option { return func(m *Machine) { m.post = p } }

// WithWidths overrides the per-mode line widths.
func WithWidths(w Widths) Option { return func(m *Machine) { m.widths = w } }

// New returns a machine drawing on surf, starting in draw mode.
func New(surf *surface.Surface, opts ...Option) *Machine {
	m := &Machine{
		surf:    surf,
		ind:     nopIndicator{},
		sampler: picker.Unsupported(),
		widths:  DefaultWidths(),
	}
	for _, o := range opts {
		o(m)
	}
	m.pickerOK = m.sampler.Available()
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.SetMode(ModeDraw)
	m.SetColor(surf.Color)
	return m
}

// Mode returns the active mode.
func (m *Machine) Mode() Mode { return m.mode }

// Cursor returns the cursor requested by the active mode.
func (m *Machine) Cursor() Cursor { return m.cursor }

// Drawing reports whether a gesture is in progress.
func (m *Machine) Drawing() bool { return m.stroke.drawing }

// AwaitingPick reports whether a color sample is outstanding.
func (m *Machine) AwaitingPick() bool { return m.mode == ModePicker && m.cancelPick != nil }

// PickerAvailable reports whether picker mode can be entered. It is probed
// once when the machine is created.
func (m *Machine) PickerAvailable() bool { return m.pickerOK }

// Color returns the stroke color.
func (m *Machine) Color() color.RGBA { return m.surf.Color }

// SetMode switches tools. Entering picker mode starts a color sample; it is
// a no-op when no sampler is available.
func (m *Machine) SetMode(mode Mode) {
	if mode == ModePicker {
		m.enterPicker()
		return
	}
	m.abortPick()
	m.mode = mode
	switch mode {
	case ModeDraw:
		m.apply(CursorCrosshair, surface.CompositeNormal, m.widths.Draw)
	case ModeRectangle:
		m.apply(CursorResize, surface.CompositeNormal, m.widths.Rectangle)
	case ModeEllipse:
		m.apply(CursorCrosshair, surface.CompositeNormal, m.widths.Ellipse)
	case ModeErase:
		m.apply(CursorEraser, surface.CompositeErase, m.widths.Erase)
	}
	m.ind.SetActive(mode)
}

func (m *Machine) apply(c Cursor, comp surface.Compositing, width int) {
	m.cursor = c
	m.surf.Compositing = comp
	m.surf.Width = width
}

func (m *Machine) enterPicker() {
	if !m.pickerOK {
		return
	}
	if m.mode != ModePicker {
		m.prior = m.mode
	}
	m.abortPick()
	m.mode = ModePicker
	m.cursor = CursorEyedropper
	m.stroke = stroke{}
	m.ind.SetActive(ModePicker)

	m.pickID++
	id := m.pickID
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancelPick = cancel
	sampler, post := m.sampler, m.post
	go func() {
		c, err := sampler.Sample(ctx)
		if post != nil {
			post(PickResult{ID: id, Color: c, Err: err})
		}
	}()
}

func (m *Machine) abortPick() {
	if m.cancelPick != nil {
		m.cancelPick()
		m.cancelPick = nil
	}
}

// ResolvePick applies a sample result. Results for superseded requests are
// dropped. On success the stroke color and the toolbar color follow the
// sample; either way the machine returns to the mode active before picking.
// It reports whether the sampled color was applied.
func (m *Machine) ResolvePick(r PickResult) bool {
	if m.mode != ModePicker || r.ID != m.pickID {
		return false
	}
	m.abortPick()
	if r.Err == nil {
		m.SetColor(r.Color)
	}
	m.SetMode(m.prior)
	return r.Err == nil
}

// SetColor changes the stroke color and updates the toolbar color control.
// Strokes are always opaque, so any alpha in c is dropped.
func (m *Machine) SetColor(c color.RGBA) {
	c = palette.Opaque(c)
	m.surf.Color = c
	m.ind.SetColor(c)
}

// Clear wipes the surface. A gesture in progress continues from the blank
// surface.
func (m *Machine) Clear() {
	m.surf.Clear()
	if m.stroke.drawing {
		m.stroke.snap = m.surf.Snapshot()
	}
}

// Close cancels any outstanding color sample.
func (m *Machine) Close() {
	m.abortPick()
	m.cancel()
}

// HandlePointer applies a pointer event. shift is the modifier state at the
// time of the event. It reports whether visible pixels may have changed.
func (m *Machine) HandlePointer(ev input.Pointer, shift bool) bool {
	if m.mode == ModePicker {
		return false
	}
	switch ev.Kind {
	case input.PointerDown:
		m.stroke = stroke{
			start:   ev.Pos,
			last:    ev.Pos,
			drawing: true,
			snap:    m.surf.Snapshot(),
		}
		return false
	case input.PointerMove:
		if !m.stroke.drawing {
			return false
		}
		m.move(ev.Pos, shift)
		return true
	case input.PointerUp, input.PointerLeave:
		m.stroke = stroke{}
	}
	return false
}

func (m *Machine) move(p image.Point, shift bool) {
	switch m.mode {
	case ModeDraw, ModeErase:
		m.surf.StrokeLine(m.stroke.last, p)
		m.stroke.last = p
	case ModeRectangle:
		m.surf.Restore(m.stroke.snap)
		w, h := ConstrainSize(p.X-m.stroke.start.X, p.Y-m.stroke.start.Y, shift)
		m.surf.StrokeRect(m.stroke.start, w, h)
	case ModeEllipse:
		m.surf.Restore(m.stroke.snap)
		w, h := ConstrainSize(p.X-m.stroke.start.X, p.Y-m.stroke.start.Y, shift)
		m.surf.StrokeEllipse(image.Rectangle{Min: m.stroke.start, Max: m.stroke.start.Add(image.Pt(w, h))})
	}
}

type nopIndicator struct{}

func (nopIndicator) SetActive(Mode)      {}
func (nopIndicator) SetColor(color.RGBA) {}
