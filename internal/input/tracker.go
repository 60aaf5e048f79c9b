// Package input turns window-level mouse and keyboard events into pointer
// events in surface-local coordinates and keeps track of the shift modifier.
package input

import (
	"image"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
)

// Kind identifies a pointer transition.
type Kind int

const (
	PointerDown Kind = iota
	PointerMove
	PointerUp
	PointerLeave
)

func (k Kind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerLeave:
		return "leave"
	}
	return "unknown"
}

// Pointer is a normalized pointer event. Pos is relative to the surface
// origin.
type Pointer struct {
	Kind Kind
	Pos  image.Point
}

// Tracker converts events for a surface placed at a fixed window rectangle.
type Tracker struct {
	rect        image.Rectangle
	legacyShift bool

	shift   bool
	pressed bool
	inside  bool
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLegacyShift makes any key release clear the shift flag and any key
// press set it to whether that key is shift.
func WithLegacyShift(on bool) Option { return func(t *Tracker) { t.legacyShift = on } }

// NewTracker returns a tracker for a surface occupying rect in window
// coordinates.
func NewTracker(rect image.Rectangle, opts ...Option) *Tracker {
	t := &Tracker{rect: rect}
	for _, o := range opts {
		o(t)
	}
	return t
}

// SetSurfaceRect moves the surface within the window.
func (t *Tracker) SetSurfaceRect(r image.Rectangle) { t.rect = r }

// SurfaceRect reports where the surface sits in window coordinates.
func (t *Tracker) SurfaceRect() image.Rectangle { return t.rect }

// Shift reports whether shift is currently considered held.
func (t *Tracker) Shift() bool { return t.shift }

// Pointer translates a mouse event. The boolean is false when the event is
// not addressed to the surface, such as a press on the toolbar or a release
// after the pointer already left.
func (t *Tracker) Pointer(e mouse.Event) (Pointer, bool) {
	p := image.Pt(int(e.X), int(e.Y))
	in := p.In(t.rect)
	local := p.Sub(t.rect.Min)

	switch {
	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress:
		if !in {
			return Pointer{}, false
		}
		t.pressed = true
		t.inside = true
		return Pointer{Kind: PointerDown, Pos: local}, true
	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease:
		wasInside := t.pressed && t.inside
		t.pressed = false
		if !wasInside {
			return Pointer{}, false
		}
		return Pointer{Kind: PointerUp, Pos: local}, true
	case e.Direction == mouse.DirNone:
		if !in {
			if t.pressed && t.inside {
				t.inside = false
				return Pointer{Kind: PointerLeave, Pos: local}, true
			}
			t.inside = false
			return Pointer{}, false
		}
		t.inside = true
		return Pointer{Kind: PointerMove, Pos: local}, true
	}
	return Pointer{}, false
}

// Key updates the shift flag.
func (t *Tracker) Key(e key.Event) {
	isShift := e.Code == key.CodeLeftShift || e.Code == key.CodeRightShift
	if t.legacyShift {
		switch e.Direction {
		case key.DirPress:
			t.shift = isShift
		case key.DirRelease:
			t.shift = false
		}
		return
	}
	if !isShift {
		return
	}
	switch e.Direction {
	case key.DirPress:
		t.shift = true
	case key.DirRelease:
		t.shift = false
	}
}
