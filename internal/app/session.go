package app

import (
	"image"
	"log"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/sketchpad/internal/input"
	"github.com/example/sketchpad/internal/surface"
	"github.com/example/sketchpad/internal/theme"
	"github.com/example/sketchpad/internal/tool"
	"github.com/example/sketchpad/internal/toolbar"
)

// session is the mutable state owned by the event loop goroutine.
type session struct {
	app     *App
	theme   *theme.Theme
	surf    *surface.Surface
	machine *tool.Machine
	tracker *input.Tracker
	bar     *toolbar.Controller

	keys    map[KeyShortcut]string
	actions map[string]func()

	size    image.Point
	pointer image.Point
	hovered bool
	quit    bool
}

func newSession(a *App, post tool.Poster) *session {
	s := &session{app: a, theme: a.Theme}
	if s.theme == nil {
		s.theme = theme.Default()
	}
	s.surf = surface.New(a.Width, a.Height)
	s.surf.Color = a.Color
	s.bar = toolbar.New(s.theme, toolbar.WithHandler(s.apply))
	s.machine = tool.New(s.surf,
		tool.WithIndicator(s.bar),
		tool.WithSampler(a.Sampler),
		tool.WithPoster(post),
		tool.WithWidths(a.Widths),
	)
	s.bar.SetPickerEnabled(s.machine.PickerAvailable())
	a.debugf("picker: %s available=%v", a.Sampler.Name(), s.machine.PickerAvailable())

	origin := image.Pt(s.bar.Width(), 0)
	s.tracker = input.NewTracker(image.Rectangle{Min: origin, Max: origin.Add(s.surf.Bounds().Size())},
		input.WithLegacyShift(a.LegacyShift))
	s.size = s.windowSize()
	s.registerShortcuts()
	return s
}

func (s *session) close() { s.machine.Close() }

// windowSize fits the toolbar and the whole canvas side by side.
func (s *session) windowSize() image.Point {
	r := s.tracker.SurfaceRect()
	h := r.Max.Y
	if bh := s.bar.Height(); bh > h {
		h = bh
	}
	return image.Pt(r.Max.X, h)
}

func (s *session) resize(sz image.Point) {
	if sz.X > 0 && sz.Y > 0 {
		s.size = sz
	}
}

// apply routes a toolbar action into the state machine.
func (s *session) apply(a toolbar.Action) {
	switch a.Kind {
	case toolbar.ActionMode:
		s.machine.SetMode(a.Mode)
	case toolbar.ActionClear:
		s.machine.Clear()
	case toolbar.ActionColor:
		s.machine.SetColor(a.Color)
	}
}

// handle processes one event and reports whether a repaint is needed.
func (s *session) handle(e interface{}) bool {
	switch e := e.(type) {
	case tool.PickResult:
		if e.Err != nil {
			s.app.debugf("pick color: %v", e.Err)
		}
		if s.machine.ResolvePick(e) {
			s.app.Notifier.Pick(e.Color)
		}
		return true
	case key.Event:
		return s.handleKey(e)
	case mouse.Event:
		return s.handleMouse(e)
	}
	return false
}

func (s *session) handleKey(e key.Event) bool {
	s.tracker.Key(e)
	if e.Direction != key.DirPress {
		return false
	}
	ks := KeyShortcut{Code: e.Code, Modifiers: e.Modifiers & shortcutModifiers}
	name, ok := s.keys[ks]
	if !ok {
		return false
	}
	s.actions[name]()
	return true
}

func (s *session) handleMouse(e mouse.Event) bool {
	p := image.Pt(int(e.X), int(e.Y))
	s.pointer = p
	s.hovered = p.In(s.tracker.SurfaceRect())

	if e.Direction == mouse.DirNone {
		s.bar.Hover(p)
	}

	if ev, ok := s.tracker.Pointer(e); ok {
		s.machine.HandlePointer(ev, s.tracker.Shift())
		return true
	}
	if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress && s.bar.Contains(p) {
		return s.bar.Click(p)
	}
	return e.Direction == mouse.DirNone
}

func (s *session) pasteColor() {
	c, err := s.app.Clipboard.ReadColor()
	if err != nil {
		log.Printf("paste color: %v", err)
		return
	}
	s.machine.SetColor(c)
}

func (s *session) copyColor() {
	c := s.machine.Color()
	if err := s.app.Clipboard.WriteColor(c); err != nil {
		log.Printf("copy color: %v", err)
		return
	}
	s.app.Notifier.Copy(c)
}
