// Package app runs the drawing window: it owns the shiny event loop and wires
// the input tracker, tool state machine and toolbar together.
package app

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/sketchpad/internal/clipboard"
	"github.com/example/sketchpad/internal/palette"
	"github.com/example/sketchpad/internal/picker"
	"github.com/example/sketchpad/internal/theme"
	"github.com/example/sketchpad/internal/tool"
)

// Clipboard moves colors to and from the system clipboard.
type Clipboard interface {
	ReadColor() (color.RGBA, error)
	WriteColor(color.RGBA) error
}

// Notifier announces colors picked from the screen or copied out.
type Notifier interface {
	Pick(color.RGBA)
	Copy(color.RGBA)
}

type nopNotifier struct{}

func (nopNotifier) Pick(color.RGBA) {}
func (nopNotifier) Copy(color.RGBA) {}

type systemClipboard struct{}

func (systemClipboard) ReadColor() (color.RGBA, error) { return clipboard.ReadColor() }
func (systemClipboard) WriteColor(c color.RGBA) error  { return clipboard.WriteColor(c) }

// App holds the configuration for a drawing window.
type App struct {
	Width       int
	Height      int
	Theme       *theme.Theme
	Sampler     picker.Sampler
	Widths      tool.Widths
	Color       color.RGBA
	LegacyShift bool
	Verbose     bool
	Title       string
	Clipboard   Clipboard
	Notifier    Notifier
}

// Option modifies an App during creation.
type Option func(*App)

// WithSize sets the canvas size in pixels.
func WithSize(w, h int) Option { return func(a *App) { a.Width, a.Height = w, h } }

// WithTheme sets the colors used for the toolbar and canvas backdrop.
func WithTheme(t *theme.Theme) Option { return func(a *App) { a.Theme = t } }

// WithSampler sets the screen color sampler used by picker mode.
func WithSampler(s picker.Sampler) Option { return func(a *App) { a.Sampler = s } }

// WithWidths sets the per-mode line widths.
func WithWidths(w tool.Widths) Option { return func(a *App) { a.Widths = w } }

// WithColor sets the initial stroke color.
func WithColor(c color.RGBA) Option { return func(a *App) { a.Color = c } }

// WithLegacyShift restores the original shift tracking where any key
// release clears the modifier.
func WithLegacyShift(on bool) Option { return func(a *App) { a.LegacyShift = on } }

// WithVerbose enables diagnostic logging.
func WithVerbose(on bool) Option { return func(a *App) { a.Verbose = on } }

// WithTitle sets the window title.
func WithTitle(title string) Option { return func(a *App) { a.Title = title } }

// WithClipboard replaces the system clipboard.
func WithClipboard(c Clipboard) Option { return func(a *App) { a.Clipboard = c } }

// WithNotifier sets where pick and copy notifications go.
func WithNotifier(n Notifier) Option { return func(a *App) { a.Notifier = n } }

// New creates an App with the provided options.
func New(opts ...Option) *App {
	a := &App{
		Width:     800,
		Height:    600,
		Theme:     theme.Default(),
		Sampler:   picker.Unsupported(),
		Widths:    tool.DefaultWidths(),
		Color:     palette.DefaultStroke,
		Title:     "sketchpad",
		Clipboard: systemClipboard{},
		Notifier:  nopNotifier{},
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

func (a *App) debugf(format string, args ...interface{}) {
	if a.Verbose {
		log.Printf(format, args...)
	}
}

// Run executes the UI loop using shiny's driver.
func (a *App) Run() error {
	var err error
	driver.Main(func(s screen.Screen) { err = a.Main(s) })
	return err
}

// Main opens the window on s and processes events until it is closed.
func (a *App) Main(s screen.Screen) error {
	var w screen.Window
	sess := newSession(a, func(r tool.PickResult) { w.Send(r) })

	sz := sess.windowSize()
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: sz.X, Height: sz.Y, Title: a.Title})
	if err != nil {
		return fmt.Errorf("new window: %w", err)
	}
	defer w.Release()
	// Cancel an outstanding pick before the window goes away.
	defer sess.close()

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return nil
			}
		case size.Event:
			sess.resize(image.Pt(e.WidthPx, e.HeightPx))
			w.Send(paint.Event{})
		case paint.Event:
			if err := paintWindow(s, w, sess); err != nil {
				log.Printf("paint: %v", err)
			}
		case error:
			log.Printf("window: %v", e)
		default:
			if sess.handle(e) {
				w.Send(paint.Event{})
			}
		}
		if sess.quit {
			return nil
		}
	}
}

func paintWindow(s screen.Screen, w screen.Window, sess *session) error {
	b, err := s.NewBuffer(sess.size)
	if err != nil {
		return fmt.Errorf("new buffer: %w", err)
	}
	defer b.Release()
	sess.render(b.RGBA())
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
	return nil
}
