// Package picker samples a color from anywhere on screen using whatever the
// desktop offers: the xdg-desktop-portal PickColor call or an X11 pointer
// grab. Availability is probed once at startup so the toolbar can disable
// its picker control.
package picker

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"strings"
)

var (
	// ErrUnsupported is returned when no sampling backend can run.
	ErrUnsupported = errors.New("color sampling not supported")
	// ErrCancelled is returned when the user dismisses the picker.
	ErrCancelled = errors.New("color sampling cancelled")
)

// Sampler picks a single color from the screen. Sample blocks until the user
// accepts or dismisses the platform picker, or ctx is done.
type Sampler interface {
	Name() string
	Available() bool
	Sample(ctx context.Context) (color.RGBA, error)
}

// Backend names accepted by New.
const (
	BackendAuto   = "auto"
	BackendPortal = "portal"
	BackendX11    = "x11"
	BackendNone   = "none"
)

// Backends returns every concrete sampler in preference order.
func Backends() []Sampler {
	return []Sampler{Portal(), X11()}
}

// New returns the sampler selected by name.
func New(name string) (Sampler, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BackendAuto:
		return Auto(Backends()...), nil
	case BackendPortal:
		return Portal(), nil
	case BackendX11:
		return X11(), nil
	case BackendNone:
		return Unsupported(), nil
	}
	return nil, fmt.Errorf("unknown picker backend %q", name)
}

type unsupported struct{}

// Unsupported returns a sampler that is never available.
func Unsupported() Sampler { return unsupported{} }

func (unsupported) Name() string    { return BackendNone }
func (unsupported) Available() bool { return false }
func (unsupported) Sample(context.Context) (color.RGBA, error) {
	return color.RGBA{}, ErrUnsupported
}

type auto struct {
	backends []Sampler
	chosen   Sampler
	probed   bool
}

// Auto returns a sampler delegating to the first available backend. The
// probe runs on the first call to Available or Sample and is remembered.
func Auto(backends ...Sampler) Sampler { return &auto{backends: backends} }

func (a *auto) Name() string {
	if s := a.pick(); s != nil {
		return BackendAuto + ":" + s.Name()
	}
	return BackendAuto
}

func (a *auto) pick() Sampler {
	if !a.probed {
		a.probed = true
		for _, s := range a.backends {
			if s.Available() {
				a.chosen = s
				break
			}
		}
	}
	return a.chosen
}

func (a *auto) Available() bool { return a.pick() != nil }

func (a *auto) Sample(ctx context.Context) (color.RGBA, error) {
	s := a.pick()
	if s == nil {
		return color.RGBA{}, ErrUnsupported
	}
	return s.Sample(ctx)
}
