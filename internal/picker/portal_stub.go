//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package picker

import (
	"context"
	"image/color"
)

type portalSampler struct{}

// Portal returns the xdg-desktop-portal sampler, which is unavailable here.
func Portal() Sampler { return portalSampler{} }

func (portalSampler) Name() string    { return BackendPortal }
func (portalSampler) Available() bool { return false }
func (portalSampler) Sample(context.Context) (color.RGBA, error) {
	return color.RGBA{}, ErrUnsupported
}
