package surface

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Snapshot is a full copy of the pixel buffer.
type Snapshot struct {
	img *image.RGBA
}

// Snapshot copies the current pixels.
func (s *Surface) Snapshot() *Snapshot {
	cp := image.NewRGBA(s.img.Bounds())
	xdraw.Copy(cp, cp.Bounds().Min, s.img, s.img.Bounds(), xdraw.Src, nil)
	return &Snapshot{img: cp}
}

// Restore overwrites the buffer with a previously captured snapshot. A nil
// snapshot is ignored.
func (s *Surface) Restore(snap *Snapshot) {
	if snap == nil || snap.img == nil {
		return
	}
	xdraw.Copy(s.img, snap.img.Bounds().Min, snap.img, snap.img.Bounds(), xdraw.Src, nil)
}
