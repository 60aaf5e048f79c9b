package app

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/example/sketchpad/internal/tool"
)

// render paints one frame: window background, the canvas backdrop with the
// surface over it, the toolbar and finally the cursor for the active mode.
func (s *session) render(dst *image.RGBA) {
	draw.Draw(dst, dst.Bounds(), &image.Uniform{s.theme.Background}, image.Point{}, draw.Src)

	r := s.tracker.SurfaceRect()
	draw.Draw(dst, r, &image.Uniform{s.theme.CanvasBackground}, image.Point{}, draw.Src)
	xdraw.Draw(dst, r, s.surf.Image(), image.Point{}, xdraw.Over)

	s.bar.Draw(dst, dst.Bounds().Dy())

	if s.hovered {
		drawCursor(dst, s.machine.Cursor(), s.pointer, s.surf.Width, s.theme.Foreground)
	}
}

// drawCursor marks the pointer position with a glyph for the active tool.
func drawCursor(dst *image.RGBA, c tool.Cursor, p image.Point, width int, col color.RGBA) {
	const arm = 6
	switch c {
	case tool.CursorCrosshair:
		hline(dst, p.X-arm, p.X+arm, p.Y, col)
		vline(dst, p.X, p.Y-arm, p.Y+arm, col)
	case tool.CursorResize:
		hline(dst, p.X, p.X+arm, p.Y, col)
		vline(dst, p.X, p.Y, p.Y+arm, col)
	case tool.CursorEraser:
		half := width / 2
		r := image.Rect(p.X-half, p.Y-half, p.X-half+width, p.Y-half+width)
		hline(dst, r.Min.X, r.Max.X-1, r.Min.Y, col)
		hline(dst, r.Min.X, r.Max.X-1, r.Max.Y-1, col)
		vline(dst, r.Min.X, r.Min.Y, r.Max.Y-1, col)
		vline(dst, r.Max.X-1, r.Min.Y, r.Max.Y-1, col)
	case tool.CursorEyedropper:
		for i := 0; i <= arm; i++ {
			setClip(dst, p.X+i, p.Y-i, col)
		}
		hline(dst, p.X-1, p.X+1, p.Y, col)
	}
}

func hline(dst *image.RGBA, x0, x1, y int, col color.RGBA) {
	for x := x0; x <= x1; x++ {
		setClip(dst, x, y, col)
	}
}

func vline(dst *image.RGBA, x, y0, y1 int, col color.RGBA) {
	for y := y0; y <= y1; y++ {
		setClip(dst, x, y, col)
	}
}

func setClip(dst *image.RGBA, x, y int, col color.RGBA) {
	if image.Pt(x, y).In(dst.Bounds()) {
		dst.SetRGBA(x, y, col)
	}
}
