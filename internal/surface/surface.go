// Package surface is the raster drawing context the tools paint on. It keeps
// the pixel buffer together with the current stroke style and compositing
// behavior and exposes the handful of primitives the tool state machine
// needs.
package surface

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Compositing controls how stroked pixels combine with the existing buffer.
type Compositing int

const (
	// CompositeNormal paints the stroke color over existing pixels.
	CompositeNormal Compositing = iota
	// CompositeErase removes existing pixels under the stroke.
	CompositeErase
)

func (c Compositing) String() string {
	if c == CompositeErase {
		return "erase"
	}
	return "normal"
}

// Surface wraps an RGBA buffer with a stroke style.
type Surface struct {
	img *image.RGBA

	Color       color.RGBA
	Width       int
	Compositing Compositing
}

// New returns a transparent surface of the given size.
func New(width, height int) *Surface {
	return &Surface{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		Color: color.RGBA{0, 0, 0, 255},
		Width: 1,
	}
}

// Image exposes the underlying buffer for display.
func (s *Surface) Image() *image.RGBA { return s.img }

// Bounds returns the surface rectangle in surface-local coordinates.
func (s *Surface) Bounds() image.Rectangle { return s.img.Bounds() }

// At returns the pixel at p, or the zero color outside the surface.
func (s *Surface) At(p image.Point) color.RGBA {
	if !p.In(s.img.Bounds()) {
		return color.RGBA{}
	}
	return s.img.RGBAAt(p.X, p.Y)
}

// Clear resets every pixel to transparent.
func (s *Surface) Clear() {
	xdraw.Draw(s.img, s.img.Bounds(), image.Transparent, image.Point{}, xdraw.Src)
}

// StrokeLine draws a segment from a to b using the current style. Both end
// points are painted, so segments sharing an end point join without a gap.
func (s *Surface) StrokeLine(a, b image.Point) {
	m := s.newMask(a, b)
	m.line(a, b)
	s.fill(m)
}

// StrokeRect outlines the rectangle spanned by origin and origin+(w,h).
// Negative sizes extend left or up from the origin.
func (s *Surface) StrokeRect(origin image.Point, w, h int) {
	far := origin.Add(image.Pt(w, h))
	m := s.newMask(origin, far)
	m.line(origin, image.Pt(far.X, origin.Y))
	m.line(image.Pt(far.X, origin.Y), far)
	m.line(far, image.Pt(origin.X, far.Y))
	m.line(image.Pt(origin.X, far.Y), origin)
	s.fill(m)
}

// StrokeEllipse outlines the ellipse inscribed in box. The box corners are
// pixel positions, so the outline touches Max.X and Max.Y.
func (s *Surface) StrokeEllipse(box image.Rectangle) {
	box = box.Canon()
	cx := float64(box.Min.X+box.Max.X) / 2
	cy := float64(box.Min.Y+box.Max.Y) / 2
	rx := float64(box.Dx()) / 2
	ry := float64(box.Dy()) / 2
	steps := int(math.Ceil(2 * math.Pi * math.Hypot(rx, ry)))
	if steps < 8 {
		steps = 8
	}
	m := s.newMask(box.Min, box.Max)
	var prev image.Point
	for i := 0; i <= steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		p := image.Pt(int(math.Round(cx+math.Cos(angle)*rx)), int(math.Round(cy+math.Sin(angle)*ry)))
		if i > 0 {
			m.line(prev, p)
		}
		prev = p
	}
	s.fill(m)
}

// brushMask collects the pixels one stroke covers. Stamps overlap, so the
// stroke color is applied once through the mask rather than per stamp.
type brushMask struct {
	*image.Alpha
	width int
}

// newMask sizes a mask to the points' bounding box grown by the brush.
func (s *Surface) newMask(pts ...image.Point) brushMask {
	w := s.Width
	if w < 1 {
		w = 1
	}
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	r := image.Rect(lo.X-w, lo.Y-w, hi.X+w+1, hi.Y+w+1).Intersect(s.img.Bounds())
	return brushMask{Alpha: image.NewAlpha(r), width: w}
}

// line walks a to b with Bresenham, stamping the brush at every step.
func (m brushMask) line(a, b image.Point) {
	x0, y0, x1, y1 := a.X, a.Y, b.X, b.Y
	dx := math.Abs(float64(x1 - x0))
	dy := math.Abs(float64(y1 - y0))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		m.stamp(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// stamp marks a square brush of the mask width centred on (x, y).
func (m brushMask) stamp(x, y int) {
	r := m.width / 2
	rect := image.Rect(x-r, y-r, x-r+m.width, y-r+m.width)
	xdraw.Draw(m.Alpha, rect, image.Opaque, image.Point{}, xdraw.Src)
}

// fill applies the current color, or clears for erase, under the mask.
func (s *Surface) fill(m brushMask) {
	r := m.Bounds()
	if r.Empty() {
		return
	}
	if s.Compositing == CompositeErase {
		xdraw.DrawMask(s.img, r, image.Transparent, image.Point{}, m.Alpha, r.Min, xdraw.Src)
		return
	}
	xdraw.DrawMask(s.img, r, image.NewUniform(s.Color), image.Point{}, m.Alpha, r.Min, xdraw.Over)
}
