package surface

import (
	"image"
	"image/color"
	"testing"
)

var red = color.RGBA{255, 0, 0, 255}

func painted(s *Surface) int {
	n := 0
	b := s.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if s.At(image.Pt(x, y)).A != 0 {
				n++
			}
		}
	}
	return n
}

func TestStrokeLineJoinsSegments(t *testing.T) {
	s := New(50, 50)
	s.Color = red
	s.StrokeLine(image.Pt(5, 5), image.Pt(20, 10))
	s.StrokeLine(image.Pt(20, 10), image.Pt(30, 30))
	for _, p := range []image.Point{{5, 5}, {20, 10}, {30, 30}} {
		if s.At(p) != red {
			t.Fatalf("expected %v painted, got %+v", p, s.At(p))
		}
	}
	// every painted pixel along the path has a painted 8-neighbour
	b := s.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if s.At(image.Pt(x, y)).A == 0 {
				continue
			}
			found := false
			for dy := -1; dy <= 1 && !found; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if (dx != 0 || dy != 0) && s.At(image.Pt(x+dx, y+dy)).A != 0 {
						found = true
						break
					}
				}
			}
			if !found {
				t.Fatalf("isolated pixel at (%d,%d)", x, y)
			}
		}
	}
}

func TestStrokeRectOutline(t *testing.T) {
	s := New(40, 40)
	s.Color = red
	s.StrokeRect(image.Pt(20, 20), -10, -10)
	for _, p := range []image.Point{{10, 10}, {20, 10}, {10, 20}, {20, 20}, {15, 10}, {10, 15}} {
		if s.At(p) != red {
			t.Errorf("expected outline at %v", p)
		}
	}
	if s.At(image.Pt(15, 15)).A != 0 {
		t.Errorf("interior should be empty")
	}
	if got := painted(s); got != 40 {
		t.Errorf("painted %d pixels, want 40", got)
	}
}

func TestStrokeWidth(t *testing.T) {
	s := New(20, 20)
	s.Color = red
	s.Width = 4
	s.StrokeLine(image.Pt(10, 10), image.Pt(10, 10))
	if got := painted(s); got != 16 {
		t.Fatalf("painted %d pixels, want 16", got)
	}
}

func TestEraseCompositing(t *testing.T) {
	s := New(20, 20)
	s.Color = red
	s.Width = 5
	s.StrokeLine(image.Pt(0, 10), image.Pt(19, 10))
	s.Compositing = CompositeErase
	s.Width = 20
	s.StrokeLine(image.Pt(10, 10), image.Pt(10, 10))
	if got := painted(s); got != 0 {
		t.Fatalf("expected erase to remove all pixels, %d left", got)
	}
}

func TestSnapshotRestore(t *testing.T) {
	s := New(30, 30)
	s.Color = red
	s.StrokeLine(image.Pt(0, 0), image.Pt(29, 29))
	snap := s.Snapshot()
	base := painted(s)
	s.StrokeRect(image.Pt(2, 2), 20, 5)
	if painted(s) == base {
		t.Fatal("expected rectangle to add pixels")
	}
	s.Restore(snap)
	if got := painted(s); got != base {
		t.Fatalf("restore left %d pixels, want %d", got, base)
	}
	s.Restore(nil)
	if got := painted(s); got != base {
		t.Fatalf("nil restore changed buffer")
	}
}

func TestClear(t *testing.T) {
	s := New(10, 10)
	s.StrokeLine(image.Pt(0, 0), image.Pt(9, 9))
	s.Clear()
	if got := painted(s); got != 0 {
		t.Fatalf("clear left %d pixels", got)
	}
}

func TestStrokeEllipseStaysInBox(t *testing.T) {
	s := New(40, 40)
	s.Color = red
	box := image.Rect(30, 30, 10, 20)
	s.StrokeEllipse(box)
	canon := box.Canon()
	if painted(s) == 0 {
		t.Fatal("expected ellipse pixels")
	}
	b := s.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if s.At(image.Pt(x, y)).A != 0 && !image.Pt(x, y).In(canon.Inset(-1)) {
				t.Fatalf("pixel (%d,%d) outside %v", x, y, canon)
			}
		}
	}
}

func TestTranslucentStrokeIsUniform(t *testing.T) {
	s := New(40, 40)
	s.Color = color.RGBA{0, 0, 128, 128}
	s.Width = 2
	s.StrokeLine(image.Pt(5, 20), image.Pt(30, 20))
	for _, x := range []int{5, 15, 30} {
		if got := s.At(image.Pt(x, 20)); got != s.Color {
			t.Fatalf("pixel (%d,20) = %+v, want %+v", x, got, s.Color)
		}
	}

	s.Clear()
	s.StrokeRect(image.Pt(5, 5), 20, 20)
	for _, p := range []image.Point{{5, 5}, {25, 5}, {25, 25}, {5, 25}, {15, 5}} {
		if got := s.At(p); got != s.Color {
			t.Errorf("rect pixel %v = %+v, want %+v", p, got, s.Color)
		}
	}
}

func TestStrokeEllipseReachesOddBoxEdges(t *testing.T) {
	s := New(40, 40)
	s.Color = red
	box := image.Rect(10, 10, 21, 17)
	s.StrokeEllipse(box)
	var minX, maxX, minY, maxY = 40, -1, 40, -1
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			if s.At(image.Pt(x, y)).A == 0 {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if minX != box.Min.X || maxX != box.Max.X || minY != box.Min.Y || maxY != box.Max.Y {
		t.Fatalf("ellipse spans x %d..%d y %d..%d, want %v", minX, maxX, minY, maxY, box)
	}
}
