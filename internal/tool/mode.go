package tool

// Mode is the active drawing tool.
type Mode int

const (
	ModeDraw Mode = iota
	ModeErase
	ModeRectangle
	ModeEllipse
	ModePicker
)

// Modes lists every mode in toolbar order.
func Modes() []Mode {
	return []Mode{ModeDraw, ModeErase, ModeRectangle, ModeEllipse, ModePicker}
}

func (m Mode) String() string {
	switch m {
	case ModeDraw:
		return "draw"
	case ModeErase:
		return "erase"
	case ModeRectangle:
		return "rectangle"
	case ModeEllipse:
		return "ellipse"
	case ModePicker:
		return "picker"
	}
	return "unknown"
}

// Cursor is the pointer appearance requested for the surface.
type Cursor int

const (
	CursorCrosshair Cursor = iota
	CursorResize
	CursorEraser
	CursorEyedropper
)

func (c Cursor) String() string {
	switch c {
	case CursorCrosshair:
		return "crosshair"
	case CursorResize:
		return "nw-resize"
	case CursorEraser:
		return "eraser"
	case CursorEyedropper:
		return "eyedropper"
	}
	return "default"
}

// Widths holds the line width applied when entering each drawing mode.
type Widths struct {
	Draw      int
	Erase     int
	Rectangle int
	Ellipse   int
}

// DefaultWidths returns the stock line widths.
func DefaultWidths() Widths {
	return Widths{Draw: 2, Erase: 20, Rectangle: 2, Ellipse: 2}
}

// ConstrainSize returns the shape size for a drag of (dx, dy). With square
// set both magnitudes become the smaller of the two while each axis keeps
// its own direction.
func ConstrainSize(dx, dy int, square bool) (int, int) {
	if !square {
		return dx, dy
	}
	side := abs(dx)
	if abs(dy) < side {
		side = abs(dy)
	}
	w, h := -side, -side
	if dx > 0 {
		w = side
	}
	if dy > 0 {
		h = side
	}
	return w, h
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
