package picker

import (
	"context"
	"fmt"
	"image/color"
	"os"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Glyphs from the standard X cursor font.
const (
	crosshairGlyph     = 34
	crosshairMaskGlyph = 35
	leftButton         = 1
)

type x11Sampler struct{}

// X11 returns a sampler that grabs the pointer on the root window and reads
// the pixel under the next left click. Any key press or other button cancels.
func X11() Sampler { return x11Sampler{} }

func (x11Sampler) Name() string { return BackendX11 }

func (x11Sampler) Available() bool {
	if os.Getenv("DISPLAY") == "" {
		return false
	}
	conn, err := xgb.NewConn()
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

func (x11Sampler) Sample(ctx context.Context) (color.RGBA, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return color.RGBA{}, fmt.Errorf("connect X server: %w", err)
	}
	defer conn.Close()

	setup := xproto.Setup(conn)
	if setup == nil {
		return color.RGBA{}, fmt.Errorf("xproto setup unavailable")
	}
	screen := setup.DefaultScreen(conn)
	if screen == nil {
		return color.RGBA{}, fmt.Errorf("xproto screen unavailable")
	}
	root := screen.Root

	cursor, err := crosshairCursor(conn)
	if err != nil {
		return color.RGBA{}, err
	}
	defer xproto.FreeCursor(conn, cursor)

	grab, err := xproto.GrabPointer(conn, false, root, uint16(xproto.EventMaskButtonPress),
		xproto.GrabModeAsync, xproto.GrabModeAsync, xproto.WindowNone, cursor, xproto.TimeCurrentTime).Reply()
	if err != nil {
		return color.RGBA{}, fmt.Errorf("grab pointer: %w", err)
	}
	if grab.Status != xproto.GrabStatusSuccess {
		return color.RGBA{}, fmt.Errorf("grab pointer: status %d", grab.Status)
	}
	defer xproto.UngrabPointer(conn, xproto.TimeCurrentTime)
	if kb, err := xproto.GrabKeyboard(conn, false, root, xproto.TimeCurrentTime,
		xproto.GrabModeAsync, xproto.GrabModeAsync).Reply(); err == nil && kb.Status == xproto.GrabStatusSuccess {
		defer xproto.UngrabKeyboard(conn, xproto.TimeCurrentTime)
	}

	type result struct {
		ev  xgb.Event
		err error
	}
	events := make(chan result, 1)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev, xerr := conn.WaitForEvent()
			if ev == nil && xerr == nil {
				close(events)
				return
			}
			r := result{ev: ev}
			if xerr != nil {
				r = result{err: xerr}
			}
			select {
			case events <- r:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return color.RGBA{}, ctx.Err()
		case r, ok := <-events:
			if !ok {
				return color.RGBA{}, fmt.Errorf("X server connection closed")
			}
			if r.err != nil {
				return color.RGBA{}, fmt.Errorf("x11 picker: %v", r.err)
			}
			switch ev := r.ev.(type) {
			case xproto.ButtonPressEvent:
				if ev.Detail != leftButton {
					return color.RGBA{}, ErrCancelled
				}
				return rootPixel(conn, setup, root, ev.RootX, ev.RootY)
			case xproto.KeyPressEvent:
				return color.RGBA{}, ErrCancelled
			}
		}
	}
}

func crosshairCursor(conn *xgb.Conn) (xproto.Cursor, error) {
	font, err := xproto.NewFontId(conn)
	if err != nil {
		return 0, fmt.Errorf("allocate font id: %w", err)
	}
	name := "cursor"
	if err := xproto.OpenFontChecked(conn, font, uint16(len(name)), name).Check(); err != nil {
		return 0, fmt.Errorf("open cursor font: %w", err)
	}
	defer xproto.CloseFont(conn, font)
	cursor, err := xproto.NewCursorId(conn)
	if err != nil {
		return 0, fmt.Errorf("allocate cursor id: %w", err)
	}
	err = xproto.CreateGlyphCursorChecked(conn, cursor, font, font, crosshairGlyph, crosshairMaskGlyph,
		0, 0, 0, 0xFFFF, 0xFFFF, 0xFFFF).Check()
	if err != nil {
		return 0, fmt.Errorf("create cursor: %w", err)
	}
	return cursor, nil
}

func rootPixel(conn *xgb.Conn, setup *xproto.SetupInfo, root xproto.Window, x, y int16) (color.RGBA, error) {
	reply, err := xproto.GetImage(conn, xproto.ImageFormatZPixmap, xproto.Drawable(root), x, y, 1, 1, 0xFFFFFFFF).Reply()
	if err != nil {
		return color.RGBA{}, fmt.Errorf("read pixel: %w", err)
	}
	return decodeZPixel(setup.PixmapFormats, reply.Depth, reply.Data)
}

// decodeZPixel reads the first pixel of a ZPixmap reply stored as BGR(X).
func decodeZPixel(formats []xproto.Format, depth byte, data []byte) (color.RGBA, error) {
	bitsPerPixel := 0
	for _, format := range formats {
		if format.Depth == depth {
			bitsPerPixel = int(format.BitsPerPixel)
			break
		}
	}
	if bitsPerPixel == 0 {
		return color.RGBA{}, fmt.Errorf("unsupported depth %d", depth)
	}
	if bitsPerPixel/8 < 3 {
		return color.RGBA{}, fmt.Errorf("unsupported pixel format %d bpp", bitsPerPixel)
	}
	if len(data) < 3 {
		return color.RGBA{}, fmt.Errorf("read pixel: empty image data")
	}
	return color.RGBA{R: data[2], G: data[1], B: data[0], A: 0xFF}, nil
}
