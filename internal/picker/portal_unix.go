//go:build linux || freebsd || openbsd || netbsd || dragonfly

package picker

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/example/sketchpad/internal/palette"
)

const (
	portalDest      = "org.freedesktop.portal.Desktop"
	portalPath      = "/org/freedesktop/portal/desktop"
	screenshotIface = "org.freedesktop.portal.Screenshot"
	requestResponse = "org.freedesktop.portal.Request.Response"
	requestClose    = "org.freedesktop.portal.Request.Close"
)

// requestCloser is the portal Request object, used to dismiss the dialog
// when the caller gives up waiting.
type requestCloser interface {
	Call(method string, flags dbus.Flags, args ...interface{}) *dbus.Call
}

var portalHandleToken = func() string {
	return fmt.Sprintf("sketchpad-%d", time.Now().UnixNano())
}

type portalSampler struct{}

// Portal returns the xdg-desktop-portal sampler.
func Portal() Sampler { return portalSampler{} }

func (portalSampler) Name() string { return BackendPortal }

// Available reports whether the portal exposes PickColor, which arrived with
// version 2 of the Screenshot interface.
func (portalSampler) Available() bool {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return false
	}
	defer conn.Close()
	v, err := conn.Object(portalDest, portalPath).GetProperty(screenshotIface + ".version")
	if err != nil {
		return false
	}
	version, ok := v.Value().(uint32)
	return ok && version >= 2
}

func (portalSampler) Sample(ctx context.Context) (color.RGBA, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return color.RGBA{}, fmt.Errorf("dbus connect: %w", err)
	}
	defer conn.Close()

	rule := "type='signal',interface='org.freedesktop.portal.Request',member='Response'"
	if err := conn.BusObject().CallWithContext(ctx, "org.freedesktop.DBus.AddMatch", 0, rule).Err; err != nil {
		return color.RGBA{}, fmt.Errorf("portal pick color subscribe: %w", err)
	}
	defer conn.BusObject().Call("org.freedesktop.DBus.RemoveMatch", 0, rule)

	sigc := make(chan *dbus.Signal, 4)
	conn.Signal(sigc)
	defer conn.RemoveSignal(sigc)

	opts := map[string]dbus.Variant{
		"handle_token": dbus.MakeVariant(portalHandleToken()),
	}
	var handle dbus.ObjectPath
	call := conn.Object(portalDest, portalPath).CallWithContext(ctx, screenshotIface+".PickColor", 0, "", opts)
	if call.Err != nil {
		return color.RGBA{}, fmt.Errorf("portal pick color call: %w", call.Err)
	}
	if err := call.Store(&handle); err != nil {
		return color.RGBA{}, fmt.Errorf("portal pick color response: %w", err)
	}

	return awaitResponse(ctx, sigc, handle, conn.Object(portalDest, handle))
}

// awaitResponse waits for the Response signal on handle. A cancelled context
// closes the request so the desktop's picker does not stay on screen.
func awaitResponse(ctx context.Context, sigc <-chan *dbus.Signal, handle dbus.ObjectPath, req requestCloser) (color.RGBA, error) {
	for {
		select {
		case <-ctx.Done():
			req.Call(requestClose, 0)
			return color.RGBA{}, ctx.Err()
		case sig, ok := <-sigc:
			if !ok {
				return color.RGBA{}, fmt.Errorf("portal pick color: connection closed")
			}
			if sig.Path != handle || sig.Name != requestResponse {
				continue
			}
			return decodePickColor(sig.Body)
		}
	}
}

// decodePickColor reads the (u a{sv}) body of a Request.Response signal.
func decodePickColor(body []interface{}) (color.RGBA, error) {
	if len(body) < 2 {
		return color.RGBA{}, fmt.Errorf("portal pick color: short response")
	}
	code, _ := body[0].(uint32)
	switch code {
	case 0:
	case 1:
		return color.RGBA{}, ErrCancelled
	default:
		return color.RGBA{}, fmt.Errorf("portal pick color: response code %d", code)
	}
	res, ok := body[1].(map[string]dbus.Variant)
	if !ok {
		return color.RGBA{}, fmt.Errorf("portal pick color: unexpected results %T", body[1])
	}
	v, ok := res["color"]
	if !ok {
		return color.RGBA{}, fmt.Errorf("portal pick color: response missing color")
	}
	fields, ok := v.Value().([]interface{})
	if !ok || len(fields) != 3 {
		return color.RGBA{}, fmt.Errorf("portal pick color: unexpected color %v", v)
	}
	var rgb [3]float64
	for i, f := range fields {
		d, ok := f.(float64)
		if !ok {
			return color.RGBA{}, fmt.Errorf("portal pick color: channel %d is %T", i, f)
		}
		rgb[i] = d
	}
	return palette.FromUnit(rgb[0], rgb[1], rgb[2]), nil
}
