//go:build linux || freebsd || openbsd || netbsd || dragonfly

package picker

import (
	"context"
	"errors"
	"image/color"
	"testing"

	"github.com/godbus/dbus/v5"
)

func TestDecodePickColor(t *testing.T) {
	body := []interface{}{uint32(0), map[string]dbus.Variant{
		"color": dbus.MakeVariant([]interface{}{1.0, 0.0, 0.0}),
	}}
	got, err := decodePickColor(body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if want := (color.RGBA{255, 0, 0, 255}); got != want {
		t.Fatalf("decode = %+v, want %+v", got, want)
	}
}

func TestDecodePickColorCancelled(t *testing.T) {
	body := []interface{}{uint32(1), map[string]dbus.Variant{}}
	if _, err := decodePickColor(body); !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
}

func TestDecodePickColorMissing(t *testing.T) {
	body := []interface{}{uint32(0), map[string]dbus.Variant{}}
	if _, err := decodePickColor(body); err == nil {
		t.Fatal("expected error for missing color")
	}
	if _, err := decodePickColor(nil); err == nil {
		t.Fatal("expected error for short body")
	}
}

type closeRecorder struct {
	methods []string
}

func (r *closeRecorder) Call(method string, flags dbus.Flags, args ...interface{}) *dbus.Call {
	r.methods = append(r.methods, method)
	return &dbus.Call{}
}

func TestAwaitResponseClosesRequestOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := &closeRecorder{}
	_, err := awaitResponse(ctx, make(chan *dbus.Signal), "/request/1", req)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(req.methods) != 1 || req.methods[0] != requestClose {
		t.Fatalf("expected a single %s call, got %v", requestClose, req.methods)
	}
}

func TestAwaitResponseMatchesHandle(t *testing.T) {
	body := []interface{}{uint32(0), map[string]dbus.Variant{
		"color": dbus.MakeVariant([]interface{}{0.0, 0.0, 1.0}),
	}}
	sigc := make(chan *dbus.Signal, 2)
	sigc <- &dbus.Signal{Path: "/request/other", Name: requestResponse, Body: []interface{}{uint32(1), map[string]dbus.Variant{}}}
	sigc <- &dbus.Signal{Path: "/request/1", Name: requestResponse, Body: body}
	req := &closeRecorder{}
	got, err := awaitResponse(context.Background(), sigc, "/request/1", req)
	if err != nil {
		t.Fatalf("await: %v", err)
	}
	if want := (color.RGBA{0, 0, 255, 255}); got != want {
		t.Fatalf("await = %+v, want %+v", got, want)
	}
	if len(req.methods) != 0 {
		t.Fatalf("request closed after a response: %v", req.methods)
	}
}
