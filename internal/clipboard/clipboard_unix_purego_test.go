//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"bytes"
	"testing"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var testAtoms = atomSet{clipboard: 100, targets: 101, utf8: 102, textPlain: 103, property: 104}

func TestReplyForText(t *testing.T) {
	text := []byte("#FF8000")
	for _, target := range []xproto.Atom{testAtoms.utf8, xproto.AtomString, testAtoms.textPlain} {
		got := testAtoms.replyFor(target, 200, text)
		if got.Property != 200 || got.Type != testAtoms.utf8 || got.Format != 8 {
			t.Fatalf("target %d: reply %+v", target, got)
		}
		if !bytes.Equal(got.Data, text) {
			t.Fatalf("target %d: data %q", target, got.Data)
		}
	}
}

func TestReplyForTargets(t *testing.T) {
	got := testAtoms.replyFor(testAtoms.targets, xproto.AtomNone, []byte("#000000"))
	if got.Property != testAtoms.targets {
		t.Fatalf("obsolete requestor should get the target as property, got %d", got.Property)
	}
	if got.Type != xproto.AtomAtom || got.Format != 32 || len(got.Data) != 16 {
		t.Fatalf("targets reply %+v", got)
	}
	if a := xproto.Atom(xgb.Get32(got.Data[4:])); a != testAtoms.utf8 {
		t.Fatalf("second target = %d, want utf8", a)
	}

	empty := testAtoms.replyFor(testAtoms.targets, 200, nil)
	if len(empty.Data) != 4 {
		t.Fatalf("only TARGETS should be offered without text, got %d bytes", len(empty.Data))
	}
}

func TestReplyForRefuses(t *testing.T) {
	if got := testAtoms.replyFor(testAtoms.utf8, 200, nil); got.Property != xproto.AtomNone {
		t.Fatalf("empty clipboard should refuse text, got %+v", got)
	}
	if got := testAtoms.replyFor(999, 200, []byte("#000000")); got.Property != xproto.AtomNone {
		t.Fatalf("unknown target should be refused, got %+v", got)
	}
}
