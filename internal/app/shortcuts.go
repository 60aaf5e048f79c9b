package app

import (
	"golang.org/x/mobile/event/key"

	"github.com/example/sketchpad/internal/tool"
)

// KeyShortcut describes a keyboard combination that triggers an action.
type KeyShortcut struct {
	Code      key.Code
	Modifiers key.Modifiers
}

// Shift is a drawing modifier, so it never takes part in shortcut matching.
const shortcutModifiers = key.ModControl | key.ModAlt | key.ModMeta

// Shortcut pairs an action name with its key and a label for help output.
type Shortcut struct {
	Name  string
	Label string
	Key   KeyShortcut
}

// Shortcuts lists the keyboard bindings in display order.
func Shortcuts() []Shortcut {
	return []Shortcut{
		{"draw", "B", KeyShortcut{Code: key.CodeB}},
		{"erase", "E", KeyShortcut{Code: key.CodeE}},
		{"rectangle", "X", KeyShortcut{Code: key.CodeX}},
		{"ellipse", "O", KeyShortcut{Code: key.CodeO}},
		{"picker", "I", KeyShortcut{Code: key.CodeI}},
		{"clear", "Delete", KeyShortcut{Code: key.CodeDeleteForward}},
		{"paste", "Ctrl+V", KeyShortcut{Code: key.CodeV, Modifiers: key.ModControl}},
		{"copy", "Ctrl+C", KeyShortcut{Code: key.CodeC, Modifiers: key.ModControl}},
		{"quit", "Q", KeyShortcut{Code: key.CodeQ}},
	}
}

func (s *session) registerShortcuts() {
	s.keys = map[KeyShortcut]string{}
	s.actions = map[string]func(){}

	register := func(name string, fn func()) {
		s.actions[name] = fn
	}
	mode := func(m tool.Mode) func() {
		return func() { s.machine.SetMode(m) }
	}

	register("draw", mode(tool.ModeDraw))
	register("erase", mode(tool.ModeErase))
	register("rectangle", mode(tool.ModeRectangle))
	register("ellipse", mode(tool.ModeEllipse))
	register("picker", mode(tool.ModePicker))
	register("clear", s.machine.Clear)
	register("paste", s.pasteColor)
	register("copy", s.copyColor)
	register("quit", func() { s.quit = true })

	for _, sc := range Shortcuts() {
		if _, ok := s.actions[sc.Name]; ok {
			s.keys[sc.Key] = sc.Name
		}
	}
}
