package main

import (
	"fmt"
	"strings"
)

type titleOptions struct {
	Program string
	Theme   string
	Width   int
	Height  int
	Extras  []string
}

func windowTitle(opts titleOptions) string {
	program := strings.TrimSpace(opts.Program)
	if program == "" {
		program = "sketchpad"
	}
	parts := []string{program}

	if opts.Width > 0 && opts.Height > 0 {
		parts = append(parts, fmt.Sprintf("%dx%d", opts.Width, opts.Height))
	}

	theme := strings.TrimSpace(opts.Theme)
	if theme != "" && !strings.EqualFold(theme, "default") {
		parts = append(parts, theme)
	}

	for _, extra := range opts.Extras {
		extra = strings.TrimSpace(extra)
		if extra != "" {
			parts = append(parts, extra)
		}
	}

	return strings.Join(parts, " - ")
}
