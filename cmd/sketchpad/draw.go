package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/example/sketchpad/internal/app"
	"github.com/example/sketchpad/internal/palette"
	"github.com/example/sketchpad/internal/picker"
	"github.com/example/sketchpad/internal/tool"
)

type drawCmd struct {
	*root
	fs      *flag.FlagSet
	width   int
	height  int
	sampler picker.Sampler
	opts    []app.Option
}

func (d *drawCmd) Program() string {
	return d.root.subcommand("draw")
}

func (d *drawCmd) FlagSet() *flag.FlagSet {
	return d.fs
}

func parseDrawCmd(args []string, r *root) (*drawCmd, error) {
	fs := flag.NewFlagSet("draw", flag.ContinueOnError)
	d := &drawCmd{root: r, fs: fs}
	fs.Usage = usageFunc(d)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, &UsageError{of: d}
	}

	w, h, err := parseSize(r.size)
	if err != nil {
		return nil, err
	}
	d.width, d.height = w, h
	col, err := palette.ParseHex(r.colorHex)
	if err != nil {
		return nil, fmt.Errorf("invalid -color: %w", err)
	}
	d.sampler, err = picker.New(r.pickerName)
	if err != nil {
		return nil, fmt.Errorf("invalid -picker: %w", err)
	}

	widths := r.config.Widths
	d.opts = []app.Option{
		app.WithSize(w, h),
		app.WithTheme(r.activeTheme),
		app.WithSampler(d.sampler),
		app.WithWidths(tool.Widths{Draw: widths.Draw, Erase: widths.Erase, Rectangle: widths.Rectangle, Ellipse: widths.Ellipse}),
		app.WithColor(col),
		app.WithLegacyShift(r.legacyShift),
		app.WithVerbose(r.verbose),
		app.WithNotifier(r.notifier),
		app.WithTitle(windowTitle(titleOptions{Program: r.program, Theme: r.activeTheme.Name, Width: w, Height: h})),
	}
	return d, nil
}

func (d *drawCmd) Run() error {
	return app.New(d.opts...).Run()
}

// parseSize reads a "WIDTHxHEIGHT" canvas size.
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q: want WIDTHxHEIGHT", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if w < 1 || h < 1 {
		return 0, 0, fmt.Errorf("invalid size %q: dimensions must be positive", s)
	}
	return w, h, nil
}
