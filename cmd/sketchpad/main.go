package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/example/sketchpad/internal/config"
	"github.com/example/sketchpad/internal/notify"
	"github.com/example/sketchpad/internal/palette"
	"github.com/example/sketchpad/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs          *flag.FlagSet
	program     string
	config      *config.Config
	themeName   string
	pickerName  string
	colorHex    string
	size        string
	legacyShift bool
	verbose     bool
	pickAlerts  bool
	copyAlerts  bool
	notifier    *notify.Notifier
	activeTheme *theme.Theme
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}
	return newRootWithConfig(cfg)
}

func newRootWithConfig(cfg *config.Config) *root {
	r := &root{
		fs:       flag.NewFlagSet("sketchpad", flag.ContinueOnError),
		program:  "sketchpad",
		config:   cfg,
		notifier: notify.New(notify.LoadPreferences()),
	}
	// Precedence: CLI > Env > Config > Default
	// We set the default value for the flag to "", and handle fallback logic in Run if it remains empty.
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use (default, dark, high_contrast)")
	r.fs.StringVar(&r.pickerName, "picker", cfg.Picker, "color picker backend (auto, portal, x11, none)")
	r.fs.StringVar(&r.colorHex, "color", palette.Hex(cfg.Color), "initial stroke color")
	r.fs.StringVar(&r.size, "size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height), "canvas size as WIDTHxHEIGHT")
	r.fs.BoolVar(&r.legacyShift, "legacy-shift", cfg.LegacyShift, "clear shift on any key release")
	r.fs.BoolVar(&r.verbose, "verbose", false, "log picker and clipboard diagnostics")
	r.fs.BoolVar(&r.pickAlerts, "notify-pick", cfg.Notify.Pick, "show a desktop notification after picking a screen color")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying a color")
	r.fs.Usage = usageFunc(r)
	return r
}

// resolveTheme applies the theme precedence and returns the theme to paint
// with. A named theme that fails to load falls back to the default.
func (r *root) resolveTheme() *theme.Theme {
	themeName := r.themeName
	if themeName == "" {
		themeName = os.Getenv("SKETCHPAD_THEME")
	}
	if themeName == "" {
		themeName = r.config.Theme
	}

	// 1. Check loaded themes from Config
	if cfgTheme, ok := r.config.Themes[themeName]; ok {
		return cfgTheme
	}
	// 2. Fallback to standard theme loader (File / Embedded / System)
	t, err := theme.NewLoader().Load(themeName)
	if err != nil {
		if themeName != "" && themeName != "default" {
			fmt.Fprintf(os.Stderr, "warning: failed to load theme '%s': %v. using default.\n", themeName, err)
		}
		return theme.Default()
	}
	return t
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	r.activeTheme = r.resolveTheme()
	if r.notifier != nil {
		r.notifier.Enable(notify.EventPick, r.pickAlerts)
		r.notifier.Enable(notify.EventCopy, r.copyAlerts)
	}

	cmdName := "draw"
	var subArgs []string
	if r.fs.NArg() > 0 {
		cmdName = r.fs.Arg(0)
		subArgs = r.fs.Args()[1:]
	}

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "draw":
		cmd, err = parseDrawCmd(subArgs, r)
	case "pickers":
		cmd, err = parsePickersCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	case "help":
		return &UsageError{of: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func (r *root) subcommand(name string) string {
	return strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		switch {
		case errors.As(err, &uerr):
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		case errors.Is(err, flag.ErrHelp):
		default:
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
