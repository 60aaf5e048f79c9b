package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/example/sketchpad/internal/picker"
)

type pickersCmd struct {
	*root
	fs       *flag.FlagSet
	out      io.Writer
	backends []picker.Sampler
}

func (p *pickersCmd) Program() string {
	return p.root.subcommand("pickers")
}

func (p *pickersCmd) FlagSet() *flag.FlagSet {
	return p.fs
}

func parsePickersCmd(args []string, r *root) (*pickersCmd, error) {
	fs := flag.NewFlagSet("pickers", flag.ContinueOnError)
	p := &pickersCmd{root: r, fs: fs, out: os.Stdout, backends: picker.Backends()}
	fs.Usage = usageFunc(p)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, &UsageError{of: p}
	}
	return p, nil
}

func (p *pickersCmd) Run() error {
	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "BACKEND\tAVAILABLE")
	var chosen string
	for _, s := range p.backends {
		ok := s.Available()
		if ok && chosen == "" {
			chosen = s.Name()
		}
		fmt.Fprintf(tw, "%s\t%v\n", s.Name(), ok)
	}
	if chosen == "" {
		chosen = picker.BackendNone
	}
	fmt.Fprintf(tw, "%s\t%s\n", picker.BackendAuto, chosen)
	return tw.Flush()
}
