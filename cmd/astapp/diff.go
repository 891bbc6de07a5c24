package main

import (
	"fmt"

	"github.com/appcenter/astapp/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getDocFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getDocFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	lines := libdiff.Diff(a, b)
	if !libdiff.Changed(lines) {
		return nil
	}
	if cfg.Quiet {
		return cli.ExitCodeErr(1)
	}
	if cfg.Questions {
		for _, qc := range libdiff.DiffQuestions(a, b) {
			switch {
			case qc.Op != libdiff.Equal:
				fmt.Fprintf(cc.Out, "%s %s\n", qc.Op, qc.ID)
			case qc.Modified:
				fmt.Fprintf(cc.Out, "~ %s\n", qc.ID)
			}
		}
		return cli.ExitCodeErr(1)
	}
	fmt.Fprintf(cc.Out, "--- %s\n+++ %s\n", args[0], args[1])
	if err := libdiff.Write(cc.Out, lines, cfg.useColor(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
