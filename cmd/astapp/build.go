package main

import (
	"fmt"

	"github.com/appcenter/astapp/dirbuild"

	"github.com/scott-cotton/cli"
)

func build(cfg *BuildConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Build.Parse(cc, args)
	if err != nil {
		cfg.Build.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	root := "."
	switch len(args) {
	case 0:
	case 1:
		root = args[0]
	default:
		return fmt.Errorf("%w: build takes at most one directory", cli.ErrUsage)
	}
	env, err := dirbuild.LoadEnv()
	if err != nil {
		return err
	}
	dir, err := dirbuild.OpenDir(root, env)
	if err != nil {
		return err
	}
	doc, err := dir.Build(cfg.parseOpts()...)
	if err != nil {
		return err
	}
	if cfg.Write {
		if err := dir.Write(doc); err != nil {
			return fmt.Errorf("error writing %s: %w", dir.OutputPath(), err)
		}
		return nil
	}
	return encodeDoc(cc.Out, doc, cfg.outFormat(), cfg.encOpts(cc.Out)...)
}
