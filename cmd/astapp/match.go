package main

import (
	"fmt"

	"github.com/appcenter/astapp"
	"github.com/appcenter/astapp/ir"
	"github.com/appcenter/astapp/parse"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires a pattern", cli.ErrUsage)
	}
	pattern, err := getPattern(cfg, cc, args[0])
	if err != nil {
		return err
	}
	matched := 0
	err = eachInput(args[1:], func(path string) error {
		doc, err := getDocFile(cfg.MainConfig, cc, path)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", inputName(path), err)
		}
		if !astapp.Match(doc, pattern) {
			return nil
		}
		matched++
		if !cfg.Trim {
			_, err := fmt.Fprintln(cc.Out, inputName(path))
			return err
		}
		return encodeDoc(cc.Out, astapp.Trim(pattern, doc), cfg.outFormat(), cfg.encOpts(cc.Out)...)
	})
	if err != nil {
		return err
	}
	if matched == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func getPattern(cfg *MatchConfig, cc *cli.Context, arg string) (*ir.Document, error) {
	if cfg.String {
		res, err := parse.ParseString(arg, cfg.parseOpts()...)
		if err != nil {
			return nil, fmt.Errorf("%w: pattern: %w", cli.ErrUsage, err)
		}
		return res, nil
	}
	res, err := getDocFile(cfg.MainConfig, cc, arg)
	if err != nil {
		return nil, fmt.Errorf("%w: pattern %s: %w", cli.ErrUsage, arg, err)
	}
	return res, nil
}
