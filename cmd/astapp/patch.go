package main

import (
	"fmt"

	"github.com/appcenter/astapp"
	"github.com/appcenter/astapp/encode"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a json patch argument", cli.ErrUsage)
	}
	if cfg.Write && len(args) < 2 {
		return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
	}
	ops, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	return eachInput(args[1:], func(path string) error {
		target, err := getDocFile(cfg.MainConfig, cc, path)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", inputName(path), err)
		}
		res, err := astapp.Patch(target, ops)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", inputName(path), err)
		}
		if cfg.Write {
			return encode.EncodeFile(res, path)
		}
		if err := encodeDoc(cc.Out, res, cfg.outFormat(), cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	})
}

func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) ([]byte, error) {
	if cfg.String {
		return []byte(arg), nil
	}
	d, err := readInput(cc, arg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return d, nil
}
