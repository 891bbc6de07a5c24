package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func convertCmd(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.OutFormat == nil {
		return fmt.Errorf("%w: convert requires -O <format>", cli.ErrUsage)
	}
	return eachInput(args, func(path string) error {
		doc, err := getDocFile(cfg.MainConfig, cc, path)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", inputName(path), err)
		}
		return encodeDoc(cc.Out, doc, *cfg.OutFormat)
	})
}
