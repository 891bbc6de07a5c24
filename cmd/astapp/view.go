package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	n := len(args)
	return eachInput(args, func(path string) error {
		doc, err := getDocFile(cfg.MainConfig, cc, path)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", inputName(path), err)
		}
		if err := encodeDoc(cc.Out, doc, cfg.outFormat(), cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", inputName(path), err)
		}
		if n > 1 {
			_, err = cc.Out.Write([]byte("\n"))
		}
		return err
	})
}
