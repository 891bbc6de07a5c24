package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/appcenter/astapp/encode"

	"github.com/scott-cotton/cli"
)

func fmtCmd(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
	}
	unformatted := 0
	err = eachInput(args, func(path string) error {
		in, err := readInput(cc, path)
		if err != nil {
			return err
		}
		out, err := formatSource(cfg.MainConfig, in, path)
		if err != nil {
			return fmt.Errorf("%s: %w", inputName(path), err)
		}
		switch {
		case cfg.Check:
			if !bytes.Equal(in, out) {
				unformatted++
				fmt.Fprintln(cc.Out, inputName(path))
			}
			return nil
		case cfg.Write:
			if bytes.Equal(in, out) {
				return nil
			}
			return os.WriteFile(path, out, 0644)
		default:
			_, err := cc.Out.Write(out)
			return err
		}
	})
	if err != nil {
		return err
	}
	if unformatted > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// formatSource returns the canonical astapp text of in. Colors are never
// applied so that the result can be compared and written back.
func formatSource(cfg *MainConfig, in []byte, path string) ([]byte, error) {
	doc, err := decodeDoc(in, cfg.inFormat(path), cfg.parseOpts()...)
	if err != nil {
		return nil, err
	}
	opts := []encode.EncodeOption{}
	if cfg.Width > 0 {
		opts = append(opts, encode.LineWidth(cfg.Width))
	}
	return []byte(encode.Serialize(doc, opts...)), nil
}
