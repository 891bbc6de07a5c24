package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/appcenter/astapp/token"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	failed := 0
	err = eachInput(args, func(path string) error {
		d, err := readInput(cc, path)
		if err != nil {
			return err
		}
		_, err = decodeDoc(d, cfg.inFormat(path), cfg.parseOpts()...)
		if err == nil {
			return nil
		}
		failed++
		if cfg.Quiet {
			return nil
		}
		return reportError(cc.Out, inputName(path), err)
	})
	if err != nil {
		return err
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// reportError writes err as name:line:col: msg, with 1-based line and
// column when err carries a position.
func reportError(w io.Writer, name string, err error) error {
	var pe *token.ParseError
	if !errors.As(err, &pe) {
		_, werr := fmt.Fprintf(w, "%s: %v\n", name, err)
		return werr
	}
	line, col := pe.Pos.LineCol()
	_, werr := fmt.Fprintf(w, "%s:%d:%d: %v\n", name, line+1, col+1, pe)
	return werr
}
