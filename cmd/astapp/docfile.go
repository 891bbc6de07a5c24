package main

import (
	"fmt"
	"io"
	"os"

	"github.com/appcenter/astapp/convert"
	"github.com/appcenter/astapp/encode"
	"github.com/appcenter/astapp/format"
	"github.com/appcenter/astapp/ir"
	"github.com/appcenter/astapp/parse"

	"github.com/scott-cotton/cli"
)

// readInput reads path, or cc.In when path is "-".
func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getDocFile(cfg *MainConfig, cc *cli.Context, path string) (*ir.Document, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	return decodeDoc(d, cfg.inFormat(path), cfg.parseOpts()...)
}

func decodeDoc(d []byte, f format.Format, opts ...parse.ParseOption) (*ir.Document, error) {
	switch f {
	case format.JSONFormat:
		return convert.FromJSON(d)
	case format.YAMLFormat:
		return convert.FromYAML(d)
	default:
		return parse.Parse(d, opts...)
	}
}

func encodeDoc(w io.Writer, doc *ir.Document, f format.Format, opts ...encode.EncodeOption) error {
	var (
		d   []byte
		err error
	)
	switch f {
	case format.JSONFormat:
		d, err = convert.ToJSON(doc)
	case format.YAMLFormat:
		d, err = convert.ToYAML(doc)
	default:
		return encode.Encode(doc, w, opts...)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// eachInput runs f on every file in args, or on stdin when args is empty.
func eachInput(args []string, f func(path string) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, path := range args {
		if err := f(path); err != nil {
			return err
		}
	}
	return nil
}

func inputName(path string) string {
	if path == "-" {
		return "<stdin>"
	}
	return path
}
