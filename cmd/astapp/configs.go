package main

import (
	"fmt"
	"io"
	"os"

	"github.com/appcenter/astapp/encode"
	"github.com/appcenter/astapp/format"
	"github.com/appcenter/astapp/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Strict bool `cli:"name=strict desc='read unknown words in boolean position as bare words'"`
	Width  int  `cli:"name=width desc='line width for inline arrays (default 80)'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if cfg.Strict {
		return []parse.ParseOption{parse.StrictBooleans()}
	}
	return nil
}

// inFormat is the format of input read from path: -I when given, otherwise
// the suffix of path.
func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	return format.FromPath(path)
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.AstappFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.Width > 0 {
		res = append(res, encode.LineWidth(cfg.Width))
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor is -color when given, otherwise whether w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "color" && opt.Value != nil {
				return false
			}
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write result to the source file instead of stdout'"`
	Check bool `cli:"name=check desc='exit 1 and list files that are not canonical'"`

	Fmt *cli.Command
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only set the exit code'"`

	Check *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	Convert *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Quiet     bool `cli:"name=q desc='only set the exit code'"`
	Questions bool `cli:"name=questions desc='summarize added, removed and changed questions'"`

	Diff *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Vars  []string
	Check bool `cli:"name=check desc='require a boolean result, exit 1 when false'"`

	Eval *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim   bool `cli:"name=trim desc='trim the results to the match'"`
	String bool `cli:"name=s desc='consider pattern a string argument'"`
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`
	Write  bool `cli:"name=w desc='write result to the source file instead of stdout'"`

	Patch *cli.Command
}

type BuildConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write the result to the output of the build file instead of stdout'"`

	Build *cli.Command
}
