package main

import (
	"fmt"
	"strings"

	"github.com/appcenter/astapp/convert"
	"github.com/appcenter/astapp/encode"
	"github.com/appcenter/astapp/eval"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	code := args[0]
	failed := false
	err = eachInput(args[1:], func(path string) error {
		doc, err := getDocFile(cfg.MainConfig, cc, path)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", inputName(path), err)
		}
		env := eval.NewEnv(doc)
		for _, a := range cfg.Vars {
			if err := envFunc(env, a); err != nil {
				return err
			}
		}
		res, err := eval.Run(env, code)
		if err != nil {
			return fmt.Errorf("error evaluating %s: %w", inputName(path), err)
		}
		if cfg.Check {
			b, ok := res.(bool)
			if !ok {
				return fmt.Errorf("%s: expected bool result, got %T", inputName(path), res)
			}
			if !b {
				failed = true
				fmt.Fprintf(cc.Out, "%s: false\n", inputName(path))
			}
			return nil
		}
		v, err := convert.ValueFromAny(res)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cc.Out, encode.ValueString(v, cfg.encOpts(cc.Out)...))
		return err
	})
	if err != nil {
		return err
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// varsOptTypeFunc collects -e arguments after checking that they parse.
// They are applied to each document's environment in order, so a path
// such as app.name overrides a document property.
func varsOptTypeFunc(vars *[]string) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(map[string]any{}, a); err != nil {
			return nil, err
		}
		*vars = append(*vars, a)
		return 0, nil
	}
}

// envFunc sets the dotted path of a "path=val" argument in env to val read
// as yaml.
func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return fmt.Errorf("%w: value of %s: %w", cli.ErrUsage, key, err)
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot set %s: %s is not a map", key, strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
