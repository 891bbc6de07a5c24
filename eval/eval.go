package eval

import (
	"fmt"
	"os"

	"github.com/appcenter/astapp/convert"
	"github.com/appcenter/astapp/debug"
	"github.com/appcenter/astapp/ir"

	"github.com/expr-lang/expr"
)

func exprOpts(env Env) []expr.Option {
	return []expr.Option{
		expr.Env(map[string]any(env)),
		expr.Function("question", func(params ...any) (any, error) {
			return env.question(params[0].(string)), nil
		},
			new(func(string) map[string]any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// Eval runs code against doc and returns the raw result.
func Eval(doc *ir.Document, code string) (any, error) {
	return Run(NewEnv(doc), code)
}

// Run runs code in env, which may hold variables beyond those of NewEnv.
func Run(env Env, code string, opts ...expr.Option) (any, error) {
	if debug.Eval() {
		debug.Logf("eval %q\n", code)
	}
	prg, err := expr.Compile(code, append(exprOpts(env), opts...)...)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(prg, map[string]any(env))
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("eval result %#v\n", res)
	}
	return res, nil
}

// EvalValue runs code and converts the result to a Value.
func EvalValue(doc *ir.Document, code string) (*ir.Value, error) {
	res, err := Eval(doc, code)
	if err != nil {
		return nil, err
	}
	return convert.ValueFromAny(res)
}

// Check runs code, which must produce a boolean.
func Check(doc *ir.Document, code string) (bool, error) {
	res, err := Run(NewEnv(doc), code, expr.AsBool())
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("expected bool, got %T", res)
	}
	return b, nil
}
