package eval

import (
	"github.com/appcenter/astapp/convert"
	"github.com/appcenter/astapp/ir"
)

type Env map[string]any

// NewEnv builds the evaluation environment of doc.
func NewEnv(doc *ir.Document) Env {
	m := convert.ToAny(doc)
	for _, k := range []string{"app", "style"} {
		if m[k] == nil {
			m[k] = map[string]any{}
		}
	}
	return Env(m)
}

// question finds the question with the given id in the environment.
func (e Env) question(id string) any {
	qs, _ := e["questions"].([]any)
	for _, q := range qs {
		m, ok := q.(map[string]any)
		if ok && m["id"] == id {
			return m
		}
	}
	return nil
}
