package eval

import (
	"testing"

	"github.com/appcenter/astapp/ir"
	"github.com/appcenter/astapp/parse"
)

const src = `APP { name: "Quiz"; }
QUESTION "q1" TYPE "text" { points: 10; }
QUESTION "q2" TYPE "multiple_choice" { points: 5; options: ["a", "b"]; }
`

func TestCheck(t *testing.T) {
	doc, err := parse.ParseString(src)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		code string
		want bool
	}{
		{`app.name == "Quiz"`, true},
		{`len(questions) == 2`, true},
		{`all(questions, .points > 0)`, true},
		{`any(questions, .type == "essay")`, false},
		{`len(style) == 0`, true},
		{`question("q2").points == 5`, true},
		{`question("nope") == nil`, true},
		{`len(question("q2").options) == 2`, true},
	}
	for _, tt := range tests {
		got, err := Check(doc, tt.code)
		if err != nil {
			t.Errorf("%s: %v", tt.code, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: expected %t", tt.code, tt.want)
		}
	}
	if _, err := Check(doc, `app.name`); err == nil {
		t.Error("expected error for non-boolean check")
	}
	if _, err := Check(doc, `(`); err == nil {
		t.Error("expected compile error")
	}
}

func TestEvalValue(t *testing.T) {
	doc, err := parse.ParseString(src)
	if err != nil {
		t.Fatal(err)
	}
	v, err := EvalValue(doc, `sum(map(questions, .points))`)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(v, ir.FromInt(15)) {
		t.Errorf("expected 15, got %v", v.NumberText())
	}
	v, err = EvalValue(doc, `map(questions, .id)`)
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromSlice([]*ir.Value{ir.FromString("q1"), ir.FromString("q2")})
	if !ir.Equal(v, want) {
		t.Errorf("got %v", v.Values)
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("ASTAPP_EVAL_TEST", "yes")
	res, err := Eval(ir.NewDocument(), `getenv("ASTAPP_EVAL_TEST")`)
	if err != nil {
		t.Fatal(err)
	}
	if res != "yes" {
		t.Errorf("got %v", res)
	}
}
