package convert

import (
	"strings"
	"testing"

	"github.com/appcenter/astapp/encode"
	"github.com/appcenter/astapp/ir"
	"github.com/appcenter/astapp/parse"

	"github.com/google/go-cmp/cmp"
)

const src = `APP { name: "Test"; group_id: 5; ratio: 2.5; open: true; }
QUESTION "q1" TYPE "multiple_choice" {
  text: "Pick one"; points: 10;
  options: [{id:"a", text:"A", correct:true}, {id:"b", text:"B", correct:false}];
  mode: strict;
}
`

func mustParse(t *testing.T, s string) *ir.Document {
	t.Helper()
	doc, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestToJSON(t *testing.T) {
	doc := mustParse(t, src)
	d, err := ToJSON(doc)
	if err != nil {
		t.Fatal(err)
	}
	expected := `{
  "app": {
    "name": "Test",
    "group_id": 5,
    "ratio": 2.5,
    "open": true
  },
  "style": null,
  "questions": [
    {
      "id": "q1",
      "type": "multiple_choice",
      "text": "Pick one",
      "points": 10,
      "options": [
        {
          "id": "a",
          "text": "A",
          "correct": true
        },
        {
          "id": "b",
          "text": "B",
          "correct": false
        }
      ],
      "mode": "strict"
    }
  ]
}
`
	if diff := cmp.Diff(expected, string(d)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	doc := mustParse(t, src)
	d, err := ToJSON(doc)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromJSON(d)
	if err != nil {
		t.Fatal(err)
	}
	// bare words come back as strings
	q := doc.Questions[0]
	q.Props.Set("mode", ir.FromString("strict"))
	if !back.Equal(doc) {
		t.Errorf("round trip mismatch:\n%s", encode.Serialize(back))
	}
}

func TestFromJSON(t *testing.T) {
	in := `{"questions":[{"type":"text","x":null,"big":1e3,"n":-4,"id":"z"}],"style":{"c":{}}}`
	doc, err := FromJSON([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	expected := `STYLE {
  c: {};
}

QUESTION "z" TYPE "text" {
  x: null;
  big: 1000;
  n: -4;
}
`
	if diff := cmp.Diff(expected, encode.Serialize(doc)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	big, _ := doc.Questions[0].Props.Get("big")
	if !big.IsFloat() {
		t.Error("expected 1e3 to stay a float")
	}
	if doc.App != nil {
		t.Error("expected no app")
	}
}

func TestFromJSONErrors(t *testing.T) {
	tests := []string{
		`[]`,
		`{"apps":{}}`,
		`{"app":[1]}`,
		`{"questions":{}}`,
		`{"questions":[{"id":true}]}`,
		`{"app":{}} {}`,
		`{"app":`,
	}
	for _, in := range tests {
		if _, err := FromJSON([]byte(in)); err == nil {
			t.Errorf("%s: expected error", in)
		}
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	doc := mustParse(t, src)
	doc.Questions[0].Props.Set("mode", ir.FromString("strict"))
	d, err := ToYAML(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(d), "app:\n") {
		t.Errorf("expected app first, got:\n%s", d)
	}
	back, err := FromYAML(d)
	if err != nil {
		t.Fatalf("%v\n%s", err, d)
	}
	if !back.Equal(doc) {
		t.Errorf("round trip mismatch:\n%s\nfrom\n%s", encode.Serialize(back), d)
	}
}

func TestToAny(t *testing.T) {
	doc := mustParse(t, src)
	m := ToAny(doc)
	if m["style"] != nil {
		t.Errorf("expected nil style, got %v", m["style"])
	}
	app := m["app"].(map[string]any)
	if app["group_id"] != int64(5) || app["ratio"] != 2.5 {
		t.Errorf("got %v", app)
	}
	qs := m["questions"].([]any)
	q := qs[0].(map[string]any)
	if q["id"] != "q1" || q["points"] != int64(10) {
		t.Errorf("got %v", q)
	}
	back, err := FromAny(m)
	if err != nil {
		t.Fatal(err)
	}
	if len(back.Questions) != 1 || back.Questions[0].Type != "multiple_choice" {
		t.Errorf("got %s", encode.Serialize(back))
	}
}
