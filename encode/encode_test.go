package encode

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/appcenter/astapp/ir"

	"github.com/google/go-cmp/cmp"
)

func words(n int, w string) []*ir.Value {
	res := make([]*ir.Value, n)
	for i := range res {
		res[i] = ir.FromString(w)
	}
	return res
}

func TestSerializeDocument(t *testing.T) {
	doc := ir.NewDocument()
	doc.Style = ir.PropertyMapOf("theme", ir.BareWord("dark"))
	doc.App = ir.PropertyMapOf(
		"name", ir.FromString("Staff"),
		"group_id", ir.FromInt(5),
		"ratio", ir.FromFloat(0.25),
		"open", ir.FromBool(false),
		"tags", ir.FromSlice(nil),
		"meta", ir.FromMap(nil),
	)
	q := ir.NewQuestion("q1", "text")
	q.Props.Set("text", ir.FromString(`say "hi" \ bye`))
	q.Props.Set("limits", ir.FromMap(ir.PropertyMapOf("min", ir.FromInt(1), "max", ir.FromInt(-2))))
	doc.Questions = append(doc.Questions, q, ir.NewQuestion("q2", "empty"))

	expected := `APP {
  name: "Staff";
  group_id: 5;
  ratio: 0.25;
  open: false;
  tags: [];
  meta: {};
}

STYLE {
  theme: dark;
}

QUESTION "q1" TYPE "text" {
  text: "say \"hi\" \\ bye";
  limits: {min:1, max:-2};
}

QUESTION "q2" TYPE "empty" {
}
`
	if diff := cmp.Diff(expected, Serialize(doc)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSerializeEmpty(t *testing.T) {
	if got := Serialize(ir.NewDocument()); got != "\n" {
		t.Errorf("expected single newline, got %q", got)
	}
	if got := Serialize(nil); got != "\n" {
		t.Errorf("expected single newline for nil, got %q", got)
	}
}

func TestQuestionSkipsPositionalKeys(t *testing.T) {
	doc := ir.NewDocument()
	q := ir.NewQuestion("a\"b", "t")
	q.Props.Set("id", ir.FromString("ignored"))
	q.Props.Set("x", ir.FromInt(1))
	q.Props.Set("type", ir.FromString("ignored"))
	doc.Questions = []*ir.Question{q}
	expected := "QUESTION \"a\\\"b\" TYPE \"t\" {\n  x: 1;\n}\n"
	if diff := cmp.Diff(expected, Serialize(doc)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestArrayThreshold(t *testing.T) {
	// 8 items of `"abcdefg"` (9 bytes) joined by ", " is 2+72+14 = 88 bytes;
	// 7 items is 2+63+12 = 77.
	short := ir.FromSlice(words(7, "abcdefg"))
	long := ir.FromSlice(words(8, "abcdefg"))
	if got := ValueString(short); strings.Contains(got, "\n") || len(got) != 77 {
		t.Errorf("expected inline 77 bytes, got %d: %q", len(got), got)
	}
	got := ValueString(long)
	expected := "[\n" + strings.Repeat("    \"abcdefg\",\n", 8) + "  ]"
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	// exactly 80 bytes stays inline
	exact := ir.FromSlice([]*ir.Value{ir.FromString(strings.Repeat("x", 76))})
	if got := ValueString(exact); len(got) != 80 || strings.Contains(got, "\n") {
		t.Errorf("expected inline 80 bytes, got %q", got)
	}
	over := ir.FromSlice([]*ir.Value{ir.FromString(strings.Repeat("x", 77))})
	if got := ValueString(over); !strings.Contains(got, "\n") {
		t.Errorf("expected multi-line at 81 bytes, got %q", got)
	}
}

func TestNestedMultiLine(t *testing.T) {
	inner := ir.FromSlice(words(8, "abcdefg"))
	doc := ir.NewDocument()
	doc.App = ir.PropertyMapOf("a", ir.FromSlice([]*ir.Value{inner, ir.FromInt(1)}))
	expected := `APP {
  a: [
    [
    "abcdefg",
    "abcdefg",
    "abcdefg",
    "abcdefg",
    "abcdefg",
    "abcdefg",
    "abcdefg",
    "abcdefg",
  ],
    1,
  ];
}
`
	if diff := cmp.Diff(expected, Serialize(doc)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestOptions(t *testing.T) {
	doc := ir.NewDocument()
	doc.App = ir.PropertyMapOf("a", ir.FromSlice([]*ir.Value{ir.FromInt(1), ir.FromInt(2)}))
	got := Serialize(doc, LineWidth(5), IndentSize(4))
	expected := "APP {\n    a: [\n        1,\n        2,\n    ];\n}\n"
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestColorsKeepLayout(t *testing.T) {
	doc := ir.NewDocument()
	doc.App = ir.PropertyMapOf("a", ir.FromSlice(words(7, "abcdefg")))
	c := &Colors{
		Default: func(s string, _ ...any) string { return "<" + s + ">" },
		Map:     map[Colorable]func(string, ...any) string{},
	}
	got := Serialize(doc, EncodeColors(c))
	if strings.Count(got, "\n") != 3 {
		t.Errorf("colors changed array layout:\n%s", got)
	}
	if !strings.HasPrefix(got, "<APP> <{>") {
		t.Errorf("expected colored keyword, got %q", got)
	}
}

func TestEncodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "app.astappcnt")
	doc := ir.NewDocument()
	doc.App = ir.PropertyMapOf("x", ir.FromInt(1))
	if err := EncodeFile(doc, path); err != nil {
		t.Fatal(err)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "APP {\n  x: 1;\n}\n" {
		t.Errorf("got %q", d)
	}
}

func TestMustString(t *testing.T) {
	doc := ir.NewDocument()
	doc.App = ir.NewPropertyMap()
	if got := MustString(doc); got != "APP {\n}" {
		t.Errorf("got %q", got)
	}
}
