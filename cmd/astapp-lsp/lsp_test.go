package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"
)

const testURI = "file:///quiz.astappcnt"

const sample = `APP {
  title: "Quiz";
  tags: [a, b];
}

QUESTION "q1" TYPE "choice" {
  points: 5;
  ok: true; // note
}
`

func testDoc(content string) *document {
	return newDocument(testURI, content, 1)
}

func TestLexKinds(t *testing.T) {
	content := `APP { a: 1; b: "x"; c: [d, true] } // c`
	var got []tokenKind
	for _, tok := range lex(content) {
		got = append(got, tok.kind)
	}
	want := []tokenKind{
		keywordToken, operatorToken,
		propertyToken, operatorToken, numberToken, operatorToken,
		propertyToken, operatorToken, stringToken, operatorToken,
		propertyToken, operatorToken, operatorToken, wordToken, operatorToken, boolToken, operatorToken,
		operatorToken, commentToken,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("kinds (-want +got):\n%s", diff)
	}
}

func TestLexUnterminated(t *testing.T) {
	content := `APP { a: "open`
	toks := lex(content)
	last := toks[len(toks)-1]
	if last.kind != stringToken || last.end != len(content) {
		t.Errorf("got %+v", last)
	}
	if got := depthAt(toks, len(content)); got != 1 {
		t.Errorf("depth %d", got)
	}
}

func TestPositionUTF16(t *testing.T) {
	content := "APP {\n  t: \"é𝄞x\";\n}\n"
	d := testDoc(content)
	off := strings.Index(content, "x")
	want := protocol.Position{Line: 1, Character: 9}
	if got := d.position(off); got != want {
		t.Errorf("position: got %+v want %+v", got, want)
	}
	if got := d.offset(want); got != off {
		t.Errorf("offset: got %d want %d", got, off)
	}
	if got := d.offset(protocol.Position{Line: 1, Character: 100}); got != strings.Index(content, "\n}") {
		t.Errorf("clamped offset %d", got)
	}
}

func TestApplyChanges(t *testing.T) {
	d := testDoc("APP {\n  a: 1;\n}\n")
	got := applyChanges(d, []protocol.TextDocumentContentChangeEvent{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 1, Character: 5},
				End:   protocol.Position{Line: 1, Character: 6},
			},
			Text: "2",
		},
		{Text: "// c\n"},
	})
	if want := "// c\nAPP {\n  a: 2;\n}\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestStoreKeepsLastDocument(t *testing.T) {
	ds := &documentStore{docs: map[string]*document{}}
	ds.put(testURI, sample, 1)
	d := ds.put(testURI, "APP {", 2)
	if d.doc != nil || d.err == nil {
		t.Fatalf("expected a parse error")
	}
	if d.last == nil || d.last.App.Len() != 2 {
		t.Errorf("last document not kept")
	}
	ds.remove(testURI)
	if ds.get(testURI) != nil {
		t.Errorf("not removed")
	}
}

func TestDiagnostics(t *testing.T) {
	if got := diagnostics(testDoc(sample)); len(got) != 0 {
		t.Errorf("unexpected diagnostics %v", got)
	}
	got := diagnostics(testDoc(`QUESTION "q" TYP "x" {}`))
	if len(got) != 1 {
		t.Fatalf("got %d diagnostics", len(got))
	}
	want := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 13},
		End:   protocol.Position{Line: 0, Character: 16},
	}
	if diff := cmp.Diff(want, got[0].Range); diff != "" {
		t.Errorf("range (-want +got):\n%s", diff)
	}
	if got[0].Message != `expected "TYPE", found "TYP"` {
		t.Errorf("message %q", got[0].Message)
	}
	if got[0].Severity != protocol.DiagnosticSeverityError {
		t.Errorf("severity %v", got[0].Severity)
	}
}

func labels(items []protocol.CompletionItem) []string {
	var res []string
	for _, it := range items {
		res = append(res, it.Label)
	}
	return res
}

func TestCompletion(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"top level", "", []string{"APP", "STYLE", "QUESTION"}},
		{"after block", "APP {}\n", []string{"APP", "STYLE", "QUESTION"}},
		{"type", `QUESTION "x" `, []string{"TYPE"}},
		{"type prefix", `QUESTION "x" TY`, []string{"TYPE"}},
		{"value", "APP {\n  a: ", []string{"true", "false", `""`, "[]", "{}"}},
		{"array", "APP {\n  a: [", []string{"true", "false", `""`, "[]", "{}"}},
		{"property", "APP {\n  ti", []string{"title", "tags"}},
		{"question property", "QUESTION \"q2\" TYPE \"x\" {\n  ", []string{"points", "ok"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ds := &documentStore{docs: map[string]*document{}}
			ds.put(testURI, sample, 1)
			d := ds.put(testURI, tc.content, 2)
			got := labels(completions(d, len(tc.content)))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestHover(t *testing.T) {
	d := testDoc(sample)
	tests := []struct {
		pos  protocol.Position
		path string
		typ  string
	}{
		{protocol.Position{Line: 6, Character: 10}, "QUESTION \"q1\".points", "integer"},
		{protocol.Position{Line: 2, Character: 12}, "APP.tags[1]", "bare word"},
		{protocol.Position{Line: 2, Character: 2}, "APP.tags", "array of 2"},
		{protocol.Position{Line: 7, Character: 7}, "QUESTION \"q1\".ok", "bool"},
	}
	paths := valuePaths(d.doc)
	for _, tc := range tests {
		v := findValueAt(d, d.offset(tc.pos))
		if v == nil {
			t.Errorf("%v: no value", tc.pos)
			continue
		}
		text := buildHoverText(paths[v], v)
		if !strings.Contains(text, "`"+tc.path+"`") {
			t.Errorf("%v: path missing in %q", tc.pos, text)
		}
		if !strings.Contains(text, "**Type:** "+tc.typ) {
			t.Errorf("%v: type missing in %q", tc.pos, text)
		}
	}
}

func TestDocumentSymbols(t *testing.T) {
	syms := documentSymbols(testDoc(sample))
	if len(syms) != 2 {
		t.Fatalf("got %d symbols", len(syms))
	}
	var names [][]string
	for _, s := range syms {
		n := []string{s.Name}
		for _, c := range s.Children {
			n = append(n, c.Name)
		}
		names = append(names, n)
	}
	want := [][]string{{"APP", "title", "tags"}, {"QUESTION", "points", "ok"}}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if syms[1].Detail != `"q1" TYPE "choice"` {
		t.Errorf("detail %q", syms[1].Detail)
	}
	wantRange := protocol.Range{
		Start: protocol.Position{Line: 1, Character: 2},
		End:   protocol.Position{Line: 1, Character: 16},
	}
	if diff := cmp.Diff(wantRange, syms[0].Children[0].Range); diff != "" {
		t.Errorf("title range (-want +got):\n%s", diff)
	}
	if got := syms[0].Range.End; got != (protocol.Position{Line: 3, Character: 1}) {
		t.Errorf("APP range end %+v", got)
	}
}

func TestFormatEdits(t *testing.T) {
	edits := formatEdits(testDoc("APP{a:1}"))
	want := []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: 0, Character: 8},
		},
		NewText: "APP {\n  a: 1;\n}\n",
	}}
	if diff := cmp.Diff(want, edits); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if edits := formatEdits(testDoc("APP {\n  a: 1;\n}\n")); len(edits) != 0 {
		t.Errorf("canonical text got edits %v", edits)
	}
	if edits := formatEdits(testDoc("APP {")); edits != nil {
		t.Errorf("invalid text got edits %v", edits)
	}
}

func TestSemanticTokens(t *testing.T) {
	d := testDoc("APP {\n  a: 1;\n}\n")
	got := semanticTokens(d, 0, ^uint32(0))
	want := []uint32{
		0, 0, 3, 1, 0,
		0, 4, 1, 4, 0,
		1, 2, 1, 5, 0,
		0, 1, 1, 4, 0,
		0, 2, 1, 3, 0,
		0, 1, 1, 4, 0,
		1, 0, 1, 4, 0,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("full (-want +got):\n%s", diff)
	}
	got = semanticTokens(d, 1, 1)
	if diff := cmp.Diff(want[10:30], append([]uint32{}, got...)); diff != "" {
		t.Errorf("range (-want +got):\n%s", diff)
	}
}

func TestSemanticTokensMultiLineString(t *testing.T) {
	d := testDoc("APP {\n  a: \"x\ny\";\n}\n")
	got := semanticTokens(d, 0, ^uint32(0))
	// a, :, then the string clipped to `"x`
	if want := []uint32{0, 2, 2, 2, 0}; !cmp.Equal(want, got[20:25]) {
		t.Errorf("string token %v", got[20:25])
	}
}
