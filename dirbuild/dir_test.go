package dirbuild

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/appcenter/astapp/encode"
	"github.com/appcenter/astapp/parse"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

const buildYAML = `build:
  destDir: out
  output: quiz.astappcnt
  sources:
  - base.astappcnt
  - questions/*.astappcnt
  patches:
  - fix.json
  checks:
  - len(questions) == 2
  - question("q1").points >= env.minPoints
  env:
    minPoints: 1
`

func testDir(t *testing.T) string {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"build.yaml":     buildYAML,
		"base.astappcnt": `APP { title: "Draft"; lang: en; } QUESTION "q1" TYPE "text" { points: 0; }`,
		"questions/a.astappcnt": `APP { title: "Quiz"; }
QUESTION "q1" TYPE "choice" { points: 2; }`,
		"questions/b.astappcnt": `QUESTION "q2" TYPE "text" { points: 1; }`,
		"fix.json":              `[{"op":"add","path":"/style","value":{"theme":"dark"}}]`,
	})
	return root
}

func TestBuild(t *testing.T) {
	root := testDir(t)
	dir, err := OpenDir(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	doc, err := dir.Build()
	if err != nil {
		t.Fatal(err)
	}
	want := `APP {
  title: "Quiz";
  lang: en;
}

STYLE {
  theme: "dark";
}

QUESTION "q1" TYPE "choice" {
  points: 2;
}

QUESTION "q2" TYPE "text" {
  points: 1;
}
`
	if got := encode.Serialize(doc); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	if err := dir.Write(doc); err != nil {
		t.Fatal(err)
	}
	back, err := parse.ParseFile(filepath.Join(root, "out", "quiz.astappcnt"))
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.Serialize(back); got != want {
		t.Errorf("written document differs:\n%s", got)
	}
}

func TestBuildCheckFails(t *testing.T) {
	root := testDir(t)
	dir, err := OpenDir(root, map[string]any{"minPoints": 5})
	if err != nil {
		t.Fatal(err)
	}
	if dir.Env["minPoints"] != 5 {
		t.Errorf("env not overridden: %v", dir.Env)
	}
	_, err = dir.Build()
	if !errors.Is(err, ErrCheckFailed) {
		t.Errorf("expected check failure, got %v", err)
	}
}

func TestOpenDirErrors(t *testing.T) {
	root := t.TempDir()
	if _, err := OpenDir(root, nil); err == nil {
		t.Errorf("expected error for missing build file")
	}
	writeFiles(t, root, map[string]string{"build.yaml": "build:\n  sources: [missing.astappcnt]\n"})
	dir, err := OpenDir(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	if dir.Output != DefaultOutput {
		t.Errorf("output %q", dir.Output)
	}
	if _, err := dir.Build(); err == nil {
		t.Errorf("expected error for unmatched source")
	}
}

func TestBuildParseError(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"build.json":  `{"build": {"sources": ["a.astappcnt"]}}`,
		"a.astappcnt": `APP { a: 1; `,
	})
	dir, err := OpenDir(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = dir.Build()
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestMergeEnv(t *testing.T) {
	got := mergeEnv(
		map[string]any{"a": 1, "m": map[string]any{"x": 1, "y": 2}},
		map[string]any{"m": map[string]any{"y": 3}, "b": true},
	)
	m := got["m"].(map[string]any)
	if got["a"] != 1 || got["b"] != true || m["x"] != 1 || m["y"] != 3 {
		t.Errorf("got %v", got)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(EnvEnv, "{region: eu}")
	env, err := LoadEnv()
	if err != nil {
		t.Fatal(err)
	}
	if env["region"] != "eu" {
		t.Errorf("got %v", env)
	}
	t.Setenv(EnvEnv, "")
	if env, err := LoadEnv(); env != nil || err != nil {
		t.Errorf("got %v, %v", env, err)
	}
}
