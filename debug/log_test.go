package debug

import (
	"io"
	"os"
	"testing"

	"github.com/appcenter/astapp/ir"
)

func captureStderr(t *testing.T, f func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	old := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = old }()
	f()
	w.Close()
	d, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}

func TestLogf(t *testing.T) {
	got := captureStderr(t, func() {
		Logf("%s %d %v %v %s\n", "a", 1, true, 1.5, ir.BareWord("w"))
	})
	if want := "a 1 true 1.5 w\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	got = captureStderr(t, func() {
		Logf("%s", []any{1})
	})
	if want := "[\n   |  1\n   |]"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
