package libdiff

import (
	"strings"

	"github.com/appcenter/astapp/encode"
	"github.com/appcenter/astapp/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return " "
	}
}

// Line is one line of canonical text. Text has no trailing newline.
type Line struct {
	Op   Op
	Text string
}

// Diff returns the line diff from the canonical text of from to that of
// to. A nil document has no lines.
func Diff(from, to *ir.Document) []Line {
	return DiffText(canonical(from), canonical(to))
}

// DiffText is Diff on already serialized text.
func DiffText(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	res := []Line{}
	for i := range diffs {
		diff := &diffs[i]
		op := Equal
		switch diff.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, ln := range splitLines(diff.Text) {
			res = append(res, Line{Op: op, Text: ln})
		}
	}
	return res
}

// Changed reports whether lines contain any insertion or deletion.
func Changed(lines []Line) bool {
	for _, ln := range lines {
		if ln.Op != Equal {
			return true
		}
	}
	return false
}

// Same reports whether from and to serialize identically.
func Same(from, to *ir.Document) bool {
	return canonical(from) == canonical(to)
}

func canonical(doc *ir.Document) string {
	if doc == nil {
		return ""
	}
	return encode.Serialize(doc)
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
