package libdiff

import (
	"github.com/appcenter/astapp/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// QuestionChange describes one question in a question level diff. Op is
// Equal for a question present in both documents; Modified then tells
// whether its type or properties differ.
type QuestionChange struct {
	Op       Op
	ID       string
	Modified bool
}

// DiffQuestions aligns the questions of from and to by id, keeping their
// order, and classifies each.
func DiffQuestions(from, to *ir.Document) []QuestionChange {
	m := map[string]rune{}
	fromQs, toQs := questions(from), questions(to)
	fromRunes := mapIDs(m, fromQs)
	toRunes := mapIDs(m, toQs)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	res := []QuestionChange{}
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		for range []rune(diff.Text) {
			switch diff.Type {
			case diffpatch.DiffDelete:
				res = append(res, QuestionChange{Op: Delete, ID: fromQs[fi].ID})
				fi++
			case diffpatch.DiffInsert:
				res = append(res, QuestionChange{Op: Insert, ID: toQs[ti].ID})
				ti++
			case diffpatch.DiffEqual:
				f, t := fromQs[fi], toQs[ti]
				res = append(res, QuestionChange{
					Op:       Equal,
					ID:       f.ID,
					Modified: f.Type != t.Type || !ir.EqualMaps(f.Props, t.Props),
				})
				fi++
				ti++
			}
		}
	}
	return res
}

func questions(doc *ir.Document) []*ir.Question {
	if doc == nil {
		return nil
	}
	return doc.Questions
}

// mapIDs assigns each distinct id a rune so the id sequences can be diffed
// like text. Runes start above the surrogate range.
func mapIDs(m map[string]rune, qs []*ir.Question) []rune {
	rs := make([]rune, len(qs))
	for i, q := range qs {
		r, ok := m[q.ID]
		if !ok {
			r = rune(0xE000 + len(m))
			m[q.ID] = r
		}
		rs[i] = r
	}
	return rs
}
