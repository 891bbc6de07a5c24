package dirbuild

import (
	"github.com/appcenter/astapp/ir"
)

// Merge folds src into dst. APP and STYLE properties of src overwrite those
// of dst key by key; a question of src replaces the question of dst with the
// same id in place, or is appended.
func Merge(dst, src *ir.Document) {
	dst.App = mergeProps(dst.App, src.App)
	dst.Style = mergeProps(dst.Style, src.Style)
	for _, q := range src.Questions {
		replaced := false
		for i, dq := range dst.Questions {
			if dq.ID == q.ID {
				dst.Questions[i] = q.Clone()
				replaced = true
				break
			}
		}
		if !replaced {
			dst.Questions = append(dst.Questions, q.Clone())
		}
	}
}

func mergeProps(dst, src *ir.PropertyMap) *ir.PropertyMap {
	if src == nil {
		return dst
	}
	if dst == nil {
		return src.Clone()
	}
	for k, v := range src.All() {
		dst.Set(k, v.Clone())
	}
	return dst
}
