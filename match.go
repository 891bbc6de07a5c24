package astapp

import (
	"github.com/appcenter/astapp/ir"
)

// Wildcard is the bare word that matches any value in a pattern.
const Wildcard = "_"

// Match reports whether doc contains everything in pattern. Properties of
// pattern blocks and objects must be present in doc with matching values;
// extra properties in doc are ignored. Pattern questions are found in doc by
// id and, when the pattern type is not empty, must have the same type.
// Arrays match element by element and must have the same length.
func Match(doc, pattern *ir.Document) bool {
	if pattern.App != nil && !matchMap(doc.App, pattern.App) {
		return false
	}
	if pattern.Style != nil && !matchMap(doc.Style, pattern.Style) {
		return false
	}
	for _, pq := range pattern.Questions {
		q := doc.Question(pq.ID)
		if q == nil {
			return false
		}
		if pq.Type != "" && q.Type != pq.Type {
			return false
		}
		if !matchMap(q.Props, pq.Props) {
			return false
		}
	}
	return true
}

// MatchValue reports whether v matches pattern.
func MatchValue(v, pattern *ir.Value) bool {
	if pattern.Type == ir.BareWordType && pattern.String == Wildcard {
		return true
	}
	if v.Type != pattern.Type {
		return false
	}
	switch pattern.Type {
	case ir.ObjectType:
		return matchMap(v.Fields, pattern.Fields)
	case ir.ArrayType:
		if len(v.Values) != len(pattern.Values) {
			return false
		}
		for i := range v.Values {
			if !MatchValue(v.Values[i], pattern.Values[i]) {
				return false
			}
		}
		return true
	default:
		return ir.Equal(v, pattern)
	}
}

func matchMap(m, pattern *ir.PropertyMap) bool {
	if m == nil {
		return pattern.Len() == 0
	}
	for k, pv := range pattern.All() {
		v, ok := m.Get(k)
		if !ok || !MatchValue(v, pv) {
			return false
		}
	}
	return true
}

// Trim returns a copy of doc holding only what pattern names: the blocks,
// questions and properties present in pattern.
func Trim(pattern, doc *ir.Document) *ir.Document {
	res := ir.NewDocument()
	if pattern.App != nil {
		res.App = trimMap(pattern.App, doc.App)
	}
	if pattern.Style != nil {
		res.Style = trimMap(pattern.Style, doc.Style)
	}
	for _, pq := range pattern.Questions {
		q := doc.Question(pq.ID)
		if q == nil {
			continue
		}
		res.Questions = append(res.Questions, &ir.Question{
			ID:    q.ID,
			Type:  q.Type,
			Props: trimMap(pq.Props, q.Props),
		})
	}
	return res
}

func trimMap(pattern, m *ir.PropertyMap) *ir.PropertyMap {
	if m == nil {
		return nil
	}
	res := ir.NewPropertyMap()
	for k, v := range m.All() {
		pv, ok := pattern.Get(k)
		if !ok {
			continue
		}
		res.Set(k, trimValue(pv, v))
	}
	return res
}

func trimValue(pattern, v *ir.Value) *ir.Value {
	if pattern.Type == ir.ObjectType && v.Type == ir.ObjectType {
		return ir.FromMap(trimMap(pattern.Fields, v.Fields))
	}
	return v.Clone()
}
