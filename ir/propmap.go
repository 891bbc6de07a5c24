package ir

import (
	"iter"
	"slices"
)

// PropertyMap is an ordered map from identifiers to values. Setting an
// existing key replaces its value but keeps its position. The zero value
// is an empty map ready to use.
type PropertyMap struct {
	keys []string
	vals map[string]*Value
}

func NewPropertyMap() *PropertyMap {
	return &PropertyMap{vals: map[string]*Value{}}
}

// PropertyMapOf builds a map from alternating keys and values.
func PropertyMapOf(kvs ...any) *PropertyMap {
	m := NewPropertyMap()
	for i := 0; i+1 < len(kvs); i += 2 {
		m.Set(kvs[i].(string), kvs[i+1].(*Value))
	}
	return m
}

func (m *PropertyMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

func (m *PropertyMap) Set(k string, v *Value) {
	if m.vals == nil {
		m.vals = map[string]*Value{}
	}
	if _, ok := m.vals[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.vals[k] = v
}

func (m *PropertyMap) Get(k string) (*Value, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.vals[k]
	return v, ok
}

func (m *PropertyMap) Has(k string) bool {
	_, ok := m.Get(k)
	return ok
}

func (m *PropertyMap) Delete(k string) bool {
	if !m.Has(k) {
		return false
	}
	delete(m.vals, k)
	m.keys = slices.DeleteFunc(m.keys, func(x string) bool { return x == k })
	return true
}

// Keys returns a copy of the keys in insertion order.
func (m *PropertyMap) Keys() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keys)
}

// All iterates over the entries in insertion order.
func (m *PropertyMap) All() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.vals[k]) {
				return
			}
		}
	}
}

func (m *PropertyMap) Clone() *PropertyMap {
	if m == nil {
		return nil
	}
	res := &PropertyMap{
		keys: slices.Clone(m.keys),
		vals: make(map[string]*Value, len(m.vals)),
	}
	for k, v := range m.vals {
		res.vals[k] = v.Clone()
	}
	return res
}

// OrderLike reorders m so that keys also present in ref come first, in
// ref's order, followed by the remaining keys in their current order.
// Object and array values present in both are reordered recursively.
func (m *PropertyMap) OrderLike(ref *PropertyMap) {
	if m == nil || ref == nil {
		return
	}
	keys := make([]string, 0, len(m.keys))
	for _, k := range ref.keys {
		if m.Has(k) {
			keys = append(keys, k)
		}
	}
	for _, k := range m.keys {
		if !ref.Has(k) {
			keys = append(keys, k)
		}
	}
	m.keys = keys
	for k, v := range m.All() {
		if rv, ok := ref.Get(k); ok {
			orderValueLike(v, rv)
		}
	}
}

func orderValueLike(v, ref *Value) {
	if v.Type != ref.Type {
		return
	}
	switch v.Type {
	case ObjectType:
		v.Fields.OrderLike(ref.Fields)
	case ArrayType:
		for i := range min(len(v.Values), len(ref.Values)) {
			orderValueLike(v.Values[i], ref.Values[i])
		}
	}
}

// KeepBareWords is Document.KeepBareWords for a single map.
func (m *PropertyMap) KeepBareWords(ref *PropertyMap) {
	if m == nil || ref == nil {
		return
	}
	for k, v := range m.All() {
		if rv, ok := ref.Get(k); ok {
			m.vals[k] = keepBareWord(v, rv)
		}
	}
}

func keepBareWord(v, ref *Value) *Value {
	if v == nil || ref == nil {
		return v
	}
	if v.Type == StringType && ref.Type == BareWordType && v.String == ref.String {
		return BareWord(v.String)
	}
	if v.Type != ref.Type {
		return v
	}
	switch v.Type {
	case ObjectType:
		v.Fields.KeepBareWords(ref.Fields)
	case ArrayType:
		for i := range min(len(v.Values), len(ref.Values)) {
			v.Values[i] = keepBareWord(v.Values[i], ref.Values[i])
		}
	}
	return v
}
