package ir

import (
	"slices"
	"testing"
)

func TestPropertyMapOrder(t *testing.T) {
	m := NewPropertyMap()
	m.Set("name", FromString("a"))
	m.Set("group_id", FromInt(5))
	m.Set("pass_score", FromInt(75))
	m.Set("name", FromString("b"))

	if got := m.Keys(); !slices.Equal(got, []string{"name", "group_id", "pass_score"}) {
		t.Errorf("unexpected key order %v", got)
	}
	v, ok := m.Get("name")
	if !ok || v.String != "b" {
		t.Errorf("last write did not win: %+v", v)
	}
	if m.Len() != 3 {
		t.Errorf("expected 3 entries, got %d", m.Len())
	}

	if !m.Delete("group_id") || m.Delete("group_id") {
		t.Errorf("delete reported wrong result")
	}
	var keys []string
	for k := range m.All() {
		keys = append(keys, k)
	}
	if !slices.Equal(keys, []string{"name", "pass_score"}) {
		t.Errorf("unexpected keys after delete %v", keys)
	}
}

func TestPropertyMapZero(t *testing.T) {
	var m PropertyMap
	if m.Len() != 0 || m.Has("x") {
		t.Errorf("zero map not empty")
	}
	m.Set("x", FromBool(true))
	if !m.Has("x") {
		t.Errorf("set on zero map lost")
	}
	var nilMap *PropertyMap
	if nilMap.Len() != 0 || nilMap.Keys() != nil {
		t.Errorf("nil map not empty")
	}
	for range nilMap.All() {
		t.Errorf("nil map yielded")
	}
}

func TestOrderLike(t *testing.T) {
	ref := PropertyMapOf(
		"z", FromInt(1),
		"opts", FromMap(PropertyMapOf("b", FromInt(1), "a", FromInt(2))),
		"m", FromInt(3),
	)
	m := PropertyMapOf(
		"m", FromInt(3),
		"new", FromInt(4),
		"opts", FromMap(PropertyMapOf("a", FromInt(2), "b", FromInt(1), "c", FromInt(0))),
		"z", FromInt(9),
	)
	m.OrderLike(ref)
	if got := m.Keys(); !slices.Equal(got, []string{"z", "opts", "m", "new"}) {
		t.Errorf("unexpected order %v", got)
	}
	opts, _ := m.Get("opts")
	if got := opts.Fields.Keys(); !slices.Equal(got, []string{"b", "a", "c"}) {
		t.Errorf("unexpected nested order %v", got)
	}
}

func TestKeepBareWords(t *testing.T) {
	ref := PropertyMapOf(
		"status", BareWord("draft"),
		"changed", BareWord("old"),
		"list", FromSlice([]*Value{BareWord("a"), FromString("b")}),
		"obj", FromMap(PropertyMapOf("k", BareWord("v"))),
		"quoted", FromString("q"),
	)
	m := PropertyMapOf(
		"status", FromString("draft"),
		"changed", FromString("new"),
		"list", FromSlice([]*Value{FromString("a"), FromString("b")}),
		"obj", FromMap(PropertyMapOf("k", FromString("v"))),
		"quoted", FromString("q"),
		"added", FromString("draft"),
	)
	m.KeepBareWords(ref)
	want := PropertyMapOf(
		"status", BareWord("draft"),
		"changed", FromString("new"),
		"list", FromSlice([]*Value{BareWord("a"), FromString("b")}),
		"obj", FromMap(PropertyMapOf("k", BareWord("v"))),
		"quoted", FromString("q"),
		"added", FromString("draft"),
	)
	if !EqualMaps(m, want) {
		t.Errorf("got %v", m.Keys())
	}
}
