package ir

import (
	"math"
	"testing"
)

func TestNumberText(t *testing.T) {
	tests := []struct {
		v    *Value
		text string
	}{
		{FromInt(10), "10"},
		{FromInt(-3), "-3"},
		{FromFloat(10), "10"},
		{FromFloat(2.5), "2.5"},
		{FromFloat(-0.125), "-0.125"},
		{FromFloat(0.1), "0.1"},
		{FromFloat(1e20), "100000000000000000000.0"},
		{FromFloat(math.MaxInt32), "2147483647"},
		{FromFloat(math.Copysign(0, -1)), "0"},
	}
	for _, tt := range tests {
		if got := tt.v.NumberText(); got != tt.text {
			t.Errorf("expected %q, got %q", tt.text, got)
		}
	}
}

func TestIntFloat(t *testing.T) {
	i := FromInt(5)
	f := FromFloat(5)
	if !i.IsInt() || i.IsFloat() {
		t.Errorf("int classified as float")
	}
	if !f.IsFloat() || f.IsInt() {
		t.Errorf("float classified as int")
	}
	if Equal(i, f) {
		t.Errorf("5 and 5.0 must differ")
	}
	if i.Float() != f.Float() {
		t.Errorf("numeric values differ: %v %v", i.Float(), f.Float())
	}
}

func TestClone(t *testing.T) {
	orig := FromMap(PropertyMapOf(
		"a", FromSlice([]*Value{FromInt(1), FromString("x")}),
		"b", FromFloat(1.5),
	))
	c := orig.Clone()
	if !Equal(orig, c) {
		t.Fatalf("clone differs")
	}
	a, _ := c.Fields.Get("a")
	*a.Values[0].Int64 = 2
	a.Values = append(a.Values, FromBool(true))
	c.Fields.Set("z", BareWord("w"))
	if Equal(orig, c) {
		t.Errorf("mutating clone changed original")
	}
	oa, _ := orig.Fields.Get("a")
	if *oa.Values[0].Int64 != 1 || len(oa.Values) != 2 || orig.Fields.Has("z") {
		t.Errorf("original mutated: %+v", oa)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b *Value
		eq   bool
	}{
		{FromString("x"), FromString("x"), true},
		{FromString("x"), BareWord("x"), false},
		{FromBool(true), FromBool(false), false},
		{FromInt(1).WithNumber("01"), FromInt(1), true},
		{FromSlice(nil), FromSlice([]*Value{}), true},
		{FromSlice([]*Value{FromInt(1)}), FromSlice([]*Value{FromInt(2)}), false},
		{
			FromMap(PropertyMapOf("a", FromInt(1), "b", FromInt(2))),
			FromMap(PropertyMapOf("b", FromInt(2), "a", FromInt(1))),
			false,
		},
		{FromMap(nil), FromMap(NewPropertyMap()), true},
	}
	for i, tt := range tests {
		if got := Equal(tt.a, tt.b); got != tt.eq {
			t.Errorf("%d: expected %t, got %t", i, tt.eq, got)
		}
	}
}

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != typ {
			t.Errorf("%s came back as %s", typ, back)
		}
	}
	var bad Type
	if err := bad.UnmarshalText([]byte("Null")); err == nil {
		t.Errorf("expected error for unknown type")
	}
}
