package ir

import "fmt"

type Type int

const (
	StringType Type = iota
	NumberType
	BoolType
	ArrayType
	ObjectType
	BareWordType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		StringType:   "String",
		NumberType:   "Number",
		BoolType:     "Bool",
		ArrayType:    "Array",
		ObjectType:   "Object",
		BareWordType: "BareWord",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"String":   StringType,
		"Number":   NumberType,
		"Bool":     BoolType,
		"Array":    ArrayType,
		"Object":   ObjectType,
		"BareWord": BareWordType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		StringType,
		NumberType,
		BoolType,
		ArrayType,
		ObjectType,
		BareWordType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, ObjectType:
		return false
	default:
		return true
	}
}
