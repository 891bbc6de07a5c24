package ir

import (
	"math"
	"strconv"
)

// Value is a tagged union; Type selects which fields are meaningful.
//
//   - StringType, BareWordType: String
//   - NumberType: exactly one of Int64 or Float64, Number holds the source
//     literal when the value was parsed
//   - BoolType: Bool
//   - ArrayType: Values
//   - ObjectType: Fields
type Value struct {
	Type Type

	String  string
	Bool    bool
	Number  string
	Int64   *int64
	Float64 *float64
	Values  []*Value
	Fields  *PropertyMap
}

func FromString(v string) *Value {
	return &Value{Type: StringType, String: v}
}

// BareWord is an unquoted token that is not a number, string or boolean.
func BareWord(v string) *Value {
	return &Value{Type: BareWordType, String: v}
}

func FromInt(v int64) *Value {
	return &Value{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Value {
	return &Value{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Value {
	return &Value{
		Type: BoolType,
		Bool: v,
	}
}

func FromSlice(vs []*Value) *Value {
	if vs == nil {
		vs = []*Value{}
	}
	return &Value{
		Type:   ArrayType,
		Values: vs,
	}
}

func FromMap(m *PropertyMap) *Value {
	if m == nil {
		m = NewPropertyMap()
	}
	return &Value{
		Type:   ObjectType,
		Fields: m,
	}
}

func (v *Value) WithNumber(lit string) *Value {
	v.Number = lit
	return v
}

func (v *Value) IsFloat() bool {
	return v.Type == NumberType && v.Float64 != nil
}

func (v *Value) IsInt() bool {
	return v.Type == NumberType && v.Float64 == nil
}

// NumberText is the canonical text of a number: integers in base 10,
// floats in their shortest decimal form. An integral float too large for
// an int64 keeps a ".0" so that it reads back as a float. Negative zero is
// written as 0.
func (v *Value) NumberText() string {
	if v.Float64 != nil {
		f := *v.Float64
		if f == 0 {
			return "0"
		}
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if math.Abs(f) >= 1<<63 && f == math.Trunc(f) {
			s += ".0"
		}
		return s
	}
	if v.Int64 != nil {
		return strconv.FormatInt(*v.Int64, 10)
	}
	return "0"
}

// Float returns the value of a number as a float64.
func (v *Value) Float() float64 {
	if v.Float64 != nil {
		return *v.Float64
	}
	if v.Int64 != nil {
		return float64(*v.Int64)
	}
	return 0
}

func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	res := &Value{
		Type:   v.Type,
		String: v.String,
		Bool:   v.Bool,
		Number: v.Number,
	}
	if v.Int64 != nil {
		i := *v.Int64
		res.Int64 = &i
	}
	if v.Float64 != nil {
		f := *v.Float64
		res.Float64 = &f
	}
	if v.Values != nil {
		res.Values = make([]*Value, len(v.Values))
		for i, e := range v.Values {
			res.Values[i] = e.Clone()
		}
	}
	if v.Fields != nil {
		res.Fields = v.Fields.Clone()
	}
	return res
}
