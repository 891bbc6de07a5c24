package convert

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/appcenter/astapp/ir"

	"github.com/goccy/go-yaml"
)

const (
	keyApp       = "app"
	keyStyle     = "style"
	keyQuestions = "questions"
	keyID        = "id"
	keyType      = "type"
)

// ToAny returns doc as plain Go values: maps, slices, strings, bools,
// int64 and float64. Map key order is lost; use ToJSON or ToYAML to keep
// it.
func ToAny(doc *ir.Document) map[string]any {
	qs := make([]any, len(doc.Questions))
	for i, q := range doc.Questions {
		m := map[string]any{keyID: q.ID, keyType: q.Type}
		for k, v := range q.Props.All() {
			if k == keyID || k == keyType {
				continue
			}
			m[k] = ValueAny(v)
		}
		qs[i] = m
	}
	return map[string]any{
		keyApp:       mapAny(doc.App),
		keyStyle:     mapAny(doc.Style),
		keyQuestions: qs,
	}
}

func mapAny(m *ir.PropertyMap) any {
	if m == nil {
		return nil
	}
	res := make(map[string]any, m.Len())
	for k, v := range m.All() {
		res[k] = ValueAny(v)
	}
	return res
}

// ValueAny returns v as a plain Go value.
func ValueAny(v *ir.Value) any {
	switch v.Type {
	case ir.StringType, ir.BareWordType:
		return v.String
	case ir.BoolType:
		return v.Bool
	case ir.NumberType:
		if v.Float64 != nil {
			return *v.Float64
		}
		if v.Int64 != nil {
			return *v.Int64
		}
		return int64(0)
	case ir.ArrayType:
		res := make([]any, len(v.Values))
		for i, e := range v.Values {
			res[i] = ValueAny(e)
		}
		return res
	case ir.ObjectType:
		return mapAny(v.Fields)
	default:
		return nil
	}
}

// FromAny builds a document from plain Go values in the shape ToAny
// produces. Ordered maps (yaml.MapSlice) keep their order; keys of a Go map
// are sorted.
func FromAny(v any) (*ir.Document, error) {
	top, err := entries(v)
	if err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}
	doc := ir.NewDocument()
	for _, e := range top {
		switch e.k {
		case keyApp:
			doc.App, err = blockFromAny(e.v)
		case keyStyle:
			doc.Style, err = blockFromAny(e.v)
		case keyQuestions:
			doc.Questions, err = questionsFromAny(e.v)
		default:
			err = fmt.Errorf("unknown key %q", e.k)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.k, err)
		}
	}
	return doc, nil
}

func blockFromAny(v any) (*ir.PropertyMap, error) {
	if v == nil {
		return nil, nil
	}
	return mapFromAny(v)
}

func questionsFromAny(v any) ([]*ir.Question, error) {
	if v == nil {
		return nil, nil
	}
	elts, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a list, got %T", v)
	}
	res := make([]*ir.Question, len(elts))
	for i, elt := range elts {
		m, err := mapFromAny(elt)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		q := &ir.Question{Props: m}
		if q.ID, err = headerString(m, keyID); err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		if q.Type, err = headerString(m, keyType); err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		res[i] = q
	}
	return res, nil
}

// headerString removes k from m and returns it as a string. A missing key
// is the empty string.
func headerString(m *ir.PropertyMap, k string) (string, error) {
	v, ok := m.Get(k)
	if !ok {
		return "", nil
	}
	m.Delete(k)
	switch v.Type {
	case ir.StringType, ir.BareWordType:
		return v.String, nil
	case ir.NumberType:
		return v.NumberText(), nil
	}
	return "", fmt.Errorf("%s must be a string, got %s", k, v.Type)
}

type entry struct {
	k string
	v any
}

func entries(v any) ([]entry, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := make([]entry, 0, len(x))
		for _, item := range x {
			k, ok := item.Key.(string)
			if !ok {
				k = fmt.Sprint(item.Key)
			}
			res = append(res, entry{k: k, v: item.Value})
		}
		return res, nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		res := make([]entry, len(keys))
		for i, k := range keys {
			res[i] = entry{k: k, v: x[k]}
		}
		return res, nil
	default:
		return nil, fmt.Errorf("expected a mapping, got %T", v)
	}
}

func mapFromAny(v any) (*ir.PropertyMap, error) {
	es, err := entries(v)
	if err != nil {
		return nil, err
	}
	m := ir.NewPropertyMap()
	for _, e := range es {
		val, err := ValueFromAny(e.v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.k, err)
		}
		m.Set(e.k, val)
	}
	return m, nil
}

// ValueFromAny converts a plain Go value to a Value. nil becomes the bare
// word null.
func ValueFromAny(v any) (*ir.Value, error) {
	switch x := v.(type) {
	case nil:
		return ir.BareWord("null"), nil
	case *ir.Value:
		return x.Clone(), nil
	case string:
		return ir.FromString(x), nil
	case bool:
		return ir.FromBool(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case uint64:
		if x > math.MaxInt64 {
			return ir.FromFloat(float64(x)), nil
		}
		return ir.FromInt(int64(x)), nil
	case uint:
		return ValueFromAny(uint64(x))
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("cannot represent %v", x)
		}
		return ir.FromFloat(x), nil
	case json.Number:
		return numberFromText(string(x))
	case []any:
		vals := make([]*ir.Value, len(x))
		for i, e := range x {
			val, err := ValueFromAny(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			vals[i] = val
		}
		return ir.FromSlice(vals), nil
	case yaml.MapSlice, map[string]any:
		m, err := mapFromAny(x)
		if err != nil {
			return nil, err
		}
		return ir.FromMap(m), nil
	default:
		return nil, fmt.Errorf("unsupported value of type %T", v)
	}
}

// numberFromText reads a JSON number. Anything with a fraction or exponent,
// or too large for an int64, is a float.
func numberFromText(s string) (*ir.Value, error) {
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return ir.FromInt(i), nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return ir.FromFloat(f), nil
}
