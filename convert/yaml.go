package convert

import (
	"github.com/appcenter/astapp/ir"

	"github.com/goccy/go-yaml"
)

// ToYAML renders doc as block style YAML, keeping key order.
func ToYAML(doc *ir.Document) ([]byte, error) {
	qs := make([]any, len(doc.Questions))
	for i, q := range doc.Questions {
		m := yaml.MapSlice{{Key: keyID, Value: q.ID}, {Key: keyType, Value: q.Type}}
		for k, v := range q.Props.All() {
			if k == keyID || k == keyType {
				continue
			}
			m = append(m, yaml.MapItem{Key: k, Value: yamlValue(v)})
		}
		qs[i] = m
	}
	top := yaml.MapSlice{
		{Key: keyApp, Value: yamlBlock(doc.App)},
		{Key: keyStyle, Value: yamlBlock(doc.Style)},
		{Key: keyQuestions, Value: qs},
	}
	return yaml.MarshalWithOptions(top, yaml.IndentSequence(true))
}

func yamlBlock(m *ir.PropertyMap) any {
	if m == nil {
		return nil
	}
	return yamlMap(m)
}

func yamlMap(m *ir.PropertyMap) yaml.MapSlice {
	res := make(yaml.MapSlice, 0, m.Len())
	for k, v := range m.All() {
		res = append(res, yaml.MapItem{Key: k, Value: yamlValue(v)})
	}
	return res
}

func yamlValue(v *ir.Value) any {
	switch v.Type {
	case ir.ArrayType:
		res := make([]any, len(v.Values))
		for i, e := range v.Values {
			res[i] = yamlValue(e)
		}
		return res
	case ir.ObjectType:
		return yamlMap(v.Fields)
	default:
		return ValueAny(v)
	}
}

// FromYAML reads a document from YAML, keeping key order.
func FromYAML(d []byte) (*ir.Document, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return FromAny(v)
}
