package convert

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/appcenter/astapp/ir"

	"github.com/goccy/go-yaml"
)

// ToJSON renders doc as indented JSON, keeping key order.
func ToJSON(doc *ir.Document) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteString(`{"app":`)
	writeJSONMap(buf, doc.App, false)
	buf.WriteString(`,"style":`)
	writeJSONMap(buf, doc.Style, false)
	buf.WriteString(`,"questions":[`)
	for i, q := range doc.Questions {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(`{"id":`)
		writeJSONString(buf, q.ID)
		buf.WriteString(`,"type":`)
		writeJSONString(buf, q.Type)
		for k, v := range q.Props.All() {
			if k == keyID || k == keyType {
				continue
			}
			buf.WriteByte(',')
			writeJSONString(buf, k)
			buf.WriteByte(':')
			writeJSONValue(buf, v)
		}
		buf.WriteByte('}')
	}
	buf.WriteString("]}")
	out := &bytes.Buffer{}
	if err := json.Indent(out, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// ValueJSON renders a single value as compact JSON.
func ValueJSON(v *ir.Value) []byte {
	buf := &bytes.Buffer{}
	writeJSONValue(buf, v)
	return buf.Bytes()
}

func writeJSONMap(buf *bytes.Buffer, m *ir.PropertyMap, empty bool) {
	if m == nil && !empty {
		buf.WriteString("null")
		return
	}
	buf.WriteByte('{')
	i := 0
	for k, v := range m.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSONString(buf, k)
		buf.WriteByte(':')
		writeJSONValue(buf, v)
		i++
	}
	buf.WriteByte('}')
}

func writeJSONValue(buf *bytes.Buffer, v *ir.Value) {
	switch v.Type {
	case ir.StringType, ir.BareWordType:
		writeJSONString(buf, v.String)
	case ir.BoolType:
		if v.Bool {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case ir.NumberType:
		s := v.NumberText()
		if v.IsFloat() && !strings.Contains(s, ".") {
			s += ".0"
		}
		buf.WriteString(s)
	case ir.ArrayType:
		buf.WriteByte('[')
		for i, e := range v.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSONValue(buf, e)
		}
		buf.WriteByte(']')
	case ir.ObjectType:
		writeJSONMap(buf, v.Fields, true)
	default:
		buf.WriteString("null")
	}
}

func writeJSONString(buf *bytes.Buffer, s string) {
	d, _ := json.Marshal(s)
	buf.Write(d)
}

// FromJSON reads a document from JSON, keeping key order.
func FromJSON(d []byte) (*ir.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	v, err := decodeOrdered(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after document")
	}
	return FromAny(v)
}

// decodeOrdered reads one JSON value, producing yaml.MapSlice for objects
// so that key order survives.
func decodeOrdered(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '{':
			m := yaml.MapSlice{}
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				k, _ := kt.(string)
				v, err := decodeOrdered(dec)
				if err != nil {
					return nil, err
				}
				m = append(m, yaml.MapItem{Key: k, Value: v})
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return m, nil
		case '[':
			res := []any{}
			for dec.More() {
				v, err := decodeOrdered(dec)
				if err != nil {
					return nil, err
				}
				res = append(res, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return res, nil
		}
		return nil, fmt.Errorf("unexpected %v", x)
	default:
		return tok, nil
	}
}
