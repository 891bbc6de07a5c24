package encode

import (
	"io"
	"strings"

	"github.com/appcenter/astapp/ir"
	"github.com/appcenter/astapp/token"
)

// EncState holds layout settings and the current indent depth.
type EncState struct {
	depth, indent int
	width         int

	Color func(ir.Type, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{
		indent: 2,
		width:  80,
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes the text of doc to w. The only errors are those of w.
func Encode(doc *ir.Document, w io.Writer, opts ...EncodeOption) error {
	_, err := io.WriteString(w, Serialize(doc, opts...))
	return err
}

// Serialize returns the text of doc.
func Serialize(doc *ir.Document, opts ...EncodeOption) string {
	es := newEncState(opts)
	blocks := []string{}
	if doc != nil {
		if doc.App != nil {
			blocks = append(blocks, es.block(es.keyword(token.KeywordApp), doc.App, false))
		}
		if doc.Style != nil {
			blocks = append(blocks, es.block(es.keyword(token.KeywordStyle), doc.Style, false))
		}
		for _, q := range doc.Questions {
			if q == nil {
				continue
			}
			blocks = append(blocks, es.block(es.questionHeader(q), q.Props, true))
		}
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

func (es *EncState) questionHeader(q *ir.Question) string {
	return es.keyword(token.KeywordQuestion) + " " +
		es.color(ir.StringType, ValueColor, token.Quote(q.ID)) + " " +
		es.keyword(token.KeywordType) + " " +
		es.color(ir.StringType, ValueColor, token.Quote(q.Type))
}

// block renders a property block. In a question block the id and type keys
// are carried by the header and skipped.
func (es *EncState) block(header string, props *ir.PropertyMap, question bool) string {
	b := &strings.Builder{}
	b.WriteString(header)
	b.WriteString(" " + es.sep("{") + "\n")
	es.depth++
	for k, v := range props.All() {
		if question && (k == "id" || k == "type") {
			continue
		}
		b.WriteString(es.indentString())
		b.WriteString(es.field(k))
		b.WriteString(es.sep(":") + " ")
		b.WriteString(es.value(v))
		b.WriteString(es.sep(";") + "\n")
	}
	es.depth--
	b.WriteString(es.sep("}"))
	return b.String()
}

func (es *EncState) value(v *ir.Value) string {
	if v == nil {
		return es.color(ir.BareWordType, ValueColor, "null")
	}
	switch v.Type {
	case ir.StringType:
		return es.color(v.Type, ValueColor, token.Quote(v.String))
	case ir.BoolType:
		if v.Bool {
			return es.color(v.Type, ValueColor, token.KeywordTrue)
		}
		return es.color(v.Type, ValueColor, token.KeywordFalse)
	case ir.NumberType:
		return es.color(v.Type, ValueColor, v.NumberText())
	case ir.ArrayType:
		return es.array(v.Values)
	case ir.ObjectType:
		return es.object(v.Fields)
	case ir.BareWordType:
		return es.color(v.Type, ValueColor, v.String)
	default:
		return es.color(ir.BareWordType, ValueColor, "null")
	}
}

// array renders items inline when the uncolored inline text fits in the
// line width. Otherwise each item goes on its own line one level deeper.
// Items are rendered at the enclosing depth in both cases.
func (es *EncState) array(vs []*ir.Value) string {
	if len(vs) == 0 {
		return es.sep("[") + es.sep("]")
	}
	items := make([]string, len(vs))
	for i, v := range vs {
		items[i] = es.value(v)
	}
	inline := es.sep("[") + strings.Join(items, es.sep(",")+" ") + es.sep("]")
	if es.inlineWidth(vs, inline) <= es.width {
		return inline
	}
	b := &strings.Builder{}
	b.WriteString(es.sep("[") + "\n")
	es.depth++
	ind := es.indentString()
	for _, item := range items {
		b.WriteString(ind + item + es.sep(",") + "\n")
	}
	es.depth--
	b.WriteString(es.indentString() + es.sep("]"))
	return b.String()
}

func (es *EncState) inlineWidth(vs []*ir.Value, inline string) int {
	if es.Color == nil {
		return len(inline)
	}
	plain := &EncState{depth: es.depth, indent: es.indent, width: es.width}
	n := len("[]") + len(", ")*(len(vs)-1)
	for _, v := range vs {
		n += len(plain.value(v))
	}
	return n
}

func (es *EncState) object(m *ir.PropertyMap) string {
	if m.Len() == 0 {
		return es.sep("{") + es.sep("}")
	}
	parts := make([]string, 0, m.Len())
	for k, v := range m.All() {
		parts = append(parts, es.field(k)+es.sep(":")+es.value(v))
	}
	return es.sep("{") + strings.Join(parts, es.sep(",")+" ") + es.sep("}")
}

func (es *EncState) indentString() string {
	return strings.Repeat(" ", es.indent*es.depth)
}

func (es *EncState) keyword(s string) string {
	return es.color(ir.ObjectType, KeywordColor, s)
}

func (es *EncState) field(s string) string {
	return es.color(ir.ObjectType, FieldColor, s)
}

func (es *EncState) sep(s string) string {
	return es.color(ir.ObjectType, SepColor, s)
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}
