package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/appcenter/astapp/encode"
	"github.com/appcenter/astapp/ir"
	"github.com/appcenter/astapp/token"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	d := s.docs.get(string(params.TextDocument.URI))
	if d == nil || d.doc == nil {
		return nil, nil
	}
	v := findValueAt(d, d.offset(params.Position))
	if v == nil {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: buildHoverText(valuePaths(d.doc)[v], v),
		},
	}, nil
}

// findValueAt returns the value starting closest before off on the same
// line, falling back to the first one after it.
func findValueAt(d *document, off int) *ir.Value {
	line, _ := d.pd.LineCol(off)
	var best *ir.Value
	bestDist := -1
	for v, pos := range d.positions {
		if pos.Line() != line {
			continue
		}
		dist := off - pos.I
		if dist < 0 {
			dist = len(d.content) - dist
		}
		if bestDist < 0 || dist < bestDist {
			best = v
			bestDist = dist
		}
	}
	return best
}

// valuePaths names every value of doc, e.g. APP.title or
// QUESTION "q1".options[0].
func valuePaths(doc *ir.Document) map[*ir.Value]string {
	res := map[*ir.Value]string{}
	var visit func(string, *ir.Value)
	visit = func(path string, v *ir.Value) {
		res[v] = path
		switch v.Type {
		case ir.ArrayType:
			for i, e := range v.Values {
				visit(path+"["+strconv.Itoa(i)+"]", e)
			}
		case ir.ObjectType:
			for k, e := range v.Fields.All() {
				visit(path+"."+k, e)
			}
		}
	}
	block := func(prefix string, m *ir.PropertyMap) {
		for k, v := range m.All() {
			visit(prefix+"."+k, v)
		}
	}
	block(token.KeywordApp, doc.App)
	block(token.KeywordStyle, doc.Style)
	for _, q := range doc.Questions {
		block(token.KeywordQuestion+" "+token.Quote(q.ID), q.Props)
	}
	return res
}

func buildHoverText(path string, v *ir.Value) string {
	var parts []string
	if path != "" {
		parts = append(parts, fmt.Sprintf("**Path:** `%s`", path))
	}
	parts = append(parts, fmt.Sprintf("**Type:** %s", typeInfo(v)))
	parts = append(parts, "**Value:**\n```\n"+encode.ValueString(v)+"\n```")
	return strings.Join(parts, "\n\n")
}

func typeInfo(v *ir.Value) string {
	switch v.Type {
	case ir.NumberType:
		if v.IsInt() {
			return "integer"
		}
		return "float"
	case ir.BareWordType:
		return "bare word"
	case ir.ArrayType:
		return fmt.Sprintf("array of %d", len(v.Values))
	case ir.ObjectType:
		return fmt.Sprintf("object with %d fields", v.Fields.Len())
	default:
		return strings.ToLower(v.Type.String())
	}
}
