package main

import (
	"context"

	"github.com/appcenter/astapp/debug"
	"github.com/appcenter/astapp/ir"
	"github.com/appcenter/astapp/token"
	"go.lsp.dev/protocol"
)

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	d := s.docs.get(string(params.TextDocument.URI))
	if d == nil {
		return nil, nil
	}
	off := d.offset(params.Position)
	if debug.LSP() {
		debug.Logf("completion %s at offset %d\n", d.uri, off)
	}
	return &protocol.CompletionList{
		Items: completions(d, off),
	}, nil
}

// completions proposes items for the cursor at off. The context comes from the
// lexer so that half typed text still completes: block keywords at the top
// level, property names inside a block and literals after a colon.
func completions(d *document, off int) []protocol.CompletionItem {
	toks := lex(d.content)
	var before []lexToken
	for _, t := range toks {
		if t.end > off || (t.end == off && isWordKind(t.kind)) {
			break
		}
		before = append(before, t)
	}
	depth := depthAt(before, off)
	if depth == 0 {
		return keywordItems(before, d.content)
	}
	if n := len(before); n > 0 && before[n-1].kind == operatorToken && before[n-1].text(d.content) == ":" {
		return valueItems()
	}
	if n := len(before); n > 0 && before[n-1].kind == operatorToken && before[n-1].text(d.content) == "[" {
		return valueItems()
	}
	if depth > 1 {
		return nil
	}
	return propertyItems(d.last, enclosingBlock(before, d.content))
}

func isWordKind(k tokenKind) bool {
	switch k {
	case keywordToken, propertyToken, boolToken, wordToken, numberToken:
		return true
	}
	return false
}

func keywordItems(before []lexToken, content string) []protocol.CompletionItem {
	if n := len(before); n >= 2 && before[n-1].kind == stringToken && before[n-2].text(content) == token.KeywordQuestion {
		return []protocol.CompletionItem{{
			Label:            token.KeywordType,
			Kind:             protocol.CompletionItemKindKeyword,
			InsertText:       token.KeywordType + ` "${1:type}" {` + "\n\t$0\n}",
			InsertTextFormat: protocol.InsertTextFormatSnippet,
		}}
	}
	return []protocol.CompletionItem{
		{
			Label:            token.KeywordApp,
			Kind:             protocol.CompletionItemKindKeyword,
			Detail:           "application block",
			InsertText:       token.KeywordApp + " {\n\t$0\n}",
			InsertTextFormat: protocol.InsertTextFormatSnippet,
		},
		{
			Label:            token.KeywordStyle,
			Kind:             protocol.CompletionItemKindKeyword,
			Detail:           "style block",
			InsertText:       token.KeywordStyle + " {\n\t$0\n}",
			InsertTextFormat: protocol.InsertTextFormatSnippet,
		},
		{
			Label:            token.KeywordQuestion,
			Kind:             protocol.CompletionItemKindKeyword,
			Detail:           "question block",
			InsertText:       token.KeywordQuestion + ` "${1:id}" ` + token.KeywordType + ` "${2:type}" {` + "\n\t$0\n}",
			InsertTextFormat: protocol.InsertTextFormatSnippet,
		},
	}
}

func valueItems() []protocol.CompletionItem {
	return []protocol.CompletionItem{
		{Label: token.KeywordTrue, Kind: protocol.CompletionItemKindValue},
		{Label: token.KeywordFalse, Kind: protocol.CompletionItemKindValue},
		{
			Label:            `""`,
			Kind:             protocol.CompletionItemKindValue,
			InsertText:       `"$0"`,
			InsertTextFormat: protocol.InsertTextFormatSnippet,
		},
		{
			Label:            "[]",
			Kind:             protocol.CompletionItemKindValue,
			InsertText:       "[$0]",
			InsertTextFormat: protocol.InsertTextFormatSnippet,
		},
		{
			Label:            "{}",
			Kind:             protocol.CompletionItemKindValue,
			InsertText:       "{$0}",
			InsertTextFormat: protocol.InsertTextFormatSnippet,
		},
	}
}

// enclosingBlock is the keyword of the top level block containing the end
// of before, or "".
func enclosingBlock(before []lexToken, content string) string {
	for i := len(before) - 1; i >= 0; i-- {
		t := before[i]
		if t.depth == 0 && t.kind == keywordToken && t.text(content) != token.KeywordType {
			return t.text(content)
		}
	}
	return ""
}

// propertyItems lists the property names used by blocks of the given kind in
// doc, in first use order.
func propertyItems(doc *ir.Document, block string) []protocol.CompletionItem {
	if doc == nil {
		return nil
	}
	var maps []*ir.PropertyMap
	switch block {
	case token.KeywordApp:
		maps = append(maps, doc.App)
	case token.KeywordStyle:
		maps = append(maps, doc.Style)
	case token.KeywordQuestion:
		for _, q := range doc.Questions {
			maps = append(maps, q.Props)
		}
	}
	seen := map[string]bool{}
	items := []protocol.CompletionItem{}
	for _, m := range maps {
		for k, v := range m.All() {
			if seen[k] {
				continue
			}
			seen[k] = true
			items = append(items, protocol.CompletionItem{
				Label:      k,
				Kind:       protocol.CompletionItemKindProperty,
				Detail:     v.Type.String(),
				InsertText: k + ": ",
			})
		}
	}
	return items
}
