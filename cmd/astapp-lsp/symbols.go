package main

import (
	"context"

	"github.com/appcenter/astapp/token"
	"go.lsp.dev/protocol"
)

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	d := s.docs.get(string(params.TextDocument.URI))
	if d == nil {
		return nil, nil
	}
	syms := documentSymbols(d)
	res := make([]interface{}, len(syms))
	for i := range syms {
		res[i] = syms[i]
	}
	return res, nil
}

// documentSymbols outlines the top level blocks with their properties. It
// works from the lexer so the outline survives syntax errors.
func documentSymbols(d *document) []protocol.DocumentSymbol {
	toks := lex(d.content)
	var res []protocol.DocumentSymbol
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.depth != 0 || t.kind != keywordToken || t.text(d.content) == token.KeywordType {
			continue
		}
		sym := protocol.DocumentSymbol{
			Name: t.text(d.content),
			Kind: protocol.SymbolKindNamespace,
		}
		if sym.Name == token.KeywordQuestion {
			sym.Kind = protocol.SymbolKindObject
			if i+1 < len(toks) && toks[i+1].kind == stringToken {
				sym.Detail = toks[i+1].text(d.content)
			}
			if i+3 < len(toks) && toks[i+3].kind == stringToken {
				sym.Detail += " " + token.KeywordType + " " + toks[i+3].text(d.content)
			}
		}
		end := t.end
		j := i + 1
		for ; j < len(toks); j++ {
			u := toks[j]
			if u.depth == 0 && u.kind == keywordToken && u.text(d.content) != token.KeywordType {
				break
			}
			end = u.end
			if u.depth == 1 && u.kind == propertyToken {
				sym.Children = append(sym.Children, protocol.DocumentSymbol{
					Name:           u.text(d.content),
					Kind:           protocol.SymbolKindProperty,
					Range:          d.rangeOf(u.off, propertyEnd(toks, j, d.content)),
					SelectionRange: d.rangeOf(u.off, u.end),
				})
			}
		}
		sym.Range = d.rangeOf(t.off, end)
		sym.SelectionRange = d.rangeOf(t.off, t.end)
		res = append(res, sym)
		i = j - 1
	}
	return res
}

// propertyEnd is the end offset of the property whose key is toks[i]: its
// terminating ";" or the last token before the next key or the block end.
func propertyEnd(toks []lexToken, i int, content string) int {
	end := toks[i].end
	for j := i + 1; j < len(toks); j++ {
		u := toks[j]
		if u.depth < 1 || (u.depth == 1 && u.kind == propertyToken) {
			break
		}
		end = u.end
		if u.depth == 1 && u.kind == operatorToken && u.text(content) == ";" {
			break
		}
	}
	return end
}
