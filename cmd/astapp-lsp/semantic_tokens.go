package main

import (
	"context"
	"strings"

	"github.com/appcenter/astapp/debug"
	"go.lsp.dev/protocol"
)

// tokenLegend is announced in Initialize; token type indices refer to it.
var tokenLegend = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenComment,
	protocol.SemanticTokenKeyword,
	protocol.SemanticTokenString,
	protocol.SemanticTokenNumber,
	protocol.SemanticTokenOperator,
	protocol.SemanticTokenProperty,
	protocol.SemanticTokenEnumMember,
}

func semanticType(k tokenKind) protocol.SemanticTokenTypes {
	switch k {
	case commentToken:
		return protocol.SemanticTokenComment
	case keywordToken, boolToken:
		return protocol.SemanticTokenKeyword
	case stringToken:
		return protocol.SemanticTokenString
	case numberToken:
		return protocol.SemanticTokenNumber
	case operatorToken:
		return protocol.SemanticTokenOperator
	case propertyToken:
		return protocol.SemanticTokenProperty
	default:
		return protocol.SemanticTokenEnumMember
	}
}

func legendIndex(tt protocol.SemanticTokenTypes) uint32 {
	for i, l := range tokenLegend {
		if l == tt {
			return uint32(i)
		}
	}
	return 2
}

// semanticTokens encodes the tokens of d whose first line lies within
// [fromLine, toLine]. Tokens spanning lines are clipped to their first line.
func semanticTokens(d *document, fromLine, toLine uint32) []uint32 {
	data := []uint32{}
	var prevLine, prevChar uint32
	for _, t := range lex(d.content) {
		start := d.position(t.off)
		if start.Line < fromLine {
			continue
		}
		if start.Line > toLine {
			break
		}
		text := t.text(d.content)
		if nl := strings.IndexByte(text, '\n'); nl >= 0 {
			text = text[:nl]
		}
		length := uint32(utf16Len(text))
		if length == 0 {
			continue
		}
		deltaLine := start.Line - prevLine
		deltaChar := start.Character
		if deltaLine == 0 {
			deltaChar = start.Character - prevChar
		}
		data = append(data, deltaLine, deltaChar, length, legendIndex(semanticType(t.kind)), 0)
		prevLine = start.Line
		prevChar = start.Character
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	d := s.docs.get(string(params.TextDocument.URI))
	if d == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	if debug.LSP() {
		debug.Logf("semanticTokens/full %s\n", d.uri)
	}
	return &protocol.SemanticTokens{
		Data: semanticTokens(d, 0, ^uint32(0)),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	d := s.docs.get(string(params.TextDocument.URI))
	if d == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{
		Data: semanticTokens(d, params.Range.Start.Line, params.Range.End.Line),
	}, nil
}
