package main

import (
	"context"

	"github.com/appcenter/astapp/encode"
	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	d := s.docs.get(string(params.TextDocument.URI))
	if d == nil {
		return nil, nil
	}
	return formatEdits(d), nil
}

// formatEdits replaces the whole text with its canonical form. The client's
// tab size is ignored. A document that does not parse gets no edits.
func formatEdits(d *document) []protocol.TextEdit {
	if d.doc == nil {
		return nil
	}
	formatted := encode.Serialize(d.doc)
	if formatted == d.content {
		return []protocol.TextEdit{}
	}
	return []protocol.TextEdit{
		{
			Range:   d.rangeOf(0, len(d.content)),
			NewText: formatted,
		},
	}
}
