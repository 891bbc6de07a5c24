package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/appcenter/astapp/debug"
	"github.com/appcenter/astapp/token"
	"go.lsp.dev/protocol"
)

func (s *Server) publishDiagnostics(ctx context.Context, d *document) {
	if s.conn == nil {
		return
	}
	err := s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(d.uri),
		Diagnostics: diagnostics(d),
	})
	if err != nil && debug.LSP() {
		debug.Logf("publish diagnostics %s: %v\n", d.uri, err)
	}
}

// diagnostics reports the parse error of d, if any. The range covers the
// offending token, or a single character at the end of input.
func diagnostics(d *document) []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	if d.err == nil {
		return res
	}
	diag := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Source:   lsName,
		Message:  d.err.Error(),
	}
	var pe *token.ParseError
	if errors.As(d.err, &pe) {
		start := pe.Offset()
		end := start + max(1, len(pe.Found))
		diag.Range = d.rangeOf(start, end)
		diag.Code = pe.Err.Error()
		diag.Message = diagnosticMessage(pe)
	}
	return append(res, diag)
}

func diagnosticMessage(pe *token.ParseError) string {
	found := "end of input"
	if pe.Found != "" {
		found = fmt.Sprintf("%q", pe.Found)
	}
	switch {
	case errors.Is(pe, token.ErrUnterminatedString), errors.Is(pe, token.ErrUnterminatedBlock):
		return fmt.Sprintf("%s: missing %q", pe.Err, pe.Expected)
	case pe.Expected != "":
		return fmt.Sprintf("expected %q, found %s", pe.Expected, found)
	default:
		return fmt.Sprintf("%s: %s", pe.Err, found)
	}
}
