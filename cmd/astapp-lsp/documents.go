package main

import (
	"context"
	"sync"

	"github.com/appcenter/astapp/debug"
	"github.com/appcenter/astapp/ir"
	"github.com/appcenter/astapp/parse"
	"github.com/appcenter/astapp/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is one open text. doc is nil when content does not parse, in
// which case err holds the parse error and last the most recent document
// that did.
type document struct {
	uri       string
	content   string
	version   int32
	pd        *token.PosDoc
	doc       *ir.Document
	last      *ir.Document
	err       error
	positions map[*ir.Value]*token.Pos
}

func newDocument(uri, content string, version int32) *document {
	d := &document{
		uri:     uri,
		content: content,
		version: version,
		pd:      token.NewPosDoc([]byte(content)),
	}
	positions := make(map[*ir.Value]*token.Pos)
	doc, err := parse.ParseString(content, parse.ParsePositions(positions))
	if err != nil {
		d.err = err
		return d
	}
	d.doc = doc
	d.last = doc
	d.positions = positions
	return d
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	d := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if d.doc == nil {
		if prev := ds.docs[uri]; prev != nil {
			d.last = prev.last
		}
	}
	ds.docs[uri] = d
	return d
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

// applyChanges applies content changes in order. Changes carry ranges since
// the server announces incremental sync.
func applyChanges(d *document, changes []protocol.TextDocumentContentChangeEvent) string {
	content := d.content
	for _, change := range changes {
		cur := d
		if content != d.content {
			cur = &document{content: content, pd: token.NewPosDoc([]byte(content))}
		}
		start := cur.offset(change.Range.Start)
		end := cur.offset(change.Range.End)
		if end < start {
			start, end = end, start
		}
		content = content[:start] + change.Text + content[end:]
	}
	return content
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	if debug.LSP() {
		debug.Logf("didOpen %s version %d\n", uri, params.TextDocument.Version)
	}
	d := s.docs.put(uri, params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, d)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	d := s.docs.get(uri)
	if d == nil {
		return nil
	}
	if debug.LSP() {
		debug.Logf("didChange %s version %d, %d changes\n", uri, params.TextDocument.Version, len(params.ContentChanges))
	}
	content := applyChanges(d, params.ContentChanges)
	d = s.docs.put(uri, content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, d)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
