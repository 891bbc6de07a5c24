package main

import (
	"unicode/utf16"
	"unicode/utf8"

	"go.lsp.dev/protocol"
)

// LSP positions count UTF-16 code units within a line; the parser works on
// byte offsets.

func (d *document) position(off int) protocol.Position {
	off = max(0, min(off, len(d.content)))
	line, col := d.pd.LineCol(off)
	return protocol.Position{
		Line:      uint32(line),
		Character: uint32(utf16Len(d.content[off-col : off])),
	}
}

func (d *document) offset(pos protocol.Position) int {
	line := int(pos.Line)
	start := d.pd.Offset(line, 0)
	end := d.pd.Offset(line, len(d.content))
	units := int(pos.Character)
	i := start
	for i < end && units > 0 {
		r, size := utf8.DecodeRuneInString(d.content[i:end])
		units -= utf16.RuneLen(r)
		i += size
	}
	return i
}

func (d *document) rangeOf(start, end int) protocol.Range {
	return protocol.Range{
		Start: d.position(start),
		End:   d.position(end),
	}
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
