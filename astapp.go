package astapp

import (
	"github.com/appcenter/astapp/encode"
	"github.com/appcenter/astapp/ir"
	"github.com/appcenter/astapp/parse"
)

// Parse parses text. Errors are *token.ParseError values; use errors.Is
// with the token sentinel errors to classify them.
func Parse(text string, opts ...parse.ParseOption) (*ir.Document, error) {
	return parse.ParseString(text, opts...)
}

// Serialize returns the canonical text of doc. It cannot fail.
func Serialize(doc *ir.Document, opts ...encode.EncodeOption) string {
	return encode.Serialize(doc, opts...)
}
