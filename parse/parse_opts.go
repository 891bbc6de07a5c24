package parse

import (
	"github.com/appcenter/astapp/ir"
	"github.com/appcenter/astapp/token"
)

type parseOpts struct {
	strictBools bool
	positions   map[*ir.Value]*token.Pos
	filename    string
}

type ParseOption func(*parseOpts)

// StrictBooleans makes an identifier other than true or false in boolean
// position a bare word. By default any such identifier reads as false.
func StrictBooleans() ParseOption {
	return func(o *parseOpts) { o.strictBools = true }
}

// ParsePositions records the start position of every parsed value in m.
func ParsePositions(m map[*ir.Value]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// ParseFilename prefixes errors with name.
func ParseFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}
