package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedToken      = errors.New("unexpected token")
	ErrUnterminatedString   = errors.New("unterminated string")
	ErrUnterminatedBlock    = errors.New("unterminated block")
	ErrEmptyIdentifier      = errors.New("empty identifier")
	ErrUnrecognizedTopLevel = errors.New("unrecognized top-level token")
	ErrInvalidNumber        = errors.New("invalid number")
)

// ParseError is the single error type produced while reading a document.
// Err is one of the sentinel errors above. Expected and Found are filled in
// when they are known; an empty Found means the end of input was reached.
type ParseError struct {
	Err      error
	Expected string
	Found    string
	Pos      Pos
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Offset is the byte offset at which the error was detected.
func (e *ParseError) Offset() int {
	return e.Pos.I
}

func (e *ParseError) Error() string {
	found := strconvFound(e.Found)
	switch {
	case e.Expected != "":
		return fmt.Sprintf("%s: expected %q but got %s at %s", e.Err, e.Expected, found, e.Pos.String())
	case e.Found != "":
		return fmt.Sprintf("%s %s at %s", e.Err, found, e.Pos.String())
	default:
		return fmt.Sprintf("%s at %s", e.Err, e.Pos.String())
	}
}

func strconvFound(f string) string {
	if f == "" {
		return "end of input"
	}
	return fmt.Sprintf("%q", f)
}

func NewParseErr(e error, p *Pos) *ParseError {
	return &ParseError{Err: e, Pos: *p}
}

func ExpectedErr(expected, found string, p *Pos) error {
	return &ParseError{Err: ErrUnexpectedToken, Expected: expected, Found: found, Pos: *p}
}

func UnterminatedStringErr(start *Pos) error {
	return &ParseError{Err: ErrUnterminatedString, Expected: `"`, Pos: *start}
}

func UnterminatedBlockErr(closer string, start *Pos) error {
	return &ParseError{Err: ErrUnterminatedBlock, Expected: closer, Pos: *start}
}

func EmptyIdentifierErr(found string, p *Pos) error {
	return &ParseError{Err: ErrEmptyIdentifier, Found: found, Pos: *p}
}

func UnrecognizedErr(found string, p *Pos) error {
	return &ParseError{Err: ErrUnrecognizedTopLevel, Found: found, Pos: *p}
}
