package parse

import (
	"fmt"
	"os"

	"github.com/appcenter/astapp/debug"
	"github.com/appcenter/astapp/ir"
	"github.com/appcenter/astapp/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Document, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{r: token.NewReader(d), opts: pOpts}
	doc, err := p.document()
	if err != nil {
		if pOpts.filename != "" {
			return nil, fmt.Errorf("%s: %w", pOpts.filename, err)
		}
		return nil, err
	}
	return doc, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Document, error) {
	return Parse([]byte(s), opts...)
}

func ParseFile(path string, opts ...ParseOption) (*ir.Document, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(d, append([]ParseOption{ParseFilename(path)}, opts...)...)
}

type parser struct {
	r    *token.Reader
	opts *parseOpts
}

func (p *parser) document() (*ir.Document, error) {
	doc := ir.NewDocument()
	for {
		p.r.SkipTrivia()
		if p.r.AtEOF() {
			return doc, nil
		}
		off := p.r.Offset()
		kw := p.r.ReadIdentifier()
		if debug.Parse() {
			debug.Logf("parse: block %q at %d\n", kw, off)
		}
		switch kw {
		case token.KeywordApp:
			m, err := p.propBlock()
			if err != nil {
				return nil, err
			}
			doc.App = m
		case token.KeywordStyle:
			m, err := p.propBlock()
			if err != nil {
				return nil, err
			}
			doc.Style = m
		case token.KeywordQuestion:
			q, err := p.question()
			if err != nil {
				return nil, err
			}
			doc.Questions = append(doc.Questions, q)
		case "":
			return nil, token.EmptyIdentifierErr(p.r.Found(off), p.r.Pos(off))
		default:
			return nil, token.UnrecognizedErr(kw, p.r.Pos(off))
		}
	}
}

func (p *parser) question() (*ir.Question, error) {
	id, err := p.r.ReadQuoted()
	if err != nil {
		return nil, err
	}
	if err := p.r.Expect(token.KeywordType); err != nil {
		return nil, err
	}
	typ, err := p.r.ReadQuoted()
	if err != nil {
		return nil, err
	}
	props, err := p.propBlock()
	if err != nil {
		return nil, err
	}
	props.Delete("id")
	props.Delete("type")
	return &ir.Question{ID: id, Type: typ, Props: props}, nil
}

// propBlock parses the body of a top-level block, where only ';' separates
// properties.
func (p *parser) propBlock() (*ir.PropertyMap, error) {
	return p.propMap(";")
}

// propMap parses `{ (ident ":" value sep?)* }`, where sep is any byte of
// seps.
func (p *parser) propMap(seps string) (*ir.PropertyMap, error) {
	if err := p.r.Expect("{"); err != nil {
		return nil, err
	}
	start := p.r.Offset() - 1
	m := ir.NewPropertyMap()
	for {
		p.r.SkipTrivia()
		c, ok := p.r.Peek()
		if !ok {
			return nil, token.UnterminatedBlockErr("}", p.r.Pos(start))
		}
		if c == '}' {
			p.r.Next()
			return m, nil
		}
		off := p.r.Offset()
		key := p.r.ReadIdentifier()
		if key == "" {
			return nil, token.EmptyIdentifierErr(p.r.Found(off), p.r.Pos(off))
		}
		if err := p.unterminated(start); err != nil {
			return nil, err
		}
		if err := p.r.Expect(":"); err != nil {
			return nil, err
		}
		if err := p.unterminated(start); err != nil {
			return nil, err
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		m.Set(key, v)
		p.r.SkipTrivia()
		if c, ok := p.r.Peek(); ok && containsByte(seps, c) {
			p.r.Next()
		}
	}
}

// unterminated reports an unterminated block opened at start when only
// trivia is left.
func (p *parser) unterminated(start int) error {
	p.r.SkipTrivia()
	if p.r.AtEOF() {
		return token.UnterminatedBlockErr("}", p.r.Pos(start))
	}
	return nil
}

func containsByte(s string, c byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return true
		}
	}
	return false
}

func (p *parser) value() (*ir.Value, error) {
	p.r.SkipTrivia()
	off := p.r.Offset()
	c, ok := p.r.Peek()
	if !ok {
		return nil, token.ExpectedErr("value", "", p.r.Pos(off))
	}
	var (
		v   *ir.Value
		err error
	)
	switch {
	case c == '"':
		var s string
		s, err = p.r.ReadQuoted()
		v = ir.FromString(s)
	case c == '[':
		v, err = p.array()
	case c == '{':
		var m *ir.PropertyMap
		m, err = p.propMap(",;")
		v = ir.FromMap(m)
	case token.StartsNumber(c):
		v, err = p.number()
	case c == 't' || c == 'f':
		v = p.boolean()
	default:
		word := p.r.ReadIdentifier()
		if word == "" {
			return nil, token.EmptyIdentifierErr(p.r.Found(off), p.r.Pos(off))
		}
		v = ir.BareWord(word)
	}
	if err != nil {
		return nil, err
	}
	if p.opts.positions != nil {
		p.opts.positions[v] = p.r.Pos(off)
	}
	return v, nil
}

func (p *parser) array() (*ir.Value, error) {
	start := p.r.Offset()
	p.r.Next()
	vals := []*ir.Value{}
	for {
		p.r.SkipTrivia()
		c, ok := p.r.Peek()
		if !ok {
			return nil, token.UnterminatedBlockErr("]", p.r.Pos(start))
		}
		if c == ']' {
			p.r.Next()
			return ir.FromSlice(vals), nil
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
		p.r.SkipTrivia()
		if c, ok := p.r.Peek(); ok && c == ',' {
			p.r.Next()
		}
	}
}

func (p *parser) number() (*ir.Value, error) {
	n, err := p.r.ReadNumber()
	if err != nil {
		return nil, err
	}
	if n.IsFloat {
		return ir.FromFloat(n.Float).WithNumber(n.Lit), nil
	}
	return ir.FromInt(n.Int).WithNumber(n.Lit), nil
}

// boolean reads an identifier in boolean position. Only "true" is true;
// anything else is false unless StrictBooleans is set, in which case words
// other than "false" are bare words.
func (p *parser) boolean() *ir.Value {
	word := p.r.ReadIdentifier()
	switch {
	case word == token.KeywordTrue:
		return ir.FromBool(true)
	case p.opts.strictBools && word != token.KeywordFalse:
		return ir.BareWord(word)
	default:
		return ir.FromBool(false)
	}
}
