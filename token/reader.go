package token

import "bytes"

// Reader is a cursor over a document. It owns its position and must not be
// shared between goroutines; create one per parse.
type Reader struct {
	d   []byte
	i   int
	doc *PosDoc
}

func NewReader(d []byte) *Reader {
	return &Reader{d: d, doc: NewPosDoc(d)}
}

func (r *Reader) Offset() int {
	return r.i
}

func (r *Reader) AtEOF() bool {
	return r.i >= len(r.d)
}

// Doc returns the position index of the underlying document.
func (r *Reader) Doc() *PosDoc {
	return r.doc
}

func (r *Reader) Pos(off int) *Pos {
	return r.doc.Pos(off)
}

// Peek returns the byte at the cursor without advancing. ok is false at
// the end of input.
func (r *Reader) Peek() (c byte, ok bool) {
	if r.i >= len(r.d) {
		return 0, false
	}
	return r.d[r.i], true
}

// Next consumes one byte.
func (r *Reader) Next() {
	if r.i < len(r.d) {
		r.i++
	}
}

// SkipTrivia advances past whitespace and `//` line comments. A comment
// ends before the next newline.
func (r *Reader) SkipTrivia() {
	for r.i < len(r.d) {
		c := r.d[r.i]
		switch {
		case IsSpace(c):
			r.i++
		case c == '/' && r.i+1 < len(r.d) && r.d[r.i+1] == '/':
			for r.i < len(r.d) && r.d[r.i] != '\n' {
				r.i++
			}
		default:
			return
		}
	}
}

// Expect skips trivia and then requires lit at the cursor, case
// sensitively.
func (r *Reader) Expect(lit string) error {
	r.SkipTrivia()
	if bytes.HasPrefix(r.d[r.i:], []byte(lit)) {
		r.i += len(lit)
		return nil
	}
	return ExpectedErr(lit, r.foundAt(r.i, lit), r.doc.Pos(r.i))
}

// foundAt describes what sits at off in place of lit: the identifier there
// when lit is a word, otherwise the next len(lit) bytes.
func (r *Reader) foundAt(off int, lit string) string {
	if len(lit) > 0 && IsIdentByte(lit[0]) {
		if id := r.identAt(off); id != "" {
			return id
		}
	}
	end := min(off+max(len(lit), 1), len(r.d))
	return string(r.d[off:end])
}

func (r *Reader) identAt(off int) string {
	j := off
	for j < len(r.d) && IsIdentByte(r.d[j]) {
		j++
	}
	return string(r.d[off:j])
}

// PeekIdentifier returns the identifier at the cursor without consuming it.
func (r *Reader) PeekIdentifier() string {
	return r.identAt(r.i)
}

// Found describes the input at off for error messages, see foundAt.
func (r *Reader) Found(off int) string {
	if off >= len(r.d) {
		return ""
	}
	return r.foundAt(off, "")
}

// ReadIdentifier consumes a maximal run of [A-Za-z0-9_-]. The result is
// empty when the cursor is not on an identifier byte; callers decide
// whether that is an error.
func (r *Reader) ReadIdentifier() string {
	id := r.PeekIdentifier()
	r.i += len(id)
	return id
}

// ReadQuoted consumes a double quoted string and returns its value with
// escapes resolved. A quote preceded by an unescaped backslash does not
// terminate the string.
func (r *Reader) ReadQuoted() (string, error) {
	if err := r.Expect(`"`); err != nil {
		return "", err
	}
	start := r.i - 1
	for j := r.i; j < len(r.d); j++ {
		switch r.d[j] {
		case '\\':
			j++
		case '"':
			body := string(r.d[r.i:j])
			r.i = j + 1
			return Unescape(body), nil
		}
	}
	r.i = len(r.d)
	return "", UnterminatedStringErr(r.doc.Pos(start))
}

// ReadNumber consumes `-? digit+ ("." digit+)?`.
func (r *Reader) ReadNumber() (*Number, error) {
	start := r.i
	end, isFloat, ok := scanNumber(r.d[start:])
	if !ok {
		at := start + end
		return nil, &ParseError{
			Err:      ErrInvalidNumber,
			Expected: "digit",
			Found:    r.foundAt(at, "0"),
			Pos:      *r.doc.Pos(at),
		}
	}
	lit := string(r.d[start : start+end])
	n, err := parseNumber(lit, isFloat)
	if err != nil {
		return nil, &ParseError{Err: ErrInvalidNumber, Found: lit, Pos: *r.doc.Pos(start)}
	}
	r.i = start + end
	return n, nil
}
