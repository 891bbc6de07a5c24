package token

const (
	KeywordApp      = "APP"
	KeywordStyle    = "STYLE"
	KeywordQuestion = "QUESTION"
	KeywordType     = "TYPE"

	KeywordTrue  = "true"
	KeywordFalse = "false"
)

// BlockKeywords lists the top-level block keywords in emission order.
func BlockKeywords() []string {
	return []string{KeywordApp, KeywordStyle, KeywordQuestion}
}

// IsIdentByte reports whether c may appear in an identifier.
func IsIdentByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '-':
		return true
	default:
		return false
	}
}

// IsSpace matches the C locale isspace class.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// StartsNumber reports whether c begins a numeric literal.
func StartsNumber(c byte) bool {
	return c == '-' || isDigit(c)
}
