package token

import "strings"

// Quote wraps v in double quotes, backslash escaping only '"' and '\'.
// Every other byte, newlines included, is emitted as is.
func Quote(v string) string {
	b := &strings.Builder{}
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}

// Unescape resolves C style backslash escapes in the body of a quoted
// string: \n \t \r \v \f \a \b, octal \NNN, hex \xHH. Any other escaped
// byte stands for itself, so \" is '"' and \\ is '\'. A trailing lone
// backslash is kept.
func Unescape(body string) string {
	if strings.IndexByte(body, '\\') < 0 {
		return body
	}
	b := make([]byte, 0, len(body))
	n := len(body)
	for i := 0; i < n; i++ {
		c := body[i]
		if c != '\\' || i+1 >= n {
			b = append(b, c)
			continue
		}
		i++
		c = body[i]
		switch c {
		case 'n':
			b = append(b, '\n')
		case 't':
			b = append(b, '\t')
		case 'r':
			b = append(b, '\r')
		case 'a':
			b = append(b, '\a')
		case 'v':
			b = append(b, '\v')
		case 'b':
			b = append(b, '\b')
		case 'f':
			b = append(b, '\f')
		case 'x':
			if i+1 < n && isHex(body[i+1]) {
				v := hexVal(body[i+1])
				i++
				if i+1 < n && isHex(body[i+1]) {
					v = v<<4 | hexVal(body[i+1])
					i++
				}
				b = append(b, v)
				continue
			}
			b = append(b, c)
		default:
			j := i
			v := 0
			for j < n && j-i < 3 && body[j] >= '0' && body[j] <= '7' {
				v = v<<3 | int(body[j]-'0')
				j++
			}
			if j == i {
				b = append(b, c)
				continue
			}
			b = append(b, byte(v))
			i = j - 1
		}
	}
	return string(b)
}

func isHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexVal(c byte) byte {
	switch {
	case isDigit(c):
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
