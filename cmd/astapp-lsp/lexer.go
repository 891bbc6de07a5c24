package main

import (
	"github.com/appcenter/astapp/token"
)

type tokenKind int

const (
	commentToken tokenKind = iota
	keywordToken
	stringToken
	numberToken
	operatorToken
	propertyToken
	boolToken
	wordToken
)

// lexToken is a token of possibly invalid text. depth is the bracket depth
// before the token.
type lexToken struct {
	kind  tokenKind
	off   int
	end   int
	depth int
	opens bool
}

func (t lexToken) text(content string) string {
	return content[t.off:t.end]
}

// lex splits content into tokens for highlighting and completion. Unlike the
// parser it never fails: unterminated strings run to the end of input and
// unknown bytes are skipped.
func lex(content string) []lexToken {
	var res []lexToken
	depth := 0
	i, n := 0, len(content)
	for i < n {
		c := content[i]
		start := i
		switch {
		case token.IsSpace(c):
			i++
			continue
		case c == '/' && i+1 < n && content[i+1] == '/':
			for i < n && content[i] != '\n' {
				i++
			}
			res = append(res, lexToken{kind: commentToken, off: start, end: i, depth: depth})
		case c == '"':
			i++
			for i < n && content[i] != '"' {
				if content[i] == '\\' {
					i++
				}
				i++
			}
			i = min(i+1, n)
			res = append(res, lexToken{kind: stringToken, off: start, end: i, depth: depth})
		case c == '{' || c == '[':
			i++
			res = append(res, lexToken{kind: operatorToken, off: start, end: i, depth: depth, opens: true})
			depth++
		case c == '}' || c == ']':
			i++
			depth = max(0, depth-1)
			res = append(res, lexToken{kind: operatorToken, off: start, end: i, depth: depth})
		case c == ':' || c == ';' || c == ',':
			i++
			res = append(res, lexToken{kind: operatorToken, off: start, end: i, depth: depth})
		case token.IsIdentByte(c) || c == '.':
			for i < n && (token.IsIdentByte(content[i]) || content[i] == '.') {
				i++
			}
			kind := wordKind(content[start:i], depth, nextByte(content, i) == ':')
			res = append(res, lexToken{kind: kind, off: start, end: i, depth: depth})
		default:
			i++
		}
	}
	return res
}

func wordKind(w string, depth int, beforeColon bool) tokenKind {
	switch {
	case depth == 0:
		if w == token.KeywordType {
			return keywordToken
		}
		for _, kw := range token.BlockKeywords() {
			if w == kw {
				return keywordToken
			}
		}
		return wordToken
	case beforeColon:
		return propertyToken
	case token.StartsNumber(w[0]):
		return numberToken
	case w == token.KeywordTrue || w == token.KeywordFalse:
		return boolToken
	default:
		return wordToken
	}
}

// nextByte is the first non space byte at or after i, or 0.
func nextByte(content string, i int) byte {
	for ; i < len(content); i++ {
		if !token.IsSpace(content[i]) {
			return content[i]
		}
	}
	return 0
}

// depthAt is the bracket depth at offset off.
func depthAt(toks []lexToken, off int) int {
	depth := 0
	for _, t := range toks {
		if t.end > off {
			break
		}
		depth = t.depth
		if t.opens {
			depth++
		}
	}
	return depth
}
