// Package token provides the lexical layer of the astapp block-property format.
//
// [Reader] is a cursor over raw text. It skips whitespace and `//` line
// comments and recognizes the primitive units of the grammar: identifiers,
// quoted strings, numbers and punctuation.
//
// Errors are reported as [*ParseError] values carrying a [Pos]; use
// [errors.Is] with the Err* sentinels to classify them.
package token
