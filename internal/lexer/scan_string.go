package lexer

import (
	"squill/internal/diag"
	"squill/internal/token"
)

// scanString scans a '...' string literal. A doubled quote escapes a literal
// quote; strings may span newlines. An unterminated string runs to EOF and is
// reported.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '

	for {
		if lx.cursor.EOF() {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
			return token.Token{
				Kind: token.String,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			}
		}
		if lx.cursor.Peek() == '\'' {
			lx.cursor.Bump()
			if !lx.cursor.Eat('\'') {
				break
			}
			continue
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.String,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
