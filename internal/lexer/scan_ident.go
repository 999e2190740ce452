package lexer

import (
	"squill/internal/diag"
	"squill/internal/token"
)

// scanIdentOrKeyword scans a bare identifier and classifies it as a keyword
// when it matches one case-insensitively.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if kind, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: kind, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanQuotedIdent scans a "double-quoted" identifier. A doubled quote inside
// the body escapes a literal quote. Quoted identifiers never fold to keywords.
func (lx *Lexer) scanQuotedIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening "

	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedQuotedIdent, sp, "unterminated quoted identifier")
			return token.Token{
				Kind: token.QuotedIdent,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			}
		}
		if lx.cursor.Peek() == '"' {
			lx.cursor.Bump()
			// "" is an escaped quote, keep going
			if !lx.cursor.Eat('"') {
				break
			}
			continue
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.QuotedIdent,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
