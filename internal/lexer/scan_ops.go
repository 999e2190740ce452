package lexer

import (
	"squill/internal/diag"
	"squill/internal/token"
)

// scanOperatorOrPunct scans operators, punctuation and bind placeholders.
// Two-byte operators win over their one-byte prefixes.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	ch := lx.cursor.Peek()

	// placeholders: ?, $1, :name
	switch ch {
	case '?':
		lx.cursor.Bump()
		return lx.make(token.Placeholder, start)
	case '$':
		if _, b1, ok := lx.cursor.Peek2(); ok && isDec(b1) {
			lx.cursor.Bump()
			for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			return lx.make(token.Placeholder, start)
		}
	case ':':
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == ':' && isIdentStartByte(b1) {
			lx.cursor.Bump()
			for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			return lx.make(token.Placeholder, start)
		}
	}

	if kind, ok := lx.try2(ch); ok {
		return lx.make(kind, start)
	}

	var kind token.Kind
	switch ch {
	case ',':
		kind = token.Comma
	case '.':
		kind = token.Dot
	case '*':
		kind = token.Star
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case ';':
		kind = token.Semicolon
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '/':
		kind = token.Slash
	case '%':
		kind = token.Percent
	case '=':
		kind = token.Eq
	case '<':
		kind = token.Lt
	case '>':
		kind = token.Gt
	case ':':
		kind = token.Colon
	default:
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "unknown character "+quoteByte(ch))
		return token.Token{
			Kind: token.Invalid,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	lx.cursor.Bump()
	return lx.make(kind, start)
}

// try2 matches the two-byte operators. The cursor is advanced only on a match.
func (lx *Lexer) try2(ch byte) (token.Kind, bool) {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != ch {
		return token.Invalid, false
	}
	var kind token.Kind
	switch {
	case b0 == '<' && b1 == '>':
		kind = token.NotEq
	case b0 == '!' && b1 == '=':
		kind = token.NotEq
	case b0 == '<' && b1 == '=':
		kind = token.LtEq
	case b0 == '>' && b1 == '=':
		kind = token.GtEq
	case b0 == '|' && b1 == '|':
		kind = token.Concat
	case b0 == ':' && b1 == ':':
		kind = token.DoubleColon
	default:
		return token.Invalid, false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return kind, true
}

func (lx *Lexer) make(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

func quoteByte(b byte) string {
	if b >= 0x20 && b < 0x7f {
		return "'" + string(b) + "'"
	}
	const hex = "0123456789abcdef"
	return "0x" + string(hex[b>>4]) + string(hex[b&0xf])
}
