package token

import (
	"squill/internal/source"
)

// Token represents a single SQL token with its location and leading trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, string, or boolean literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Number, String, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a SQL keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwSelect && t.Kind <= KwDesc
}

// IsPunctOrOp reports whether the token is punctuation or an operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= Comma && t.Kind <= Colon
}

// IsIdent reports whether the token is a bare or quoted identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident || t.Kind == QuotedIdent }

// IsClauseBoundary reports whether the token ends the select list: FROM or
// any set-operation / statement terminator that can follow it directly.
func (t Token) IsClauseBoundary() bool {
	switch t.Kind {
	case KwFrom, KwWhere, KwGroup, KwOrder, KwHaving, KwLimit, KwOffset,
		KwUnion, KwIntersect, KwExcept, Semicolon, RParen, EOF:
		return true
	default:
		return false
	}
}

// Keyword returns the canonical upper-case spelling for keyword tokens and ""
// for everything else.
func (t Token) Keyword() string {
	if !t.IsKeyword() {
		return ""
	}
	return t.Kind.String()
}
