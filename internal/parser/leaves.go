package parser

import (
	"squill/internal/segment"
	"squill/internal/token"
)

func (p *Parser) cur() token.Token {
	return p.toks[p.pos]
}

// takeLeading converts the current token's leading trivia into segment leaves
// and detaches it, so each trivia piece lands in exactly one tree position.
func (p *Parser) takeLeading() []*segment.Segment {
	tok := &p.toks[p.pos]
	if len(tok.Leading) == 0 {
		return nil
	}
	out := make([]*segment.Segment, 0, len(tok.Leading))
	for _, tr := range tok.Leading {
		out = append(out, segment.NewLeaf(triviaKind(tr.Kind), tr.Span, tr.Text))
	}
	tok.Leading = nil
	return out
}

// leafAdvance turns the current token into a leaf and advances. The caller is
// responsible for having taken the leading trivia first.
func (p *Parser) leafAdvance() *segment.Segment {
	tok := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return segment.NewLeaf(leafKind(tok), tok.Span, tok.Text)
}

func triviaKind(k token.TriviaKind) segment.Kind {
	switch k {
	case token.TriviaNewline:
		return segment.KindNewline
	case token.TriviaLineComment, token.TriviaBlockComment:
		return segment.KindComment
	default:
		return segment.KindWhitespace
	}
}

func leafKind(tok token.Token) segment.Kind {
	switch {
	case tok.IsKeyword():
		return segment.KindKeyword
	case tok.Kind == token.Ident || tok.Kind == token.QuotedIdent:
		return segment.KindIdent
	case tok.IsLiteral(), tok.Kind == token.Placeholder:
		return segment.KindLiteral
	case tok.Kind == token.Comma:
		return segment.KindComma
	case tok.Kind == token.Dot:
		return segment.KindDot
	case tok.Kind == token.LParen:
		return segment.KindLParen
	case tok.Kind == token.RParen:
		return segment.KindRParen
	case tok.Kind == token.Semicolon:
		return segment.KindSemicolon
	case tok.IsPunctOrOp():
		return segment.KindOperator
	default:
		return segment.KindOther
	}
}
