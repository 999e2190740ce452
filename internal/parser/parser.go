// Package parser builds the segment tree from the token stream. The tree is
// deliberately loose: every trivia byte survives as its own node, unknown
// constructs degrade to KindOther leaves, and parsing never fails hard.
package parser

import (
	"squill/internal/diag"
	"squill/internal/lexer"
	"squill/internal/segment"
	"squill/internal/source"
	"squill/internal/token"
)

type Options struct {
	Reporter diag.Reporter
}

type Parser struct {
	file *source.File
	toks []token.Token
	pos  int
	opts Options
}

// New lexes the whole file up front; the parser then works over the token
// slice by index.
func New(file *source.File, opts Options) *Parser {
	lx := lexer.New(file, lexer.Options{Reporter: opts.Reporter})
	toks := make([]token.Token, 0, 64)
	for {
		t := lx.Next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			break
		}
	}
	return &Parser{file: file, toks: toks, opts: opts}
}

// ParseFile parses every statement in the file. Trailing trivia after the
// last statement attaches to the file node.
func (p *Parser) ParseFile() *segment.Segment {
	var children []*segment.Segment
	for p.cur().Kind != token.EOF {
		children = append(children, p.parseStatement(false))
	}
	children = append(children, p.takeLeading()...)
	return segment.NewNode(segment.KindFile, children...)
}

// parseStatement parses one statement up to and including its semicolon.
// With sub set, the statement is a parenthesized subquery and stops before
// the closing paren instead.
func (p *Parser) parseStatement(sub bool) *segment.Segment {
	children := p.takeLeading()

	if p.cur().Kind == token.KwSelect {
		children = append(children, p.parseSelectClause())
		if rest := p.parseRest(sub); rest != nil {
			children = append(children, rest)
		}
	} else {
		children = append(children, p.parseLoose(sub)...)
	}

	if !sub && p.cur().Kind == token.Semicolon {
		children = append(children, p.takeLeading()...)
		children = append(children, p.leafAdvance())
	}
	return segment.NewNode(segment.KindStatement, children...)
}

// parseRest groups everything between the select clause and the statement
// terminator: a KindFromClause when it starts with FROM, KindOther otherwise.
func (p *Parser) parseRest(sub bool) *segment.Segment {
	if p.atRestEnd(sub) {
		return nil
	}
	isFrom := p.cur().Kind == token.KwFrom
	var leaves []*segment.Segment
	for !p.atRestEnd(sub) {
		leaves = append(leaves, p.takeLeading()...)
		if p.cur().Kind == token.LParen {
			leaves = append(leaves, p.parseGroup()...)
			continue
		}
		if p.cur().Kind == token.RParen && !sub {
			p.errSyn(diag.SynUnexpectedToken, p.cur().Span, "unmatched ')'")
		}
		leaves = append(leaves, p.leafAdvance())
	}
	kind := segment.KindOther
	if isFrom {
		kind = segment.KindFromClause
	}
	return segment.NewNode(kind, leaves...)
}

// parseLoose consumes a statement the parser has no grammar for.
func (p *Parser) parseLoose(sub bool) []*segment.Segment {
	var leaves []*segment.Segment
	for !p.atRestEnd(sub) {
		leaves = append(leaves, p.takeLeading()...)
		if p.cur().Kind == token.LParen {
			leaves = append(leaves, p.parseGroup()...)
			continue
		}
		if p.cur().Kind == token.RParen && !sub {
			p.errSyn(diag.SynUnexpectedToken, p.cur().Span, "unmatched ')'")
		}
		leaves = append(leaves, p.leafAdvance())
	}
	return leaves
}

// parseGroup consumes a balanced ( ... ) group. A group whose first
// significant token is SELECT becomes a nested statement subtree, so layout
// rules see subquery select clauses too.
func (p *Parser) parseGroup() []*segment.Segment {
	open := p.cur()
	out := []*segment.Segment{p.leafAdvance()} // '('

	if p.cur().Kind == token.KwSelect {
		out = append(out, p.parseStatement(true))
	}

	for {
		t := p.cur()
		if t.Kind == token.EOF {
			p.errSyn(diag.SynUnclosedParen, open.Span, "unclosed '('")
			out = append(out, p.takeLeading()...)
			return out
		}
		out = append(out, p.takeLeading()...)
		switch p.cur().Kind {
		case token.RParen:
			out = append(out, p.leafAdvance())
			return out
		case token.LParen:
			out = append(out, p.parseGroup()...)
		default:
			out = append(out, p.leafAdvance())
		}
	}
}

func (p *Parser) atRestEnd(sub bool) bool {
	switch p.cur().Kind {
	case token.EOF, token.Semicolon:
		return true
	case token.RParen:
		return sub
	default:
		return false
	}
}

func (p *Parser) errSyn(code diag.Code, sp source.Span, msg string) {
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil, nil)
	}
}
