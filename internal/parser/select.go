package parser

import (
	"squill/internal/diag"
	"squill/internal/segment"
	"squill/internal/token"
)

// parseSelectClause builds the select_clause node: the SELECT keyword, an
// optional DISTINCT/ALL, then the select list. Its direct children are the
// exact token/trivia sequence up to the next clause boundary, with each list
// item wrapped in a KindSelectTarget. Trivia before the boundary token stays
// inside the clause.
func (p *Parser) parseSelectClause() *segment.Segment {
	kw := p.cur()
	children := []*segment.Segment{p.leafAdvance()} // SELECT

	if k := p.cur().Kind; k == token.KwDistinct || k == token.KwAll {
		children = append(children, p.takeLeading()...)
		children = append(children, p.leafAdvance())
	}

	sawTarget := false
	for {
		t := p.cur()
		if t.IsClauseBoundary() {
			children = append(children, p.takeLeading()...)
			break
		}
		if t.Kind == token.Comma {
			children = append(children, p.takeLeading()...)
			children = append(children, p.leafAdvance())
			continue
		}
		children = append(children, p.takeLeading()...)
		children = append(children, p.parseSelectTarget())
		sawTarget = true
	}

	if !sawTarget {
		p.errSyn(diag.SynEmptySelectList, kw.Span, "SELECT with no select list")
	}
	return segment.NewNode(segment.KindSelectClause, children...)
}

// parseSelectTarget consumes one select list item: everything up to the next
// comma or clause boundary at paren depth zero. Trivia between the item's own
// tokens belongs to the item; trivia after its last token is left for the
// clause.
func (p *Parser) parseSelectTarget() *segment.Segment {
	var leaves []*segment.Segment
	for {
		t := p.cur()
		if t.IsClauseBoundary() || t.Kind == token.Comma {
			break
		}
		leaves = append(leaves, p.takeLeading()...)
		if p.cur().Kind == token.LParen {
			leaves = append(leaves, p.parseGroup()...)
			continue
		}
		leaves = append(leaves, p.leafAdvance())
	}
	return wrapTarget(leaves)
}

// wrapTarget classifies the item body: a bare or qualified * becomes
// KindWildcard, a plain column reference KindColumnRef, anything else
// KindExpression. The wrapper is always a direct child of the target node so
// rules can check it without a deep walk.
func wrapTarget(leaves []*segment.Segment) *segment.Segment {
	var sig []*segment.Segment
	for _, l := range leaves {
		if !l.IsTrivia() {
			sig = append(sig, l)
		}
	}

	kind := segment.KindExpression
	switch {
	case isWildcardShape(sig):
		kind = segment.KindWildcard
	case isColumnRefShape(sig):
		kind = segment.KindColumnRef
	}
	return segment.NewNode(segment.KindSelectTarget, segment.NewNode(kind, leaves...))
}

// isWildcardShape matches * and t.* (with an optionally qualified prefix).
func isWildcardShape(sig []*segment.Segment) bool {
	if len(sig) == 0 {
		return false
	}
	last := sig[len(sig)-1]
	if last.Kind != segment.KindOperator || last.Raw() != "*" {
		return false
	}
	// everything before the star must be ident.ident....
	rest := sig[:len(sig)-1]
	if len(rest) == 0 {
		return true
	}
	if rest[len(rest)-1].Kind != segment.KindDot {
		return false
	}
	return isColumnRefShape(rest[:len(rest)-1])
}

func isColumnRefShape(sig []*segment.Segment) bool {
	if len(sig) == 0 {
		return false
	}
	for i, l := range sig {
		if i%2 == 0 {
			if l.Kind != segment.KindIdent {
				return false
			}
		} else if l.Kind != segment.KindDot {
			return false
		}
	}
	return sig[len(sig)-1].Kind == segment.KindIdent
}
