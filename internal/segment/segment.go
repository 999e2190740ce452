// Package segment defines the concrete node tree the parser builds and the
// layout rules inspect. Every source byte, trivia included, is owned by
// exactly one leaf, so tree edits map directly onto text edits.
package segment

import (
	"strings"

	"squill/internal/source"
)

// Segment is one node of the tree. Leaves carry their source text in raw;
// interior nodes derive Raw() from their children. Nodes are immutable after
// construction: rules describe edits, they never mutate the tree.
type Segment struct {
	Kind     Kind
	Span     source.Span
	Children []*Segment

	raw string
}

// NewLeaf builds a leaf owning the given source text.
func NewLeaf(kind Kind, span source.Span, raw string) *Segment {
	return &Segment{Kind: kind, Span: span, raw: raw}
}

// NewNode builds an interior node whose span covers its children. Children
// must be in document order.
func NewNode(kind Kind, children ...*Segment) *Segment {
	s := &Segment{Kind: kind, Children: children}
	if len(children) > 0 {
		sp := children[0].Span
		for _, c := range children[1:] {
			sp = sp.Cover(c.Span)
		}
		s.Span = sp
	}
	return s
}

// NewNewlineAt synthesizes a newline leaf that does not yet exist in the
// source. Its span is empty, anchored at off; the fix engine supplies the
// actual insertion point.
func NewNewlineAt(file source.FileID, off uint32) *Segment {
	return &Segment{
		Kind: KindNewline,
		Span: source.At(file, off),
		raw:  "\n",
	}
}

// Is reports whether the node has the given kind.
func (s *Segment) Is(kind Kind) bool {
	return s != nil && s.Kind == kind
}

// FirstChild returns the first direct child of the given kind, or nil.
func (s *Segment) FirstChild(kind Kind) *Segment {
	for _, c := range s.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// ChildrenOf returns all direct children of the given kind.
func (s *Segment) ChildrenOf(kind Kind) []*Segment {
	var out []*Segment
	for _, c := range s.Children {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Raw returns the source text of the node: a leaf's own text, or the
// concatenation of its children's.
func (s *Segment) Raw() string {
	if len(s.Children) == 0 {
		return s.raw
	}
	var b strings.Builder
	for _, c := range s.Children {
		b.WriteString(c.Raw())
	}
	return b.String()
}

// EndOffset returns the byte offset just past the node's source text.
func (s *Segment) EndOffset() uint32 {
	return s.Span.End
}

// IsTrivia reports whether the node is whitespace, a newline, or a comment.
func (s *Segment) IsTrivia() bool {
	switch s.Kind {
	case KindWhitespace, KindNewline, KindComment:
		return true
	default:
		return false
	}
}

// Walk visits the tree depth-first, passing each node its ancestor stack
// (root first). Returning false from fn prunes the node's subtree.
func Walk(root *Segment, fn func(node *Segment, ancestors []*Segment) bool) {
	var walk func(node *Segment, ancestors []*Segment)
	walk = func(node *Segment, ancestors []*Segment) {
		if !fn(node, ancestors) {
			return
		}
		ancestors = append(ancestors, node)
		for _, c := range node.Children {
			walk(c, ancestors)
		}
	}
	walk(root, nil)
}
