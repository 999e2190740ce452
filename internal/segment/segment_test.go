package segment_test

import (
	"testing"

	"squill/internal/segment"
	"squill/internal/source"
)

func leaf(kind segment.Kind, start, end uint32, raw string) *segment.Segment {
	return segment.NewLeaf(kind, source.Span{File: 0, Start: start, End: end}, raw)
}

func TestNodeSpanCoversChildren(t *testing.T) {
	kw := leaf(segment.KindKeyword, 0, 6, "select")
	ws := leaf(segment.KindWhitespace, 6, 7, " ")
	id := leaf(segment.KindIdent, 7, 8, "a")
	node := segment.NewNode(segment.KindSelectClause, kw, ws, id)

	if node.Span.Start != 0 || node.Span.End != 8 {
		t.Errorf("expected span [0,8), got [%d,%d)", node.Span.Start, node.Span.End)
	}
}

func TestRawConcatenatesChildren(t *testing.T) {
	kw := leaf(segment.KindKeyword, 0, 6, "select")
	ws := leaf(segment.KindWhitespace, 6, 7, " ")
	target := segment.NewNode(segment.KindSelectTarget, leaf(segment.KindIdent, 7, 8, "a"))
	node := segment.NewNode(segment.KindSelectClause, kw, ws, target)

	if got := node.Raw(); got != "select a" {
		t.Errorf("Raw: expected %q, got %q", "select a", got)
	}
}

func TestFirstChildAndChildrenOf(t *testing.T) {
	a := segment.NewNode(segment.KindSelectTarget, leaf(segment.KindIdent, 7, 8, "a"))
	b := segment.NewNode(segment.KindSelectTarget, leaf(segment.KindIdent, 10, 11, "b"))
	node := segment.NewNode(segment.KindSelectClause,
		leaf(segment.KindKeyword, 0, 6, "select"),
		leaf(segment.KindWhitespace, 6, 7, " "),
		a,
		leaf(segment.KindComma, 8, 9, ","),
		leaf(segment.KindWhitespace, 9, 10, " "),
		b,
	)

	if got := node.FirstChild(segment.KindSelectTarget); got != a {
		t.Errorf("FirstChild returned wrong node: %v", got)
	}
	targets := node.ChildrenOf(segment.KindSelectTarget)
	if len(targets) != 2 || targets[0] != a || targets[1] != b {
		t.Errorf("ChildrenOf returned %d targets", len(targets))
	}
	if node.FirstChild(segment.KindWildcard) != nil {
		t.Error("FirstChild for absent kind must be nil")
	}
}

func TestNewNewlineAt(t *testing.T) {
	nl := segment.NewNewlineAt(3, 42)
	if nl.Kind != segment.KindNewline {
		t.Errorf("kind: got %v", nl.Kind)
	}
	if nl.Raw() != "\n" {
		t.Errorf("raw: got %q", nl.Raw())
	}
	if nl.Span.File != 3 || nl.Span.Start != 42 || nl.Span.End != 42 {
		t.Errorf("span: got %v", nl.Span)
	}
	if !nl.Span.Empty() {
		t.Error("synthesized newline span must be empty")
	}
}

func TestWalkAncestorsAndPruning(t *testing.T) {
	inner := segment.NewNode(segment.KindSelectTarget, leaf(segment.KindIdent, 7, 8, "a"))
	clause := segment.NewNode(segment.KindSelectClause, leaf(segment.KindKeyword, 0, 6, "select"), inner)
	stmt := segment.NewNode(segment.KindStatement, clause)
	root := segment.NewNode(segment.KindFile, stmt)

	var sawTarget bool
	segment.Walk(root, func(node *segment.Segment, ancestors []*segment.Segment) bool {
		if node == inner {
			sawTarget = true
			want := []*segment.Segment{root, stmt, clause}
			if len(ancestors) != len(want) {
				t.Fatalf("ancestors: expected %d, got %d", len(want), len(ancestors))
			}
			for i := range want {
				if ancestors[i] != want[i] {
					t.Errorf("ancestors[%d] mismatch", i)
				}
			}
		}
		return true
	})
	if !sawTarget {
		t.Error("Walk never reached the target node")
	}

	visited := 0
	segment.Walk(root, func(node *segment.Segment, _ []*segment.Segment) bool {
		visited++
		return node.Kind != segment.KindStatement // prune below statement
	})
	if visited != 2 {
		t.Errorf("pruned walk should visit file+statement only, visited %d", visited)
	}
}

func TestIsTrivia(t *testing.T) {
	cases := []struct {
		kind segment.Kind
		want bool
	}{
		{segment.KindWhitespace, true},
		{segment.KindNewline, true},
		{segment.KindComment, true},
		{segment.KindIdent, false},
		{segment.KindComma, false},
	}
	for _, c := range cases {
		if got := leaf(c.kind, 0, 1, "x").IsTrivia(); got != c.want {
			t.Errorf("IsTrivia(%v): expected %v, got %v", c.kind, c.want, got)
		}
	}
}
