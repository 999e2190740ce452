// Package testkit holds structural checks shared by parser and rule tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"squill/internal/segment"
	"squill/internal/source"
)

// CheckTreeInvariants runs a minimal set of structural invariants on a
// segment tree:
// 1) every span stays within the file's content bounds
// 2) every span points at the parsed file
// 3) children appear in document order and never overlap
// 4) a parent's span covers all of its children
func CheckTreeInvariants(root *segment.Segment, sf *source.File) error {
	if root == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	return checkNode(root, sf.ID, lenContent)
}

func checkNode(node *segment.Segment, fileID source.FileID, lenContent uint32) error {
	sp := node.Span
	if sp.Start > sp.End {
		return fmt.Errorf("%s: inverted span %v", node.Kind, sp)
	}
	if sp.End > lenContent {
		return fmt.Errorf("%s: span end beyond content: %d > %d", node.Kind, sp.End, lenContent)
	}
	if sp.File != fileID {
		return fmt.Errorf("%s: span file mismatch: got=%d want=%d", node.Kind, sp.File, fileID)
	}

	prevEnd := sp.Start
	for _, child := range node.Children {
		if child.Span.Start < prevEnd {
			return fmt.Errorf("%s: child %s at %v overlaps or precedes its sibling",
				node.Kind, child.Kind, child.Span)
		}
		if child.Span.Start < sp.Start || child.Span.End > sp.End {
			return fmt.Errorf("%s span %v does not cover child %s span %v",
				node.Kind, sp, child.Kind, child.Span)
		}
		if err := checkNode(child, fileID, lenContent); err != nil {
			return err
		}
		prevEnd = child.Span.End
	}
	return nil
}

// CheckRawRoundTrip verifies that the tree reproduces the file byte for byte.
func CheckRawRoundTrip(root *segment.Segment, sf *source.File) error {
	if root == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	if got, want := root.Raw(), string(sf.Content); got != want {
		return fmt.Errorf("tree raw does not reproduce the source:\ngot  %q\nwant %q", got, want)
	}
	return nil
}
