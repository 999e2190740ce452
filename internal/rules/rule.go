// Package rules holds the layout rules and the crawler that runs them over a
// segment tree.
package rules

import (
	"squill/internal/diag"
	"squill/internal/segment"
)

// Rule is one lint rule. Check is called for every node in the tree with its
// ancestor stack (root first) and returns nil when the node is clean. Rules
// are stateless values: Check must be pure and safe to call concurrently.
type Rule interface {
	Code() diag.Code
	Name() string
	Check(node *segment.Segment, ancestors []*segment.Segment) *Outcome
}

// Outcome is one finding: the node the diagnostic points at plus the tree
// edits that would repair it. An empty Actions slice means the finding has no
// automatic fix.
type Outcome struct {
	Anchor  *segment.Segment
	Message string
	Actions []EditAction
}

// Op selects the kind of tree edit.
type Op uint8

const (
	// OpInsertBefore inserts New into the text immediately before Anchor.
	OpInsertBefore Op = iota + 1
	// OpDelete removes Anchor's source text.
	OpDelete
)

// EditAction describes one edit against the tree. Anchor is always an
// existing node; New is a synthesized node and only set for inserts.
type EditAction struct {
	Op     Op
	Anchor *segment.Segment
	New    *segment.Segment
}
