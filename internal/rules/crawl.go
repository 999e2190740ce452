package rules

import (
	"fmt"

	"squill/internal/diag"
	"squill/internal/segment"
	"squill/internal/source"
)

// Crawl walks the tree depth-first, runs every rule on every node, and
// reports each outcome as a warning with a materialized fix.
func Crawl(file *source.File, root *segment.Segment, ruleSet []Rule, reporter diag.Reporter) {
	segment.Walk(root, func(node *segment.Segment, ancestors []*segment.Segment) bool {
		for _, r := range ruleSet {
			if out := r.Check(node, ancestors); out != nil {
				emit(file, r, out, reporter)
			}
		}
		return true
	})
}

func emit(file *source.File, r Rule, out *Outcome, reporter diag.Reporter) {
	primary := out.Anchor.Span

	var fixes []diag.Fix
	if edits := materialize(file, out.Actions); len(edits) > 0 {
		fixes = []diag.Fix{{
			ID:            fmt.Sprintf("%s-%s-%d", r.Code().ID(), source.BaseName(file.Path), primary.Start),
			Title:         r.Code().Title(),
			Kind:          diag.FixKindQuickFix,
			Applicability: diag.FixApplicabilityAlwaysSafe,
			IsPreferred:   true,
			Edits:         edits,
		}}
	}

	if reporter != nil {
		reporter.Report(r.Code(), diag.SevWarning, primary, out.Message, nil, fixes)
	}
}

// materialize turns tree edits into text edits.
//
// A delete removes exactly the node's bytes, guarded by OldText. An insert
// lands at the anchor's start offset even though the synthesized node carries
// a position of its own (the clause tail); the node position survives on the
// segment for tooling, the textual edit always goes before the anchor.
func materialize(file *source.File, actions []EditAction) []diag.TextEdit {
	edits := make([]diag.TextEdit, 0, len(actions))
	for _, a := range actions {
		switch a.Op {
		case OpDelete:
			edits = append(edits, diag.TextEdit{
				Span:    a.Anchor.Span,
				NewText: "",
				OldText: a.Anchor.Raw(),
			})
		case OpInsertBefore:
			if a.New == nil {
				continue
			}
			edits = append(edits, diag.TextEdit{
				Span:    source.At(file.ID, a.Anchor.Span.Start),
				NewText: a.New.Raw(),
			})
		}
	}
	return edits
}
