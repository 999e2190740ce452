package rules

import (
	"strings"

	"squill/internal/diag"
	"squill/internal/segment"
)

func init() {
	register(SelectTargets{})
}

// SelectTargets flags select lists whose layout does not match the target
// count: multiple targets crammed onto the SELECT line, or a single target
// needlessly pushed onto its own line.
//
// Anti-pattern:
//
//	select
//	    *
//	from x
//
// Best practice:
//
//	select
//	    a,
//	    b
//	from x
type SelectTargets struct{}

func (SelectTargets) Code() diag.Code { return diag.RuleSelectTargets }

func (SelectTargets) Name() string { return "select-targets" }

func (r SelectTargets) Check(node *segment.Segment, _ []*segment.Segment) *Outcome {
	if !node.Is(segment.KindSelectClause) {
		return nil
	}
	lm := scanLandmarks(node)
	switch {
	case lm.targetCount == 1:
		return r.checkSingle(node, lm)
	case lm.targetCount > 1:
		return r.checkMultiple(node, lm)
	default:
		return nil
	}
}

// landmarkSummary records the positions, among the clause's direct children,
// that the rule dispatches on. -1 means absent.
type landmarkSummary struct {
	targetCount        int
	keywordIdx         int
	firstNewlineIdx    int
	firstTargetIdx     int
	firstWhitespaceIdx int
	targets            []*segment.Segment
}

// scanLandmarks is a single forward pass; every first-occurrence landmark
// keeps its earliest index. Whitespace before the first newline is ignored so
// trailing blanks on the SELECT line don't count as indentation.
func scanLandmarks(clause *segment.Segment) landmarkSummary {
	lm := landmarkSummary{
		keywordIdx:         -1,
		firstNewlineIdx:    -1,
		firstTargetIdx:     -1,
		firstWhitespaceIdx: -1,
	}
	for i, c := range clause.Children {
		if c.Kind == segment.KindSelectTarget {
			lm.targets = append(lm.targets, c)
			lm.targetCount++
			if lm.firstTargetIdx == -1 {
				lm.firstTargetIdx = i
			}
		}
		if c.Kind == segment.KindKeyword && lm.keywordIdx == -1 && strings.EqualFold(c.Raw(), "select") {
			lm.keywordIdx = i
		}
		if c.Kind == segment.KindNewline && lm.firstNewlineIdx == -1 {
			lm.firstNewlineIdx = i
		}
		if c.Kind == segment.KindWhitespace && lm.firstNewlineIdx != -1 && lm.firstWhitespaceIdx == -1 {
			lm.firstWhitespaceIdx = i
		}
	}
	return lm
}

// checkMultiple: several targets with no line break anywhere in the clause.
// The repair inserts a newline before the first target; the synthesized node
// is positioned past the clause's current text.
func (r SelectTargets) checkMultiple(clause *segment.Segment, lm landmarkSummary) *Outcome {
	if lm.firstNewlineIdx != -1 {
		return nil
	}
	nl := segment.NewNewlineAt(clause.Span.File, clause.EndOffset())
	return &Outcome{
		Anchor:  clause,
		Message: "select targets should each start on their own line",
		Actions: []EditAction{{Op: OpInsertBefore, Anchor: lm.targets[0], New: nl}},
	}
}

// checkSingle: one target sitting on the line below SELECT. Wildcards are
// exempt (the check looks only at the target's direct children). The repair
// deletes the first newline, pulling the target up beside SELECT.
func (r SelectTargets) checkSingle(clause *segment.Segment, lm landmarkSummary) *Outcome {
	for _, target := range lm.targets {
		if target.FirstChild(segment.KindWildcard) != nil {
			return nil
		}
	}
	if lm.keywordIdx == -1 || lm.firstNewlineIdx == -1 || lm.firstTargetIdx == -1 {
		return nil
	}
	if !(lm.keywordIdx < lm.firstNewlineIdx && lm.firstNewlineIdx < lm.firstTargetIdx) {
		return nil
	}
	return &Outcome{
		Anchor:  clause,
		Message: "a single select target should stay on the same line as SELECT",
		Actions: []EditAction{{Op: OpDelete, Anchor: clause.Children[lm.firstNewlineIdx]}},
	}
}
