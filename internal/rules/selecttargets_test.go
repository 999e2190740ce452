package rules_test

import (
	"sort"
	"testing"

	"squill/internal/diag"
	"squill/internal/parser"
	"squill/internal/rules"
	"squill/internal/source"
)

func lintString(t *testing.T, sql string) (*diag.Bag, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.sql", []byte(sql)))

	p := parser.New(file, parser.Options{Reporter: diag.NopReporter{}})
	root := p.ParseFile()

	bag := diag.NewBag(100)
	rules.Crawl(file, root, rules.All(nil), &diag.BagReporter{Bag: bag})
	return bag, file
}

// applyFixes splices every edit of every fix into the source, last first.
func applyFixes(t *testing.T, sql string, bag *diag.Bag) string {
	t.Helper()
	var edits []diag.TextEdit
	for _, d := range bag.Items() {
		for _, f := range d.Fixes {
			edits = append(edits, f.Edits...)
		}
	}
	sort.Slice(edits, func(i, j int) bool { return edits[i].Span.Start > edits[j].Span.Start })

	out := []byte(sql)
	for _, e := range edits {
		if e.OldText != "" && string(out[e.Span.Start:e.Span.End]) != e.OldText {
			t.Fatalf("edit guard mismatch: want %q, have %q", e.OldText, out[e.Span.Start:e.Span.End])
		}
		out = append(out[:e.Span.Start], append([]byte(e.NewText), out[e.Span.End:]...)...)
	}
	return string(out)
}

func expectClean(t *testing.T, sql string) {
	t.Helper()
	bag, _ := lintString(t, sql)
	if bag.Len() != 0 {
		t.Errorf("%q: expected no findings, got %d: %v", sql, bag.Len(), bag.Items())
	}
}

func expectFixedTo(t *testing.T, sql, want string) {
	t.Helper()
	bag, _ := lintString(t, sql)
	if bag.Len() != 1 {
		t.Fatalf("%q: expected exactly one finding, got %d", sql, bag.Len())
	}
	d := bag.Items()[0]
	if d.Code != diag.RuleSelectTargets {
		t.Errorf("code: expected %s, got %s", diag.RuleSelectTargets.ID(), d.Code.ID())
	}
	if d.Severity != diag.SevWarning {
		t.Errorf("severity: expected warning, got %v", d.Severity)
	}
	if len(d.Fixes) != 1 {
		t.Fatalf("expected one fix, got %d", len(d.Fixes))
	}
	got := applyFixes(t, sql, bag)
	if got != want {
		t.Errorf("fixed output\nwant: %q\ngot:  %q", want, got)
	}

	// the fixed text must be clean
	rebag, _ := lintString(t, got)
	if rebag.Len() != 0 {
		t.Errorf("fix is not idempotent: %q still has %d findings", got, rebag.Len())
	}
}

func TestMultipleTargetsOnSelectLine(t *testing.T) {
	expectFixedTo(t,
		"select a, b from x\n",
		"select \na, b from x\n")
}

func TestMultipleTargetsAlreadyOnNewLines(t *testing.T) {
	expectClean(t, "select\n  a,\n  b\nfrom x\n")
}

func TestMultipleTargetsPartialNewlineIsAccepted(t *testing.T) {
	// any newline in the clause satisfies the multi-target path
	expectClean(t, "select a,\n  b from x\n")
}

func TestSingleTargetOnNewLine(t *testing.T) {
	expectFixedTo(t,
		"select\n  a\nfrom x\n",
		"select  a\nfrom x\n")
}

func TestSingleTargetSameLineIsClean(t *testing.T) {
	expectClean(t, "select a from x\n")
}

func TestSingleWildcardOnNewLineIsExempt(t *testing.T) {
	expectClean(t, "select\n  *\nfrom x\n")
	expectClean(t, "select\n  t.*\nfrom t\n")
}

func TestMultipleTargetsWithWildcardStillChecked(t *testing.T) {
	// the wildcard exemption only applies to the single-target path
	expectFixedTo(t,
		"select *, a from x\n",
		"select \n*, a from x\n")
}

func TestWildcardInsideExpressionDoesNotExempt(t *testing.T) {
	// count(*) is not a wildcard target: the * is buried in the expression
	expectFixedTo(t,
		"select\n  count(*)\nfrom x\n",
		"select  count(*)\nfrom x\n")
}

func TestEmptySelectListIsIgnored(t *testing.T) {
	bag, _ := lintString(t, "select from x\n")
	for _, d := range bag.Items() {
		if d.Code == diag.RuleSelectTargets {
			t.Error("zero targets must produce no finding")
		}
	}
}

func TestExpressionTargets(t *testing.T) {
	expectFixedTo(t,
		"select a + b, c from x\n",
		"select \na + b, c from x\n")
}

func TestCommentDoesNotCountAsNewline(t *testing.T) {
	// a line comment is comment trivia; the newline after it still counts
	expectClean(t, "select a, -- note\n  b\nfrom x\n")
}

func TestSubquerySelectClauseIsChecked(t *testing.T) {
	bag, _ := lintString(t, "select x from (select a, b from t) sub\n")
	count := 0
	for _, d := range bag.Items() {
		if d.Code == diag.RuleSelectTargets {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected the inner clause to be flagged once, got %d findings", count)
	}
}

func TestMultipleStatementsEachChecked(t *testing.T) {
	bag, _ := lintString(t, "select a, b from x;\nselect c, d from y;\n")
	if bag.Len() != 2 {
		t.Errorf("expected a finding per statement, got %d", bag.Len())
	}
}

func TestFixMetadata(t *testing.T) {
	bag, _ := lintString(t, "select a, b from x\n")
	if bag.Len() != 1 {
		t.Fatalf("expected one finding, got %d", bag.Len())
	}
	f := bag.Items()[0].Fixes[0]
	if f.ID != "SQL3001-test.sql-0" {
		t.Errorf("fix id: got %q", f.ID)
	}
	if f.Kind != diag.FixKindQuickFix || f.Applicability != diag.FixApplicabilityAlwaysSafe || !f.IsPreferred {
		t.Errorf("fix metadata: %+v", f)
	}
	if len(f.Edits) != 1 || f.Edits[0].NewText != "\n" {
		t.Errorf("fix edits: %+v", f.Edits)
	}
}
