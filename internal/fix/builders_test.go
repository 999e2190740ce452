package fix_test

import (
	"testing"

	"squill/internal/diag"
	"squill/internal/fix"
	"squill/internal/source"
)

func TestInsertTextDefaults(t *testing.T) {
	at := source.At(1, 10)
	f := fix.InsertText("add newline", at, "\n", "")

	if f.Title != "add newline" {
		t.Errorf("title: %q", f.Title)
	}
	if f.Kind != diag.FixKindQuickFix {
		t.Errorf("kind: %v", f.Kind)
	}
	if f.Applicability != diag.FixApplicabilityAlwaysSafe {
		t.Errorf("applicability: %v", f.Applicability)
	}
	if f.IsPreferred {
		t.Error("should not be preferred by default")
	}
	if len(f.Edits) != 1 || f.Edits[0].NewText != "\n" || !f.Edits[0].Span.Empty() {
		t.Errorf("edits: %+v", f.Edits)
	}
}

func TestDeleteSpanGuard(t *testing.T) {
	sp := source.Span{File: 1, Start: 6, End: 7}
	f := fix.DeleteSpan("drop newline", sp, "\n")

	if len(f.Edits) != 1 {
		t.Fatalf("edits: %+v", f.Edits)
	}
	e := f.Edits[0]
	if e.NewText != "" || e.OldText != "\n" || e.Span != sp {
		t.Errorf("edit: %+v", e)
	}
}

func TestReplaceSpan(t *testing.T) {
	sp := source.Span{File: 1, Start: 6, End: 7}
	f := fix.ReplaceSpan("newline to space", sp, " ", "\n")
	if f.Edits[0].NewText != " " || f.Edits[0].OldText != "\n" {
		t.Errorf("edit: %+v", f.Edits[0])
	}
}

func TestOptions(t *testing.T) {
	f := fix.InsertText("x", source.At(0, 0), "y", "",
		fix.WithID("id-1"),
		fix.Preferred(),
		fix.WithKind(diag.FixKindRefactorRewrite),
		fix.WithApplicability(diag.FixApplicabilityUnsafe),
	)
	if f.ID != "id-1" || !f.IsPreferred {
		t.Errorf("fix: %+v", f)
	}
	if f.Kind != diag.FixKindRefactorRewrite || f.Applicability != diag.FixApplicabilityUnsafe {
		t.Errorf("fix: %+v", f)
	}
}
