package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"squill/internal/diag"
	"squill/internal/diagfmt"
	"squill/internal/source"
)

func makeBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("query.sql", []byte("select a, b from x\n"))

	f := diag.Fix{
		ID:            "SQL3001-query.sql-0",
		Title:         diag.RuleSelectTargets.Title(),
		Kind:          diag.FixKindQuickFix,
		Applicability: diag.FixApplicabilityAlwaysSafe,
		IsPreferred:   true,
		Edits: []diag.TextEdit{{
			Span:    source.At(id, 7),
			NewText: "\n",
		}},
	}
	d := diag.NewWarning(diag.RuleSelectTargets,
		source.Span{File: id, Start: 0, End: 18},
		"select targets should each start on their own line").
		WithNote(source.Span{File: id, Start: 7, End: 8}, "first target here").
		WithFix(f)

	bag := diag.NewBag(10)
	bag.Add(d)
	return bag, fs
}

func TestPrettyBasic(t *testing.T) {
	bag, fs := makeBag(t)
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{})

	out := buf.String()
	if !strings.Contains(out, "query.sql:1:1: warning SQL3001: select targets should each start on their own line") {
		t.Errorf("heading missing:\n%s", out)
	}
	if !strings.Contains(out, "    1 | select a, b from x") {
		t.Errorf("context line missing:\n%s", out)
	}
	if !strings.Contains(out, "      | ^"+strings.Repeat("~", 17)) {
		t.Errorf("caret underline missing:\n%s", out)
	}
}

func TestPrettyNotesAndFixes(t *testing.T) {
	bag, fs := makeBag(t)
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{ShowNotes: true, ShowFixes: true})

	out := buf.String()
	if !strings.Contains(out, "note: first target here") {
		t.Errorf("note missing:\n%s", out)
	}
	if !strings.Contains(out, "fix*: ") || !strings.Contains(out, "SQL3001-query.sql-0") {
		t.Errorf("fix line missing:\n%s", out)
	}
}

func TestPrettyWidthClipping(t *testing.T) {
	fs := source.NewFileSet()
	long := "select " + strings.Repeat("aaaa, ", 30) + "b from x\n"
	id := fs.AddVirtual("wide.sql", []byte(long))
	bag := diag.NewBag(10)
	bag.Add(diag.NewWarning(diag.RuleSelectTargets, source.Span{File: id, Start: 0, End: 6}, "wide"))

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{Width: 40})
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, "    1 | ") && len(line) > 8+40+len("…") {
			t.Errorf("line not clipped: %q", line)
		}
	}
}

func TestJSONOutput(t *testing.T) {
	bag, fs := makeBag(t)
	var buf bytes.Buffer
	err := diagfmt.JSON(&buf, bag, fs, diagfmt.JSONOpts{
		IncludePositions: true,
		IncludeNotes:     true,
		IncludeFixes:     true,
		IncludePreviews:  true,
	})
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count: %+v", out)
	}
	d := out.Diagnostics[0]
	if d.Code != "SQL3001" || d.Severity != "warning" {
		t.Errorf("diag: %+v", d)
	}
	if d.Location.StartLine != 1 || d.Location.StartCol != 1 {
		t.Errorf("location: %+v", d.Location)
	}
	if len(d.Notes) != 1 || d.Notes[0].Message != "first target here" {
		t.Errorf("notes: %+v", d.Notes)
	}
	if len(d.Fixes) != 1 || len(d.Fixes[0].Edits) != 1 {
		t.Fatalf("fixes: %+v", d.Fixes)
	}
	edit := d.Fixes[0].Edits[0]
	if edit.NewText != "\n" {
		t.Errorf("edit: %+v", edit)
	}
	if len(edit.BeforeLines) == 0 || edit.BeforeLines[0] != "select a, b from x" {
		t.Errorf("before preview: %+v", edit.BeforeLines)
	}
	if len(edit.AfterLines) != 2 || edit.AfterLines[0] != "select " || edit.AfterLines[1] != "a, b from x" {
		t.Errorf("after preview: %+v", edit.AfterLines)
	}
}

func TestJSONMaxTruncates(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("query.sql", []byte("select a, b from x\n"))
	bag := diag.NewBag(10)
	for i := 0; i < 3; i++ {
		bag.Add(diag.NewWarning(diag.RuleSelectTargets, source.Span{File: id, Start: uint32(i), End: uint32(i) + 1}, "x"))
	}

	out := diagfmt.BuildDiagnosticsOutput(bag, fs, diagfmt.JSONOpts{Max: 2})
	if out.Count != 2 {
		t.Errorf("expected 2 diagnostics after truncation, got %d", out.Count)
	}
	if bag.Len() != 3 {
		t.Errorf("truncation must not touch the bag, len=%d", bag.Len())
	}
}

func TestSarifOutput(t *testing.T) {
	bag, fs := makeBag(t)
	var buf bytes.Buffer
	err := diagfmt.Sarif(&buf, bag, fs, diagfmt.SarifRunMeta{
		ToolName:       "squill",
		ToolVersion:    "0.1.0",
		InvocationArgs: []string{"lint", "query.sql"},
	})
	if err != nil {
		t.Fatalf("Sarif: %v", err)
	}

	var log map[string]any
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if log["version"] != "2.1.0" {
		t.Errorf("version: %v", log["version"])
	}
	runs := log["runs"].([]any)
	if len(runs) != 1 {
		t.Fatalf("runs: %v", runs)
	}
	run := runs[0].(map[string]any)
	results := run["results"].([]any)
	if len(results) != 1 {
		t.Fatalf("results: %v", results)
	}
	res := results[0].(map[string]any)
	if res["ruleId"] != "SQL3001" || res["level"] != "warning" {
		t.Errorf("result: %v", res)
	}
	driver := run["tool"].(map[string]any)["driver"].(map[string]any)
	if driver["name"] != "squill" {
		t.Errorf("driver: %v", driver)
	}
}
