package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"squill/internal/source"
)

func TestAddVirtualAndGet(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("query.sql", []byte("select 1\n"))

	f := fs.Get(id)
	if f == nil {
		t.Fatal("expected file")
	}
	if f.Flags&source.FileVirtual == 0 {
		t.Errorf("expected FileVirtual flag")
	}
	if string(f.Content) != "select 1\n" {
		t.Errorf("unexpected content %q", f.Content)
	}
	if len(f.LineIdx) != 1 {
		t.Errorf("expected one newline in line index, got %d", len(f.LineIdx))
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "q.sql")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("select a\r\nfrom x\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := source.NewFileSetWithBase(dir)
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if f.Flags&source.FileHadBOM == 0 {
		t.Errorf("expected FileHadBOM flag")
	}
	if f.Flags&source.FileNormalizedCRLF == 0 {
		t.Errorf("expected FileNormalizedCRLF flag")
	}
	if string(f.Content) != "select a\nfrom x\n" {
		t.Errorf("unexpected normalized content %q", f.Content)
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("q.sql", []byte("select\n  a,\n  b\nfrom x\n"))

	cases := []struct {
		name      string
		span      source.Span
		wantLine  uint32
		wantCol   uint32
		wantELine uint32
	}{
		{"start of file", source.Span{File: id, Start: 0, End: 6}, 1, 1, 1},
		{"second line", source.Span{File: id, Start: 9, End: 10}, 2, 3, 2},
		{"fourth line", source.Span{File: id, Start: 16, End: 20}, 4, 1, 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := fs.Resolve(tc.span)
			if start.Line != tc.wantLine || start.Col != tc.wantCol {
				t.Errorf("start: expected %d:%d, got %d:%d", tc.wantLine, tc.wantCol, start.Line, start.Col)
			}
			if end.Line != tc.wantELine {
				t.Errorf("end line: expected %d, got %d", tc.wantELine, end.Line)
			}
		})
	}
}

func TestGetLine(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("q.sql", []byte("select\n  a\nfrom x"))
	f := fs.Get(id)

	if got := f.GetLine(1); got != "select" {
		t.Errorf("line 1: got %q", got)
	}
	if got := f.GetLine(2); got != "  a" {
		t.Errorf("line 2: got %q", got)
	}
	if got := f.GetLine(3); got != "from x" {
		t.Errorf("line 3: got %q", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Errorf("line 4: expected empty, got %q", got)
	}
	if got := f.GetLine(0); got != "" {
		t.Errorf("line 0: expected empty, got %q", got)
	}
}

func TestGetLatestTracksNewestVersion(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("q.sql", []byte("select 1"))
	second := fs.AddVirtual("q.sql", []byte("select 2"))

	id, ok := fs.GetLatest("q.sql")
	if !ok {
		t.Fatal("expected file in index")
	}
	if id != second {
		t.Errorf("expected latest id %d, got %d", second, id)
	}
}
