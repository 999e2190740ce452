package source_test

import (
	"testing"

	"squill/internal/source"
)

func TestSpanEmptyAndLen(t *testing.T) {
	s := source.Span{File: 1, Start: 5, End: 5}
	if !s.Empty() {
		t.Errorf("expected span %v to be empty", s)
	}
	if s.Len() != 0 {
		t.Errorf("expected len 0, got %d", s.Len())
	}

	s = source.Span{File: 1, Start: 2, End: 9}
	if s.Empty() {
		t.Errorf("expected span %v to be non-empty", s)
	}
	if s.Len() != 7 {
		t.Errorf("expected len 7, got %d", s.Len())
	}
}

func TestSpanCover(t *testing.T) {
	a := source.Span{File: 1, Start: 10, End: 20}
	b := source.Span{File: 1, Start: 5, End: 15}

	c := a.Cover(b)
	if c.Start != 5 || c.End != 20 {
		t.Errorf("expected cover 5-20, got %d-%d", c.Start, c.End)
	}

	// Different file: untouched.
	d := a.Cover(source.Span{File: 2, Start: 0, End: 100})
	if d != a {
		t.Errorf("expected cover across files to be a no-op, got %v", d)
	}
}

func TestSpanAt(t *testing.T) {
	s := source.At(3, 42)
	if !s.Empty() {
		t.Errorf("expected At span to be empty")
	}
	if s.File != 3 || s.Start != 42 || s.End != 42 {
		t.Errorf("unexpected span %v", s)
	}
}
