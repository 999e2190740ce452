package driver

import (
	"squill/internal/diag"
	"squill/internal/parser"
	"squill/internal/segment"
	"squill/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Root    *segment.Segment
	Bag     *diag.Bag
}

// Parse loads a file and builds its segment tree.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseLoaded(fs, fileID, maxDiagnostics), nil
}

// ParseVirtual parses in-memory content (stdin, tests).
func ParseVirtual(name string, content []byte, maxDiagnostics int) *ParseResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return parseLoaded(fs, fileID, maxDiagnostics)
}

func parseLoaded(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *ParseResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	p := parser.New(file, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	root := p.ParseFile()

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Root:    root,
		Bag:     bag,
	}
}
