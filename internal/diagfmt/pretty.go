package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"squill/internal/diag"
	"squill/internal/source"
)

// Pretty renders diagnostics in a human-readable form, one block per
// diagnostic (call bag.Sort() beforehand for a stable order):
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	   12 | select a, b from x
//	      | ^~~~~~
//
// Notes follow in the same shape, fix titles and previews behind opts.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeading(w, fs, d.Primary, d.Severity, d.Code.ID(), d.Message, opts)
		writeContext(w, fs, d.Primary, opts)

		if opts.ShowNotes {
			for _, note := range d.Notes {
				writeHeading(w, fs, note.Span, diag.SevInfo, "note", note.Msg, opts)
				writeContext(w, fs, note.Span, opts)
			}
		}
		if opts.ShowFixes {
			for _, f := range d.Fixes {
				marker := "fix"
				if f.IsPreferred {
					marker = "fix*"
				}
				fmt.Fprintf(w, "  %s: %s [%s, %s]\n", marker, f.Title, f.ID, f.Applicability)
				if opts.ShowPreview {
					writeFixPreview(w, fs, f)
				}
			}
		}
	}
}

func writeHeading(w io.Writer, fs *source.FileSet, span source.Span, sev diag.Severity, code, msg string, opts PrettyOpts) {
	f := fs.Get(span.File)
	path := formatPath(f, fs, opts.PathMode)
	start, _ := fs.Resolve(span)

	sevText := sev.String()
	if opts.Color {
		sevText = sevColor(sev)(sevText)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, start.Line, start.Col, sevText, code, msg)
}

func writeContext(w io.Writer, fs *source.FileSet, span source.Span, opts PrettyOpts) {
	f := fs.Get(span.File)
	start, end := fs.Resolve(span)

	firstLine := start.Line
	if ctx := uint32(max(int(opts.Context), 0)); ctx > 0 && firstLine > ctx {
		firstLine -= ctx
	} else if ctx > 0 {
		firstLine = 1
	}

	for line := firstLine; line <= start.Line; line++ {
		text := f.GetLine(line)
		fmt.Fprintf(w, "%5d | %s\n", line, clipLine(text, opts.Width))
	}

	// caret underline below the start line
	underlineLen := 1
	if end.Line == start.Line && end.Col > start.Col {
		underlineLen = int(end.Col - start.Col)
	}
	lineText := f.GetLine(start.Line)
	prefix := strings.Repeat(" ", displayWidth(lineText, int(start.Col)-1))
	marks := "^"
	if underlineLen > 1 {
		marks += strings.Repeat("~", underlineLen-1)
	}
	fmt.Fprintf(w, "      | %s%s\n", prefix, marks)

	if opts.Context > 0 {
		lastLine := start.Line + uint32(opts.Context)
		for line := start.Line + 1; line <= lastLine; line++ {
			text := f.GetLine(line)
			if text == "" && line > end.Line {
				break
			}
			fmt.Fprintf(w, "%5d | %s\n", line, clipLine(text, opts.Width))
		}
	}
}

func writeFixPreview(w io.Writer, fs *source.FileSet, f diag.Fix) {
	for _, edit := range f.Edits {
		preview, err := buildFixEditPreview(fs, edit)
		if err != nil {
			continue
		}
		for _, line := range preview.before {
			fmt.Fprintf(w, "      - %s\n", line)
		}
		for _, line := range preview.after {
			fmt.Fprintf(w, "      + %s\n", line)
		}
	}
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}

// displayWidth returns the on-screen width of the first n bytes of text, so
// the caret lines up under tabs and wide runes.
func displayWidth(text string, n int) int {
	if n <= 0 {
		return 0
	}
	if n > len(text) {
		n = len(text)
	}
	width := 0
	for _, r := range text[:n] {
		if r == '\t' {
			width += 8 - width%8
			continue
		}
		width += runewidth.RuneWidth(r)
	}
	return width
}

func clipLine(text string, width uint8) string {
	if width == 0 {
		return text
	}
	return runewidth.Truncate(text, int(width), "…")
}

func sevColor(sev diag.Severity) func(...interface{}) string {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	default:
		return color.New(color.FgCyan).SprintFunc()
	}
}
