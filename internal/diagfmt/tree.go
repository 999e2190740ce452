package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"squill/internal/segment"
	"squill/internal/source"
)

// FormatTreePretty writes the segment tree as an indented outline. Leaves
// show their raw text, inner nodes just their kind and resolved span.
func FormatTreePretty(w io.Writer, root *segment.Segment, fs *source.FileSet) error {
	if root == nil {
		_, err := fmt.Fprintln(w, "<nil>")
		return err
	}
	return writeTreeNode(w, root, fs, 0)
}

func writeTreeNode(w io.Writer, node *segment.Segment, fs *source.FileSet, depth int) error {
	startPos, endPos := fs.Resolve(node.Span)
	indent := strings.Repeat("  ", depth)

	if len(node.Children) == 0 {
		if _, err := fmt.Fprintf(w, "%s%s %d:%d-%d:%d %q\n",
			indent, node.Kind, startPos.Line, startPos.Col, endPos.Line, endPos.Col, node.Raw()); err != nil {
			return err
		}
		return nil
	}

	if _, err := fmt.Fprintf(w, "%s%s %d:%d-%d:%d\n",
		indent, node.Kind, startPos.Line, startPos.Col, endPos.Line, endPos.Col); err != nil {
		return err
	}
	for _, child := range node.Children {
		if err := writeTreeNode(w, child, fs, depth+1); err != nil {
			return err
		}
	}
	return nil
}

type TreeNodeJSON struct {
	Kind     string         `json:"kind"`
	Span     source.Span    `json:"span"`
	Raw      string         `json:"raw,omitempty"`
	Children []TreeNodeJSON `json:"children,omitempty"`
}

// FormatTreeJSON writes the segment tree as indented JSON. Raw text is only
// emitted on leaves to keep the output readable.
func FormatTreeJSON(w io.Writer, root *segment.Segment) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildTreeJSON(root))
}

func buildTreeJSON(node *segment.Segment) TreeNodeJSON {
	out := TreeNodeJSON{
		Kind: node.Kind.String(),
		Span: node.Span,
	}
	if len(node.Children) == 0 {
		out.Raw = node.Raw()
		return out
	}
	for _, child := range node.Children {
		out.Children = append(out.Children, buildTreeJSON(child))
	}
	return out
}
