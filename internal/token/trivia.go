package token

import "squill/internal/source"

// TriviaKind classifies non-semantic source text carried between tokens.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	}
	return "Unknown"
}

// Trivia is a whitespace or comment run preceding a token. Spaces and tabs
// coalesce into one run; newlines do NOT — every '\n' gets its own Trivia so
// downstream layout rules can address a single line break.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
