package lexer

import (
	"squill/internal/diag"
	"squill/internal/token"
)

// collectLeadingTrivia gathers consecutive trivia before a significant token.
// - ' ' and '\t' coalesce into one TriviaSpace
// - every '\n' becomes its own TriviaNewline (NOT coalesced: layout rules
//   need to address one line break at a time)
// - "--" to end of line -> TriviaLineComment
// - "/* ... */" -> TriviaBlockComment (SQL block comments do not nest;
//   unterminated ones are reported and clipped at EOF)
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		// spaces/tabs
		if b == ' ' || b == '\t' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' {
					break
				}
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaSpace,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		// one trivia per newline
		if b == '\n' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaNewline,
				Span: sp,
				Text: "\n",
			})
			continue
		}

		// -- line comment
		if b == '-' {
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '-' && b1 == '-' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
					lx.cursor.Bump()
				}
				sp := lx.cursor.SpanFrom(start)
				lx.hold = append(lx.hold, token.Trivia{
					Kind: token.TriviaLineComment,
					Span: sp,
					Text: string(lx.file.Content[sp.Start:sp.End]),
				})
				continue
			}
		}

		// /* block comment */
		if b == '/' {
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '/' && b1 == '*' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				closed := false
				for !lx.cursor.EOF() {
					if c0, c1, ok2 := lx.cursor.Peek2(); ok2 && c0 == '*' && c1 == '/' {
						lx.cursor.Bump()
						lx.cursor.Bump()
						closed = true
						break
					}
					lx.cursor.Bump()
				}
				sp := lx.cursor.SpanFrom(start)
				if !closed {
					// Peek2 fails with one byte left; consume the tail.
					for !lx.cursor.EOF() {
						lx.cursor.Bump()
					}
					sp = lx.cursor.SpanFrom(start)
					lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
				}
				lx.hold = append(lx.hold, token.Trivia{
					Kind: token.TriviaBlockComment,
					Span: sp,
					Text: string(lx.file.Content[sp.Start:sp.End]),
				})
				continue
			}
		}

		// no more trivia
		break
	}
}
