// Package token defines the SQL token vocabulary produced by the lexer:
// token kinds, case-insensitive keyword lookup, and the trivia model that
// preserves whitespace, newlines, and comments for layout rules.
package token
