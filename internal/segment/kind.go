package segment

// Kind classifies a node in the concrete tree. The set is closed: the parser
// maps anything it does not understand to KindOther instead of inventing new
// tags, so rules can switch on Kind exhaustively.
type Kind uint8

const (
	// KindOther is the fallback for unclassified nodes.
	KindOther Kind = iota
	// KindFile is the root node of one source file.
	KindFile
	// KindStatement is one SQL statement.
	KindStatement
	// KindSelectClause spans SELECT up to (not including) the next clause.
	KindSelectClause
	// KindFromClause groups FROM and everything after it in the statement.
	KindFromClause
	// KindSelectTarget is one item of the select list.
	KindSelectTarget
	// KindWildcard is a * or qualified t.* select item.
	KindWildcard
	// KindColumnRef is a plain (possibly qualified) column reference.
	KindColumnRef
	// KindExpression wraps any other select item body.
	KindExpression
	// KindKeyword is a keyword leaf.
	KindKeyword
	// KindIdent is an identifier leaf.
	KindIdent
	// KindLiteral is a number or string leaf.
	KindLiteral
	// KindOperator is an operator leaf.
	KindOperator
	// KindComma is a ',' leaf.
	KindComma
	// KindDot is a '.' leaf.
	KindDot
	// KindLParen is a '(' leaf.
	KindLParen
	// KindRParen is a ')' leaf.
	KindRParen
	// KindSemicolon is a ';' leaf.
	KindSemicolon
	// KindWhitespace is a run of spaces or tabs.
	KindWhitespace
	// KindNewline is exactly one line break.
	KindNewline
	// KindComment is a line or block comment.
	KindComment
)

var kindNames = map[Kind]string{
	KindOther:        "other",
	KindFile:         "file",
	KindStatement:    "statement",
	KindSelectClause: "select_clause",
	KindFromClause:   "from_clause",
	KindSelectTarget: "select_target_element",
	KindWildcard:     "wildcard_expression",
	KindColumnRef:    "column_reference",
	KindExpression:   "expression",
	KindKeyword:      "keyword",
	KindIdent:        "identifier",
	KindLiteral:      "literal",
	KindOperator:     "operator",
	KindComma:        "comma",
	KindDot:          "dot",
	KindLParen:       "start_bracket",
	KindRParen:       "end_bracket",
	KindSemicolon:    "semicolon",
	KindWhitespace:   "whitespace",
	KindNewline:      "newline",
	KindComment:      "comment",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "other"
}
