package token

// Kind represents the category of a SQL source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents a bare identifier.
	Ident
	// QuotedIdent represents a "double quoted" identifier.
	QuotedIdent
	// Number represents a numeric literal.
	Number
	// String represents a 'single quoted' string literal.
	String
	// Placeholder represents a bind placeholder (?, $1, :name).
	Placeholder

	// KwSelect represents the SELECT keyword.
	KwSelect // SELECT
	// KwFrom represents the FROM keyword.
	KwFrom // FROM
	// KwWhere represents the WHERE keyword.
	KwWhere // WHERE
	// KwAs represents the AS keyword.
	KwAs // AS
	// KwDistinct represents the DISTINCT keyword.
	KwDistinct // DISTINCT
	// KwAll represents the ALL keyword.
	KwAll // ALL
	// KwAnd represents the AND keyword.
	KwAnd // AND
	// KwOr represents the OR keyword.
	KwOr // OR
	// KwNot represents the NOT keyword.
	KwNot // NOT
	// KwNull represents the NULL keyword.
	KwNull // NULL
	// KwTrue represents the TRUE keyword.
	KwTrue // TRUE
	// KwFalse represents the FALSE keyword.
	KwFalse // FALSE
	// KwCase represents the CASE keyword.
	KwCase // CASE
	// KwWhen represents the WHEN keyword.
	KwWhen // WHEN
	// KwThen represents the THEN keyword.
	KwThen // THEN
	// KwElse represents the ELSE keyword.
	KwElse // ELSE
	// KwEnd represents the END keyword.
	KwEnd // END
	// KwJoin represents the JOIN keyword.
	KwJoin // JOIN
	// KwInner represents the INNER keyword.
	KwInner // INNER
	// KwLeft represents the LEFT keyword.
	KwLeft // LEFT
	// KwRight represents the RIGHT keyword.
	KwRight // RIGHT
	// KwFull represents the FULL keyword.
	KwFull // FULL
	// KwOuter represents the OUTER keyword.
	KwOuter // OUTER
	// KwCross represents the CROSS keyword.
	KwCross // CROSS
	// KwOn represents the ON keyword.
	KwOn // ON
	// KwUsing represents the USING keyword.
	KwUsing // USING
	// KwGroup represents the GROUP keyword.
	KwGroup // GROUP
	// KwBy represents the BY keyword.
	KwBy // BY
	// KwOrder represents the ORDER keyword.
	KwOrder // ORDER
	// KwHaving represents the HAVING keyword.
	KwHaving // HAVING
	// KwLimit represents the LIMIT keyword.
	KwLimit // LIMIT
	// KwOffset represents the OFFSET keyword.
	KwOffset // OFFSET
	// KwUnion represents the UNION keyword.
	KwUnion // UNION
	// KwIntersect represents the INTERSECT keyword.
	KwIntersect // INTERSECT
	// KwExcept represents the EXCEPT keyword.
	KwExcept // EXCEPT
	// KwInsert represents the INSERT keyword.
	KwInsert // INSERT
	// KwInto represents the INTO keyword.
	KwInto // INTO
	// KwValues represents the VALUES keyword.
	KwValues // VALUES
	// KwUpdate represents the UPDATE keyword.
	KwUpdate // UPDATE
	// KwSet represents the SET keyword.
	KwSet // SET
	// KwDelete represents the DELETE keyword.
	KwDelete // DELETE
	// KwWith represents the WITH keyword.
	KwWith // WITH
	// KwIn represents the IN keyword.
	KwIn // IN
	// KwIs represents the IS keyword.
	KwIs // IS
	// KwLike represents the LIKE keyword.
	KwLike // LIKE
	// KwBetween represents the BETWEEN keyword.
	KwBetween // BETWEEN
	// KwExists represents the EXISTS keyword.
	KwExists // EXISTS
	// KwAsc represents the ASC keyword.
	KwAsc // ASC
	// KwDesc represents the DESC keyword.
	KwDesc // DESC

	// Comma represents ','.
	Comma // ,
	// Dot represents '.'.
	Dot // .
	// Star represents '*'.
	Star // *
	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// Semicolon represents ';'.
	Semicolon // ;
	// Plus represents '+'.
	Plus // +
	// Minus represents '-'.
	Minus // -
	// Slash represents '/'.
	Slash // /
	// Percent represents '%'.
	Percent // %
	// Eq represents '='.
	Eq // =
	// Lt represents '<'.
	Lt // <
	// LtEq represents '<='.
	LtEq // <=
	// Gt represents '>'.
	Gt // >
	// GtEq represents '>='.
	GtEq // >=
	// NotEq represents '<>' or '!='.
	NotEq // <>
	// Concat represents '||'.
	Concat // ||
	// DoubleColon represents '::' (cast).
	DoubleColon // ::
	// Colon represents ':'.
	Colon // :
)

var kindNames = map[Kind]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Ident:       "Ident",
	QuotedIdent: "QuotedIdent",
	Number:      "Number",
	String:      "String",
	Placeholder: "Placeholder",
	KwSelect:    "SELECT",
	KwFrom:      "FROM",
	KwWhere:     "WHERE",
	KwAs:        "AS",
	KwDistinct:  "DISTINCT",
	KwAll:       "ALL",
	KwAnd:       "AND",
	KwOr:        "OR",
	KwNot:       "NOT",
	KwNull:      "NULL",
	KwTrue:      "TRUE",
	KwFalse:     "FALSE",
	KwCase:      "CASE",
	KwWhen:      "WHEN",
	KwThen:      "THEN",
	KwElse:      "ELSE",
	KwEnd:       "END",
	KwJoin:      "JOIN",
	KwInner:     "INNER",
	KwLeft:      "LEFT",
	KwRight:     "RIGHT",
	KwFull:      "FULL",
	KwOuter:     "OUTER",
	KwCross:     "CROSS",
	KwOn:        "ON",
	KwUsing:     "USING",
	KwGroup:     "GROUP",
	KwBy:        "BY",
	KwOrder:     "ORDER",
	KwHaving:    "HAVING",
	KwLimit:     "LIMIT",
	KwOffset:    "OFFSET",
	KwUnion:     "UNION",
	KwIntersect: "INTERSECT",
	KwExcept:    "EXCEPT",
	KwInsert:    "INSERT",
	KwInto:      "INTO",
	KwValues:    "VALUES",
	KwUpdate:    "UPDATE",
	KwSet:       "SET",
	KwDelete:    "DELETE",
	KwWith:      "WITH",
	KwIn:        "IN",
	KwIs:        "IS",
	KwLike:      "LIKE",
	KwBetween:   "BETWEEN",
	KwExists:    "EXISTS",
	KwAsc:       "ASC",
	KwDesc:      "DESC",
	Comma:       ",",
	Dot:         ".",
	Star:        "*",
	LParen:      "(",
	RParen:      ")",
	Semicolon:   ";",
	Plus:        "+",
	Minus:       "-",
	Slash:       "/",
	Percent:     "%",
	Eq:          "=",
	Lt:          "<",
	LtEq:        "<=",
	Gt:          ">",
	GtEq:        ">=",
	NotEq:       "<>",
	Concat:      "||",
	DoubleColon: "::",
	Colon:       ":",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
