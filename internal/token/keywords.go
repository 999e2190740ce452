package token

import "strings"

var keywords = map[string]Kind{
	"SELECT":    KwSelect,
	"FROM":      KwFrom,
	"WHERE":     KwWhere,
	"AS":        KwAs,
	"DISTINCT":  KwDistinct,
	"ALL":       KwAll,
	"AND":       KwAnd,
	"OR":        KwOr,
	"NOT":       KwNot,
	"NULL":      KwNull,
	"TRUE":      KwTrue,
	"FALSE":     KwFalse,
	"CASE":      KwCase,
	"WHEN":      KwWhen,
	"THEN":      KwThen,
	"ELSE":      KwElse,
	"END":       KwEnd,
	"JOIN":      KwJoin,
	"INNER":     KwInner,
	"LEFT":      KwLeft,
	"RIGHT":     KwRight,
	"FULL":      KwFull,
	"OUTER":     KwOuter,
	"CROSS":     KwCross,
	"ON":        KwOn,
	"USING":     KwUsing,
	"GROUP":     KwGroup,
	"BY":        KwBy,
	"ORDER":     KwOrder,
	"HAVING":    KwHaving,
	"LIMIT":     KwLimit,
	"OFFSET":    KwOffset,
	"UNION":     KwUnion,
	"INTERSECT": KwIntersect,
	"EXCEPT":    KwExcept,
	"INSERT":    KwInsert,
	"INTO":      KwInto,
	"VALUES":    KwValues,
	"UPDATE":    KwUpdate,
	"SET":       KwSet,
	"DELETE":    KwDelete,
	"WITH":      KwWith,
	"IN":        KwIn,
	"IS":        KwIs,
	"LIKE":      KwLike,
	"BETWEEN":   KwBetween,
	"EXISTS":    KwExists,
	"ASC":       KwAsc,
	"DESC":      KwDesc,
}

// LookupKeyword returns the keyword kind for an identifier, if it is one.
// SQL keywords are case-insensitive: lookup is done on the upper-cased form.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[strings.ToUpper(ident)]
	return k, ok
}
