package postgres

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Builder returns a squirrel statement builder using $N placeholders.
func Builder() sq.StatementBuilderType {
	return builder
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern turns s into an ILIKE pattern matching any value that
// contains s literally. LIKE metacharacters in s are escaped.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
