package postgres

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Builder is the squirrel statement builder with PostgreSQL placeholders.
// Every repository builds its SQL from it.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// SQLizer is satisfied by every squirrel builder.
type SQLizer interface {
	ToSql() (string, []any, error)
}

// Build renders a squirrel builder, wrapping the error with the query name.
func Build(name string, b SQLizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build %s query: %w", name, err)
	}
	return query, args, nil
}
