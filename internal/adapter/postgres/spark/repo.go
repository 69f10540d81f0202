// Package spark implements the Spark card repository using PostgreSQL.
package spark

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/vault-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vault-backend/internal/domain"
)

const table = "sparks"

var columns = []string{"id", "text", "category", "option_b", "vibe", "subtitle", "created_at"}

// Repo provides spark persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new spark repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// CountByCategory returns the number of sparks per category present in the table.
func (r *Repo) CountByCategory(ctx context.Context) (map[domain.SparkCategory]int, error) {
	query, args, err := postgres.Build("count sparks", postgres.Builder.
		Select("category", "count(*) AS count").
		From(table).
		GroupBy("category"))
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Category string `db:"category"`
		Count    int    `db:"count"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "sparks", "by category")
	}

	out := make(map[domain.SparkCategory]int, len(rows))
	for _, row := range rows {
		out[domain.SparkCategory(row.Category)] = row.Count
	}
	return out, nil
}

// Random returns a random spark of the category, optionally filtered by vibe.
func (r *Repo) Random(ctx context.Context, category domain.SparkCategory, vibe *domain.PromptCategory) (*domain.Spark, error) {
	b := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"category": string(category)}).
		OrderBy("random()").
		Limit(1)
	if vibe != nil {
		b = b.Where(sq.Eq{"vibe": string(*vibe)})
	}

	query, args, err := postgres.Build("random spark", b)
	if err != nil {
		return nil, err
	}

	var row sparkRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "spark", category)
	}

	s := row.toDomain()
	return &s, nil
}

// CreateMany inserts sparks, skipping texts already present in their
// category. Returns the number inserted.
func (r *Repo) CreateMany(ctx context.Context, sparks []domain.Spark) (int, error) {
	if len(sparks) == 0 {
		return 0, nil
	}

	b := postgres.Builder.Insert(table).Columns(columns...).Suffix("ON CONFLICT (category, text) DO NOTHING")
	for _, s := range sparks {
		b = b.Values(s.ID, s.Text, string(s.Category), s.OptionB, string(s.Vibe), s.Subtitle, s.CreatedAt)
	}

	query, args, err := postgres.Build("create sparks", b)
	if err != nil {
		return 0, err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "sparks", len(sparks))
	}
	return int(tag.RowsAffected()), nil
}

// DeleteAll removes every spark and returns the count.
func (r *Repo) DeleteAll(ctx context.Context) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
	if err != nil {
		return 0, postgres.MapError(err, "sparks", "all")
	}
	return int(tag.RowsAffected()), nil
}

type sparkRow struct {
	ID        uuid.UUID `db:"id"`
	Text      string    `db:"text"`
	Category  string    `db:"category"`
	OptionB   string    `db:"option_b"`
	Vibe      string    `db:"vibe"`
	Subtitle  string    `db:"subtitle"`
	CreatedAt time.Time `db:"created_at"`
}

func (row sparkRow) toDomain() domain.Spark {
	return domain.Spark{
		ID:        row.ID,
		Text:      row.Text,
		Category:  domain.SparkCategory(row.Category),
		OptionB:   row.OptionB,
		Vibe:      domain.PromptCategory(row.Vibe),
		Subtitle:  row.Subtitle,
		CreatedAt: row.CreatedAt,
	}
}
