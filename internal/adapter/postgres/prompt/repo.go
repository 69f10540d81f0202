// Package prompt implements the Prompt repository using PostgreSQL.
package prompt

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/vault-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vault-backend/internal/domain"
)

const table = "prompts"

var columns = []string{"id", "text", "category", "active_date", "created_at", "updated_at"}

// unreferenced matches prompts no entry points at yet.
var unreferenced = sq.Expr("NOT EXISTS (SELECT 1 FROM entries e WHERE e.prompt_id = prompts.id)")

// Repo provides prompt persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new prompt repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// GetByID returns a prompt by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Prompt, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id)
}

// GetByDate returns the prompt scheduled for the calendar date.
func (r *Repo) GetByDate(ctx context.Context, date time.Time) (*domain.Prompt, error) {
	return r.getOne(ctx, sq.Eq{"active_date": date}, date.Format(time.DateOnly))
}

// ListByDateRange returns prompts with from <= active_date <= to, oldest first.
func (r *Repo) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Prompt, error) {
	query, args, err := postgres.Build("prompts by range", postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.GtOrEq{"active_date": from}).
		Where(sq.LtOrEq{"active_date": to}).
		OrderBy("active_date"))
	if err != nil {
		return nil, err
	}

	var rows []promptRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "prompts", from.Format(time.DateOnly))
	}

	out := make([]domain.Prompt, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// CountByDateRange counts prompts with from <= active_date <= to.
func (r *Repo) CountByDateRange(ctx context.Context, from, to time.Time) (int, error) {
	query, args, err := postgres.Build("count prompts", postgres.Builder.
		Select("count(*)").
		From(table).
		Where(sq.GtOrEq{"active_date": from}).
		Where(sq.LtOrEq{"active_date": to}))
	if err != nil {
		return 0, err
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "prompts", from.Format(time.DateOnly))
	}
	return n, nil
}

func (r *Repo) getOne(ctx context.Context, where sq.Sqlizer, key any) (*domain.Prompt, error) {
	query, args, err := postgres.Build("prompt", postgres.Builder.Select(columns...).From(table).Where(where))
	if err != nil {
		return nil, err
	}

	var row promptRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "prompt", key)
	}

	p := row.toDomain()
	return &p, nil
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

// Create inserts a prompt. A second prompt on the same date yields
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p *domain.Prompt) (*domain.Prompt, error) {
	query, args, err := postgres.Build("create prompt", postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(p.ID, p.Text, string(p.Category), p.ActiveDate, p.CreatedAt, p.UpdatedAt).
		Suffix("RETURNING "+strings.Join(columns, ", ")))
	if err != nil {
		return nil, err
	}

	var row promptRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "prompt", p.ActiveDate.Format(time.DateOnly))
	}

	result := row.toDomain()
	return &result, nil
}

// CreateMany inserts prompts, skipping dates that already have one.
// Returns the number of inserted rows.
func (r *Repo) CreateMany(ctx context.Context, prompts []domain.Prompt) (int, error) {
	if len(prompts) == 0 {
		return 0, nil
	}

	b := postgres.Builder.Insert(table).Columns(columns...).Suffix("ON CONFLICT (active_date) DO NOTHING")
	for _, p := range prompts {
		b = b.Values(p.ID, p.Text, string(p.Category), p.ActiveDate, p.CreatedAt, p.UpdatedAt)
	}

	query, args, err := postgres.Build("create prompts", b)
	if err != nil {
		return 0, err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "prompts", len(prompts))
	}
	return int(tag.RowsAffected()), nil
}

// Update rewrites text, category and date of a prompt nobody answered yet.
// A referenced prompt yields domain.ErrConflict.
func (r *Repo) Update(ctx context.Context, p *domain.Prompt) (*domain.Prompt, error) {
	query, args, err := postgres.Build("update prompt", postgres.Builder.
		Update(table).
		Set("text", p.Text).
		Set("category", string(p.Category)).
		Set("active_date", p.ActiveDate).
		Set("updated_at", p.UpdatedAt).
		Where(sq.Eq{"id": p.ID}).
		Where(unreferenced).
		Suffix("RETURNING "+strings.Join(columns, ", ")))
	if err != nil {
		return nil, err
	}

	var rows []promptRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "prompt", p.ID)
	}
	if len(rows) == 1 {
		result := rows[0].toDomain()
		return &result, nil
	}

	// Nothing updated: either missing or already answered.
	if _, err := r.GetByID(ctx, p.ID); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("prompt %s has entries: %w", p.ID, domain.ErrConflict)
}

// DeleteUnreferenced removes every prompt without entries and returns the count.
func (r *Repo) DeleteUnreferenced(ctx context.Context) (int, error) {
	query, args, err := postgres.Build("delete prompts", postgres.Builder.Delete(table).Where(unreferenced))
	if err != nil {
		return 0, err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "prompts", "unreferenced")
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type promptRow struct {
	ID         uuid.UUID `db:"id"`
	Text       string    `db:"text"`
	Category   string    `db:"category"`
	ActiveDate time.Time `db:"active_date"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (row promptRow) toDomain() domain.Prompt {
	return domain.Prompt{
		ID:         row.ID,
		Text:       row.Text,
		Category:   domain.PromptCategory(row.Category),
		ActiveDate: row.ActiveDate,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
