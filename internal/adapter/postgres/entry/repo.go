// Package entry implements the journal Entry repository using PostgreSQL.
package entry

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

const (
	table = "entries"

	userPromptKey = "entries_user_prompt_key"
)

var insertColumns = []string{
	"id", "user_id", "prompt_id", "couple_id", "text_content", "photo_ref",
	"word_count", "sentiment_score", "location_tag", "created_at", "updated_at",
}

// selectColumns returns entry columns plus the joined prompt.
var selectColumns = []string{
	"e.id", "e.user_id", "e.prompt_id", "e.couple_id", "e.text_content", "e.photo_ref",
	"e.word_count", "e.sentiment_score", "e.location_tag", "e.created_at", "e.updated_at",
	"p.text AS prompt_text", "p.category AS prompt_category", "p.active_date AS prompt_active_date",
	"p.created_at AS prompt_created_at", "p.updated_at AS prompt_updated_at",
}

// Repo provides entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func selectEntries() sq.SelectBuilder {
	return postgres.Builder.Select(selectColumns...).
		From(table + " e").
		Join("prompts p ON p.id = e.prompt_id")
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// GetByID returns an entry with its prompt.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	return r.getOne(ctx, selectEntries().Where(sq.Eq{"e.id": id}), id)
}

// GetByUserAndPrompt returns the user's answer to the prompt.
func (r *Repo) GetByUserAndPrompt(ctx context.Context, userID, promptID uuid.UUID) (*domain.Entry, error) {
	b := selectEntries().Where(sq.Eq{"e.user_id": userID, "e.prompt_id": promptID})
	return r.getOne(ctx, b, promptID)
}

// GetPartnerEntry returns the answer another member of the couple gave to the prompt.
func (r *Repo) GetPartnerEntry(ctx context.Context, coupleID, promptID, userID uuid.UUID) (*domain.Entry, error) {
	b := selectEntries().
		Where(sq.Eq{"e.couple_id": coupleID, "e.prompt_id": promptID}).
		Where(sq.NotEq{"e.user_id": userID})
	return r.getOne(ctx, b, promptID)
}

// ListByUser returns the user's entries, newest prompt date first. A non-nil
// coupleID restricts the list to that vault.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, coupleID *uuid.UUID) ([]domain.Entry, error) {
	b := selectEntries().
		Where(sq.Eq{"e.user_id": userID}).
		OrderBy("p.active_date DESC", "e.created_at DESC")
	if coupleID != nil {
		b = b.Where(sq.Eq{"e.couple_id": *coupleID})
	}
	return r.list(ctx, b, userID)
}

// ListPartnerEntries returns the answers other members of the couple gave to
// the prompts, keyed by prompt id.
func (r *Repo) ListPartnerEntries(ctx context.Context, coupleID, userID uuid.UUID, promptIDs []uuid.UUID) (map[uuid.UUID]domain.Entry, error) {
	out := make(map[uuid.UUID]domain.Entry, len(promptIDs))
	if len(promptIDs) == 0 {
		return out, nil
	}

	entries, err := r.list(ctx, selectEntries().
		Where(sq.Eq{"e.couple_id": coupleID, "e.prompt_id": promptIDs}).
		Where(sq.NotEq{"e.user_id": userID}), coupleID)
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		out[e.PromptID] = e
	}
	return out, nil
}

func (r *Repo) getOne(ctx context.Context, b sq.SelectBuilder, key any) (*domain.Entry, error) {
	query, args, err := postgres.Build("entry", b)
	if err != nil {
		return nil, err
	}

	var row entryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "entry", key)
	}

	e := row.toDomain()
	return &e, nil
}

func (r *Repo) list(ctx context.Context, b sq.SelectBuilder, key any) ([]domain.Entry, error) {
	query, args, err := postgres.Build("entries", b)
	if err != nil {
		return nil, err
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "entries", key)
	}

	out := make([]domain.Entry, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

// Create inserts an entry. The UNIQUE (user_id, prompt_id) constraint is the
// only arbiter between concurrent submits: the loser gets domain.ErrDuplicateEntry.
func (r *Repo) Create(ctx context.Context, e *domain.Entry) error {
	query, args, err := postgres.Build("create entry", postgres.Builder.
		Insert(table).
		Columns(insertColumns...).
		Values(e.ID, e.UserID, e.PromptID, e.CoupleID, e.TextContent, e.PhotoRef,
			e.WordCount, e.SentimentScore, e.LocationTag, e.CreatedAt, e.UpdatedAt))
	if err != nil {
		return err
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		if postgres.IsUniqueViolation(err, userPromptKey) {
			return fmt.Errorf("entry of user %s for prompt %s: %w", e.UserID, e.PromptID, domain.ErrDuplicateEntry)
		}
		return postgres.MapError(err, "entry", e.ID)
	}
	return nil
}

// partnerAbsent holds while no other member of the couple answered the
// entry's prompt.
var partnerAbsent = sq.Expr(`NOT EXISTS (
	SELECT 1 FROM entries p
	WHERE p.couple_id = entries.couple_id
	  AND p.prompt_id = entries.prompt_id
	  AND p.user_id <> entries.user_id)`)

// UpdateContent rewrites text, word count, photo and location of an entry.
// The row is only touched while the partner has not answered the same prompt;
// once they have, the entry is revealed and the call fails with ErrConflict.
func (r *Repo) UpdateContent(ctx context.Context, e *domain.Entry) error {
	query, args, err := postgres.Build("update entry", postgres.Builder.
		Update(table).
		Set("text_content", e.TextContent).
		Set("word_count", e.WordCount).
		Set("photo_ref", e.PhotoRef).
		Set("location_tag", e.LocationTag).
		Set("updated_at", e.UpdatedAt).
		Where(sq.Eq{"id": e.ID}).
		Where(partnerAbsent))
	if err != nil {
		return err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "entry", e.ID)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	found, err := r.exists(ctx, e.ID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("entry %s: %w", e.ID, domain.ErrNotFound)
	}
	return fmt.Errorf("entry %s: already revealed: %w", e.ID, domain.ErrConflict)
}

func (r *Repo) exists(ctx context.Context, id uuid.UUID) (bool, error) {
	query, args, err := postgres.Build("entry exists", postgres.Builder.
		Select().
		Column(sq.Expr("EXISTS (SELECT 1 FROM entries WHERE id = ?)", id)))
	if err != nil {
		return false, err
	}

	var found bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&found); err != nil {
		return false, postgres.MapError(err, "entry", id)
	}
	return found, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type entryRow struct {
	ID             uuid.UUID `db:"id"`
	UserID         uuid.UUID `db:"user_id"`
	PromptID       uuid.UUID `db:"prompt_id"`
	CoupleID       uuid.UUID `db:"couple_id"`
	TextContent    string    `db:"text_content"`
	PhotoRef       *string   `db:"photo_ref"`
	WordCount      int       `db:"word_count"`
	SentimentScore *float64  `db:"sentiment_score"`
	LocationTag    string    `db:"location_tag"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`

	PromptText       string    `db:"prompt_text"`
	PromptCategory   string    `db:"prompt_category"`
	PromptActiveDate time.Time `db:"prompt_active_date"`
	PromptCreatedAt  time.Time `db:"prompt_created_at"`
	PromptUpdatedAt  time.Time `db:"prompt_updated_at"`
}

func (row entryRow) toDomain() domain.Entry {
	return domain.Entry{
		ID:             row.ID,
		UserID:         row.UserID,
		PromptID:       row.PromptID,
		CoupleID:       row.CoupleID,
		TextContent:    row.TextContent,
		PhotoRef:       row.PhotoRef,
		WordCount:      row.WordCount,
		SentimentScore: row.SentimentScore,
		LocationTag:    row.LocationTag,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
		Prompt: &domain.Prompt{
			ID:         row.PromptID,
			Text:       row.PromptText,
			Category:   domain.PromptCategory(row.PromptCategory),
			ActiveDate: row.PromptActiveDate,
			CreatedAt:  row.PromptCreatedAt,
			UpdatedAt:  row.PromptUpdatedAt,
		},
	}
}
