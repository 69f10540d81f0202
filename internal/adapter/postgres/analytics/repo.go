// Package analytics implements the read-only aggregate queries behind Wrapped.
// Every method takes a [from, to) instant range; callers derive it from the
// calendar year in the user's timezone.
package analytics

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/vault-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vault-backend/internal/domain"
)

// Repo runs Wrapped aggregates against PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new analytics repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func inRange(from, to time.Time) sq.And {
	return sq.And{sq.GtOrEq{"e.created_at": from}, sq.Lt{"e.created_at": to}}
}

type totalsRow struct {
	Words   int `db:"words"`
	Entries int `db:"entries"`
}

type pairedRow struct {
	PromptID   uuid.UUID `db:"prompt_id"`
	UserA      uuid.UUID `db:"user_a"`
	UserB      uuid.UUID `db:"user_b"`
	Text       string    `db:"text"`
	Category   string    `db:"category"`
	ActiveDate time.Time `db:"active_date"`
	WordsA     int       `db:"words_a"`
	WordsB     int       `db:"words_b"`
	SentimentA *float64  `db:"sentiment_a"`
	SentimentB *float64  `db:"sentiment_b"`
}

// ---------------------------------------------------------------------------
// User level
// ---------------------------------------------------------------------------

// UserTotals returns the summed word_count and entry count of the user.
func (r *Repo) UserTotals(ctx context.Context, userID uuid.UUID, from, to time.Time) (domain.UserTotals, error) {
	query, args, err := postgres.Build("user totals", postgres.Builder.
		Select("COALESCE(SUM(e.word_count), 0) AS words", "count(*) AS entries").
		From("entries e").
		Where(sq.Eq{"e.user_id": userID}).
		Where(inRange(from, to)))
	if err != nil {
		return domain.UserTotals{}, err
	}

	var row totalsRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return domain.UserTotals{}, postgres.MapError(err, "user totals", userID)
	}
	return domain.UserTotals{Words: row.Words, Entries: row.Entries}, nil
}

// UserCategoryCounts returns entry counts per prompt category, unordered.
// Categories without entries are absent.
func (r *Repo) UserCategoryCounts(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.CategoryCount, error) {
	return r.categoryCounts(ctx, sq.Eq{"e.user_id": userID}, from, to, userID)
}

// UserMonthlyCounts returns entry counts keyed by month of created_at in tz.
// Months without entries are absent.
func (r *Repo) UserMonthlyCounts(ctx context.Context, userID uuid.UUID, from, to time.Time, tz string) (map[time.Month]int, error) {
	query, args, err := postgres.Build("user monthly counts", postgres.Builder.
		Select().
		Column(sq.Expr("EXTRACT(MONTH FROM e.created_at AT TIME ZONE ?)::int AS month", tz)).
		Column("count(*) AS count").
		From("entries e").
		Where(sq.Eq{"e.user_id": userID}).
		Where(inRange(from, to)).
		GroupBy("month"))
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Month int `db:"month"`
		Count int `db:"count"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "user monthly counts", userID)
	}

	out := make(map[time.Month]int, len(rows))
	for _, row := range rows {
		out[time.Month(row.Month)] = row.Count
	}
	return out, nil
}

// LongestEntry returns the user's entry with the highest word count, or nil.
func (r *Repo) LongestEntry(ctx context.Context, userID uuid.UUID, from, to time.Time) (*domain.Entry, error) {
	query, args, err := postgres.Build("longest entry", postgres.Builder.
		Select("e.id", "e.prompt_id", "e.couple_id", "e.text_content", "e.word_count", "e.location_tag", "e.created_at",
			"p.text AS prompt_text", "p.category AS prompt_category", "p.active_date AS prompt_active_date").
		From("entries e").
		Join("prompts p ON p.id = e.prompt_id").
		Where(sq.Eq{"e.user_id": userID}).
		Where(inRange(from, to)).
		OrderBy("e.word_count DESC", "e.created_at").
		Limit(1))
	if err != nil {
		return nil, err
	}

	var rows []longestRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "longest entry", userID)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	row := rows[0]
	return &domain.Entry{
		ID:          row.ID,
		UserID:      userID,
		PromptID:    row.PromptID,
		CoupleID:    row.CoupleID,
		TextContent: row.TextContent,
		WordCount:   row.WordCount,
		LocationTag: row.LocationTag,
		CreatedAt:   row.CreatedAt,
		Prompt: &domain.Prompt{
			ID:         row.PromptID,
			Text:       row.PromptText,
			Category:   domain.PromptCategory(row.PromptCategory),
			ActiveDate: row.PromptActiveDate,
		},
	}, nil
}

// ---------------------------------------------------------------------------
// Couple level
// ---------------------------------------------------------------------------

// CoupleWords returns the summed word_count of both members inside the couple.
func (r *Repo) CoupleWords(ctx context.Context, coupleID uuid.UUID, from, to time.Time) (int, error) {
	query, args, err := postgres.Build("couple words", postgres.Builder.
		Select("COALESCE(SUM(e.word_count), 0)").
		From("entries e").
		Where(sq.Eq{"e.couple_id": coupleID}).
		Where(inRange(from, to)))
	if err != nil {
		return 0, err
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "couple words", coupleID)
	}
	return n, nil
}

// CoupleCategoryCounts returns combined entry counts per category, unordered.
func (r *Repo) CoupleCategoryCounts(ctx context.Context, coupleID uuid.UUID, from, to time.Time) ([]domain.CategoryCount, error) {
	return r.categoryCounts(ctx, sq.Eq{"e.couple_id": coupleID}, from, to, coupleID)
}

// PairedPrompts returns the prompts both members answered within the range.
func (r *Repo) PairedPrompts(ctx context.Context, coupleID uuid.UUID, from, to time.Time) ([]domain.PairedPrompt, error) {
	query, args, err := postgres.Build("paired prompts", postgres.Builder.
		Select("p.id AS prompt_id", "p.text", "p.category", "p.active_date",
			"a.user_id AS user_a", "b.user_id AS user_b",
			"a.word_count AS words_a", "b.word_count AS words_b",
			"a.sentiment_score AS sentiment_a", "b.sentiment_score AS sentiment_b").
		From("entries a").
		Join("entries b ON b.prompt_id = a.prompt_id AND b.couple_id = a.couple_id AND b.user_id > a.user_id").
		Join("prompts p ON p.id = a.prompt_id").
		Where(sq.Eq{"a.couple_id": coupleID}).
		Where(sq.And{sq.GtOrEq{"a.created_at": from}, sq.Lt{"a.created_at": to}}).
		Where(sq.And{sq.GtOrEq{"b.created_at": from}, sq.Lt{"b.created_at": to}}).
		OrderBy("p.active_date"))
	if err != nil {
		return nil, err
	}

	var rows []pairedRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "paired prompts", coupleID)
	}

	out := make([]domain.PairedPrompt, len(rows))
	for i, row := range rows {
		out[i] = domain.PairedPrompt{
			Prompt: domain.Prompt{
				ID:         row.PromptID,
				Text:       row.Text,
				Category:   domain.PromptCategory(row.Category),
				ActiveDate: row.ActiveDate,
			},
			UserA:      row.UserA,
			UserB:      row.UserB,
			WordsA:     row.WordsA,
			WordsB:     row.WordsB,
			SentimentA: row.SentimentA,
			SentimentB: row.SentimentB,
		}
	}
	return out, nil
}

// AverageSentiment returns the mean sentiment of both members, nil when no
// entry carries a score.
func (r *Repo) AverageSentiment(ctx context.Context, coupleID uuid.UUID, from, to time.Time) (*float64, error) {
	query, args, err := postgres.Build("average sentiment", postgres.Builder.
		Select("AVG(e.sentiment_score)").
		From("entries e").
		Where(sq.Eq{"e.couple_id": coupleID}).
		Where(sq.NotEq{"e.sentiment_score": nil}).
		Where(inRange(from, to)))
	if err != nil {
		return nil, err
	}

	var avg *float64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&avg); err != nil {
		return nil, postgres.MapError(err, "average sentiment", coupleID)
	}
	return avg, nil
}

// CoupleMonthlySentiment returns the average sentiment of both members keyed
// by month of created_at in tz. Months without scored entries are absent.
func (r *Repo) CoupleMonthlySentiment(ctx context.Context, coupleID uuid.UUID, from, to time.Time, tz string) (map[time.Month]float64, error) {
	query, args, err := postgres.Build("couple monthly sentiment", postgres.Builder.
		Select().
		Column(sq.Expr("EXTRACT(MONTH FROM e.created_at AT TIME ZONE ?)::int AS month", tz)).
		Column("AVG(e.sentiment_score) AS score").
		From("entries e").
		Where(sq.Eq{"e.couple_id": coupleID}).
		Where(sq.NotEq{"e.sentiment_score": nil}).
		Where(inRange(from, to)).
		GroupBy("month"))
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Month int     `db:"month"`
		Score float64 `db:"score"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "couple monthly sentiment", coupleID)
	}

	out := make(map[time.Month]float64, len(rows))
	for _, row := range rows {
		out[time.Month(row.Month)] = row.Score
	}
	return out, nil
}

// LocationCounts returns entry counts per non-empty location tag, most used first.
func (r *Repo) LocationCounts(ctx context.Context, coupleID uuid.UUID, from, to time.Time) ([]domain.LocationCount, error) {
	query, args, err := postgres.Build("location counts", postgres.Builder.
		Select("e.location_tag AS tag", "count(*) AS count").
		From("entries e").
		Where(sq.Eq{"e.couple_id": coupleID}).
		Where(sq.NotEq{"e.location_tag": ""}).
		Where(inRange(from, to)).
		GroupBy("e.location_tag").
		OrderBy("count DESC", "tag"))
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Tag   string `db:"tag"`
		Count int    `db:"count"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "location counts", coupleID)
	}

	out := make([]domain.LocationCount, len(rows))
	for i, row := range rows {
		out[i] = domain.LocationCount{Tag: row.Tag, Count: row.Count}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) categoryCounts(ctx context.Context, scope sq.Eq, from, to time.Time, key any) ([]domain.CategoryCount, error) {
	query, args, err := postgres.Build("category counts", postgres.Builder.
		Select("p.category AS category", "count(*) AS count").
		From("entries e").
		Join("prompts p ON p.id = e.prompt_id").
		Where(scope).
		Where(inRange(from, to)).
		GroupBy("p.category"))
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Category string `db:"category"`
		Count    int    `db:"count"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "category counts", key)
	}

	out := make([]domain.CategoryCount, len(rows))
	for i, row := range rows {
		out[i] = domain.CategoryCount{Category: domain.PromptCategory(row.Category), Count: row.Count}
	}
	return out, nil
}

type longestRow struct {
	ID               uuid.UUID `db:"id"`
	PromptID         uuid.UUID `db:"prompt_id"`
	CoupleID         uuid.UUID `db:"couple_id"`
	TextContent      string    `db:"text_content"`
	WordCount        int       `db:"word_count"`
	LocationTag      string    `db:"location_tag"`
	CreatedAt        time.Time `db:"created_at"`
	PromptText       string    `db:"prompt_text"`
	PromptCategory   string    `db:"prompt_category"`
	PromptActiveDate time.Time `db:"prompt_active_date"`
}
