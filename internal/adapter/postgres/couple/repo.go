// Package couple implements the Couple (vault) repository using PostgreSQL,
// including the active-membership table that keeps a user in at most one
// active vault.
package couple

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

const (
	table            = "couples"
	membershipsTable = "active_memberships"

	membershipsPKey = "active_memberships_pkey"
)

var columns = []string{
	"c.id", "c.user1_id", "c.user2_id", "c.invite_code", "c.anniversary_date",
	"c.is_ended", "c.ended_date", "c.created_at",
}

// Repo provides couple persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new couple repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

func selectCouples() sq.SelectBuilder {
	return postgres.Builder.Select(columns...).From(table + " c")
}

// GetByID returns a couple by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Couple, error) {
	return r.getOne(ctx, "couple", selectCouples().Where(sq.Eq{"c.id": id}), id)
}

// GetByInviteCodeForUpdate returns the couple with the invite code and locks
// its row until the surrounding transaction ends.
func (r *Repo) GetByInviteCodeForUpdate(ctx context.Context, code string) (*domain.Couple, error) {
	b := selectCouples().Where(sq.Eq{"c.invite_code": code}).Suffix("FOR UPDATE")
	return r.getOne(ctx, "couple by invite code", b, code)
}

// GetActiveByUser returns the active couple the user belongs to.
func (r *Repo) GetActiveByUser(ctx context.Context, userID uuid.UUID) (*domain.Couple, error) {
	b := selectCouples().
		Join(membershipsTable + " m ON m.couple_id = c.id").
		Where(sq.Eq{"m.user_id": userID})
	return r.getOne(ctx, "active couple of user", b, userID)
}

// ListByUser returns every couple the user was ever part of, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Couple, error) {
	query, args, err := postgres.Build("couples by user", selectCouples().
		Where(sq.Or{sq.Eq{"c.user1_id": userID}, sq.Eq{"c.user2_id": userID}}).
		OrderBy("c.created_at DESC", "c.id"))
	if err != nil {
		return nil, err
	}

	var rows []coupleRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "couples of user", userID)
	}

	out := make([]domain.Couple, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

func (r *Repo) getOne(ctx context.Context, entity string, b sq.SelectBuilder, key any) (*domain.Couple, error) {
	query, args, err := postgres.Build(entity, b)
	if err != nil {
		return nil, err
	}

	var row coupleRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, key)
	}

	c := row.toDomain()
	return &c, nil
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

// Create inserts a new, unpaired couple.
func (r *Repo) Create(ctx context.Context, c *domain.Couple) (*domain.Couple, error) {
	query, args, err := postgres.Build("create couple", postgres.Builder.
		Insert(table).
		Columns("id", "user1_id", "user2_id", "invite_code", "anniversary_date", "is_ended", "ended_date", "created_at").
		Values(c.ID, c.User1ID, c.User2ID, c.InviteCode, c.AnniversaryDate, c.IsEnded, c.EndedDate, c.CreatedAt).
		Suffix("RETURNING "+returning()))
	if err != nil {
		return nil, err
	}

	var row coupleRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "couple", c.ID)
	}

	result := row.toDomain()
	return &result, nil
}

// SetPartner fills the second seat of an active couple. It fails with
// domain.ErrConflict when the seat is already taken or the couple has ended.
func (r *Repo) SetPartner(ctx context.Context, id, userID uuid.UUID) (*domain.Couple, error) {
	query, args, err := postgres.Build("set partner", postgres.Builder.
		Update(table).
		Set("user2_id", userID).
		Where(sq.Eq{"id": id, "user2_id": nil, "is_ended": false}).
		Suffix("RETURNING "+returning()))
	if err != nil {
		return nil, err
	}

	rows, err := r.scanMany(ctx, query, args)
	if err != nil {
		return nil, postgres.MapError(err, "couple", id)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("couple %s: seat taken: %w", id, domain.ErrConflict)
	}

	c := rows[0].toDomain()
	return &c, nil
}

// UpdateAnniversary sets or clears the anniversary date.
func (r *Repo) UpdateAnniversary(ctx context.Context, id uuid.UUID, date *time.Time) (*domain.Couple, error) {
	query, args, err := postgres.Build("update anniversary", postgres.Builder.
		Update(table).
		Set("anniversary_date", date).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING "+returning()))
	if err != nil {
		return nil, err
	}

	var row coupleRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "couple", id)
	}

	c := row.toDomain()
	return &c, nil
}

// End marks the couple as ended on the given date. Ending twice is rejected
// with domain.ErrVaultEnded.
func (r *Repo) End(ctx context.Context, id uuid.UUID, endedDate time.Time) (*domain.Couple, error) {
	query, args, err := postgres.Build("end couple", postgres.Builder.
		Update(table).
		Set("is_ended", true).
		Set("ended_date", endedDate).
		Where(sq.Eq{"id": id, "is_ended": false}).
		Suffix("RETURNING "+returning()))
	if err != nil {
		return nil, err
	}

	rows, err := r.scanMany(ctx, query, args)
	if err != nil {
		return nil, postgres.MapError(err, "couple", id)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("couple %s: %w", id, domain.ErrVaultEnded)
	}

	c := rows[0].toDomain()
	return &c, nil
}

// ---------------------------------------------------------------------------
// Active memberships
// ---------------------------------------------------------------------------

// AddMembership records userID as an active member of coupleID. A user who is
// already in an active couple yields domain.ErrConflict.
func (r *Repo) AddMembership(ctx context.Context, userID, coupleID uuid.UUID) error {
	query, args, err := postgres.Build("add membership", postgres.Builder.
		Insert(membershipsTable).
		Columns("user_id", "couple_id").
		Values(userID, coupleID))
	if err != nil {
		return err
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		if postgres.IsUniqueViolation(err, membershipsPKey) {
			return fmt.Errorf("user %s already in an active vault: %w", userID, domain.ErrConflict)
		}
		return postgres.MapError(err, "membership", userID)
	}
	return nil
}

// ReleaseMemberships removes every active membership of the couple.
func (r *Repo) ReleaseMemberships(ctx context.Context, coupleID uuid.UUID) error {
	query, args, err := postgres.Build("release memberships", postgres.Builder.
		Delete(membershipsTable).
		Where(sq.Eq{"couple_id": coupleID}))
	if err != nil {
		return err
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "memberships of couple", coupleID)
	}
	return nil
}

func (r *Repo) scanMany(ctx context.Context, query string, args []any) ([]coupleRow, error) {
	var rows []coupleRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type coupleRow struct {
	ID              uuid.UUID  `db:"id"`
	User1ID         uuid.UUID  `db:"user1_id"`
	User2ID         *uuid.UUID `db:"user2_id"`
	InviteCode      string     `db:"invite_code"`
	AnniversaryDate *time.Time `db:"anniversary_date"`
	IsEnded         bool       `db:"is_ended"`
	EndedDate       *time.Time `db:"ended_date"`
	CreatedAt       time.Time  `db:"created_at"`
}

func (row coupleRow) toDomain() domain.Couple {
	return domain.Couple{
		ID:              row.ID,
		User1ID:         row.User1ID,
		User2ID:         row.User2ID,
		InviteCode:      row.InviteCode,
		AnniversaryDate: row.AnniversaryDate,
		IsEnded:         row.IsEnded,
		EndedDate:       row.EndedDate,
		CreatedAt:       row.CreatedAt,
	}
}

// returning lists the columns without the "c." alias used by SELECTs.
func returning() string {
	cols := make([]string, len(columns))
	for i, c := range columns {
		cols[i] = strings.TrimPrefix(c, "c.")
	}
	return strings.Join(cols, ", ")
}
