// Package audit implements the append-only admin audit log using PostgreSQL.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/vault-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vault-backend/internal/domain"
)

const table = "audit_log"

var columns = []string{"id", "actor_id", "entity_type", "entity_id", "action", "changes", "created_at"}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Log appends a record. Inside a transaction the record commits or rolls
// back with the change it describes.
func (r *Repo) Log(ctx context.Context, rec domain.AuditRecord) error {
	changes := rec.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	raw, err := json.Marshal(changes)
	if err != nil {
		return fmt.Errorf("audit record %s marshal changes: %w", rec.ID, err)
	}

	query, args, err := postgres.Build("create audit record", postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(rec.ID, rec.ActorID, string(rec.EntityType), rec.EntityID, string(rec.Action), raw, rec.CreatedAt))
	if err != nil {
		return err
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "audit record", rec.ID)
	}
	return nil
}

// ListByEntity returns the change history of one entity, newest first.
func (r *Repo) ListByEntity(ctx context.Context, entity domain.AuditEntity, id uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	query, args, err := postgres.Build("audit records by entity", postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"entity_type": string(entity), "entity_id": id}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)))
	if err != nil {
		return nil, err
	}

	var rows []auditRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "audit records", id)
	}

	out := make([]domain.AuditRecord, len(rows))
	for i, row := range rows {
		rec, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out[i] = rec
	}
	return out, nil
}

type auditRow struct {
	ID         uuid.UUID `db:"id"`
	ActorID    uuid.UUID `db:"actor_id"`
	EntityType string    `db:"entity_type"`
	EntityID   uuid.UUID `db:"entity_id"`
	Action     string    `db:"action"`
	Changes    []byte    `db:"changes"`
	CreatedAt  time.Time `db:"created_at"`
}

func (row auditRow) toDomain() (domain.AuditRecord, error) {
	rec := domain.AuditRecord{
		ID:         row.ID,
		ActorID:    row.ActorID,
		EntityType: domain.AuditEntity(row.EntityType),
		EntityID:   row.EntityID,
		Action:     domain.AuditAction(row.Action),
		CreatedAt:  row.CreatedAt,
	}
	if len(row.Changes) > 0 {
		if err := json.Unmarshal(row.Changes, &rec.Changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit record %s unmarshal changes: %w", row.ID, err)
		}
	}
	return rec, nil
}
