// Package audit exposes the admin change history.
package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vault-backend/internal/domain"
	"github.com/heartmarshall/vault-backend/pkg/ctxutil"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type auditRepo interface {
	ListByEntity(ctx context.Context, entity domain.AuditEntity, id uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

// Service reads the audit log.
type Service struct {
	log   *slog.Logger
	audit auditRepo
}

// NewService creates a new audit service instance.
func NewService(logger *slog.Logger, audit auditRepo) *Service {
	return &Service{
		log:   logger.With("service", "audit"),
		audit: audit,
	}
}

// HistoryInput selects one entity's history. A zero Limit uses DefaultLimit.
type HistoryInput struct {
	EntityType domain.AuditEntity
	EntityID   uuid.UUID
	Limit      int
}

// Validate checks the entity type and the limit bounds.
func (i HistoryInput) Validate() error {
	var errs []domain.FieldError
	if !i.EntityType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "entity_type", Message: "unknown entity type"})
	}
	if i.Limit < 0 || i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 0 and %d", MaxLimit)})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListHistory returns the changes made to an entity, newest first (admin only).
func (s *Service) ListHistory(ctx context.Context, input HistoryInput) ([]domain.AuditRecord, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	records, err := s.audit.ListByEntity(ctx, input.EntityType, input.EntityID, limit)
	if err != nil {
		return nil, fmt.Errorf("audit.ListHistory: %w", err)
	}
	return records, nil
}
