// Package prompt administers the daily prompt calendar.
package prompt

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vault-backend/internal/domain"
)

// promptRepo defines the prompt repository interface needed by prompt service.
type promptRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Prompt, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Prompt, error)
	Create(ctx context.Context, p *domain.Prompt) (*domain.Prompt, error)
	CreateMany(ctx context.Context, prompts []domain.Prompt) (int, error)
	Update(ctx context.Context, p *domain.Prompt) (*domain.Prompt, error)
	DeleteUnreferenced(ctx context.Context) (int, error)
}

// auditLogger records admin changes.
type auditLogger interface {
	Log(ctx context.Context, rec domain.AuditRecord) error
}

// txManager defines the transaction manager interface needed by prompt service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements prompt administration.
type Service struct {
	log     *slog.Logger
	prompts promptRepo
	audit   auditLogger
	tx      txManager
	now     func() time.Time
}

// NewService creates a new prompt service instance. A nil now uses time.Now.
func NewService(logger *slog.Logger, prompts promptRepo, audit auditLogger, tx txManager, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		log:     logger.With("service", "prompt"),
		prompts: prompts,
		audit:   audit,
		tx:      tx,
		now:     now,
	}
}

func (s *Service) record(ctx context.Context, actor, promptID uuid.UUID, action domain.AuditAction, changes map[string]any) error {
	return s.audit.Log(ctx, domain.AuditRecord{
		ID:         uuid.New(),
		ActorID:    actor,
		EntityType: domain.AuditEntityPrompt,
		EntityID:   promptID,
		Action:     action,
		Changes:    changes,
		CreatedAt:  s.now().UTC(),
	})
}

// toDate drops the time of day, keeping the calendar date as midnight UTC.
func toDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
