// Package journal implements the daily prompt flow: today's view, submitting
// and editing answers, and browsing past entries.
package journal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vault-backend/internal/config"
	"github.com/heartmarshall/vault-backend/internal/domain"
)

// promptRepo defines the prompt repository interface needed by journal service.
type promptRepo interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.Prompt, error)
}

// entryRepo defines the entry repository interface needed by journal service.
type entryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	GetByUserAndPrompt(ctx context.Context, userID, promptID uuid.UUID) (*domain.Entry, error)
	GetPartnerEntry(ctx context.Context, coupleID, promptID, userID uuid.UUID) (*domain.Entry, error)
	ListByUser(ctx context.Context, userID uuid.UUID, coupleID *uuid.UUID) ([]domain.Entry, error)
	ListPartnerEntries(ctx context.Context, coupleID, userID uuid.UUID, promptIDs []uuid.UUID) (map[uuid.UUID]domain.Entry, error)
	Create(ctx context.Context, e *domain.Entry) error
	UpdateContent(ctx context.Context, e *domain.Entry) error
}

// coupleRepo defines the couple repository interface needed by journal service.
type coupleRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Couple, error)
	GetActiveByUser(ctx context.Context, userID uuid.UUID) (*domain.Couple, error)
}

// userRepo defines the user repository interface needed by journal service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service implements the journal operations.
type Service struct {
	log     *slog.Logger
	prompts promptRepo
	entries entryRepo
	couples coupleRepo
	users   userRepo
	cfg     config.JournalConfig
	now     func() time.Time
}

// NewService creates a new journal service instance. "Today" is derived from
// now in each requester's timezone; a nil now uses time.Now.
func NewService(
	logger *slog.Logger,
	prompts promptRepo,
	entries entryRepo,
	couples coupleRepo,
	users userRepo,
	cfg config.JournalConfig,
	now func() time.Time,
) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		log:     logger.With("service", "journal"),
		prompts: prompts,
		entries: entries,
		couples: couples,
		users:   users,
		cfg:     cfg,
		now:     now,
	}
}

// session is the requester together with their active, paired vault.
type session struct {
	user    *domain.User
	couple  *domain.Couple
	partner uuid.UUID
}

// today returns the requester's current calendar date.
func (ss session) today(now time.Time) time.Time {
	return domain.LocalDate(now, ss.user.Location())
}

// openSession loads the requester and their vault. A missing or unpaired
// vault yields ErrNoCoupleConfigured.
func (s *Service) openSession(ctx context.Context, userID uuid.UUID) (session, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return session{}, fmt.Errorf("load user: %w", err)
	}

	couple, err := s.couples.GetActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return session{}, domain.ErrNoCoupleConfigured
		}
		return session{}, fmt.Errorf("load couple: %w", err)
	}

	partnerID, ok := couple.PartnerOf(userID)
	if !ok {
		return session{}, domain.ErrNoCoupleConfigured
	}

	return session{user: user, couple: couple, partner: partnerID}, nil
}

// optional turns ErrNotFound into a nil result.
func optional[T any](v *T, err error) (*T, error) {
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return v, err
}
