// Package vault manages couples: creating a vault, joining it with an invite
// code, and ending it.
package vault

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vault-backend/internal/config"
	"github.com/heartmarshall/vault-backend/internal/domain"
)

// coupleRepo defines the couple repository interface needed by vault service.
type coupleRepo interface {
	GetByInviteCodeForUpdate(ctx context.Context, code string) (*domain.Couple, error)
	GetActiveByUser(ctx context.Context, userID uuid.UUID) (*domain.Couple, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Couple, error)
	Create(ctx context.Context, c *domain.Couple) (*domain.Couple, error)
	SetPartner(ctx context.Context, id, userID uuid.UUID) (*domain.Couple, error)
	UpdateAnniversary(ctx context.Context, id uuid.UUID, date *time.Time) (*domain.Couple, error)
	End(ctx context.Context, id uuid.UUID, endedDate time.Time) (*domain.Couple, error)
	AddMembership(ctx context.Context, userID, coupleID uuid.UUID) error
	ReleaseMemberships(ctx context.Context, coupleID uuid.UUID) error
}

// userRepo defines the user repository interface needed by vault service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.User, error)
}

// txManager defines the transaction manager interface needed by vault service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements vault (couple) operations.
type Service struct {
	log     *slog.Logger
	couples coupleRepo
	users   userRepo
	tx      txManager
	now     func() time.Time
	newCode func() (string, error)
}

// NewService creates a new vault service instance. A nil now uses time.Now.
func NewService(
	logger *slog.Logger,
	couples coupleRepo,
	users userRepo,
	tx txManager,
	cfg config.JournalConfig,
	now func() time.Time,
) *Service {
	if now == nil {
		now = time.Now
	}
	size := cfg.InviteCodeSize
	return &Service{
		log:     logger.With("service", "vault"),
		couples: couples,
		users:   users,
		tx:      tx,
		now:     now,
		newCode: func() (string, error) { return NewInviteCode(size) },
	}
}

// View is a couple together with the requester's partner, if any.
type View struct {
	Couple  *domain.Couple
	Partner *domain.Partner
}

// partnerOf loads the public view of the requester's partner in c.
func (s *Service) partnerOf(ctx context.Context, c *domain.Couple, userID uuid.UUID) (*domain.Partner, error) {
	partnerID, ok := c.PartnerOf(userID)
	if !ok {
		return nil, nil
	}
	u, err := s.users.GetByID(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("load partner: %w", err)
	}
	return &domain.Partner{ID: u.ID, Name: u.Name()}, nil
}
