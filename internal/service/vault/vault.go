package vault

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vault-backend/internal/domain"
	"github.com/heartmarshall/vault-backend/pkg/ctxutil"
)

// maxCodeAttempts bounds retries on invite code collisions.
const maxCodeAttempts = 3

// CreateVault opens a new vault with the caller as its first member.
// Returns ErrConflict if the caller is already in an active vault.
func (s *Service) CreateVault(ctx context.Context) (*domain.Couple, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var created *domain.Couple
	for attempt := 1; ; attempt++ {
		code, err := s.newCode()
		if err != nil {
			return nil, fmt.Errorf("vault.CreateVault: %w", err)
		}

		err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			c, err := s.couples.Create(txCtx, &domain.Couple{
				ID:         uuid.New(),
				User1ID:    userID,
				InviteCode: code,
				CreatedAt:  s.now().UTC(),
			})
			if err != nil {
				return fmt.Errorf("create couple: %w", err)
			}
			if err := s.couples.AddMembership(txCtx, userID, c.ID); err != nil {
				return fmt.Errorf("add membership: %w", err)
			}
			created = c
			return nil
		})
		if err == nil {
			break
		}
		// The only unique key a fresh couple can hit is its invite code.
		if errors.Is(err, domain.ErrAlreadyExists) && attempt < maxCodeAttempts {
			s.log.WarnContext(ctx, "invite code collision, retrying", slog.Int("attempt", attempt))
			continue
		}
		return nil, fmt.Errorf("vault.CreateVault: %w", err)
	}

	s.log.InfoContext(ctx, "vault created",
		slog.String("user_id", userID.String()),
		slog.String("couple_id", created.ID.String()))

	return created, nil
}

// JoinVault takes the second seat of the vault identified by the invite code.
func (s *Service) JoinVault(ctx context.Context, input JoinInput) (*View, error) {
	input.InviteCode = NormalizeInviteCode(input.InviteCode)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var joined *domain.Couple
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.couples.GetByInviteCodeForUpdate(txCtx, input.InviteCode)
		if err != nil {
			return err
		}

		switch {
		case c.IsEnded:
			return domain.ErrVaultEnded
		case c.User1ID == userID:
			return domain.NewValidationError("invite_code", "cannot join your own vault")
		case c.IsPaired():
			return fmt.Errorf("vault is full: %w", domain.ErrConflict)
		}

		c, err = s.couples.SetPartner(txCtx, c.ID, userID)
		if err != nil {
			return fmt.Errorf("set partner: %w", err)
		}
		if err := s.couples.AddMembership(txCtx, userID, c.ID); err != nil {
			return fmt.Errorf("add membership: %w", err)
		}
		joined = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("vault.JoinVault: %w", err)
	}

	partner, err := s.partnerOf(ctx, joined, userID)
	if err != nil {
		return nil, fmt.Errorf("vault.JoinVault: %w", err)
	}

	s.log.InfoContext(ctx, "vault joined",
		slog.String("user_id", userID.String()),
		slog.String("couple_id", joined.ID.String()))

	return &View{Couple: joined, Partner: partner}, nil
}

// ListVaults returns every vault of the caller, ended ones included, newest first.
func (s *Service) ListVaults(ctx context.Context) ([]View, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	couples, err := s.couples.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("vault.ListVaults: %w", err)
	}

	partnerIDs := make([]uuid.UUID, 0, len(couples))
	for i := range couples {
		if id, ok := couples[i].PartnerOf(userID); ok {
			partnerIDs = append(partnerIDs, id)
		}
	}

	users := map[uuid.UUID]domain.User{}
	if len(partnerIDs) > 0 {
		users, err = s.users.GetByIDs(ctx, partnerIDs)
		if err != nil {
			return nil, fmt.Errorf("vault.ListVaults: %w", err)
		}
	}

	views := make([]View, len(couples))
	for i := range couples {
		views[i] = View{Couple: &couples[i]}
		if id, ok := couples[i].PartnerOf(userID); ok {
			if u, found := users[id]; found {
				views[i].Partner = &domain.Partner{ID: u.ID, Name: u.Name()}
			}
		}
	}
	return views, nil
}

// GetActiveVault returns the caller's active vault and partner.
// Returns ErrNoCoupleConfigured when the caller has no active vault.
func (s *Service) GetActiveVault(ctx context.Context) (*View, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	c, err := s.activeCouple(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("vault.GetActiveVault: %w", err)
	}

	partner, err := s.partnerOf(ctx, c, userID)
	if err != nil {
		return nil, fmt.Errorf("vault.GetActiveVault: %w", err)
	}

	return &View{Couple: c, Partner: partner}, nil
}

// UpdateVault changes the anniversary of the caller's active vault.
func (s *Service) UpdateVault(ctx context.Context, input UpdateInput) (*domain.Couple, error) {
	if err := input.Validate(s.now()); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	c, err := s.activeCouple(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("vault.UpdateVault: %w", err)
	}

	updated, err := s.couples.UpdateAnniversary(ctx, c.ID, input.AnniversaryDate)
	if err != nil {
		return nil, fmt.Errorf("vault.UpdateVault: %w", err)
	}

	s.log.InfoContext(ctx, "vault updated",
		slog.String("couple_id", c.ID.String()))

	return updated, nil
}

// EndVault marks the caller's active vault as ended and frees both members to
// start or join another vault. Entries stay readable through history.
func (s *Service) EndVault(ctx context.Context, input EndInput) (*domain.Couple, error) {
	if err := input.Validate(s.now()); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	endedDate := domain.LocalDate(s.now(), time.UTC)
	if input.EndedDate != nil {
		endedDate = *input.EndedDate
	}

	var ended *domain.Couple
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.activeCouple(txCtx, userID)
		if err != nil {
			return err
		}
		ended, err = s.couples.End(txCtx, c.ID, endedDate)
		if err != nil {
			return fmt.Errorf("end couple: %w", err)
		}
		if err := s.couples.ReleaseMemberships(txCtx, c.ID); err != nil {
			return fmt.Errorf("release memberships: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("vault.EndVault: %w", err)
	}

	s.log.InfoContext(ctx, "vault ended",
		slog.String("user_id", userID.String()),
		slog.String("couple_id", ended.ID.String()))

	return ended, nil
}

// activeCouple maps a missing active vault to ErrNoCoupleConfigured.
func (s *Service) activeCouple(ctx context.Context, userID uuid.UUID) (*domain.Couple, error) {
	c, err := s.couples.GetActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNoCoupleConfigured
		}
		return nil, err
	}
	return c, nil
}
