package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vault-backend/internal/domain"
	"github.com/heartmarshall/vault-backend/pkg/ctxutil"
)

// SetUserRole changes the role of a user (admin only).
func (s *Service) SetUserRole(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) (*domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "invalid role: must be 'user' or 'admin'")
	}

	// Prevent admin from demoting themselves.
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if callerID == targetUserID && role == domain.UserRoleUser {
		return nil, domain.NewValidationError("role", "cannot demote yourself")
	}

	var user *domain.User
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.users.GetByID(ctx, targetUserID)
		if err != nil {
			return err
		}
		if user.Role == role {
			return nil
		}

		if err := s.users.SetRole(ctx, targetUserID, role); err != nil {
			return err
		}
		previous := user.Role
		user.Role = role

		return s.audit.Log(ctx, domain.AuditRecord{
			ID:         uuid.New(),
			ActorID:    callerID,
			EntityType: domain.AuditEntityUser,
			EntityID:   targetUserID,
			Action:     domain.AuditActionUpdate,
			Changes:    map[string]any{"role": domain.FieldChange(previous, role)},
			CreatedAt:  time.Now().UTC(),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("user.SetUserRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.String("target_user_id", targetUserID.String()),
		slog.String("new_role", role.String()),
	)

	return user, nil
}
