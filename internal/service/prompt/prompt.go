package prompt

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vault-backend/internal/domain"
	"github.com/heartmarshall/vault-backend/pkg/ctxutil"
)

// CreatePrompt schedules a prompt on a free date (admin only).
func (s *Service) CreatePrompt(ctx context.Context, input CreateInput) (*domain.Prompt, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	actor, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	var created *domain.Prompt
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.prompts.Create(ctx, &domain.Prompt{
			ID:         uuid.New(),
			Text:       input.Text,
			Category:   input.Category,
			ActiveDate: input.ActiveDate,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		if err != nil {
			return err
		}
		return s.record(ctx, actor, created.ID, domain.AuditActionCreate, map[string]any{
			"text":        map[string]any{"new": created.Text},
			"category":    map[string]any{"new": created.Category},
			"active_date": map[string]any{"new": created.ActiveDate.Format(time.DateOnly)},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("prompt.CreatePrompt: %w", err)
	}

	s.log.InfoContext(ctx, "prompt created",
		slog.String("prompt_id", created.ID.String()),
		slog.String("active_date", created.ActiveDate.Format(time.DateOnly)))

	return created, nil
}

// ListPrompts returns the prompts scheduled within an inclusive date range
// (admin only).
func (s *Service) ListPrompts(ctx context.Context, input ListInput) ([]domain.Prompt, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	prompts, err := s.prompts.ListByDateRange(ctx, toDate(input.From), toDate(input.To))
	if err != nil {
		return nil, fmt.Errorf("prompt.ListPrompts: %w", err)
	}
	return prompts, nil
}

// UpdatePrompt changes a prompt nobody answered yet (admin only). An answered
// prompt yields ErrConflict.
func (s *Service) UpdatePrompt(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Prompt, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	actor, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Prompt
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.prompts.GetByID(ctx, id)
		if err != nil {
			return err
		}

		changes := make(map[string]any)
		if input.Text != nil && *input.Text != p.Text {
			changes["text"] = domain.FieldChange(p.Text, *input.Text)
			p.Text = *input.Text
		}
		if input.Category != nil && *input.Category != p.Category {
			changes["category"] = domain.FieldChange(p.Category, *input.Category)
			p.Category = *input.Category
		}
		if input.ActiveDate != nil && !input.ActiveDate.Equal(p.ActiveDate) {
			changes["active_date"] = domain.FieldChange(p.ActiveDate.Format(time.DateOnly), input.ActiveDate.Format(time.DateOnly))
			p.ActiveDate = *input.ActiveDate
		}
		p.UpdatedAt = s.now().UTC()

		updated, err = s.prompts.Update(ctx, p)
		if err != nil {
			return err
		}
		if len(changes) == 0 {
			return nil
		}
		return s.record(ctx, actor, id, domain.AuditActionUpdate, changes)
	})
	if err != nil {
		return nil, fmt.Errorf("prompt.UpdatePrompt: %w", err)
	}

	s.log.InfoContext(ctx, "prompt updated", slog.String("prompt_id", id.String()))
	return updated, nil
}
