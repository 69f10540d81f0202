package prompt

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vault-backend/internal/domain"
)

// SeedInput holds parameters for SeedPrompts. A zero Start means today (UTC).
type SeedInput struct {
	Start time.Time
	Clear bool
}

// SeedResult reports the outcome of SeedPrompts.
type SeedResult struct {
	Deleted int
	Created int
}

// SeedPrompts schedules the starter catalog one prompt per day from Start.
// Dates that already have a prompt are skipped. With Clear, prompts nobody
// answered are removed first; answered prompts are kept.
func (s *Service) SeedPrompts(ctx context.Context, input SeedInput) (SeedResult, error) {
	now := s.now().UTC()
	start := input.Start
	if start.IsZero() {
		start = now
	}
	start = toDate(start)

	prompts := make([]domain.Prompt, len(catalog))
	for i, c := range catalog {
		prompts[i] = domain.Prompt{
			ID:         uuid.New(),
			Text:       c.text,
			Category:   c.category,
			ActiveDate: start.AddDate(0, 0, i),
			CreatedAt:  now,
			UpdatedAt:  now,
		}
	}

	var res SeedResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if input.Clear {
			n, err := s.prompts.DeleteUnreferenced(ctx)
			if err != nil {
				return err
			}
			res.Deleted = n
		}

		n, err := s.prompts.CreateMany(ctx, prompts)
		if err != nil {
			return err
		}
		res.Created = n
		return nil
	})
	if err != nil {
		return SeedResult{}, fmt.Errorf("prompt.SeedPrompts: %w", err)
	}

	s.log.InfoContext(ctx, "prompts seeded",
		slog.String("start", start.Format(time.DateOnly)),
		slog.Int("deleted", res.Deleted),
		slog.Int("created", res.Created))

	return res, nil
}
