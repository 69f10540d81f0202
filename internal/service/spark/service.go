// Package spark serves in-person cards couples draw when they are together:
// date ideas, conversation starters, "would you rather" pairs and quick games.
package spark

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vault-backend/internal/domain"
)

// sparkRepo defines the spark repository interface needed by spark service.
type sparkRepo interface {
	CountByCategory(ctx context.Context) (map[domain.SparkCategory]int, error)
	Random(ctx context.Context, category domain.SparkCategory, vibe *domain.PromptCategory) (*domain.Spark, error)
	CreateMany(ctx context.Context, sparks []domain.Spark) (int, error)
	DeleteAll(ctx context.Context) (int, error)
}

// txManager defines the transaction manager interface needed by spark service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements spark operations.
type Service struct {
	log    *slog.Logger
	sparks sparkRepo
	tx     txManager
	now    func() time.Time
}

// NewService creates a new spark service instance. A nil now uses time.Now.
func NewService(logger *slog.Logger, sparks sparkRepo, tx txManager, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		log:    logger.With("service", "spark"),
		sparks: sparks,
		tx:     tx,
		now:    now,
	}
}

// ListCategories returns every spark category with its card count, in
// display order. Empty categories are reported with zero.
func (s *Service) ListCategories(ctx context.Context) ([]domain.SparkCategoryCount, error) {
	counts, err := s.sparks.CountByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("spark.ListCategories: %w", err)
	}

	out := make([]domain.SparkCategoryCount, len(domain.SparkCategories))
	for i, c := range domain.SparkCategories {
		out[i] = domain.SparkCategoryCount{Category: c, Count: counts[c]}
	}
	return out, nil
}

// RandomSpark draws a random card of the category, optionally matching a vibe.
// Returns ErrNotFound when the deck has no such card.
func (s *Service) RandomSpark(ctx context.Context, input RandomInput) (*domain.Spark, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	spark, err := s.sparks.Random(ctx, input.Category, input.Vibe)
	if err != nil {
		return nil, fmt.Errorf("spark.RandomSpark: %w", err)
	}
	return spark, nil
}

// SeedResult reports the outcome of SeedSparks.
type SeedResult struct {
	Deleted int
	Created int
}

// SeedSparks loads the starter deck. With clear, existing cards are removed
// first; otherwise cards already in the deck are skipped.
func (s *Service) SeedSparks(ctx context.Context, clear bool) (SeedResult, error) {
	now := s.now().UTC()
	sparks := make([]domain.Spark, len(catalog))
	for i, c := range catalog {
		c.ID = uuid.New()
		c.CreatedAt = now
		sparks[i] = c
	}

	var res SeedResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if clear {
			n, err := s.sparks.DeleteAll(ctx)
			if err != nil {
				return err
			}
			res.Deleted = n
		}

		n, err := s.sparks.CreateMany(ctx, sparks)
		if err != nil {
			return err
		}
		res.Created = n
		return nil
	})
	if err != nil {
		return SeedResult{}, fmt.Errorf("spark.SeedSparks: %w", err)
	}

	s.log.InfoContext(ctx, "sparks seeded",
		slog.Int("deleted", res.Deleted),
		slog.Int("created", res.Created))

	return res, nil
}
