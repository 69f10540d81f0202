// Package wrapped builds the year-end summary of a user's journal and of the
// vault they share with their partner.
package wrapped

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vault-backend/internal/domain"
)

// analyticsRepo defines the aggregate queries needed by wrapped service.
// Ranges are [from, to) instants.
type analyticsRepo interface {
	UserTotals(ctx context.Context, userID uuid.UUID, from, to time.Time) (domain.UserTotals, error)
	UserCategoryCounts(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.CategoryCount, error)
	UserMonthlyCounts(ctx context.Context, userID uuid.UUID, from, to time.Time, tz string) (map[time.Month]int, error)
	LongestEntry(ctx context.Context, userID uuid.UUID, from, to time.Time) (*domain.Entry, error)
	CoupleWords(ctx context.Context, coupleID uuid.UUID, from, to time.Time) (int, error)
	CoupleCategoryCounts(ctx context.Context, coupleID uuid.UUID, from, to time.Time) ([]domain.CategoryCount, error)
	PairedPrompts(ctx context.Context, coupleID uuid.UUID, from, to time.Time) ([]domain.PairedPrompt, error)
	AverageSentiment(ctx context.Context, coupleID uuid.UUID, from, to time.Time) (*float64, error)
	CoupleMonthlySentiment(ctx context.Context, coupleID uuid.UUID, from, to time.Time, tz string) (map[time.Month]float64, error)
	LocationCounts(ctx context.Context, coupleID uuid.UUID, from, to time.Time) ([]domain.LocationCount, error)
}

// promptRepo defines the prompt repository interface needed by wrapped service.
type promptRepo interface {
	CountByDateRange(ctx context.Context, from, to time.Time) (int, error)
}

// coupleRepo defines the couple repository interface needed by wrapped service.
type coupleRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Couple, error)
	GetActiveByUser(ctx context.Context, userID uuid.UUID) (*domain.Couple, error)
}

// userRepo defines the user repository interface needed by wrapped service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service computes Wrapped summaries. All of its operations are reads.
type Service struct {
	log       *slog.Logger
	analytics analyticsRepo
	prompts   promptRepo
	couples   coupleRepo
	users     userRepo
	now       func() time.Time
}

// NewService creates a new wrapped service instance. A nil now uses time.Now.
func NewService(
	logger *slog.Logger,
	analytics analyticsRepo,
	prompts promptRepo,
	couples coupleRepo,
	users userRepo,
	now func() time.Time,
) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		log:       logger.With("service", "wrapped"),
		analytics: analytics,
		prompts:   prompts,
		couples:   couples,
		users:     users,
		now:       now,
	}
}
