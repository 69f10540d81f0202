package wrapped

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/vault-backend/internal/domain"
	"github.com/heartmarshall/vault-backend/pkg/ctxutil"
)

// MinYear is the earliest year a summary can be requested for.
const MinYear = 2000

// GetWrapped returns the requester's summary of a calendar year in their
// timezone. A zero year selects the current year there. The couple section
// covers vaultID when given, otherwise the active vault; it is nil when the
// requester has no paired vault.
func (s *Service) GetWrapped(ctx context.Context, year int, vaultID *uuid.UUID) (*domain.Wrapped, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("wrapped.GetWrapped load user: %w", err)
	}

	tz := user.Location()
	current := s.now().In(tz).Year()
	if year == 0 {
		year = current
	}
	if err := validateYear(year, current); err != nil {
		return nil, err
	}

	couple, err := s.coupleFor(ctx, userID, vaultID)
	if err != nil {
		return nil, fmt.Errorf("wrapped.GetWrapped: %w", err)
	}

	from, to := domain.YearRange(year, tz)
	w := &domain.Wrapped{Year: year, UserID: userID}

	var (
		totals     domain.UserTotals
		categories []domain.CategoryCount
		months     map[time.Month]int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		totals, err = s.analytics.UserTotals(gctx, userID, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.analytics.UserCategoryCounts(gctx, userID, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		months, err = s.analytics.UserMonthlyCounts(gctx, userID, from, to, tz.String())
		return err
	})
	g.Go(func() error {
		var err error
		w.LongestEntry, err = s.analytics.LongestEntry(gctx, userID, from, to)
		return err
	})
	if couple != nil {
		g.Go(func() error {
			var err error
			w.Couple, err = s.coupleWrapped(gctx, userID, couple, year, from, to, tz.String())
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("wrapped.GetWrapped: %w", err)
	}

	w.TotalWords = totals.Words
	w.TotalEntries = totals.Entries
	w.CategoryBreakdown = sortBreakdown(categories)
	w.MonthlyActivity = fillMonths(months)

	s.log.DebugContext(ctx, "wrapped computed",
		slog.String("user_id", userID.String()),
		slog.Int("year", year),
		slog.Int("entries", w.TotalEntries))

	return w, nil
}

// coupleFor resolves the vault a summary covers. A foreign vaultID is
// reported as not found.
func (s *Service) coupleFor(ctx context.Context, userID uuid.UUID, vaultID *uuid.UUID) (*domain.Couple, error) {
	if vaultID != nil {
		c, err := s.couples.GetByID(ctx, *vaultID)
		if err != nil {
			return nil, err
		}
		if !c.Includes(userID) {
			return nil, fmt.Errorf("vault %s: %w", *vaultID, domain.ErrNotFound)
		}
		if !c.IsPaired() {
			return nil, nil
		}
		return c, nil
	}

	c, err := s.couples.GetActiveByUser(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !c.IsPaired() {
		return nil, nil
	}
	return c, nil
}

func (s *Service) coupleWrapped(
	ctx context.Context,
	userID uuid.UUID,
	c *domain.Couple,
	year int,
	from, to time.Time,
	tz string,
) (*domain.CoupleWrapped, error) {
	cw := &domain.CoupleWrapped{
		CoupleID:     c.ID,
		DaysTogether: daysTogether(c, year),
	}

	var (
		categories []domain.CategoryCount
		paired     []domain.PairedPrompt
		prompts    int
		sentiment  map[time.Month]float64
	)

	partnerID, _ := c.PartnerOf(userID)
	firstDay := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	lastDay := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		partner, err := s.users.GetByID(gctx, partnerID)
		if err != nil {
			return err
		}
		cw.Partner = &domain.Partner{ID: partner.ID, Name: partner.Name()}
		return nil
	})
	g.Go(func() error {
		var err error
		cw.TotalWords, err = s.analytics.CoupleWords(gctx, c.ID, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.analytics.CoupleCategoryCounts(gctx, c.ID, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		paired, err = s.analytics.PairedPrompts(gctx, c.ID, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		prompts, err = s.prompts.CountByDateRange(gctx, firstDay, lastDay)
		return err
	})
	g.Go(func() error {
		var err error
		cw.AverageSentiment, err = s.analytics.AverageSentiment(gctx, c.ID, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		sentiment, err = s.analytics.CoupleMonthlySentiment(gctx, c.ID, from, to, tz)
		return err
	})
	g.Go(func() error {
		var err error
		cw.Places, err = s.analytics.LocationCounts(gctx, c.ID, from, to)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	cw.TopVibes = topVibes(categories)
	cw.MostWordsPrompt = mostWords(paired)
	cw.ResponseRate = responseRate(len(paired), prompts)
	cw.SyncScore = syncScore(paired)
	cw.MonthlySentiment = monthlySentiment(sentiment)
	cw.HappiestMonth = happiestMonth(cw.MonthlySentiment)
	cw.Moments = moments(paired, userID)
	return cw, nil
}

func validateYear(year, current int) error {
	if year < MinYear || year > current {
		return domain.NewValidationError("year", fmt.Sprintf("must be between %d and %d", MinYear, current))
	}
	return nil
}
