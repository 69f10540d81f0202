package wrapped

import (
	"math"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vault-backend/internal/domain"
)

const topVibesLimit = 3

// Sentiment thresholds for the moments of a year.
const (
	joyThreshold      = 0.3
	toughThreshold    = -0.2
	supportGapMinimum = 0.5
)

// sortBreakdown orders category counts by count, most answered first. Ties
// keep the catalog order of prompt categories.
func sortBreakdown(counts []domain.CategoryCount) []domain.CategoryCount {
	out := make([]domain.CategoryCount, 0, len(counts))
	for _, c := range counts {
		if c.Count > 0 {
			out = append(out, c)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.CategoryCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return a.Category.Rank() - b.Category.Rank()
	})
	return out
}

// fillMonths expands sparse monthly counts into exactly twelve entries,
// January first.
func fillMonths(counts map[time.Month]int) []domain.MonthCount {
	out := make([]domain.MonthCount, 12)
	for i := range out {
		m := time.Month(i + 1)
		out[i] = domain.MonthCount{Month: m, Count: counts[m]}
	}
	return out
}

func topVibes(counts []domain.CategoryCount) []domain.CategoryCount {
	sorted := sortBreakdown(counts)
	if len(sorted) > topVibesLimit {
		sorted = sorted[:topVibesLimit]
	}
	return sorted
}

// mostWords returns the paired prompt with the highest combined word count.
// The earliest prompt wins a tie.
func mostWords(paired []domain.PairedPrompt) *domain.PairedPrompt {
	var best *domain.PairedPrompt
	for i := range paired {
		if best == nil || paired[i].CombinedWords() > best.CombinedWords() {
			best = &paired[i]
		}
	}
	return best
}

// responseRate is the share of the year's prompts both members answered,
// rounded to three decimals.
func responseRate(paired, prompts int) float64 {
	if prompts == 0 {
		return 0
	}
	return round3(float64(paired) / float64(prompts))
}

// syncScore measures how close both members' sentiment was on the prompts
// they both answered: 1 is identical, 0 is opposite. Nil without scores.
func syncScore(paired []domain.PairedPrompt) *float64 {
	var sum float64
	n := 0
	for _, p := range paired {
		if p.SentimentA == nil || p.SentimentB == nil {
			continue
		}
		sum += math.Abs(*p.SentimentA - *p.SentimentB)
		n++
	}
	if n == 0 {
		return nil
	}
	score := round3(1 - sum/float64(n)/2)
	return &score
}

// monthlySentiment orders the scored months of a year, January first.
func monthlySentiment(scores map[time.Month]float64) []domain.MonthSentiment {
	out := make([]domain.MonthSentiment, 0, len(scores))
	for m := time.January; m <= time.December; m++ {
		if score, ok := scores[m]; ok {
			out = append(out, domain.MonthSentiment{Month: m, Score: round3(score)})
		}
	}
	return out
}

// happiestMonth picks the month with the highest average sentiment. The
// earlier month wins a tie.
func happiestMonth(months []domain.MonthSentiment) *domain.MonthSentiment {
	var best *domain.MonthSentiment
	for i := range months {
		if best == nil || months[i].Score > best.Score {
			best = &months[i]
		}
	}
	return best
}

// moments sorts paired prompts into shared joy, tough days and support,
// seen from userID.
func moments(paired []domain.PairedPrompt, userID uuid.UUID) domain.Moments {
	var m domain.Moments
	for _, p := range paired {
		a, b := scoreOrZero(p.SentimentA), scoreOrZero(p.SentimentB)
		if a >= joyThreshold && b >= joyThreshold {
			m.SharedJoy++
		}
		if a <= toughThreshold && b <= toughThreshold {
			m.ToughDays++
		}
		if math.Abs(a-b) >= supportGapMinimum {
			m.Support++
			supporter := p.UserA
			if b > a {
				supporter = p.UserB
			}
			if supporter == userID {
				m.SupportGiven++
			}
		}
	}
	return m
}

func scoreOrZero(s *float64) float64 {
	if s == nil {
		return 0
	}
	return *s
}

// daysTogether counts days from the anniversary to the last day of the year,
// never negative. Nil without an anniversary.
func daysTogether(c *domain.Couple, year int) *int {
	days, ok := c.DaysTogether(time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC))
	if !ok {
		return nil
	}
	days = max(days, 0)
	return &days
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
