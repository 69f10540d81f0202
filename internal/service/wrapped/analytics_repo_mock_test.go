package wrapped

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/vault-backend/internal/domain"
	"sync"
	"time"
)

var _ analyticsRepo = &analyticsRepoMock{}

type analyticsRepoMock struct {
	AverageSentimentFunc       func(ctx context.Context, coupleID uuid.UUID, from time.Time, to time.Time) (*float64, error)
	CoupleCategoryCountsFunc   func(ctx context.Context, coupleID uuid.UUID, from time.Time, to time.Time) ([]domain.CategoryCount, error)
	CoupleMonthlySentimentFunc func(ctx context.Context, coupleID uuid.UUID, from time.Time, to time.Time, tz string) (map[time.Month]float64, error)
	CoupleWordsFunc            func(ctx context.Context, coupleID uuid.UUID, from time.Time, to time.Time) (int, error)
	LocationCountsFunc         func(ctx context.Context, coupleID uuid.UUID, from time.Time, to time.Time) ([]domain.LocationCount, error)
	LongestEntryFunc           func(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time) (*domain.Entry, error)
	PairedPromptsFunc          func(ctx context.Context, coupleID uuid.UUID, from time.Time, to time.Time) ([]domain.PairedPrompt, error)
	UserCategoryCountsFunc     func(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time) ([]domain.CategoryCount, error)
	UserMonthlyCountsFunc      func(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time, tz string) (map[time.Month]int, error)
	UserTotalsFunc             func(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time) (domain.UserTotals, error)

	calls struct {
		AverageSentiment []struct {
			Ctx      context.Context
			CoupleID uuid.UUID
			From     time.Time
			To       time.Time
		}
		CoupleCategoryCounts []struct {
			Ctx      context.Context
			CoupleID uuid.UUID
			From     time.Time
			To       time.Time
		}
		CoupleMonthlySentiment []struct {
			Ctx      context.Context
			CoupleID uuid.UUID
			From     time.Time
			To       time.Time
			Tz       string
		}
		CoupleWords []struct {
			Ctx      context.Context
			CoupleID uuid.UUID
			From     time.Time
			To       time.Time
		}
		LocationCounts []struct {
			Ctx      context.Context
			CoupleID uuid.UUID
			From     time.Time
			To       time.Time
		}
		LongestEntry []struct {
			Ctx    context.Context
			UserID uuid.UUID
			From   time.Time
			To     time.Time
		}
		PairedPrompts []struct {
			Ctx      context.Context
			CoupleID uuid.UUID
			From     time.Time
			To       time.Time
		}
		UserCategoryCounts []struct {
			Ctx    context.Context
			UserID uuid.UUID
			From   time.Time
			To     time.Time
		}
		UserMonthlyCounts []struct {
			Ctx    context.Context
			UserID uuid.UUID
			From   time.Time
			To     time.Time
			Tz     string
		}
		UserTotals []struct {
			Ctx    context.Context
			UserID uuid.UUID
			From   time.Time
			To     time.Time
		}
	}
	lockAverageSentiment       sync.RWMutex
	lockCoupleCategoryCounts   sync.RWMutex
	lockCoupleMonthlySentiment sync.RWMutex
	lockCoupleWords            sync.RWMutex
	lockLocationCounts         sync.RWMutex
	lockLongestEntry           sync.RWMutex
	lockPairedPrompts          sync.RWMutex
	lockUserCategoryCounts     sync.RWMutex
	lockUserMonthlyCounts      sync.RWMutex
	lockUserTotals             sync.RWMutex
}

func (mock *analyticsRepoMock) AverageSentiment(ctx context.Context, coupleID uuid.UUID, from time.Time, to time.Time) (*float64, error) {
	if mock.AverageSentimentFunc == nil {
		panic("analyticsRepoMock.AverageSentimentFunc: method is nil but analyticsRepo.AverageSentiment was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		CoupleID uuid.UUID
		From     time.Time
		To       time.Time
	}{Ctx: ctx, CoupleID: coupleID, From: from, To: to}
	mock.lockAverageSentiment.Lock()
	mock.calls.AverageSentiment = append(mock.calls.AverageSentiment, callInfo)
	mock.lockAverageSentiment.Unlock()
	return mock.AverageSentimentFunc(ctx, coupleID, from, to)
}

func (mock *analyticsRepoMock) AverageSentimentCalls() []struct {
	Ctx      context.Context
	CoupleID uuid.UUID
	From     time.Time
	To       time.Time
} {
	mock.lockAverageSentiment.RLock()
	calls := mock.calls.AverageSentiment
	mock.lockAverageSentiment.RUnlock()
	return calls
}

func (mock *analyticsRepoMock) CoupleCategoryCounts(ctx context.Context, coupleID uuid.UUID, from time.Time, to time.Time) ([]domain.CategoryCount, error) {
	if mock.CoupleCategoryCountsFunc == nil {
		panic("analyticsRepoMock.CoupleCategoryCountsFunc: method is nil but analyticsRepo.CoupleCategoryCounts was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		CoupleID uuid.UUID
		From     time.Time
		To       time.Time
	}{Ctx: ctx, CoupleID: coupleID, From: from, To: to}
	mock.lockCoupleCategoryCounts.Lock()
	mock.calls.CoupleCategoryCounts = append(mock.calls.CoupleCategoryCounts, callInfo)
	mock.lockCoupleCategoryCounts.Unlock()
	return mock.CoupleCategoryCountsFunc(ctx, coupleID, from, to)
}

func (mock *analyticsRepoMock) CoupleCategoryCountsCalls() []struct {
	Ctx      context.Context
	CoupleID uuid.UUID
	From     time.Time
	To       time.Time
} {
	mock.lockCoupleCategoryCounts.RLock()
	calls := mock.calls.CoupleCategoryCounts
	mock.lockCoupleCategoryCounts.RUnlock()
	return calls
}

func (mock *analyticsRepoMock) CoupleMonthlySentiment(ctx context.Context, coupleID uuid.UUID, from time.Time, to time.Time, tz string) (map[time.Month]float64, error) {
	if mock.CoupleMonthlySentimentFunc == nil {
		panic("analyticsRepoMock.CoupleMonthlySentimentFunc: method is nil but analyticsRepo.CoupleMonthlySentiment was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		CoupleID uuid.UUID
		From     time.Time
		To       time.Time
		Tz       string
	}{Ctx: ctx, CoupleID: coupleID, From: from, To: to, Tz: tz}
	mock.lockCoupleMonthlySentiment.Lock()
	mock.calls.CoupleMonthlySentiment = append(mock.calls.CoupleMonthlySentiment, callInfo)
	mock.lockCoupleMonthlySentiment.Unlock()
	return mock.CoupleMonthlySentimentFunc(ctx, coupleID, from, to, tz)
}

func (mock *analyticsRepoMock) CoupleMonthlySentimentCalls() []struct {
	Ctx      context.Context
	CoupleID uuid.UUID
	From     time.Time
	To       time.Time
	Tz       string
} {
	mock.lockCoupleMonthlySentiment.RLock()
	calls := mock.calls.CoupleMonthlySentiment
	mock.lockCoupleMonthlySentiment.RUnlock()
	return calls
}

func (mock *analyticsRepoMock) CoupleWords(ctx context.Context, coupleID uuid.UUID, from time.Time, to time.Time) (int, error) {
	if mock.CoupleWordsFunc == nil {
		panic("analyticsRepoMock.CoupleWordsFunc: method is nil but analyticsRepo.CoupleWords was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		CoupleID uuid.UUID
		From     time.Time
		To       time.Time
	}{Ctx: ctx, CoupleID: coupleID, From: from, To: to}
	mock.lockCoupleWords.Lock()
	mock.calls.CoupleWords = append(mock.calls.CoupleWords, callInfo)
	mock.lockCoupleWords.Unlock()
	return mock.CoupleWordsFunc(ctx, coupleID, from, to)
}

func (mock *analyticsRepoMock) CoupleWordsCalls() []struct {
	Ctx      context.Context
	CoupleID uuid.UUID
	From     time.Time
	To       time.Time
} {
	mock.lockCoupleWords.RLock()
	calls := mock.calls.CoupleWords
	mock.lockCoupleWords.RUnlock()
	return calls
}

func (mock *analyticsRepoMock) LocationCounts(ctx context.Context, coupleID uuid.UUID, from time.Time, to time.Time) ([]domain.LocationCount, error) {
	if mock.LocationCountsFunc == nil {
		panic("analyticsRepoMock.LocationCountsFunc: method is nil but analyticsRepo.LocationCounts was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		CoupleID uuid.UUID
		From     time.Time
		To       time.Time
	}{Ctx: ctx, CoupleID: coupleID, From: from, To: to}
	mock.lockLocationCounts.Lock()
	mock.calls.LocationCounts = append(mock.calls.LocationCounts, callInfo)
	mock.lockLocationCounts.Unlock()
	return mock.LocationCountsFunc(ctx, coupleID, from, to)
}

func (mock *analyticsRepoMock) LocationCountsCalls() []struct {
	Ctx      context.Context
	CoupleID uuid.UUID
	From     time.Time
	To       time.Time
} {
	mock.lockLocationCounts.RLock()
	calls := mock.calls.LocationCounts
	mock.lockLocationCounts.RUnlock()
	return calls
}

func (mock *analyticsRepoMock) LongestEntry(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time) (*domain.Entry, error) {
	if mock.LongestEntryFunc == nil {
		panic("analyticsRepoMock.LongestEntryFunc: method is nil but analyticsRepo.LongestEntry was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   time.Time
		To     time.Time
	}{Ctx: ctx, UserID: userID, From: from, To: to}
	mock.lockLongestEntry.Lock()
	mock.calls.LongestEntry = append(mock.calls.LongestEntry, callInfo)
	mock.lockLongestEntry.Unlock()
	return mock.LongestEntryFunc(ctx, userID, from, to)
}

func (mock *analyticsRepoMock) LongestEntryCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	From   time.Time
	To     time.Time
} {
	mock.lockLongestEntry.RLock()
	calls := mock.calls.LongestEntry
	mock.lockLongestEntry.RUnlock()
	return calls
}

func (mock *analyticsRepoMock) PairedPrompts(ctx context.Context, coupleID uuid.UUID, from time.Time, to time.Time) ([]domain.PairedPrompt, error) {
	if mock.PairedPromptsFunc == nil {
		panic("analyticsRepoMock.PairedPromptsFunc: method is nil but analyticsRepo.PairedPrompts was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		CoupleID uuid.UUID
		From     time.Time
		To       time.Time
	}{Ctx: ctx, CoupleID: coupleID, From: from, To: to}
	mock.lockPairedPrompts.Lock()
	mock.calls.PairedPrompts = append(mock.calls.PairedPrompts, callInfo)
	mock.lockPairedPrompts.Unlock()
	return mock.PairedPromptsFunc(ctx, coupleID, from, to)
}

func (mock *analyticsRepoMock) PairedPromptsCalls() []struct {
	Ctx      context.Context
	CoupleID uuid.UUID
	From     time.Time
	To       time.Time
} {
	mock.lockPairedPrompts.RLock()
	calls := mock.calls.PairedPrompts
	mock.lockPairedPrompts.RUnlock()
	return calls
}

func (mock *analyticsRepoMock) UserCategoryCounts(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time) ([]domain.CategoryCount, error) {
	if mock.UserCategoryCountsFunc == nil {
		panic("analyticsRepoMock.UserCategoryCountsFunc: method is nil but analyticsRepo.UserCategoryCounts was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   time.Time
		To     time.Time
	}{Ctx: ctx, UserID: userID, From: from, To: to}
	mock.lockUserCategoryCounts.Lock()
	mock.calls.UserCategoryCounts = append(mock.calls.UserCategoryCounts, callInfo)
	mock.lockUserCategoryCounts.Unlock()
	return mock.UserCategoryCountsFunc(ctx, userID, from, to)
}

func (mock *analyticsRepoMock) UserCategoryCountsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	From   time.Time
	To     time.Time
} {
	mock.lockUserCategoryCounts.RLock()
	calls := mock.calls.UserCategoryCounts
	mock.lockUserCategoryCounts.RUnlock()
	return calls
}

func (mock *analyticsRepoMock) UserMonthlyCounts(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time, tz string) (map[time.Month]int, error) {
	if mock.UserMonthlyCountsFunc == nil {
		panic("analyticsRepoMock.UserMonthlyCountsFunc: method is nil but analyticsRepo.UserMonthlyCounts was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   time.Time
		To     time.Time
		Tz     string
	}{Ctx: ctx, UserID: userID, From: from, To: to, Tz: tz}
	mock.lockUserMonthlyCounts.Lock()
	mock.calls.UserMonthlyCounts = append(mock.calls.UserMonthlyCounts, callInfo)
	mock.lockUserMonthlyCounts.Unlock()
	return mock.UserMonthlyCountsFunc(ctx, userID, from, to, tz)
}

func (mock *analyticsRepoMock) UserMonthlyCountsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	From   time.Time
	To     time.Time
	Tz     string
} {
	mock.lockUserMonthlyCounts.RLock()
	calls := mock.calls.UserMonthlyCounts
	mock.lockUserMonthlyCounts.RUnlock()
	return calls
}

func (mock *analyticsRepoMock) UserTotals(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time) (domain.UserTotals, error) {
	if mock.UserTotalsFunc == nil {
		panic("analyticsRepoMock.UserTotalsFunc: method is nil but analyticsRepo.UserTotals was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   time.Time
		To     time.Time
	}{Ctx: ctx, UserID: userID, From: from, To: to}
	mock.lockUserTotals.Lock()
	mock.calls.UserTotals = append(mock.calls.UserTotals, callInfo)
	mock.lockUserTotals.Unlock()
	return mock.UserTotalsFunc(ctx, userID, from, to)
}

func (mock *analyticsRepoMock) UserTotalsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	From   time.Time
	To     time.Time
} {
	mock.lockUserTotals.RLock()
	calls := mock.calls.UserTotals
	mock.lockUserTotals.RUnlock()
	return calls
}
