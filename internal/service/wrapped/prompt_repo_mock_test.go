package wrapped

import (
	"context"
	"sync"
	"time"
)

var _ promptRepo = &promptRepoMock{}

type promptRepoMock struct {
	CountByDateRangeFunc func(ctx context.Context, from time.Time, to time.Time) (int, error)

	calls struct {
		CountByDateRange []struct {
			Ctx  context.Context
			From time.Time
			To   time.Time
		}
	}
	lockCountByDateRange sync.RWMutex
}

func (mock *promptRepoMock) CountByDateRange(ctx context.Context, from time.Time, to time.Time) (int, error) {
	if mock.CountByDateRangeFunc == nil {
		panic("promptRepoMock.CountByDateRangeFunc: method is nil but promptRepo.CountByDateRange was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		From time.Time
		To   time.Time
	}{Ctx: ctx, From: from, To: to}
	mock.lockCountByDateRange.Lock()
	mock.calls.CountByDateRange = append(mock.calls.CountByDateRange, callInfo)
	mock.lockCountByDateRange.Unlock()
	return mock.CountByDateRangeFunc(ctx, from, to)
}

func (mock *promptRepoMock) CountByDateRangeCalls() []struct {
	Ctx  context.Context
	From time.Time
	To   time.Time
} {
	mock.lockCountByDateRange.RLock()
	calls := mock.calls.CountByDateRange
	mock.lockCountByDateRange.RUnlock()
	return calls
}
