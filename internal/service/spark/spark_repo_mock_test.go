package spark

import (
	"context"
	"github.com/heartmarshall/vault-backend/internal/domain"
	"sync"
)

var _ sparkRepo = &sparkRepoMock{}

type sparkRepoMock struct {
	CountByCategoryFunc func(ctx context.Context) (map[domain.SparkCategory]int, error)
	CreateManyFunc      func(ctx context.Context, sparks []domain.Spark) (int, error)
	DeleteAllFunc       func(ctx context.Context) (int, error)
	RandomFunc          func(ctx context.Context, category domain.SparkCategory, vibe *domain.PromptCategory) (*domain.Spark, error)

	calls struct {
		CountByCategory []struct {
			Ctx context.Context
		}
		CreateMany []struct {
			Ctx    context.Context
			Sparks []domain.Spark
		}
		DeleteAll []struct {
			Ctx context.Context
		}
		Random []struct {
			Ctx      context.Context
			Category domain.SparkCategory
			Vibe     *domain.PromptCategory
		}
	}
	lockCountByCategory sync.RWMutex
	lockCreateMany      sync.RWMutex
	lockDeleteAll       sync.RWMutex
	lockRandom          sync.RWMutex
}

func (mock *sparkRepoMock) CountByCategory(ctx context.Context) (map[domain.SparkCategory]int, error) {
	if mock.CountByCategoryFunc == nil {
		panic("sparkRepoMock.CountByCategoryFunc: method is nil but sparkRepo.CountByCategory was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCountByCategory.Lock()
	mock.calls.CountByCategory = append(mock.calls.CountByCategory, callInfo)
	mock.lockCountByCategory.Unlock()
	return mock.CountByCategoryFunc(ctx)
}

func (mock *sparkRepoMock) CountByCategoryCalls() []struct {
	Ctx context.Context
} {
	mock.lockCountByCategory.RLock()
	calls := mock.calls.CountByCategory
	mock.lockCountByCategory.RUnlock()
	return calls
}

func (mock *sparkRepoMock) CreateMany(ctx context.Context, sparks []domain.Spark) (int, error) {
	if mock.CreateManyFunc == nil {
		panic("sparkRepoMock.CreateManyFunc: method is nil but sparkRepo.CreateMany was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Sparks []domain.Spark
	}{Ctx: ctx, Sparks: sparks}
	mock.lockCreateMany.Lock()
	mock.calls.CreateMany = append(mock.calls.CreateMany, callInfo)
	mock.lockCreateMany.Unlock()
	return mock.CreateManyFunc(ctx, sparks)
}

func (mock *sparkRepoMock) CreateManyCalls() []struct {
	Ctx    context.Context
	Sparks []domain.Spark
} {
	mock.lockCreateMany.RLock()
	calls := mock.calls.CreateMany
	mock.lockCreateMany.RUnlock()
	return calls
}

func (mock *sparkRepoMock) DeleteAll(ctx context.Context) (int, error) {
	if mock.DeleteAllFunc == nil {
		panic("sparkRepoMock.DeleteAllFunc: method is nil but sparkRepo.DeleteAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDeleteAll.Lock()
	mock.calls.DeleteAll = append(mock.calls.DeleteAll, callInfo)
	mock.lockDeleteAll.Unlock()
	return mock.DeleteAllFunc(ctx)
}

func (mock *sparkRepoMock) DeleteAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockDeleteAll.RLock()
	calls := mock.calls.DeleteAll
	mock.lockDeleteAll.RUnlock()
	return calls
}

func (mock *sparkRepoMock) Random(ctx context.Context, category domain.SparkCategory, vibe *domain.PromptCategory) (*domain.Spark, error) {
	if mock.RandomFunc == nil {
		panic("sparkRepoMock.RandomFunc: method is nil but sparkRepo.Random was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Category domain.SparkCategory
		Vibe     *domain.PromptCategory
	}{Ctx: ctx, Category: category, Vibe: vibe}
	mock.lockRandom.Lock()
	mock.calls.Random = append(mock.calls.Random, callInfo)
	mock.lockRandom.Unlock()
	return mock.RandomFunc(ctx, category, vibe)
}

func (mock *sparkRepoMock) RandomCalls() []struct {
	Ctx      context.Context
	Category domain.SparkCategory
	Vibe     *domain.PromptCategory
} {
	mock.lockRandom.RLock()
	calls := mock.calls.Random
	mock.lockRandom.RUnlock()
	return calls
}
