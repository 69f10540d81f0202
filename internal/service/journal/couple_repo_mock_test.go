package journal

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/vault-backend/internal/domain"
	"sync"
)

var _ coupleRepo = &coupleRepoMock{}

type coupleRepoMock struct {
	GetActiveByUserFunc func(ctx context.Context, userID uuid.UUID) (*domain.Couple, error)
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Couple, error)

	calls struct {
		GetActiveByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetActiveByUser sync.RWMutex
	lockGetByID         sync.RWMutex
}

func (mock *coupleRepoMock) GetActiveByUser(ctx context.Context, userID uuid.UUID) (*domain.Couple, error) {
	if mock.GetActiveByUserFunc == nil {
		panic("coupleRepoMock.GetActiveByUserFunc: method is nil but coupleRepo.GetActiveByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetActiveByUser.Lock()
	mock.calls.GetActiveByUser = append(mock.calls.GetActiveByUser, callInfo)
	mock.lockGetActiveByUser.Unlock()
	return mock.GetActiveByUserFunc(ctx, userID)
}

func (mock *coupleRepoMock) GetActiveByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetActiveByUser.RLock()
	calls := mock.calls.GetActiveByUser
	mock.lockGetActiveByUser.RUnlock()
	return calls
}

func (mock *coupleRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Couple, error) {
	if mock.GetByIDFunc == nil {
		panic("coupleRepoMock.GetByIDFunc: method is nil but coupleRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *coupleRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
