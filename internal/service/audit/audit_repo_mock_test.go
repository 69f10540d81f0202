package audit

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/vault-backend/internal/domain"
	"sync"
)

var _ auditRepo = &auditRepoMock{}

type auditRepoMock struct {
	ListByEntityFunc func(ctx context.Context, entity domain.AuditEntity, id uuid.UUID, limit int) ([]domain.AuditRecord, error)

	calls struct {
		ListByEntity []struct {
			Ctx    context.Context
			Entity domain.AuditEntity
			ID     uuid.UUID
			Limit  int
		}
	}
	lockListByEntity sync.RWMutex
}

func (mock *auditRepoMock) ListByEntity(ctx context.Context, entity domain.AuditEntity, id uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if mock.ListByEntityFunc == nil {
		panic("auditRepoMock.ListByEntityFunc: method is nil but auditRepo.ListByEntity was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Entity domain.AuditEntity
		ID     uuid.UUID
		Limit  int
	}{Ctx: ctx, Entity: entity, ID: id, Limit: limit}
	mock.lockListByEntity.Lock()
	mock.calls.ListByEntity = append(mock.calls.ListByEntity, callInfo)
	mock.lockListByEntity.Unlock()
	return mock.ListByEntityFunc(ctx, entity, id, limit)
}

func (mock *auditRepoMock) ListByEntityCalls() []struct {
	Ctx    context.Context
	Entity domain.AuditEntity
	ID     uuid.UUID
	Limit  int
} {
	mock.lockListByEntity.RLock()
	calls := mock.calls.ListByEntity
	mock.lockListByEntity.RUnlock()
	return calls
}
