package vault

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/vault-backend/internal/domain"
	"sync"
	"time"
)

var _ coupleRepo = &coupleRepoMock{}

type coupleRepoMock struct {
	AddMembershipFunc            func(ctx context.Context, userID uuid.UUID, coupleID uuid.UUID) error
	CreateFunc                   func(ctx context.Context, c *domain.Couple) (*domain.Couple, error)
	EndFunc                      func(ctx context.Context, id uuid.UUID, endedDate time.Time) (*domain.Couple, error)
	GetActiveByUserFunc          func(ctx context.Context, userID uuid.UUID) (*domain.Couple, error)
	GetByInviteCodeForUpdateFunc func(ctx context.Context, code string) (*domain.Couple, error)
	ListByUserFunc               func(ctx context.Context, userID uuid.UUID) ([]domain.Couple, error)
	ReleaseMembershipsFunc       func(ctx context.Context, coupleID uuid.UUID) error
	SetPartnerFunc               func(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*domain.Couple, error)
	UpdateAnniversaryFunc        func(ctx context.Context, id uuid.UUID, date *time.Time) (*domain.Couple, error)

	calls struct {
		AddMembership []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			CoupleID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			C   *domain.Couple
		}
		End []struct {
			Ctx       context.Context
			ID        uuid.UUID
			EndedDate time.Time
		}
		GetActiveByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		GetByInviteCodeForUpdate []struct {
			Ctx  context.Context
			Code string
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ReleaseMemberships []struct {
			Ctx      context.Context
			CoupleID uuid.UUID
		}
		SetPartner []struct {
			Ctx    context.Context
			ID     uuid.UUID
			UserID uuid.UUID
		}
		UpdateAnniversary []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Date *time.Time
		}
	}
	lockAddMembership            sync.RWMutex
	lockCreate                   sync.RWMutex
	lockEnd                      sync.RWMutex
	lockGetActiveByUser          sync.RWMutex
	lockGetByInviteCodeForUpdate sync.RWMutex
	lockListByUser               sync.RWMutex
	lockReleaseMemberships       sync.RWMutex
	lockSetPartner               sync.RWMutex
	lockUpdateAnniversary        sync.RWMutex
}

func (mock *coupleRepoMock) AddMembership(ctx context.Context, userID uuid.UUID, coupleID uuid.UUID) error {
	if mock.AddMembershipFunc == nil {
		panic("coupleRepoMock.AddMembershipFunc: method is nil but coupleRepo.AddMembership was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		CoupleID uuid.UUID
	}{Ctx: ctx, UserID: userID, CoupleID: coupleID}
	mock.lockAddMembership.Lock()
	mock.calls.AddMembership = append(mock.calls.AddMembership, callInfo)
	mock.lockAddMembership.Unlock()
	return mock.AddMembershipFunc(ctx, userID, coupleID)
}

func (mock *coupleRepoMock) AddMembershipCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	CoupleID uuid.UUID
} {
	mock.lockAddMembership.RLock()
	calls := mock.calls.AddMembership
	mock.lockAddMembership.RUnlock()
	return calls
}

func (mock *coupleRepoMock) Create(ctx context.Context, c *domain.Couple) (*domain.Couple, error) {
	if mock.CreateFunc == nil {
		panic("coupleRepoMock.CreateFunc: method is nil but coupleRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Couple
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *coupleRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Couple
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *coupleRepoMock) End(ctx context.Context, id uuid.UUID, endedDate time.Time) (*domain.Couple, error) {
	if mock.EndFunc == nil {
		panic("coupleRepoMock.EndFunc: method is nil but coupleRepo.End was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        uuid.UUID
		EndedDate time.Time
	}{Ctx: ctx, ID: id, EndedDate: endedDate}
	mock.lockEnd.Lock()
	mock.calls.End = append(mock.calls.End, callInfo)
	mock.lockEnd.Unlock()
	return mock.EndFunc(ctx, id, endedDate)
}

func (mock *coupleRepoMock) EndCalls() []struct {
	Ctx       context.Context
	ID        uuid.UUID
	EndedDate time.Time
} {
	mock.lockEnd.RLock()
	calls := mock.calls.End
	mock.lockEnd.RUnlock()
	return calls
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

func (mock *coupleRepoMock) GetByInviteCodeForUpdate(ctx context.Context, code string) (*domain.Couple, error) {
	if mock.GetByInviteCodeForUpdateFunc == nil {
		panic("coupleRepoMock.GetByInviteCodeForUpdateFunc: method is nil but coupleRepo.GetByInviteCodeForUpdate was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Code string
	}{Ctx: ctx, Code: code}
	mock.lockGetByInviteCodeForUpdate.Lock()
	mock.calls.GetByInviteCodeForUpdate = append(mock.calls.GetByInviteCodeForUpdate, callInfo)
	mock.lockGetByInviteCodeForUpdate.Unlock()
	return mock.GetByInviteCodeForUpdateFunc(ctx, code)
}

func (mock *coupleRepoMock) GetByInviteCodeForUpdateCalls() []struct {
	Ctx  context.Context
	Code string
} {
	mock.lockGetByInviteCodeForUpdate.RLock()
	calls := mock.calls.GetByInviteCodeForUpdate
	mock.lockGetByInviteCodeForUpdate.RUnlock()
	return calls
}

func (mock *coupleRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Couple, error) {
	if mock.ListByUserFunc == nil {
		panic("coupleRepoMock.ListByUserFunc: method is nil but coupleRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *coupleRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *coupleRepoMock) ReleaseMemberships(ctx context.Context, coupleID uuid.UUID) error {
	if mock.ReleaseMembershipsFunc == nil {
		panic("coupleRepoMock.ReleaseMembershipsFunc: method is nil but coupleRepo.ReleaseMemberships was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		CoupleID uuid.UUID
	}{Ctx: ctx, CoupleID: coupleID}
	mock.lockReleaseMemberships.Lock()
	mock.calls.ReleaseMemberships = append(mock.calls.ReleaseMemberships, callInfo)
	mock.lockReleaseMemberships.Unlock()
	return mock.ReleaseMembershipsFunc(ctx, coupleID)
}

func (mock *coupleRepoMock) ReleaseMembershipsCalls() []struct {
	Ctx      context.Context
	CoupleID uuid.UUID
} {
	mock.lockReleaseMemberships.RLock()
	calls := mock.calls.ReleaseMemberships
	mock.lockReleaseMemberships.RUnlock()
	return calls
}

func (mock *coupleRepoMock) SetPartner(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*domain.Couple, error) {
	if mock.SetPartnerFunc == nil {
		panic("coupleRepoMock.SetPartnerFunc: method is nil but coupleRepo.SetPartner was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		UserID uuid.UUID
	}{Ctx: ctx, ID: id, UserID: userID}
	mock.lockSetPartner.Lock()
	mock.calls.SetPartner = append(mock.calls.SetPartner, callInfo)
	mock.lockSetPartner.Unlock()
	return mock.SetPartnerFunc(ctx, id, userID)
}

func (mock *coupleRepoMock) SetPartnerCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	UserID uuid.UUID
} {
	mock.lockSetPartner.RLock()
	calls := mock.calls.SetPartner
	mock.lockSetPartner.RUnlock()
	return calls
}

func (mock *coupleRepoMock) UpdateAnniversary(ctx context.Context, id uuid.UUID, date *time.Time) (*domain.Couple, error) {
	if mock.UpdateAnniversaryFunc == nil {
		panic("coupleRepoMock.UpdateAnniversaryFunc: method is nil but coupleRepo.UpdateAnniversary was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		Date *time.Time
	}{Ctx: ctx, ID: id, Date: date}
	mock.lockUpdateAnniversary.Lock()
	mock.calls.UpdateAnniversary = append(mock.calls.UpdateAnniversary, callInfo)
	mock.lockUpdateAnniversary.Unlock()
	return mock.UpdateAnniversaryFunc(ctx, id, date)
}

func (mock *coupleRepoMock) UpdateAnniversaryCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	Date *time.Time
} {
	mock.lockUpdateAnniversary.RLock()
	calls := mock.calls.UpdateAnniversary
	mock.lockUpdateAnniversary.RUnlock()
	return calls
}
