package event

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/hackweekhq/hackweek-backend/internal/domain"
)

var _ adminRepo = &adminRepoMock{}

type adminRepoMock struct {
	ListByEventFunc   func(ctx context.Context, eventID uuid.UUID) (domain.AdminSet, error)
	CreateFunc        func(ctx context.Context, a domain.EventAdmin) (domain.EventAdmin, error)
	DeleteByEventFunc func(ctx context.Context, eventID uuid.UUID) error

	calls struct {
		ListByEvent []struct {
			Ctx     context.Context
			EventID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			A   domain.EventAdmin
		}
		DeleteByEvent []struct {
			Ctx     context.Context
			EventID uuid.UUID
		}
	}
	lockListByEvent   sync.RWMutex
	lockCreate        sync.RWMutex
	lockDeleteByEvent sync.RWMutex
}

func (mock *adminRepoMock) ListByEvent(ctx context.Context, eventID uuid.UUID) (domain.AdminSet, error) {
	if mock.ListByEventFunc == nil {
		panic("adminRepoMock.ListByEventFunc: method is nil but adminRepo.ListByEvent was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EventID uuid.UUID
	}{Ctx: ctx, EventID: eventID}
	mock.lockListByEvent.Lock()
	mock.calls.ListByEvent = append(mock.calls.ListByEvent, callInfo)
	mock.lockListByEvent.Unlock()
	return mock.ListByEventFunc(ctx, eventID)
}

func (mock *adminRepoMock) ListByEventCalls() []struct {
	Ctx     context.Context
	EventID uuid.UUID
} {
	mock.lockListByEvent.RLock()
	calls := mock.calls.ListByEvent
	mock.lockListByEvent.RUnlock()
	return calls
}

func (mock *adminRepoMock) Create(ctx context.Context, a domain.EventAdmin) (domain.EventAdmin, error) {
	if mock.CreateFunc == nil {
		panic("adminRepoMock.CreateFunc: method is nil but adminRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   domain.EventAdmin
	}{Ctx: ctx, A: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *adminRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   domain.EventAdmin
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *adminRepoMock) DeleteByEvent(ctx context.Context, eventID uuid.UUID) error {
	if mock.DeleteByEventFunc == nil {
		panic("adminRepoMock.DeleteByEventFunc: method is nil but adminRepo.DeleteByEvent was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EventID uuid.UUID
	}{Ctx: ctx, EventID: eventID}
	mock.lockDeleteByEvent.Lock()
	mock.calls.DeleteByEvent = append(mock.calls.DeleteByEvent, callInfo)
	mock.lockDeleteByEvent.Unlock()
	return mock.DeleteByEventFunc(ctx, eventID)
}

func (mock *adminRepoMock) DeleteByEventCalls() []struct {
	Ctx     context.Context
	EventID uuid.UUID
} {
	mock.lockDeleteByEvent.RLock()
	calls := mock.calls.DeleteByEvent
	mock.lockDeleteByEvent.RUnlock()
	return calls
}
