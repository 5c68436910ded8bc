package event

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/hackweekhq/hackweek-backend/internal/domain"
)

var _ syncStateRepo = &syncStateRepoMock{}

type syncStateRepoMock struct {
	GetFunc           func(ctx context.Context, eventID uuid.UUID) (*domain.SyncState, error)
	DeleteByEventFunc func(ctx context.Context, eventID uuid.UUID) error

	calls struct {
		Get []struct {
			Ctx     context.Context
			EventID uuid.UUID
		}
		DeleteByEvent []struct {
			Ctx     context.Context
			EventID uuid.UUID
		}
	}
	lockGet           sync.RWMutex
	lockDeleteByEvent sync.RWMutex
}

func (mock *syncStateRepoMock) Get(ctx context.Context, eventID uuid.UUID) (*domain.SyncState, error) {
	if mock.GetFunc == nil {
		panic("syncStateRepoMock.GetFunc: method is nil but syncStateRepo.Get was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EventID uuid.UUID
	}{Ctx: ctx, EventID: eventID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, eventID)
}

func (mock *syncStateRepoMock) GetCalls() []struct {
	Ctx     context.Context
	EventID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *syncStateRepoMock) DeleteByEvent(ctx context.Context, eventID uuid.UUID) error {
	if mock.DeleteByEventFunc == nil {
		panic("syncStateRepoMock.DeleteByEventFunc: method is nil but syncStateRepo.DeleteByEvent was just called")
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

func (mock *syncStateRepoMock) DeleteByEventCalls() []struct {
	Ctx     context.Context
	EventID uuid.UUID
} {
	mock.lockDeleteByEvent.RLock()
	calls := mock.calls.DeleteByEvent
	mock.lockDeleteByEvent.RUnlock()
	return calls
}
