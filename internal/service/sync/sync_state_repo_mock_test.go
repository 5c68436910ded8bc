package sync

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/hackweekhq/hackweek-backend/internal/domain"
)

var _ syncStateRepo = &syncStateRepoMock{}

type syncStateRepoMock struct {
	GetFunc    func(ctx context.Context, eventID uuid.UUID) (*domain.SyncState, error)
	UpsertFunc func(ctx context.Context, state domain.SyncState) error

	calls struct {
		Get []struct {
			Ctx     context.Context
			EventID uuid.UUID
		}
		Upsert []struct {
			Ctx   context.Context
			State domain.SyncState
		}
	}
	lockGet    sync.RWMutex
	lockUpsert sync.RWMutex
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

func (mock *syncStateRepoMock) Upsert(ctx context.Context, state domain.SyncState) error {
	if mock.UpsertFunc == nil {
		panic("syncStateRepoMock.UpsertFunc: method is nil but syncStateRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		State domain.SyncState
	}{Ctx: ctx, State: state}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, state)
}

func (mock *syncStateRepoMock) UpsertCalls() []struct {
	Ctx   context.Context
	State domain.SyncState
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
