package sync

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/hackweekhq/hackweek-backend/internal/domain"
)

var _ adminRepo = &adminRepoMock{}

type adminRepoMock struct {
	ListByEventFunc func(ctx context.Context, eventID uuid.UUID) (domain.AdminSet, error)

	calls struct {
		ListByEvent []struct {
			Ctx     context.Context
			EventID uuid.UUID
		}
	}
	lockListByEvent sync.RWMutex
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
