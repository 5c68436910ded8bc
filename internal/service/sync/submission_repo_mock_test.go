package sync

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hackweekhq/hackweek-backend/internal/domain"
)

var _ submissionRepo = &submissionRepoMock{}

type submissionRepoMock struct {
	ListByEventFunc func(ctx context.Context, eventID uuid.UUID) ([]*domain.Submission, error)
	MarkSyncedFunc  func(ctx context.Context, id uuid.UUID, at time.Time) error

	calls struct {
		ListByEvent []struct {
			Ctx     context.Context
			EventID uuid.UUID
		}
		MarkSynced []struct {
			Ctx context.Context
			ID  uuid.UUID
			At  time.Time
		}
	}
	lockListByEvent sync.RWMutex
	lockMarkSynced  sync.RWMutex
}

func (mock *submissionRepoMock) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*domain.Submission, error) {
	if mock.ListByEventFunc == nil {
		panic("submissionRepoMock.ListByEventFunc: method is nil but submissionRepo.ListByEvent was just called")
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

func (mock *submissionRepoMock) ListByEventCalls() []struct {
	Ctx     context.Context
	EventID uuid.UUID
} {
	mock.lockListByEvent.RLock()
	calls := mock.calls.ListByEvent
	mock.lockListByEvent.RUnlock()
	return calls
}

func (mock *submissionRepoMock) MarkSynced(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.MarkSyncedFunc == nil {
		panic("submissionRepoMock.MarkSyncedFunc: method is nil but submissionRepo.MarkSynced was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		At  time.Time
	}{Ctx: ctx, ID: id, At: at}
	mock.lockMarkSynced.Lock()
	mock.calls.MarkSynced = append(mock.calls.MarkSynced, callInfo)
	mock.lockMarkSynced.Unlock()
	return mock.MarkSyncedFunc(ctx, id, at)
}

func (mock *submissionRepoMock) MarkSyncedCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	At  time.Time
} {
	mock.lockMarkSynced.RLock()
	calls := mock.calls.MarkSynced
	mock.lockMarkSynced.RUnlock()
	return calls
}
