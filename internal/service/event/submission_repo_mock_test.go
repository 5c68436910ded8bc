package event

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/hackweekhq/hackweek-backend/internal/domain"
)

var _ submissionRepo = &submissionRepoMock{}

type submissionRepoMock struct {
	CreateFunc       func(ctx context.Context, s *domain.Submission) (*domain.Submission, error)
	CountByEventFunc func(ctx context.Context, eventID uuid.UUID) (int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			S   *domain.Submission
		}
		CountByEvent []struct {
			Ctx     context.Context
			EventID uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockCountByEvent sync.RWMutex
}

func (mock *submissionRepoMock) Create(ctx context.Context, s *domain.Submission) (*domain.Submission, error) {
	if mock.CreateFunc == nil {
		panic("submissionRepoMock.CreateFunc: method is nil but submissionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Submission
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *submissionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.Submission
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *submissionRepoMock) CountByEvent(ctx context.Context, eventID uuid.UUID) (int, error) {
	if mock.CountByEventFunc == nil {
		panic("submissionRepoMock.CountByEventFunc: method is nil but submissionRepo.CountByEvent was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EventID uuid.UUID
	}{Ctx: ctx, EventID: eventID}
	mock.lockCountByEvent.Lock()
	mock.calls.CountByEvent = append(mock.calls.CountByEvent, callInfo)
	mock.lockCountByEvent.Unlock()
	return mock.CountByEventFunc(ctx, eventID)
}

func (mock *submissionRepoMock) CountByEventCalls() []struct {
	Ctx     context.Context
	EventID uuid.UUID
} {
	mock.lockCountByEvent.RLock()
	calls := mock.calls.CountByEvent
	mock.lockCountByEvent.RUnlock()
	return calls
}
