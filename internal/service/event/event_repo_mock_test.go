package event

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/hackweekhq/hackweek-backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	CreateFunc                 func(ctx context.Context, ev *domain.Event) (*domain.Event, error)
	GetByIDFunc                func(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	GetByCreationRequestIDFunc func(ctx context.Context, requestID string) (*domain.Event, error)
	UpdateStatusFunc           func(ctx context.Context, id uuid.UUID, status domain.LifecycleStatus) error
	SetPageIDFunc              func(ctx context.Context, id uuid.UUID, pageID string) error
	DeleteFunc                 func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			Ev  *domain.Event
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByCreationRequestID []struct {
			Ctx       context.Context
			RequestID string
		}
		UpdateStatus []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Status domain.LifecycleStatus
		}
		SetPageID []struct {
			Ctx    context.Context
			ID     uuid.UUID
			PageID string
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate                 sync.RWMutex
	lockGetByID                sync.RWMutex
	lockGetByCreationRequestID sync.RWMutex
	lockUpdateStatus           sync.RWMutex
	lockSetPageID              sync.RWMutex
	lockDelete                 sync.RWMutex
}

func (mock *eventRepoMock) Create(ctx context.Context, ev *domain.Event) (*domain.Event, error) {
	if mock.CreateFunc == nil {
		panic("eventRepoMock.CreateFunc: method is nil but eventRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ev  *domain.Event
	}{Ctx: ctx, Ev: ev}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ev)
}

func (mock *eventRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Ev  *domain.Event
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *eventRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	if mock.GetByIDFunc == nil {
		panic("eventRepoMock.GetByIDFunc: method is nil but eventRepo.GetByID was just called")
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

func (mock *eventRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *eventRepoMock) GetByCreationRequestID(ctx context.Context, requestID string) (*domain.Event, error) {
	if mock.GetByCreationRequestIDFunc == nil {
		panic("eventRepoMock.GetByCreationRequestIDFunc: method is nil but eventRepo.GetByCreationRequestID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		RequestID string
	}{Ctx: ctx, RequestID: requestID}
	mock.lockGetByCreationRequestID.Lock()
	mock.calls.GetByCreationRequestID = append(mock.calls.GetByCreationRequestID, callInfo)
	mock.lockGetByCreationRequestID.Unlock()
	return mock.GetByCreationRequestIDFunc(ctx, requestID)
}

func (mock *eventRepoMock) GetByCreationRequestIDCalls() []struct {
	Ctx       context.Context
	RequestID string
} {
	mock.lockGetByCreationRequestID.RLock()
	calls := mock.calls.GetByCreationRequestID
	mock.lockGetByCreationRequestID.RUnlock()
	return calls
}

func (mock *eventRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.LifecycleStatus) error {
	if mock.UpdateStatusFunc == nil {
		panic("eventRepoMock.UpdateStatusFunc: method is nil but eventRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.LifecycleStatus
	}{Ctx: ctx, ID: id, Status: status}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *eventRepoMock) UpdateStatusCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Status domain.LifecycleStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *eventRepoMock) SetPageID(ctx context.Context, id uuid.UUID, pageID string) error {
	if mock.SetPageIDFunc == nil {
		panic("eventRepoMock.SetPageIDFunc: method is nil but eventRepo.SetPageID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		PageID string
	}{Ctx: ctx, ID: id, PageID: pageID}
	mock.lockSetPageID.Lock()
	mock.calls.SetPageID = append(mock.calls.SetPageID, callInfo)
	mock.lockSetPageID.Unlock()
	return mock.SetPageIDFunc(ctx, id, pageID)
}

func (mock *eventRepoMock) SetPageIDCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	PageID string
} {
	mock.lockSetPageID.RLock()
	calls := mock.calls.SetPageID
	mock.lockSetPageID.RUnlock()
	return calls
}

func (mock *eventRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("eventRepoMock.DeleteFunc: method is nil but eventRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *eventRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
