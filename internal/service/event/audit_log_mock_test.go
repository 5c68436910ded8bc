package event

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/hackweekhq/hackweek-backend/internal/domain"
)

var _ auditLog = &auditLogMock{}

type auditLogMock struct {
	AppendFunc        func(ctx context.Context, e domain.AuditEntry) error
	DeleteByEventFunc func(ctx context.Context, eventID uuid.UUID) error

	calls struct {
		Append []struct {
			Ctx context.Context
			E   domain.AuditEntry
		}
		DeleteByEvent []struct {
			Ctx     context.Context
			EventID uuid.UUID
		}
	}
	lockAppend        sync.RWMutex
	lockDeleteByEvent sync.RWMutex
}

func (mock *auditLogMock) Append(ctx context.Context, e domain.AuditEntry) error {
	if mock.AppendFunc == nil {
		panic("auditLogMock.AppendFunc: method is nil but auditLog.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.AuditEntry
	}{Ctx: ctx, E: e}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, e)
}

func (mock *auditLogMock) AppendCalls() []struct {
	Ctx context.Context
	E   domain.AuditEntry
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *auditLogMock) DeleteByEvent(ctx context.Context, eventID uuid.UUID) error {
	if mock.DeleteByEventFunc == nil {
		panic("auditLogMock.DeleteByEventFunc: method is nil but auditLog.DeleteByEvent was just called")
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

func (mock *auditLogMock) DeleteByEventCalls() []struct {
	Ctx     context.Context
	EventID uuid.UUID
} {
	mock.lockDeleteByEvent.RLock()
	calls := mock.calls.DeleteByEvent
	mock.lockDeleteByEvent.RUnlock()
	return calls
}
