// Package sync implements the reconciler that pushes an event's submissions
// into the external library system, tracks the per-event sync state, and
// classifies failures for operator and user guidance.
package sync

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hackweekhq/hackweek-backend/internal/domain"
)

type eventRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.LifecycleStatus) error
}

type adminRepo interface {
	ListByEvent(ctx context.Context, eventID uuid.UUID) (domain.AdminSet, error)
}

type submissionRepo interface {
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*domain.Submission, error)
	MarkSynced(ctx context.Context, id uuid.UUID, at time.Time) error
}

type syncStateRepo interface {
	Get(ctx context.Context, eventID uuid.UUID) (*domain.SyncState, error)
	Upsert(ctx context.Context, state domain.SyncState) error
}

type auditLog interface {
	Append(ctx context.Context, e domain.AuditEntry) error
}

// Service drives reconciliation runs.
type Service struct {
	events eventRepo
	admins adminRepo
	subs   submissionRepo
	states syncStateRepo
	audit  auditLog
	log    *slog.Logger

	now   func() time.Time
	newID func() uuid.UUID
}

// NewService creates the sync service.
func NewService(
	log *slog.Logger,
	events eventRepo,
	admins adminRepo,
	subs submissionRepo,
	states syncStateRepo,
	audit auditLog,
) *Service {
	return &Service{
		events: events,
		admins: admins,
		subs:   subs,
		states: states,
		audit:  audit,
		log:    log.With("service", "sync"),
		now:    time.Now,
		newID:  uuid.New,
	}
}

// WithClock overrides the time source, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithIDSource overrides the id generator, for tests.
func (s *Service) WithIDSource(newID func() uuid.UUID) *Service {
	s.newID = newID
	return s
}

// Status returns the event's persisted sync state, or a not_started state
// when no run has ever happened.
func (s *Service) Status(ctx context.Context, eventID uuid.UUID) (*domain.SyncState, error) {
	state, err := s.states.Get(ctx, eventID)
	if err == nil {
		return state, nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.SyncState{EventID: eventID, Status: domain.SyncNotStarted}, nil
	}
	return nil, err
}
