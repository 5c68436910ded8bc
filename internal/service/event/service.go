// Package event implements instance management: idempotent creation,
// guarded lifecycle transitions, submission intake, and draft deletion.
package event

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hackweekhq/hackweek-backend/internal/domain"
)

type eventRepo interface {
	Create(ctx context.Context, ev *domain.Event) (*domain.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	GetByCreationRequestID(ctx context.Context, requestID string) (*domain.Event, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.LifecycleStatus) error
	SetPageID(ctx context.Context, id uuid.UUID, pageID string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type adminRepo interface {
	ListByEvent(ctx context.Context, eventID uuid.UUID) (domain.AdminSet, error)
	Create(ctx context.Context, a domain.EventAdmin) (domain.EventAdmin, error)
	DeleteByEvent(ctx context.Context, eventID uuid.UUID) error
}

type submissionRepo interface {
	Create(ctx context.Context, s *domain.Submission) (*domain.Submission, error)
	CountByEvent(ctx context.Context, eventID uuid.UUID) (int, error)
}

type syncStateRepo interface {
	Get(ctx context.Context, eventID uuid.UUID) (*domain.SyncState, error)
	DeleteByEvent(ctx context.Context, eventID uuid.UUID) error
}

type auditLog interface {
	Append(ctx context.Context, e domain.AuditEntry) error
	DeleteByEvent(ctx context.Context, eventID uuid.UUID) error
}

type pageHost interface {
	CreatePage(ctx context.Context, title string, parentID *string) (string, error)
	DeletePage(ctx context.Context, pageID string) error
}

// Service provides event instance operations.
type Service struct {
	events eventRepo
	admins adminRepo
	subs   submissionRepo
	states syncStateRepo
	audit  auditLog
	pages  pageHost
	log    *slog.Logger

	now   func() time.Time
	newID func() uuid.UUID
}

// NewService creates the event service.
func NewService(
	log *slog.Logger,
	events eventRepo,
	admins adminRepo,
	subs submissionRepo,
	states syncStateRepo,
	audit auditLog,
	pages pageHost,
) *Service {
	return &Service{
		events: events,
		admins: admins,
		subs:   subs,
		states: states,
		audit:  audit,
		pages:  pages,
		log:    log.With("service", "event"),
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

// GetEvent returns the event or domain.ErrNotFound.
func (s *Service) GetEvent(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	return s.events.GetByID(ctx, id)
}
