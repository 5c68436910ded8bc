package event

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/hackweekhq/hackweek-backend/internal/domain"
)

// CreateEvent creates a new event instance in draft status with the actor as
// primary admin. The operation is idempotent on CreationRequestID: a repeat
// request returns the already-created event without creating a second page.
func (s *Service) CreateEvent(ctx context.Context, actorID uuid.UUID, input CreateEventInput) (*domain.Event, error) {
	if actorID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.events.GetByCreationRequestID(ctx, input.CreationRequestID)
	if err == nil {
		s.log.InfoContext(ctx, "create request replayed",
			slog.String("creation_request_id", input.CreationRequestID),
			slog.String("event_id", existing.ID.String()),
		)
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("lookup creation request: %w", err)
	}

	name := strings.TrimSpace(input.Name)

	ev := &domain.Event{
		ID:                s.newID(),
		Name:              name,
		Icon:              strings.TrimSpace(input.Icon),
		Tagline:           strings.TrimSpace(input.Tagline),
		Timezone:          input.Timezone,
		Status:            domain.StatusDraft,
		ParentPageID:      input.ParentPageID,
		CreationRequestID: input.CreationRequestID,
		Schedule:          input.Schedule,
		Rules:             input.Rules,
		CreatedAt:         s.now(),
		UpdatedAt:         s.now(),
	}

	created, err := s.events.Create(ctx, ev)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	if _, err := s.admins.Create(ctx, domain.EventAdmin{
		ID:        s.newID(),
		EventID:   created.ID,
		UserID:    actorID,
		Role:      domain.RolePrimary,
		CreatedAt: s.now(),
	}); err != nil {
		return nil, fmt.Errorf("create primary admin: %w", err)
	}

	// The page is provisioned after the event row exists. A host outage
	// leaves PageID nil rather than failing the whole create.
	pageID, pageErr := s.pages.CreatePage(ctx, name, input.ParentPageID)
	if pageErr != nil {
		s.log.ErrorContext(ctx, "page creation failed, event left without page",
			slog.String("event_id", created.ID.String()),
			slog.String("error", pageErr.Error()),
		)
	} else {
		if err := s.events.SetPageID(ctx, created.ID, pageID); err != nil {
			return nil, fmt.Errorf("set page id: %w", err)
		}
		created.PageID = &pageID
	}

	if err := s.audit.Append(ctx, domain.AuditEntry{
		ID:        s.newID(),
		EventID:   created.ID,
		ActorID:   actorID,
		Action:    domain.AuditEventCreated,
		NextValue: string(domain.StatusDraft),
		CreatedAt: s.now(),
	}); err != nil {
		return nil, fmt.Errorf("audit event creation: %w", err)
	}

	s.log.InfoContext(ctx, "event created",
		slog.String("event_id", created.ID.String()),
		slog.String("actor_id", actorID.String()),
		slog.String("name", name),
	)

	return created, nil
}
