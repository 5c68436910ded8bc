package event

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hackweekhq/hackweek-backend/internal/domain"
)

// Advance moves the event one step along the lifecycle chain. Only admins of
// the event may advance it. The results -> completed transition additionally
// requires that the event's submissions have been fully reconciled.
func (s *Service) Advance(ctx context.Context, actorID, eventID uuid.UUID) (*domain.Event, error) {
	if actorID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	ev, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	admins, err := s.admins.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	if !admins.IsAdmin(actorID) {
		return nil, domain.ErrForbidden
	}

	next, ok := ev.Status.Next()
	if !ok {
		if ev.Status == domain.StatusArchived {
			return nil, fmt.Errorf("event is archived: %w", domain.ErrTerminalState)
		}
		return nil, fmt.Errorf("event already completed: %w", domain.ErrTerminalState)
	}

	if next == domain.StatusCompleted {
		if err := s.requireSyncComplete(ctx, eventID); err != nil {
			return nil, err
		}
	}

	if err := s.events.UpdateStatus(ctx, eventID, next); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	if err := s.audit.Append(ctx, domain.AuditEntry{
		ID:        s.newID(),
		EventID:   eventID,
		ActorID:   actorID,
		Action:    domain.AuditStatusChanged,
		PrevValue: string(ev.Status),
		NextValue: string(next),
		CreatedAt: s.now(),
	}); err != nil {
		return nil, fmt.Errorf("audit status change: %w", err)
	}

	s.log.InfoContext(ctx, "event advanced",
		slog.String("event_id", eventID.String()),
		slog.String("actor_id", actorID.String()),
		slog.String("from", ev.Status.String()),
		slog.String("to", next.String()),
	)

	ev.Status = next
	return ev, nil
}

func (s *Service) requireSyncComplete(ctx context.Context, eventID uuid.UUID) error {
	state, err := s.states.Get(ctx, eventID)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("submissions were never synced: %w", domain.ErrSyncIncomplete)
	}
	if err != nil {
		return fmt.Errorf("get sync state: %w", err)
	}
	if state.Status != domain.SyncComplete {
		return fmt.Errorf("sync status is %s: %w", state.Status, domain.ErrSyncIncomplete)
	}
	return nil
}
