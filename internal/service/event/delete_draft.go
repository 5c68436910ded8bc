package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hackweekhq/hackweek-backend/internal/domain"
)

// DeleteDraft removes a draft event and its dependent records. Only the
// primary admin may delete, only while the event is still a draft, and only
// when no submissions have been filed against it.
func (s *Service) DeleteDraft(ctx context.Context, actorID, eventID uuid.UUID) error {
	if actorID == uuid.Nil {
		return domain.ErrUnauthorized
	}

	ev, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}

	admins, err := s.admins.ListByEvent(ctx, eventID)
	if err != nil {
		return fmt.Errorf("list admins: %w", err)
	}
	if !admins.IsPrimary(actorID) {
		return domain.ErrForbidden
	}

	if ev.Status != domain.StatusDraft {
		return fmt.Errorf("event is %s, only drafts can be deleted: %w", ev.Status, domain.ErrConflict)
	}

	count, err := s.subs.CountByEvent(ctx, eventID)
	if err != nil {
		return fmt.Errorf("count submissions: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("event has %d submissions: %w", count, domain.ErrConflict)
	}

	if ev.PageID != nil {
		// Best effort. An orphaned page is recoverable by hand; a blocked
		// deletion is not.
		if err := s.pages.DeletePage(ctx, *ev.PageID); err != nil {
			s.log.ErrorContext(ctx, "page deletion failed, continuing",
				slog.String("event_id", eventID.String()),
				slog.String("page_id", *ev.PageID),
				slog.String("error", err.Error()),
			)
		}
	}

	if err := s.admins.DeleteByEvent(ctx, eventID); err != nil {
		return fmt.Errorf("delete admins: %w", err)
	}
	if err := s.states.DeleteByEvent(ctx, eventID); err != nil {
		return fmt.Errorf("delete sync state: %w", err)
	}
	if err := s.audit.DeleteByEvent(ctx, eventID); err != nil {
		return fmt.Errorf("delete audit log: %w", err)
	}
	if err := s.events.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.log.InfoContext(ctx, "draft event deleted",
		slog.String("event_id", eventID.String()),
		slog.String("actor_id", actorID.String()),
	)

	return nil
}
