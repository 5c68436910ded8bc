package event

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hackweekhq/hackweek-backend/internal/domain"
)

// CreateSubmission files a new submission. Submissions tied to an event are
// rejected once the event is read-only; general records are always accepted.
func (s *Service) CreateSubmission(ctx context.Context, input CreateSubmissionInput) (*domain.Submission, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.EventID != nil {
		ev, err := s.events.GetByID(ctx, *input.EventID)
		if err != nil {
			return nil, fmt.Errorf("get event: %w", err)
		}
		if ev.Status.IsReadOnly() {
			return nil, fmt.Errorf("event %s: %w", ev.ID, domain.ErrReadOnly)
		}
	}

	sub := &domain.Submission{
		ID:          s.newID(),
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		SourceType:  input.SourceType,
		UserID:      input.UserID,
		EventID:     input.EventID,
		CreatedAt:   s.now(),
	}

	created, err := s.subs.Create(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}

	if input.EventID != nil {
		if err := s.audit.Append(ctx, domain.AuditEntry{
			ID:        s.newID(),
			EventID:   *input.EventID,
			ActorID:   input.UserID,
			Action:    domain.AuditSubmissionCreated,
			NextValue: created.ID.String(),
			CreatedAt: s.now(),
		}); err != nil {
			return nil, fmt.Errorf("audit submission: %w", err)
		}
	}

	s.log.InfoContext(ctx, "submission created",
		slog.String("submission_id", created.ID.String()),
		slog.String("user_id", input.UserID.String()),
		slog.String("source_type", input.SourceType.String()),
	)

	return created, nil
}
