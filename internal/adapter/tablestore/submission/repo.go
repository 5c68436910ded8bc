// Package submission implements the Submission ("hack") repository.
// Intake goes through the schema-negotiating writer: the hacks relation is
// the prime example of a drifting legacy table, including deployments that
// still require a team foreign key.
package submission

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hackweekhq/hackweek-backend/internal/adapter/tablestore"
	"github.com/hackweekhq/hackweek-backend/internal/adapter/tablestore/writer"
	"github.com/hackweekhq/hackweek-backend/internal/domain"
)

const relation = "hacks"

type gateway interface {
	Select(ctx context.Context, relation string, p tablestore.SelectParams) ([]tablestore.Row, error)
	Patch(ctx context.Context, relation string, patch tablestore.Row, filters []tablestore.Filter) ([]tablestore.Row, error)
}

type rowWriter interface {
	Insert(ctx context.Context, relation string, base writer.Fields) (tablestore.Row, error)
}

var _ gateway = (*tablestore.Client)(nil)
var _ rowWriter = (*writer.Writer)(nil)

// Repo provides submission persistence.
type Repo struct {
	gw gateway
	w  rowWriter
}

// New creates a submission repository.
func New(gw gateway, w rowWriter) *Repo {
	return &Repo{gw: gw, w: w}
}

// Create inserts a submission through the negotiating writer.
func (r *Repo) Create(ctx context.Context, s *domain.Submission) (*domain.Submission, error) {
	base := writer.Fields{
		"id":          s.ID.String(),
		"title":       s.Title,
		"description": s.Description,
		"source_type": s.SourceType.String(),
		"user_id":     s.UserID.String(),
	}
	if s.EventID != nil {
		base["event_id"] = s.EventID.String()
	}

	row, err := r.w.Insert(ctx, relation, base)
	if err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}
	return decode(row), nil
}

// ListByEvent returns every submission filed against the event, oldest
// first so reconciliation order is stable.
func (r *Repo) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*domain.Submission, error) {
	rows, err := r.gw.Select(ctx, relation, tablestore.SelectParams{
		Filters: []tablestore.Filter{tablestore.Eq("event_id", eventID.String())},
		OrderBy: "created_at",
	})
	if err != nil {
		return nil, fmt.Errorf("list submissions for event %s: %w", eventID, err)
	}

	subs := make([]*domain.Submission, 0, len(rows))
	for _, row := range rows {
		subs = append(subs, decode(row))
	}
	return subs, nil
}

// CountByEvent returns the number of submissions filed against the event.
func (r *Repo) CountByEvent(ctx context.Context, eventID uuid.UUID) (int, error) {
	rows, err := r.gw.Select(ctx, relation, tablestore.SelectParams{
		Columns: []string{"id"},
		Filters: []tablestore.Filter{tablestore.Eq("event_id", eventID.String())},
	})
	if err != nil {
		return 0, fmt.Errorf("count submissions for event %s: %w", eventID, err)
	}
	return len(rows), nil
}

// CountByUser returns the number of submissions owned by the user.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	rows, err := r.gw.Select(ctx, relation, tablestore.SelectParams{
		Columns: []string{"id"},
		Filters: []tablestore.Filter{tablestore.Eq("user_id", userID.String())},
	})
	if err != nil {
		return 0, fmt.Errorf("count submissions for user %s: %w", userID, err)
	}
	return len(rows), nil
}

// MarkSynced sets synced_at. Re-marking an already-synced submission is a
// no-op at the store level, which is what makes reconciliation idempotent.
func (r *Repo) MarkSynced(ctx context.Context, id uuid.UUID, at time.Time) error {
	rows, err := r.gw.Patch(ctx, relation,
		tablestore.Row{"synced_at": at.UTC().Format(time.RFC3339)},
		[]tablestore.Filter{tablestore.Eq("id", id.String())},
	)
	if err != nil {
		return fmt.Errorf("mark submission %s synced: %w", id, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("submission %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func decode(row tablestore.Row) *domain.Submission {
	s := &domain.Submission{}
	s.ID, _ = row.UUID("id")
	s.Title, _ = row.String("title")
	s.Description, _ = row.String("description")
	if v, ok := row.String("source_type"); ok {
		s.SourceType = domain.SourceType(v)
	}
	s.UserID, _ = row.UUID("user_id")
	s.EventID = row.UUIDPtr("event_id")
	s.SyncedAt = row.TimePtr("synced_at")
	s.CreatedAt, _ = row.Time("created_at")
	return s
}
