// Package admin implements the EventAdmin repository over the table store.
package admin

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hackweekhq/hackweek-backend/internal/adapter/tablestore"
	"github.com/hackweekhq/hackweek-backend/internal/domain"
)

const relation = "event_admins"

type gateway interface {
	Select(ctx context.Context, relation string, p tablestore.SelectParams) ([]tablestore.Row, error)
	Insert(ctx context.Context, relation string, row tablestore.Row) (tablestore.Row, error)
	Delete(ctx context.Context, relation string, filters []tablestore.Filter) ([]tablestore.Row, error)
}

var _ gateway = (*tablestore.Client)(nil)

// Repo provides admin roster persistence.
type Repo struct {
	gw gateway
}

// New creates an admin repository.
func New(gw gateway) *Repo {
	return &Repo{gw: gw}
}

// ListByEvent returns the event's full admin roster.
func (r *Repo) ListByEvent(ctx context.Context, eventID uuid.UUID) (domain.AdminSet, error) {
	rows, err := r.gw.Select(ctx, relation, tablestore.SelectParams{
		Filters: []tablestore.Filter{tablestore.Eq("event_id", eventID.String())},
		OrderBy: "created_at",
	})
	if err != nil {
		return nil, fmt.Errorf("list admins for event %s: %w", eventID, err)
	}

	set := make(domain.AdminSet, 0, len(rows))
	for _, row := range rows {
		set = append(set, decode(row))
	}
	return set, nil
}

// CountByUser returns how many events the user administers.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	rows, err := r.gw.Select(ctx, relation, tablestore.SelectParams{
		Columns: []string{"id"},
		Filters: []tablestore.Filter{tablestore.Eq("user_id", userID.String())},
	})
	if err != nil {
		return 0, fmt.Errorf("count admin rows for user %s: %w", userID, err)
	}
	return len(rows), nil
}

// Create adds an admin row. Exactly one primary is created per event, at
// event creation; there is no transfer operation.
func (r *Repo) Create(ctx context.Context, a domain.EventAdmin) (domain.EventAdmin, error) {
	row, err := r.gw.Insert(ctx, relation, tablestore.Row{
		"id":       a.ID.String(),
		"event_id": a.EventID.String(),
		"user_id":  a.UserID.String(),
		"role":     a.Role.String(),
	})
	if err != nil {
		return domain.EventAdmin{}, fmt.Errorf("create admin for event %s: %w", a.EventID, err)
	}
	return decode(row), nil
}

// DeleteByEvent removes the entire roster, as part of draft cascade delete.
func (r *Repo) DeleteByEvent(ctx context.Context, eventID uuid.UUID) error {
	if _, err := r.gw.Delete(ctx, relation, []tablestore.Filter{
		tablestore.Eq("event_id", eventID.String()),
	}); err != nil {
		return fmt.Errorf("delete admins for event %s: %w", eventID, err)
	}
	return nil
}

func decode(row tablestore.Row) domain.EventAdmin {
	a := domain.EventAdmin{}
	a.ID, _ = row.UUID("id")
	a.EventID, _ = row.UUID("event_id")
	a.UserID, _ = row.UUID("user_id")
	if s, ok := row.String("role"); ok {
		a.Role = domain.AdminRole(s)
	}
	a.CreatedAt, _ = row.Time("created_at")
	return a
}
