// Package audit implements the append-only audit log repository with a
// fixed per-event retention ceiling enforced at write time.
package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hackweekhq/hackweek-backend/internal/adapter/tablestore"
	"github.com/hackweekhq/hackweek-backend/internal/domain"
)

const relation = "event_audit_log"

// DefaultRetention is the ceiling used when configuration does not override
// it.
const DefaultRetention = 50

type gateway interface {
	Select(ctx context.Context, relation string, p tablestore.SelectParams) ([]tablestore.Row, error)
	Insert(ctx context.Context, relation string, row tablestore.Row) (tablestore.Row, error)
	Delete(ctx context.Context, relation string, filters []tablestore.Filter) ([]tablestore.Row, error)
}

var _ gateway = (*tablestore.Client)(nil)

// Repo provides audit log persistence.
type Repo struct {
	gw        gateway
	retention int
}

// New creates an audit repository keeping at most retention entries per
// event.
func New(gw gateway, retention int) *Repo {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &Repo{gw: gw, retention: retention}
}

// Append inserts an entry and trims the event's log back down to the
// retention ceiling, deleting the oldest excess entries by creation order.
func (r *Repo) Append(ctx context.Context, e domain.AuditEntry) error {
	if _, err := r.gw.Insert(ctx, relation, tablestore.Row{
		"id":         e.ID.String(),
		"event_id":   e.EventID.String(),
		"actor_id":   e.ActorID.String(),
		"action":     e.Action.String(),
		"prev_value": e.PrevValue,
		"next_value": e.NextValue,
	}); err != nil {
		return fmt.Errorf("append audit entry for event %s: %w", e.EventID, err)
	}

	return r.trim(ctx, e.EventID)
}

// ListByEvent returns the newest entries first, up to limit.
func (r *Repo) ListByEvent(ctx context.Context, eventID uuid.UUID, limit int) ([]domain.AuditEntry, error) {
	rows, err := r.gw.Select(ctx, relation, tablestore.SelectParams{
		Filters:    []tablestore.Filter{tablestore.Eq("event_id", eventID.String())},
		OrderBy:    "created_at",
		Descending: true,
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list audit entries for event %s: %w", eventID, err)
	}

	entries := make([]domain.AuditEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, decode(row))
	}
	return entries, nil
}

// DeleteByEvent removes the whole log, as part of draft cascade delete.
func (r *Repo) DeleteByEvent(ctx context.Context, eventID uuid.UUID) error {
	if _, err := r.gw.Delete(ctx, relation, []tablestore.Filter{
		tablestore.Eq("event_id", eventID.String()),
	}); err != nil {
		return fmt.Errorf("delete audit entries for event %s: %w", eventID, err)
	}
	return nil
}

func (r *Repo) trim(ctx context.Context, eventID uuid.UUID) error {
	rows, err := r.gw.Select(ctx, relation, tablestore.SelectParams{
		Columns: []string{"id"},
		Filters: []tablestore.Filter{tablestore.Eq("event_id", eventID.String())},
		OrderBy: "created_at",
	})
	if err != nil {
		return fmt.Errorf("trim audit entries for event %s: %w", eventID, err)
	}

	excess := len(rows) - r.retention
	for i := 0; i < excess; i++ {
		id, ok := rows[i].String("id")
		if !ok {
			continue
		}
		if _, err := r.gw.Delete(ctx, relation, []tablestore.Filter{
			tablestore.Eq("id", id),
		}); err != nil {
			return fmt.Errorf("trim audit entry %s: %w", id, err)
		}
	}
	return nil
}

func decode(row tablestore.Row) domain.AuditEntry {
	e := domain.AuditEntry{}
	e.ID, _ = row.UUID("id")
	e.EventID, _ = row.UUID("event_id")
	e.ActorID, _ = row.UUID("actor_id")
	if s, ok := row.String("action"); ok {
		e.Action = domain.AuditAction(s)
	}
	e.PrevValue, _ = row.String("prev_value")
	e.NextValue, _ = row.String("next_value")
	e.CreatedAt, _ = row.Time("created_at")
	return e
}
