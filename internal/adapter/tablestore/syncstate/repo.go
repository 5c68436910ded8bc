// Package syncstate implements the per-event SyncState repository. The
// relation's shape is assumed stable, so reads and writes go through the
// gateway directly rather than the negotiating writer.
package syncstate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hackweekhq/hackweek-backend/internal/adapter/tablestore"
	"github.com/hackweekhq/hackweek-backend/internal/domain"
)

const relation = "event_sync_state"

type gateway interface {
	SelectOne(ctx context.Context, relation string, p tablestore.SelectParams) (tablestore.Row, error)
	Upsert(ctx context.Context, relation string, row tablestore.Row, conflictColumn string) (tablestore.Row, error)
	Delete(ctx context.Context, relation string, filters []tablestore.Filter) ([]tablestore.Row, error)
}

var _ gateway = (*tablestore.Client)(nil)

// Repo provides sync-state persistence. One row per event, upserted.
type Repo struct {
	gw gateway
}

// New creates a sync-state repository.
func New(gw gateway) *Repo {
	return &Repo{gw: gw}
}

// Get returns the event's sync state, or domain.ErrNotFound when no run has
// ever been recorded.
func (r *Repo) Get(ctx context.Context, eventID uuid.UUID) (*domain.SyncState, error) {
	row, err := r.gw.SelectOne(ctx, relation, tablestore.SelectParams{
		Filters: []tablestore.Filter{tablestore.Eq("event_id", eventID.String())},
	})
	if err != nil {
		if errors.Is(err, tablestore.ErrNoRows) {
			return nil, fmt.Errorf("sync state for event %s: %w", eventID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("sync state for event %s: %w", eventID, err)
	}
	return decode(row), nil
}

// Upsert writes the state keyed on event_id. Concurrent runs race here;
// last writer wins and the per-submission synced_at stays authoritative.
func (r *Repo) Upsert(ctx context.Context, state domain.SyncState) error {
	_, err := r.gw.Upsert(ctx, relation, tablestore.Row{
		"event_id":        state.EventID.String(),
		"sync_status":     state.Status.String(),
		"pushed_count":    state.PushedCount,
		"skipped_count":   state.SkippedCount,
		"last_error":      state.LastError,
		"last_attempt_at": state.LastAttemptAt.UTC().Format(time.RFC3339),
	}, "event_id")
	if err != nil {
		return fmt.Errorf("upsert sync state for event %s: %w", state.EventID, err)
	}
	return nil
}

// DeleteByEvent removes the state row, as part of draft cascade delete.
func (r *Repo) DeleteByEvent(ctx context.Context, eventID uuid.UUID) error {
	if _, err := r.gw.Delete(ctx, relation, []tablestore.Filter{
		tablestore.Eq("event_id", eventID.String()),
	}); err != nil {
		return fmt.Errorf("delete sync state for event %s: %w", eventID, err)
	}
	return nil
}

func decode(row tablestore.Row) *domain.SyncState {
	st := &domain.SyncState{}
	st.EventID, _ = row.UUID("event_id")
	if s, ok := row.String("sync_status"); ok {
		st.Status = domain.SyncStatus(s)
	}
	st.PushedCount, _ = row.Int("pushed_count")
	st.SkippedCount, _ = row.Int("skipped_count")
	st.LastError, _ = row.String("last_error")
	st.LastAttemptAt, _ = row.Time("last_attempt_at")
	return st
}
