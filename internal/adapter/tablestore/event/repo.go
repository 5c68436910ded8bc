// Package event implements the Event repository over the table store.
// Creation goes through the schema-negotiating writer because the events
// relation is one of the drifting legacy tables.
package event

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hackweekhq/hackweek-backend/internal/adapter/tablestore"
	"github.com/hackweekhq/hackweek-backend/internal/adapter/tablestore/writer"
	"github.com/hackweekhq/hackweek-backend/internal/domain"
)

const relation = "events"

type gateway interface {
	SelectOne(ctx context.Context, relation string, p tablestore.SelectParams) (tablestore.Row, error)
	Patch(ctx context.Context, relation string, patch tablestore.Row, filters []tablestore.Filter) ([]tablestore.Row, error)
	Delete(ctx context.Context, relation string, filters []tablestore.Filter) ([]tablestore.Row, error)
}

type rowWriter interface {
	Insert(ctx context.Context, relation string, base writer.Fields) (tablestore.Row, error)
}

var _ gateway = (*tablestore.Client)(nil)
var _ rowWriter = (*writer.Writer)(nil)

// Repo provides event persistence.
type Repo struct {
	gw gateway
	w  rowWriter
}

// New creates an event repository.
func New(gw gateway, w rowWriter) *Repo {
	return &Repo{gw: gw, w: w}
}

// Create inserts a new event through the negotiating writer and returns it
// as stored.
func (r *Repo) Create(ctx context.Context, ev *domain.Event) (*domain.Event, error) {
	row, err := r.w.Insert(ctx, relation, writer.Fields{
		"id":                       ev.ID.String(),
		"name":                     ev.Name,
		"icon":                     ev.Icon,
		"tagline":                  ev.Tagline,
		"timezone":                 ev.Timezone,
		"lifecycle_status":         ev.Status.String(),
		"parent_page_id":           ev.ParentPageID,
		"page_id":                  ev.PageID,
		"creation_request_id":      ev.CreationRequestID,
		"registration_opens_at":    ev.Schedule.RegistrationOpensAt.Format(time.RFC3339),
		"team_formation_at":        ev.Schedule.TeamFormationAt.Format(time.RFC3339),
		"kickoff_at":               ev.Schedule.KickoffAt.Format(time.RFC3339),
		"submission_deadline":      ev.Schedule.SubmissionDeadline.Format(time.RFC3339),
		"results_at":               ev.Schedule.ResultsAt.Format(time.RFC3339),
		"max_team_size":            ev.Rules.MaxTeamSize,
		"max_submissions_per_user": ev.Rules.MaxSubmissionsPerUser,
		"theme":                    ev.Rules.Theme.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return decode(row), nil
}

// GetByID returns the event or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	row, err := r.gw.SelectOne(ctx, relation, tablestore.SelectParams{
		Filters: []tablestore.Filter{tablestore.Eq("id", id.String())},
	})
	if err != nil {
		return nil, mapError(err, "event", id.String())
	}
	return decode(row), nil
}

// GetByCreationRequestID returns the event created for the given idempotency
// key, or domain.ErrNotFound.
func (r *Repo) GetByCreationRequestID(ctx context.Context, requestID string) (*domain.Event, error) {
	row, err := r.gw.SelectOne(ctx, relation, tablestore.SelectParams{
		Filters: []tablestore.Filter{tablestore.Eq("creation_request_id", requestID)},
	})
	if err != nil {
		return nil, mapError(err, "event", requestID)
	}
	return decode(row), nil
}

// UpdateStatus persists a lifecycle transition. There is no compare-and-set
// on the previous status; see the service layer for the accepted race.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.LifecycleStatus) error {
	rows, err := r.gw.Patch(ctx, relation,
		tablestore.Row{"lifecycle_status": status.String()},
		[]tablestore.Filter{tablestore.Eq("id", id.String())},
	)
	if err != nil {
		return fmt.Errorf("update event %s status: %w", id, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("event %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SetPageID records the external content page pointer.
func (r *Repo) SetPageID(ctx context.Context, id uuid.UUID, pageID string) error {
	_, err := r.gw.Patch(ctx, relation,
		tablestore.Row{"page_id": pageID},
		[]tablestore.Filter{tablestore.Eq("id", id.String())},
	)
	if err != nil {
		return fmt.Errorf("set event %s page: %w", id, err)
	}
	return nil
}

// Delete removes the event row.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.gw.Delete(ctx, relation, []tablestore.Filter{
		tablestore.Eq("id", id.String()),
	}); err != nil {
		return fmt.Errorf("delete event %s: %w", id, err)
	}
	return nil
}

func mapError(err error, entity, id string) error {
	if errors.Is(err, tablestore.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return fmt.Errorf("%s %s: %w", entity, id, err)
}

// decode tolerates missing columns: legacy deployments do not carry the
// full set.
func decode(row tablestore.Row) *domain.Event {
	ev := &domain.Event{}
	ev.ID, _ = row.UUID("id")
	ev.Name, _ = row.String("name")
	ev.Icon, _ = row.String("icon")
	ev.Tagline, _ = row.String("tagline")
	ev.Timezone, _ = row.String("timezone")
	if s, ok := row.String("lifecycle_status"); ok {
		ev.Status = domain.LifecycleStatus(s)
	}
	ev.PageID = row.StringPtr("page_id")
	ev.ParentPageID = row.StringPtr("parent_page_id")
	ev.CreationRequestID, _ = row.String("creation_request_id")

	ev.Schedule.RegistrationOpensAt, _ = row.Time("registration_opens_at")
	ev.Schedule.TeamFormationAt, _ = row.Time("team_formation_at")
	ev.Schedule.KickoffAt, _ = row.Time("kickoff_at")
	ev.Schedule.SubmissionDeadline, _ = row.Time("submission_deadline")
	ev.Schedule.ResultsAt, _ = row.Time("results_at")

	ev.Rules.MaxTeamSize, _ = row.Int("max_team_size")
	ev.Rules.MaxSubmissionsPerUser, _ = row.Int("max_submissions_per_user")
	if s, ok := row.String("theme"); ok {
		ev.Rules.Theme = domain.Theme(s)
	}

	ev.CreatedAt, _ = row.Time("created_at")
	ev.UpdatedAt, _ = row.Time("updated_at")
	return ev
}
