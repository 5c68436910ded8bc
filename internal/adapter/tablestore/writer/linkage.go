package writer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hackweekhq/hackweek-backend/internal/adapter/tablestore"
)

// maxLinkageCreates bounds how many legacy linkage rows one Insert call may
// create. Each create itself negotiates NOT-NULL defaults, independently
// bounded by maxLinkageAttempts.
const (
	maxLinkageCreates  = 3
	maxLinkageAttempts = 6
)

// linkageResolver tracks the legacy team-linkage rows considered during one
// Insert call: which existing ids were tried, which conflicted, and how many
// fresh rows were created.
type linkageResolver struct {
	gw       gateway
	relation string
	log      *slog.Logger
	now      func() time.Time
	newID    func() uuid.UUID

	loaded    bool
	existing  []uuid.UUID
	exhausted map[uuid.UUID]bool
	created   int
}

func newLinkageResolver(gw gateway, relation string, log *slog.Logger, now func() time.Time, newID func() uuid.UUID) *linkageResolver {
	return &linkageResolver{
		gw:        gw,
		relation:  relation,
		log:       log,
		now:       now,
		newID:     newID,
		exhausted: make(map[uuid.UUID]bool),
	}
}

func (l *linkageResolver) load(ctx context.Context) error {
	if l.loaded {
		return nil
	}
	rows, err := l.gw.Select(ctx, l.relation, tablestore.SelectParams{
		Columns: []string{"id"},
		OrderBy: "created_at",
	})
	if err != nil {
		// A missing or empty linkage relation is not fatal; fresh rows
		// can still be created on demand.
		var reqErr *tablestore.RequestError
		if errors.As(err, &reqErr) {
			l.loaded = true
			return nil
		}
		return fmt.Errorf("list %s: %w", l.relation, err)
	}
	for _, row := range rows {
		if id, ok := row.UUID("id"); ok {
			l.existing = append(l.existing, id)
		}
	}
	l.loaded = true
	return nil
}

// best returns the first known linkage id that has not conflicted yet.
func (l *linkageResolver) best(ctx context.Context) (uuid.UUID, bool, error) {
	if err := l.load(ctx); err != nil {
		return uuid.Nil, false, err
	}
	for _, id := range l.existing {
		if !l.exhausted[id] {
			return id, true, nil
		}
	}
	return uuid.Nil, false, nil
}

// markExhausted records that the given linkage id collided on a unique
// constraint and must not be offered again.
func (l *linkageResolver) markExhausted(id uuid.UUID) {
	l.exhausted[id] = true
}

// next returns the next untried existing linkage id, creating a brand-new
// linkage row when none remain.
func (l *linkageResolver) next(ctx context.Context) (uuid.UUID, error) {
	if id, ok, err := l.best(ctx); err != nil {
		return uuid.Nil, err
	} else if ok {
		return id, nil
	}
	return l.create(ctx, l.newID())
}

// create inserts a linkage row with the given id, negotiating NOT-NULL
// defaults the same way the main loop does, within a fixed attempt budget.
func (l *linkageResolver) create(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	if l.created >= maxLinkageCreates {
		return uuid.Nil, fmt.Errorf("linkage create budget exhausted (%d)", maxLinkageCreates)
	}
	l.created++

	row := tablestore.Row{"id": id.String()}
	var lastErr error

	for attempt := 0; attempt < maxLinkageAttempts; attempt++ {
		_, err := l.gw.Insert(ctx, l.relation, row)
		if err == nil {
			l.existing = append(l.existing, id)
			l.log.DebugContext(ctx, "created linkage row", slog.String("id", id.String()))
			return id, nil
		}
		lastErr = err

		var reqErr *tablestore.RequestError
		if !errors.As(err, &reqErr) {
			return uuid.Nil, fmt.Errorf("create linkage: %w", err)
		}
		v, ok := classifyDiagnostic(l.relation, reqErr.Diagnostic)
		if !ok {
			return uuid.Nil, fmt.Errorf("create linkage: %w", err)
		}
		switch v := v.(type) {
		case notNullViolation:
			row[v.column] = defaultValue(v.column, "Team "+shortID(id), l.now, l.newID)
		case unknownColumn:
			delete(row, v.column)
		case uniqueConflict:
			// The row already exists; the reference is valid.
			return id, nil
		default:
			return uuid.Nil, fmt.Errorf("create linkage: %w", err)
		}
	}
	return uuid.Nil, fmt.Errorf("create linkage: attempts exhausted: %w", lastErr)
}

// ensure makes the given id referenceable, (re)creating the row if needed.
func (l *linkageResolver) ensure(ctx context.Context, id uuid.UUID) error {
	_, err := l.create(ctx, id)
	return err
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
