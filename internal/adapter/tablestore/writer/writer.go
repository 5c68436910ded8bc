// Package writer implements the schema-negotiating write path. The target
// relation's column set is not known at compile time or call time: the
// writer submits an ordered ladder of payload candidates and reacts to the
// remote diagnostics until one candidate lands or every shape is exhausted.
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

// gateway is the slice of the table-store client the writer needs.
type gateway interface {
	Insert(ctx context.Context, relation string, row tablestore.Row) (tablestore.Row, error)
	Select(ctx context.Context, relation string, p tablestore.SelectParams) ([]tablestore.Row, error)
}

// Fields is the caller-known part of a record. It must carry enough to
// derive a display name and an owner reference; everything else is
// negotiated.
type Fields map[string]any

// NegotiationError is returned when every candidate shape was rejected.
// The last remote error is wrapped for diagnosis.
type NegotiationError struct {
	Relation string
	Attempts int
	LastErr  error
}

func (e *NegotiationError) Error() string {
	return fmt.Sprintf("writer: %s: negotiation exhausted after %d attempts: %v",
		e.Relation, e.Attempts, e.LastErr)
}

func (e *NegotiationError) Unwrap() error { return e.LastErr }

// Writer negotiates insert payload shapes against relations whose schema
// may drift from the code's expectations.
type Writer struct {
	gw  gateway
	log *slog.Logger

	teamRelation string
	teamColumn   string

	now   func() time.Time
	newID func() uuid.UUID
}

// Option customizes a Writer.
type Option func(*Writer)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(w *Writer) { w.now = now }
}

// WithIDSource overrides the id generator, for tests.
func WithIDSource(newID func() uuid.UUID) Option {
	return func(w *Writer) { w.newID = newID }
}

// WithTeamLinkage overrides the legacy linkage relation and foreign-key
// column (defaults "teams" and "team_id").
func WithTeamLinkage(relation, column string) Option {
	return func(w *Writer) {
		w.teamRelation = relation
		w.teamColumn = column
	}
}

// New creates a Writer over the given gateway.
func New(gw gateway, logger *slog.Logger, opts ...Option) *Writer {
	w := &Writer{
		gw:           gw,
		log:          logger.With("adapter", "writer"),
		teamRelation: "teams",
		teamColumn:   "team_id",
		now:          time.Now,
		newID:        uuid.New,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Insert writes one record into the relation, negotiating the payload shape.
// On success the stored row is returned. Exhaustion is always a reported
// error carrying the last remote failure, never a silent drop.
func (w *Writer) Insert(ctx context.Context, relation string, base Fields) (tablestore.Row, error) {
	if len(base) == 0 {
		return nil, fmt.Errorf("writer: %s: empty base fields", relation)
	}

	linkages := newLinkageResolver(w.gw, w.teamRelation, w.log, w.now, w.newID)
	name := w.displayName(base)

	work := newWorklist()
	w.seed(ctx, work, base, name, linkages)

	var (
		lastErr  error
		attempts int
		// One FK repair per linkage id; a second violation on the same id
		// means the repair did not take and must not loop.
		repaired = map[string]bool{}
	)

	for {
		cand, ok := work.pop()
		if !ok {
			break
		}
		attempts++

		row, err := w.gw.Insert(ctx, relation, cand.fields)
		if err == nil {
			w.log.DebugContext(ctx, "insert negotiated",
				slog.String("relation", relation),
				slog.Int("attempts", attempts),
			)
			return row, nil
		}
		lastErr = err

		var schemaErr *tablestore.SchemaAccessError
		if errors.As(err, &schemaErr) {
			return nil, err
		}
		var reqErr *tablestore.RequestError
		if !errors.As(err, &reqErr) {
			return nil, fmt.Errorf("writer: %s: %w", relation, err)
		}

		v, classified := classifyDiagnostic(relation, reqErr.Diagnostic)
		if !classified {
			return nil, fmt.Errorf("writer: %s: %w", relation, err)
		}

		switch v := v.(type) {
		case unknownColumn:
			if !cand.has(v.column) {
				// The diagnostic names a column we never sent; nothing to
				// drop, move on to the next candidate.
				continue
			}
			work.pushFront(cand.without(v.column))

		case notNullViolation:
			if v.column == w.teamColumn {
				id, err := linkages.next(ctx)
				if err != nil {
					return nil, fmt.Errorf("writer: %s: resolve linkage: %w", relation, err)
				}
				work.pushFront(cand.with(v.column, id.String()))
				continue
			}
			work.pushFront(cand.with(v.column, defaultValue(v.column, name, w.now, w.newID)))

		case uniqueConflict:
			if v.column != w.teamColumn {
				return nil, fmt.Errorf("writer: %s: %w", relation, err)
			}
			if prev, ok := cand.fields[w.teamColumn].(string); ok {
				if prevID, perr := uuid.Parse(prev); perr == nil {
					linkages.markExhausted(prevID)
				}
			}
			id, lerr := linkages.next(ctx)
			if lerr != nil {
				return nil, fmt.Errorf("writer: %s: substitute linkage: %w", relation, lerr)
			}
			work.pushFront(cand.with(w.teamColumn, id.String()))

		case fkViolation:
			if v.column != w.teamColumn {
				return nil, fmt.Errorf("writer: %s: %w", relation, err)
			}
			raw, _ := cand.fields[w.teamColumn].(string)
			id, perr := uuid.Parse(raw)
			if perr != nil || repaired[raw] {
				continue
			}
			repaired[raw] = true
			if rerr := linkages.ensure(ctx, id); rerr != nil {
				return nil, fmt.Errorf("writer: %s: repair linkage %s: %w", relation, raw, rerr)
			}
			// The reference is valid now; retry the exact same candidate.
			work.retry(cand)
		}
	}

	return nil, &NegotiationError{Relation: relation, Attempts: attempts, LastErr: lastErr}
}

// seed fills the worklist from the most complete guess down to the minimal
// one: base plus legacy name alias, current timestamps, and the best-known
// linkage id; then base with timestamps; then base; then the name alone.
func (w *Writer) seed(ctx context.Context, work *worklist, base Fields, name string, linkages *linkageResolver) {
	baseCand := newCandidate(tablestore.Row(base))

	rich := baseCand
	if _, hasName := base["name"]; !hasName {
		// Legacy deployments keep a duplicate name column.
		rich = rich.with("name", name)
	}
	ts := w.now().UTC().Format(time.RFC3339)
	rich = rich.with("created_at", ts).with("updated_at", ts)

	withLinkage := rich
	if id, ok, err := linkages.best(ctx); err == nil && ok {
		withLinkage = rich.with(w.teamColumn, id.String())
	}

	work.pushBack(withLinkage)
	work.pushBack(rich)
	work.pushBack(baseCand)

	minimal := newCandidate(tablestore.Row{})
	for col, val := range base {
		if isNameColumn(col) {
			minimal = minimal.with(col, val)
		}
	}
	if len(minimal.fields) == 0 {
		minimal = minimal.with("name", name)
	}
	work.pushBack(minimal)
}

// displayName derives a human-readable name from the base fields.
func (w *Writer) displayName(base Fields) string {
	for _, key := range []string{"title", "name", "label"} {
		if s, ok := base[key].(string); ok && s != "" {
			return s
		}
	}
	return "Untitled"
}
