package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/hackweekhq/hackweek-backend/internal/domain"
)

const maxNamedFailures = 3

// CompleteAndSync runs a full reconciliation for the event. It fails with
// ErrNoSubmissions when there is nothing to push.
func (s *Service) CompleteAndSync(ctx context.Context, actorID, eventID uuid.UUID) (*domain.SyncResult, error) {
	return s.run(ctx, actorID, eventID, false)
}

// RetrySync re-runs reconciliation after a partial or failed run. Items that
// already carry a synced_at timestamp are skipped, so repeated retries
// converge.
func (s *Service) RetrySync(ctx context.Context, actorID, eventID uuid.UUID) (*domain.SyncResult, error) {
	return s.run(ctx, actorID, eventID, true)
}

func (s *Service) run(ctx context.Context, actorID, eventID uuid.UUID, retry bool) (*domain.SyncResult, error) {
	if actorID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	ev, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if ev.Status.IsReadOnly() {
		return nil, fmt.Errorf("event is %s: %w", ev.Status, domain.ErrReadOnly)
	}

	admins, err := s.admins.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	if !admins.IsAdmin(actorID) {
		return nil, fmt.Errorf("only event admins may sync: %w", domain.ErrForbidden)
	}

	subs, err := s.subs.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	if !retry && len(subs) == 0 {
		return nil, fmt.Errorf("event %s: %w", eventID, domain.ErrNoSubmissions)
	}

	// The in_progress write keeps the previous run's counters as a floor so
	// a failing run never regresses the displayed numbers.
	floorPushed, floorSkipped := s.priorCounters(ctx, eventID)
	if err := s.states.Upsert(ctx, domain.SyncState{
		EventID:       eventID,
		Status:        domain.SyncInProgress,
		PushedCount:   floorPushed,
		SkippedCount:  floorSkipped,
		LastAttemptAt: s.now(),
	}); err != nil {
		return nil, fmt.Errorf("mark sync in progress: %w", err)
	}

	pushed, skipped, failed, loopErr := s.pushAll(ctx, subs)
	if loopErr != nil {
		return nil, s.failRun(ctx, actorID, eventID, loopErr)
	}

	status := classifyOutcome(pushed, skipped, len(failed))
	lastError := summarizeFailures(failed)

	state := domain.SyncState{
		EventID:       eventID,
		Status:        status,
		PushedCount:   pushed,
		SkippedCount:  skipped,
		LastError:     lastError,
		LastAttemptAt: s.now(),
	}
	if err := s.states.Upsert(ctx, state); err != nil {
		return nil, fmt.Errorf("persist sync state: %w", err)
	}

	category, retryable, guidance := ClassifyGuidance(status, lastError)
	result := &domain.SyncResult{
		Status:        status,
		PushedCount:   pushed,
		SkippedCount:  skipped,
		LastError:     lastError,
		Category:      category,
		Retryable:     retryable,
		RetryGuidance: guidance,
	}

	if err := s.appendAudit(ctx, actorID, eventID, retry, result); err != nil {
		return nil, err
	}

	if status == domain.SyncComplete && ev.Status == domain.StatusResults {
		if err := s.autoAdvance(ctx, actorID, eventID); err != nil {
			return nil, err
		}
	}

	s.log.InfoContext(ctx, "sync run finished",
		slog.String("event_id", eventID.String()),
		slog.String("status", status.String()),
		slog.Int("pushed", pushed),
		slog.Int("skipped", skipped),
		slog.Int("failed", len(failed)),
	)

	return result, nil
}

// pushAll marks every unsynced submission. One item's failure never blocks
// the others; a panic aborts the whole run and is reported as its error.
func (s *Service) pushAll(ctx context.Context, subs []*domain.Submission) (pushed, skipped int, failed []uuid.UUID, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("push loop panicked: %v", r)
		}
	}()

	for _, sub := range subs {
		if sub.IsSynced() {
			skipped++
			continue
		}
		if markErr := s.subs.MarkSynced(ctx, sub.ID, s.now()); markErr != nil {
			s.log.ErrorContext(ctx, "submission push failed",
				slog.String("submission_id", sub.ID.String()),
				slog.String("error", markErr.Error()),
			)
			failed = append(failed, sub.ID)
			continue
		}
		pushed++
	}
	return pushed, skipped, failed, nil
}

// failRun persists a whole-run failure and returns the original error
// augmented with retry guidance.
func (s *Service) failRun(ctx context.Context, actorID, eventID uuid.UUID, cause error) error {
	state := domain.SyncState{
		EventID:       eventID,
		Status:        domain.SyncFailed,
		LastError:     cause.Error(),
		LastAttemptAt: s.now(),
	}
	if err := s.states.Upsert(ctx, state); err != nil {
		s.log.ErrorContext(ctx, "could not persist failed sync state",
			slog.String("event_id", eventID.String()),
			slog.String("error", err.Error()),
		)
	}

	_, _, guidance := ClassifyGuidance(domain.SyncFailed, cause.Error())
	return fmt.Errorf("sync run failed: %w. %s", cause, guidance)
}

func (s *Service) priorCounters(ctx context.Context, eventID uuid.UUID) (pushed, skipped int) {
	prev, err := s.states.Get(ctx, eventID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.ErrorContext(ctx, "could not read prior sync state, floor starts at zero",
				slog.String("event_id", eventID.String()),
				slog.String("error", err.Error()),
			)
		}
		return 0, 0
	}
	return prev.PushedCount, prev.SkippedCount
}

func (s *Service) appendAudit(ctx context.Context, actorID, eventID uuid.UUID, retry bool, result *domain.SyncResult) error {
	action := domain.AuditSyncFailed
	switch {
	case retry:
		action = domain.AuditSyncRetry
	case result.Status == domain.SyncComplete:
		action = domain.AuditSyncComplete
	case result.Status == domain.SyncPartial:
		action = domain.AuditSyncPartial
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode sync result: %w", err)
	}

	if err := s.audit.Append(ctx, domain.AuditEntry{
		ID:        s.newID(),
		EventID:   eventID,
		ActorID:   actorID,
		Action:    action,
		NextValue: string(payload),
		CreatedAt: s.now(),
	}); err != nil {
		return fmt.Errorf("audit sync run: %w", err)
	}
	return nil
}

// autoAdvance moves results -> completed after a fully complete run. It is
// the only lifecycle change outside the Advance operation and the draft
// cascade.
func (s *Service) autoAdvance(ctx context.Context, actorID, eventID uuid.UUID) error {
	if err := s.events.UpdateStatus(ctx, eventID, domain.StatusCompleted); err != nil {
		return fmt.Errorf("auto-advance to completed: %w", err)
	}
	if err := s.audit.Append(ctx, domain.AuditEntry{
		ID:        s.newID(),
		EventID:   eventID,
		ActorID:   actorID,
		Action:    domain.AuditStatusChanged,
		PrevValue: string(domain.StatusResults),
		NextValue: string(domain.StatusCompleted),
		CreatedAt: s.now(),
	}); err != nil {
		return fmt.Errorf("audit auto-advance: %w", err)
	}
	return nil
}

func classifyOutcome(pushed, skipped, failedCount int) domain.SyncStatus {
	switch {
	case failedCount == 0:
		return domain.SyncComplete
	case pushed > 0 || skipped > 0:
		return domain.SyncPartial
	default:
		return domain.SyncFailed
	}
}

// summarizeFailures names up to maxNamedFailures failing ids, with an
// ellipsis when more exist.
func summarizeFailures(failed []uuid.UUID) string {
	if len(failed) == 0 {
		return ""
	}

	names := make([]string, 0, maxNamedFailures)
	for i, id := range failed {
		if i == maxNamedFailures {
			break
		}
		names = append(names, id.String())
	}

	summary := fmt.Sprintf("failed to sync %d submission(s): %s", len(failed), strings.Join(names, ", "))
	if len(failed) > maxNamedFailures {
		summary += ", …"
	}
	return summary
}
