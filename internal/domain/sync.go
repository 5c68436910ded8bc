package domain

import (
	"time"

	"github.com/google/uuid"
)

// SyncStatus is the persisted state of an event's reconciliation with the
// external library system.
type SyncStatus string

const (
	SyncNotStarted SyncStatus = "not_started"
	SyncInProgress SyncStatus = "in_progress"
	SyncPartial    SyncStatus = "partial"
	SyncFailed     SyncStatus = "failed"
	SyncComplete   SyncStatus = "complete"
)

func (s SyncStatus) String() string { return string(s) }

func (s SyncStatus) IsValid() bool {
	switch s {
	case SyncNotStarted, SyncInProgress, SyncPartial, SyncFailed, SyncComplete:
		return true
	}
	return false
}

// SyncState is the per-event reconciliation record (one row per event,
// upserted). Counters are per-run, not cumulative across runs; during a run
// the previous run's values act as a floor so a failed run never regresses
// the displayed numbers.
type SyncState struct {
	EventID       uuid.UUID
	Status        SyncStatus
	PushedCount   int
	SkippedCount  int
	LastError     string
	LastAttemptAt time.Time
}

// SyncErrorCategory classifies a reconciliation failure for operator and
// user guidance.
type SyncErrorCategory string

const (
	SyncErrNone           SyncErrorCategory = "none"
	SyncErrPermission     SyncErrorCategory = "permission"
	SyncErrValidation     SyncErrorCategory = "validation"
	SyncErrTransient      SyncErrorCategory = "transient"
	SyncErrPartialFailure SyncErrorCategory = "partial_failure"
	SyncErrUnknown        SyncErrorCategory = "unknown"
)

func (c SyncErrorCategory) String() string { return string(c) }

// SyncResult is the outcome of one reconciliation run, as consumed by
// callers and the UI.
type SyncResult struct {
	Status        SyncStatus        `json:"syncStatus"`
	PushedCount   int               `json:"pushedCount"`
	SkippedCount  int               `json:"skippedCount"`
	LastError     string            `json:"lastError,omitempty"`
	Category      SyncErrorCategory `json:"syncErrorCategory"`
	Retryable     bool              `json:"retryable"`
	RetryGuidance string            `json:"retryGuidance,omitempty"`
}
