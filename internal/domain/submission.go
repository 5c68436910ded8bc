package domain

import (
	"time"

	"github.com/google/uuid"
)

// SourceType distinguishes event submissions from general records that were
// filed outside any event.
type SourceType string

const (
	SourceSubmission SourceType = "submission"
	SourceGeneral    SourceType = "general"
)

func (t SourceType) String() string { return string(t) }

func (t SourceType) IsValid() bool {
	switch t {
	case SourceSubmission, SourceGeneral:
		return true
	}
	return false
}

// Submission is a piece of work filed against an event, eligible for sync
// to the external library. Only the reconciler mutates it (SyncedAt).
type Submission struct {
	ID          uuid.UUID
	Title       string
	Description string
	SourceType  SourceType
	UserID      uuid.UUID

	// EventID is nil for general records not tied to an event.
	EventID *uuid.UUID

	// SyncedAt is nil until the record has been pushed to the external
	// library system.
	SyncedAt *time.Time

	CreatedAt time.Time
}

// IsSynced reports whether the submission has already been pushed.
func (s Submission) IsSynced() bool { return s.SyncedAt != nil }

// TeamLinkage is a legacy compatibility record: identity only, referenced by
// submissions in deployments where the relation still requires a team
// foreign key that this system does not otherwise use.
type TeamLinkage struct {
	ID        uuid.UUID
	CreatedAt time.Time
}
