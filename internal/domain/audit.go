package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction is the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditEventCreated      AuditAction = "event_created"
	AuditEventDeleted      AuditAction = "event_deleted"
	AuditStatusChanged     AuditAction = "status_changed"
	AuditSubmissionCreated AuditAction = "submission_created"
	AuditSyncComplete      AuditAction = "sync_complete"
	AuditSyncPartial       AuditAction = "sync_partial"
	AuditSyncFailed        AuditAction = "sync_failed"
	AuditSyncRetry         AuditAction = "sync_retry"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditEventCreated, AuditEventDeleted, AuditStatusChanged,
		AuditSubmissionCreated, AuditSyncComplete, AuditSyncPartial,
		AuditSyncFailed, AuditSyncRetry:
		return true
	}
	return false
}

// AuditEntry is an append-only record of an admin action on an event. At
// most the N most recent entries are kept per event; the ceiling is enforced
// at write time.
type AuditEntry struct {
	ID        uuid.UUID
	EventID   uuid.UUID
	ActorID   uuid.UUID
	Action    AuditAction
	PrevValue string
	NextValue string
	CreatedAt time.Time
}
