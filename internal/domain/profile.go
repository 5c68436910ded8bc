package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProfileSnapshot is a derived, read-only view of a user's activity. It is
// computed on demand and may be served from a short-lived cache.
type ProfileSnapshot struct {
	UserID          uuid.UUID
	DisplayName     string
	AdminEventCount int
	SubmissionCount int
	GeneratedAt     time.Time
}
