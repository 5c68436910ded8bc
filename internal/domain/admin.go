package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdminRole is the authorization level of an event admin.
type AdminRole string

const (
	RolePrimary AdminRole = "primary"
	RoleCoAdmin AdminRole = "co_admin"
)

func (r AdminRole) String() string { return string(r) }

func (r AdminRole) IsValid() bool {
	switch r {
	case RolePrimary, RoleCoAdmin:
		return true
	}
	return false
}

// EventAdmin links a user to an event with a role. Exactly one primary
// exists per event; the primary is immutable (there is no transfer).
type EventAdmin struct {
	ID        uuid.UUID
	EventID   uuid.UUID
	UserID    uuid.UUID
	Role      AdminRole
	CreatedAt time.Time
}

// AdminSet is the full admin roster of a single event.
type AdminSet []EventAdmin

// IsAdmin reports whether the user holds any admin role on the event.
func (s AdminSet) IsAdmin(userID uuid.UUID) bool {
	for _, a := range s {
		if a.UserID == userID {
			return true
		}
	}
	return false
}

// IsPrimary reports whether the user is the event's primary admin.
func (s AdminSet) IsPrimary(userID uuid.UUID) bool {
	for _, a := range s {
		if a.UserID == userID && a.Role == RolePrimary {
			return true
		}
	}
	return false
}
