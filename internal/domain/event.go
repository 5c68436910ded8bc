package domain

import (
	"time"

	"github.com/google/uuid"
)

// LifecycleStatus represents the event's current stage in its forward-only
// progression.
type LifecycleStatus string

const (
	StatusDraft         LifecycleStatus = "draft"
	StatusRegistration  LifecycleStatus = "registration"
	StatusTeamFormation LifecycleStatus = "team_formation"
	StatusHacking       LifecycleStatus = "hacking"
	StatusVoting        LifecycleStatus = "voting"
	StatusResults       LifecycleStatus = "results"
	StatusCompleted     LifecycleStatus = "completed"
	StatusArchived      LifecycleStatus = "archived"
)

// forwardChain is the only legal order of forward transitions. archived is
// deliberately absent: it is reachable only through draft deletion, never
// through Advance.
var forwardChain = []LifecycleStatus{
	StatusDraft,
	StatusRegistration,
	StatusTeamFormation,
	StatusHacking,
	StatusVoting,
	StatusResults,
	StatusCompleted,
}

func (s LifecycleStatus) String() string { return string(s) }

func (s LifecycleStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusRegistration, StatusTeamFormation, StatusHacking,
		StatusVoting, StatusResults, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

// Next returns the forward successor of s. ok is false when s has no
// successor (completed, archived) or is not part of the forward chain.
func (s LifecycleStatus) Next() (LifecycleStatus, bool) {
	for i, st := range forwardChain {
		if st == s && i+1 < len(forwardChain) {
			return forwardChain[i+1], true
		}
	}
	return "", false
}

// IsReadOnly reports whether the event no longer accepts mutations.
func (s LifecycleStatus) IsReadOnly() bool {
	return s == StatusCompleted || s == StatusArchived
}

// ScheduleConfig is the declarative schedule of an event. Each timestamp
// marks the moment the corresponding phase opens; the core only requires
// that they are strictly increasing.
type ScheduleConfig struct {
	RegistrationOpensAt time.Time
	TeamFormationAt     time.Time
	KickoffAt           time.Time
	SubmissionDeadline  time.Time
	ResultsAt           time.Time
}

// RulesConfig holds the bounded rules and branding choices of an event.
type RulesConfig struct {
	MaxTeamSize           int
	MaxSubmissionsPerUser int
	Theme                 Theme
}

// Theme is an enumerated branding choice.
type Theme string

const (
	ThemeClassic  Theme = "classic"
	ThemeMidnight Theme = "midnight"
	ThemeSunrise  Theme = "sunrise"
)

func (t Theme) String() string { return string(t) }

func (t Theme) IsValid() bool {
	switch t {
	case ThemeClassic, ThemeMidnight, ThemeSunrise:
		return true
	}
	return false
}

// Event is a time-boxed community event ("instance").
type Event struct {
	ID       uuid.UUID
	Name     string
	Icon     string
	Tagline  string
	Timezone string
	Status   LifecycleStatus

	// PageID points to the event's page on the external content host. An
	// event may exist before its page does.
	PageID       *string
	ParentPageID *string

	// CreationRequestID makes the create-instance operation idempotent.
	CreationRequestID string

	Schedule ScheduleConfig
	Rules    RulesConfig

	CreatedAt time.Time
	UpdatedAt time.Time
}
