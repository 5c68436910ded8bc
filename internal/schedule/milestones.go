// Package schedule expands an event's declarative schedule configuration
// into the ordered milestones that open each lifecycle phase. The mapping is
// deterministic and stateless; it never touches the store.
package schedule

import (
	"fmt"
	"time"

	"github.com/hackweekhq/hackweek-backend/internal/domain"
)

// Milestone marks the moment a lifecycle phase opens.
type Milestone struct {
	Phase domain.LifecycleStatus
	At    time.Time
}

// Validate checks that the schedule's timestamps are present and strictly
// increasing.
func Validate(cfg domain.ScheduleConfig) error {
	points := orderedPoints(cfg)
	for _, p := range points {
		if p.at.IsZero() {
			return domain.NewValidationError("schedule", fmt.Sprintf("%s timestamp is required", p.name))
		}
	}
	for i := 1; i < len(points); i++ {
		if !points[i].at.After(points[i-1].at) {
			return domain.NewValidationError("schedule",
				fmt.Sprintf("%s must be after %s", points[i].name, points[i-1].name))
		}
	}
	return nil
}

// Expand maps the schedule to milestones in the event's timezone. The
// config must already be validated.
func Expand(cfg domain.ScheduleConfig, timezone string) ([]Milestone, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, domain.NewValidationError("timezone", fmt.Sprintf("unknown timezone %q", timezone))
	}

	return []Milestone{
		{Phase: domain.StatusRegistration, At: cfg.RegistrationOpensAt.In(loc)},
		{Phase: domain.StatusTeamFormation, At: cfg.TeamFormationAt.In(loc)},
		{Phase: domain.StatusHacking, At: cfg.KickoffAt.In(loc)},
		{Phase: domain.StatusVoting, At: cfg.SubmissionDeadline.In(loc)},
		{Phase: domain.StatusResults, At: cfg.ResultsAt.In(loc)},
	}, nil
}

type point struct {
	name string
	at   time.Time
}

func orderedPoints(cfg domain.ScheduleConfig) []point {
	return []point{
		{"registration_opens_at", cfg.RegistrationOpensAt},
		{"team_formation_at", cfg.TeamFormationAt},
		{"kickoff_at", cfg.KickoffAt},
		{"submission_deadline", cfg.SubmissionDeadline},
		{"results_at", cfg.ResultsAt},
	}
}
