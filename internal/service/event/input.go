package event

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hackweekhq/hackweek-backend/internal/domain"
	"github.com/hackweekhq/hackweek-backend/internal/schedule"
)

const (
	maxNameLength = 200

	minTeamSize = 1
	maxTeamSize = 10

	minSubmissionsPerUser = 1
	maxSubmissionsPerUser = 5
)

// CreateEventInput carries everything needed to create an event instance.
type CreateEventInput struct {
	CreationRequestID string
	Name              string
	Icon              string
	Tagline           string
	Timezone          string
	ParentPageID      *string
	Schedule          domain.ScheduleConfig
	Rules             domain.RulesConfig
}

// Validate checks the input against instance constraints.
func (in CreateEventInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(in.CreationRequestID) == "" {
		errs = append(errs, domain.FieldError{Field: "creationRequestId", Message: "is required"})
	}
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "is required"})
	}
	if len(in.Name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name",
			Message: fmt.Sprintf("must be at most %d characters", maxNameLength)})
	}
	if strings.TrimSpace(in.Timezone) == "" {
		errs = append(errs, domain.FieldError{Field: "timezone", Message: "is required"})
	}

	if in.Rules.MaxTeamSize < minTeamSize || in.Rules.MaxTeamSize > maxTeamSize {
		errs = append(errs, domain.FieldError{Field: "rules.maxTeamSize",
			Message: fmt.Sprintf("must be between %d and %d", minTeamSize, maxTeamSize)})
	}
	if in.Rules.MaxSubmissionsPerUser < minSubmissionsPerUser || in.Rules.MaxSubmissionsPerUser > maxSubmissionsPerUser {
		errs = append(errs, domain.FieldError{Field: "rules.maxSubmissionsPerUser",
			Message: fmt.Sprintf("must be between %d and %d", minSubmissionsPerUser, maxSubmissionsPerUser)})
	}
	if !in.Rules.Theme.IsValid() {
		errs = append(errs, domain.FieldError{Field: "rules.theme",
			Message: fmt.Sprintf("unknown theme %q", in.Rules.Theme)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}

	if err := schedule.Validate(in.Schedule); err != nil {
		return err
	}
	if _, err := schedule.Expand(in.Schedule, in.Timezone); err != nil {
		return err
	}
	return nil
}

// CreateSubmissionInput carries a new submission.
type CreateSubmissionInput struct {
	EventID     *uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	SourceType  domain.SourceType
}

// Validate checks the submission input.
func (in CreateSubmissionInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "is required"})
	}
	if len(in.Title) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "title",
			Message: fmt.Sprintf("must be at most %d characters", maxNameLength)})
	}
	if in.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "is required"})
	}
	if !in.SourceType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sourceType",
			Message: fmt.Sprintf("unknown source type %q", in.SourceType)})
	}
	if in.SourceType == domain.SourceSubmission && in.EventID == nil {
		errs = append(errs, domain.FieldError{Field: "eventId", Message: "is required for event submissions"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
