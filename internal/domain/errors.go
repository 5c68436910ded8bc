package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrReadOnly is returned when an operation targets an event whose
	// lifecycle no longer accepts mutations (completed or archived).
	ErrReadOnly = errors.New("event is read-only")

	// ErrTerminalState is returned by Advance when the current lifecycle
	// status has no forward successor.
	ErrTerminalState = errors.New("no further lifecycle transition")

	// ErrSyncIncomplete guards the results -> completed transition: the
	// event's submissions must be fully reconciled first.
	ErrSyncIncomplete = errors.New("submission sync is not complete")

	// ErrNoSubmissions is returned by CompleteAndSync when the event has
	// nothing to reconcile.
	ErrNoSubmissions = errors.New("event has no submissions")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
