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
	ErrUnavailable   = errors.New("service unavailable")
)

// Journal conditions. None of them is fatal; the transport renders each one
// as a user-facing state.
var (
	// ErrNoPromptActive means no prompt is scheduled for the requester's today.
	ErrNoPromptActive = errors.New("no prompt active today")

	// ErrNoCoupleConfigured means the user has no active, paired vault yet.
	ErrNoCoupleConfigured = errors.New("no couple configured")

	// ErrDuplicateEntry is returned when the user already answered the prompt.
	ErrDuplicateEntry = fmt.Errorf("entry already submitted: %w", ErrAlreadyExists)

	// ErrVaultEnded is returned for mutations against an ended vault.
	ErrVaultEnded = fmt.Errorf("vault has ended: %w", ErrConflict)
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
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
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
