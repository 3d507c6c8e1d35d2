package domain

import (
	"errors"
	"fmt"
)

// ValidationError represents an error that occurs due to invalid input or parameters
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error with the given message
func NewValidationError(message string) error {
	return ValidationError{
		Message: message,
	}
}

// UniqueConstraintError is returned when a write collides with the
// uniqueness constraint on phone or email. During batch operations it is
// how a lost detect-then-write race surfaces: it is recorded as a row
// error, never a crash.
type UniqueConstraintError struct {
	Field string
}

func (e *UniqueConstraintError) Error() string {
	return fmt.Sprintf("unique constraint violation on %s", e.Field)
}

// IsUniqueConstraintError reports whether err is a UniqueConstraintError
// anywhere in its chain.
func IsUniqueConstraintError(err error) bool {
	var uce *UniqueConstraintError
	return errors.As(err, &uce)
}

// InvalidResolutionError is returned when a duplicate resolution cannot be
// applied: the action is not one of the recognized values, or an update has
// no identifiable target contact.
type InvalidResolutionError struct {
	Message string
}

func (e *InvalidResolutionError) Error() string {
	return fmt.Sprintf("invalid resolution: %s", e.Message)
}

// ErrContactNotFound is returned when a contact is not found
type ErrContactNotFound struct {
	Message string
}

func (e *ErrContactNotFound) Error() string {
	return e.Message
}

// ErrSegmentNotFound is returned when a segment is not found
type ErrSegmentNotFound struct {
	Message string
}

func (e *ErrSegmentNotFound) Error() string {
	return e.Message
}
