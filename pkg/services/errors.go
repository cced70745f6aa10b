package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found — including when
	// it exists but belongs to another tenant.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrForbidden is returned when the caller's role does not allow the operation
	ErrForbidden = errors.New("operation not permitted")

	// ErrInsufficientCredits is returned when a billed operation exceeds the
	// team's credit balance
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrLocked is returned when a resource is held by another owner
	ErrLocked = errors.New("resource locked")

	// ErrProviderUnavailable is returned when an upstream model provider
	// keeps failing after retries
	ErrProviderUnavailable = errors.New("model provider unavailable")

	// ErrRateLimited is returned when the caller exceeds a request budget
	ErrRateLimited = errors.New("rate limited")

	// ErrConcurrentModification is returned when optimistic locking fails
	ErrConcurrentModification = errors.New("concurrent modification detected")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
