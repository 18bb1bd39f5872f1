// Package services implements the business logic layer on top of the Ent
// client: workspaces, accounts and rentals, lot mappings, order history,
// blacklist, bonus wallets, chat persistence and dashboard auth.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoFreeAccount is returned when no account can satisfy an assignment
	ErrNoFreeAccount = errors.New("no free account available")

	// ErrBlacklisted is returned when the buyer is on the workspace blacklist
	ErrBlacklisted = errors.New("buyer is blacklisted")
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
