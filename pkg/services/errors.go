package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/codeready-toolchain/cardsmith/pkg/models"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrGoalTerminal is returned when a status change is attempted on a
	// completed or failed goal
	ErrGoalTerminal = errors.New("goal is terminal")

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

// InvalidTransitionError rejects a card move that is not an edge of the
// legal column graph. Its message is part of the API contract.
type InvalidTransitionError struct {
	From    models.Column
	To      models.Column
	Allowed []models.Column
}

func (e *InvalidTransitionError) Error() string {
	allowed := make([]string, len(e.Allowed))
	for i, c := range e.Allowed {
		allowed[i] = string(c)
	}
	return fmt.Sprintf("Invalid transition from '%s' to '%s'. Allowed: [%s]",
		e.From, e.To, strings.Join(allowed, ", "))
}

// NewInvalidTransitionError creates an InvalidTransitionError carrying the
// legal targets of the source column
func NewInvalidTransitionError(from, to models.Column) error {
	return &InvalidTransitionError{
		From:    from,
		To:      to,
		Allowed: models.AllowedTargets(from),
	}
}

// IsInvalidTransition checks if an error is an invalid transition error
func IsInvalidTransition(err error) bool {
	var te *InvalidTransitionError
	return errors.As(err, &te)
}
