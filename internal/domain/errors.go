package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Transaction errors
	ErrTransactionNotFound     = errors.New("transaction not found")
	ErrTransactionNotEditable  = errors.New("transaction is not editable in its current status")
	ErrTransactionNotDeletable = errors.New("transaction cannot be deleted in its current status")
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// Identifier errors
	ErrInvalidID = errors.New("invalid identifier format")
)

// ValidationError wraps a failed ValidationResult so use cases can return it
// as an error while the HTTP layer still surfaces the individual messages.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("transaction validation failed: %s", strings.Join(e.Errors, "; "))
}

// NewValidationError builds a ValidationError from a failed result.
func NewValidationError(result ValidationResult) *ValidationError {
	return &ValidationError{Errors: result.Errors}
}
