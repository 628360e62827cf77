// Package common provides shared utilities and types used across the application.
package common

import (
	"context"
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Display selection errors.
	ErrUnknownLocale   = errors.New("unknown locale")
	ErrUnknownCurrency = errors.New("unknown currency")
	ErrUnknownSection  = errors.New("unknown section")
	ErrUnknownDialog   = errors.New("unknown dialog")

	// Fixture errors.
	ErrInvalidFixture = errors.New("invalid fixture")
	ErrNotFound       = errors.New("not found")

	// Preference store errors.
	ErrPreferenceStore = errors.New("preference store failure")
	ErrUnknownBackend  = errors.New("unknown preference backend")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsRetryable determines if an error should trigger a retry.
func IsRetryable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, context.Canceled) {
		return false
	}

	var retryableErr *RetryableError
	if errors.As(err, &retryableErr) {
		return retryableErr.Retryable
	}

	return false
}
