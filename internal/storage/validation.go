package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Limits on stored preferences. Keys are short identifiers and values are
// locale or currency codes, so anything longer is a caller bug.
const (
	maxKeyLen   = 64
	maxValueLen = 256
)

// Validation errors.
var (
	ErrNilContext  = errors.New("context cannot be nil")
	ErrEmptyString = errors.New("string parameter cannot be empty")
	ErrInvalidKey  = errors.New("invalid preference key")
	ErrValueTooBig = errors.New("preference value too long")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateKey accepts non-empty keys of at most maxKeyLen bytes without
// whitespace or control characters.
func validateKey(key string) error {
	if err := validateString(key, "key"); err != nil {
		return err
	}
	if len(key) > maxKeyLen {
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidKey, maxKeyLen)
	}
	if i := strings.IndexFunc(key, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	}); i >= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

func validateValue(value string) error {
	if len(value) > maxValueLen {
		return fmt.Errorf("%w: %d bytes", ErrValueTooBig, len(value))
	}
	return nil
}
