package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is the sentinel every *ValidationError unwraps to.
var ErrInvalid = errors.New("invalid site configuration")

// ValidationError reports a configuration value that cannot be used. Field is
// the file key path, e.g. "site.post_per_page" or "socials[1].href".
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s %s (got %q)", e.Field, e.Reason, e.Value)
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }

func invalid(field, value, reason string) error {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}
