// Package errs holds the caller-visible failure taxonomy shared by every
// service. Domain packages wrap these sentinels so callers can match either the
// domain-level error or the taxonomy class with errors.Is.
package errs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnauthenticated     = errors.New("authentication required")
	ErrInvalidCredentials  = fmt.Errorf("invalid email or password: %w", ErrUnauthenticated)
	ErrForbidden           = errors.New("you are not allowed to perform this action")
	ErrPendingVerification = errors.New("partner account is waiting for admin verification")
	ErrNotFound            = errors.New("resource not found")
	ErrConflict            = errors.New("resource already exists")
)

// ValidationError reports malformed or missing input, keyed by field name.
type ValidationError struct {
	Fields map[string]string `json:"errors"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records a message for field, keeping the first one reported.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

// OrNil returns nil when no field was reported.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Validation builds a single-field ValidationError.
func Validation(field, message string) *ValidationError {
	v := &ValidationError{}
	v.Add(field, message)
	return v
}

// IsValidation reports whether err carries a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
