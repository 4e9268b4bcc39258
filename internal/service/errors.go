package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidCredentials is returned by Login for an unknown name or a
	// wrong password alike, so callers cannot tell which part failed.
	ErrInvalidCredentials = errors.New("invalid name or password")

	// ErrEmptyUpdate is returned by UpdateProfile when the request carries
	// neither a name nor a password.
	ErrEmptyUpdate = errors.New("no fields to update")
)

// ValidationError reports per-field validation failures of a request
// body. Each field maps to exactly one message: when several rules fail
// for the same field, the first one wins.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}

	return "validation failed: " + strings.Join(parts, "; ")
}
