// Package apierror provides standardized error response structures for the API
// plus the domain error taxonomy shared by services and handlers. All errors
// returned to clients go through this package to ensure consistency and to
// prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"fmt"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "validation error", Fields: fields}
}

// ── Domain error taxonomy ─────────────────────────────────────────────────────
// Expected, caller-facing outcomes. Anything else coming out of a service is
// treated as an internal failure.

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrItemNotFound     = errors.New("item not found")
	ErrDuplicateName    = errors.New("category name already exists")
)

// HasDependentsError is returned when deleting a category that still owns
// items. Count is the number of blocking items at the time of the check.
type HasDependentsError struct {
	Count int64
}

func (e *HasDependentsError) Error() string {
	return fmt.Sprintf("cannot delete category with %d items; delete items first", e.Count)
}
