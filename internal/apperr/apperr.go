// Package apperr defines the error taxonomy surfaced by the intake core.
// Controllers translate these into HTTP responses; services never write
// status codes themselves.
package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnauthorized terminates the request with no partial effect whenever a
// policy predicate returns false at the boundary.
var ErrUnauthorized = errors.New("unauthorized")

// ValidationError carries every rule violation found in one pass, keyed by
// field path (name, email, status, assigned_user_id, answers.<key>, body).
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "validation failed: " + strings.Join(keys, ", ")
}

// NewValidation wraps a single-field violation.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// NotFoundError reports a missing Application/Question/Comment/User.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

func NotFound(resource string, id uint) error {
	return &NotFoundError{Resource: resource, ID: id}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// DuplicateKeyError reports a question key collision in the registry.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("question key %q already exists", e.Key)
}

// PersistenceError wraps a failed write. The create-application path reports
// this as a generic form-level error rather than a field error.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
