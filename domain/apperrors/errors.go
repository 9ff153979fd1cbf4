package apperrors

import (
	"errors"
	"fmt"
)

// NotFoundError is raised by the service layer when a lookup by id/slug/category
// yields no row. Kind is the entity name ("Category", "Rule", "MCP Server"),
// Field the lookup key ("ID", "slug") and Value the key that missed.
type NotFoundError struct {
	Kind  string
	Field string
	Value any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with %s %v not found", e.Kind, e.Field, e.Value)
}

func NewNotFound(kind, field string, value any) *NotFoundError {
	return &NotFoundError{Kind: kind, Field: field, Value: value}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ConflictError carries a unique or foreign-key violation translated from the
// store. The service layer does not pre-check these, the database is the sole
// authority.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflict(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}
