package repositories

import (
	"errors"
	"net/http"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is matched by every NotFoundError via errors.Is.
var ErrNotFound = errors.New("not found")

// NotFoundError names the entity whose lookup failed.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func (e *NotFoundError) HTTPStatus() int { return http.StatusNotFound }

func notFound(entity string) error { return &NotFoundError{Entity: entity} }

// ValidationError carries field-level messages keyed by JSON field name.
type ValidationError struct {
	Errors map[string]string
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: map[string]string{field: message}}
}

// Error returns the message of the alphabetically first field so the
// text is stable across calls.
func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Errors))
	for k := range e.Errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return e.Errors[keys[0]]
}

func (e *ValidationError) HTTPStatus() int { return http.StatusBadRequest }

func (e *ValidationError) FieldErrors() map[string]string { return e.Errors }

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// ParseID turns a hex id into an ObjectID. A malformed id cannot name a
// stored document, so it is reported as not found.
func ParseID(entity, hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, notFound(entity)
	}
	return id, nil
}
