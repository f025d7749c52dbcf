package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrAlreadySet    = errors.New("already set")
	ErrImport        = errors.New("import failed")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ImportRowError describes a single rejected line of an imported file.
// Line is 1-based and counts the header line.
type ImportRowError struct {
	Line   int
	Reason string
}

// ImportError is returned when a file cannot be imported. Reason is always
// a human-readable cause; Rows lists rejected lines when the failure was
// caused by malformed data.
type ImportError struct {
	Reason string
	Rows   []ImportRowError
}

func (e *ImportError) Error() string {
	if len(e.Rows) > 0 {
		return fmt.Sprintf("import: %s (%d rejected rows)", e.Reason, len(e.Rows))
	}
	return "import: " + e.Reason
}

func (e *ImportError) Unwrap() error { return ErrImport }

// NewImportError creates an ImportError without row details.
func NewImportError(reason string) *ImportError {
	return &ImportError{Reason: reason}
}
