package domain

import (
    "errors"
    "fmt"
    "strings"
)

// Sentinel errors shared by services and adapters.
var (
    ErrNotFound     = errors.New("not found")
    ErrValidation   = errors.New("validation error")
    ErrUnauthorized = errors.New("unauthorized")
    ErrForbidden    = errors.New("forbidden")
    ErrConflict     = errors.New("conflict")
    ErrInFlight     = fmt.Errorf("request already in progress: %w", ErrConflict)
)

// FieldError describes a validation failure for one input field.
type FieldError struct {
    Field   string `json:"field"`
    Message string `json:"message"`
}

// ValidationError collects field errors found before any network call.
type ValidationError struct {
    Errors []FieldError
}

func (e *ValidationError) Error() string {
    if len(e.Errors) == 1 {
        return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
    }
    fields := make([]string, 0, len(e.Errors))
    for _, fe := range e.Errors {
        fields = append(fields, fe.Field)
    }
    return fmt.Sprintf("validation: %d errors (%s)", len(e.Errors), strings.Join(fields, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Add appends a field error.
func (e *ValidationError) Add(field, message string) {
    e.Errors = append(e.Errors, FieldError{Field: field, Message: message})
}

// OrNil returns nil when no field errors were collected.
func (e *ValidationError) OrNil() error {
    if e == nil || len(e.Errors) == 0 {
        return nil
    }
    return e
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
    return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}
