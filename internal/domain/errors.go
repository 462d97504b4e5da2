package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMintNotFound is returned when a mint record is not found
	ErrMintNotFound = errors.New("mint record not found")
)

// FieldError describes a single field that failed validation
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError enumerates every field that failed its constraint.
// Validation never stops at the first failure.
type ValidationError struct {
	FieldErrors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.FieldErrors))
	for i, fe := range e.FieldErrors {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a field failure to the error
func (e *ValidationError) Add(field string, message string) {
	e.FieldErrors = append(e.FieldErrors, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any field failed
func (e *ValidationError) HasErrors() bool {
	return len(e.FieldErrors) > 0
}

// Fields returns the names of the failing fields
func (e *ValidationError) Fields() []string {
	fields := make([]string, len(e.FieldErrors))
	for i, fe := range e.FieldErrors {
		fields[i] = fe.Field
	}
	return fields
}

// MissingFieldsError names the required payload fields that were absent
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// DuplicateKeyError identifies an identity conflict on a unique field
type DuplicateKeyError struct {
	Field string
	Value string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate value for %s: %s", e.Field, e.Value)
}
