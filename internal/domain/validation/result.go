// Package validation holds the pure field validators applied to place data
// before it reaches either store.
package validation

import (
	"fmt"
	"strings"
)

const warningPrefix = "Warning: "

// Result collects the outcome of one or more validations.
type Result struct {
	IsValid     bool                `json:"is_valid"`
	Errors      []string            `json:"errors"`
	Warnings    []string            `json:"warnings"`
	FieldErrors map[string][]string `json:"field_errors"`
}

// NewResult returns an empty, valid result.
func NewResult() *Result {
	return &Result{
		IsValid:     true,
		Errors:      []string{},
		Warnings:    []string{},
		FieldErrors: map[string][]string{},
	}
}

// AddError records an error and marks the result invalid.
func (r *Result) AddError(message, field string) {
	r.Errors = append(r.Errors, message)
	r.IsValid = false
	if field != "" {
		r.FieldErrors[field] = append(r.FieldErrors[field], message)
	}
}

// AddWarning records a warning. Field-scoped warnings are prefixed so they can
// be told apart from errors in FieldErrors.
func (r *Result) AddWarning(message, field string) {
	r.Warnings = append(r.Warnings, message)
	if field != "" {
		r.FieldErrors[field] = append(r.FieldErrors[field], warningPrefix+message)
	}
}

// Merge folds other into r.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	for field, messages := range other.FieldErrors {
		r.FieldErrors[field] = append(r.FieldErrors[field], messages...)
	}
	if !other.IsValid {
		r.IsValid = false
	}
}

// FieldMessages returns the messages recorded for field.
func (r *Result) FieldMessages(field string) []string {
	return r.FieldErrors[field]
}

// Summary renders the errors as a numbered list.
func (r *Result) Summary() string {
	if len(r.Errors) == 0 {
		return "No errors"
	}

	var sb strings.Builder
	sb.WriteString("Validation Errors:")
	for i, message := range r.Errors {
		fmt.Fprintf(&sb, "\n  %d. %s", i+1, message)
	}

	return sb.String()
}
