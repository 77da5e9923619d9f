// Package validation checks CV field values and records before they are admitted to the store.
package validation

import (
	"fmt"
	"strings"
)

// FieldError represents a single rule violation on one field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every field-level violation of a record or document.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Messages returns the messages reported for field, in rule order.
func (ve *ValidationError) Messages(field string) []string {
	var messages []string
	for _, err := range ve.Errors {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Has reports whether field has at least one violation.
func (ve *ValidationError) Has(field string) bool {
	return len(ve.Messages(field)) > 0
}

func (ve *ValidationError) add(field string, messages ...string) {
	for _, msg := range messages {
		ve.Errors = append(ve.Errors, FieldError{Field: field, Message: msg})
	}
}

func (ve *ValidationError) orNil() error {
	if len(ve.Errors) == 0 {
		return nil
	}
	return ve
}

// DateRuleError represents a failed cross-field date check on an experience.
// It is reported as a single blocking message rather than inline.
type DateRuleError struct {
	Field   string
	Message string
	Cause   error
}

func (e *DateRuleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("date rule: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("date rule: %s", e.Message)
}

func (e *DateRuleError) Unwrap() error {
	return e.Cause
}
