package cvfile

import (
	"fmt"
	"strings"
)

// FileError represents a failure to read, decode, or write a CV file
type FileError struct {
	Path    string
	Message string
	Cause   error
}

func (e *FileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cv file %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("cv file %s: %s", e.Path, e.Message)
}

func (e *FileError) Unwrap() error {
	return e.Cause
}

// SchemaError lists the places where a CV file does not match the CV schema
type SchemaError struct {
	Path   string
	Errors []FieldError
}

// FieldError represents a single schema violation at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (e *SchemaError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("schema validation failed for %s:\n", e.Path))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}
