package export

import (
	"errors"
	"fmt"
)

// ErrNotGenerated is returned by View and Share before a document has been generated.
var ErrNotGenerated = errors.New("generate the document first")

// ConversionError represents a failure to convert markup into a document
type ConversionError struct {
	Message   string
	LogOutput string
	Cause     error
}

func (e *ConversionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("conversion error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("conversion error: %s", e.Message)
}

func (e *ConversionError) Unwrap() error {
	return e.Cause
}

// DeliveryError represents a failure to view or share a generated document
type DeliveryError struct {
	Action string
	Path   string
	Cause  error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s failed for %s: %v", e.Action, e.Path, e.Cause)
}

func (e *DeliveryError) Unwrap() error {
	return e.Cause
}
