package images

import (
	"errors"
	"fmt"
)

var (
	// ErrCancelled is returned when the user dismisses the picker without choosing an image.
	ErrCancelled = errors.New("image selection cancelled")
	// ErrPermissionDenied is returned when the chosen image cannot be accessed.
	ErrPermissionDenied = errors.New("permission denied for image access")
)

// ReadError represents a failure to resolve an image reference into bytes
type ReadError struct {
	Message string
	Ref     string
	Cause   error
}

func (e *ReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("image read error: %s (%s): %v", e.Message, e.Ref, e.Cause)
	}
	return fmt.Sprintf("image read error: %s (%s)", e.Message, e.Ref)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}
