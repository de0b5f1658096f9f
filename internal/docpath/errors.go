// Package docpath provides read and copy-on-write access into nested JSON-like documents.
package docpath

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedPath is the cause of a PathError for text that cannot be tokenized.
	ErrMalformedPath = errors.New("malformed path")
	// ErrEmptyPath is the cause of a PathError for writes with no tokens.
	ErrEmptyPath = errors.New("empty path")
	// ErrPathConflict is the cause of a PathError for writes that would have to
	// replace existing non-container data, or address a mapping by index (or a
	// sequence by key).
	ErrPathConflict = errors.New("path conflicts with document shape")
	// ErrIndexOutOfRange is the cause of a PathError for writes whose index
	// lies more than MaxPadding positions past the end of a sequence.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// PathError represents a failure to parse a path or to write through it.
type PathError struct {
	Path    string
	Message string
	Cause   error
}

func (e *PathError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("path error: %q: %v: %s", e.Path, e.Cause, e.Message)
	}
	return fmt.Sprintf("path error: %q: %v", e.Path, e.Cause)
}

func (e *PathError) Unwrap() error {
	return e.Cause
}
