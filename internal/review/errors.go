// Package review reconciles AI-generated edit suggestions with a résumé document.
package review

import "fmt"

// ApplyError represents a failure to write a suggestion or edit into the document
type ApplyError struct {
	Message string
	Cause   error
}

func (e *ApplyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("review apply error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("review apply error: %s", e.Message)
}

func (e *ApplyError) Unwrap() error {
	return e.Cause
}

// OverlapError is returned by a strict index build when two distinct
// suggestions target the same path.
type OverlapError struct {
	Path         string
	FirstID      string
	FirstAspect  string
	SecondID     string
	SecondAspect string
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("review index error: suggestions %s (%s) and %s (%s) both target %s",
		e.FirstID, e.FirstAspect, e.SecondID, e.SecondAspect, e.Path)
}
