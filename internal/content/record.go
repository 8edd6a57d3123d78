// Package content reads publishable content records from a directory of
// markdown files with yaml front matter.
package content

import (
	"fmt"
	"time"
)

// Record is one piece of publishable content. It exists only for the duration
// of a generation run and is never persisted.
type Record struct {
	Slug        string
	Title       string
	Description string
	Date        time.Time
	Draft       bool
	// FileName records which content file the record came from, for diagnostics.
	FileName string
}

// ParseError reports malformed front matter in a single content file. The file
// is skipped with a warning; one bad file never aborts the run.
type ParseError struct {
	File    string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("content parse error in %s: %s: %v", e.File, e.Message, e.Cause)
	}
	return fmt.Sprintf("content parse error in %s: %s", e.File, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
