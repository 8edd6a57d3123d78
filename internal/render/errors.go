// Package render turns a layout tree into a vector frame and rasterizes it to
// a PNG social preview.
package render

import "fmt"

// Error represents a vectorization or rasterization failure for one record.
// The run reports it and continues with the remaining records.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
