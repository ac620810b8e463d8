package redfa

import (
	"fmt"
)

// CompileError represents a pattern compilation failure.
//
// It wraps the underlying *syntax.ParseError, so callers can dispatch
// on the syntax package's error categories with errors.Is.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	return fmt.Sprintf("redfa: cannot compile %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}
