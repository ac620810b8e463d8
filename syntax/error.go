// Package syntax parses the restricted pattern mini-language into a
// syntax tree.
//
// The language recognizes literal Unicode characters, `\X` escapes (any
// character X becomes a literal, including metacharacters), `A|B`
// alternation, `A*` zero-or-more, `A+` one-or-more, and `(A)` grouping;
// concatenation is implicit. Nothing else is syntax.
package syntax

import (
	"errors"
	"fmt"
)

// Parse error categories. Every failure returned by Parse wraps exactly
// one of these, so callers can dispatch with errors.Is.
var (
	// ErrUnexpectedEOF indicates the pattern ends mid-escape or mid-group.
	ErrUnexpectedEOF = errors.New("unexpected end of pattern")

	// ErrUnmatchedParen indicates a ')' with no corresponding open group,
	// or a '(' that is never closed.
	ErrUnmatchedParen = errors.New("unmatched parenthesis")

	// ErrDanglingOperator indicates a '*', '+' or '|' with no operand.
	ErrDanglingOperator = errors.New("dangling operator")

	// ErrEmptyPattern indicates a zero-length pattern or group body.
	ErrEmptyPattern = errors.New("empty pattern")

	// ErrTrailingInput indicates unconsumed input after a complete parse.
	ErrTrailingInput = errors.New("trailing input after pattern")
)

// ParseError describes a pattern that failed to parse.
type ParseError struct {
	Pattern string
	Pos     int   // rune offset of the offending token
	Err     error // one of the category errors above
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("syntax error in %q at offset %d: %v", e.Pattern, e.Pos, e.Err)
}

// Unwrap returns the error category
func (e *ParseError) Unwrap() error {
	return e.Err
}
