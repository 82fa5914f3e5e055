package input

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks input that parsed cleanly but violates a logical
// invariant (e.g. an event with no open shift, an empty point set).
var ErrInvalidInput = errors.New("input: invalid input")

// ParseError describes a record that does not match its expected format.
// Line is 1-based; zero means the position is unknown.
type ParseError struct {
	Line int    // 1-based record number, 0 if unknown
	Text string // raw record text
	Err  error  // underlying cause, usually a package sentinel
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse line %d %q: %v", e.Line, e.Text, e.Err)
	}

	return fmt.Sprintf("parse %q: %v", e.Text, e.Err)
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *ParseError) Unwrap() error { return e.Err }

// Invalid wraps ErrInvalidInput with a package-specific reason, producing a
// sentinel that matches both itself and ErrInvalidInput under errors.Is.
func Invalid(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}

// AtLine attaches a line number to err if it is a *ParseError without one.
// Other errors are returned unchanged.
func AtLine(err error, line int) error {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Line == 0 {
		return &ParseError{Line: line, Text: pe.Text, Err: pe.Err}
	}

	return err
}
