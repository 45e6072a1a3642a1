// Package errors holds the typed failures of preset handling. Both types
// match ErrInvalidPreset under errors.Is, so callers can tell a bad preset
// from an I/O or rendering failure without a type switch.
package errors

import (
	"errors"
	"fmt"
)

// ErrInvalidPreset is matched by every ParseError and ValidationError.
var ErrInvalidPreset = errors.New("invalid preset")

// ParseError is a preset that could not be read or decoded. Line is 1-based
// and 0 when the decoder did not report a position.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError wraps err; Message is taken from err.
func NewParseError(path string, line int, err error) error {
	pe := &ParseError{Path: path, Line: line, Err: err}
	if err != nil {
		pe.Message = err.Error()
	}
	return pe
}

// Error reads like a compiler diagnostic: "path:line: message".
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	where := e.Path
	if where == "" {
		where = "<preset>"
	}
	if e.Line > 0 {
		where = fmt.Sprintf("%s:%d", where, e.Line)
	}
	return fmt.Sprintf("%s: %s", where, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidPreset
}

// ValidationError is a preset field holding a value that cannot be clamped
// into range, such as an unknown effect name. Field uses the file's key
// name and is empty when the whole preset is at fault.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field == "" {
		return "invalid preset: " + e.Message
	}
	return fmt.Sprintf("invalid preset field %q: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidPreset
}
