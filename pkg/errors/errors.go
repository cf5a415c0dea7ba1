package errors

import (
	"fmt"
)

// ParseError reports a config file that could not be read or decoded.
// Line is zero when the decoder did not report a position.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports a rejected configuration field or user input.
// Input holds the offending text when it came from the user.
type ValidationError struct {
	Field   string
	Input   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

// NewInputError constructs a ValidationError for rejected user input.
func NewInputError(field, input, message string, err error) error {
	return &ValidationError{Field: field, Input: input, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Field != "" && e.Input != "":
		return fmt.Sprintf("validation error: %s %q: %s", e.Field, e.Input, e.Message)
	case e.Field != "":
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	default:
		return fmt.Sprintf("validation error: %s", e.Message)
	}
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ClipboardError reports a rejected clipboard write for a swatch value.
type ClipboardError struct {
	Value string
	Err   error
}

// NewClipboardError constructs a ClipboardError.
func NewClipboardError(value string, err error) error {
	return &ClipboardError{Value: value, Err: err}
}

func (e *ClipboardError) Error() string {
	if e == nil {
		return ""
	}
	if e.Value != "" {
		return fmt.Sprintf("clipboard error: copy %s: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("clipboard error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *ClipboardError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
