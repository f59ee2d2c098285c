package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrConflict      = errors.New("conflict")
	ErrExecution     = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound        ErrorKind = "not_found"
	KindInvalidConfig   ErrorKind = "invalid_config"
	KindConflict        ErrorKind = "conflict"
	KindInvalidArgument ErrorKind = "invalid_argument"
	KindExecution       ErrorKind = "execution"

	// Parse error kinds. All of them surface as *ParseError.
	KindCommandFormat   ErrorKind = "command_format"
	KindMissingPrefix   ErrorKind = "missing_prefix"
	KindDuplicatePrefix ErrorKind = "duplicate_prefix"
	KindUnknownPrefix   ErrorKind = "unknown_prefix"
	KindFieldFormat     ErrorKind = "field_format"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError is returned whenever user input does not conform to the expected
// command or field format. Msg is meant to be shown to the user as-is.
type ParseError struct {
	Kind  ErrorKind
	Msg   string
	Cause error
}

// NewParseError builds a ParseError of the given kind.
func NewParseError(kind ErrorKind, msg string) *ParseError {
	return &ParseError{Kind: kind, Msg: msg}
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Msg
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Kind == kind {
		return true
	}
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// IsParseError reports whether err carries a *ParseError anywhere in its chain.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
