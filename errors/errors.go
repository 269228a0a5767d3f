// Package errors provides standardized error handling for the knowledge
// graph construction engine. It classifies failures into the four categories
// the engine distinguishes (invalid input, not found, external process, I/O)
// and offers helpers for consistent wrapping with operation context.
package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes.
type ErrorClass int

const (
	// ErrorInvalid represents malformed or empty input: wrong argument
	// types, empty ontology content, graphs with no data.
	ErrorInvalid ErrorClass = iota
	// ErrorNotFound represents a referenced file or external tool path
	// that does not exist.
	ErrorNotFound
	// ErrorProcess represents an external merge/format tool exiting
	// abnormally or failing to produce its promised output.
	ErrorProcess
	// ErrorIO represents an unwritable or unreadable output location.
	ErrorIO
)

// String returns the string representation of ErrorClass.
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorInvalid:
		return "invalid"
	case ErrorNotFound:
		return "not_found"
	case ErrorProcess:
		return "process"
	case ErrorIO:
		return "io"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions.
var (
	// Content validation errors
	ErrEmptyOntology  = errors.New("ontology file contains no data")
	ErrEmptyGraph     = errors.New("graph contains no triples")
	ErrNoClasses      = errors.New("graph contains no class declarations")
	ErrNoProperties   = errors.New("graph contains no property declarations")
	ErrMalformedInput = errors.New("malformed input")

	// File and tool lookup errors
	ErrFileNotFound = errors.New("file not found")
	ErrToolNotFound = errors.New("external tool not found")

	// External process errors
	ErrProcessFailed = errors.New("external process failed")
	ErrMissingOutput = errors.New("external process produced no output file")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMissingConfig = errors.New("missing required configuration")
)

// ClassifiedError wraps an error with its classification and the component
// and operation that raised it, so failures can be diagnosed without
// re-running the build.
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface.
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error.
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsInvalid checks if an error is due to malformed or empty input.
func IsInvalid(err error) bool {
	if err == nil {
		return false
	}
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorInvalid
	}
	return errors.Is(err, ErrEmptyOntology) ||
		errors.Is(err, ErrEmptyGraph) ||
		errors.Is(err, ErrNoClasses) ||
		errors.Is(err, ErrNoProperties) ||
		errors.Is(err, ErrMalformedInput) ||
		errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrMissingConfig)
}

// IsNotFound checks if an error is due to a missing file or tool.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorNotFound
	}
	return errors.Is(err, ErrFileNotFound) || errors.Is(err, ErrToolNotFound)
}

// IsProcess checks if an error came from an external tool invocation.
func IsProcess(err error) bool {
	if err == nil {
		return false
	}
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorProcess
	}
	return errors.Is(err, ErrProcessFailed) || errors.Is(err, ErrMissingOutput)
}

// IsIO checks if an error is an I/O failure on a read or write location.
func IsIO(err error) bool {
	if err == nil {
		return false
	}
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorIO
	}
	return false
}

// newClassified creates a new classified error.
// This is an internal helper - use the WrapX functions instead.
func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.operation: action failed: %w"
func Wrap(err error, component, operation, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, operation, action, err)
}

// WrapInvalid wraps an error as an input validation failure with context.
func WrapInvalid(err error, component, operation, action string) error {
	if err == nil {
		return nil
	}
	wrapped := Wrap(err, component, operation, action)
	return newClassified(ErrorInvalid, wrapped, component, operation, wrapped.Error())
}

// WrapNotFound wraps an error as a missing file or tool with context.
func WrapNotFound(err error, component, operation, action string) error {
	if err == nil {
		return nil
	}
	wrapped := Wrap(err, component, operation, action)
	return newClassified(ErrorNotFound, wrapped, component, operation, wrapped.Error())
}

// WrapProcess wraps an error as an external process failure with context.
func WrapProcess(err error, component, operation, action string) error {
	if err == nil {
		return nil
	}
	wrapped := Wrap(err, component, operation, action)
	return newClassified(ErrorProcess, wrapped, component, operation, wrapped.Error())
}

// WrapIO wraps an error as an I/O failure with context.
func WrapIO(err error, component, operation, action string) error {
	if err == nil {
		return nil
	}
	wrapped := Wrap(err, component, operation, action)
	return newClassified(ErrorIO, wrapped, component, operation, wrapped.Error())
}

// Is reports whether any error in err's chain matches target. Re-exported so
// callers do not need both this package and the standard library errors.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target. Re-exported
// alongside Is for the same reason.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns an error that formats as the given text. Re-exported for
// convenience.
func New(text string) error {
	return errors.New(text)
}
