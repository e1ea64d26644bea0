// Package specerrors provides structured error types for downspec.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: YAML/JSON parsing failures and unreadable sources
//   - ConversionError: unsupported source dialects and marshaling failures
//   - ConfigError: invalid options or conflicting inputs
//
// # Usage with errors.Is
//
//	result, err := converter.Convert("api.yaml")
//	if err != nil {
//	    if errors.Is(err, specerrors.ErrUnsupportedVersion) {
//	        // Input was not an OpenAPI 3.x document.
//	    }
//	}
package specerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrUnsupportedVersion indicates the source document is not a dialect
	// this converter accepts.
	ErrUnsupportedVersion = errors.New("unsupported version")

	// ErrConversion indicates a conversion failure.
	ErrConversion = errors.New("conversion error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to parse an API document.
// This includes YAML/JSON deserialization errors and unreadable sources.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ConversionError represents a failure to convert a document.
type ConversionError struct {
	// SourceVersion is the declared source version (e.g., "3.0.1"), if known
	SourceVersion string
	// Path is the document path where conversion failed, if any
	Path string
	// Message describes the conversion failure
	Message string
	// Unsupported is true when the source dialect is not convertible
	Unsupported bool
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConversionError) Error() string {
	msg := "conversion error"
	if e.Unsupported {
		msg = "unsupported source version"
		if e.SourceVersion != "" {
			msg += fmt.Sprintf(" %q", e.SourceVersion)
		}
	} else if e.SourceVersion != "" {
		msg += fmt.Sprintf(" (source %s)", e.SourceVersion)
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConversionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrConversion, and also ErrUnsupportedVersion when the
// Unsupported flag is set.
func (e *ConversionError) Is(target error) bool {
	if target == ErrConversion {
		return true
	}
	return target == ErrUnsupportedVersion && e.Unsupported
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
