package negotiation

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrUnsupportedFormat is the sentinel for rejected explicit format
// values.
var ErrUnsupportedFormat = errors.New("output format not supported")

// Error is a structured negotiation failure. It carries an HTTP status
// code, a short message, and human-readable detail strings. It is
// raised from within a strategy, aborts resolution, and is rendered to
// the client by the hosting dispatcher.
type Error struct {
	StatusCode int
	Message    string
	Details    []string
	Cause      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Details, "; "))
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target.
func (e *Error) Is(target error) bool {
	_, ok := target.(*Error)
	return ok || errors.Is(e.Cause, target)
}

// NewUnsupportedFormatError creates the 400 error for an explicit
// format value outside the supported vocabulary.
func NewUnsupportedFormatError(format string) *Error {
	return &Error{
		StatusCode: http.StatusBadRequest,
		Message:    "Output format not supported",
		Details:    []string{fmt.Sprintf("Format %s is not supported", format)},
		Cause:      ErrUnsupportedFormat,
	}
}

// NewInvalidMediaTypeError creates the 400 error for a media type value
// that failed to parse, preserving the parse failure as the cause.
func NewInvalidMediaTypeError(value string, cause error) *Error {
	return &Error{
		StatusCode: http.StatusBadRequest,
		Message:    "Output format not supported",
		Details:    []string{fmt.Sprintf("Format %s is not supported", value)},
		Cause:      cause,
	}
}
