package apperr

import (
	"errors"

	"rttm-inventory-service/internal/error/code"
)

// Error carries a domain error code alongside the message so controllers can
// map service failures to the right HTTP status.
type Error struct {
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return code.GetMessage(e.Code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a coded error with the code's default message
func New(errorCode int) *Error {
	return &Error{Code: errorCode}
}

// NewMsg creates a coded error with a custom message
func NewMsg(errorCode int, message string) *Error {
	return &Error{Code: errorCode, Message: message}
}

// Wrap attaches a code to an underlying error
func Wrap(errorCode int, err error) *Error {
	return &Error{Code: errorCode, Err: err, Message: code.GetMessage(errorCode)}
}

// CodeOf extracts the domain code from an error, defaulting to ErrUnknown
func CodeOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return code.ErrUnknown
}

// Is reports whether err carries the given domain code
func Is(err error, errorCode int) bool {
	return CodeOf(err) == errorCode
}
