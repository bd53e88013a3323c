package openmeteo

import "errors"

// ErrorKind distinguishes the two ways a provider call can fail: the call
// itself (network, timeout, bad status) or the shape of an otherwise
// successful response.
type ErrorKind int

const (
	ErrKindTransport ErrorKind = iota + 1
	ErrKindDataShape
)

// Error is the error type returned by the provider client. Message is safe
// to show to a client; Cause carries the underlying error for logs only.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// TransportError creates an error for a failed provider call.
func TransportError(message string, cause error) *Error {
	return &Error{Kind: ErrKindTransport, Message: message, Cause: cause}
}

// DataShapeError creates an error for a provider response missing expected data.
func DataShapeError(message string) *Error {
	return &Error{Kind: ErrKindDataShape, Message: message}
}

// KindOf reports the kind of err, or zero if err is not a provider error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
