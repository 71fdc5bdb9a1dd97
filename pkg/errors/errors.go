package chat_errors

import (
	"errors"
	"net/http"
)

// Common errors
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrForbidden     = errors.New("forbidden")
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnavailable   = errors.New("service unavailable")
	ErrInternal      = errors.New("internal error")
)

// Error is a failure with a client-facing message. Error() is what goes into the
// response body, so the cause text from the external service is appended verbatim.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func New(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func NotFound(message string) *Error {
	return New(ErrNotFound, message)
}

func Forbidden(message string) *Error {
	return New(ErrForbidden, message)
}

func AlreadyExists(message string) *Error {
	return New(ErrAlreadyExists, message)
}

func InvalidInput(message string) *Error {
	return New(ErrInvalidInput, message)
}

// Internal wraps a failure of the identity provider or the store.
func Internal(message string, cause error) *Error {
	return Wrap(ErrInternal, message, cause)
}

// HTTPStatus maps an error to the status code the HTTP layer responds with.
// An existing chat is reported as 403, not 409.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrAlreadyExists):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
