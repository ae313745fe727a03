package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is the raw failure produced when the transport succeeded but the
// exchange did not: a non-2xx HTTP status, or an envelope whose code is not a
// success code.
type HTTPError struct {
	StatusCode int    // HTTP status (0 when not available)
	Code       int    // envelope code
	Message    string // server-provided message, if any
	Body       string // raw response body for debugging
}

// Error implements the error interface. Without a server message the status
// text stands in.
func (e *HTTPError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if msg != "" {
		return fmt.Sprintf("http %d (code %d): %s", e.StatusCode, e.Code, msg)
	}
	return fmt.Sprintf("http %d (code %d)", e.StatusCode, e.Code)
}

// Status returns the status used for classification. A non-2xx HTTP status
// wins over the envelope code.
func (e *HTTPError) Status() int {
	if e.StatusCode != 0 && (e.StatusCode < 200 || e.StatusCode >= 300) {
		return e.StatusCode
	}
	if e.Code != 0 {
		return e.Code
	}
	return e.StatusCode
}

// NewHTTPError creates the raw error for a non-2xx response. message is the
// server's own message and stays empty when the body carried none.
func NewHTTPError(statusCode int, message, body string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message, Body: body}
}

// NewEnvelopeError creates the raw error for an envelope that carried a
// non-success code over a successful transport.
func NewEnvelopeError(statusCode, code int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Code: code, Message: message}
}

// NetworkError marks a transport-level failure. Network errors are always
// recoverable as they may be transient.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// NewNetworkError wraps a transport failure for the given operation.
func NewNetworkError(op string, err error) *NetworkError {
	return &NetworkError{Op: op, Err: err}
}

// NewValidationError creates an already-classified validation error for input
// rejected before any request is sent.
func NewValidationError(msg string) *ClassifiedError {
	return &ClassifiedError{
		Kind:       KindValidation,
		Message:    msg,
		Underlying: fmt.Errorf("validation: %s", msg),
	}
}
