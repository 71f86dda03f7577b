package listings

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNoToken indicates a login response carried neither a "jwt" nor a
// "token" field.
var ErrNoToken = errors.New("no token returned from server")

// APIError is the normalized error for any non-2xx backend response.
// Message prefers the backend-supplied "message" field and falls back to
// the HTTP status text.
type APIError struct {
	Status  int
	Message string
	Body    []byte
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
}

// NetworkError indicates the request never produced a response: DNS
// failure, refused connection, timeout, canceled context.
type NetworkError struct {
	Err error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// newAPIError builds an APIError from a response status and body,
// preferring a backend "message" field when the body parses as JSON.
func newAPIError(status int, body []byte) *APIError {
	msg := messageFromBody(body)
	if msg == "" {
		msg = http.StatusText(status)
	}
	if msg == "" {
		msg = "API error"
	}
	return &APIError{Status: status, Message: msg, Body: body}
}

// IsNetwork reports whether err is a transport-level failure.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == http.StatusNotFound
}

// IsAuth reports whether err is an authentication or authorization
// rejection from the backend.
func IsAuth(err error) bool {
	var ae *APIError
	if !errors.As(err, &ae) {
		return false
	}
	return ae.Status == http.StatusUnauthorized || ae.Status == http.StatusForbidden
}
