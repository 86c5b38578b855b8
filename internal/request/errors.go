package request

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors returned by the client.
var (
	// ErrNoTarget is returned when neither a base URL nor an absolute
	// request URL was provided.
	ErrNoTarget = errors.New("no request target")

	// ErrInvalidTarget is returned when the request URL cannot be parsed.
	ErrInvalidTarget = errors.New("invalid request target")
)

// StatusError is returned when the server answered with a non-success status.
// It carries a short excerpt of the response body for diagnostics.
type StatusError struct {
	Status int
	Body   string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("server returned status %d", e.Status)
	}
	return fmt.Sprintf("server returned status %d: %s", e.Status, e.Body)
}

// StatusCode returns the HTTP status, satisfying the status carrier contract
// the fetch package classifies on.
func (e *StatusError) StatusCode() int {
	return e.Status
}

// IsNotFound reports whether the error is a 404 response.
func (e *StatusError) IsNotFound() bool {
	return e.Status == http.StatusNotFound
}

// IsUnauthorized reports whether the error is an authentication failure.
func (e *StatusError) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}
