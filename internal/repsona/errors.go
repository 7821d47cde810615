package repsona

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned for non-2xx responses and for 2xx responses whose
// body is not valid JSON. In the latter case Err holds the decode error.
type APIError struct {
	StatusCode int
	Status     string
	Method     string
	Path       string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Repsona API Error: invalid JSON in %d response to %s %s: %v", e.StatusCode, e.Method, e.Path, e.Err)
	}
	return fmt.Sprintf("Repsona API Error: %d %s", e.StatusCode, e.Status)
}

func (e *APIError) Unwrap() error { return e.Err }

// Decode reports whether the request succeeded but the body could not be parsed.
func (e *APIError) Decode() bool { return e.Err != nil }

// IsNotFound, IsUnauthorized and IsForbidden match an APIError by status.
func IsNotFound(err error) bool     { return hasStatus(err, http.StatusNotFound) }
func IsUnauthorized(err error) bool { return hasStatus(err, http.StatusUnauthorized) }
func IsForbidden(err error) bool    { return hasStatus(err, http.StatusForbidden) }

func hasStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Err == nil && apiErr.StatusCode == code
}
