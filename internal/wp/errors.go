// ABOUTME: Typed errors for the WordPress REST client
// ABOUTME: Separates transport failures, HTTP error responses, and logical not-found
package wp

import (
	"errors"
	"fmt"
)

// ErrNotInitialized is returned when a request is attempted before
// Initialize has been called. This is a programmer error, never a
// retryable condition.
var ErrNotInitialized = errors.New("wordpress client not initialized")

// ErrNotFound reports logical absence of a record. Lookups by ID or slug
// return this instead of a RequestError because "post does not exist" is
// an expected outcome, not a failure.
var ErrNotFound = errors.New("not found")

// RequestError is a non-2xx response from the WordPress API.
type RequestError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("wordpress request failed: %s %s: status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// TransportError is a network-level failure reaching WordPress (timeout,
// connection reset, DNS failure). Callers may retry these.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("wordpress transport failure: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ValidationError reports an invalid query or input field. Validation
// runs before any network call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
