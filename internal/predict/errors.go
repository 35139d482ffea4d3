package predict

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Hint is shown next to every request failure.
const Hint = "Open the demo directly in a new tab, or run the demo locally and point base_url at it."

// CoercionError reports a form field that could not be converted to its numeric type.
type CoercionError struct {
	Field string
	Value string
	Err   error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *CoercionError) Unwrap() error { return e.Err }

// StatusCode maps coercion failures to 400 for the HTTP layer.
func (e *CoercionError) StatusCode() int { return http.StatusBadRequest }

// IsCoercion reports whether err is a CoercionError.
func IsCoercion(err error) bool {
	var ce *CoercionError
	return errors.As(err, &ce)
}

// BoundsError reports a numeric parameter outside its allowed range.
type BoundsError struct {
	Field string
	Value any
	Min   float64
	Max   float64
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s must be between %g and %g, got %v", e.Field, e.Min, e.Max, e.Value)
}

func (e *BoundsError) StatusCode() int { return http.StatusBadRequest }

// IsBounds reports whether err is a BoundsError.
func IsBounds(err error) bool {
	var be *BoundsError
	return errors.As(err, &be)
}

// RequestError is a transport failure, a timeout or a non-2xx reply from the
// predict endpoint. It is never retried.
type RequestError struct {
	Endpoint string
	// Status is the remote HTTP status, 0 when no response arrived.
	Status int
	// Body is a preview of the remote error body, if any.
	Body string
	Err  error
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		if e.Body != "" {
			return fmt.Sprintf("predict request to %s failed: HTTP %d: %s", e.Endpoint, e.Status, e.Body)
		}
		return fmt.Sprintf("predict request to %s failed: HTTP %d", e.Endpoint, e.Status)
	}
	return fmt.Sprintf("predict request to %s failed: %v", e.Endpoint, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// StatusCode maps request failures to 502 for the JSON API.
func (e *RequestError) StatusCode() int { return http.StatusBadGateway }

// Hint returns the static remediation text.
func (e *RequestError) Hint() string { return Hint }

// Timeout reports whether the request hit the predict timeout.
func (e *RequestError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}

// IsRequestError reports whether err is a RequestError.
func IsRequestError(err error) bool {
	var re *RequestError
	return errors.As(err, &re)
}
