package client

import (
	"errors"
	"fmt"
	"time"
)

// ErrMissingCredentials is returned by [New] when the API key or the
// token is empty. No request can be built without both.
var ErrMissingCredentials = errors.New("api key and token are required")

// APIError is a non-2xx response from the TaskDeck API. Body holds the
// serialized response body as received.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("api error %d (empty error body)", e.StatusCode)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Body)
}

// IsClientError reports whether the status is in the 4xx range. Client
// errors are never retried.
func (e *APIError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// IsServerError reports whether the status is in the 5xx range.
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}

// NetworkError is a transport-level connectivity fault: connection
// refused or reset, or a failed host lookup.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// TimeoutError is an attempt that exceeded its per-attempt deadline.
// Elapsed is the wall-clock duration of the aborted attempt.
type TimeoutError struct {
	Elapsed time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out after %v", e.Elapsed)
}

// DecodeError is a 2xx response whose body could not be decoded into
// the caller's result. The request itself succeeded, so the call is not
// retried.
type DecodeError struct {
	ContentType string
	Err         error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %q response: %v", e.ContentType, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// RetryExhaustedError terminates a logical call once its retry budget is
// spent. Err is the classified failure of the final attempt and is
// reachable with [errors.As].
type RetryExhaustedError struct {
	Attempts int
	Err      error
}

func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("giving up after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *RetryExhaustedError) Unwrap() error {
	return e.Err
}
