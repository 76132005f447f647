package client

import (
	"context"
	"errors"
	"net"
	"syscall"
	"time"
)

// classifyFault maps a transport-level failure of a single attempt to
// exactly one error kind, inspecting the structured error chain only.
// Per-attempt deadline expiries become [TimeoutError]; connection resets,
// refused connections and name-resolution failures become [NetworkError].
// Anything else (including caller cancellation) is surfaced unchanged and
// is not retried.
func classifyFault(err error, elapsed time.Duration) error {
	if errors.Is(err, context.Canceled) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Elapsed: elapsed}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TimeoutError{Elapsed: elapsed}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &NetworkError{Err: err}
	}
	if errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNABORTED) ||
		errors.Is(err, syscall.EPIPE) {
		return &NetworkError{Err: err}
	}

	return err
}

// retryable reports whether a classified failure is eligible for another
// attempt: 5xx responses, connectivity faults and per-attempt timeouts.
// 4xx responses and unclassified faults are not.
func retryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.IsServerError()
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return true
	}
	var timeoutErr *TimeoutError
	return errors.As(err, &timeoutErr)
}
