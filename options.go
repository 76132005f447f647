package client

import (
	"net/http"
	"time"
)

type Option func(*Options)

type Options struct {
	baseURL          string
	timeout          time.Duration
	retryCount       int
	retryWaitTime    time.Duration
	retryMaxWaitTime time.Duration
	verbose          bool
	requestLogger    RequestLogger
	httpClient       *http.Client
}

// WithBaseURL overrides the API endpoint. Intended for proxies and tests;
// the hosted endpoint is the default.
func WithBaseURL(baseURL string) Option {
	return func(o *Options) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithTimeout sets the per-attempt deadline. Each retry gets a fresh
// timeout window; the value does not bound the logical call as a whole.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithRetryCount sets the maximum number of additional attempts after the
// first. Zero disables retries entirely.
func WithRetryCount(count int) Option {
	return func(o *Options) {
		if count >= 0 {
			o.retryCount = count
		}
	}
}

// WithRetryWaitTime sets the backoff base: the wait before the first
// retry, doubled for each subsequent one.
func WithRetryWaitTime(waitTime time.Duration) Option {
	return func(o *Options) {
		if waitTime > 0 {
			o.retryWaitTime = waitTime
		}
	}
}

// WithRetryMaxWaitTime caps the backoff wait regardless of attempt count.
func WithRetryMaxWaitTime(maxWaitTime time.Duration) Option {
	return func(o *Options) {
		if maxWaitTime > 0 {
			o.retryMaxWaitTime = maxWaitTime
		}
	}
}

// WithVerbose enables request/response logging. Unless a logger was
// supplied via [WithRequestLogger], output goes through [SlogLogger].
func WithVerbose(verbose bool) Option {
	return func(o *Options) {
		o.verbose = verbose
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
			o.verbose = true
		}
	}
}

// WithHTTPClient replaces the underlying [http.Client]. The per-attempt
// timeout is still enforced through the request context.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *Options) {
		if hc != nil {
			o.httpClient = hc
		}
	}
}
