package client

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultBaseURL = "https://api.taskdeck.io/v1"

const (
	defaultTimeout          = 30 * time.Second
	defaultRetryCount       = 3
	defaultRetryWaitTime    = 1 * time.Second
	defaultRetryMaxWaitTime = 5 * time.Second
)

// Environment fallbacks, consulted once when the client is constructed.
const (
	envTimeoutMS = "TASKDECK_TIMEOUT_MS"
	envRetries   = "TASKDECK_RETRIES"
	envVerbose   = "TASKDECK_VERBOSE"
)

// newClientOptions resolves the defaults for every setting: environment
// value if present and valid, built-in default otherwise. Explicit
// [Option] functions are applied on top by [New], so the precedence is
// explicit > environment > default.
func newClientOptions() *Options {
	_ = godotenv.Load()

	return &Options{
		baseURL:          defaultBaseURL,
		timeout:          envMillis(envTimeoutMS, defaultTimeout),
		retryCount:       envInt(envRetries, defaultRetryCount),
		retryWaitTime:    defaultRetryWaitTime,
		retryMaxWaitTime: defaultRetryMaxWaitTime,
		verbose:          envBool(envVerbose, false),
		requestLogger:    &NoopLogger{},
	}
}

func envMillis(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms <= 0 {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
