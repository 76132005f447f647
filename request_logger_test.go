package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

// captureLogger records every formatted log line for assertions.
type captureLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *captureLogger) record(level, format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+": "+fmt.Sprintf(format, v...))
}

func (l *captureLogger) Errorf(format string, v ...any) { l.record("ERROR", format, v...) }
func (l *captureLogger) Warnf(format string, v ...any)  { l.record("WARN", format, v...) }
func (l *captureLogger) Debugf(format string, v ...any) { l.record("DEBUG", format, v...) }

func (l *captureLogger) all() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return strings.Join(l.lines, "\n")
}

// panickingLogger blows up on every call.
type panickingLogger struct{}

func (l *panickingLogger) Errorf(_ string, _ ...any) { panic("logger failure") }
func (l *panickingLogger) Warnf(_ string, _ ...any)  { panic("logger failure") }
func (l *panickingLogger) Debugf(_ string, _ ...any) { panic("logger failure") }

func TestVerboseLogging_RequestAndResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"b1"}`))
	}))
	defer server.Close()

	logger := &captureLogger{}
	c := newTestClient(t, server.URL, WithRequestLogger(logger))

	var board Board
	if err := c.Do(context.Background(), http.MethodGet, "/boards/b1", nil, EncodeQuery, &board); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logged := logger.all()

	if !strings.Contains(logged, "GET") {
		t.Errorf("expected method in log output, got:\n%s", logged)
	}

	if !strings.Contains(logged, "key=test-key") || !strings.Contains(logged, "token=test-token") {
		t.Errorf("expected full URL with credentials in log output, got:\n%s", logged)
	}

	if !strings.Contains(logged, "status=200") {
		t.Errorf("expected response status in log output, got:\n%s", logged)
	}
}

func TestLogging_DisabledByDefault(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c, err := New("k", "t", WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger := &captureLogger{}
	c.options.requestLogger = logger // verbose stays off

	var out map[string]any
	if err := c.Do(context.Background(), http.MethodGet, "/boards/b1", nil, EncodeQuery, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if logged := logger.all(); logged != "" {
		t.Errorf("expected no log output with verbosity off, got:\n%s", logged)
	}
}

func TestLogResponse_LargeBodyOmitted(t *testing.T) {
	t.Parallel()

	body := strings.Repeat("x", 20000)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	logger := &captureLogger{}
	c := newTestClient(t, server.URL, WithRequestLogger(logger))

	var out string
	if err := c.Do(context.Background(), http.MethodGet, "/export", nil, EncodeQuery, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logged := logger.all()

	if !strings.Contains(logged, "(body omitted: 20000 bytes)") {
		t.Errorf("expected size placeholder for oversized body, got:\n%s", logged)
	}

	if strings.Contains(logged, body) {
		t.Error("expected oversized body not to be logged verbatim")
	}

	// The call itself still returns the full body.
	if len(out) != 20000 {
		t.Errorf("expected full body returned to caller, got %d bytes", len(out))
	}
}

func TestLogResponse_SlowRequestFlagged(t *testing.T) {
	t.Parallel()

	logger := &captureLogger{}
	c, err := New("k", "t", WithRequestLogger(logger))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.logResponse(http.MethodGet, "https://api.example.com/boards/b1", 200, []byte(`{}`), 6*time.Second, 1)

	if !strings.Contains(logger.all(), "slow request") {
		t.Errorf("expected slow request warning, got:\n%s", logger.all())
	}
}

func TestLogResponse_FastRequestNotFlagged(t *testing.T) {
	t.Parallel()

	logger := &captureLogger{}
	c, err := New("k", "t", WithRequestLogger(logger))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.logResponse(http.MethodGet, "https://api.example.com/boards/b1", 200, []byte(`{}`), 20*time.Millisecond, 1)

	if strings.Contains(logger.all(), "slow request") {
		t.Errorf("expected no slow request warning, got:\n%s", logger.all())
	}
}

func TestLoggableBody(t *testing.T) {
	t.Parallel()

	if got := loggableBody([]byte("small")); got != "small" {
		t.Errorf("expected small body verbatim, got %q", got)
	}

	big := make([]byte, maxLoggedBodySize)
	if got := loggableBody(big); !strings.Contains(got, "10000 bytes") {
		t.Errorf("expected placeholder at the size limit, got %q", got)
	}
}

func TestPanickingLoggerDoesNotFailRequest(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"b1","name":"Sprint"}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, WithRequestLogger(&panickingLogger{}))

	var board Board
	err := c.Do(context.Background(), http.MethodGet, "/boards/b1", nil, EncodeQuery, &board)
	if err != nil {
		t.Fatalf("expected logging failure not to affect the call, got: %v", err)
	}

	if board.Name != "Sprint" {
		t.Errorf("expected decoded body despite logger panics, got %+v", board)
	}
}

func TestSlogLogger_DefaultsToSlogDefault(t *testing.T) {
	t.Parallel()

	logger := NewSlogLogger(nil)
	if logger.Logger == nil {
		t.Error("expected NewSlogLogger(nil) to fall back to slog.Default()")
	}
}
