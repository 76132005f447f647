package client

import (
	"fmt"
	"log/slog"
)

// RequestLogger is the interface used by [Client] for logging HTTP requests
// and errors. Implement this interface to integrate with your logging library
// and supply the implementation via [WithRequestLogger].
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger is a [RequestLogger] that silently discards all log messages.
// It is the default logger used when verbosity is off.
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}

// SlogLogger adapts a [slog.Logger] to the [RequestLogger] interface. It
// is used automatically when [WithVerbose] is enabled and no logger was
// supplied.
type SlogLogger struct {
	Logger *slog.Logger
}

func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLogger{Logger: logger}
}

func (l *SlogLogger) Errorf(format string, v ...any) {
	l.Logger.Error(fmt.Sprintf(format, v...))
}

func (l *SlogLogger) Warnf(format string, v ...any) {
	l.Logger.Warn(fmt.Sprintf(format, v...))
}

func (l *SlogLogger) Debugf(format string, v ...any) {
	l.Logger.Debug(fmt.Sprintf(format, v...))
}
