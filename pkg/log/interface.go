// Package log provides the structured logging interface used by linreg.
//
// The interface is a minimal, slog-flavored contract with key-value field
// pairs, backed by zerolog. Library packages only log at debug level; the
// default logger is disabled, so embedding linreg adds no log output unless
// the caller opts in with SetLogger.
package log

import "sync"

// Logger is the structured logging contract. Fields are alternating
// key-value pairs, as in log/slog.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...interface{})

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...interface{})

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...interface{})

	// Error logs an error-level message with optional structured fields.
	Error(msg string, fields ...interface{})

	// With returns a child logger with the given fields pre-populated.
	With(fields ...interface{}) Logger
}

var (
	mu            sync.RWMutex
	defaultLogger Logger = NewDisabledLogger()
)

// GetLogger returns the process-wide logger.
func GetLogger() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// SetLogger replaces the process-wide logger.
func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = l
}
