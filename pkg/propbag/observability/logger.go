// Package observability provides logging, metrics, and tracing hooks for
// propbag assertion failures.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Span events via OpenTelemetry
//
// All features are opt-in and do nothing when not configured.
package observability

import (
	"log/slog"
)

// EnrichLogger scopes a logger to a named accessor.
//
// Example:
//
//	logger := EnrichLogger(slog.Default(), "request-params")
//	logger.Info("validating") // includes accessor=request-params
func EnrichLogger(logger *slog.Logger, accessor string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("accessor", accessor))
}

// LogAssertionFailure logs a failed property assertion.
func LogAssertionFailure(logger *slog.Logger, assertion, key, failureID string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("property assertion failed",
		slog.String("assertion", assertion),
		slog.String("key", key),
		slog.String("failure_id", failureID),
		slog.String("error", err.Error()),
	)
}

// LogDiagnosticError logs a failure to write the debug diagnostic block.
// The assertion error itself is still returned to the caller.
func LogDiagnosticError(logger *slog.Logger, failureID string, err error) {
	if logger == nil {
		return
	}
	logger.Debug("diagnostic write failed",
		slog.String("failure_id", failureID),
		slog.String("error", err.Error()),
	)
}
