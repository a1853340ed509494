package observability

import "context"

// NoopMetrics is a MetricsRecorder that does nothing.
// Use when metrics are disabled to avoid overhead.
type NoopMetrics struct{}

// Compile-time interface check.
var _ MetricsRecorder = NoopMetrics{}

// RecordAssertion does nothing.
func (NoopMetrics) RecordAssertion(_ context.Context, _ string, _ bool) {}
