package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// FailureEventName is the span event added for a failed assertion.
const FailureEventName = "propbag.assertion_failed"

// RecordFailureEvent adds a failure event to the recording span in ctx.
// It does nothing when ctx is nil or carries no recording span.
func RecordFailureEvent(ctx context.Context, assertion, key, failureID string) {
	if ctx == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.AddEvent(FailureEventName, trace.WithAttributes(
		attribute.String("propbag.assertion", assertion),
		attribute.String("propbag.key", key),
		attribute.String("propbag.failure_id", failureID),
	))
}
