package propbag

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/randalmurphal/propbag/pkg/propbag/config"
	"github.com/randalmurphal/propbag/pkg/propbag/observability"
)

// Assertion names used in logs, metrics and span events.
const (
	AssertionHas      = "has"
	AssertionNotHas   = "not_has"
	AssertionNotEmpty = "not_empty"
)

// Accessor evaluates required-key assertions against property bags.
//
// An Accessor carries the bootstrap settings (debug mode and context dump
// depth) plus optional logging, metrics and tracing hooks. It is immutable
// after construction and safe for concurrent use.
type Accessor struct {
	debug   bool
	depth   int
	out     io.Writer
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	ctx     context.Context
}

// New creates an Accessor. Without options, debug is off, context is dumped
// two levels deep, and failures are neither logged nor counted.
func New(opts ...Option) *Accessor {
	a := &Accessor{
		depth:   config.DefaultContextDepth,
		out:     os.Stderr,
		metrics: observability.NoopMetrics{},
		ctx:     context.Background(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Configure is the bootstrap entry point: it returns an Accessor with the
// given debug mode and context dump depth. A depth <= 0 keeps the default.
// Call it once during startup and pass the result to the code that needs it.
func Configure(debug bool, contextDumpDepth int) *Accessor {
	return New(WithDebug(debug), WithContextDepth(contextDumpDepth))
}

// WithContext returns a copy of a bound to ctx. Failures reported by the copy
// are added as events to the recording span in ctx, and metrics are recorded
// against it. A nil ctx returns a unchanged.
func (a *Accessor) WithContext(ctx context.Context) *Accessor {
	if ctx == nil {
		return a
	}
	bound := *a
	bound.ctx = ctx
	return &bound
}

// Debug reports whether debug diagnostics are enabled.
func (a *Accessor) Debug() bool {
	return a.debug
}

// ContextDepth returns the depth limit for context dumps.
func (a *Accessor) ContextDepth() int {
	return a.depth
}

// AssertHas returns a *MissingPropertyError if key is absent from b.
// A present key passes whatever its value.
func (a *Accessor) AssertHas(b Bag, key string, detail any) error {
	if Has(b, key) {
		a.metrics.RecordAssertion(a.ctx, AssertionHas, false)
		return nil
	}
	return a.missing(b, key, AssertionHas, fmt.Sprintf("property (%s) is missing and is required", key), detail)
}

// AssertNotHas returns an *IllegalPropertyError if key is present in b.
func (a *Accessor) AssertNotHas(b Bag, key string, detail any) error {
	if !Has(b, key) {
		a.metrics.RecordAssertion(a.ctx, AssertionNotHas, false)
		return nil
	}
	msg := a.buildMessage(fmt.Sprintf("illegal property (%s) was found", key), detail)
	err := &IllegalPropertyError{Key: key, Message: msg, FailureID: uuid.NewString()}
	a.report(b, key, AssertionNotHas, err.FailureID, err)
	return err
}

// AssertNotEmpty returns a *MissingPropertyError if key is absent from b or
// its value is empty per IsEmpty. Absent and empty share one error kind.
func (a *Accessor) AssertNotEmpty(b Bag, key string, detail any) error {
	if !Has(b, key) {
		return a.missing(b, key, AssertionNotEmpty, fmt.Sprintf("property (%s) is missing and is required", key), detail)
	}
	if IsEmpty(b, key) {
		return a.missing(b, key, AssertionNotEmpty, fmt.Sprintf("property (%s) is missing and is required and can not be empty", key), detail)
	}
	a.metrics.RecordAssertion(a.ctx, AssertionNotEmpty, false)
	return nil
}

// GetRequired returns the raw value at key, or a *MissingPropertyError if
// key is absent.
func (a *Accessor) GetRequired(b Bag, key string, detail any) (any, error) {
	if err := a.AssertHas(b, key, detail); err != nil {
		return nil, err
	}
	return b[key], nil
}

// GetAndRemoveRequired returns the raw value at key and deletes it from b in
// place. If key is absent, b is left untouched and a *MissingPropertyError is
// returned.
func (a *Accessor) GetAndRemoveRequired(b Bag, key string, detail any) (any, error) {
	v, err := a.GetRequired(b, key, detail)
	if err != nil {
		return nil, err
	}
	Remove(b, key)
	return v, nil
}

func (a *Accessor) missing(b Bag, key, assertion, rule string, detail any) error {
	msg := a.buildMessage(rule, detail)
	err := &MissingPropertyError{Key: key, Message: msg, FailureID: uuid.NewString()}
	a.report(b, key, assertion, err.FailureID, err)
	return err
}

// report emits every diagnostic for a failed assertion. It never fails and
// never suppresses err.
func (a *Accessor) report(b Bag, key, assertion, failureID string, err error) {
	if a.debug {
		if werr := a.writeDiagnostic(b, key, failureID, err.Error()); werr != nil {
			observability.LogDiagnosticError(a.logger, failureID, werr)
		}
	}
	observability.LogAssertionFailure(a.logger, assertion, key, failureID, err)
	a.metrics.RecordAssertion(a.ctx, assertion, true)
	observability.RecordFailureEvent(a.ctx, assertion, key, failureID)
}
