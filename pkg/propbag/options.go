package propbag

import (
	"io"
	"log/slog"

	"github.com/randalmurphal/propbag/pkg/propbag/config"
	"github.com/randalmurphal/propbag/pkg/propbag/observability"
)

// Option configures an Accessor.
type Option func(*Accessor)

// WithDebug enables or disables the diagnostic block written on every
// assertion failure.
//
// Default: false
func WithDebug(enabled bool) Option {
	return func(a *Accessor) {
		a.debug = enabled
	}
}

// WithContextDepth sets how deep assertion context is dumped into failure
// messages. Values <= 0 are ignored.
//
// Default: 2
//
// Example:
//
//	acc := propbag.New(propbag.WithContextDepth(4))
func WithContextDepth(n int) Option {
	return func(a *Accessor) {
		if n > 0 {
			a.depth = n
		}
	}
}

// WithSettings applies bootstrap settings loaded by the config package.
func WithSettings(s config.Settings) Option {
	return func(a *Accessor) {
		a.debug = s.Debug
		if s.ContextDepth > 0 {
			a.depth = s.ContextDepth
		}
	}
}

// WithOutput sets where debug diagnostic blocks are written.
// A nil writer is ignored.
//
// Default: os.Stderr
func WithOutput(w io.Writer) Option {
	return func(a *Accessor) {
		if w != nil {
			a.out = w
		}
	}
}

// WithLogger sets the logger that receives a warning for every assertion
// failure. Failures are not logged by default.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Accessor) {
		a.logger = logger
	}
}

// WithMetrics sets the recorder used to count assertion checks and failures.
// A nil recorder is ignored.
//
// Default: observability.NoopMetrics{}
//
// Example:
//
//	acc := propbag.New(propbag.WithMetrics(observability.NewMetricsRecorder()))
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(a *Accessor) {
		if m != nil {
			a.metrics = m
		}
	}
}
