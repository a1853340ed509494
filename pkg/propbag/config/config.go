package config

import (
	"errors"
	"fmt"
)

// DefaultContextDepth is the nesting depth allowed when dumping
// assertion context into failure messages.
const DefaultContextDepth = 2

// ErrInvalidContextDepth indicates a context depth that is not positive.
var ErrInvalidContextDepth = errors.New("context depth must be positive")

// Settings holds the bootstrap configuration for a propbag Accessor.
// It is read once at startup and not changed afterwards.
type Settings struct {
	// Debug enables the diagnostic block written on every assertion failure.
	Debug bool `yaml:"debug" json:"debug" toml:"debug"`

	// ContextDepth bounds the structural dump of assertion context.
	ContextDepth int `yaml:"context_depth" json:"context_depth" toml:"context_depth"`
}

// Default returns Settings with debug off and the default context depth.
func Default() Settings {
	return Settings{
		Debug:        false,
		ContextDepth: DefaultContextDepth,
	}
}

// Validate checks that the settings are usable.
func (s Settings) Validate() error {
	if s.ContextDepth <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidContextDepth, s.ContextDepth)
	}
	return nil
}
