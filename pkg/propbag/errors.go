package propbag

import (
	"errors"
	"fmt"
)

// Sentinel errors for property assertions.
var (
	// ErrProperty is the category shared by every assertion failure.
	ErrProperty = errors.New("property error")

	// ErrMissingProperty indicates a required key was absent, or present but
	// empty where a non-empty value was required.
	ErrMissingProperty = fmt.Errorf("%w: missing property", ErrProperty)

	// ErrIllegalProperty indicates a key that must be absent was present.
	ErrIllegalProperty = fmt.Errorf("%w: illegal property", ErrProperty)
)

// MissingPropertyError is returned when a required key is absent or empty.
type MissingPropertyError struct {
	// Key is the offending key.
	Key string
	// Message is the full diagnostic message, including any context dump.
	Message string
	// FailureID correlates the error with debug output, logs and span events.
	FailureID string
}

// Error implements the error interface.
func (e *MissingPropertyError) Error() string {
	return e.Message
}

// Unwrap returns ErrMissingProperty for errors.Is support.
func (e *MissingPropertyError) Unwrap() error {
	return ErrMissingProperty
}

// IllegalPropertyError is returned when a forbidden key is present.
type IllegalPropertyError struct {
	// Key is the offending key.
	Key string
	// Message is the full diagnostic message, including any context dump.
	Message string
	// FailureID correlates the error with debug output, logs and span events.
	FailureID string
}

// Error implements the error interface.
func (e *IllegalPropertyError) Error() string {
	return e.Message
}

// Unwrap returns ErrIllegalProperty for errors.Is support.
func (e *IllegalPropertyError) Unwrap() error {
	return ErrIllegalProperty
}

// IsMissing reports whether err is a MissingPropertyError.
func IsMissing(err error) bool {
	var missing *MissingPropertyError
	return errors.As(err, &missing)
}

// IsIllegal reports whether err is an IllegalPropertyError.
func IsIllegal(err error) bool {
	var illegal *IllegalPropertyError
	return errors.As(err, &illegal)
}
