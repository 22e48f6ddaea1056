package regkit

import (
	"errors"
	"fmt"
)

// Sentinel errors for registration.
var (
	// ErrFrozen indicates a write was attempted after Freeze().
	ErrFrozen = errors.New("registry is frozen")

	// ErrKeyExists indicates the key is already registered.
	ErrKeyExists = errors.New("key already registered")

	// ErrEmptyKey indicates an empty key was passed to a registration call.
	ErrEmptyKey = errors.New("key cannot be empty")

	// ErrNilProducer indicates Set() was called with a nil producer.
	ErrNilProducer = errors.New("producer cannot be nil")
)

// Sentinel errors for retrieval.
var (
	// ErrKeyNotFound indicates Get() was called for an unregistered key.
	ErrKeyNotFound = errors.New("key not registered")

	// ErrTypeMismatch indicates Resolve[T]() found a value of a different type.
	ErrTypeMismatch = errors.New("registered value has wrong type")
)

// KeyError wraps a registry error with the key and operation involved.
// It provides context about which key failed and what was attempted.
type KeyError struct {
	// Key is the registry key involved in the failure.
	Key string
	// Op is the operation that failed ("set", "get").
	Op string
	// Err is the underlying sentinel error.
	Err error
}

// Error implements the error interface.
func (e *KeyError) Error() string {
	return fmt.Sprintf("registry %s %q: %v", e.Op, e.Key, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *KeyError) Unwrap() error {
	return e.Err
}

// TypeError reports a typed retrieval that found a value of the wrong type.
// It wraps ErrTypeMismatch for errors.Is support.
type TypeError struct {
	// Key is the registry key that was resolved.
	Key string
	// Want is the requested type.
	Want string
	// Got is the type the producer actually yielded.
	Got string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("registry resolve %q: want %s, got %s", e.Key, e.Want, e.Got)
}

// Unwrap returns ErrTypeMismatch for errors.Is support.
func (e *TypeError) Unwrap() error {
	return ErrTypeMismatch
}
