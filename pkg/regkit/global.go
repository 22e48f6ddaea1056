package regkit

import "sync"

// Default registry instance and initialization guard.
var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the shared process-wide registry, creating it on first
// call. Hosts that want options on the shared instance should build their
// own Registry in their composition root instead.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}

// ResetDefault discards the shared registry so the next Default() call
// creates a fresh one. NOT safe for concurrent use; tests only.
func ResetDefault() {
	defaultOnce = sync.Once{}
	defaultRegistry = nil
}

// Set registers a producer on the default registry.
func Set(key string, p Producer) error {
	return Default().Set(key, p)
}

// Value registers a constant on the default registry.
func Value(key string, v any) error {
	return Default().Value(key, v)
}

// Factory registers a per-Get factory on the default registry.
func Factory(key string, fn func() any) error {
	return Default().Factory(key, fn)
}

// Singleton registers an existing instance on the default registry.
func Singleton(key string, instance any) error {
	return Default().Singleton(key, instance)
}

// Lazy registers a memoized factory on the default registry.
func Lazy(key string, fn func() any) error {
	return Default().Lazy(key, fn)
}

// Get retrieves a value from the default registry.
func Get(key string) (any, error) {
	return Default().Get(key)
}

// Has reports whether key is registered on the default registry.
func Has(key string) bool {
	return Default().Has(key)
}

// Freeze disables registration on the default registry.
func Freeze() {
	Default().Freeze()
}

// Frozen reports whether the default registry has been frozen.
func Frozen() bool {
	return Default().Frozen()
}

// MustValue registers a constant on the default registry, panicking on error.
func MustValue(key string, v any) {
	if err := Value(key, v); err != nil {
		panic("regkit: " + err.Error())
	}
}

// MustSingleton registers an instance on the default registry, panicking on error.
func MustSingleton(key string, instance any) {
	if err := Singleton(key, instance); err != nil {
		panic("regkit: " + err.Error())
	}
}

// MustLazy registers a memoized factory on the default registry, panicking on error.
func MustLazy(key string, fn func() any) {
	if err := Lazy(key, fn); err != nil {
		panic("regkit: " + err.Error())
	}
}
