package regkit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/randalmurphal/regkit/pkg/regkit/observability"
)

// Registry maps string keys to producers and hands out their results on
// demand. Values are never stored directly: every registration kind is a
// thin wrapper that builds a Producer and delegates to Set, so Get never
// branches on how an entry was registered.
//
// A Registry starts open. Freeze() permanently disables writes; reads are
// unaffected. All methods are safe for concurrent use.
//
// Example:
//
//	reg := regkit.New()
//	reg.Value("app.name", "checkout")
//	reg.Lazy("db", func() any { return openDB() })
//	reg.Freeze()
//
//	db, err := regkit.Resolve[*sql.DB](reg, "db")
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
	frozen  bool

	id      string
	logger  *slog.Logger
	metrics observability.MetricsRecorder
}

// entry pairs a producer with the kind it was registered as.
// The kind is introspection-only; retrieval goes through the producer.
type entry struct {
	producer Producer
	kind     Kind
}

// New creates an empty, unfrozen registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[string]entry),
		metrics: observability.NoopMetrics{},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.id == "" {
		r.id = newRegistryID()
	}
	return r
}

// ID returns the registry's identifier, used in log fields.
func (r *Registry) ID() string {
	return r.id
}

// Set is the single write primitive. All registration kinds go through it.
//
// Fails with ErrFrozen if the registry has been frozen (checked before the
// duplicate check), ErrKeyExists if the key is already present, ErrEmptyKey
// or ErrNilProducer on invalid input. Errors are wrapped in *KeyError for
// key context; match with errors.Is.
func (r *Registry) Set(key string, p Producer) error {
	return r.set(key, p, KindCustom)
}

// Value registers a constant. Get returns v on every call.
func (r *Registry) Value(key string, v any) error {
	return r.set(key, constant{v: v}, KindValue)
}

// Factory registers a function invoked freshly on every Get.
func (r *Registry) Factory(key string, fn func() any) error {
	if fn == nil {
		return &KeyError{Key: key, Op: "set", Err: ErrNilProducer}
	}
	return r.set(key, factory{fn: fn}, KindFactory)
}

// Singleton registers a caller-constructed instance. Get returns the same
// reference on every call; the registry never copies or inspects it.
func (r *Registry) Singleton(key string, instance any) error {
	return r.set(key, singletonRef{instance: instance}, KindSingleton)
}

// Lazy registers a function invoked at most once across the registry's
// lifetime. The first Get runs fn and memoizes its result; every later Get
// returns the stored result without re-invoking fn, even if fn returned nil.
func (r *Registry) Lazy(key string, fn func() any) error {
	if fn == nil {
		return &KeyError{Key: key, Op: "set", Err: ErrNilProducer}
	}
	wrapped := func() any {
		done := observability.TimedOperation()
		v := fn()
		ms := done()
		observability.LogLazyInit(r.logger, r.id, key, ms)
		r.metrics.RecordLazyInit(context.Background(), key, time.Duration(ms)*time.Millisecond)
		return v
	}
	return r.set(key, &memoizedLazy{fn: wrapped}, KindLazy)
}

func (r *Registry) set(key string, p Producer, kind Kind) error {
	if key == "" {
		return &KeyError{Key: key, Op: "set", Err: ErrEmptyKey}
	}
	if p == nil {
		return &KeyError{Key: key, Op: "set", Err: ErrNilProducer}
	}

	r.mu.Lock()
	// Frozen wins over duplicate when both hold.
	if r.frozen {
		r.mu.Unlock()
		r.metrics.RecordRegistration(context.Background(), kind.String(), false)
		return &KeyError{Key: key, Op: "set", Err: ErrFrozen}
	}
	if _, exists := r.entries[key]; exists {
		r.mu.Unlock()
		r.metrics.RecordRegistration(context.Background(), kind.String(), false)
		return &KeyError{Key: key, Op: "set", Err: ErrKeyExists}
	}
	r.entries[key] = entry{producer: p, kind: kind}
	r.mu.Unlock()

	observability.LogRegister(r.logger, r.id, key, kind.String())
	r.metrics.RecordRegistration(context.Background(), kind.String(), true)
	return nil
}

// Get invokes the producer stored under key and returns its result verbatim.
// Fails with ErrKeyNotFound (wrapped in *KeyError) if the key is absent.
// Get itself caches nothing; memoization, if any, lives in the producer.
func (r *Registry) Get(key string) (any, error) {
	done := observability.TimedOperation()

	r.mu.RLock()
	e, ok := r.entries[key]
	r.mu.RUnlock()

	if !ok {
		r.metrics.RecordLookup(context.Background(), false, time.Duration(done())*time.Millisecond)
		return nil, &KeyError{Key: key, Op: "get", Err: ErrKeyNotFound}
	}

	// Producers may perform I/O; invoke outside the lock.
	v := e.producer.Produce()
	r.metrics.RecordLookup(context.Background(), true, time.Duration(done())*time.Millisecond)
	return v, nil
}

// Has reports whether key is registered. Unaffected by frozen state.
func (r *Registry) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[key]
	return ok
}

// Freeze permanently disables registration. Idempotent; reads keep working.
func (r *Registry) Freeze() {
	r.mu.Lock()
	already := r.frozen
	r.frozen = true
	n := len(r.entries)
	r.mu.Unlock()

	if already {
		return
	}
	observability.LogFreeze(r.logger, r.id, n)
	r.metrics.RecordFreeze(context.Background())
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Len returns the number of registered keys.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Keys returns all registered keys in no particular order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	return keys
}

// Kind returns how key was registered, and whether key exists.
func (r *Registry) Kind(key string) (Kind, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[key]
	return e.kind, ok
}

// Range iterates over registered keys and their kinds. Iteration stops when
// fn returns false. The snapshot is taken under the read lock; fn runs
// without it, so fn may call back into the registry.
func (r *Registry) Range(fn func(key string, kind Kind) bool) {
	r.mu.RLock()
	snapshot := make(map[string]Kind, len(r.entries))
	for k, e := range r.entries {
		snapshot[k] = e.kind
	}
	r.mu.RUnlock()

	for k, kind := range snapshot {
		if !fn(k, kind) {
			return
		}
	}
}
