package regkit

import "sync"

// Producer is the unit of deferred computation stored per key.
// Retrieval depends on nothing else: Get() invokes Produce() and returns
// its result, so all per-kind behavior lives in the Producer itself.
type Producer interface {
	// Produce returns the value for this entry.
	// Called exactly once per Get() on the owning key.
	Produce() any
}

// ProducerFunc adapts a plain function to the Producer interface.
type ProducerFunc func() any

// Produce implements Producer.
func (f ProducerFunc) Produce() any {
	return f()
}

// Kind identifies how an entry produces its value.
type Kind int

const (
	// KindValue returns a constant captured at registration time.
	KindValue Kind = iota
	// KindFactory invokes the user factory on every Get.
	KindFactory
	// KindSingleton returns a caller-constructed instance by reference.
	KindSingleton
	// KindLazy invokes the user factory at most once and memoizes the result.
	KindLazy
	// KindCustom is a caller-supplied Producer registered directly via Set.
	KindCustom
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindFactory:
		return "factory"
	case KindSingleton:
		return "singleton"
	case KindLazy:
		return "lazy"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// constant returns a fixed value captured at registration time.
type constant struct {
	v any
}

func (c constant) Produce() any {
	return c.v
}

// factory invokes the user function on every Produce call.
type factory struct {
	fn func() any
}

func (f factory) Produce() any {
	return f.fn()
}

// singletonRef holds a shared reference to a caller-constructed instance.
// The registry does not manage the instance's lifecycle beyond holding
// the reference for as long as the entry exists.
type singletonRef struct {
	instance any
}

func (s singletonRef) Produce() any {
	return s.instance
}

// memoizedLazy invokes the user factory at most once across the registry's
// lifetime and returns the stored result thereafter. sync.Once rather than
// a nil-check, so a factory that legitimately returns nil is still never
// re-invoked, and concurrent first calls observe exactly one invocation.
type memoizedLazy struct {
	once   sync.Once
	fn     func() any
	result any
}

func (m *memoizedLazy) Produce() any {
	m.once.Do(func() {
		m.result = m.fn()
		m.fn = nil
	})
	return m.result
}
