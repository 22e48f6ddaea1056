/*
Package regkit provides a minimal service registry: a key-value store where
values are produced by deferred functions rather than stored directly.

# Overview

regkit is a Go library for explicit, reflection-free dependency wiring.
A Registry maps string keys to zero-argument producers and supports four
registration kinds:

  - Value: a constant captured at registration time
  - Factory: a function invoked freshly on every Get
  - Singleton: a caller-constructed instance returned by reference
  - Lazy: a function invoked at most once, its result memoized

All four are thin wrappers over one write primitive (Set), so retrieval
never branches on kind: Get looks up the producer and invokes it. Once the
composition root has registered everything, Freeze() permanently locks the
registry against further writes.

# Basic Usage

	reg := regkit.New()

	reg.Value("app.name", "checkout")
	reg.Singleton("config", cfg)
	reg.Factory("request.id", func() any { return uuid.NewString() })
	reg.Lazy("db", func() any {
	    db, err := sql.Open("sqlite", "./app.db")
	    if err != nil {
	        log.Fatal(err)
	    }
	    return db
	})

	reg.Freeze()

	name, err := reg.Get("app.name")        // "checkout", untyped
	db, err := regkit.Resolve[*sql.DB](reg, "db") // typed

# Error Handling

Registration fails with ErrFrozen after Freeze() (checked before the
duplicate check) or ErrKeyExists for a key already present. Retrieval fails
with ErrKeyNotFound for an absent key, and Resolve additionally with
ErrTypeMismatch. All errors carry key context via *KeyError or *TypeError:

	if err := reg.Value("db", v); errors.Is(err, regkit.ErrKeyExists) {
	    // already wired
	}

These are programming errors to fix, not conditions to retry; the registry
never logs, suppresses, or falls back. Use Has() to probe before acting
when uncertain.

# Laziness

A Lazy entry's factory runs at most once for the registry's lifetime, even
when it returns nil and even under concurrent first-time Get calls. The
memoization cell belongs to the entry, not the registry, so the guarantee
holds per key.

# Observability

Logging and metrics are opt-in:

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	m, _ := observability.NewMetricsRecorder()
	reg := regkit.New(
	    regkit.WithLogger(logger),
	    regkit.WithMetrics(m),
	)

Logs cover registrations, freeze, and first-time lazy initialization with
structured fields (registry_id, key, kind, duration_ms). OpenTelemetry
metrics: regkit.registrations, regkit.lookups, regkit.lookup.latency_ms,
regkit.lazy.inits, regkit.freezes.

# Thread Safety

  - Registry IS safe for concurrent use; writes and freeze are mutually
    excluded from reads
  - Lazy factories run exactly once under concurrent first access
  - Producers run outside the registry lock, so they may call back into
    the registry (registering during Get is subject to the usual rules)

# Scope

No dependency graph resolution, no autowiring or reflection, no scoping
beyond process-lifetime singletons, no circular-dependency detection. The
host application owns producer construction, singleton lifecycles, config
loading, and the decision when to freeze.

# Subpackages

  - observability: logging, metrics, and tracing helpers
*/
package regkit
