package regkit

import "fmt"

// Resolve retrieves key from r and asserts the result to T.
//
// Fails with ErrKeyNotFound if the key is absent, or with *TypeError
// (wrapping ErrTypeMismatch) if the produced value is not a T. A produced
// nil satisfies any interface or pointer T with T's zero value.
//
// Resolve is a free function because Go methods cannot take type parameters.
//
// Example:
//
//	db, err := regkit.Resolve[*sql.DB](reg, "db")
func Resolve[T any](r *Registry, key string) (T, error) {
	var zero T

	v, err := r.Get(key)
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}

	typed, ok := v.(T)
	if !ok {
		return zero, &TypeError{
			Key:  key,
			Want: fmt.Sprintf("%T", zero),
			Got:  fmt.Sprintf("%T", v),
		}
	}
	return typed, nil
}

// MustResolve is Resolve but panics on error. Intended for composition
// roots where a missing or mistyped entry is unrecoverable.
func MustResolve[T any](r *Registry, key string) T {
	v, err := Resolve[T](r, key)
	if err != nil {
		panic(fmt.Sprintf("regkit: resolve %q: %v", key, err))
	}
	return v
}
