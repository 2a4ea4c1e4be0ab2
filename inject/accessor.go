package inject

// Accessor is a bound read/write handle for one key, usable as a field on
// any consumer. It carries no state of its own: every Read and Write goes
// through the registry, so overrides and resets are observed immediately by
// all accessors bound to the same key.
type Accessor[T any] struct {
	reg *Registry
	key Key[T]
}

// Bind creates an accessor for key on r. A nil registry binds to whatever
// Default() returns at each access, not at bind time.
func Bind[T any](r *Registry, key Key[T]) Accessor[T] {
	return Accessor[T]{reg: r, key: key}
}

// Read resolves the key's current value.
func (a Accessor[T]) Read() T {
	return Resolve(a.reg, a.key)
}

// Write registers value for the key under the permissive policy.
func (a Accessor[T]) Write(value T) {
	Register(a.reg, a.key, value)
}

// Key returns the key the accessor is bound to.
func (a Accessor[T]) Key() Key[T] { return a.key }
