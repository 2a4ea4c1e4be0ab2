package inject

import (
	"reflect"

	"github.com/skillsenselab/injectkit/logger"
)

// orDefault maps a nil registry to the process-wide default, so package
// call sites can pass nil without any setup.
func orDefault(r *Registry) *Registry {
	if r == nil {
		return Default()
	}
	return r
}

// Resolve returns the registered value for key, falling back to the key's
// default. It never fails: the defensive wrong-type case is logged and
// resolved to the default. A nil registry resolves against Default().
func Resolve[T any](r *Registry, key Key[T]) T {
	v, err := ResolveStrict(r, key)
	if err != nil {
		orDefault(r).log.Error("stored value unrecoverable, using default", logger.Fields(
			logger.FieldKey, idOf(key).String(),
			logger.FieldError, err.Error(),
		))
		return key.Default()
	}
	return v
}

// ResolveStrict is Resolve with the defensive check surfaced: it returns
// UnknownKeyError if the key is malformed or its stored value is not a T.
// Neither case occurs for well-formed keys.
func ResolveStrict[T any](r *Registry, key Key[T]) (T, error) {
	r = orDefault(r)
	id := idOf(key)
	if id.IsZero() {
		var zero T
		return zero, &UnknownKeyError{Key: id, Want: reflect.TypeOf(zero)}
	}

	if v, ok := r.lookup(id); ok {
		tv, ok := v.(T)
		if !ok {
			var zero T
			return zero, &UnknownKeyError{
				Key:  id,
				Want: reflect.TypeOf(zero),
				Got:  reflect.TypeOf(v),
			}
		}
		r.metrics.recordResolve(sourceOverride)
		return tv, nil
	}

	r.metrics.recordResolve(sourceDefault)
	return key.Default(), nil
}

// Override returns the registered value for key and whether one exists,
// without falling back to the default.
func Override[T any](r *Registry, key Key[T]) (T, bool) {
	if v, ok := orDefault(r).lookup(idOf(key)); ok {
		if tv, ok := v.(T); ok {
			return tv, true
		}
	}
	var zero T
	return zero, false
}

// Register sets the value for key, silently replacing any existing value
// (the permissive policy). A nil registry registers into Default().
func Register[T any](r *Registry, key Key[T], value T) {
	orDefault(r).store(idOf(key), value)
}

// RegisterOnce sets the value for key, failing with
// DuplicateRegistrationError if the key already holds a value since the
// last Reset. The strict policy applies identically to both key forms.
func RegisterOnce[T any](r *Registry, key Key[T], value T) error {
	return orDefault(r).storeOnce(idOf(key), value)
}

// MustRegisterOnce is RegisterOnce but panics on a duplicate. Use it at
// init-time call sites where a duplicate registration is unrecoverable.
func MustRegisterOnce[T any](r *Registry, key Key[T], value T) {
	if err := RegisterOnce(r, key, value); err != nil {
		panic(err)
	}
}

// Reset clears every registered value in the default registry. Equivalent
// to Default().Reset().
func Reset() {
	Default().Reset()
}
