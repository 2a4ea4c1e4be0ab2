// Package inject provides a typed value-injection registry: a keyed store
// that maps dependency keys to values, falling back to a per-key default
// when no value has been registered.
//
// Keys come in two interchangeable forms. A keyed type is a distinct named
// type whose identity is the type itself:
//
//	type APIConfigKey struct{}
//
//	func (APIConfigKey) Default() string { return "default config" }
//
//	cfg := inject.Resolve[string](nil, APIConfigKey{})
//
// A path key is declared by name and shares the registry entry of any keyed
// type it is bound to:
//
//	apiConfig := inject.BindPath("api.config", APIConfigKey{})
//	inject.Register[string](nil, apiConfig, "prod")
//	inject.Resolve[string](nil, APIConfigKey{}) // "prod"
//
// # Registration policy
//
// Register replaces an existing value silently. RegisterOnce fails with
// DuplicateRegistrationError if the key already holds a value, leaving the
// existing value in place. Reset clears every registered value atomically.
//
// Passing a nil *Registry to any operation uses the process-wide default
// registry, so ergonomic call sites need no setup. Tests should use their
// own instance (see the testutil package).
package inject
