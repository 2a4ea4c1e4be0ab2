package inject

import "reflect"

// Key describes one dependency slot: a value type T and the default used
// when nothing has been registered for the slot. Implementations fall into
// two forms with equal standing:
//
//   - keyed type: a distinct named type implementing Default; its identity
//     is the type itself.
//   - path key: a Path value built with NewPath, NewPathFunc, or BindPath;
//     its identity is the declared name (or, for BindPath, the identity of
//     the underlying keyed type).
//
// Default must be cheap and side-effect free. It runs outside the registry
// lock, so it may resolve other keys through the same registry.
type Key[T any] interface {
	Default() T
}

// KeyID is the comparable identity token for a dependency slot. Exactly one
// of the type or path components is set for a well-formed key. Identity is
// stable for the life of the process: it is derived from a declared type or
// a declared name, never generated.
type KeyID struct {
	typ  reflect.Type
	path string
}

// IsZero reports whether the id identifies nothing. A zero KeyID only
// arises from a zero-valued Path, which is malformed.
func (id KeyID) IsZero() bool { return id.typ == nil && id.path == "" }

// String returns a human-readable representation of the identity.
func (id KeyID) String() string {
	switch {
	case id.typ != nil:
		return id.typ.String()
	case id.path != "":
		return id.path
	default:
		return "<zero key>"
	}
}

// idOf derives the registry identity for a key. Path keys carry their own
// identity; every other key is identified by its dynamic type.
func idOf[T any](key Key[T]) KeyID {
	if p, ok := any(key).(pathIdentified); ok {
		return p.keyID()
	}
	return KeyID{typ: reflect.TypeOf(key)}
}

// pathIdentified is implemented by Path so path keys can substitute their
// declared identity for type identity.
type pathIdentified interface {
	keyID() KeyID
}

// Path is the name-declared key form. The zero value is malformed; build
// paths with NewPath, NewPathFunc, or BindPath.
type Path[T any] struct {
	name string
	id   KeyID
	def  func() T
}

// NewPath declares a path key with a fixed fallback value. Two NewPath
// calls with the same name address the same registry entry, so names must
// be unique across all declared dependencies (dotted names like
// "service.timeout" keep them so).
func NewPath[T any](name string, fallback T) Path[T] {
	return NewPathFunc(name, func() T { return fallback })
}

// NewPathFunc declares a path key whose default is computed on every
// resolve. The function runs outside the registry lock.
func NewPathFunc[T any](name string, def func() T) Path[T] {
	return Path[T]{
		name: name,
		id:   KeyID{path: name},
		def:  def,
	}
}

// BindPath declares a named accessor over an existing keyed type. The
// returned path shares the underlying key's identity and default, so
// registering through either form is visible through the other.
func BindPath[T any](name string, key Key[T]) Path[T] {
	return Path[T]{
		name: name,
		id:   idOf(key),
		def:  key.Default,
	}
}

// Name returns the declared name of the path.
func (p Path[T]) Name() string { return p.name }

// Default returns the path's fallback value.
func (p Path[T]) Default() T {
	if p.def == nil {
		var zero T
		return zero
	}
	return p.def()
}

func (p Path[T]) keyID() KeyID { return p.id }
