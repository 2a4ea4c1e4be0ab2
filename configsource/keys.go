package configsource

import (
	"time"

	"github.com/skillsenselab/injectkit/inject"
)

// The constructors below build path keys whose identity is the config path
// and whose default reads the Source at resolve time. The path namespace is
// shared with inject.NewPath, so config paths must not collide with other
// declared path names.

// String builds a string key at path with the given fallback.
func (s *Source) String(path, fallback string) inject.Path[string] {
	return inject.NewPathFunc(path, func() string {
		if !s.v.IsSet(path) {
			return fallback
		}
		return s.v.GetString(path)
	})
}

// Int builds an int key at path with the given fallback.
func (s *Source) Int(path string, fallback int) inject.Path[int] {
	return inject.NewPathFunc(path, func() int {
		if !s.v.IsSet(path) {
			return fallback
		}
		return s.v.GetInt(path)
	})
}

// Bool builds a bool key at path with the given fallback.
func (s *Source) Bool(path string, fallback bool) inject.Path[bool] {
	return inject.NewPathFunc(path, func() bool {
		if !s.v.IsSet(path) {
			return fallback
		}
		return s.v.GetBool(path)
	})
}

// Duration builds a time.Duration key at path with the given fallback.
func (s *Source) Duration(path string, fallback time.Duration) inject.Path[time.Duration] {
	return inject.NewPathFunc(path, func() time.Duration {
		if !s.v.IsSet(path) {
			return fallback
		}
		return s.v.GetDuration(path)
	})
}

// StringSlice builds a []string key at path with the given fallback.
func (s *Source) StringSlice(path string, fallback []string) inject.Path[[]string] {
	return inject.NewPathFunc(path, func() []string {
		if !s.v.IsSet(path) {
			return fallback
		}
		return s.v.GetStringSlice(path)
	})
}
