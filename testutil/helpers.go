package testutil

import (
	"testing"

	"github.com/skillsenselab/injectkit/inject"
)

// RestoreFunc undoes a registry swap, typically called with defer.
type RestoreFunc func()

// Isolate installs a fresh default registry for the duration of the test
// and restores the previous one on cleanup. It returns the fresh registry,
// which is also what nil-registry call sites resolve against until cleanup.
func Isolate(t *testing.T) *inject.Registry {
	t.Helper()

	reg := inject.New()
	restore := Swap(reg)
	t.Cleanup(restore)
	return reg
}

// Scoped returns a fresh registry that is reset on test cleanup. The
// default registry is untouched; pass the returned registry explicitly.
func Scoped(t *testing.T) *inject.Registry {
	t.Helper()

	reg := inject.New()
	t.Cleanup(reg.Reset)
	return reg
}

// Swap replaces the default registry and returns a function restoring the
// previous one. Prefer Isolate inside tests; Swap exists for TestMain and
// benchmark setups that have no *testing.T.
func Swap(reg *inject.Registry) RestoreFunc {
	prev := inject.SetDefault(reg)
	return func() {
		inject.SetDefault(prev)
	}
}
