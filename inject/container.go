package inject

import "sync"

// The process-wide default registry. Constructed lazily on first access,
// cleared only by Reset, torn down at process exit.
var (
	defaultMu  sync.RWMutex
	defaultReg *Registry
)

// Default returns the process-wide registry, creating it on first call.
// Every operation that receives a nil *Registry forwards here.
func Default() *Registry {
	defaultMu.RLock()
	r := defaultReg
	defaultMu.RUnlock()
	if r != nil {
		return r
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultReg == nil {
		defaultReg = New()
	}
	return defaultReg
}

// SetDefault replaces the process-wide registry and returns the previous
// one (nil if it was never created). Intended for tests and for embedders
// that construct their registry explicitly; see testutil.Isolate.
func SetDefault(r *Registry) *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultReg
	defaultReg = r
	return prev
}
