package inject

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/skillsenselab/injectkit/logger"
)

// Registry is the central key-to-value store. A mutex serializes every
// access to the override map, so all operations are linearizable; racing
// permissive registrations resolve to last-writer-wins.
//
// Defaults are deliberately computed outside the lock: a key's default may
// resolve other keys through the same registry on the same goroutine
// without deadlocking.
type Registry struct {
	id string

	mu        sync.Mutex
	overrides map[KeyID]any

	log     *logger.Logger
	metrics *registryMetrics
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger replaces the registry's logger.
func WithLogger(l *logger.Logger) Option {
	return func(r *Registry) { r.log = l }
}

// WithMeter enables OpenTelemetry instruments on the registry. Instrument
// creation failures are logged and leave metrics disabled.
func WithMeter(meter metric.Meter) Option {
	return func(r *Registry) {
		m, err := newRegistryMetrics(meter, r)
		if err != nil {
			r.log.Error("failed to create registry instruments", logger.Fields(
				logger.FieldRegistryID, r.id,
				logger.FieldError, err.Error(),
			))
			return
		}
		r.metrics = m
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		id:        uuid.NewString()[:8],
		overrides: make(map[KeyID]any),
		log:       logger.Get("inject"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// lookup returns the registered value for id, if any.
func (r *Registry) lookup(id KeyID) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.overrides[id]
	return v, ok
}

// store inserts or silently replaces the value for id (permissive policy).
func (r *Registry) store(id KeyID, value any) {
	r.mu.Lock()
	r.overrides[id] = value
	r.mu.Unlock()

	r.metrics.recordRegister("set")
	r.log.Debug("value registered", logger.Fields(
		logger.FieldRegistryID, r.id,
		logger.FieldKey, id.String(),
	))
}

// storeOnce inserts the value for id, failing with
// DuplicateRegistrationError if the key already holds one. The existing
// value is not replaced on failure.
func (r *Registry) storeOnce(id KeyID, value any) error {
	r.mu.Lock()
	if _, exists := r.overrides[id]; exists {
		r.mu.Unlock()
		return &DuplicateRegistrationError{Key: id}
	}
	r.overrides[id] = value
	r.mu.Unlock()

	r.metrics.recordRegister("once")
	r.log.Debug("value registered", logger.Fields(
		logger.FieldRegistryID, r.id,
		logger.FieldKey, id.String(),
	))
	return nil
}

// Reset atomically discards every registered value. Subsequent resolves
// return defaults until new registrations occur. Resetting an empty
// registry is a no-op.
func (r *Registry) Reset() {
	r.mu.Lock()
	n := len(r.overrides)
	r.overrides = make(map[KeyID]any)
	r.mu.Unlock()

	r.metrics.recordReset()
	r.log.Debug("registry reset", logger.Fields(
		logger.FieldRegistryID, r.id,
		"cleared", n,
	))
}

// Len returns the number of currently registered values.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.overrides)
}

// Keys returns the identities of all currently registered values, sorted
// by their string form for deterministic output.
func (r *Registry) Keys() []KeyID {
	r.mu.Lock()
	ids := make([]KeyID, 0, len(r.overrides))
	for id := range r.overrides {
		ids = append(ids, id)
	}
	r.mu.Unlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

// ID returns the registry's instance id, as emitted in its log fields.
func (r *Registry) ID() string { return r.id }
