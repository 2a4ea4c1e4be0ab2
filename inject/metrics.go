package inject

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Resolve source attribute values.
const (
	sourceOverride = "override"
	sourceDefault  = "default"
)

// registryMetrics holds the optional OpenTelemetry instruments for one
// registry. A nil *registryMetrics silently skips all recording, so the
// registry never branches on whether metrics are enabled.
type registryMetrics struct {
	resolveTotal  metric.Int64Counter
	registerTotal metric.Int64Counter
	resetTotal    metric.Int64Counter
}

// newRegistryMetrics creates the instrument set on meter and registers an
// observable gauge tracking r's current override count.
func newRegistryMetrics(meter metric.Meter, r *Registry) (*registryMetrics, error) {
	resolveTotal, err := meter.Int64Counter("inject.resolve.total",
		metric.WithDescription("Total number of key resolutions"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating inject.resolve.total counter: %w", err)
	}

	registerTotal, err := meter.Int64Counter("inject.register.total",
		metric.WithDescription("Total number of value registrations"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating inject.register.total counter: %w", err)
	}

	resetTotal, err := meter.Int64Counter("inject.reset.total",
		metric.WithDescription("Total number of registry resets"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating inject.reset.total counter: %w", err)
	}

	overrides, err := meter.Int64ObservableGauge("inject.overrides",
		metric.WithDescription("Number of currently registered values"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating inject.overrides gauge: %w", err)
	}
	_, err = meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		o.ObserveInt64(overrides, int64(r.Len()), metric.WithAttributes(
			attribute.String("registry_id", r.id),
		))
		return nil
	}, overrides)
	if err != nil {
		return nil, fmt.Errorf("registering inject.overrides callback: %w", err)
	}

	return &registryMetrics{
		resolveTotal:  resolveTotal,
		registerTotal: registerTotal,
		resetTotal:    resetTotal,
	}, nil
}

func (m *registryMetrics) recordResolve(source string) {
	if m == nil {
		return
	}
	m.resolveTotal.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("source", source),
	))
}

func (m *registryMetrics) recordRegister(policy string) {
	if m == nil {
		return
	}
	m.registerTotal.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("policy", policy),
	))
}

func (m *registryMetrics) recordReset() {
	if m == nil {
		return
	}
	m.resetTotal.Add(context.Background(), 1)
}
