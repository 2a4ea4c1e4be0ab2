package inject

import "testing"

func TestAccessorReadWrite(t *testing.T) {
	r := New()
	acc := Bind(r, stringKey{})

	if got := acc.Read(); got != "default config" {
		t.Errorf("expected default before write, got %q", got)
	}

	acc.Write("prod")
	if got := acc.Read(); got != "prod" {
		t.Errorf("expected 'prod', got %q", got)
	}
	if got := Resolve(r, stringKey{}); got != "prod" {
		t.Errorf("accessor writes must be visible through the registry, got %q", got)
	}
}

func TestAccessorObservesGlobalChanges(t *testing.T) {
	r := New()
	a := Bind(r, stringKey{})
	b := Bind(r, stringKey{})

	a.Write("shared")
	if got := b.Read(); got != "shared" {
		t.Errorf("accessors must not cache: expected 'shared', got %q", got)
	}

	r.Reset()
	if got := a.Read(); got != "default config" {
		t.Errorf("accessors must observe resets immediately, got %q", got)
	}
	if got := b.Read(); got != "default config" {
		t.Errorf("accessors must observe resets immediately, got %q", got)
	}
}

func TestAccessorOnPathKey(t *testing.T) {
	r := New()
	acc := Bind(r, BindPath("api.config", stringKey{}))

	acc.Write("via-path")
	if got := Resolve(r, stringKey{}); got != "via-path" {
		t.Errorf("path accessor must share the keyed-type entry, got %q", got)
	}
}

func TestAccessorAsConsumerField(t *testing.T) {
	type client struct {
		config Accessor[string]
		limit  Accessor[int]
	}

	r := New()
	c := client{
		config: Bind(r, stringKey{}),
		limit:  Bind(r, intKey{}),
	}

	if c.config.Read() != "default config" || c.limit.Read() != 42 {
		t.Error("expected declared defaults through consumer fields")
	}

	Register(r, intKey{}, 7)
	if got := c.limit.Read(); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
}
