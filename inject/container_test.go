package inject

import "testing"

// swapDefault installs a fresh default registry and restores the previous
// one on cleanup, so tests of the nil-registry surface stay isolated.
func swapDefault(t *testing.T) *Registry {
	t.Helper()
	r := New()
	prev := SetDefault(r)
	t.Cleanup(func() { SetDefault(prev) })
	return r
}

func TestDefaultLazyInit(t *testing.T) {
	prev := SetDefault(nil)
	t.Cleanup(func() { SetDefault(prev) })

	r := Default()
	if r == nil {
		t.Fatal("expected Default to create a registry")
	}
	if Default() != r {
		t.Error("expected Default to return the same instance")
	}
}

func TestSetDefaultReturnsPrevious(t *testing.T) {
	a := New()
	prev := SetDefault(a)
	t.Cleanup(func() { SetDefault(prev) })

	b := New()
	if got := SetDefault(b); got != a {
		t.Error("expected SetDefault to return the previous registry")
	}
	if Default() != b {
		t.Error("expected Default to return the new registry")
	}
}

func TestNilRegistryUsesDefault(t *testing.T) {
	r := swapDefault(t)

	Register[string](nil, stringKey{}, "prod")
	if got := Resolve(r, stringKey{}); got != "prod" {
		t.Errorf("nil-registry register must hit the default registry, got %q", got)
	}
	if got := Resolve[string](nil, stringKey{}); got != "prod" {
		t.Errorf("nil-registry resolve must hit the default registry, got %q", got)
	}

	Reset()
	if got := Resolve[string](nil, stringKey{}); got != "default config" {
		t.Errorf("expected default after package Reset, got %q", got)
	}
}

func TestNilRegistryRegisterOnce(t *testing.T) {
	swapDefault(t)

	if err := RegisterOnce[string](nil, stringKey{}, "a"); err != nil {
		t.Fatalf("RegisterOnce failed: %v", err)
	}
	if err := RegisterOnce[string](nil, stringKey{}, "b"); err == nil {
		t.Error("expected duplicate error through the default registry")
	}
}

func TestNilAccessorTracksDefaultSwap(t *testing.T) {
	first := swapDefault(t)
	acc := Bind[string](nil, stringKey{})

	acc.Write("one")
	if got := Resolve(first, stringKey{}); got != "one" {
		t.Errorf("expected write into current default, got %q", got)
	}

	second := New()
	SetDefault(second)
	if got := acc.Read(); got != "default config" {
		t.Errorf("nil-bound accessor must follow the default swap, got %q", got)
	}
}
