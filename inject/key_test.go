package inject

import (
	"errors"
	"testing"
)

func TestKeyedTypeIdentity(t *testing.T) {
	a := idOf[string](stringKey{})
	b := idOf[string](stringKey{})
	if a != b {
		t.Error("same keyed type must yield the same identity")
	}

	c := idOf[string](otherStringKey{})
	if a == c {
		t.Error("distinct keyed types must yield distinct identities even for the same value type")
	}
}

func TestPathIdentity(t *testing.T) {
	a := idOf[string](NewPath("service.name", "x"))
	b := idOf[string](NewPath("service.name", "y"))
	if a != b {
		t.Error("same path name must yield the same identity")
	}

	c := idOf[string](NewPath("service.other", "x"))
	if a == c {
		t.Error("distinct path names must yield distinct identities")
	}

	d := idOf[string](stringKey{})
	if a == d {
		t.Error("path identity must not alias type identity")
	}
}

func TestPathDefault(t *testing.T) {
	p := NewPath("retry.limit", 3)
	if p.Default() != 3 {
		t.Errorf("expected 3, got %d", p.Default())
	}
	if p.Name() != "retry.limit" {
		t.Errorf("unexpected name %q", p.Name())
	}

	calls := 0
	f := NewPathFunc("computed", func() string {
		calls++
		return "computed-value"
	})
	if got := f.Default(); got != "computed-value" {
		t.Errorf("unexpected default %q", got)
	}
	f.Default()
	if calls != 2 {
		t.Errorf("expected the default func to run per call, got %d calls", calls)
	}
}

func TestBindPathSharesIdentity(t *testing.T) {
	apiConfig := BindPath("api.config", stringKey{})

	if idOf[string](apiConfig) != idOf[string](stringKey{}) {
		t.Fatal("bound path must share the underlying keyed-type identity")
	}
	if apiConfig.Default() != "default config" {
		t.Errorf("bound path must delegate the default, got %q", apiConfig.Default())
	}
}

func TestCrossFormEquivalence(t *testing.T) {
	r := New()
	apiConfig := BindPath("api.config", stringKey{})

	// Register through the path form, resolve through the keyed type.
	Register(r, apiConfig, "X")
	if got := Resolve(r, stringKey{}); got != "X" {
		t.Errorf("expected 'X' via keyed type, got %q", got)
	}

	// And the other direction.
	Register(r, stringKey{}, "Y")
	if got := Resolve(r, apiConfig); got != "Y" {
		t.Errorf("expected 'Y' via path, got %q", got)
	}

	if r.Len() != 1 {
		t.Errorf("both forms must share one entry, got %d", r.Len())
	}
}

func TestZeroPathIsMalformed(t *testing.T) {
	var p Path[string]

	if !idOf[string](p).IsZero() {
		t.Error("zero path must have zero identity")
	}

	_, err := ResolveStrict(New(), p)
	if err == nil {
		t.Fatal("expected error resolving a zero path")
	}
	if !errors.Is(err, ErrUnknownKey) {
		t.Errorf("expected ErrUnknownKey, got %v", err)
	}
}

func TestKeyIDString(t *testing.T) {
	if s := idOf[string](stringKey{}).String(); s == "" || s == "<zero key>" {
		t.Errorf("unexpected type identity string %q", s)
	}
	if s := idOf[string](NewPath("a.b", "")).String(); s != "a.b" {
		t.Errorf("expected 'a.b', got %q", s)
	}
	if s := (KeyID{}).String(); s != "<zero key>" {
		t.Errorf("expected '<zero key>', got %q", s)
	}
}

func TestResolveStrictWrongStoredType(t *testing.T) {
	r := New()

	// Force a mismatched entry through the untyped layer; typed call sites
	// cannot produce this.
	r.store(idOf[string](stringKey{}), 123)

	_, err := ResolveStrict(r, stringKey{})
	if err == nil {
		t.Fatal("expected error for mismatched stored type")
	}
	if !errors.Is(err, ErrUnknownKey) {
		t.Errorf("expected ErrUnknownKey, got %v", err)
	}
	var uk *UnknownKeyError
	if !errors.As(err, &uk) {
		t.Fatalf("expected *UnknownKeyError, got %T", err)
	}
	if uk.Want.Kind().String() != "string" || uk.Got.Kind().String() != "int" {
		t.Errorf("unexpected Want/Got: %v/%v", uk.Want, uk.Got)
	}

	// The lenient path falls back to the default.
	if got := Resolve(r, stringKey{}); got != "default config" {
		t.Errorf("expected default on unrecoverable entry, got %q", got)
	}
}
