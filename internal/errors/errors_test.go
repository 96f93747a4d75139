package errors

import (
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(TypeInput, "bad request")
	if got := err.Error(); got != "[INPUT_ERROR] bad request" {
		t.Errorf("Error() = %q", got)
	}

	wrapped := Wrap(TypeConfig, "load failed", fmt.Errorf("boom"))
	if got := wrapped.Error(); got != "[CONFIG_ERROR] load failed: boom" {
		t.Errorf("Error() = %q", got)
	}
}

func TestIsTypeThroughWrapping(t *testing.T) {
	inner := NotFound("flavor", "mega", "aws")
	outer := fmt.Errorf("planning web: %w", inner)

	if !IsType(outer, TypeNotFound) {
		t.Error("IsType must see through fmt.Errorf wrapping")
	}
	if IsType(outer, TypeNoFit) {
		t.Error("IsType must not match a different type")
	}
	if IsType(fmt.Errorf("plain"), TypeNotFound) {
		t.Error("IsType must be false for foreign errors")
	}
}

func TestDomainThroughWrapping(t *testing.T) {
	inner := NoEligibleProvider("nothing left").WithContext("exclusions", 3)
	outer := fmt.Errorf("planning web: %w", inner)

	e, ok := Domain(outer)
	if !ok {
		t.Fatal("Domain must see through fmt.Errorf wrapping")
	}
	if e.Context["exclusions"] != 3 {
		t.Errorf("context lost through wrapping: %v", e.Context)
	}

	if _, ok := Domain(fmt.Errorf("plain")); ok {
		t.Error("Domain must be false for foreign errors")
	}
}

func TestTypeOf(t *testing.T) {
	if got := TypeOf(NoFit("aws", 4, 8)); got != TypeNoFit {
		t.Errorf("TypeOf = %s, want NO_FIT", got)
	}
	if got := TypeOf(fmt.Errorf("plain")); got != TypeInternal {
		t.Errorf("TypeOf foreign = %s, want INTERNAL_ERROR", got)
	}
}

func TestWithContext(t *testing.T) {
	err := NoGPU("hetzner", "any", 1)
	if err.Context["provider"] != "hetzner" {
		t.Errorf("context = %v", err.Context)
	}

	err.WithContext("count", 1)
	if err.Context["count"] != 1 {
		t.Errorf("context = %v", err.Context)
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("io failure")
	err := Internal("storage", cause)
	if err.Unwrap() != cause {
		t.Error("Unwrap must return the cause")
	}
	if New(TypeInput, "x").Unwrap() != nil {
		t.Error("Unwrap without a cause must be nil")
	}
}
