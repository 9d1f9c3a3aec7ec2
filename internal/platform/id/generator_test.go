package id

import (
	"strings"
	"testing"
)

func TestRandomGenerator_NewID(t *testing.T) {
	gen := NewRandomGenerator()
	first, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	second, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if len(first) != 32 {
		t.Fatalf("unexpected id length: got=%d want=32", len(first))
	}
	if first == second {
		t.Fatalf("expected distinct ids, got %q twice", first)
	}
}

func TestPrefixedGenerator_NewID(t *testing.T) {
	got, err := NewPrefixedGenerator(" api-1 ").NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if !strings.HasPrefix(got, "api-1-") || len(got) != len("api-1-")+32 {
		t.Fatalf("unexpected prefixed id: %q", got)
	}
}
