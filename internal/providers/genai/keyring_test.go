package genai

import (
	"errors"
	"testing"

	"archviz/internal/domain"
)

func TestKeyRingRoundRobin(t *testing.T) {
	ring := NewKeyRing([]string{"a", "b", "c"})
	want := []string{"a", "b", "c", "a", "b"}
	for i, w := range want {
		key, err := ring.Next()
		if err != nil {
			t.Fatalf("Next() call %d: %v", i, err)
		}
		if key != w {
			t.Fatalf("Next() call %d = %q, want %q", i, key, w)
		}
	}
}

func TestKeyRingDropsBlanks(t *testing.T) {
	ring := NewKeyRing([]string{"", "only", ""})
	if ring.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", ring.Size())
	}
	for i := 0; i < 3; i++ {
		key, err := ring.Next()
		if err != nil || key != "only" {
			t.Fatalf("Next() = %q, %v, want only", key, err)
		}
	}
}

func TestKeyRingEmpty(t *testing.T) {
	ring := NewKeyRing(nil)
	if _, err := ring.Next(); !errors.Is(err, domain.ErrMissingCredential) {
		t.Fatalf("Next() on empty ring = %v, want ErrMissingCredential", err)
	}
}
