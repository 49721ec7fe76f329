package pipeline

import (
	"strings"
	"testing"
)

func TestNewJobID_Format(t *testing.T) {
	id := NewJobID()
	if len(id) != 26 {
		t.Fatalf("expected 26-character id, got %d: %q", len(id), id)
	}
	for _, c := range id {
		if !strings.ContainsRune(crockford, c) {
			t.Errorf("unexpected character %q in id %q", c, id)
		}
	}
}

func TestNewJobID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewJobID()
		if seen[id] {
			t.Fatalf("duplicate id %q after %d generations", id, i)
		}
		seen[id] = true
	}
}

func TestNewJobID_TimestampPrefixSorts(t *testing.T) {
	// Ids generated within the same millisecond share a timestamp prefix
	// and differ in the sequence bytes, so lexical order tracks creation
	// order across milliseconds.
	a := NewJobID()
	b := NewJobID()
	if a[:10] > b[:10] {
		t.Errorf("expected non-decreasing timestamp prefix, got %q then %q", a, b)
	}
}
