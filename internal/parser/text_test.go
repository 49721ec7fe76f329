package parser

import (
	"strings"
	"testing"
)

func TestTextExtractor_Passthrough(t *testing.T) {
	input := "First paragraph.\n\nSecond paragraph.\n"
	e := &TextExtractor{}
	got, err := e.Extract(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != input {
		t.Errorf("expected untouched text, got %q", got)
	}
}

func TestTextExtractor_EmptyInput(t *testing.T) {
	e := &TextExtractor{}
	got, err := e.Extract(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}
