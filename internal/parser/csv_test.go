package parser

import (
	"strings"
	"testing"
)

func TestCSVExtractor_RowsBecomeLines(t *testing.T) {
	input := "name,comment\nalice,loves the product\nbob,wants a refund\n"
	e := &CSVExtractor{}
	got, err := e.Extract(strings.NewReader(input), "sheet.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), got)
	}
	if lines[1] != "alice loves the product" {
		t.Errorf("expected fields joined with spaces, got %q", lines[1])
	}
}

func TestCSVExtractor_RaggedRows(t *testing.T) {
	input := "a,b,c\nd\ne,f\n"
	e := &CSVExtractor{}
	got, err := e.Extract(strings.NewReader(input), "sheet.csv")
	if err != nil {
		t.Fatalf("expected ragged rows accepted, got error: %v", err)
	}
	if len(strings.Split(got, "\n")) != 3 {
		t.Errorf("expected 3 lines, got %q", got)
	}
}

func TestCSVExtractor_QuotedFields(t *testing.T) {
	input := "id,text\n1,\"a quoted, comma\"\n"
	e := &CSVExtractor{}
	got, err := e.Extract(strings.NewReader(input), "sheet.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "a quoted, comma") {
		t.Errorf("expected quoted field preserved, got %q", got)
	}
}

func TestCSVExtractor_EmptyInput(t *testing.T) {
	e := &CSVExtractor{}
	got, err := e.Extract(strings.NewReader(""), "sheet.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}
