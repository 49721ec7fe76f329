package baseline

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseSpec_Valid(t *testing.T) {
	b, err := ParseSpec("rock:0.02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Label != "rock" {
		t.Errorf("expected label %q, got %q", "rock", b.Label)
	}
	if b.P0 != 0.02 {
		t.Errorf("expected p0=0.02, got %v", b.P0)
	}
}

func TestParseSpec_LabelWithColon(t *testing.T) {
	// Only the first colon separates label from value.
	_, err := ParseSpec("a:b:0.02")
	if err == nil {
		t.Fatal("expected error for non-numeric proportion")
	}
}

func TestParseSpec_Invalid(t *testing.T) {
	for _, spec := range []string{"", "rock", ":0.02", "rock:", "rock:abc", "rock:-0.1", "rock:1.5"} {
		if _, err := ParseSpec(spec); err == nil {
			t.Errorf("expected error for spec %q", spec)
		}
	}
}

func TestLoadFile_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baselines.yaml")
	content := `baselines:
  - label: rock
    p0: 0.02
  - label: horror
    p0: 0.08
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write baselines: %v", err)
	}

	bs, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bs) != 2 {
		t.Fatalf("expected 2 baselines, got %d", len(bs))
	}
	if bs[0].Label != "rock" || bs[0].P0 != 0.02 {
		t.Errorf("baseline[0]: got %+v", bs[0])
	}
	if bs[1].Label != "horror" || bs[1].P0 != 0.08 {
		t.Errorf("baseline[1]: got %+v", bs[1])
	}
}

func TestLoadFile_RejectsOutOfRangeProportion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baselines.yaml")
	content := "baselines:\n  - label: bad\n    p0: 1.5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write baselines: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for out-of-range proportion")
	}
}

func TestLoadFile_RejectsEmptyLabel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baselines.yaml")
	content := "baselines:\n  - p0: 0.05\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write baselines: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for entry with no label")
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
