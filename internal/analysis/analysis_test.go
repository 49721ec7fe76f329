package analysis

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/dgallion1/clusterscan/internal/baseline"
	"github.com/dgallion1/clusterscan/internal/classify"
)

func defaultClusters(t *testing.T) Clusters {
	t.Helper()
	c, err := LoadClusters("", "")
	if err != nil {
		t.Fatalf("load default clusters: %v", err)
	}
	return c
}

func TestRun_EndToEnd(t *testing.T) {
	res, err := Run("the void consumed everything lol so funny", defaultClusters(t), classify.DefaultWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Summary.TotalTokens != 7 {
		t.Errorf("expected 7 tokens, got %d", res.Summary.TotalTokens)
	}
	if res.Summary.TotalHits != 1 || res.Summary.PersonalityHits != 1 {
		t.Errorf("expected 1 personality-context hit, got %+v", res.Summary)
	}
	if res.Window != classify.DefaultWindow {
		t.Errorf("expected window %d, got %d", classify.DefaultWindow, res.Window)
	}
}

func TestRun_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "   \n\n  ", "... 123 !!!"} {
		_, err := Run(text, defaultClusters(t), classify.DefaultWindow)
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("input %q: expected ErrEmptyInput, got %v", text, err)
		}
	}
}

func TestRun_ClampsWindow(t *testing.T) {
	res, err := Run("void aa bb", defaultClusters(t), 9999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Window != classify.MaxWindow {
		t.Errorf("expected window clamped to %d, got %d", classify.MaxWindow, res.Window)
	}
}

func TestLoadClusters_MissingWordlist(t *testing.T) {
	_, err := LoadClusters(filepath.Join(t.TempDir(), "absent.txt"), "")
	if err == nil {
		t.Fatal("expected error for missing void wordlist")
	}
}

func TestLoadClusters_CustomWordlists(t *testing.T) {
	dir := t.TempDir()
	voidPath := filepath.Join(dir, "void.txt")
	persPath := filepath.Join(dir, "pers.txt")
	if err := os.WriteFile(voidPath, []byte("umbra\n"), 0o644); err != nil {
		t.Fatalf("write wordlist: %v", err)
	}
	if err := os.WriteFile(persPath, []byte("zany\n"), 0o644); err != nil {
		t.Fatalf("write wordlist: %v", err)
	}

	c, err := LoadClusters(voidPath, persPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.Void.Contains("umbra") || c.Void.Contains("void") {
		t.Error("expected void set replaced by custom wordlist")
	}
	if !c.Personality.Contains("zany") || c.Personality.Contains("lol") {
		t.Error("expected personality set replaced by custom wordlist")
	}
	if !c.Technical.Contains("algorithm") {
		t.Error("expected technical set to stay built-in")
	}
}

func TestEvaluate_AtExpectation(t *testing.T) {
	res, err := Run("void aa bb cc dd ee ff gg hh ii", defaultClusters(t), classify.DefaultWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 1 hit in 10 tokens against p0=0.1: z, chi, h all zero.
	test := res.Evaluate(1, baseline.Baseline{Label: "exact", P0: 0.1})
	if test.Density != 0.1 {
		t.Errorf("expected density 0.1, got %v", test.Density)
	}
	if math.Abs(test.Z) > 1e-12 || math.Abs(test.ChiSquare) > 1e-12 || test.CohensH != 0 {
		t.Errorf("expected neutral statistics at expectation, got %+v", test)
	}
	if math.Abs(test.P-0.5) > 1e-7 {
		t.Errorf("expected p=0.5 at expectation, got %v", test.P)
	}
	if test.Stars != "" {
		t.Errorf("expected no stars at expectation, got %q", test.Stars)
	}
}

func TestEvaluate_ElevatedCount(t *testing.T) {
	res, err := Run("void aa bb cc dd ee ff gg hh ii", defaultClusters(t), classify.DefaultWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	test := res.Evaluate(5, baseline.Baseline{Label: "low", P0: 0.01})
	if test.Z <= 0 {
		t.Errorf("expected positive z for elevated count, got %v", test.Z)
	}
	if test.P >= 0.001 {
		t.Errorf("expected p<0.001, got %v", test.P)
	}
	if test.Stars != "***" {
		t.Errorf("expected ***, got %q", test.Stars)
	}
	if test.Label != "low" || test.Observed != 5 {
		t.Errorf("expected labelled result, got %+v", test)
	}
}

func TestEvaluate_ZeroObserved(t *testing.T) {
	res, err := Run("aa bb cc", defaultClusters(t), classify.DefaultWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	test := res.Evaluate(0, baseline.Baseline{Label: "default", P0: 0.05})
	if test.Density != 0 {
		t.Errorf("expected density 0, got %v", test.Density)
	}
	if test.Z >= 0 {
		t.Errorf("expected negative z for zero observed, got %v", test.Z)
	}
	if math.IsNaN(test.CohensH) || math.IsInf(test.CohensH, 0) {
		t.Errorf("expected finite effect size, got %v", test.CohensH)
	}
}
