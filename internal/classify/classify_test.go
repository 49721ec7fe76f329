package classify

import (
	"strings"
	"testing"

	"github.com/dgallion1/clusterscan/internal/cluster"
	"github.com/dgallion1/clusterscan/internal/token"
)

func scan(t *testing.T, text string) *token.Stream {
	t.Helper()
	s, err := token.Scan(strings.NewReader(text))
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	return s
}

func defaultMarks(t *testing.T, s *token.Stream) Marks {
	t.Helper()
	return Mark(s,
		cluster.FromTerms(cluster.DefaultVoid),
		cluster.FromTerms(cluster.DefaultPersonality),
		cluster.FromTerms(cluster.DefaultTechnical))
}

func TestClassify_PersonalityContext(t *testing.T) {
	s := scan(t, "the void consumed everything lol so funny")
	hits := Classify(s, defaultMarks(t, s), DefaultWindow)
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	if hits[0].Class != PersonalityContext {
		t.Errorf("expected class P, got %c", hits[0].Class)
	}
	if hits[0].Personality != 2 {
		t.Errorf("expected 2 personality markers in window, got %d", hits[0].Personality)
	}
	if s.Tokens[hits[0].TokenIndex].Word != "void" {
		t.Errorf("expected hit on %q, got %q", "void", s.Tokens[hits[0].TokenIndex].Word)
	}
}

func TestClassify_Anomalous(t *testing.T) {
	s := scan(t, "the algorithm fell into the void during compilation")
	hits := Classify(s, defaultMarks(t, s), DefaultWindow)
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	if hits[0].Class != Anomalous {
		t.Errorf("expected class A, got %c", hits[0].Class)
	}
	if hits[0].Technical != 2 {
		t.Errorf("expected 2 technical markers in window, got %d", hits[0].Technical)
	}
}

func TestClassify_Residual(t *testing.T) {
	s := scan(t, "she walked into the void and kept walking")
	hits := Classify(s, defaultMarks(t, s), DefaultWindow)
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	if hits[0].Class != Residual {
		t.Errorf("expected class R, got %c", hits[0].Class)
	}
}

func TestClassify_PersonalityOutranksTechnical(t *testing.T) {
	s := scan(t, "the algorithm crashed into the void lol what a mess")
	hits := Classify(s, defaultMarks(t, s), DefaultWindow)
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	if hits[0].Class != PersonalityContext {
		t.Errorf("expected personality to take priority, got %c", hits[0].Class)
	}
	if hits[0].Technical == 0 {
		t.Error("expected technical markers still counted")
	}
}

func TestClassify_HitTokenExcludedFromOwnWindow(t *testing.T) {
	// "lol" is both the sole token near "lol" hits; a primary term that is
	// also a marker must not explain itself.
	void := cluster.FromTerms([]string{"gloom"})
	personality := cluster.FromTerms([]string{"gloom"})
	technical := cluster.FromTerms(nil)

	s := scan(t, "endless gloom descended")
	m := Mark(s, void, personality, technical)
	hits := Classify(s, m, DefaultWindow)
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	if hits[0].Class != Residual {
		t.Errorf("expected residual when the only marker is the hit itself, got %c", hits[0].Class)
	}
}

func TestClassify_WindowLimitsReach(t *testing.T) {
	// 3 filler tokens between hit and marker: window 2 misses it, window 4
	// finds it.
	s := scan(t, "void aa bb cc lol")
	m := defaultMarks(t, s)

	narrow := Classify(s, m, 2)
	if len(narrow) != 1 || narrow[0].Class != Residual {
		t.Fatalf("expected residual at window 2, got %+v", narrow)
	}
	wide := Classify(s, m, 4)
	if len(wide) != 1 || wide[0].Class != PersonalityContext {
		t.Fatalf("expected personality at window 4, got %+v", wide)
	}
}

func TestClassify_WindowClampedBelowMinimum(t *testing.T) {
	// Adjacent marker: even a requested window of 0 clamps up to 1.
	s := scan(t, "void lol")
	m := defaultMarks(t, s)
	hits := Classify(s, m, 0)
	if len(hits) != 1 || hits[0].Class != PersonalityContext {
		t.Fatalf("expected adjacent marker found at clamped window, got %+v", hits)
	}
}

func TestClampWindow(t *testing.T) {
	cases := []struct{ in, want int }{
		{-5, MinWindow},
		{0, MinWindow},
		{1, 1},
		{15, 15},
		{100, 100},
		{101, MaxWindow},
	}
	for _, c := range cases {
		if got := ClampWindow(c.in); got != c.want {
			t.Errorf("ClampWindow(%d): expected %d, got %d", c.in, c.want, got)
		}
	}
}

func TestClassify_WideningWindowIsMonotonic(t *testing.T) {
	// Widening the radius can move a hit toward PersonalityContext (or from
	// Residual to Anomalous), never the other way.
	text := "void aa bb lol cc void dd algorithm ee void ff gg hh lol " +
		"abyss ii jj kk compiler shadow ll mm nn oo pp haha darkness"
	s := scan(t, text)
	m := defaultMarks(t, s)

	prev := map[int]Class{}
	for radius := MinWindow; radius <= 30; radius++ {
		for _, h := range Classify(s, m, radius) {
			switch prev[h.TokenIndex] {
			case PersonalityContext:
				if h.Class != PersonalityContext {
					t.Fatalf("radius %d: hit %d regressed from P to %c",
						radius, h.TokenIndex, h.Class)
				}
			case Anomalous:
				if h.Class == Residual {
					t.Fatalf("radius %d: hit %d regressed from A to R",
						radius, h.TokenIndex)
				}
			}
			prev[h.TokenIndex] = h.Class
		}
	}
}

func TestClassify_EveryHitGetsExactlyOneClass(t *testing.T) {
	text := "the void swallowed the shadow lol while the algorithm " +
		"computed darkness and silence fell over the empty server haha " +
		"nothingness compiled into the abyss"
	s := scan(t, text)
	hits := Classify(s, defaultMarks(t, s), DefaultWindow)
	if len(hits) == 0 {
		t.Fatal("expected hits in marker-dense text")
	}
	counts := map[Class]int{}
	for _, h := range hits {
		switch h.Class {
		case PersonalityContext, Anomalous, Residual:
			counts[h.Class]++
		default:
			t.Errorf("hit %d: unexpected class %c", h.TokenIndex, h.Class)
		}
	}
	total := counts[PersonalityContext] + counts[Anomalous] + counts[Residual]
	if total != len(hits) {
		t.Errorf("classes do not partition hits: %d != %d", total, len(hits))
	}
}

func TestClassString(t *testing.T) {
	cases := []struct {
		c    Class
		want string
	}{
		{PersonalityContext, "personality"},
		{Anomalous, "anomalous"},
		{Residual, "residual"},
		{Class('x'), "unknown"},
	}
	for _, c := range cases {
		if got := c.c.String(); got != c.want {
			t.Errorf("Class(%c).String(): expected %q, got %q", c.c, c.want, got)
		}
	}
}
