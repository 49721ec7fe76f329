package classify

import (
	"testing"
)

func TestAggregate_CountsPartition(t *testing.T) {
	// Window 4 keeps each hit's context inside its own paragraph here; the
	// default radius would let paragraph 1's markers explain later hits.
	s := scan(t, "the void consumed everything lol so funny\n\n"+
		"the algorithm fell into the void during compilation\n\n"+
		"she walked into the void and kept walking")
	m := defaultMarks(t, s)
	hits := Classify(s, m, 4)
	sum := Aggregate(s, m, hits)

	if sum.TotalHits != 3 {
		t.Fatalf("expected 3 hits, got %d", sum.TotalHits)
	}
	if sum.PersonalityHits != 1 || sum.AnomalousHits != 1 || sum.ResidualHits != 1 {
		t.Errorf("expected 1/1/1 split, got P=%d A=%d R=%d",
			sum.PersonalityHits, sum.AnomalousHits, sum.ResidualHits)
	}
	if got := sum.PersonalityHits + sum.AnomalousHits + sum.ResidualHits; got != sum.TotalHits {
		t.Errorf("class counts do not sum to total: %d != %d", got, sum.TotalHits)
	}
	if sum.Unexplained() != 2 {
		t.Errorf("expected 2 unexplained hits, got %d", sum.Unexplained())
	}
}

func TestAggregate_PerParagraph(t *testing.T) {
	s := scan(t, "the void consumed everything lol so funny\n\n"+
		"the algorithm fell into the void during compilation")
	m := defaultMarks(t, s)
	hits := Classify(s, m, 4)
	sum := Aggregate(s, m, hits)

	if len(sum.Paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(sum.Paragraphs))
	}

	p0 := sum.Paragraphs[0]
	if p0.VoidHits != 1 || p0.PersonalityVoid != 1 {
		t.Errorf("paragraph 0: expected 1 personality-context hit, got %+v", p0)
	}
	if p0.PersonalityMarkers != 2 {
		t.Errorf("paragraph 0: expected 2 personality markers, got %d", p0.PersonalityMarkers)
	}

	p1 := sum.Paragraphs[1]
	if p1.VoidHits != 1 || p1.AnomalousVoid != 1 {
		t.Errorf("paragraph 1: expected 1 anomalous hit, got %+v", p1)
	}
	if p1.TechnicalMarkers != 2 {
		t.Errorf("paragraph 1: expected 2 technical markers, got %d", p1.TechnicalMarkers)
	}
	if p1.Unexplained() != 1 {
		t.Errorf("paragraph 1: expected 1 unexplained hit, got %d", p1.Unexplained())
	}
}

func TestAggregate_WindowCrossesParagraphs(t *testing.T) {
	// The co-occurrence window runs over the token stream, not within a
	// single paragraph, so a nearby marker in the next paragraph counts.
	s := scan(t, "the void lingered\n\nlol what a day")
	m := defaultMarks(t, s)
	hits := Classify(s, m, DefaultWindow)
	sum := Aggregate(s, m, hits)

	if sum.PersonalityHits != 1 {
		t.Errorf("expected marker across the boundary to count, got P=%d R=%d",
			sum.PersonalityHits, sum.ResidualHits)
	}
}

func TestAggregate_TermCountsSorted(t *testing.T) {
	s := scan(t, "void shadow void shadow void abyss")
	m := defaultMarks(t, s)
	hits := Classify(s, m, DefaultWindow)
	sum := Aggregate(s, m, hits)

	want := []TermCount{
		{Term: "void", Count: 3},
		{Term: "shadow", Count: 2},
		{Term: "abyss", Count: 1},
	}
	if len(sum.TermCounts) != len(want) {
		t.Fatalf("expected %d terms, got %d: %v", len(want), len(sum.TermCounts), sum.TermCounts)
	}
	for i, w := range want {
		if sum.TermCounts[i] != w {
			t.Errorf("term[%d]: expected %+v, got %+v", i, w, sum.TermCounts[i])
		}
	}
}

func TestAggregate_TermCountTiesBreakAlphabetically(t *testing.T) {
	s := scan(t, "shadow abyss void")
	m := defaultMarks(t, s)
	sum := Aggregate(s, m, Classify(s, m, DefaultWindow))

	want := []string{"abyss", "shadow", "void"}
	for i, w := range want {
		if sum.TermCounts[i].Term != w {
			t.Errorf("term[%d]: expected %q, got %q", i, w, sum.TermCounts[i].Term)
		}
	}
}

func TestDensity(t *testing.T) {
	if d := Density(5, 100); d != 0.05 {
		t.Errorf("expected 0.05, got %v", d)
	}
	if d := Density(0, 0); d != 0 {
		t.Errorf("expected 0 on empty stream, got %v", d)
	}
}
