package classify

import (
	"sort"

	"github.com/dgallion1/clusterscan/internal/token"
)

// ParagraphStats holds the per-paragraph rollup. Residual excludes Anomalous
// here and everywhere else; Unexplained() gives the broad figure.
type ParagraphStats struct {
	token.Paragraph
	VoidHits           int
	PersonalityVoid    int
	ResidualVoid       int
	AnomalousVoid      int
	PersonalityMarkers int
	TechnicalMarkers   int
}

// Unexplained is the number of hits without personality context.
func (p ParagraphStats) Unexplained() int { return p.ResidualVoid + p.AnomalousVoid }

// TermCount is the hit count for one primary-cluster term.
type TermCount struct {
	Term  string
	Count int
}

// Summary is the corpus-wide rollup of a classification pass.
type Summary struct {
	TotalTokens        int
	TotalHits          int
	PersonalityHits    int
	ResidualHits       int // excludes anomalous
	AnomalousHits      int
	PersonalityMarkers int
	TechnicalMarkers   int

	TermCounts []TermCount // primary-cluster terms by descending hit count
	Paragraphs []ParagraphStats
}

// Unexplained is the number of hits without personality context.
func (s Summary) Unexplained() int { return s.ResidualHits + s.AnomalousHits }

// Density is hits per token; 0 on an empty stream.
func Density(hits, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}

// Aggregate reduces marks and hits into corpus and paragraph totals. It is a
// pure summation over already-classified data.
func Aggregate(s *token.Stream, m Marks, hits []Hit) Summary {
	sum := Summary{
		TotalTokens: len(s.Tokens),
		Paragraphs:  make([]ParagraphStats, len(s.Paragraphs)),
	}
	for i, p := range s.Paragraphs {
		sum.Paragraphs[i].Paragraph = p
	}

	terms := make(map[string]int)
	for _, h := range hits {
		sum.TotalHits++
		terms[s.Tokens[h.TokenIndex].Word]++

		para := s.Tokens[h.TokenIndex].Paragraph
		ps := &sum.Paragraphs[para]
		ps.VoidHits++

		switch h.Class {
		case PersonalityContext:
			sum.PersonalityHits++
			ps.PersonalityVoid++
		case Anomalous:
			sum.AnomalousHits++
			ps.AnomalousVoid++
		case Residual:
			sum.ResidualHits++
			ps.ResidualVoid++
		}
	}

	// Marker totals are an independent pass over every token, whether or not
	// the token is also a primary-cluster hit.
	for i, t := range s.Tokens {
		if m.Personality[i] {
			sum.PersonalityMarkers++
			sum.Paragraphs[t.Paragraph].PersonalityMarkers++
		}
		if m.Technical[i] {
			sum.TechnicalMarkers++
			sum.Paragraphs[t.Paragraph].TechnicalMarkers++
		}
	}

	sum.TermCounts = make([]TermCount, 0, len(terms))
	for term, count := range terms {
		sum.TermCounts = append(sum.TermCounts, TermCount{Term: term, Count: count})
	}
	sort.Slice(sum.TermCounts, func(i, j int) bool {
		if sum.TermCounts[i].Count != sum.TermCounts[j].Count {
			return sum.TermCounts[i].Count > sum.TermCounts[j].Count
		}
		return sum.TermCounts[i].Term < sum.TermCounts[j].Term
	})

	return sum
}
