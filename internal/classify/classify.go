// Package classify implements the co-occurrence classification engine: each
// primary-cluster hit is classified by which marker vocabularies appear in a
// sliding window of neighboring tokens.
package classify

import (
	"github.com/dgallion1/clusterscan/internal/cluster"
	"github.com/dgallion1/clusterscan/internal/token"
)

// Window radius bounds. Out-of-range requests are clamped, not rejected.
const (
	DefaultWindow = 15
	MinWindow     = 1
	MaxWindow     = 100
)

// ClampWindow forces a window radius into [MinWindow, MaxWindow].
func ClampWindow(n int) int {
	if n < MinWindow {
		return MinWindow
	}
	if n > MaxWindow {
		return MaxWindow
	}
	return n
}

// Class is the classification of one primary-cluster hit.
type Class byte

const (
	// PersonalityContext: at least one personality marker in the window.
	// The hit is explained by register, whatever else surrounds it.
	PersonalityContext Class = 'P'
	// Anomalous: no personality marker, but technical markers present.
	// Primary-cluster language in technical prose with no register cue is
	// the least expected case and the highest priority for review.
	Anomalous Class = 'A'
	// Residual: neither marker vocabulary nearby.
	Residual Class = 'R'
)

func (c Class) String() string {
	switch c {
	case PersonalityContext:
		return "personality"
	case Anomalous:
		return "anomalous"
	case Residual:
		return "residual"
	}
	return "unknown"
}

// Hit is one classified primary-cluster occurrence.
type Hit struct {
	TokenIndex  int
	Class       Class
	Personality int // personality markers in the window
	Technical   int // technical markers in the window
}

// Marks caches per-token cluster membership so window scans stay O(window).
type Marks struct {
	Void        []bool
	Personality []bool
	Technical   []bool
}

// Mark tests every token against the three cluster sets once.
func Mark(s *token.Stream, void, personality, technical *cluster.Set) Marks {
	n := len(s.Tokens)
	m := Marks{
		Void:        make([]bool, n),
		Personality: make([]bool, n),
		Technical:   make([]bool, n),
	}
	for i, t := range s.Tokens {
		m.Void[i] = void.Contains(t.Word)
		m.Personality[i] = personality.Contains(t.Word)
		m.Technical[i] = technical.Contains(t.Word)
	}
	return m
}

// Classify scans a symmetric window of radius window around every
// primary-cluster token, excluding the token itself, and assigns exactly one
// class by strict priority: any personality marker wins, else any technical
// marker makes the hit anomalous, else it is residual. Window scans are
// independent per hit, so processing order cannot affect the result.
func Classify(s *token.Stream, m Marks, window int) []Hit {
	window = ClampWindow(window)
	var hits []Hit
	n := len(s.Tokens)

	for i := 0; i < n; i++ {
		if !m.Void[i] {
			continue
		}
		lo := i - window
		if lo < 0 {
			lo = 0
		}
		hi := i + window
		if hi > n-1 {
			hi = n - 1
		}

		pers, tech := 0, 0
		for j := lo; j <= hi; j++ {
			if j == i {
				continue
			}
			if m.Personality[j] {
				pers++
			}
			if m.Technical[j] {
				tech++
			}
		}

		class := Residual
		if pers > 0 {
			class = PersonalityContext
		} else if tech > 0 {
			class = Anomalous
		}
		hits = append(hits, Hit{
			TokenIndex:  i,
			Class:       class,
			Personality: pers,
			Technical:   tech,
		})
	}
	return hits
}
