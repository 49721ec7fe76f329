// Package analysis wires the tokenizer, cluster sets, classifier, aggregator,
// and statistical engine into a single run over fully buffered input.
package analysis

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dgallion1/clusterscan/internal/baseline"
	"github.com/dgallion1/clusterscan/internal/classify"
	"github.com/dgallion1/clusterscan/internal/cluster"
	"github.com/dgallion1/clusterscan/internal/stats"
	"github.com/dgallion1/clusterscan/internal/token"
)

// ErrEmptyInput means zero tokens were extracted from all sources combined.
// No analysis is performed on empty input.
var ErrEmptyInput = errors.New("no tokens found in input")

// Clusters holds the three term sets of one run. The technical set is always
// the built-in default; the other two may come from wordlist files.
type Clusters struct {
	Void        *cluster.Set
	Personality *cluster.Set
	Technical   *cluster.Set
}

// LoadClusters builds the cluster sets, reading wordlist files where paths
// are given. A missing wordlist is a fatal configuration error, surfaced
// before any analysis runs.
func LoadClusters(voidPath, personalityPath string) (Clusters, error) {
	void, err := cluster.LoadOrDefault(voidPath, cluster.DefaultVoid)
	if err != nil {
		return Clusters{}, fmt.Errorf("void cluster: %w", err)
	}
	personality, err := cluster.LoadOrDefault(personalityPath, cluster.DefaultPersonality)
	if err != nil {
		return Clusters{}, fmt.Errorf("personality cluster: %w", err)
	}
	return Clusters{
		Void:        void,
		Personality: personality,
		Technical:   cluster.FromTerms(cluster.DefaultTechnical),
	}, nil
}

// Result is the complete outcome of one analysis run. Everything is built
// fresh per invocation and read-only afterward.
type Result struct {
	Stream  *token.Stream
	Marks   classify.Marks
	Hits    []classify.Hit
	Summary classify.Summary
	Window  int
	VoidSet *cluster.Set
}

// Run tokenizes text, classifies every primary-cluster hit, and aggregates
// the counts. Returns ErrEmptyInput when the text yields no tokens.
func Run(text string, c Clusters, window int) (*Result, error) {
	window = classify.ClampWindow(window)

	stream, err := token.Scan(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	if len(stream.Tokens) == 0 {
		return nil, ErrEmptyInput
	}

	marks := classify.Mark(stream, c.Void, c.Personality, c.Technical)
	hits := classify.Classify(stream, marks, window)

	return &Result{
		Stream:  stream,
		Marks:   marks,
		Hits:    hits,
		Summary: classify.Aggregate(stream, marks, hits),
		Window:  window,
		VoidSet: c.Void,
	}, nil
}

// Test is one statistical evaluation of an observed count against a baseline.
type Test struct {
	Label     string  `json:"label"`
	P0        float64 `json:"p0"`
	Observed  int     `json:"observed"`
	Density   float64 `json:"density"`
	Z         float64 `json:"z"`
	P         float64 `json:"p"`
	ChiSquare float64 `json:"chi_square"`
	CohensH   float64 `json:"cohens_h"`
	Stars     string  `json:"stars"`
}

// Evaluate runs the statistical engine for one observed count against one
// baseline. Each evaluation is independent and order-insensitive.
func (r *Result) Evaluate(observed int, b baseline.Baseline) Test {
	total := r.Summary.TotalTokens
	density := classify.Density(observed, total)
	z := stats.ZTest(observed, total, b.P0)
	p := stats.PValue(z)
	return Test{
		Label:     b.Label,
		P0:        b.P0,
		Observed:  observed,
		Density:   density,
		Z:         z,
		P:         p,
		ChiSquare: stats.ChiSquare(observed, total, b.P0),
		CohensH:   stats.CohensH(density, b.P0),
		Stars:     stats.Significance(p),
	}
}
