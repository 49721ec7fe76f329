package pipeline

import (
	"github.com/dgallion1/clusterscan/internal/analysis"
	"github.com/dgallion1/clusterscan/internal/baseline"
	"github.com/dgallion1/clusterscan/internal/classify"
)

const maxTopTerms = 20

// HitCounts breaks total primary-cluster hits down by classification.
// Residual excludes anomalous.
type HitCounts struct {
	Total       int `json:"total"`
	Personality int `json:"personality"`
	Residual    int `json:"residual"`
	Anomalous   int `json:"anomalous"`
}

// MarkerCounts are corpus-wide marker-token totals.
type MarkerCounts struct {
	Personality int `json:"personality"`
	Technical   int `json:"technical"`
}

// Result is the JSON form of one completed analysis.
type Result struct {
	TotalTokens int                  `json:"total_tokens"`
	Paragraphs  int                  `json:"paragraphs"`
	Window      int                  `json:"window"`
	Density     float64              `json:"density"`
	Hits        HitCounts            `json:"hits"`
	Markers     MarkerCounts         `json:"markers"`
	TopTerms    []classify.TermCount `json:"top_terms,omitempty"`
	Tests       []analysis.Test      `json:"tests"`
}

// Summarize converts an analysis run into its JSON form, evaluating the raw,
// residual, and anomalous counts against every baseline.
func Summarize(res *analysis.Result, baselines []baseline.Baseline) *Result {
	sum := res.Summary

	var tests []analysis.Test
	for _, b := range baselines {
		raw := res.Evaluate(sum.TotalHits, b)
		raw.Label = b.Label + "/raw"
		resid := res.Evaluate(sum.ResidualHits, b)
		resid.Label = b.Label + "/residual"
		anom := res.Evaluate(sum.AnomalousHits, b)
		anom.Label = b.Label + "/anomalous"
		tests = append(tests, raw, resid, anom)
	}

	topTerms := sum.TermCounts
	if len(topTerms) > maxTopTerms {
		topTerms = topTerms[:maxTopTerms]
	}

	return &Result{
		TotalTokens: sum.TotalTokens,
		Paragraphs:  len(sum.Paragraphs),
		Window:      res.Window,
		Density:     classify.Density(sum.TotalHits, sum.TotalTokens),
		Hits: HitCounts{
			Total:       sum.TotalHits,
			Personality: sum.PersonalityHits,
			Residual:    sum.ResidualHits,
			Anomalous:   sum.AnomalousHits,
		},
		Markers: MarkerCounts{
			Personality: sum.PersonalityMarkers,
			Technical:   sum.TechnicalMarkers,
		},
		TopTerms: topTerms,
		Tests:    tests,
	}
}
