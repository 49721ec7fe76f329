// Package report renders analysis results: the human-readable tables and
// interpretation banners of both tools, their quiet TSV lines, the per-hit
// debug listing, and the per-paragraph breakdown.
package report

import (
	"fmt"
	"io"

	"github.com/dgallion1/clusterscan/internal/analysis"
	"github.com/dgallion1/clusterscan/internal/baseline"
)

const maxTermRows = 20

// WriteScanTSV emits the frequency analyzer's machine-readable line:
// hits, total tokens, density, then one z-score per baseline.
func WriteScanTSV(w io.Writer, res *analysis.Result, baselines []baseline.Baseline) {
	sum := res.Summary
	fmt.Fprintf(w, "%d\t%d\t%.4f", sum.TotalHits, sum.TotalTokens,
		float64(sum.TotalHits)/float64(sum.TotalTokens))
	for _, b := range baselines {
		t := res.Evaluate(sum.TotalHits, b)
		fmt.Fprintf(w, "\t%.2f", t.Z)
	}
	fmt.Fprintln(w)
}

// WriteScanReport renders the frequency analyzer's full report.
func WriteScanReport(w io.Writer, res *analysis.Result, baselines []baseline.Baseline) {
	sum := res.Summary
	density := float64(sum.TotalHits) / float64(sum.TotalTokens)

	fmt.Fprintln(w, "╔══════════════════════════════════════════════════════════════╗")
	fmt.Fprintln(w, "║           SEMANTIC CLUSTER FREQUENCY ANALYSIS                ║")
	fmt.Fprintln(w, "╚══════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  Total tokens:        %d\n", sum.TotalTokens)
	fmt.Fprintf(w, "  Cluster matches:     %d\n", sum.TotalHits)
	fmt.Fprintf(w, "  Cluster density:     %.2f%%\n", density*100)
	fmt.Fprintf(w, "  Cluster terms used:  %d (of %d in wordlist)\n\n",
		len(sum.TermCounts), res.VoidSet.Len())

	fmt.Fprintln(w, "  ┌─────────────────────────┬───────┬────────┐")
	fmt.Fprintln(w, "  │ Term                    │ Count │  Freq% │")
	fmt.Fprintln(w, "  ├─────────────────────────┼───────┼────────┤")
	shown := len(sum.TermCounts)
	if shown > maxTermRows {
		shown = maxTermRows
	}
	for _, tc := range sum.TermCounts[:shown] {
		fmt.Fprintf(w, "  │ %-23s │ %5d │ %5.2f%% │\n",
			tc.Term, tc.Count, 100*float64(tc.Count)/float64(sum.TotalTokens))
	}
	if rest := len(sum.TermCounts) - shown; rest > 0 {
		fmt.Fprintf(w, "  │ ... +%-3d more terms     │       │        │\n", rest)
	}
	fmt.Fprintln(w, "  └─────────────────────────┴───────┴────────┘")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  ┌─────────────────────┬──────────┬─────────┬──────────┬──────────┐")
	fmt.Fprintln(w, "  │ Baseline            │ Expected │ Z-score │    χ²    │ Cohen's h│")
	fmt.Fprintln(w, "  ├─────────────────────┼──────────┼─────────┼──────────┼──────────┤")
	for _, b := range baselines {
		t := res.Evaluate(sum.TotalHits, b)
		fmt.Fprintf(w, "  │ %-19s │  %5.1f%%  │ %+6.2f%-4s│ %8.2f │ %8.3f │\n",
			t.Label, t.P0*100, t.Z, sig(t.Stars), t.ChiSquare, t.CohensH)
	}
	fmt.Fprintln(w, "  └─────────────────────┴──────────┴─────────┴──────────┴──────────┘")
	fmt.Fprintln(w)

	primary := res.Evaluate(sum.TotalHits, baselines[0])
	fmt.Fprintln(w, "  Interpretation:")
	switch {
	case primary.P < 0.001 && primary.CohensH > 0.3:
		fmt.Fprintf(w, "    ▸ SIGNIFICANT overrepresentation (z=%+.1f, p<0.001, h=%.2f)\n",
			primary.Z, primary.CohensH)
		if primary.P0 > 0 {
			fmt.Fprintf(w, "    ▸ Cluster density is %.1f× the primary baseline\n",
				primary.Density/primary.P0)
		}
	case primary.P < 0.05:
		fmt.Fprintf(w, "    ▸ Marginally significant (z=%+.1f, p=%.4f)\n", primary.Z, primary.P)
	default:
		fmt.Fprintf(w, "    ▸ Not significant (z=%+.1f, p=%.4f)\n", primary.Z, primary.P)
	}

	if sum.TotalHits > 0 {
		fmt.Fprintf(w, "\n  1 in every %.1f words belongs to this semantic cluster.\n",
			float64(sum.TotalTokens)/float64(sum.TotalHits))
	}
	fmt.Fprintln(w)
}

// sig pads a significance marker with a leading space as the tables expect.
func sig(stars string) string {
	if stars == "" {
		return ""
	}
	return " " + stars
}
