package report

import (
	"fmt"
	"io"

	"github.com/dgallion1/clusterscan/internal/analysis"
	"github.com/dgallion1/clusterscan/internal/baseline"
	"github.com/dgallion1/clusterscan/internal/classify"
)

const (
	maxDebugHits   = 100
	debugContext   = 5
	maxSectionRows = 200
)

// FilterOptions selects the optional sections of the co-occurrence report.
type FilterOptions struct {
	Debug    bool // per-hit listing with context windows
	Sections bool // per-paragraph breakdown table
}

// WriteFilterTSV emits the co-occurrence classifier's machine-readable line:
// raw, personality, residual, anomalous, total tokens, then z-scores for the
// raw, residual, and anomalous counts. Residual excludes anomalous.
func WriteFilterTSV(w io.Writer, res *analysis.Result, b baseline.Baseline) {
	sum := res.Summary
	zRaw := res.Evaluate(sum.TotalHits, b).Z
	zResid := res.Evaluate(sum.ResidualHits, b).Z
	zAnom := res.Evaluate(sum.AnomalousHits, b).Z
	fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%.2f\t%.2f\t%.2f\n",
		sum.TotalHits, sum.PersonalityHits, sum.ResidualHits, sum.AnomalousHits,
		sum.TotalTokens, zRaw, zResid, zAnom)
}

// WriteFilterReport renders the co-occurrence classifier's full report.
func WriteFilterReport(w io.Writer, res *analysis.Result, b baseline.Baseline, opts FilterOptions) {
	sum := res.Summary
	total := float64(sum.TotalTokens)

	fmt.Fprintln(w, "╔══════════════════════════════════════════════════════════════════╗")
	fmt.Fprintln(w, "║          REGISTER-CONTROLLED VOID-CLUSTER ANALYSIS               ║")
	fmt.Fprintln(w, "╚══════════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  Total tokens:              %d\n", sum.TotalTokens)
	fmt.Fprintf(w, "  Paragraphs:                %d\n", len(sum.Paragraphs))
	fmt.Fprintf(w, "  Personality markers:       %d (%.1f%%)\n",
		sum.PersonalityMarkers, 100*float64(sum.PersonalityMarkers)/total)
	fmt.Fprintf(w, "  Technical markers:         %d (%.1f%%)\n",
		sum.TechnicalMarkers, 100*float64(sum.TechnicalMarkers)/total)
	fmt.Fprintf(w, "  Co-occurrence window:      ±%d tokens\n\n", res.Window)

	fmt.Fprintln(w, "  ┌──────────────────────────┬───────┬──────────┬─────────────────┐")
	fmt.Fprintln(w, "  │ Void Category            │ Count │ Density  │ Classification  │")
	fmt.Fprintln(w, "  ├──────────────────────────┼───────┼──────────┼─────────────────┤")
	fmt.Fprintf(w, "  │ Total void hits          │ %5d │ %6.2f%%  │                 │\n",
		sum.TotalHits, 100*float64(sum.TotalHits)/total)
	fmt.Fprintf(w, "  │   Personality-context [P]│ %5d │ %6.2f%%  │ Expected style  │\n",
		sum.PersonalityHits, 100*float64(sum.PersonalityHits)/total)
	fmt.Fprintf(w, "  │   Residual [R]           │ %5d │ %6.2f%%  │ Neutral context │\n",
		sum.ResidualHits, 100*float64(sum.ResidualHits)/total)
	fmt.Fprintf(w, "  │   Anomalous [A]          │ %5d │ %6.2f%%  │ Tech + no pers  │\n",
		sum.AnomalousHits, 100*float64(sum.AnomalousHits)/total)
	fmt.Fprintln(w, "  └──────────────────────────┴───────┴──────────┴─────────────────┘")
	fmt.Fprintln(w)

	if sum.TotalHits > 0 {
		hits := float64(sum.TotalHits)
		fmt.Fprintf(w, "  Personality attribution:   %.0f%% of void hits explained by register\n",
			100*float64(sum.PersonalityHits)/hits)
		fmt.Fprintf(w, "  Unexplained signal:        %.0f%% of void hits without personality context\n",
			100*float64(sum.Unexplained())/hits)
		fmt.Fprintf(w, "  Anomalous signal:          %.0f%% of void hits in technical context\n",
			100*float64(sum.AnomalousHits)/hits)
	} else {
		fmt.Fprintln(w, "  Personality attribution:   0% of void hits explained by register")
		fmt.Fprintln(w, "  Unexplained signal:        0% of void hits without personality context")
		fmt.Fprintln(w, "  Anomalous signal:          0% of void hits in technical context")
	}
	fmt.Fprintln(w)

	raw := res.Evaluate(sum.TotalHits, b)
	resid := res.Evaluate(sum.ResidualHits, b)
	anom := res.Evaluate(sum.AnomalousHits, b)

	fmt.Fprintln(w, "  ┌──────────────────────┬──────────┬─────────┬──────────┬──────────┐")
	fmt.Fprintln(w, "  │ Test                 │ Baseline │ Z-score │ p-value  │ Cohen's h│")
	fmt.Fprintln(w, "  ├──────────────────────┼──────────┼─────────┼──────────┼──────────┤")
	fmt.Fprintf(w, "  │ Raw void vs baseline │  %5.1f%%  │ %+6.2f%-4s│ %8.4f │ %8.3f │\n",
		b.P0*100, raw.Z, sig(raw.Stars), raw.P, raw.CohensH)
	fmt.Fprintf(w, "  │ Residual vs baseline │  %5.1f%%  │ %+6.2f%-4s│ %8.4f │ %8.3f │\n",
		b.P0*100, resid.Z, sig(resid.Stars), resid.P, resid.CohensH)
	fmt.Fprintf(w, "  │ Anomalous vs baseline│  %5.1f%%  │ %+6.2f%-4s│ %8.4f │ %8.3f │\n",
		b.P0*100, anom.Z, sig(anom.Stars), anom.P, anom.CohensH)
	fmt.Fprintln(w, "  └──────────────────────┴──────────┴─────────┴──────────┴──────────┘")
	fmt.Fprintln(w)

	writeInterpretation(w, sum, resid, anom)

	if opts.Debug && len(res.Hits) > 0 {
		writeDebugListing(w, res)
	}
	if opts.Sections && len(sum.Paragraphs) > 0 {
		writeSections(w, sum)
	}
	fmt.Fprintln(w)
}

func writeInterpretation(w io.Writer, sum classify.Summary, resid, anom analysis.Test) {
	fmt.Fprintln(w, "  ╭─────────────────────────────────────────────────────────────╮")
	fmt.Fprintln(w, "  │ INTERPRETATION                                              │")
	fmt.Fprintln(w, "  ├─────────────────────────────────────────────────────────────┤")
	switch {
	case sum.TotalHits == 0:
		fmt.Fprintln(w, "  │ No void-cluster language detected. Corpus is clean.         │")
	case sum.Unexplained() == 0:
		fmt.Fprintln(w, "  │ All void language explained by personality markers.         │")
		fmt.Fprintln(w, "  │ No anomalous signal. Register fully accounts for it.        │")
	case resid.P > 0.05:
		fmt.Fprintln(w, "  │ Residual void density is within baseline expectations.      │")
		fmt.Fprintln(w, "  │ Register explains most void language. No anomaly.           │")
	case resid.P > 0.001:
		fmt.Fprintln(w, "  │ ⚠ Marginally elevated residual void density.                │")
		fmt.Fprintln(w, "  │ Some void language appears outside personality context.     │")
		fmt.Fprintln(w, "  │ Recommend: inspect individual hits (use --debug).           │")
	default:
		fmt.Fprintln(w, "  │ ⚠⚠ SIGNIFICANTLY elevated residual void density.            │")
		fmt.Fprintln(w, "  │ Void language appears in neutral/technical context at       │")
		fmt.Fprintln(w, "  │ rates exceeding baseline even after register control.       │")
		fmt.Fprintln(w, "  │ This warrants detailed investigation.                       │")
	}
	if sum.AnomalousHits > 0 && anom.P < 0.05 {
		fmt.Fprintln(w, "  │                                                             │")
		fmt.Fprintf(w, "  │ ⚠ TECH-CONTEXT ANOMALY: %d void hits in technical           │\n",
			sum.AnomalousHits)
		fmt.Fprintln(w, "  │ passages with no personality markers nearby. These are      │")
		fmt.Fprintln(w, "  │ the highest-priority items for manual review.               │")
	}
	fmt.Fprintln(w, "  ╰─────────────────────────────────────────────────────────────╯")
}

func writeDebugListing(w io.Writer, res *analysis.Result) {
	hits := res.Hits
	tokens := res.Stream.Tokens

	fmt.Fprintf(w, "\n  ── VOID HIT DETAILS (%d hits) ─────────────────────────────\n\n", len(hits))
	shown := len(hits)
	if shown > maxDebugHits {
		shown = maxDebugHits
	}
	for _, h := range hits[:shown] {
		t := tokens[h.TokenIndex]
		fmt.Fprintf(w, "  [%c] %q @ token %d (byte %d, para %d)\n",
			byte(h.Class), t.Word, h.TokenIndex, t.Offset, t.Paragraph)

		lo := h.TokenIndex - debugContext
		if lo < 0 {
			lo = 0
		}
		hi := h.TokenIndex + debugContext
		if hi > len(tokens)-1 {
			hi = len(tokens) - 1
		}
		fmt.Fprint(w, "      context: ")
		for j := lo; j <= hi; j++ {
			switch {
			case j == h.TokenIndex:
				fmt.Fprintf(w, "[%s] ", tokens[j].Word)
			case res.Marks.Personality[j]:
				fmt.Fprintf(w, "(%s) ", tokens[j].Word)
			default:
				fmt.Fprintf(w, "%s ", tokens[j].Word)
			}
		}
		fmt.Fprintln(w)

		if h.Personality > 0 {
			fmt.Fprintf(w, "      personality markers in window: %d\n", h.Personality)
		}
		if h.Technical > 0 {
			fmt.Fprintf(w, "      technical markers in window: %d\n", h.Technical)
		}
		fmt.Fprintln(w)
	}
	if rest := len(hits) - shown; rest > 0 {
		fmt.Fprintf(w, "  ... %d more hits (showing first %d)\n", rest, maxDebugHits)
	}
}

func writeSections(w io.Writer, sum classify.Summary) {
	fmt.Fprintf(w, "\n  ── PER-SECTION BREAKDOWN (%d sections) ────────────────────\n\n",
		len(sum.Paragraphs))
	fmt.Fprintln(w, "  ┌──────┬────────┬───────┬──────┬───────┬──────┬──────┬─────────┐")
	fmt.Fprintln(w, "  │ §    │ Tokens │ Void  │ Pers │ Resid │ Anom │ Tech │ Void%   │")
	fmt.Fprintln(w, "  ├──────┼────────┼───────┼──────┼───────┼──────┼──────┼─────────┤")

	for i, ps := range sum.Paragraphs {
		if i >= maxSectionRows {
			break
		}
		if ps.Len() == 0 {
			continue
		}
		vd := 100 * float64(ps.VoidHits) / float64(ps.Len())
		flag := "  "
		if ps.Unexplained() > 0 && ps.TechnicalMarkers > 0 {
			flag = "⚠ "
		} else if ps.Unexplained() > 0 {
			flag = "? "
		}
		fmt.Fprintf(w, "  │ %4d │ %6d │ %5d │ %4d │ %5d │ %4d │ %4d │ %5.1f%% %s│\n",
			i+1, ps.Len(), ps.VoidHits, ps.PersonalityVoid, ps.ResidualVoid,
			ps.AnomalousVoid, ps.TechnicalMarkers, vd, flag)
	}
	fmt.Fprintln(w, "  └──────┴────────┴───────┴──────┴───────┴──────┴──────┴─────────┘")
	fmt.Fprintln(w, "  Legend: ⚠ = unexplained void in technical section, ? = unexplained void")
}
