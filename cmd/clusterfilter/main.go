// Command clusterfilter classifies void-cluster hits by their surrounding
// register: hits near personality markers are expected stylistic behavior,
// the rest are the residual signal, and residual hits inside technical prose
// are flagged anomalous.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/dgallion1/clusterscan/internal/analysis"
	"github.com/dgallion1/clusterscan/internal/baseline"
	"github.com/dgallion1/clusterscan/internal/report"
)

var CLI struct {
	Window          int      `name:"window" short:"w" default:"15" help:"Co-occurrence window radius in tokens (clamped to 1-100)."`
	VoidList        string   `name:"void-list" short:"v" type:"path" help:"Custom void-cluster wordlist; built-in list if omitted."`
	PersonalityList string   `name:"personality-list" short:"p" type:"path" help:"Custom personality-marker wordlist; built-in list if omitted."`
	Baseline        float64  `name:"baseline" short:"b" default:"0.03" help:"Baseline void proportion."`
	Quiet           bool     `name:"quiet" short:"q" help:"Machine-readable output: raw pers resid anom total z_raw z_resid z_anom."`
	Debug           bool     `name:"debug" short:"d" help:"Print each void hit with its context window."`
	Sections        bool     `name:"sections" short:"s" help:"Per-paragraph breakdown."`
	Files           []string `arg:"" optional:"" help:"Input files in order; stdin if none."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("clusterfilter"),
		kong.Description("Separates void/dissolution language into register-expected and residual components. Reads from stdin if no files given."),
		kong.UsageOnError(),
	)

	if err := run(); err != nil {
		if errors.Is(err, analysis.ErrEmptyInput) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		ctx.FatalIfErrorf(err)
	}
}

func run() error {
	clusters, err := analysis.LoadClusters(CLI.VoidList, CLI.PersonalityList)
	if err != nil {
		return err
	}

	text, err := analysis.ReadSources(CLI.Files, os.Stdin)
	if err != nil {
		return err
	}

	res, err := analysis.Run(text, clusters, CLI.Window)
	if err != nil {
		return err
	}

	b := baseline.Baseline{Label: "default", P0: CLI.Baseline}
	if CLI.Quiet {
		report.WriteFilterTSV(os.Stdout, res, b)
		return nil
	}
	report.WriteFilterReport(os.Stdout, res, b, report.FilterOptions{
		Debug:    CLI.Debug,
		Sections: CLI.Sections,
	})
	return nil
}
