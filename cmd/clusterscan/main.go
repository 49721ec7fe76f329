// Command clusterscan measures how strongly a semantic word cluster is
// overrepresented in text against one or more expected baseline rates.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/dgallion1/clusterscan/internal/analysis"
	"github.com/dgallion1/clusterscan/internal/baseline"
	"github.com/dgallion1/clusterscan/internal/classify"
	"github.com/dgallion1/clusterscan/internal/report"
)

var CLI struct {
	Wordlist      string   `name:"wordlist" short:"w" type:"path" help:"Cluster wordlist file (one term per line); built-in void/dissolution list if omitted."`
	Baseline      float64  `name:"baseline" short:"b" default:"0.05" help:"Expected cluster proportion for the default baseline."`
	AddBaseline   []string `name:"add-baseline" short:"B" placeholder:"LABEL:FLOAT" help:"Add a named baseline (repeatable), e.g. rock:0.02."`
	BaselinesFile string   `name:"baselines-file" type:"path" help:"YAML file of named baselines."`
	Quiet         bool     `name:"quiet" short:"q" help:"Machine-readable output: hits, total, density, one z per baseline."`
	Files         []string `arg:"" optional:"" help:"Input files in order; stdin if none."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("clusterscan"),
		kong.Description("Semantic cluster frequency analyzer. Reads from stdin if no files given."),
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
	baselines := []baseline.Baseline{{Label: "default", P0: CLI.Baseline}}
	if CLI.BaselinesFile != "" {
		extra, err := baseline.LoadFile(CLI.BaselinesFile)
		if err != nil {
			return err
		}
		baselines = append(baselines, extra...)
	}
	for _, spec := range CLI.AddBaseline {
		b, err := baseline.ParseSpec(spec)
		if err != nil {
			return err
		}
		baselines = append(baselines, b)
	}

	clusters, err := analysis.LoadClusters(CLI.Wordlist, "")
	if err != nil {
		return err
	}

	text, err := analysis.ReadSources(CLI.Files, os.Stdin)
	if err != nil {
		return err
	}

	res, err := analysis.Run(text, clusters, classify.DefaultWindow)
	if err != nil {
		return err
	}

	if CLI.Quiet {
		report.WriteScanTSV(os.Stdout, res, baselines)
	} else {
		report.WriteScanReport(os.Stdout, res, baselines)
	}
	return nil
}
