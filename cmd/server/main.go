// Command server exposes the cluster analysis over HTTP: synchronous
// analysis of uploaded documents plus an async batch queue.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/clusterscan/internal/analysis"
	"github.com/dgallion1/clusterscan/internal/api"
	"github.com/dgallion1/clusterscan/internal/baseline"
	"github.com/dgallion1/clusterscan/internal/config"
	"github.com/dgallion1/clusterscan/internal/pipeline"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Wordlists and baselines are loaded once; a missing file is a fatal
	// configuration error, reported before anything is served.
	clusters, err := analysis.LoadClusters(cfg.VoidWordlist, cfg.PersonalityWordlist)
	if err != nil {
		log.Error("loading clusters", "error", err)
		os.Exit(1)
	}
	baselines := []baseline.Baseline{{Label: "default", P0: cfg.DefaultBaseline}}
	if cfg.BaselinesFile != "" {
		extra, err := baseline.LoadFile(cfg.BaselinesFile)
		if err != nil {
			log.Error("loading baselines", "error", err)
			os.Exit(1)
		}
		baselines = append(baselines, extra...)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize pipeline.
	orch := pipeline.NewOrchestrator(cfg, clusters, baselines, log)
	orch.Start(ctx)

	// Initialize HTTP server.
	srv := api.NewServer(orch, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting clusterscan server", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
