package pipeline

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dgallion1/clusterscan/internal/analysis"
	"github.com/dgallion1/clusterscan/internal/baseline"
	"github.com/dgallion1/clusterscan/internal/parser"
)

// Worker processes one job at a time: extract text, run the analysis,
// attach the result.
type Worker struct {
	clusters  analysis.Clusters
	baselines []baseline.Baseline
	window    int
	log       *slog.Logger
	timing    *analysis.RunStats
}

func NewWorker(clusters analysis.Clusters, baselines []baseline.Baseline, window int, log *slog.Logger, timing *analysis.RunStats) *Worker {
	return &Worker{
		clusters:  clusters,
		baselines: baselines,
		window:    window,
		log:       log,
		timing:    timing,
	}
}

// Process runs a job to completion. Failures are recorded on the job, not
// returned; the pipeline keeps draining the queue.
func (w *Worker) Process(ctx context.Context, job *Job) {
	if ctx.Err() != nil {
		job.Fail("cancelled", ctx.Err().Error())
		return
	}
	start := time.Now()

	job.SetStatus(StatusExtracting, "extracting_text")
	text, err := parser.ExtractText(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		w.log.Warn("text extraction failed", "job_id", job.ID, "filename", job.Filename, "error", err)
		job.Fail("extracting_text", err.Error())
		return
	}

	job.SetStatus(StatusAnalyzing, "classifying")
	res, err := analysis.Run(text, w.clusters, w.window)
	if err != nil {
		if errors.Is(err, analysis.ErrEmptyInput) {
			job.Fail("classifying", "no tokens found in input")
		} else {
			job.Fail("classifying", err.Error())
		}
		return
	}

	job.SetResult(Summarize(res, w.baselines))
	w.timing.Record(time.Since(start).Milliseconds())
	w.log.Info("job completed",
		"job_id", job.ID,
		"filename", job.Filename,
		"tokens", res.Summary.TotalTokens,
		"hits", res.Summary.TotalHits,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
