package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dgallion1/clusterscan/internal/analysis"
	"github.com/dgallion1/clusterscan/internal/baseline"
	"github.com/dgallion1/clusterscan/internal/config"
)

// Orchestrator manages the batch analysis pipeline.
type Orchestrator struct {
	jobs      *JobStore
	queue     chan *Job
	clusters  analysis.Clusters
	baselines []baseline.Baseline
	log       *slog.Logger
	cfg       config.Config
	timing    *analysis.RunStats

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewOrchestrator creates the pipeline. Cluster sets and baselines are loaded
// once here and shared read-only by every worker.
func NewOrchestrator(cfg config.Config, clusters analysis.Clusters, baselines []baseline.Baseline, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		jobs:      NewJobStore(cfg.JobTTL),
		queue:     make(chan *Job, cfg.MaxQueueSize),
		clusters:  clusters,
		baselines: baselines,
		log:       log,
		cfg:       cfg,
		timing:    analysis.NewRunStats(time.Hour),
	}
}

// Start launches worker goroutines.
func (o *Orchestrator) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	for i := 0; i < o.cfg.WorkerCount; i++ {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			w := NewWorker(o.clusters, o.baselines, o.cfg.DefaultWindow, o.log, o.timing)
			for {
				select {
				case <-workerCtx.Done():
					return
				case job, ok := <-o.queue:
					if !ok {
						return
					}
					w.Process(workerCtx, job)
				}
			}
		}()
	}

	// Start job store cleanup.
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				o.jobs.Cleanup()
			}
		}
	}()
}

// Stop gracefully shuts down the pipeline.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
	close(o.queue)
	o.wg.Wait()
}

// Submit queues a new job for processing.
func (o *Orchestrator) Submit(job *Job) error {
	o.jobs.Put(job)
	select {
	case o.queue <- job:
		return nil
	default:
		job.Fail("queued", "queue full")
		return fmt.Errorf("job queue is full (%d)", o.cfg.MaxQueueSize)
	}
}

// GetJob returns a job by ID, or nil.
func (o *Orchestrator) GetJob(id string) *Job {
	return o.jobs.Get(id)
}

// QueueDepth returns current queue depth.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}

// Clusters returns the shared cluster sets for synchronous handlers.
func (o *Orchestrator) Clusters() analysis.Clusters {
	return o.clusters
}

// Baselines returns the configured baselines.
func (o *Orchestrator) Baselines() []baseline.Baseline {
	return o.baselines
}

// Timing returns the rolling run-duration tracker.
func (o *Orchestrator) Timing() *analysis.RunStats {
	return o.timing
}
