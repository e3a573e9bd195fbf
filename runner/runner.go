package runner

import (
	"context"
	"log/slog"
	"runtime"
	"slices"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/keyfit/core"
	"github.com/poiesic/keyfit/penalty"
	"github.com/poiesic/keyfit/results"
	"github.com/poiesic/keyfit/solver"
	"github.com/poiesic/keyfit/storage"
)

// Job pairs a key count with a search strategy.
type Job struct {
	K        int
	Strategy core.Strategy
}

// Sweep builds jobs for every K in [from, to] with the same strategy.
func Sweep(from, to int, strategy core.Strategy) []Job {
	if to < from {
		from, to = to, from
	}
	jobs := make([]Job, 0, to-from+1)
	for k := from; k <= to; k++ {
		jobs = append(jobs, Job{K: k, Strategy: strategy})
	}
	return jobs
}

// Runner executes search jobs concurrently and submits their results,
// including partial results from cancelled runs, to an aggregator.
type Runner struct {
	model       penalty.Model
	aggregator  *results.Aggregator
	pool        *ants.Pool
	checkpoints storage.CheckpointRepository
	engineOpts  []solver.Option
	logger      *slog.Logger
	released    bool
	mu          sync.Mutex
}

// Option configures a Runner.
type Option func(*Runner) error

// WithPoolSize sets the worker pool size for concurrent jobs.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(r *Runner) error {
		if size < 1 {
			size = 1
		}
		if r.pool != nil {
			r.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		r.pool = pool
		return nil
	}
}

// WithEngineOptions passes options through to every engine the runner
// constructs.
func WithEngineOptions(opts ...solver.Option) Option {
	return func(r *Runner) error {
		r.engineOpts = append(r.engineOpts, opts...)
		return nil
	}
}

// WithCheckpointRepository enables checkpointing for exhaustive jobs:
// interrupted frontiers are persisted and resumed on the next run of
// the same K.
func WithCheckpointRepository(repo storage.CheckpointRepository) Option {
	return func(r *Runner) error {
		r.checkpoints = repo
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRunner creates a runner feeding the given aggregator.
func NewRunner(model penalty.Model, aggregator *results.Aggregator, opts ...Option) (*Runner, error) {
	if model == nil {
		return nil, ErrModelRequired
	}
	if aggregator == nil {
		return nil, ErrAggregatorRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		model:      model,
		aggregator: aggregator,
		pool:       pool,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if optErr := opt(r); optErr != nil {
			r.Release()
			return nil, optErr
		}
	}
	return r, nil
}

// Run executes the jobs on the worker pool and blocks until all have
// finished. Job failures are logged and collected; the first one is
// returned after every job has run. Cancelled jobs still submit their
// partial results.
func (r *Runner) Run(ctx context.Context, jobs ...Job) error {
	r.mu.Lock()
	if r.released {
		r.mu.Unlock()
		return ErrReleased
	}
	pool := r.pool
	r.mu.Unlock()

	var wg sync.WaitGroup
	errs := make([]error, len(jobs))
	for i, job := range jobs {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			errs[i] = r.run(ctx, job)
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = submitErr
		}
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil && err != context.Canceled && err != context.DeadlineExceeded {
			r.logger.Error("search job failed",
				"k", jobs[i].K, "strategy", jobs[i].Strategy.String(), "err", err)
			return err
		}
	}
	return ctx.Err()
}

// run executes one job and submits its result.
func (r *Runner) run(ctx context.Context, job Job) error {
	r.logger.Info("starting search", "k", job.K, "strategy", job.Strategy.String())

	result, err := r.search(ctx, job)
	if result != nil {
		accepted, submitErr := r.aggregator.Submit(ctx, result)
		if submitErr != nil {
			return submitErr
		}
		r.logger.Info("search finished",
			"k", job.K, "strategy", job.Strategy.String(),
			"penalty", result.Penalty.String(), "complete", result.Complete,
			"accepted", accepted)
	}
	return err
}

func (r *Runner) search(ctx context.Context, job Job) (*core.SearchResult, error) {
	// Jobs run concurrently; never append into the shared slice.
	opts := slices.Clone(r.engineOpts)
	switch job.Strategy {
	case core.StrategyExhaustive:
		if r.checkpoints != nil {
			opts = append(opts, solver.WithCheckpointRepository(r.checkpoints))
		}
		// A previously aggregated result for this K, heuristic or not,
		// is an upper bound the search can prune against from the start.
		if cur, err := r.aggregator.Best(job.K); err == nil {
			opts = append(opts, solver.WithInitialBest(cur.Partition, cur.Penalty))
		}
		engine, err := solver.NewExhaustive(r.model, opts...)
		if err != nil {
			return nil, err
		}
		if r.checkpoints != nil {
			cp, err := r.checkpoints.LoadCheckpoint(ctx, job.K)
			if err != nil {
				return nil, err
			}
			if cp != nil {
				r.logger.Info("resuming from checkpoint",
					"k", job.K, "frontier", len(cp.Frontier), "evaluated", cp.Evaluated)
				return engine.Resume(ctx, cp)
			}
		}
		return engine.Run(ctx, job.K)
	case core.StrategyGenetic:
		engine, err := solver.NewGenetic(r.model, opts...)
		if err != nil {
			return nil, err
		}
		return engine.Run(ctx, job.K)
	case core.StrategySampled:
		engine, err := solver.NewSampler(r.model, opts...)
		if err != nil {
			return nil, err
		}
		return engine.Run(ctx, job.K)
	default:
		return nil, core.ErrInvalidStrategy
	}
}

// Release releases the worker pool.
// The runner should not be used after calling Release.
func (r *Runner) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return
	}
	r.released = true
	if r.pool != nil {
		r.pool.Release()
	}
}
