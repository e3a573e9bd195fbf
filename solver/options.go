package solver

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/poiesic/keyfit/core"
	"github.com/poiesic/keyfit/storage"
)

// config holds the tunables shared by the engines. Each engine reads
// the fields it cares about; options that only apply to one engine are
// documented as such and ignored by the others.
type config struct {
	universe        core.Group
	seed            uint64
	workers         int
	populationSize  int
	generations     int
	stagnation      int
	mutationRate    float64
	islands         int
	migrateEvery    int
	samples         int
	minKeySize      int
	maxKeySize      int // 0 means the universe size
	prohibited      []core.Group
	seedPartition   core.Partition
	seedPenalty     core.Penalty
	checkpoints     storage.CheckpointRepository
	checkpointEvery uint64
	monitor         Monitor
	logger          *slog.Logger
}

func defaultConfig() config {
	workers := runtime.NumCPU() / 2
	if workers < 1 {
		workers = 1
	}
	return config{
		universe:        core.Alphabet,
		seed:            1,
		workers:         workers,
		populationSize:  64,
		generations:     500,
		stagnation:      50,
		mutationRate:    0.3,
		islands:         1,
		migrateEvery:    20,
		samples:         10000,
		minKeySize:      1,
		checkpointEvery: 1 << 16,
		monitor:         &noopMonitor{},
		logger:          slog.Default(),
	}
}

// Option configures an engine.
type Option func(*config) error

// WithUniverse restricts the search to a reduced symbol universe.
// Default is the full 27-symbol alphabet.
func WithUniverse(universe core.Group) Option {
	return func(c *config) error {
		if universe.IsEmpty() {
			return fmt.Errorf("%w: empty universe", core.ErrInvalidPartition)
		}
		c.universe = universe
		return nil
	}
}

// WithSeed fixes the pseudo-random stream used by the genetic engine
// and the sampler, making runs reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) error {
		c.seed = seed
		return nil
	}
}

// WithWorkers sets the number of parallel workers the exhaustive
// engine splits its search tree across.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithWorkers(workers int) Option {
	return func(c *config) error {
		if workers < 1 {
			workers = 1
		}
		c.workers = workers
		return nil
	}
}

// WithPopulationSize sets the genetic engine's population size per island.
func WithPopulationSize(size int) Option {
	return func(c *config) error {
		if size < 2 {
			return fmt.Errorf("population size must be at least 2, got %d", size)
		}
		c.populationSize = size
		return nil
	}
}

// WithGenerations sets the genetic engine's generation budget.
func WithGenerations(generations int) Option {
	return func(c *config) error {
		if generations < 1 {
			return fmt.Errorf("generations must be positive, got %d", generations)
		}
		c.generations = generations
		return nil
	}
}

// WithStagnation stops a genetic run after the given number of
// generations without improvement.
func WithStagnation(generations int) Option {
	return func(c *config) error {
		if generations < 1 {
			return fmt.Errorf("stagnation must be positive, got %d", generations)
		}
		c.stagnation = generations
		return nil
	}
}

// WithMutationRate sets the per-child mutation probability of the
// genetic engine.
func WithMutationRate(rate float64) Option {
	return func(c *config) error {
		if rate < 0 || rate > 1 {
			return fmt.Errorf("mutation rate must be in [0,1], got %v", rate)
		}
		c.mutationRate = rate
		return nil
	}
}

// WithIslands runs the genetic engine as several independent
// populations with occasional migration of the best individual.
func WithIslands(islands int) Option {
	return func(c *config) error {
		if islands < 1 {
			return fmt.Errorf("islands must be positive, got %d", islands)
		}
		c.islands = islands
		return nil
	}
}

// WithMigrationInterval sets how many generations pass between
// migrations when running islands.
func WithMigrationInterval(generations int) Option {
	return func(c *config) error {
		if generations < 1 {
			return fmt.Errorf("migration interval must be positive, got %d", generations)
		}
		c.migrateEvery = generations
		return nil
	}
}

// WithSamples sets the sampler's draw count. Default is 10000.
func WithSamples(samples int) Option {
	return func(c *config) error {
		if samples < 1 {
			return fmt.Errorf("samples must be positive, got %d", samples)
		}
		c.samples = samples
		return nil
	}
}

// WithKeySizeBounds constrains every engine to groups of
// minSize..maxSize symbols. The exhaustive engine applies maxSize as a
// hard branch cut and minSize as a leaf filter; the others constrain
// random generation and repair.
func WithKeySizeBounds(minSize, maxSize int) Option {
	return func(c *config) error {
		if minSize < 1 || maxSize < minSize {
			return fmt.Errorf("%w: [%d,%d]", ErrInvalidKeySizeBounds, minSize, maxSize)
		}
		c.minKeySize = minSize
		c.maxKeySize = maxSize
		return nil
	}
}

// WithProhibitedPairs rejects partitions that place any of the given
// symbol pairs on one key.
func WithProhibitedPairs(pairs ...core.Group) Option {
	return func(c *config) error {
		for _, pair := range pairs {
			if pair.Len() != 2 {
				return fmt.Errorf("prohibited entries must be symbol pairs, got %q", pair.String())
			}
		}
		c.prohibited = append(c.prohibited, pairs...)
		return nil
	}
}

// WithInitialBest seeds the search with a known partition and its
// penalty, typically the best heuristic result for the same K. The
// exhaustive engine starts pruning against it immediately; a seed that
// violates the engine's constraints is ignored.
func WithInitialBest(p core.Partition, pen core.Penalty) Option {
	return func(c *config) error {
		if err := core.ValidatePenalty(pen); err != nil {
			return err
		}
		c.seedPartition = p.Clone()
		c.seedPenalty = pen
		return nil
	}
}

// WithCheckpointRepository enables frontier persistence for the
// exhaustive engine: periodic snapshots while running single-worker,
// and a final snapshot on cancellation in any mode.
func WithCheckpointRepository(repo storage.CheckpointRepository) Option {
	return func(c *config) error {
		c.checkpoints = repo
		return nil
	}
}

// WithCheckpointInterval sets how many frame expansions pass between
// periodic checkpoints. Default is 65536.
func WithCheckpointInterval(frames uint64) Option {
	return func(c *config) error {
		if frames == 0 {
			return fmt.Errorf("checkpoint interval must be positive")
		}
		c.checkpointEvery = frames
		return nil
	}
}

// WithMonitor sets a search monitor. Default is a no-op.
func WithMonitor(monitor Monitor) Option {
	return func(c *config) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		c.monitor = monitor
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}
