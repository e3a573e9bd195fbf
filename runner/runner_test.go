package runner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/keyfit/core"
	"github.com/poiesic/keyfit/penalty/mock"
	"github.com/poiesic/keyfit/results"
	"github.com/poiesic/keyfit/solver"
	"github.com/poiesic/keyfit/storage/badger"
)

func newTestRunner(t *testing.T, universe core.Group, opts ...Option) (*Runner, *results.Aggregator) {
	t.Helper()
	agg, err := results.NewAggregator(results.WithUniverse(universe))
	require.NoError(t, err)

	opts = append([]Option{
		WithEngineOptions(solver.WithUniverse(universe), solver.WithWorkers(1)),
	}, opts...)
	run, err := NewRunner(mock.OversizeModel{}, agg, opts...)
	require.NoError(t, err)
	t.Cleanup(run.Release)
	return run, agg
}

func TestSweep(t *testing.T) {
	jobs := Sweep(2, 5, core.StrategyGenetic)
	require.Len(t, jobs, 4)
	assert.Equal(t, Job{K: 2, Strategy: core.StrategyGenetic}, jobs[0])
	assert.Equal(t, Job{K: 5, Strategy: core.StrategyGenetic}, jobs[3])

	// Reversed bounds are tolerated.
	assert.Len(t, Sweep(5, 2, core.StrategyGenetic), 4)
}

func TestRunner_ExhaustiveJob(t *testing.T) {
	universe := core.Universe(4)
	run, agg := newTestRunner(t, universe)

	err := run.Run(context.Background(), Job{K: 2, Strategy: core.StrategyExhaustive})
	require.NoError(t, err)

	// Four symbols on two keys: one key must double up somewhere, and
	// packing all surplus on a single key costs exactly 1.
	best, err := agg.Best(2)
	require.NoError(t, err)
	assert.Equal(t, core.Penalty(1), best.Penalty)
	assert.True(t, best.Complete)
	assert.Equal(t, core.StrategyExhaustive, best.Strategy)
}

func TestRunner_SweepFillsAggregator(t *testing.T) {
	universe := core.Universe(4)
	run, agg := newTestRunner(t, universe)

	err := run.Run(context.Background(), Sweep(1, 4, core.StrategyExhaustive)...)
	require.NoError(t, err)

	all := agg.Results()
	require.Len(t, all, 4)
	assert.Equal(t, core.Penalty(1), all[0].Penalty) // one key holds everything
	assert.Equal(t, core.Penalty(0), all[3].Penalty) // all singletons
	for _, result := range all {
		assert.True(t, result.Complete, "exhaustive run for k=%d not complete", result.K)
	}
}

func TestRunner_ExhaustiveUpgradesHeuristicResult(t *testing.T) {
	universe := core.Universe(4)
	run, agg := newTestRunner(t, universe)

	// A prior heuristic run already found the optimum; the exhaustive
	// run starts from it as a bound and proves it.
	partition, err := core.ParsePartition("a,bcd")
	require.NoError(t, err)
	_, err = agg.Submit(context.Background(), &core.SearchResult{
		K: 2, Strategy: core.StrategyGenetic, Penalty: 1, Partition: partition,
	})
	require.NoError(t, err)

	err = run.Run(context.Background(), Job{K: 2, Strategy: core.StrategyExhaustive})
	require.NoError(t, err)

	best, err := agg.Best(2)
	require.NoError(t, err)
	assert.True(t, best.Complete)
	assert.Equal(t, core.Penalty(1), best.Penalty)
	assert.Equal(t, core.StrategyExhaustive, best.Strategy)
}

func TestRunner_SampledJob(t *testing.T) {
	universe := core.Universe(5)
	run, agg := newTestRunner(t, universe,
		WithEngineOptions(solver.WithSeed(1), solver.WithSamples(200)))

	err := run.Run(context.Background(), Job{K: 3, Strategy: core.StrategySampled})
	require.NoError(t, err)

	best, err := agg.Best(3)
	require.NoError(t, err)
	assert.False(t, best.Complete)
	assert.Equal(t, core.StrategySampled, best.Strategy)
}

func TestRunner_InvalidStrategy(t *testing.T) {
	run, _ := newTestRunner(t, core.Universe(4))

	err := run.Run(context.Background(), Job{K: 2, Strategy: core.Strategy(99)})
	assert.ErrorIs(t, err, core.ErrInvalidStrategy)
}

func TestRunner_ResumesFromCheckpoint(t *testing.T) {
	universe := core.Universe(5)
	_, checkpoints, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	run, agg := newTestRunner(t, universe, WithCheckpointRepository(checkpoints))

	// A cancelled run leaves a checkpoint and no aggregated result.
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	err = run.Run(cancelled, Job{K: 2, Strategy: core.StrategyExhaustive})
	assert.ErrorIs(t, err, context.Canceled)

	cp, err := checkpoints.LoadCheckpoint(context.Background(), 2)
	require.NoError(t, err)
	require.NotNil(t, cp)

	// The next run picks the frontier back up and completes.
	err = run.Run(context.Background(), Job{K: 2, Strategy: core.StrategyExhaustive})
	require.NoError(t, err)

	best, err := agg.Best(2)
	require.NoError(t, err)
	assert.True(t, best.Complete)
	assert.Equal(t, core.Penalty(1), best.Penalty)
}

func TestRunner_Released(t *testing.T) {
	run, _ := newTestRunner(t, core.Universe(4))
	run.Release()

	err := run.Run(context.Background(), Job{K: 2, Strategy: core.StrategyExhaustive})
	assert.ErrorIs(t, err, ErrReleased)
}

func TestNewRunner_Validation(t *testing.T) {
	agg, err := results.NewAggregator()
	require.NoError(t, err)

	_, err = NewRunner(nil, agg)
	assert.ErrorIs(t, err, ErrModelRequired)

	_, err = NewRunner(mock.OversizeModel{}, nil)
	assert.ErrorIs(t, err, ErrAggregatorRequired)
}
