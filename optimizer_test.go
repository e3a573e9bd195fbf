package keyfit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/keyfit/core"
	"github.com/poiesic/keyfit/penalty/mock"
	"github.com/poiesic/keyfit/results"
	"github.com/poiesic/keyfit/runner"
	"github.com/poiesic/keyfit/solver"
)

func TestNewOptimizer_NilModel(t *testing.T) {
	_, err := NewOptimizer("", nil, WithInMemory())
	assert.ErrorIs(t, err, runner.ErrModelRequired)
}

func TestOptimizer_EndToEnd(t *testing.T) {
	universe := core.Universe(4)
	opt, err := NewOptimizer("", mock.OversizeModel{},
		WithInMemory(),
		WithAggregatorOptions(results.WithUniverse(universe)))
	require.NoError(t, err)
	defer opt.Close()

	run, err := opt.NewRunner(runner.WithEngineOptions(
		solver.WithUniverse(universe), solver.WithWorkers(1)))
	require.NoError(t, err)
	defer run.Release()

	err = run.Run(context.Background(), runner.Job{K: 2, Strategy: core.StrategyExhaustive})
	require.NoError(t, err)

	best, err := opt.Aggregator().Best(2)
	require.NoError(t, err)
	assert.Equal(t, core.Penalty(1), best.Penalty)
	assert.True(t, best.Complete)
}

func TestOptimizer_PersistsAcrossReopen(t *testing.T) {
	universe := core.Universe(4)
	dir := t.TempDir()
	ctx := context.Background()

	opt, err := NewOptimizer(dir, mock.OversizeModel{},
		WithAggregatorOptions(results.WithUniverse(universe)))
	require.NoError(t, err)

	run, err := opt.NewRunner(runner.WithEngineOptions(
		solver.WithUniverse(universe), solver.WithWorkers(1)))
	require.NoError(t, err)

	err = run.Run(ctx, runner.Job{K: 2, Strategy: core.StrategyExhaustive})
	require.NoError(t, err)
	run.Release()
	require.NoError(t, opt.Close())

	// Reopening loads the stored result back into the aggregator.
	reopened, err := NewOptimizer(dir, mock.OversizeModel{},
		WithAggregatorOptions(results.WithUniverse(universe)))
	require.NoError(t, err)
	defer reopened.Close()

	best, err := reopened.Aggregator().Best(2)
	require.NoError(t, err)
	assert.Equal(t, core.Penalty(1), best.Penalty)
	assert.True(t, best.Complete)
}
