package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/keyfit/core"
)

func testCheckpoint(k int) *core.Checkpoint {
	return &core.Checkpoint{
		K:        k,
		Universe: core.Universe(5),
		Frontier: []core.Frame{
			{Groups: core.Partition{core.NewGroup(0, 1)}, Placed: 2},
		},
		BestPenalty:   1.5,
		BestPartition: core.Partition{core.NewGroup(0, 1, 2), core.NewGroup(3, 4)},
		Evaluated:     42,
	}
}

func TestCheckpointRepository_SaveAndLoad(t *testing.T) {
	_, repo := newTestRepos(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveCheckpoint(ctx, testCheckpoint(2)))

	loaded, err := repo.LoadCheckpoint(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 2, loaded.K)
	assert.Equal(t, core.Universe(5), loaded.Universe)
	require.Len(t, loaded.Frontier, 1)
	assert.Equal(t, uint8(2), loaded.Frontier[0].Placed)
	assert.Equal(t, core.Penalty(1.5), loaded.BestPenalty)
	assert.Equal(t, uint64(42), loaded.Evaluated)
	assert.False(t, loaded.UpdatedAt.IsZero(), "SaveCheckpoint should stamp UpdatedAt")
}

func TestCheckpointRepository_LoadMissing(t *testing.T) {
	_, repo := newTestRepos(t)

	loaded, err := repo.LoadCheckpoint(context.Background(), 9)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestCheckpointRepository_PerKeyCount(t *testing.T) {
	_, repo := newTestRepos(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveCheckpoint(ctx, testCheckpoint(2)))
	require.NoError(t, repo.SaveCheckpoint(ctx, testCheckpoint(3)))

	loaded, err := repo.LoadCheckpoint(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 3, loaded.K)
}

func TestCheckpointRepository_Delete(t *testing.T) {
	_, repo := newTestRepos(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveCheckpoint(ctx, testCheckpoint(2)))
	require.NoError(t, repo.DeleteCheckpoint(ctx, 2))

	loaded, err := repo.LoadCheckpoint(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Deleting a missing checkpoint is not an error.
	require.NoError(t, repo.DeleteCheckpoint(ctx, 2))
}
