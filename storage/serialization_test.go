package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/keyfit/core"
)

func TestMarshalUnmarshalPartition(t *testing.T) {
	tests := []struct {
		name   string
		layout string
	}{
		{"single group", "abc"},
		{"two groups", "ab,cd"},
		{"full alphabet", "akw,bn,cejq,dfx',gm,hiv,lyz,ot,pr,su"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := core.ParsePartition(tt.layout)
			require.NoError(t, err)

			data := MarshalPartition(p)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalPartition(data)
			require.NoError(t, err)
			assert.True(t, p.Equal(decoded), "decoded partition differs: %s vs %s", p, decoded)
		})
	}
}

func TestUnmarshalPartition_Invalid(t *testing.T) {
	_, err := UnmarshalPartition([]byte{})
	assert.Error(t, err)
}

func TestMarshalUnmarshalSearchResult(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	partition, err := core.ParsePartition("ab,cd,e")
	require.NoError(t, err)

	result := &core.SearchResult{
		K:         3,
		Strategy:  core.StrategyExhaustive,
		Penalty:   0.024,
		Partition: partition,
		Complete:  true,
		Evaluated: 12345,
		UpdatedAt: now,
	}

	data := MarshalSearchResult(result)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalSearchResult(data)
	require.NoError(t, err)

	assert.Equal(t, result.K, decoded.K)
	assert.Equal(t, result.Strategy, decoded.Strategy)
	assert.Equal(t, result.Penalty, decoded.Penalty)
	assert.True(t, result.Partition.Equal(decoded.Partition))
	assert.Equal(t, result.Complete, decoded.Complete)
	assert.Equal(t, result.Evaluated, decoded.Evaluated)
	assert.True(t, result.UpdatedAt.Equal(decoded.UpdatedAt))
}

func TestMarshalUnmarshalCheckpoint(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	best, err := core.ParsePartition("ab,cd,e")
	require.NoError(t, err)

	checkpoint := &core.Checkpoint{
		K:        3,
		Universe: core.Universe(5),
		Frontier: []core.Frame{
			{Groups: core.Partition{core.NewGroup(0, 1)}, Placed: 2},
			{Groups: core.Partition{core.NewGroup(0), core.NewGroup(1)}, Placed: 2},
		},
		BestPenalty:   1.5,
		BestPartition: best,
		Evaluated:     999,
		UpdatedAt:     now,
	}

	data := MarshalCheckpoint(checkpoint)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalCheckpoint(data)
	require.NoError(t, err)

	assert.Equal(t, checkpoint.K, decoded.K)
	assert.Equal(t, checkpoint.Universe, decoded.Universe)
	require.Len(t, decoded.Frontier, len(checkpoint.Frontier))
	for i, frame := range checkpoint.Frontier {
		assert.Equal(t, frame.Placed, decoded.Frontier[i].Placed)
		assert.True(t, frame.Groups.Equal(decoded.Frontier[i].Groups))
	}
	assert.Equal(t, checkpoint.BestPenalty, decoded.BestPenalty)
	assert.True(t, checkpoint.BestPartition.Equal(decoded.BestPartition))
	assert.Equal(t, checkpoint.Evaluated, decoded.Evaluated)
	assert.True(t, checkpoint.UpdatedAt.Equal(decoded.UpdatedAt))
}

func TestMarshalCheckpoint_EmptyFrontier(t *testing.T) {
	checkpoint := &core.Checkpoint{
		K:         2,
		Universe:  core.Universe(4),
		UpdatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	data := MarshalCheckpoint(checkpoint)
	decoded, err := UnmarshalCheckpoint(data)
	require.NoError(t, err)
	assert.Empty(t, decoded.Frontier)
	assert.Empty(t, decoded.BestPartition)
}
