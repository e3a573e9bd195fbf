package solver

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/keyfit/core"
	"github.com/poiesic/keyfit/penalty/mock"
)

func runSampler(t *testing.T, samples int) *core.SearchResult {
	t.Helper()
	engine, err := NewSampler(mock.SizeModel{},
		WithUniverse(core.Universe(10)), WithSeed(1), WithSamples(samples))
	if err != nil {
		t.Fatal(err)
	}
	result, err := engine.Run(context.Background(), 4)
	if err != nil {
		t.Fatal(err)
	}
	return result
}

func TestSampler_ProducesValidResult(t *testing.T) {
	result := runSampler(t, 500)

	if result.Complete {
		t.Errorf("sampled result marked Complete")
	}
	if result.Strategy != core.StrategySampled {
		t.Errorf("strategy = %v, want sampled", result.Strategy)
	}
	if result.Evaluated != 500 {
		t.Errorf("Evaluated = %d, want 500", result.Evaluated)
	}
	if err := core.ValidatePartitionIn(core.Universe(10), result.Partition, 4); err != nil {
		t.Errorf("invalid partition %s: %v", result.Partition, err)
	}
}

func TestSampler_MoreSamplesNeverWorse(t *testing.T) {
	// Draws come sequentially from one seeded stream, so a larger run
	// extends a smaller one and its best can only improve.
	small := runSampler(t, 100)
	large := runSampler(t, 2000)

	if large.Penalty > small.Penalty {
		t.Errorf("2000 samples found %v, worse than 100 samples' %v",
			large.Penalty, small.Penalty)
	}
}

func TestSampler_Deterministic(t *testing.T) {
	a, b := runSampler(t, 300), runSampler(t, 300)

	if a.Penalty != b.Penalty {
		t.Errorf("penalties differ: %v vs %v", a.Penalty, b.Penalty)
	}
	if !a.Partition.Equal(b.Partition) {
		t.Errorf("partitions differ: %s vs %s", a.Partition, b.Partition)
	}
}

func TestSampler_SingletonsTrivial(t *testing.T) {
	engine, err := NewSampler(mock.SizeModel{},
		WithUniverse(core.Universe(6)), WithSeed(1), WithSamples(10))
	if err != nil {
		t.Fatal(err)
	}

	result, err := engine.Run(context.Background(), 6)
	if err != nil {
		t.Fatal(err)
	}
	if result.Penalty != 0 {
		t.Errorf("penalty = %v, want 0 for all-singleton k", result.Penalty)
	}
}

func TestSampler_NeverBeatsExhaustive(t *testing.T) {
	universe := core.Universe(7)

	exhaustive, err := NewExhaustive(mock.SizeModel{},
		WithUniverse(universe), WithWorkers(1))
	if err != nil {
		t.Fatal(err)
	}
	optimum, err := exhaustive.Run(context.Background(), 3)
	if err != nil {
		t.Fatal(err)
	}

	sampler, err := NewSampler(mock.SizeModel{},
		WithUniverse(universe), WithSeed(5), WithSamples(200))
	if err != nil {
		t.Fatal(err)
	}
	sampled, err := sampler.Run(context.Background(), 3)
	if err != nil {
		t.Fatal(err)
	}

	if sampled.Penalty < optimum.Penalty {
		t.Errorf("sampler found %v below the proven optimum %v",
			sampled.Penalty, optimum.Penalty)
	}
}

func TestSampler_InvalidK(t *testing.T) {
	engine, err := NewSampler(mock.SizeModel{}, WithUniverse(core.Universe(5)))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := engine.Run(context.Background(), 0); !errors.Is(err, core.ErrInvalidK) {
		t.Errorf("k=0: got %v, want ErrInvalidK", err)
	}
}

func TestSampler_Cancelled(t *testing.T) {
	engine, err := NewSampler(mock.SizeModel{},
		WithUniverse(core.Universe(6)), WithSamples(1000))
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := engine.Run(ctx, 3); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
