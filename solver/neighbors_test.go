package solver

import (
	"testing"

	"github.com/poiesic/keyfit/core"
)

func mustPartition(t *testing.T, layout string) core.Partition {
	t.Helper()
	p, err := core.ParsePartition(layout)
	if err != nil {
		t.Fatalf("ParsePartition(%q) unexpected error: %v", layout, err)
	}
	return p
}

func TestNeighbors_Counts(t *testing.T) {
	p := mustPartition(t, "ab,c")

	var moves, merges, splits int
	for n := range Neighbors(p) {
		switch len(n) {
		case len(p):
			moves++
		case len(p) - 1:
			merges++
		case len(p) + 1:
			splits++
		default:
			t.Fatalf("neighbor with %d groups from %d-group partition", len(n), len(p))
		}
	}

	// a and b can each move to {c}; one merge; a and b can each split off.
	if moves != 2 {
		t.Errorf("moves = %d, want 2", moves)
	}
	if merges != 1 {
		t.Errorf("merges = %d, want 1", merges)
	}
	if splits != 2 {
		t.Errorf("splits = %d, want 2", splits)
	}
}

func TestNeighbors_Valid(t *testing.T) {
	universe := core.Universe(6)
	p := mustPartition(t, "abc,de,f")

	for n := range Neighbors(p) {
		if err := core.ValidatePartitionIn(universe, n, len(n)); err != nil {
			t.Errorf("invalid neighbor %s: %v", n, err)
		}
	}
}

func TestNeighbors_SingletonOnly(t *testing.T) {
	// A pair of singletons has no moves or splits, just the one merge.
	p := mustPartition(t, "a,b")

	count := 0
	for n := range Neighbors(p) {
		count++
		if len(n) != 1 {
			t.Errorf("neighbor %s has %d groups, want 1", n, len(n))
		}
	}
	if count != 1 {
		t.Errorf("neighbor count = %d, want 1", count)
	}
}

func TestNeighbors_EarlyStop(t *testing.T) {
	p := mustPartition(t, "abc,de,f")

	count := 0
	for range Neighbors(p) {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("stopped after %d neighbors, want 3", count)
	}
}
