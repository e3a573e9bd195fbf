package solver

import (
	"fmt"
	"math/rand/v2"

	"github.com/poiesic/keyfit/core"
)

// RandomPartition returns a structurally valid random partition of the
// universe into exactly k groups. Uniformity over all set-partitions is
// approximated by sequential random assignment: a shuffled prefix of k
// symbols seeds the groups, the remaining symbols join groups drawn
// uniformly.
func RandomPartition(rng *rand.Rand, universe core.Group, k int) (core.Partition, error) {
	return randomPartition(rng, universe, k, 1, universe.Len())
}

func randomPartition(rng *rand.Rand, universe core.Group, k, minSize, maxSize int) (core.Partition, error) {
	if err := core.ValidateKIn(universe, k); err != nil {
		return nil, err
	}
	n := universe.Len()
	if minSize < 1 || maxSize < minSize || k*minSize > n || k*maxSize < n {
		return nil, fmt.Errorf("%w: sizes [%d,%d] for %d symbols on %d keys",
			ErrInvalidKeySizeBounds, minSize, maxSize, n, k)
	}

	symbols := universe.Symbols()
	rng.Shuffle(len(symbols), func(i, j int) {
		symbols[i], symbols[j] = symbols[j], symbols[i]
	})

	// Deal the minimum size to every group, then scatter the rest over
	// groups that still have capacity.
	p := make(core.Partition, k)
	next := 0
	for i := range p {
		for range minSize {
			p[i] = p[i].Add(symbols[next])
			next++
		}
	}
	for _, s := range symbols[next:] {
		open := make([]int, 0, k)
		for i, g := range p {
			if g.Len() < maxSize {
				open = append(open, i)
			}
		}
		i := open[rng.IntN(len(open))]
		p[i] = p[i].Add(s)
	}
	return p, nil
}

// conflicts reports whether any prohibited symbol pair shares a group.
func conflicts(p core.Partition, prohibited []core.Group) bool {
	for _, pair := range prohibited {
		for _, g := range p {
			if pair.Intersect(g) == pair {
				return true
			}
		}
	}
	return false
}

const randomAttempts = 1000

// randomValidPartition draws random partitions until one avoids all
// prohibited pairs, giving up after a fixed number of attempts.
// A maxSize of 0 means unbounded, per the engine config default.
func randomValidPartition(rng *rand.Rand, universe core.Group, k, minSize, maxSize int, prohibited []core.Group) (core.Partition, error) {
	if maxSize == 0 {
		maxSize = universe.Len()
	}
	for range randomAttempts {
		p, err := randomPartition(rng, universe, k, minSize, maxSize)
		if err != nil {
			return nil, err
		}
		if !conflicts(p, prohibited) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: no partition avoiding %d prohibited pairs after %d attempts",
		ErrConstraintsUnsatisfied, len(prohibited), randomAttempts)
}
