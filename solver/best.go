package solver

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/poiesic/keyfit/core"
)

// globalBest is the best penalty and partition seen across all workers
// of one run. The penalty lives in an atomic cell so workers can read
// the pruning bound without locking; the write path takes a mutex.
type globalBest struct {
	mu   sync.Mutex
	bits atomic.Uint64 // Float64bits of the best penalty
	part core.Partition
}

func newGlobalBest() *globalBest {
	b := &globalBest{}
	b.bits.Store(math.Float64bits(float64(core.MaxPenalty)))
	return b
}

// penalty returns the current bound without locking.
func (b *globalBest) penalty() core.Penalty {
	return core.Penalty(math.Float64frombits(b.bits.Load()))
}

// partition returns a copy of the current best partition, or nil if no
// candidate has been accepted yet.
func (b *globalBest) partition() core.Partition {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.part == nil {
		return nil
	}
	return b.part.Clone()
}

// offer installs the candidate if it is strictly better, or equal in
// penalty but lexicographically first in canonical encoding. Returns
// whether the candidate was accepted.
func (b *globalBest) offer(p core.Partition, pen core.Penalty) bool {
	if pen > b.penalty() {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	cur := core.Penalty(math.Float64frombits(b.bits.Load()))
	if pen > cur {
		return false
	}
	if pen == cur && b.part != nil && p.Compare(b.part) >= 0 {
		return false
	}
	b.part = p.Canonical()
	b.bits.Store(math.Float64bits(float64(pen)))
	return true
}
