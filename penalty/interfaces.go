package penalty

import "github.com/poiesic/keyfit/core"

// Model computes the ambiguity cost of a partition.
// Implementations must be pure and thread-safe: the same partition
// always yields the same penalty, and concurrent calls are allowed.
// The returned penalty must be non-negative and finite for every
// valid partition of every K.
type Model interface {
	// Penalty returns the scalar ambiguity cost of the partition.
	// Lower is better. The partition is assumed to be structurally
	// valid; models never see partial or corrupted partitions.
	Penalty(p core.Partition) core.Penalty
}

// GroupModel is implemented by models whose penalty decomposes as a
// sum of independent per-group costs.
//
// Contract, relied on by branch-and-bound pruning:
//   - Penalty(p) equals the sum of GroupPenalty(g) over the groups of p
//   - GroupPenalty is monotone under adding symbols: for g ⊆ h,
//     GroupPenalty(g) <= GroupPenalty(h)
//
// Together these make the sum of group costs of any partial assignment
// a lower bound on every completion of that assignment.
type GroupModel interface {
	Model

	// GroupPenalty returns the cost contributed by one group in
	// isolation.
	GroupPenalty(g core.Group) core.Penalty
}

// Func adapts a plain function to the Model interface.
type Func func(p core.Partition) core.Penalty

// Penalty implements Model.
func (f Func) Penalty(p core.Partition) core.Penalty {
	return f(p)
}
