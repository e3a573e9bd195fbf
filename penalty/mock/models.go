package mock

import (
	"github.com/poiesic/keyfit/core"
	"github.com/poiesic/keyfit/penalty"
)

// OversizeModel penalizes each group holding more than one symbol by 1.
// For K keys over n symbols the optimum is 0 when K == n (all
// singletons) and 1 otherwise: pack every surplus symbol onto a single
// key.
type OversizeModel struct{}

var _ penalty.GroupModel = OversizeModel{}

// GroupPenalty returns 1 for a group with more than one symbol.
func (OversizeModel) GroupPenalty(g core.Group) core.Penalty {
	if g.Len() > 1 {
		return 1
	}
	return 0
}

// Penalty counts the groups with more than one symbol.
func (m OversizeModel) Penalty(p core.Partition) core.Penalty {
	var total core.Penalty
	for _, g := range p {
		total += m.GroupPenalty(g)
	}
	return total
}

// SizeModel scores each group (size-1)^2. Splitting any group strictly
// reduces the penalty, so the model is refinement-monotone, and the
// optimum for a given K is the most balanced partition.
type SizeModel struct{}

var _ penalty.GroupModel = SizeModel{}

// GroupPenalty returns (size-1)^2.
func (SizeModel) GroupPenalty(g core.Group) core.Penalty {
	d := core.Penalty(g.Len() - 1)
	return d * d
}

// Penalty sums the per-group costs.
func (m SizeModel) Penalty(p core.Partition) core.Penalty {
	var total core.Penalty
	for _, g := range p {
		total += m.GroupPenalty(g)
	}
	return total
}

// TableModel looks up penalties by partition fingerprint.
// Partitions absent from the table get Default.
type TableModel struct {
	Default core.Penalty
	Values  map[core.ID]core.Penalty
}

var _ penalty.Model = (*TableModel)(nil)

// Penalty returns the table value for the partition's fingerprint.
func (m *TableModel) Penalty(p core.Partition) core.Penalty {
	if v, ok := m.Values[p.Fingerprint()]; ok {
		return v
	}
	return m.Default
}
