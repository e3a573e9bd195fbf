package solver

import (
	"iter"

	"github.com/poiesic/keyfit/core"
)

// Neighbors yields the partitions reachable from p by one structural
// edit, lazily:
//
//   - move one symbol to a different existing group (K preserved; the
//     source group must keep at least one symbol)
//   - merge two groups (K-1)
//   - split one symbol off a multi-symbol group (K+1)
//
// Yielded partitions are freshly allocated and structurally valid, but
// not canonicalized.
func Neighbors(p core.Partition) iter.Seq[core.Partition] {
	return func(yield func(core.Partition) bool) {
		// Moves
		for i, g := range p {
			if g.Len() < 2 {
				continue
			}
			for _, s := range g.Symbols() {
				for j := range p {
					if j == i {
						continue
					}
					child := p.Clone()
					child[i] = child[i].Remove(s)
					child[j] = child[j].Add(s)
					if !yield(child) {
						return
					}
				}
			}
		}

		// Merges
		for i := range p {
			for j := i + 1; j < len(p); j++ {
				child := make(core.Partition, 0, len(p)-1)
				for idx, g := range p {
					switch idx {
					case i:
						child = append(child, g.Union(p[j]))
					case j:
						// dropped
					default:
						child = append(child, g)
					}
				}
				if !yield(child) {
					return
				}
			}
		}

		// Splits
		for i, g := range p {
			if g.Len() < 2 {
				continue
			}
			for _, s := range g.Symbols() {
				child := p.Clone()
				child[i] = child[i].Remove(s)
				child = append(child, core.NewGroup(s))
				if !yield(child) {
					return
				}
			}
		}
	}
}
