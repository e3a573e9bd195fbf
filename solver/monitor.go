package solver

import (
	"github.com/poiesic/keyfit/core"
)

// Monitor provides hooks to observe a search run.
// Implement this interface to track progress and intermediate bests.
type Monitor interface {
	Start(k int, strategy core.Strategy)
	Improved(result *core.SearchResult)
	Checkpointed(checkpoint *core.Checkpoint)
	Finish(result *core.SearchResult)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ int, _ core.Strategy)      {}
func (n *noopMonitor) Improved(_ *core.SearchResult)     {}
func (n *noopMonitor) Checkpointed(_ *core.Checkpoint)   {}
func (n *noopMonitor) Finish(_ *core.SearchResult)       {}
