package solver

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/poiesic/keyfit/core"
	"github.com/poiesic/keyfit/penalty"
)

// Exhaustive finds the true minimum-penalty partition for a K by
// branch-and-bound enumeration of canonical assignments: symbols are
// placed in alphabet order, each either joining an existing group or
// opening a new one. When the penalty model decomposes per group, the
// cost of the groups built so far lower-bounds every completion and
// prunes the branch; otherwise only complete partitions are evaluated.
//
// The frontier is an explicit stack of frames rather than call-stack
// state, so it can be snapshotted to a checkpoint repository and
// resumed later without revisiting pruned branches.
type Exhaustive struct {
	model      penalty.Model
	groupModel penalty.GroupModel // nil when not decomposable
	cfg        config
}

// NewExhaustive creates an exhaustive search engine.
func NewExhaustive(model penalty.Model, opts ...Option) (*Exhaustive, error) {
	if model == nil {
		return nil, ErrModelRequired
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	e := &Exhaustive{model: model, cfg: cfg}
	if gm, ok := model.(penalty.GroupModel); ok {
		e.groupModel = gm
	}
	return e, nil
}

// Run searches for the optimal K-group partition of the universe.
//
// If the run completes naturally the result is the global optimum and
// Complete is true. If ctx is cancelled mid-search, Run returns the
// best result found so far (Complete false) together with the context
// error, after persisting the remaining frontier when a checkpoint
// repository is configured.
func (e *Exhaustive) Run(ctx context.Context, k int) (*core.SearchResult, error) {
	if err := core.ValidateKIn(e.cfg.universe, k); err != nil {
		return nil, err
	}
	best := newGlobalBest()
	e.seed(k, best)
	frontier := []core.Frame{{Groups: core.Partition{}, Placed: 0}}
	return e.search(ctx, k, frontier, best, 0)
}

// seed installs the configured initial best, if it is a valid
// K-partition satisfying the engine's constraints.
func (e *Exhaustive) seed(k int, best *globalBest) {
	p := e.cfg.seedPartition
	if p == nil {
		return
	}
	if err := core.ValidatePartitionIn(e.cfg.universe, p, k); err != nil {
		return
	}
	for _, g := range p {
		if g.Len() < e.cfg.minKeySize || e.prohibitedIn(g) {
			return
		}
		if e.cfg.maxKeySize > 0 && g.Len() > e.cfg.maxKeySize {
			return
		}
	}
	best.offer(p, e.cfg.seedPenalty)
}

// Resume continues an interrupted run from a checkpoint.
func (e *Exhaustive) Resume(ctx context.Context, cp *core.Checkpoint) (*core.SearchResult, error) {
	if cp == nil {
		return nil, ErrNilCheckpoint
	}
	if cp.Universe != e.cfg.universe {
		return nil, ErrCheckpointMismatch
	}
	if err := core.ValidateKIn(e.cfg.universe, cp.K); err != nil {
		return nil, err
	}
	best := newGlobalBest()
	e.seed(cp.K, best)
	if len(cp.BestPartition) > 0 {
		best.offer(cp.BestPartition, cp.BestPenalty)
	}
	return e.search(ctx, cp.K, cp.Frontier, best, cp.Evaluated)
}

func (e *Exhaustive) search(ctx context.Context, k int, frontier []core.Frame, best *globalBest, evaluated uint64) (*core.SearchResult, error) {
	e.cfg.monitor.Start(k, core.StrategyExhaustive)

	symbols := e.cfg.universe.Symbols()
	var evalCount atomic.Uint64
	evalCount.Store(evaluated)

	workers := e.cfg.workers
	if workers > 1 {
		// Root split: widen the frontier first so every worker gets a
		// share of the top-level search tree.
		frontier = e.widen(ctx, k, symbols, frontier, best, &evalCount, workers*8)
	}
	if workers > len(frontier) {
		workers = len(frontier)
	}

	var remaining [][]core.Frame
	if workers <= 1 {
		remaining = [][]core.Frame{e.dfs(ctx, k, symbols, frontier, best, &evalCount, true)}
	} else {
		shards := make([][]core.Frame, workers)
		for i, frame := range frontier {
			shards[i%workers] = append(shards[i%workers], frame)
		}
		remaining = make([][]core.Frame, workers)
		g := new(errgroup.Group)
		for w := range workers {
			g.Go(func() error {
				remaining[w] = e.dfs(ctx, k, symbols, shards[w], best, &evalCount, false)
				return nil
			})
		}
		g.Wait()
	}

	result := &core.SearchResult{
		K:         k,
		Strategy:  core.StrategyExhaustive,
		Penalty:   best.penalty(),
		Partition: best.partition(),
		Complete:  ctx.Err() == nil,
		Evaluated: evalCount.Load(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := ctx.Err(); err != nil {
		leftover := make([]core.Frame, 0)
		for _, frames := range remaining {
			leftover = append(leftover, frames...)
		}
		e.saveCheckpoint(k, leftover, best, evalCount.Load())
		if result.Partition == nil {
			return nil, err
		}
		e.cfg.monitor.Finish(result)
		return result, err
	}

	if e.cfg.checkpoints != nil {
		if err := e.cfg.checkpoints.DeleteCheckpoint(ctx, k); err != nil {
			e.cfg.logger.Warn("error removing finished checkpoint", "k", k, "err", err)
		}
	}
	e.cfg.monitor.Finish(result)
	return result, nil
}

// dfs drains a shard of the frontier depth-first. It returns the
// unexplored remainder, which is empty unless the context was
// cancelled.
func (e *Exhaustive) dfs(ctx context.Context, k int, symbols []core.Symbol, stack []core.Frame, best *globalBest, evalCount *atomic.Uint64, checkpointing bool) []core.Frame {
	n := len(symbols)
	var sinceCheckpoint uint64

	for len(stack) > 0 {
		if ctx.Err() != nil {
			return stack
		}

		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stack = e.expand(frame, k, symbols, n, stack, best, evalCount)

		if checkpointing && e.cfg.checkpoints != nil {
			sinceCheckpoint++
			if sinceCheckpoint >= e.cfg.checkpointEvery {
				sinceCheckpoint = 0
				e.saveCheckpoint(k, stack, best, evalCount.Load())
			}
		}
	}
	return nil
}

// expand processes one frame: evaluates it if complete, prunes it if
// its bound cannot beat the current best, or pushes its children.
// Children are pushed so that joining group 0 pops first, keeping the
// sequential search in canonical order.
func (e *Exhaustive) expand(frame core.Frame, k int, symbols []core.Symbol, n int, stack []core.Frame, best *globalBest, evalCount *atomic.Uint64) []core.Frame {
	placed := int(frame.Placed)

	if placed == n {
		if len(frame.Groups) != k {
			return stack
		}
		if e.cfg.minKeySize > 1 {
			for _, g := range frame.Groups {
				if g.Len() < e.cfg.minKeySize {
					return stack
				}
			}
		}
		pen := e.model.Penalty(frame.Groups)
		evalCount.Add(1)
		if best.offer(frame.Groups, pen) {
			e.cfg.monitor.Improved(&core.SearchResult{
				K:         k,
				Strategy:  core.StrategyExhaustive,
				Penalty:   pen,
				Partition: frame.Groups.Canonical(),
				Evaluated: evalCount.Load(),
				UpdatedAt: time.Now().UTC(),
			})
		}
		return stack
	}

	// Not enough symbols left to reach k groups.
	if len(frame.Groups)+(n-placed) < k {
		return stack
	}

	// Decomposable bound: the groups built so far only grow, so their
	// summed cost lower-bounds every completion of this branch. The
	// comparison stays strict so equal-penalty candidates survive for
	// canonical tie-breaking.
	if e.groupModel != nil && len(frame.Groups) > 0 {
		var bound core.Penalty
		for _, g := range frame.Groups {
			bound += e.groupModel.GroupPenalty(g)
		}
		if bound > best.penalty() {
			return stack
		}
	}

	s := symbols[placed]
	if len(frame.Groups) < k {
		child := frame.Groups.Clone()
		child = append(child, core.NewGroup(s))
		stack = append(stack, core.Frame{Groups: child, Placed: uint8(placed + 1)})
	}
	for i := len(frame.Groups) - 1; i >= 0; i-- {
		if e.cfg.maxKeySize > 0 && frame.Groups[i].Len() >= e.cfg.maxKeySize {
			continue
		}
		joined := frame.Groups[i].Add(s)
		if e.prohibitedIn(joined) {
			continue
		}
		child := frame.Groups.Clone()
		child[i] = joined
		stack = append(stack, core.Frame{Groups: child, Placed: uint8(placed + 1)})
	}
	return stack
}

// prohibitedIn reports whether a group contains a prohibited pair.
func (e *Exhaustive) prohibitedIn(g core.Group) bool {
	for _, pair := range e.cfg.prohibited {
		if pair.Intersect(g) == pair {
			return true
		}
	}
	return false
}

// widen expands the shallowest frames breadth-first until the frontier
// is wide enough to shard across workers.
func (e *Exhaustive) widen(ctx context.Context, k int, symbols []core.Symbol, frontier []core.Frame, best *globalBest, evalCount *atomic.Uint64, target int) []core.Frame {
	n := len(symbols)
	for len(frontier) > 0 && len(frontier) < target && ctx.Err() == nil {
		// Stop once every frame is a leaf.
		idx := -1
		for i, frame := range frontier {
			if int(frame.Placed) < n {
				idx = i
				break
			}
		}
		if idx < 0 {
			break
		}
		frame := frontier[idx]
		frontier = append(frontier[:idx], frontier[idx+1:]...)
		frontier = e.expand(frame, k, symbols, n, frontier, best, evalCount)
	}
	return frontier
}

func (e *Exhaustive) saveCheckpoint(k int, frontier []core.Frame, best *globalBest, evaluated uint64) {
	if e.cfg.checkpoints == nil {
		return
	}
	cp := &core.Checkpoint{
		K:             k,
		Universe:      e.cfg.universe,
		Frontier:      frontier,
		BestPenalty:   best.penalty(),
		BestPartition: best.partition(),
		Evaluated:     evaluated,
		UpdatedAt:     time.Now().UTC(),
	}
	// The run's context may already be cancelled; checkpoints must
	// still be written.
	if err := e.cfg.checkpoints.SaveCheckpoint(context.Background(), cp); err != nil {
		e.cfg.logger.Error("error saving search checkpoint", "k", k, "err", err)
		return
	}
	e.cfg.monitor.Checkpointed(cp)
}
