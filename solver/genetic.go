package solver

import (
	"context"
	"math/rand/v2"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/keyfit/core"
	"github.com/poiesic/keyfit/penalty"
)

// Genetic evolves a population of K-group partitions toward low
// penalty. Each generation keeps an elite, breeds children by group
// interleaving crossover, and perturbs them with structural mutations
// that preserve the group count. Multiple islands evolve independently
// on a worker pool, exchanging their best individual at a fixed
// interval.
//
// The engine is a heuristic: results carry Complete=false and the best
// penalty never worsens across generations.
type Genetic struct {
	model penalty.Model
	cfg   config
}

// NewGenetic creates a genetic search engine.
func NewGenetic(model penalty.Model, opts ...Option) (*Genetic, error) {
	if model == nil {
		return nil, ErrModelRequired
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return &Genetic{model: model, cfg: cfg}, nil
}

type individual struct {
	part core.Partition
	pen  core.Penalty
}

// migrant is the shared migration slot between islands. Islands deposit
// their current best and adopt the slot's occupant when it is better.
type migrant struct {
	mu   sync.Mutex
	best *individual
}

func (m *migrant) exchange(in individual) (individual, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.best == nil || in.pen < m.best.pen {
		m.best = &individual{part: in.part.Clone(), pen: in.pen}
		return individual{}, false
	}
	return individual{part: m.best.part.Clone(), pen: m.best.pen}, true
}

// Run evolves partitions with exactly k groups and returns the best
// individual found. Cancellation stops the islands at the next
// generation boundary and returns the best so far with ctx.Err().
func (g *Genetic) Run(ctx context.Context, k int) (*core.SearchResult, error) {
	if err := core.ValidateKIn(g.cfg.universe, k); err != nil {
		return nil, err
	}
	g.cfg.monitor.Start(k, core.StrategyGenetic)

	best := newGlobalBest()
	var evalCount atomic.Uint64
	slot := &migrant{}

	islands := g.cfg.islands
	var firstErr error
	if islands <= 1 {
		firstErr = g.island(ctx, k, 0, best, &evalCount, slot)
	} else {
		pool, err := ants.NewPool(islands)
		if err != nil {
			return nil, err
		}
		defer pool.Release()

		var wg sync.WaitGroup
		errs := make([]error, islands)
		for i := range islands {
			wg.Add(1)
			submitErr := pool.Submit(func() {
				defer wg.Done()
				errs[i] = g.island(ctx, k, uint64(i), best, &evalCount, slot)
			})
			if submitErr != nil {
				wg.Done()
				errs[i] = submitErr
			}
		}
		wg.Wait()
		for _, err := range errs {
			if err != nil && err != context.Canceled && err != context.DeadlineExceeded {
				firstErr = err
				break
			}
		}
	}
	if firstErr != nil && ctx.Err() == nil {
		return nil, firstErr
	}

	g.polish(ctx, k, best, &evalCount)

	result := &core.SearchResult{
		K:         k,
		Strategy:  core.StrategyGenetic,
		Penalty:   best.penalty(),
		Partition: best.partition(),
		Complete:  false,
		Evaluated: evalCount.Load(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := ctx.Err(); err != nil {
		if result.Partition == nil {
			return nil, err
		}
		g.cfg.monitor.Finish(result)
		return result, err
	}
	g.cfg.monitor.Finish(result)
	return result, nil
}

// polish hill-climbs the evolved best over single structural edits,
// restricted to neighbors that keep k groups and satisfy the
// constraints. Runs until a full sweep finds no improvement.
func (g *Genetic) polish(ctx context.Context, k int, best *globalBest, evalCount *atomic.Uint64) {
	for ctx.Err() == nil {
		cur := best.partition()
		if cur == nil {
			return
		}
		before := best.penalty()
		for n := range Neighbors(cur) {
			if len(n) != k || !g.admissible(n) {
				continue
			}
			g.evaluate(k, n, best, evalCount)
		}
		if best.penalty() >= before {
			return
		}
	}
}

// admissible reports whether a partition satisfies the size bounds and
// prohibited pairs.
func (g *Genetic) admissible(p core.Partition) bool {
	for _, grp := range p {
		if grp.Len() < g.cfg.minKeySize {
			return false
		}
		if g.cfg.maxKeySize > 0 && grp.Len() > g.cfg.maxKeySize {
			return false
		}
	}
	return !conflicts(p, g.cfg.prohibited)
}

// island runs one full evolution loop. Islands share only the global
// best tracker and the migration slot.
func (g *Genetic) island(ctx context.Context, k int, id uint64, best *globalBest, evalCount *atomic.Uint64, slot *migrant) error {
	rng := rand.New(rand.NewPCG(g.cfg.seed, id))

	pop := make([]individual, 0, g.cfg.populationSize)
	for range g.cfg.populationSize {
		p, err := randomValidPartition(rng, g.cfg.universe, k, g.cfg.minKeySize, g.cfg.maxKeySize, g.cfg.prohibited)
		if err != nil {
			return err
		}
		pop = append(pop, g.evaluate(k, p, best, evalCount))
	}
	sortByPenalty(pop)

	elite := g.cfg.populationSize / 8
	if elite < 1 {
		elite = 1
	}

	sinceImproved := 0
	islandBest := pop[0].pen
	for gen := 1; gen <= g.cfg.generations; gen++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		next := make([]individual, 0, g.cfg.populationSize)
		next = append(next, pop[:elite]...)
		for len(next) < g.cfg.populationSize {
			a := pop[rankSelect(rng, len(pop))]
			b := pop[rankSelect(rng, len(pop))]
			child := g.crossover(rng, k, a.part, b.part)
			if rng.Float64() < g.cfg.mutationRate {
				child = g.mutate(rng, child)
			}
			if !g.admissible(child) {
				// Breeding produced a constraint violation; a fresh draw
				// keeps the generation moving.
				fresh, err := randomValidPartition(rng, g.cfg.universe, k, g.cfg.minKeySize, g.cfg.maxKeySize, g.cfg.prohibited)
				if err != nil {
					return err
				}
				child = fresh
			}
			next = append(next, g.evaluate(k, child, best, evalCount))
		}
		sortByPenalty(next)
		pop = next

		if g.cfg.islands > 1 && gen%g.cfg.migrateEvery == 0 {
			if in, ok := slot.exchange(pop[0]); ok && in.pen < pop[len(pop)-1].pen {
				pop[len(pop)-1] = in
				sortByPenalty(pop)
			}
		}

		if pop[0].pen < islandBest {
			islandBest = pop[0].pen
			sinceImproved = 0
		} else {
			sinceImproved++
			if sinceImproved >= g.cfg.stagnation {
				g.cfg.logger.Debug("island stagnated",
					"island", id, "generation", gen, "best", islandBest.String())
				return nil
			}
		}
	}
	return nil
}

func (g *Genetic) evaluate(k int, p core.Partition, best *globalBest, evalCount *atomic.Uint64) individual {
	pen := g.model.Penalty(p)
	evalCount.Add(1)
	if best.offer(p, pen) {
		g.cfg.monitor.Improved(&core.SearchResult{
			K:         k,
			Strategy:  core.StrategyGenetic,
			Penalty:   pen,
			Partition: p.Canonical(),
			Evaluated: evalCount.Load(),
			UpdatedAt: time.Now().UTC(),
		})
	}
	return individual{part: p, pen: pen}
}

func sortByPenalty(pop []individual) {
	sort.SliceStable(pop, func(i, j int) bool { return pop[i].pen < pop[j].pen })
}

// rankSelect draws two uniform indices and keeps the smaller, biasing
// selection toward the front of the sorted population.
func rankSelect(rng *rand.Rand, n int) int {
	return min(rng.IntN(n), rng.IntN(n))
}

// crossover builds a child by interleaving parent groups: groups are
// taken alternately from each parent with already-assigned symbols
// stripped, capped at k groups. Leftover symbols join existing groups,
// preferring the smallest, and seed new groups while the child is
// short.
func (g *Genetic) crossover(rng *rand.Rand, k int, a, b core.Partition) core.Partition {
	child := make(core.Partition, 0, k)
	var assigned core.Group

	parents := [2]core.Partition{a, b}
	if rng.IntN(2) == 1 {
		parents[0], parents[1] = parents[1], parents[0]
	}
	for i := 0; len(child) < k; i++ {
		p := parents[i%2]
		j := i / 2
		if j >= len(a) && j >= len(b) {
			break
		}
		if j >= len(p) {
			continue
		}
		take := p[j].Difference(assigned)
		if take.IsEmpty() {
			continue
		}
		if g.cfg.maxKeySize > 0 && take.Len() > g.cfg.maxKeySize {
			// Trim to the cap, dropping arbitrary symbols back to the
			// leftover pool.
			for _, s := range take.Symbols()[g.cfg.maxKeySize:] {
				take = take.Remove(s)
			}
		}
		child = append(child, take)
		assigned = assigned.Union(take)
	}

	leftovers := g.cfg.universe.Difference(assigned).Symbols()
	rng.Shuffle(len(leftovers), func(i, j int) {
		leftovers[i], leftovers[j] = leftovers[j], leftovers[i]
	})
	for _, s := range leftovers {
		if len(child) < k {
			child = append(child, core.NewGroup(s))
			continue
		}
		idx, size := -1, 0
		for i, grp := range child {
			if g.cfg.maxKeySize > 0 && grp.Len() >= g.cfg.maxKeySize {
				continue
			}
			if idx < 0 || grp.Len() < size {
				idx, size = i, grp.Len()
			}
		}
		if idx < 0 {
			idx = rng.IntN(len(child))
		}
		child[idx] = child[idx].Add(s)
	}

	// Splitting the largest group fills out a short child.
	for len(child) < k {
		idx := 0
		for i, grp := range child {
			if grp.Len() > child[idx].Len() {
				idx = i
			}
		}
		syms := child[idx].Symbols()
		s := syms[rng.IntN(len(syms))]
		child[idx] = child[idx].Remove(s)
		child = append(child, core.NewGroup(s))
	}
	return child
}

// mutate applies one to three random K-preserving edits: move a symbol
// between groups, or swap two symbols across groups.
func (g *Genetic) mutate(rng *rand.Rand, p core.Partition) core.Partition {
	p = p.Clone()
	for range 1 + rng.IntN(3) {
		if rng.IntN(2) == 0 {
			g.mutateMove(rng, p)
		} else {
			g.mutateSwap(rng, p)
		}
	}
	return p
}

func (g *Genetic) mutateMove(rng *rand.Rand, p core.Partition) {
	from := rng.IntN(len(p))
	to := rng.IntN(len(p))
	if from == to || p[from].Len() <= g.cfg.minKeySize {
		return
	}
	if g.cfg.maxKeySize > 0 && p[to].Len() >= g.cfg.maxKeySize {
		return
	}
	syms := p[from].Symbols()
	s := syms[rng.IntN(len(syms))]
	p[from] = p[from].Remove(s)
	p[to] = p[to].Add(s)
}

func (g *Genetic) mutateSwap(rng *rand.Rand, p core.Partition) {
	i := rng.IntN(len(p))
	j := rng.IntN(len(p))
	if i == j {
		return
	}
	is := p[i].Symbols()
	js := p[j].Symbols()
	a := is[rng.IntN(len(is))]
	b := js[rng.IntN(len(js))]
	p[i] = p[i].Remove(a).Add(b)
	p[j] = p[j].Remove(b).Add(a)
}
