package results

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/poiesic/keyfit/core"
	"github.com/poiesic/keyfit/storage"
)

// Aggregator tracks the best known result per key count.
//
// Submissions replace the stored entry for their K only when they
// strictly improve the penalty, or match it while upgrading a
// heuristic result to a proven optimum. All methods are safe for
// concurrent use.
type Aggregator struct {
	mu       sync.Mutex
	universe core.Group
	entries  map[int]*core.SearchResult
	repo     storage.ResultRepository
	logger   *slog.Logger
}

// Option configures an Aggregator.
type Option func(*Aggregator) error

// WithUniverse sets the symbol universe submissions are validated
// against. Default is the full 27-symbol alphabet.
func WithUniverse(universe core.Group) Option {
	return func(a *Aggregator) error {
		if universe.IsEmpty() {
			return fmt.Errorf("%w: empty universe", core.ErrInvalidPartition)
		}
		a.universe = universe
		return nil
	}
}

// WithRepository attaches a result repository: existing entries are
// loaded on construction and accepted submissions are written through.
func WithRepository(repo storage.ResultRepository) Option {
	return func(a *Aggregator) error {
		a.repo = repo
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Aggregator) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// NewAggregator creates an aggregator. With a repository attached,
// previously persisted results seed the in-memory table.
func NewAggregator(opts ...Option) (*Aggregator, error) {
	a := &Aggregator{
		universe: core.Alphabet,
		entries:  make(map[int]*core.SearchResult),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	if a.repo != nil {
		stored, err := a.repo.ListResults(context.Background())
		if err != nil {
			return nil, fmt.Errorf("loading stored results: %w", err)
		}
		for _, result := range stored {
			a.entries[result.K] = result
		}
	}
	return a, nil
}

// Submit offers a result for aggregation. Returns whether it replaced
// (or created) the entry for its K.
func (a *Aggregator) Submit(ctx context.Context, result *core.SearchResult) (bool, error) {
	if result == nil {
		return false, ErrNilResult
	}
	if result.Partition == nil {
		return false, ErrEmptyResult
	}
	if err := core.ValidateKIn(a.universe, result.K); err != nil {
		return false, err
	}
	if err := core.ValidatePartitionIn(a.universe, result.Partition, result.K); err != nil {
		return false, err
	}
	if err := core.ValidatePenalty(result.Penalty); err != nil {
		return false, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	cur, ok := a.entries[result.K]
	if ok && !accepts(cur, result) {
		if cur.Complete && result.Complete && result.Penalty != cur.Penalty {
			// Two exhaustive runs disagreeing on the optimum means the
			// penalty model changed between runs.
			a.logger.Warn("conflicting optimal results",
				"k", result.K, "stored", cur.Penalty.String(), "submitted", result.Penalty.String())
		}
		return false, nil
	}

	stored := *result
	stored.Partition = result.Partition.Canonical()
	a.entries[result.K] = &stored

	if a.repo != nil {
		if err := a.repo.SaveResult(ctx, &stored); err != nil {
			return true, fmt.Errorf("persisting result for k=%d: %w", result.K, err)
		}
	}
	return true, nil
}

// accepts reports whether the candidate should replace the current entry.
func accepts(cur, candidate *core.SearchResult) bool {
	if candidate.Penalty < cur.Penalty {
		return true
	}
	if candidate.Penalty == cur.Penalty && candidate.Complete && !cur.Complete {
		return true
	}
	return false
}

// Best returns the stored entry for a key count.
// Returns ErrNoResults if nothing has been aggregated for k.
func (a *Aggregator) Best(k int) (*core.SearchResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	result, ok := a.entries[k]
	if !ok {
		return nil, fmt.Errorf("%w for k=%d", ErrNoResults, k)
	}
	cp := *result
	return &cp, nil
}

// Results returns all stored entries ordered by K ascending.
func (a *Aggregator) Results() []*core.SearchResult {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]*core.SearchResult, 0, len(a.entries))
	for _, result := range a.entries {
		cp := *result
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].K < out[j].K })
	return out
}

// Recommendation is one row of the K-versus-penalty tradeoff table.
type Recommendation struct {
	Result *core.SearchResult

	// Bound is the best penalty achievable with at most Result.K keys
	// given everything aggregated so far. When a search for a smaller K
	// found a better layout, Bound is below Result.Penalty and
	// Suboptimal is set: the entry's own search underperformed and is
	// worth rerunning.
	Bound      core.Penalty
	Suboptimal bool
}

// Recommend returns the tradeoff table ordered by K ascending. Adding
// keys can only help, so the bound column is non-increasing as K grows;
// entries that sit above it are flagged.
func (a *Aggregator) Recommend() []Recommendation {
	entries := a.Results()
	recs := make([]Recommendation, 0, len(entries))
	bound := core.MaxPenalty
	for _, result := range entries {
		if result.Penalty < bound {
			bound = result.Penalty
		}
		recs = append(recs, Recommendation{
			Result:     result,
			Bound:      bound,
			Suboptimal: result.Penalty > bound,
		})
	}
	return recs
}
