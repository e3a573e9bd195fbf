package solver

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/poiesic/keyfit/core"
	"github.com/poiesic/keyfit/penalty"
)

// Sampler evaluates uniformly drawn random partitions and keeps the
// best. It serves as a cheap baseline: any search engine worth running
// should beat the best of ten thousand random draws.
type Sampler struct {
	model penalty.Model
	cfg   config
}

// NewSampler creates a random-sampling engine.
func NewSampler(model penalty.Model, opts ...Option) (*Sampler, error) {
	if model == nil {
		return nil, ErrModelRequired
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return &Sampler{model: model, cfg: cfg}, nil
}

// Run draws the configured number of partitions with exactly k groups
// and returns the best one seen. Draws are sequential from a seeded
// stream, so a larger sample count with the same seed extends a smaller
// one and can only improve the result.
func (s *Sampler) Run(ctx context.Context, k int) (*core.SearchResult, error) {
	if err := core.ValidateKIn(s.cfg.universe, k); err != nil {
		return nil, err
	}
	s.cfg.monitor.Start(k, core.StrategySampled)

	rng := rand.New(rand.NewPCG(s.cfg.seed, 0))
	best := newGlobalBest()
	var evaluated uint64

	for range s.cfg.samples {
		if ctx.Err() != nil {
			break
		}
		p, err := randomValidPartition(rng, s.cfg.universe, k, s.cfg.minKeySize, s.cfg.maxKeySize, s.cfg.prohibited)
		if err != nil {
			return nil, err
		}
		pen := s.model.Penalty(p)
		evaluated++
		if best.offer(p, pen) {
			s.cfg.monitor.Improved(&core.SearchResult{
				K:         k,
				Strategy:  core.StrategySampled,
				Penalty:   pen,
				Partition: p.Canonical(),
				Evaluated: evaluated,
				UpdatedAt: time.Now().UTC(),
			})
		}
	}

	result := &core.SearchResult{
		K:         k,
		Strategy:  core.StrategySampled,
		Penalty:   best.penalty(),
		Partition: best.partition(),
		Complete:  false,
		Evaluated: evaluated,
		UpdatedAt: time.Now().UTC(),
	}
	if err := ctx.Err(); err != nil {
		if result.Partition == nil {
			return nil, err
		}
		s.cfg.monitor.Finish(result)
		return result, err
	}
	s.cfg.monitor.Finish(result)
	return result, nil
}
