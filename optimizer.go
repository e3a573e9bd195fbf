// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package keyfit

import (
	"log/slog"

	"github.com/poiesic/keyfit/penalty"
	"github.com/poiesic/keyfit/results"
	"github.com/poiesic/keyfit/runner"
	"github.com/poiesic/keyfit/storage"
	"github.com/poiesic/keyfit/storage/badger"
)

// Optimizer ties together a penalty model, the result store, and the
// search machinery behind a single handle.
type Optimizer struct {
	backend        *badger.Backend
	resultRepo     storage.ResultRepository
	checkpointRepo storage.CheckpointRepository
	aggregator     *results.Aggregator
	model          penalty.Model
	logger         *slog.Logger
}

// OptimizerOption configures an Optimizer.
type OptimizerOption func(*optimizerOptions)

type optimizerOptions struct {
	inMemory       bool
	aggregatorOpts []results.Option
}

// WithInMemory opens the backing store in memory, discarding all state
// on Close. Intended for tests and one-off runs.
func WithInMemory() OptimizerOption {
	return func(o *optimizerOptions) {
		o.inMemory = true
	}
}

// WithAggregatorOptions passes options through to the result aggregator.
func WithAggregatorOptions(opts ...results.Option) OptimizerOption {
	return func(o *optimizerOptions) {
		o.aggregatorOpts = append(o.aggregatorOpts, opts...)
	}
}

// NewOptimizer opens the result store at filePath and loads previously
// aggregated results.
func NewOptimizer(filePath string, model penalty.Model, opts ...OptimizerOption) (*Optimizer, error) {
	if model == nil {
		return nil, runner.ErrModelRequired
	}
	options := &optimizerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	resultRepo, err := badger.NewResultRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	checkpointRepo := badger.NewCheckpointRepository(backend)

	aggOpts := append([]results.Option{results.WithRepository(resultRepo)}, options.aggregatorOpts...)
	aggregator, err := results.NewAggregator(aggOpts...)
	if err != nil {
		resultRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Optimizer{
		backend:        backend,
		resultRepo:     resultRepo,
		checkpointRepo: checkpointRepo,
		aggregator:     aggregator,
		model:          model,
		logger:         slog.Default(),
	}, nil
}

func (o *Optimizer) Close() error {
	if err := o.resultRepo.Close(); err != nil {
		o.logger.Error("error closing result repository", "err", err)
		return err
	}
	if err := o.backend.Close(); err != nil {
		o.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (o *Optimizer) Aggregator() *results.Aggregator {
	return o.aggregator
}

func (o *Optimizer) ResultRepository() storage.ResultRepository {
	return o.resultRepo
}

func (o *Optimizer) CheckpointRepository() storage.CheckpointRepository {
	return o.checkpointRepo
}

// NewRunner creates a runner wired to this optimizer's model,
// aggregator, and checkpoint store.
func (o *Optimizer) NewRunner(opts ...runner.Option) (*runner.Runner, error) {
	base := []runner.Option{runner.WithCheckpointRepository(o.checkpointRepo)}
	return runner.NewRunner(o.model, o.aggregator, append(base, opts...)...)
}
