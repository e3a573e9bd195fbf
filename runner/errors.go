package runner

import "errors"

var (
	// ErrModelRequired indicates that no penalty model was provided.
	ErrModelRequired = errors.New("penalty model is required")

	// ErrAggregatorRequired indicates that no aggregator was provided.
	ErrAggregatorRequired = errors.New("aggregator is required")

	// ErrReleased indicates that the runner has been released.
	ErrReleased = errors.New("runner is released")
)
