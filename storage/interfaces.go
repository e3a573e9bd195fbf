package storage

import (
	"context"

	"github.com/poiesic/keyfit/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// ResultRepository persists the best search result found per key count.
type ResultRepository interface {
	Repository

	// SaveResult stores the result for its key count, replacing any
	// previous result for the same K.
	SaveResult(ctx context.Context, result *core.SearchResult) error

	// GetResult retrieves the stored result for a key count.
	// Returns ErrNotFound if no result exists for k.
	GetResult(ctx context.Context, k int) (*core.SearchResult, error)

	// ListResults retrieves all stored results, ordered by K ascending.
	ListResults(ctx context.Context) ([]*core.SearchResult, error)

	// DeleteResult removes the result for a key count.
	// Returns ErrNotFound if no result exists for k.
	DeleteResult(ctx context.Context, k int) error
}

// CheckpointRepository persists exhaustive search frontiers so that
// interrupted runs can resume.
type CheckpointRepository interface {
	// SaveCheckpoint persists the checkpoint for its key count,
	// replacing any previous checkpoint for the same K.
	SaveCheckpoint(ctx context.Context, checkpoint *core.Checkpoint) error

	// LoadCheckpoint retrieves the checkpoint for a key count.
	// Returns nil, nil if no checkpoint exists.
	LoadCheckpoint(ctx context.Context, k int) (*core.Checkpoint, error)

	// DeleteCheckpoint removes the checkpoint for a key count.
	// Removing a missing checkpoint is not an error.
	DeleteCheckpoint(ctx context.Context, k int) error
}
