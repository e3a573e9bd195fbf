package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/keyfit/core"
	"github.com/poiesic/keyfit/storage"
)

// ResultRepository implements storage.ResultRepository for BadgerDB.
type ResultRepository struct {
	backend *Backend
}

var _ storage.ResultRepository = (*ResultRepository)(nil)

// NewResultRepository creates a new ResultRepository.
func NewResultRepository(backend *Backend) (*ResultRepository, error) {
	return &ResultRepository{
		backend: backend,
	}, nil
}

// Close releases resources. ResultRepository has no resources to release.
func (r *ResultRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *ResultRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// SaveResult stores the result for its key count, replacing any
// previous result for the same K.
func (r *ResultRepository) SaveResult(ctx context.Context, result *core.SearchResult) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeResultKey(result.K)
		value := storage.MarshalSearchResult(result)
		if err := tx.Set(key, value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetResult retrieves the stored result for a key count.
func (r *ResultRepository) GetResult(ctx context.Context, k int) (*core.SearchResult, error) {
	var result *core.SearchResult
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeResultKey(k))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			result, unmarshalErr = storage.UnmarshalSearchResult(val)
			return unmarshalErr
		})
	}, false)
	return result, err
}

// ListResults retrieves all stored results, ordered by K ascending.
// Zero-padded keys make badger's lexicographic iteration order the K order.
func (r *ResultRepository) ListResults(ctx context.Context) ([]*core.SearchResult, error) {
	var results []*core.SearchResult
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(resultPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var result *core.SearchResult
			err := iter.Item().Value(func(val []byte) error {
				var err error
				result, err = storage.UnmarshalSearchResult(val)
				return err
			})
			if err != nil {
				return err
			}
			if result != nil {
				results = append(results, result)
			}
		}
		return nil
	}, false)
	return results, err
}

// DeleteResult removes the result for a key count.
func (r *ResultRepository) DeleteResult(ctx context.Context, k int) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeResultKey(k)
		if _, err := tx.Get(key); err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}
