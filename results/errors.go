package results

import "errors"

var (
	// ErrNilResult indicates that a nil result was submitted.
	ErrNilResult = errors.New("nil result")

	// ErrEmptyResult indicates that a result carries no partition.
	ErrEmptyResult = errors.New("result has no partition")

	// ErrNoResults indicates that no results have been aggregated yet.
	ErrNoResults = errors.New("no results")
)
