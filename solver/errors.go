package solver

import "errors"

var (
	// ErrModelRequired is returned when a penalty model is not provided.
	ErrModelRequired = errors.New("penalty model required")

	// ErrInvalidKeySizeBounds indicates min/max key size options that can
	// never produce a valid partition for the universe and K.
	ErrInvalidKeySizeBounds = errors.New("invalid key size bounds")

	// ErrConstraintsUnsatisfied indicates that no valid random partition
	// could be generated under the configured constraints.
	ErrConstraintsUnsatisfied = errors.New("partition constraints unsatisfied")

	// ErrNilCheckpoint is returned when resuming from a nil checkpoint.
	ErrNilCheckpoint = errors.New("nil checkpoint")

	// ErrCheckpointMismatch indicates a checkpoint that does not match the
	// engine's universe or target K.
	ErrCheckpointMismatch = errors.New("checkpoint does not match search")
)
