package pairfreq

import "errors"

var (
	// ErrInvalidTable indicates a malformed pair-penalty table.
	ErrInvalidTable = errors.New("invalid pair-penalty table")
)
