package core

//go:generate go run ../cmd/musgen

import (
	"fmt"
	"time"
)

// Penalty is the scalar ambiguity cost of a partition under a
// language-frequency model. Lower is better.
type Penalty float64

// MaxPenalty is worse than any penalty a model may produce.
const MaxPenalty = Penalty(1e308)

// String renders the penalty with the 𝕡 suffix, e.g. "0.024𝕡".
func (p Penalty) String() string {
	return fmt.Sprintf("%.3f\U0001D561", float64(p))
}

// Strategy identifies the engine that produced a result.
type Strategy int

const (
	// StrategyExhaustive is branch-and-bound enumeration.
	StrategyExhaustive Strategy = iota + 1
	// StrategyGenetic is the population-based heuristic search.
	StrategyGenetic
	// StrategySampled is the random-draw calibration baseline.
	StrategySampled
)

func (s Strategy) String() string {
	switch s {
	case StrategyExhaustive:
		return "exhaustive"
	case StrategyGenetic:
		return "genetic"
	case StrategySampled:
		return "sampled"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps a strategy name to its value.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "exhaustive":
		return StrategyExhaustive, nil
	case "genetic":
		return StrategyGenetic, nil
	case "sampled", "random":
		return StrategySampled, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidStrategy, name)
	}
}

// SearchResult is the outcome of one engine run: the best partition
// found for a K together with its penalty and provenance.
// Complete is true only when an exhaustive run reached natural
// completion, making the partition provably optimal for its K.
type SearchResult struct {
	K         int
	Strategy  Strategy
	Penalty   Penalty
	Partition Partition
	Complete  bool
	Evaluated uint64 // Partitions evaluated during the run
	UpdatedAt time.Time
}

// Frame is one pending branch of the exhaustive search frontier: a
// partial assignment of the first Placed universe symbols into groups.
// Frames are serializable so an interrupted search can resume without
// revisiting pruned branches.
type Frame struct {
	Groups Partition
	Placed uint8
}

// Checkpoint is a serializable snapshot of an exhaustive run for a K:
// the remaining frontier plus the best solution seen so far.
type Checkpoint struct {
	K             int
	Universe      Group
	Frontier      []Frame
	BestPenalty   Penalty
	BestPartition Partition
	Evaluated     uint64
	UpdatedAt     time.Time
}
