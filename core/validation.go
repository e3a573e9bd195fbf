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


package core

import (
	"fmt"
	"math"
)

// ValidateK validates a key count against the full 27-symbol alphabet.
func ValidateK(k int) error {
	return ValidateKIn(Alphabet, k)
}

// ValidateKIn validates a key count against a universe: K must be in
// [1, size of universe].
func ValidateKIn(universe Group, k int) error {
	if k < 1 || k > universe.Len() {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidK, k, universe.Len())
	}
	return nil
}

// ValidatePartition validates a partition of the full alphabet into
// exactly k groups.
//
// Validation rules:
//   - the number of groups equals k
//   - no group is empty
//   - no symbol appears in more than one group
//   - every universe symbol appears in some group
func ValidatePartition(p Partition, k int) error {
	return ValidatePartitionIn(Alphabet, p, k)
}

// ValidatePartitionIn validates a partition of the given universe.
func ValidatePartitionIn(universe Group, p Partition, k int) error {
	if len(p) != k {
		return fmt.Errorf("%w: %w: have %d groups, want %d",
			ErrInvalidPartition, ErrGroupCount, len(p), k)
	}

	var seen Group
	for _, g := range p {
		if g.IsEmpty() {
			return fmt.Errorf("%w: %w", ErrInvalidPartition, ErrEmptyGroup)
		}
		if !g.Difference(universe).IsEmpty() {
			return fmt.Errorf("%w: %w: %s", ErrInvalidPartition, ErrUnknownSymbol,
				g.Difference(universe))
		}
		if dup := seen.Intersect(g); !dup.IsEmpty() {
			return fmt.Errorf("%w: %w: %s", ErrInvalidPartition, ErrDuplicateSymbol, dup)
		}
		seen = seen.Union(g)
	}

	if missing := universe.Difference(seen); !missing.IsEmpty() {
		return fmt.Errorf("%w: %w: %s", ErrInvalidPartition, ErrMissingSymbol, missing)
	}

	return nil
}

// ValidatePenalty checks that a model produced a well-defined penalty.
func ValidatePenalty(p Penalty) error {
	v := float64(p)
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidPenalty, v)
	}
	return nil
}
