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

import "errors"

// Domain validation errors
var (
	// ErrInvalidK indicates a key count outside the valid range for the universe.
	ErrInvalidK = errors.New("invalid key count")

	// ErrInvalidPartition indicates a Partition failed structural validation.
	ErrInvalidPartition = errors.New("invalid partition")

	// ErrEmptyGroup indicates a partition contains a group with no symbols.
	ErrEmptyGroup = errors.New("group cannot be empty")

	// ErrGroupCount indicates the number of groups does not match the target K.
	ErrGroupCount = errors.New("wrong group count")

	// ErrDuplicateSymbol indicates a symbol appears in more than one group.
	ErrDuplicateSymbol = errors.New("symbol assigned to multiple groups")

	// ErrMissingSymbol indicates a universe symbol is not covered by any group.
	ErrMissingSymbol = errors.New("symbol missing from partition")

	// ErrUnknownSymbol indicates a character outside the 27-symbol alphabet.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrInvalidStrategy indicates an unrecognized strategy name.
	ErrInvalidStrategy = errors.New("invalid strategy")

	// ErrInvalidPenalty indicates a penalty that is negative, NaN, or infinite.
	ErrInvalidPenalty = errors.New("penalty must be non-negative and finite")
)
