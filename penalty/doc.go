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


// Package penalty defines the penalty model abstraction the search
// engines optimize against.
//
// A penalty model maps a valid partition of the alphabet to a scalar
// ambiguity cost. Models are built from language-frequency corpora
// outside this module; the engines only require the Model interface
// and that it is deterministic, non-negative, and finite for every
// valid partition.
//
// # Implementation Packages
//
//   - penalty/pairfreq: table-driven model loaded from a pair-penalty CSV
//   - penalty/mock: deterministic toy models for tests
//
// # Decomposable Models
//
// Models whose total penalty is the sum of independent per-group costs
// additionally implement GroupModel. The exhaustive engine uses the
// per-group costs as lower bounds for branch-and-bound pruning. Models
// that only implement Model are still supported; the exhaustive engine
// then falls back to evaluating complete partitions only.
package penalty
