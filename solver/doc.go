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


// Package solver implements the search engines that explore the space
// of alphabet partitions for a target key count K.
//
// Three engines share the partition representation from core and a
// penalty model from the penalty package:
//
//   - Exhaustive: branch-and-bound enumeration over canonical
//     assignments. Guarantees the global optimum when it runs to
//     completion, and persists its frontier as a checkpoint so an
//     interrupted run can resume without revisiting pruned branches.
//   - Genetic: population-based heuristic with rank selection,
//     validity-preserving crossover with repair, neighbor mutations,
//     and optional island populations with migration.
//   - Sampler: uniform random draws, reporting only the running
//     minimum. A weak calibration baseline.
//
// All engines honor cooperative cancellation: when the context is
// cancelled they return the best result found so far together with the
// context's error.
package solver
