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


// Package results aggregates search results across key counts and
// strategies.
//
// The Aggregator keeps the best known result per K: submissions only
// replace an entry when they strictly improve its penalty, or match it
// while upgrading a heuristic result to a proven optimum. With a
// result repository attached, accepted entries are written through and
// prior runs are loaded on startup, so a sweep can be stopped and
// restarted without losing ground.
package results
