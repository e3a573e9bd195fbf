// Package mock provides deterministic toy penalty models for tests.
//
// The models are cheap, pure, and have known optima, which makes engine
// behavior easy to assert:
//
//   - OversizeModel: counts groups holding more than one symbol
//   - SizeModel: sum of (group size - 1)^2, strictly favors balanced
//     splits and refinements
//   - TableModel: explicit fingerprint→penalty lookup with a default
//
// OversizeModel and SizeModel decompose per group and are monotone
// under adding symbols, so they also exercise branch-and-bound pruning.
package mock
