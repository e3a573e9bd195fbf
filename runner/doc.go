// Package runner schedules search jobs across key counts and
// strategies on a worker pool and feeds their results into the
// aggregator.
//
// Each job pairs a K with a strategy. Jobs run concurrently, partial
// results from cancelled runs are still submitted, and exhaustive jobs
// resume from a stored checkpoint when one exists.
package runner
