// Package pairfreq implements a penalty model backed by a table of
// letter-combination penalties derived from a word-frequency corpus.
//
// Each table entry maps a small set of symbols to the probability mass
// of word collisions that appear once those symbols share a key. The
// penalty of a partition is the sum, over its groups, of every table
// entry fully contained in the group. The model is decomposable per
// group and therefore supports branch-and-bound pruning.
//
// Tables are loaded from CSV with a "pairs,penalty" header, where the
// pairs column holds the entry's symbols as a run of characters
// (e.g. "ae,0.0132").
package pairfreq
