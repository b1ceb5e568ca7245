// Package rank implements the random-surfer PageRank model: a per-node
// transition distribution, a Monte Carlo sampling estimator, and a
// deterministic fixed-point iteration. Both estimators approximate the
// stationary distribution of the same Markov chain over an immutable
// link graph.
//
// The package is pure computation. It never logs and never produces a
// partial result: every operation either succeeds with a valid Result
// or fails with an error.
package rank

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Result maps each node of a graph to its estimated rank, a probability
// in [0, 1]. Values of a valid Result sum to 1 within floating-point
// tolerance.
type Result map[string]float64

// Entry pairs a node with its rank, for ordered presentation.
type Entry struct {
	Node string
	Rank float64
}

// Sum returns the total probability mass of the result.
func (r Result) Sum() float64 {
	vals := make([]float64, 0, len(r))
	for _, v := range r {
		vals = append(vals, v)
	}
	return floats.Sum(vals)
}

// Entries returns the result as a slice sorted alphabetically by node.
// Ordering is a presentation concern; the mapping itself is unordered.
func (r Result) Entries() []Entry {
	entries := make([]Entry, 0, len(r))
	for node, rank := range r {
		entries = append(entries, Entry{Node: node, Rank: rank})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Node < entries[j].Node
	})
	return entries
}

// Top returns up to n entries sorted by rank descending, with
// alphabetical node ID as tiebreaker.
func (r Result) Top(n int) []Entry {
	entries := r.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Rank > entries[j].Rank
	})
	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}
