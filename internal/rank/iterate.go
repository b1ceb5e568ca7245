package rank

import (
	"fmt"
	"math"

	"github.com/papapumpkin/surfer/internal/graph"
)

// IterateOptions configures the fixed-point iteration estimator.
type IterateOptions struct {
	Damping       float64 // damping factor in (0, 1); typically 0.85
	Tolerance     float64 // per-node convergence threshold
	MaxIterations int     // upper bound on iterations before giving up
}

// DefaultIterateOptions returns the conventional defaults:
// damping 0.85, tolerance 0.001, cap of 10000 iterations.
func DefaultIterateOptions() IterateOptions {
	return IterateOptions{
		Damping:       0.85,
		Tolerance:     0.001,
		MaxIterations: 10000,
	}
}

// Iterate computes the stationary distribution of the random-surfer
// chain by synchronous fixed-point refinement. Every node starts at
// 1/N; each pass recomputes all ranks from the previous pass:
//
//	new[p] = (1-d)/N + d * (Σ rank[q]/outdeg(q) + sinkMass/N)
//
// where the sum ranges over nodes q linking to p and sinkMass is the
// total rank held by nodes without outbound links. Redistributing sink
// mass uniformly matches the transition model's treatment of sinks and
// keeps the total at exactly 1 on every pass.
//
// Iteration stops once every node moved by less than opts.Tolerance.
// If opts.MaxIterations passes go by without that happening, Iterate
// fails with ErrNoConvergence. The computation involves no randomness:
// rerunning it on the same inputs reproduces the same result bit for
// bit.
func Iterate(g *graph.Graph, opts IterateOptions) (Result, error) {
	n := g.Len()
	if n == 0 {
		return nil, fmt.Errorf("%w: nothing to rank", ErrEmptyGraph)
	}
	if opts.Damping <= 0 || opts.Damping >= 1 {
		return nil, fmt.Errorf("%w: %v not in (0, 1)", ErrBadDamping, opts.Damping)
	}
	if opts.Tolerance <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrBadTolerance, opts.Tolerance)
	}
	if opts.MaxIterations <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadIterationCap, opts.MaxIterations)
	}

	nf := float64(n)
	base := (1 - opts.Damping) / nf

	// Sorted node order keeps float summation deterministic across runs.
	nodes := g.Nodes()
	sinks := g.Sinks()

	// The link structure is fixed for the whole computation; resolve the
	// reverse edges and out-degrees once instead of every pass.
	linking := make(map[string][]string, n)
	outDegree := make(map[string]float64, n)
	for _, id := range nodes {
		linking[id] = g.Linking(id)
		outDegree[id] = float64(g.OutDegree(id))
	}

	rank := make(Result, n)
	for _, id := range nodes {
		rank[id] = 1 / nf
	}

	for iter := 0; iter < opts.MaxIterations; iter++ {
		var sinkMass float64
		for _, id := range sinks {
			sinkMass += rank[id]
		}

		next := make(Result, n)
		maxDelta := 0.0
		for _, p := range nodes {
			var sum float64
			for _, q := range linking[p] {
				sum += rank[q] / outDegree[q]
			}
			next[p] = base + opts.Damping*(sum+sinkMass/nf)

			if delta := math.Abs(next[p] - rank[p]); delta > maxDelta {
				maxDelta = delta
			}
		}

		rank = next
		if maxDelta < opts.Tolerance {
			return rank, nil
		}
	}
	return nil, fmt.Errorf("%w after %d iterations", ErrNoConvergence, opts.MaxIterations)
}
