package rank

import (
	"fmt"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/papapumpkin/surfer/internal/graph"
)

// SampleOptions configures the Monte Carlo sampling estimator.
type SampleOptions struct {
	Damping float64 // damping factor in (0, 1); typically 0.85
	Samples int     // number of random-walk steps; must be positive

	// Source is the pseudo-random source driving the walk. Leaving it
	// nil selects a time-seeded PCG; tests inject a fixed-seed source
	// for reproducible walks.
	Source rand.Source
}

// DefaultSampleOptions returns the conventional defaults:
// damping 0.85, 10000 samples.
func DefaultSampleOptions() SampleOptions {
	return SampleOptions{
		Damping: 0.85,
		Samples: 10000,
	}
}

// Sample estimates the stationary distribution of the random-surfer
// chain by walking it for opts.Samples steps. The walk starts on a
// uniformly random node; every step deposits 1/Samples of rank on the
// current node and then advances by a weighted draw over the transition
// distribution.
//
// The estimate is unbiased and always runs exactly opts.Samples steps;
// there is no convergence check. By construction the returned ranks sum
// to 1: each step contributes exactly 1/Samples to some node.
func Sample(g *graph.Graph, opts SampleOptions) (Result, error) {
	n := g.Len()
	if n == 0 {
		return nil, fmt.Errorf("%w: nothing to sample", ErrEmptyGraph)
	}
	if opts.Samples <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSamples, opts.Samples)
	}
	if opts.Damping <= 0 || opts.Damping >= 1 {
		return nil, fmt.Errorf("%w: %v not in (0, 1)", ErrBadDamping, opts.Damping)
	}

	src := opts.Source
	if src == nil {
		seed := uint64(time.Now().UnixNano())
		src = rand.NewPCG(seed, seed>>32)
	}
	rng := rand.New(src)

	nodes := g.Nodes()
	weights := make([]float64, len(nodes))
	increment := 1 / float64(opts.Samples)

	counts := make(Result, n)
	current := nodes[rng.IntN(len(nodes))]

	for step := 0; step < opts.Samples; step++ {
		counts[current] += increment

		dist, err := Transition(g, current, opts.Damping)
		if err != nil {
			return nil, err
		}
		for i, id := range nodes {
			weights[i] = dist[id]
		}
		next, ok := sampleuv.NewWeighted(weights, src).Take()
		if !ok {
			return nil, fmt.Errorf("weighted draw failed at step %d", step)
		}
		current = nodes[next]
	}

	// Nodes the walk never visited still belong in the result, at rank 0.
	for _, id := range nodes {
		if _, ok := counts[id]; !ok {
			counts[id] = 0
		}
	}
	return counts, nil
}
