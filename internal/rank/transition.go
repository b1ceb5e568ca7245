package rank

import (
	"fmt"

	"github.com/papapumpkin/surfer/internal/graph"
)

// Transition returns the random-surfer probability distribution over
// which node to visit next, given the current node.
//
// With probability damping the surfer follows one of the current node's
// outbound links, chosen uniformly; with probability 1-damping it jumps
// to a uniformly random node of the graph. A sink node (or a node the
// graph does not know) is treated as linking to every node, so no
// probability mass leaks out of the system.
//
// The returned distribution sums to 1 within floating-point tolerance
// for any damping in [0, 1] and any non-empty graph.
func Transition(g *graph.Graph, current string, damping float64) (map[string]float64, error) {
	n := g.Len()
	if n == 0 {
		return nil, fmt.Errorf("%w: transition model is undefined", ErrEmptyGraph)
	}
	if damping < 0 || damping > 1 {
		return nil, fmt.Errorf("%w: %v not in [0, 1]", ErrBadDamping, damping)
	}

	linked := g.OutLinks(current)
	if len(linked) == 0 {
		linked = g.Nodes()
	}

	base := (1 - damping) / float64(n)
	follow := damping / float64(len(linked))

	dist := make(map[string]float64, n)
	for _, id := range g.Nodes() {
		dist[id] = base
	}
	for _, id := range linked {
		dist[id] += follow
	}
	return dist, nil
}
