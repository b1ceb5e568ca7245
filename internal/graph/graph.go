// Package graph provides the immutable directed link graph that the
// ranking estimators operate on. Nodes are document identifiers and
// edges are outbound links between documents of the same corpus.
package graph

import "sort"

// Graph is a directed link graph over string node identifiers.
// It is built once via Build and never mutated afterwards, which makes
// it safe for concurrent readers without locking.
type Graph struct {
	// out maps nodeID → set of outbound link targets (forward edges).
	out map[string]map[string]bool
	// in maps nodeID → set of nodes linking to it (backward edges).
	in map[string]map[string]bool
}

// Build constructs a Graph from a collection of (node, raw outbound
// links) pairs, as produced by the corpus crawler. Links pointing at
// identifiers outside the collection and self-links are dropped, so
// every edge target is itself a node of the graph. A node whose links
// are all dropped is kept as a sink; that is not an error.
func Build(pages map[string][]string) *Graph {
	g := &Graph{
		out: make(map[string]map[string]bool, len(pages)),
		in:  make(map[string]map[string]bool, len(pages)),
	}
	for id := range pages {
		g.out[id] = make(map[string]bool)
		g.in[id] = make(map[string]bool)
	}
	for id, links := range pages {
		for _, target := range links {
			if target == id {
				continue
			}
			// Links to documents outside the corpus are dropped.
			if _, ok := g.out[target]; !ok {
				continue
			}
			g.out[id][target] = true
			g.in[target][id] = true
		}
	}
	return g
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.out)
}

// Has reports whether id is a node of the graph.
func (g *Graph) Has(id string) bool {
	_, ok := g.out[id]
	return ok
}

// Nodes returns all node IDs sorted alphabetically. The order is
// cosmetic; no estimator depends on it for correctness, but a stable
// order keeps output and float summation deterministic.
func (g *Graph) Nodes() []string {
	ids := make([]string, 0, len(g.out))
	for id := range g.out {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// OutLinks returns the outbound link targets of id, sorted
// alphabetically. The result is a fresh slice; callers may keep it.
// An unknown id yields nil, same as a sink.
func (g *Graph) OutLinks(id string) []string {
	return sortedSet(g.out[id])
}

// OutDegree returns the number of outbound links of id.
func (g *Graph) OutDegree(id string) int {
	return len(g.out[id])
}

// Linking returns the nodes that link to id, sorted alphabetically.
func (g *Graph) Linking(id string) []string {
	return sortedSet(g.in[id])
}

// Sinks returns the nodes with no outbound links, sorted alphabetically.
func (g *Graph) Sinks() []string {
	var ids []string
	for id, targets := range g.out {
		if len(targets) == 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Edges returns the total number of edges in the graph.
func (g *Graph) Edges() int {
	n := 0
	for _, targets := range g.out {
		n += len(targets)
	}
	return n
}

// sortedSet copies the keys of a set into a sorted slice.
func sortedSet(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
