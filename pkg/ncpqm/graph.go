// Package ncpqm decides non-crossing perfect quasi-matching over plane
// pseudo-graphs whose vertices lie on a circle, by reduction to CNF-SAT.
//
// Caller obligation: vertices are non-negative integers
// conceptually placed on a circle in ascending order of value, loops lie
// inside the disk and never cross a non-incident edge, and non-loop
// edges are straight chords. This package does not validate the
// embedding; it is the upstream caller's responsibility (in this system,
// the auxiliary-graph construction in package pattern, whose vertex ids
// are a pattern's outgoing indices in their given cyclic order).
package ncpqm

import "sort"

// PseudoGraph maps each vertex to its set of neighbors. A vertex present
// in its own neighbor set denotes a self-loop.
type PseudoGraph map[int]map[int]bool

// NewPseudoGraph returns an empty pseudo-graph.
func NewPseudoGraph() PseudoGraph {
	return make(PseudoGraph)
}

// AddEdge records the unordered edge {u, v} (u == v is a loop at u),
// adding both vertices to the graph if not already present.
func (g PseudoGraph) AddEdge(u, v int) {
	g.ensure(u)
	g.ensure(v)
	g[u][v] = true
	g[v][u] = true
}

// AddVertex adds v to the graph with an empty neighbor set if not
// already present, without adding any edge. Callers that must seed a
// vertex set before knowing its edges (so that an isolated vertex still
// appears, rather than being silently absent) use this.
func (g PseudoGraph) AddVertex(v int) {
	g.ensure(v)
}

func (g PseudoGraph) ensure(v int) {
	if _, ok := g[v]; !ok {
		g[v] = make(map[int]bool)
	}
}

// Vertices returns the graph's vertex set, in ascending order.
func (g PseudoGraph) Vertices() []int {
	out := make([]int, 0, len(g))
	for v := range g {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// edgeKey canonicalizes an unordered edge with u <= v.
type edgeKey struct{ u, v int }

func canon(u, v int) edgeKey {
	if u <= v {
		return edgeKey{u, v}
	}
	return edgeKey{v, u}
}

// edges returns the canonical (deduplicated, u<=v) edge set of g.
func (g PseudoGraph) edges() []edgeKey {
	seen := make(map[edgeKey]bool)
	var out []edgeKey
	for u, neighbors := range g {
		for v := range neighbors {
			k := canon(u, v)
			if !seen[k] {
				seen[k] = true
				out = append(out, k)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].u != out[j].u {
			return out[i].u < out[j].u
		}
		return out[i].v < out[j].v
	})
	return out
}
