package pattern

import "github.com/asimov-io/pattern-reducibility-checker/pkg/ncpqm"

// swap returns c with the positions in T (|T| ∈ {1,2}) having their
// color toggled between i and j. Positions outside T are untouched; by
// the vertex restriction in buildAuxiliaryGraph, every position named in
// T already holds i or j.
func swap(c Coloring, i, j Color, positions ...int) Coloring {
	out := c.Clone()
	for _, t := range positions {
		switch out[t] {
		case i:
			out[t] = j
		case j:
			out[t] = i
		}
	}
	return out
}

// buildAuxiliaryGraph constructs a plane pseudo-graph whose vertices are
// the frontier positions colored i or j, and an edge
// (possibly a loop) u—v is added whenever the single- or double-position
// Kempe swap at {u,v} yields a coloring whose representative is not yet
// known reducible below rank r.
func (pr *PatternReducibility) buildAuxiliaryGraph(c Coloring, r int, i, j Color) ncpqm.PseudoGraph {
	g := ncpqm.NewPseudoGraph()

	var vertices []int
	for t, color := range c {
		if color == i || color == j {
			vertices = append(vertices, t)
		}
	}

	// Seed every vertex before adding any edge, so a position whose swaps
	// all land on already-known-below-r representatives still appears in
	// g with an empty neighbor set rather than being silently dropped.
	for _, t := range vertices {
		g.AddVertex(t)
	}

	for _, u := range vertices {
		for _, v := range vertices {
			var swapped Coloring
			if u == v {
				swapped = swap(c, i, j, u)
			} else {
				swapped = swap(c, i, j, u, v)
			}

			rep := pr.quot.representative(swapped)
			if !pr.ranks.isKnownBelow(rep, r) {
				g.AddEdge(u, v)
			}
		}
	}

	return g
}
