// Package coloring decides 3-coloring extensibility of a partially
// pre-colored graph by reduction to CNF-SAT.
package coloring

import (
	"github.com/asimov-io/pattern-reducibility-checker/pkg/cnfsat"
)

// numColors is fixed: no arbitrary-color generalization.
const numColors = 3

// literalID returns the CNF variable id for vertex v taking color c
// (c in 1..3), using the coding x_{v,c} = 3v + c.
func literalID(v, c int) cnfsat.Literal {
	return cnfsat.Literal(3*v + c)
}

// Colorable decides whether the graph described by adjacency (a
// neighbor-list per vertex, indices 0..len(adjacency)-1) admits a proper
// 3-coloring consistent with constraints, a partial map from vertex id
// to a fixed color in {1,2,3}. Absent vertices are unconstrained.
func Colorable(adjacency [][]int, constraints map[int]int) bool {
	return cnfsat.Decide(encode(adjacency, constraints))
}

// ColorableWith is Colorable parameterized by an explicit DPLL branching
// heuristic, used by package pattern so a caller's EngineOptions.Selector
// choice reaches every CNF-SAT call the engine makes, not just the
// default one.
func ColorableWith(adjacency [][]int, constraints map[int]int, selector cnfsat.LiteralSelector) bool {
	return cnfsat.DecideWith(encode(adjacency, constraints), selector)
}

func encode(adjacency [][]int, constraints map[int]int) cnfsat.Formula {
	var f cnfsat.Formula

	for v := range adjacency {
		if fixed, ok := constraints[v]; ok {
			f = append(f, cnfsat.Clause{literalID(v, fixed)})
			for c := 1; c <= numColors; c++ {
				if c != fixed {
					f = append(f, cnfsat.Clause{-literalID(v, c)})
				}
			}
			continue
		}

		atLeastOne := make(cnfsat.Clause, 0, numColors)
		for c := 1; c <= numColors; c++ {
			atLeastOne = append(atLeastOne, literalID(v, c))
		}
		f = append(f, atLeastOne)

		for c1 := 1; c1 <= numColors; c1++ {
			for c2 := c1 + 1; c2 <= numColors; c2++ {
				f = append(f, cnfsat.Clause{-literalID(v, c1), -literalID(v, c2)})
			}
		}
	}

	for _, e := range dedupedEdges(adjacency) {
		for c := 1; c <= numColors; c++ {
			f = append(f, cnfsat.Clause{-literalID(e.u, c), -literalID(e.v, c)})
		}
	}

	return f
}

type edge struct{ u, v int }

// dedupedEdges enumerates each unordered adjacency pair exactly once.
func dedupedEdges(adjacency [][]int) []edge {
	seen := make(map[edge]bool)
	var edges []edge
	for u, neighbors := range adjacency {
		for _, v := range neighbors {
			e := edge{u, v}
			if u < v && !seen[e] {
				seen[e] = true
				edges = append(edges, e)
			}
		}
	}
	return edges
}
