package ncpqm

import (
	"github.com/asimov-io/pattern-reducibility-checker/pkg/cnfsat"
)

// Matchable decides whether g admits a non-crossing perfect
// quasi-matching: a selection of edges (loops allowed) such that every
// vertex is covered by exactly one selected edge/loop and no two
// selected edges cross.
func Matchable(g PseudoGraph) bool {
	return cnfsat.Decide(encode(g))
}

// MatchableWith is Matchable parameterized by an explicit DPLL branching
// heuristic, used by package pattern so a caller's EngineOptions.Selector
// choice reaches every CNF-SAT call the engine makes.
func MatchableWith(g PseudoGraph, selector cnfsat.LiteralSelector) bool {
	return cnfsat.DecideWith(encode(g), selector)
}

// variableTable assigns a unique positive CNF literal id to every
// canonical edge, using B·u + v + 1 with B = max_vertex + 1 (the +1 keeps
// the loop at vertex 0 off the invalid literal 0).
type variableTable struct {
	ids map[edgeKey]cnfsat.Literal
}

func newVariableTable(g PseudoGraph) *variableTable {
	maxVertex := 0
	for v := range g {
		if v > maxVertex {
			maxVertex = v
		}
	}
	base := maxVertex + 1

	vt := &variableTable{ids: make(map[edgeKey]cnfsat.Literal)}
	for _, e := range g.edges() {
		vt.ids[e] = cnfsat.Literal(base*e.u + e.v + 1)
	}
	return vt
}

// incident returns the canonical edges touching u, counting a loop at u
// once.
func incident(g PseudoGraph, u int) []edgeKey {
	var out []edgeKey
	for v := range g[u] {
		out = append(out, canon(u, v))
	}
	return out
}

func encode(g PseudoGraph) cnfsat.Formula {
	vt := newVariableTable(g)
	var f cnfsat.Formula

	for _, u := range g.Vertices() {
		inc := incident(g, u)

		// Quasi-matching: at most one incidence per vertex. Emit over
		// every ordered pair of distinct neighbors; the resulting
		// duplication across endpoints and orderings is harmless.
		for _, e1 := range inc {
			for _, e2 := range inc {
				if e1 == e2 {
					continue
				}
				f = append(f, cnfsat.Clause{-vt.ids[e1], -vt.ids[e2]})
			}
		}

		// Perfect: cover every vertex. An isolated vertex yields the
		// empty clause here, correctly forcing unsatisfiability.
		atLeastOne := make(cnfsat.Clause, 0, len(inc))
		for _, e := range inc {
			atLeastOne = append(atLeastOne, vt.ids[e])
		}
		f = append(f, atLeastOne)
	}

	// Non-crossing: for every ordered pair of edges (e1, e2) that cross.
	edges := g.edges()
	for _, e1 := range edges {
		for _, e2 := range edges {
			if cross(e1, e2) {
				f = append(f, cnfsat.Clause{-vt.ids[e1], -vt.ids[e2]})
			}
		}
	}

	return f
}
