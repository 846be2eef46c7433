package pattern

import "golang.org/x/exp/slices"

// quotient owns the two lookup tables built once per pattern at
// construction and never mutated afterward: colorRepr maps every
// coloring to its color-representative, and repr maps every
// color-representative to the full representative under the joint
// action of color permutations and pattern symmetries.
type quotient struct {
	frontierLen int
	symmetries  [][]int

	colorRepr map[string]Coloring
	repr      map[string]Coloring
}

// buildQuotient enumerates all 3^k colorings of a length-k frontier and
// builds both lookup tables.
func buildQuotient(frontierLen int, symmetries [][]int) *quotient {
	q := &quotient{
		frontierLen: frontierLen,
		symmetries:  symmetries,
		colorRepr:   make(map[string]Coloring),
		repr:        make(map[string]Coloring),
	}

	perms := colorPermutations()
	all := enumerateColorings(frontierLen)

	for _, c := range all {
		q.colorRepr[c.key()] = minColoring(colorOrbit(c, perms))
	}

	for _, c := range all {
		cr := q.colorRepr[c.key()]
		if !cr.Equal(c) {
			continue // c is not its own color-representative
		}

		var orbit []Coloring
		for _, pi := range symmetries {
			permuted := c.permuteIndices(pi)
			orbit = append(orbit, q.colorRepr[permuted.key()])
		}
		q.repr[c.key()] = minColoring(orbit)
	}

	return q
}

// colorRepresentative returns the color-representative of c: the
// integer-order minimum of its orbit under the six color permutations.
func (q *quotient) colorRepresentative(c Coloring) Coloring {
	return q.colorRepr[c.key()]
}

// representative returns the representative of c: two lookups, no
// recomputation.
func (q *quotient) representative(c Coloring) Coloring {
	cr := q.colorRepr[c.key()]
	return q.repr[cr.key()]
}

// allRepresentatives returns every full representative (colorings with
// repr[c] == c), deduplicated and in ascending integer order. q.repr is
// keyed by color-representative, not by full representative, so distinct
// keys routinely map to the same full representative; a representative
// is only emitted once regardless of how many color-representatives
// collapse onto it.
func (q *quotient) allRepresentatives() []Coloring {
	seen := make(map[string]bool, len(q.repr))
	out := make([]Coloring, 0, len(q.repr))
	for _, c := range q.repr {
		key := c.key()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Coloring) int {
		switch {
		case a.Int() < b.Int():
			return -1
		case a.Int() > b.Int():
			return 1
		default:
			return 0
		}
	})
	return out
}

// colorOrbit returns {perm∘c : perm ∈ perms}.
func colorOrbit(c Coloring, perms []map[Color]Color) []Coloring {
	out := make([]Coloring, len(perms))
	for i, perm := range perms {
		out[i] = c.permuteColors(perm)
	}
	return out
}

// minColoring returns the integer-order minimum of a non-empty slice.
func minColoring(cs []Coloring) Coloring {
	best := cs[0]
	for _, c := range cs[1:] {
		if c.Less(best) {
			best = c
		}
	}
	return best
}

// enumerateColorings returns all 3^k colorings of length k in
// lexicographic (== integer) order.
func enumerateColorings(k int) []Coloring {
	if k == 0 {
		return []Coloring{{}}
	}

	total := 1
	for i := 0; i < k; i++ {
		total *= 3
	}

	out := make([]Coloring, 0, total)
	idx := make([]int, k)
	for n := 0; n < total; n++ {
		c := make(Coloring, k)
		for i, d := range idx {
			c[i] = allColors[d]
		}
		out = append(out, c)

		for i := k - 1; i >= 0; i-- {
			idx[i]++
			if idx[i] < 3 {
				break
			}
			idx[i] = 0
		}
	}
	return out
}
