package pattern

import "fmt"

// Color is a frontier color: a proper sum type rather than an
// interface{}-carrying value plus a magic sentinel. Unset only ever
// appears as an input-constraint sentinel, never inside a Coloring.
type Color int

const (
	// Unset is the sentinel used only as an input-constraint marker; it
	// never appears inside a Coloring tuple.
	Unset Color = iota
	ColorOne
	ColorTwo
	ColorThree
)

// allColors lists the three real colors in ascending projection order.
var allColors = [3]Color{ColorOne, ColorTwo, ColorThree}

// Int returns the integer projection used for display and ordering:
// Unset↦0, ColorOne↦1, ColorTwo↦2, ColorThree↦3.
func (c Color) Int() int { return int(c) }

// String renders the color's integer projection.
func (c Color) String() string {
	return fmt.Sprintf("%d", c.Int())
}

// otherTwo returns the two colors distinct from c, in ascending order.
// Requires c to be one of the three real colors.
func otherTwo(c Color) (Color, Color) {
	var out []Color
	for _, x := range allColors {
		if x != c {
			out = append(out, x)
		}
	}
	return out[0], out[1]
}

// Coloring is an ordered tuple of k real colors assigned to a frontier.
// The zero value is not a valid coloring (its entries are Unset);
// colorings are always constructed at a known length.
type Coloring []Color

// Clone returns an independent copy of c.
func (c Coloring) Clone() Coloring {
	out := make(Coloring, len(c))
	copy(out, c)
	return out
}

// Equal reports whether c and other have identical entries.
func (c Coloring) Equal(other Coloring) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// key returns a comparable representation of c suitable for use as a map
// key (Coloring, being a slice, cannot be used directly).
func (c Coloring) key() string {
	b := make([]byte, len(c))
	for i, x := range c {
		b[i] = byte('0' + x.Int())
	}
	return string(b)
}

// Int returns the canonical "integer ordering" projection: the sequence
// of projections read as a base-10 number.
func (c Coloring) Int() int64 {
	var n int64
	for _, x := range c {
		n = n*10 + int64(x.Int())
	}
	return n
}

// Less compares two colorings under the integer ordering, the canonical
// tie-break for "lexicographically minimal".
func (c Coloring) Less(other Coloring) bool {
	return c.Int() < other.Int()
}

// isConstant reports whether every entry of c equals color.
func (c Coloring) isConstant(color Color) bool {
	for _, x := range c {
		if x != color {
			return false
		}
	}
	return true
}

// permuteColors returns a new coloring with every entry c[i] replaced by
// perm(c[i]), where perm is a color permutation (a bijection of
// {ColorOne,ColorTwo,ColorThree}).
func (c Coloring) permuteColors(perm map[Color]Color) Coloring {
	out := make(Coloring, len(c))
	for i, x := range c {
		out[i] = perm[x]
	}
	return out
}

// permuteIndices returns a new coloring with c∘π: position i holds
// c[π[i]] — a symmetry is applied to the index positions first, before
// any color permutation.
func (c Coloring) permuteIndices(pi []int) Coloring {
	out := make(Coloring, len(pi))
	for i, src := range pi {
		out[i] = c[src]
	}
	return out
}

// colorPermutations returns all six bijections of {ColorOne,ColorTwo,ColorThree}.
func colorPermutations() []map[Color]Color {
	perms := make([]map[Color]Color, 0, 6)
	base := []Color{ColorOne, ColorTwo, ColorThree}
	permuteSlice(base, func(p []Color) {
		m := map[Color]Color{
			ColorOne:   p[0],
			ColorTwo:   p[1],
			ColorThree: p[2],
		}
		perms = append(perms, m)
	})
	return perms
}

// permuteSlice invokes visit once for every permutation of xs (Heap's
// algorithm), passing each as a fresh copy. xs is permuted in place and is
// not restored to its original order on return.
func permuteSlice(xs []Color, visit func([]Color)) {
	n := len(xs)
	c := make([]int, n)
	visit(append([]Color(nil), xs...))
	i := 0
	for i < n {
		if c[i] < i {
			if i%2 == 0 {
				xs[0], xs[i] = xs[i], xs[0]
			} else {
				xs[c[i]], xs[i] = xs[i], xs[c[i]]
			}
			visit(append([]Color(nil), xs...))
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}
}
