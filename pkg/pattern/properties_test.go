package pattern

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

const testFrontierLen = 4

// testSymmetries returns the cyclic group C4 generated by the rotation
// [1,2,3,0], closed under composition: representative(c) invariance
// under an arbitrary applied symmetry only holds when the symmetry set
// is actually a group, not an arbitrary sample of permutations.
func testSymmetries() [][]int {
	return [][]int{
		{0, 1, 2, 3},
		{1, 2, 3, 0},
		{2, 3, 0, 1},
		{3, 0, 1, 2},
	}
}

func coloringGen(k int) gopter.Gen {
	return gen.SliceOfN(k, gen.OneConstOf(ColorOne, ColorTwo, ColorThree)).Map(func(cs []Color) Coloring {
		return Coloring(cs)
	})
}

func TestQuotientColorRepresentativeIdempotent(t *testing.T) {
	q := buildQuotient(testFrontierLen, testSymmetries())

	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("color_repr(color_repr(c)) == color_repr(c)", prop.ForAll(
		func(c Coloring) bool {
			cr := q.colorRepresentative(c)
			return q.colorRepresentative(cr).Equal(cr)
		},
		coloringGen(testFrontierLen),
	))

	properties.TestingRun(t)
}

func TestQuotientRepresentativeIdempotent(t *testing.T) {
	q := buildQuotient(testFrontierLen, testSymmetries())

	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("representative(representative(c)) == representative(c)", prop.ForAll(
		func(c Coloring) bool {
			r := q.representative(c)
			return q.representative(r).Equal(r)
		},
		coloringGen(testFrontierLen),
	))

	properties.TestingRun(t)
}

func TestQuotientEquivariance(t *testing.T) {
	symmetries := testSymmetries()
	q := buildQuotient(testFrontierLen, symmetries)
	perms := colorPermutations()

	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("representative(sigma . c . pi) == representative(c)", prop.ForAll(
		func(c Coloring) bool {
			base := q.representative(c)
			for _, perm := range perms {
				for _, pi := range symmetries {
					transformed := c.permuteIndices(pi).permuteColors(perm)
					if !q.representative(transformed).Equal(base) {
						return false
					}
				}
			}
			return true
		},
		coloringGen(testFrontierLen),
	))

	properties.TestingRun(t)
}

// TestRankMonotonicity runs the fixed point on a known-reducible pattern
// and checks that every representative's rank set at construction is
// unchanged after the fixed point, and that every representative ends
// with a finite rank. The witness auxiliary graphs are not inspected.
func TestRankMonotonicity(t *testing.T) {
	pr, err := NewPatternReducibility(
		[][]int{{1}, {0, 2, 3}, {1, 3}, {1, 2, 4}, {3}},
		[]int{0, 2, 4},
		[][]int{{0, 1, 2}, {2, 1, 0}},
		nil,
	)
	require.NoError(t, err)

	snapshot := make(map[string]RankRecord)
	for _, c := range pr.quot.allRepresentatives() {
		snapshot[c.key()] = pr.ranks.get(c)
	}

	require.True(t, pr.IsPatternReducible(false))

	for _, c := range pr.quot.allRepresentatives() {
		before := snapshot[c.key()]
		after := pr.ranks.get(c)
		if before.Rank != RankUnknown {
			require.Equal(t, before.Rank, after.Rank, "rank must never decrease or change once known")
		}
		require.NotEqual(t, RankUnknown, after.Rank, "fixed point claims reducible, every representative must have a finite rank")
	}
}
