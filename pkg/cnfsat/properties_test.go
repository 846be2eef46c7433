package cnfsat

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestDecideAgainstBruteForce checks that, for CNF formulas over a small
// number of variables, Decide agrees with brute-force truth-table
// satisfiability.
func TestDecideAgainstBruteForce(t *testing.T) {
	const numVars = 5

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	literalGen := gen.IntRange(1, numVars).Map(func(v int) int { return v }).SuchThat(func(v int) bool { return v != 0 })
	signedLiteralGen := gen.OneGenOf(
		literalGen,
		literalGen.Map(func(v int) int { return -v }),
	)
	clauseGen := gen.SliceOf(signedLiteralGen).SuchThat(func(lits []int) bool { return true })
	formulaGen := gen.SliceOfN(6, clauseGen)

	properties.Property("Decide agrees with brute force on small formulas", prop.ForAll(
		func(rawClauses [][]int) bool {
			f := toFormula(rawClauses)
			return Decide(f) == bruteForceSAT(f, numVars)
		},
		formulaGen,
	))

	properties.TestingRun(t)
}

func toFormula(rawClauses [][]int) Formula {
	f := make(Formula, 0, len(rawClauses))
	for _, lits := range rawClauses {
		c := make(Clause, 0, len(lits))
		seen := map[int]bool{}
		for _, l := range lits {
			if l == 0 || seen[l] {
				continue
			}
			seen[l] = true
			c = append(c, Literal(l))
		}
		f = append(f, c)
	}
	return f
}
