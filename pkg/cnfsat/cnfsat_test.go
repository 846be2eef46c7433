package cnfsat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecideTrivialLaws(t *testing.T) {
	require.True(t, Decide(nil), "empty clause sequence is verum")
	require.True(t, Decide(Formula{}), "empty clause sequence is verum")
	require.False(t, Decide(Formula{Clause{}}), "a single empty clause is falsum")

	for _, l := range []Literal{1, -1, 2, -7} {
		f := Formula{Clause{l}, Clause{l.Negate()}}
		require.False(t, Decide(f), "{%d} and {%d} together are unsatisfiable", l, l.Negate())
	}
}

func TestDecideUnitPropagation(t *testing.T) {
	// {1}, {-1, 2}, {-2, 3} forces 1, 2, 3 all true: satisfiable.
	f := Formula{
		Clause{1},
		Clause{-1, 2},
		Clause{-2, 3},
	}
	require.True(t, Decide(f))

	// Adding {-3} makes it contradictory.
	f = append(f, Clause{-3})
	require.False(t, Decide(f))
}

func TestDecidePureLiteral(t *testing.T) {
	// Variable 2 only ever appears positively: always satisfiable by
	// setting x2 true, regardless of the rest.
	f := Formula{
		Clause{1, 2},
		Clause{-1, 2},
		Clause{2, 3},
	}
	require.True(t, Decide(f))
}

func TestDecideBranching(t *testing.T) {
	// (x1 ∨ x2) ∧ (¬x1 ∨ x2) ∧ (x1 ∨ ¬x2) ∧ (¬x1 ∨ ¬x2) has no model:
	// it forces x1=x2 and x1≠x2 simultaneously.
	f := Formula{
		Clause{1, 2},
		Clause{-1, 2},
		Clause{1, -2},
		Clause{-1, -2},
	}
	require.False(t, Decide(f))
}

func TestDecideWithSelectors(t *testing.T) {
	f := Formula{
		Clause{1, 2, 3},
		Clause{-1, -2},
		Clause{-2, -3},
		Clause{-1, -3},
	}
	for _, sel := range []LiteralSelector{FirstLiteralSelector{}, MostFrequentSelector{}} {
		require.True(t, DecideWith(f, sel), "selector %s", sel.Name())
	}
}

func TestFormulaCloneIndependence(t *testing.T) {
	f := Formula{Clause{1, 2}}
	clone := f.Clone()
	clone[0][0] = 99
	require.Equal(t, Literal(1), f[0][0], "mutating a clone must not affect the original")
}

// bruteForceSAT decides satisfiability by exhaustive truth-table search,
// used as an oracle to check Decide against in TestDecideAgainstBruteForce.
func bruteForceSAT(f Formula, numVars int) bool {
	if numVars == 0 {
		return !f.HasEmptyClause()
	}
	for assignment := 0; assignment < 1<<uint(numVars); assignment++ {
		if satisfiesAssignment(f, assignment) {
			return true
		}
	}
	return false
}

func satisfiesAssignment(f Formula, assignment int) bool {
	for _, c := range f {
		clauseSat := false
		for _, l := range c {
			v := l.Var() - 1
			bit := (assignment >> uint(v)) & 1
			if (l > 0 && bit == 1) || (l < 0 && bit == 0) {
				clauseSat = true
				break
			}
		}
		if !clauseSat {
			return false
		}
	}
	return true
}
