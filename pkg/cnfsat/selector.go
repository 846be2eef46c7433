package cnfsat

import "github.com/bits-and-blooms/bitset"

// LiteralSelector chooses which literal DPLL branches on next. The
// branching rule is left unspecified by the underlying decision procedure
// ("choose any literal still present"); this package keeps it pluggable so
// callers can trade branching quality for predictability, the same way a
// finite-domain solver's labeling strategy interface lets callers swap
// variable-ordering heuristics without touching the search loop itself.
type LiteralSelector interface {
	// Select returns a literal that occurs in f, or 0 if f has no literals.
	Select(f Formula) Literal

	// Name identifies the strategy for logging and debugging.
	Name() string
}

// FirstLiteralSelector picks the first literal encountered while scanning
// clauses in order. This is the default: deterministic, O(1) amortized,
// and a faithful transcription of "choose any literal still present".
type FirstLiteralSelector struct{}

// Select implements LiteralSelector.
func (FirstLiteralSelector) Select(f Formula) Literal {
	for _, c := range f {
		if len(c) > 0 {
			return c[0]
		}
	}
	return 0
}

// Name implements LiteralSelector.
func (FirstLiteralSelector) Name() string { return "first-literal" }

// MostFrequentSelector picks the variable occurring in the most clauses
// (as either polarity), branching positively first. This tends to prune
// the search tree faster than FirstLiteralSelector on denser formulas,
// the same motivation behind degree-based variable selection in
// finite-domain solvers.
type MostFrequentSelector struct{}

// Select implements LiteralSelector.
func (MostFrequentSelector) Select(f Formula) Literal {
	maxVar := 0
	for _, c := range f {
		for _, l := range c {
			if v := l.Var(); v > maxVar {
				maxVar = v
			}
		}
	}
	if maxVar == 0 {
		return 0
	}

	counts := make([]int, maxVar+1)
	positive := bitset.New(uint(maxVar + 1))
	seen := bitset.New(uint(maxVar + 1))
	for _, c := range f {
		for _, l := range c {
			v := uint(l.Var())
			seen.Set(v)
			counts[v]++
			if l > 0 {
				positive.Set(v)
			}
		}
	}

	best, bestCount := 0, -1
	for v := 1; v <= maxVar; v++ {
		if !seen.Test(uint(v)) {
			continue
		}
		if counts[v] > bestCount {
			bestCount = counts[v]
			best = v
		}
	}
	if best == 0 {
		return 0
	}
	if positive.Test(uint(best)) {
		return Literal(best)
	}
	return Literal(-best)
}

// Name implements LiteralSelector.
func (MostFrequentSelector) Name() string { return "most-frequent" }
