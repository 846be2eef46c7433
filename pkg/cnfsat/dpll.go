package cnfsat

import "github.com/bits-and-blooms/bitset"

// DefaultSelector is used by Decide when no selector is supplied.
var DefaultSelector LiteralSelector = FirstLiteralSelector{}

// Decide reports whether f is satisfiable. It is total on any well-formed
// formula (clauses of non-zero, duplicate-free signed integer literals):
// there is no failure semantics beyond the boolean result.
//
// The algorithm is DPLL: unit propagation and pure-literal elimination
// are applied to exhaustion before every branch; branching delegates
// literal choice to DefaultSelector.
func Decide(f Formula) bool {
	return decideWith(f, DefaultSelector)
}

// DecideWith is Decide parameterized by an explicit LiteralSelector, for
// callers that want a specific branching heuristic (e.g. for benchmarking
// or reproducing a particular search order in a test).
func DecideWith(f Formula, selector LiteralSelector) bool {
	return decideWith(f, selector)
}

func decideWith(f Formula, selector LiteralSelector) bool {
	f = simplify(f)

	// Terminal tests (step 1, re-applied after simplification per step 4).
	if len(f) == 0 {
		return true
	}
	if f.HasEmptyClause() {
		return false
	}

	// Branch (step 5). Branch-left must not observe branch-right's
	// simplifications, so each recursive call receives its own clone via
	// WithUnit; decideWith further clones internally via simplify.
	l := selector.Select(f)
	if l == 0 {
		// No literal remains but the formula is non-empty and has no
		// empty clause: every remaining clause is already satisfied by
		// prior unit propagation having stripped it, which simplify
		// guarantees cannot happen. Unreachable on well-formed input.
		return true
	}

	if decideWith(f.WithUnit(l), selector) {
		return true
	}
	return decideWith(f.WithUnit(l.Negate()), selector)
}

// simplify applies unit propagation (step 2) and pure-literal elimination
// (step 3) to exhaustion, returning a fresh formula that does not alias
// the input's clause slices.
func simplify(f Formula) Formula {
	cur := f.Clone()

	for {
		changed := false

		if l, ok := findUnit(cur); ok {
			cur = propagateUnit(cur, l)
			changed = true
		}

		if cur.HasEmptyClause() {
			return cur
		}

		if l, ok := findPureLiteral(cur); ok {
			cur = eliminatePure(cur, l)
			changed = true
		}

		if !changed {
			return cur
		}
	}
}

func findUnit(f Formula) (Literal, bool) {
	for _, c := range f {
		if c.Unit() {
			return c[0], true
		}
	}
	return 0, false
}

// propagateUnit deletes every clause containing l and removes -l from
// every remaining clause, per step 2.
func propagateUnit(f Formula, l Literal) Formula {
	out := make(Formula, 0, len(f))
	for _, c := range f {
		if containsLiteral(c, l) {
			continue
		}
		out = append(out, removeLiteral(c, l.Negate()))
	}
	return out
}

// findPureLiteral returns a literal l such that l occurs somewhere in f
// while -l occurs nowhere in f, per step 3.
func findPureLiteral(f Formula) (Literal, bool) {
	maxVar := 0
	for _, c := range f {
		for _, l := range c {
			if v := l.Var(); v > maxVar {
				maxVar = v
			}
		}
	}
	if maxVar == 0 {
		return 0, false
	}

	hasPos := bitset.New(uint(maxVar + 1))
	hasNeg := bitset.New(uint(maxVar + 1))
	for _, c := range f {
		for _, l := range c {
			v := uint(l.Var())
			if l > 0 {
				hasPos.Set(v)
			} else {
				hasNeg.Set(v)
			}
		}
	}

	for v := uint(1); v <= uint(maxVar); v++ {
		switch {
		case hasPos.Test(v) && !hasNeg.Test(v):
			return Literal(v), true
		case hasNeg.Test(v) && !hasPos.Test(v):
			return Literal(-int(v)), true
		}
	}
	return 0, false
}

// eliminatePure deletes every clause containing l, per step 3.
func eliminatePure(f Formula, l Literal) Formula {
	out := make(Formula, 0, len(f))
	for _, c := range f {
		if containsLiteral(c, l) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func containsLiteral(c Clause, l Literal) bool {
	for _, x := range c {
		if x == l {
			return true
		}
	}
	return false
}

// removeLiteral returns a copy of c with l removed, preserving order of
// the remaining literals.
func removeLiteral(c Clause, l Literal) Clause {
	out := make(Clause, 0, len(c))
	for _, x := range c {
		if x != l {
			out = append(out, x)
		}
	}
	return out
}
