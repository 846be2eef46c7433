package pattern

import (
	"github.com/asimov-io/pattern-reducibility-checker/internal/parallel"
	"github.com/asimov-io/pattern-reducibility-checker/pkg/ncpqm"
)

// testOutcome is one representative's result from a single fixed-point
// pass at a given rank threshold.
type testOutcome struct {
	coloring Coloring
	success  bool
	record   RankRecord
}

// IsPatternReducible runs the reducibility fixed point and returns the
// verdict: the pattern is reducible iff every representative eventually
// reaches a finite rank. If display is true, it also writes the
// human-readable listing to the engine's configured writer (see
// WriteDisplay for direct control over the destination).
func (pr *PatternReducibility) IsPatternReducible(display bool) bool {
	verdict := pr.runFixedPoint()
	if display {
		pr.WriteDisplay(pr.opts.Writer)
	}
	return verdict
}

// runFixedPoint implements the outer loop: increasing rank thresholds
// r=1,2,..., re-testing every still-unknown representative at each
// threshold, until a full pass makes no change.
func (pr *PatternReducibility) runFixedPoint() bool {
	for r := 1; ; r++ {
		unknown := pr.unknownRepresentatives()
		if len(unknown) == 0 {
			return true
		}

		outcomes := pr.testAll(unknown, r)

		changed := false
		anyUnknown := false
		for _, o := range outcomes {
			if o.success {
				pr.ranks.set(o.coloring, o.record)
				changed = true
			} else {
				anyUnknown = true
			}
		}

		if !changed {
			return !anyUnknown
		}
	}
}

// testAll runs singleColoringTest for every representative in unknown at
// threshold r, sequentially or via the bounded worker pool depending on
// pr.opts.Parallel. Either way, no caller observes a result until every
// test in this pass has completed, preserving the Iteration order note's
// "no same-iteration visibility" requirement.
func (pr *PatternReducibility) testAll(unknown []Coloring, r int) []testOutcome {
	if !pr.opts.Parallel {
		out := make([]testOutcome, len(unknown))
		for i, c := range unknown {
			ok, rec := pr.singleColoringReducibilityTest(c, r)
			out[i] = testOutcome{coloring: c, success: ok, record: rec}
		}
		return out
	}

	tasks := make([]func() testOutcome, len(unknown))
	for i, c := range unknown {
		c := c
		tasks[i] = func() testOutcome {
			ok, rec := pr.singleColoringReducibilityTest(c, r)
			return testOutcome{coloring: c, success: ok, record: rec}
		}
	}
	return parallel.Run(pr.opts.Workers, tasks)
}

// singleColoringReducibilityTest tries, for each color, the Kempe chain
// argument over the other two colors at threshold r.
func (pr *PatternReducibility) singleColoringReducibilityTest(c Coloring, r int) (bool, RankRecord) {
	for _, color := range allColors {
		if c.isConstant(color) {
			// The auxiliary graph would be empty; skip invoking NCPQM on
			// it and treat this color pair as producing no reduction.
			continue
		}

		i, j := otherTwo(color)
		aux := pr.buildAuxiliaryGraph(c, r, i, j)
		if !ncpqm.MatchableWith(aux, pr.opts.Selector) {
			rec := newReducibleRecord(r, i, j)
			pr.opts.Logger.Debug().
				Ints("coloring", intSlice(c)).
				Int("rank", r).
				Int("color_i", i.Int()).
				Int("color_j", j.Int()).
				Msg("representative reduced")
			return true, rec
		}
	}
	return false, RankRecord{}
}

// unknownRepresentatives returns every full representative whose rank is
// still ∞, in ascending integer order (stable iteration order, matching
// the Iteration order note's requirement to re-scan all unknowns every
// pass).
func (pr *PatternReducibility) unknownRepresentatives() []Coloring {
	var out []Coloring
	for _, c := range pr.quot.allRepresentatives() {
		if pr.ranks.get(c).Rank == RankUnknown {
			out = append(out, c)
		}
	}
	return out
}
