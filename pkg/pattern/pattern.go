// Package pattern implements the coloring quotient and reducibility
// fixed-point engine: given a plane pattern (a small graph with a
// cyclically ordered frontier and a symmetry group acting on it), it
// decides whether every frontier 3-coloring is reducible.
package pattern

import (
	"errors"
	"fmt"

	"github.com/asimov-io/pattern-reducibility-checker/pkg/coloring"
)

// ErrSymmetryNotIdentity is returned by NewPatternReducibility when
// symmetries[0] is not the identity permutation on {0..k-1}, a
// precondition cheap to check at construction time.
var ErrSymmetryNotIdentity = errors.New("pattern: symmetries[0] must be the identity permutation")

// Pattern is an immutable triple: a line graph, its outgoing frontier
// (in cyclic order), and the symmetries acting on that frontier.
type Pattern struct {
	LineGraph  [][]int
	Outgoing   []int
	Symmetries [][]int
}

// FrontierLen returns the frontier length k.
func (p *Pattern) FrontierLen() int { return len(p.Outgoing) }

// PatternReducibility is the public engine: constructed eagerly with the
// quotient tables and the rank-0 (extendable) tier, it answers
// IsPatternReducible by running the reducibility fixed point.
// A PatternReducibility owns its rank map and quotient tables; neither is
// shared with, or mutated by, any other instance.
type PatternReducibility struct {
	pattern *Pattern
	opts    *EngineOptions

	quot  *quotient
	ranks *rankMap
}

// NewPatternReducibility constructs the engine for the given pattern,
// eagerly computing the coloring quotient and the rank-0 tier (every
// representative extendable to a full 3-coloring of the line graph gets
// rank 0 immediately). opts may be nil, in which case DefaultEngineOptions
// is used.
func NewPatternReducibility(lineGraph [][]int, outgoing []int, symmetries [][]int, opts *EngineOptions) (*PatternReducibility, error) {
	if len(symmetries) == 0 || !isIdentity(symmetries[0], len(outgoing)) {
		return nil, ErrSymmetryNotIdentity
	}
	if opts == nil {
		opts = DefaultEngineOptions()
	}

	p := &Pattern{LineGraph: lineGraph, Outgoing: outgoing, Symmetries: symmetries}
	quot := buildQuotient(len(outgoing), symmetries)
	ranks := newRankMap()

	pr := &PatternReducibility{pattern: p, opts: opts, quot: quot, ranks: ranks}
	pr.initializeExtendableTier()
	return pr, nil
}

func isIdentity(perm []int, k int) bool {
	if len(perm) != k {
		return false
	}
	for i, v := range perm {
		if v != i {
			return false
		}
	}
	return true
}

// initializeExtendableTier builds, for every representative, a 3-coloring
// instance constraining outgoing[i] to c[i] for every frontier position,
// and assigns rank 0 when it is extensible.
func (pr *PatternReducibility) initializeExtendableTier() {
	for _, c := range pr.quot.allRepresentatives() {
		constraints := make(map[int]int, len(pr.pattern.Outgoing))
		for i, v := range pr.pattern.Outgoing {
			constraints[v] = c[i].Int()
		}

		if coloring.ColorableWith(pr.pattern.LineGraph, constraints, pr.opts.Selector) {
			pr.ranks.set(c, newExtendableRecord())
			pr.opts.Logger.Debug().
				Str("coloring", fmt.Sprintf("%v", []int(intSlice(c)))).
				Msg("representative is extendable at rank 0")
		} else {
			pr.ranks.set(c, newUnknownRecord())
		}
	}
}

func intSlice(c Coloring) []int {
	out := make([]int, len(c))
	for i, x := range c {
		out[i] = x.Int()
	}
	return out
}
