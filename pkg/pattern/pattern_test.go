package pattern

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPatternReducibilityRejectsNonIdentitySymmetry(t *testing.T) {
	_, err := NewPatternReducibility(
		[][]int{{1}, {0, 2}, {1}},
		[]int{0, 2},
		[][]int{{1, 0}},
		nil,
	)
	require.ErrorIs(t, err, ErrSymmetryNotIdentity)
}

func TestIsPatternReducibleP22(t *testing.T) {
	pr, err := NewPatternReducibility(
		[][]int{{1}, {0, 2}, {1}},
		[]int{0, 2},
		[][]int{{0, 1}, {1, 0}},
		nil,
	)
	require.NoError(t, err)
	require.True(t, pr.IsPatternReducible(false))
}

func TestIsPatternReducibleP232(t *testing.T) {
	pr, err := NewPatternReducibility(
		[][]int{{1}, {0, 2, 3}, {1, 3}, {1, 2, 4}, {3}},
		[]int{0, 2, 4},
		[][]int{{0, 1, 2}, {2, 1, 0}},
		nil,
	)
	require.NoError(t, err)
	require.True(t, pr.IsPatternReducible(false))
}

func TestIsPatternReducibleParallelAgreesWithSequential(t *testing.T) {
	lineGraph := [][]int{{1}, {0, 2, 3}, {1, 3}, {1, 2, 4}, {3}}
	outgoing := []int{0, 2, 4}
	symmetries := [][]int{{0, 1, 2}, {2, 1, 0}}

	seqOpts := DefaultEngineOptions()
	prSeq, err := NewPatternReducibility(lineGraph, outgoing, symmetries, seqOpts)
	require.NoError(t, err)

	parOpts := DefaultEngineOptions()
	parOpts.Parallel = true
	parOpts.Workers = 4
	prPar, err := NewPatternReducibility(lineGraph, outgoing, symmetries, parOpts)
	require.NoError(t, err)

	require.Equal(t, prSeq.IsPatternReducible(false), prPar.IsPatternReducible(false))
}

func TestWriteDisplayFormat(t *testing.T) {
	pr, err := NewPatternReducibility(
		[][]int{{1}, {0, 2}, {1}},
		[]int{0, 2},
		[][]int{{0, 1}, {1, 0}},
		nil,
	)
	require.NoError(t, err)

	var buf strings.Builder
	pr.IsPatternReducible(false)
	pr.WriteDisplay(&buf)

	out := buf.String()
	require.Contains(t, out, "Non reducible colorations:")
	require.True(t,
		strings.Contains(out, "There is 1 coloration of rank") ||
			strings.Contains(out, "There are ") && strings.Contains(out, "colorations of rank"),
	)
}
