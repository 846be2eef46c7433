// Command patternreduce runs the pattern-reducibility engine against a
// handful of hard-coded patterns and prints the fixed-point verdict for
// each, with the full rank listing on stdout.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/asimov-io/pattern-reducibility-checker/pkg/pattern"
)

const versionFlag = "--version"

type namedPattern struct {
	name       string
	lineGraph  [][]int
	outgoing   []int
	symmetries [][]int
}

func catalog() []namedPattern {
	return []namedPattern{
		{
			name:       "p_22",
			lineGraph:  [][]int{{1}, {0, 2}, {1}},
			outgoing:   []int{0, 2},
			symmetries: [][]int{{0, 1}, {1, 0}},
		},
		{
			name:       "p_232",
			lineGraph:  [][]int{{1}, {0, 2, 3}, {1, 3}, {1, 2, 4}, {3}},
			outgoing:   []int{0, 2, 4},
			symmetries: [][]int{{0, 1, 2}, {2, 1, 0}},
		},
	}
}

func main() {
	for _, arg := range os.Args[1:] {
		if arg == versionFlag {
			fmt.Println(pattern.GetVersion())
			return
		}
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.InfoLevel).With().Timestamp().Logger()

	for _, p := range catalog() {
		opts := pattern.DefaultEngineOptions()
		opts.Logger = logger

		pr, err := pattern.NewPatternReducibility(p.lineGraph, p.outgoing, p.symmetries, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", p.name, err)
			os.Exit(1)
		}

		fmt.Printf("=== %s ===\n", p.name)
		verdict := pr.IsPatternReducible(true)
		fmt.Printf("reducible: %v\n\n", verdict)
	}
}
