package pattern

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/asimov-io/pattern-reducibility-checker/pkg/cnfsat"
)

// EngineOptions configures a PatternReducibility engine. The zero value
// is not valid; use DefaultEngineOptions. Constructors take an explicit
// options struct rather than a long parameter list or package globals,
// mirroring how this codebase's solver configuration is threaded through.
type EngineOptions struct {
	// Selector is the DPLL branching heuristic used by every CNF-SAT
	// call the engine makes. Defaults to cnfsat.FirstLiteralSelector.
	Selector cnfsat.LiteralSelector

	// Parallel enables bounded-concurrency fan-out of independent
	// representative tests within a single fixed-point iteration.
	// Sequential execution (the default) is always correct; parallel
	// execution trades determinism of wall-clock timing for throughput on
	// patterns with many unknown representatives.
	Parallel bool

	// Workers bounds the number of concurrent representative tests when
	// Parallel is true. Ignored otherwise. Defaults to runtime.NumCPU().
	Workers int

	// Logger receives structured progress events. Defaults to a
	// zerolog.Logger writing to io.Discard (silent by default; the only
	// user-facing output is the optional human-readable display).
	Logger zerolog.Logger

	// Writer receives the human-readable listing when IsPatternReducible
	// is called with display=true. Defaults to os.Stdout.
	Writer io.Writer
}

// DefaultEngineOptions returns the engine's default configuration: the
// first-literal selector, sequential fixed-point iteration, and a silent
// logger.
func DefaultEngineOptions() *EngineOptions {
	return &EngineOptions{
		Selector: cnfsat.FirstLiteralSelector{},
		Parallel: false,
		Workers:  0,
		Logger:   zerolog.New(io.Discard),
		Writer:   os.Stdout,
	}
}

// WithStderrLogging returns a copy of opts writing leveled, human
// readable log lines to os.Stderr, convenient for CLI use (see
// cmd/patternreduce).
func (opts *EngineOptions) WithStderrLogging(level zerolog.Level) *EngineOptions {
	out := *opts
	out.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	return &out
}
