// Package parallel provides a bounded worker pool for fanning out
// independent tasks. It is a much-simplified descendant of a worker pool
// originally built for parallel goal evaluation over streams of
// constraint stores; here it runs one task per pattern coloring
// representative during a single fixed-point iteration, so the elaborate
// auto-scaling and deadlock-detection machinery that use case needed has
// no job to do and was dropped.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Run executes every task concurrently, bounded to workers goroutines in
// flight at once (workers <= 0 means runtime.NumCPU()), and returns their
// results in the same order as tasks. Run blocks until every task has
// completed, so callers that need a "snapshot at start, publish at end"
// discipline get it for free: no caller observes any result until Run
// returns. Task functions never return an error, so the errgroup is used
// purely for its bounded-concurrency scheduling.
func Run[T any](workers int, tasks []func() T) []T {
	if len(tasks) == 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]T, len(tasks))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			results[i] = task()
			return nil
		})
	}
	g.Wait()

	return results
}
