package tagfilter

import "runtime"

const (
	// ParallelThreshold is the minimum number of items required to evaluate a filter in parallel.
	// Evaluating an expression is a handful of map lookups, so goroutine overhead dominates below it.
	ParallelThreshold = 10000

	maxWorkers = 8
)

// DisableParallelization is a global flag to force serial evaluation for testing.
var DisableParallelization bool

// WorkerPoolSize returns the number of workers for parallel item evaluation.
func WorkerPoolSize() int {
	return min(runtime.NumCPU(), maxWorkers)
}

// shouldUseParallelization returns true if parallelization should be used for the given input size.
func shouldUseParallelization(inputSize int) bool {
	if DisableParallelization {
		return false
	}

	return inputSize >= ParallelThreshold
}
