// Package quicksort provides an in-place Lomuto quicksort for signed integer
// slices.
//
// # Algorithm
//
// Partition takes the last element of a range as the pivot, moves every
// element <= pivot in front of it and every element > pivot behind it, and
// returns the pivot's final index. The sort functions apply Partition to the
// ranges on either side of the pivot until every range has at most one
// element.
//
// Three strategies produce the same result:
//   - Recursive: one call per range, left side first
//   - Iterative: explicit work stack, bounded at O(log n) entries
//   - Parallel: independent ranges sorted on a workerpool.Pool
//
// The order of equal elements is unspecified. The sort is not stable.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-quicksort/quicksort"
//
//	func Process(data []int) {
//	    quicksort.Sort(data) // In-place ascending sort
//	}
//
// # Strategy Selection
//
// Sort uses StrategyIterative unless the QSORT_STRATEGY environment variable
// names another strategy ("recursive", "iterative" or "parallel").
package quicksort
