// Copyright 2025 go-quicksort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package quicksort

import "github.com/ajroetker/go-quicksort/quicksort/contrib/workerpool"

const (
	// parallelCutoff: ranges smaller than this are sorted by a single worker.
	parallelCutoff = 4096

	// tasksPerWorker: independent ranges to aim for per worker, so that
	// uneven pivots still keep every worker busy.
	tasksPerWorker = 4
)

// SortParallel sorts data in-place, sorting the disjoint ranges produced by
// partitioning on the workers of pool. It blocks until data is sorted.
//
// With a nil or closed pool, a single worker, or fewer than parallelCutoff
// elements it behaves exactly like SortIterative.
func SortParallel[T SignedInts](data []T, pool *workerpool.Pool) {
	if pool == nil || pool.Closed() || pool.NumWorkers() == 1 || len(data) < parallelCutoff {
		SortIterative(data)
		return
	}

	tasks := splitRanges(data, pool.NumWorkers()*tasksPerWorker, parallelCutoff)
	pool.ParallelForAtomic(len(tasks), func(i int) {
		sortIterative(data, tasks[i].low, tasks[i].high)
	})
}

// splitRanges partitions data breadth-first until there are at least target
// unsorted ranges or every remaining range is below cutoff. The returned
// ranges are disjoint and each still needs sorting; everything outside them
// is already in its final position.
func splitRanges[T SignedInts](data []T, target, cutoff int) []span {
	ranges := []span{{0, len(data) - 1}}

	for len(ranges) < target {
		next := make([]span, 0, 2*len(ranges))
		split := false
		for _, r := range ranges {
			if r.size() < cutoff {
				next = append(next, r)
				continue
			}
			split = true
			p := partition(data, r.low, r.high)
			if left := (span{r.low, p - 1}); left.size() > 1 {
				next = append(next, left)
			}
			if right := (span{p + 1, r.high}); right.size() > 1 {
				next = append(next, right)
			}
		}
		ranges = next
		if !split {
			break
		}
	}

	return ranges
}
