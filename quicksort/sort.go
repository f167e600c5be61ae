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

import (
	"github.com/ajroetker/go-quicksort/quicksort/contrib/workerpool"
	"github.com/pkg/errors"
)

// Sort sorts data in-place in ascending order using the current strategy
// (see CurrentStrategy). StrategyParallel uses a pool sized to GOMAXPROCS
// for the duration of the call.
func Sort[T SignedInts](data []T) {
	switch currentStrategy {
	case StrategyRecursive:
		SortRecursive(data)
	case StrategyParallel:
		pool := workerpool.New(0)
		defer pool.Close()
		SortParallel(data, pool)
	default:
		SortIterative(data)
	}
}

// SortWith sorts data in-place with the given strategy. pool is only used by
// StrategyParallel and may be nil, in which case the sort runs sequentially.
func SortWith[T SignedInts](data []T, s Strategy, pool *workerpool.Pool) error {
	switch s {
	case StrategyRecursive:
		SortRecursive(data)
	case StrategyIterative:
		SortIterative(data)
	case StrategyParallel:
		SortParallel(data, pool)
	default:
		return errors.Wrapf(ErrUnknownStrategy, "%d", int(s))
	}
	return nil
}

// SortRecursive sorts all of data with the recursive strategy.
func SortRecursive[T SignedInts](data []T) {
	sortRecursive(data, 0, len(data)-1)
}

// SortRange sorts data[low:high+1] in-place, recursing into the left side of
// each pivot before the right side.
//
// A range with low >= high holds at most one element and is left as is, even
// when the bounds lie outside data. Otherwise the bounds must satisfy
// 0 <= low < high < len(data), or an error wrapping ErrInvalidRange is
// returned.
func SortRange[T SignedInts](data []T, low, high int) error {
	if low >= high {
		return nil
	}
	if err := checkRange(len(data), low, high); err != nil {
		return err
	}
	sortRecursive(data, low, high)
	return nil
}

func sortRecursive[T SignedInts](data []T, low, high int) {
	if low >= high {
		return
	}
	p := partition(data, low, high)
	sortRecursive(data, low, p-1)
	sortRecursive(data, p+1, high)
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted[T SignedInts](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}
