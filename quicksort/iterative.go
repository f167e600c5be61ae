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

// SortIterative sorts all of data with an explicit work stack instead of
// recursion.
func SortIterative[T SignedInts](data []T) {
	sortIterative(data, 0, len(data)-1)
}

// SortRangeIterative is the iterative counterpart of SortRange and accepts
// the same bounds.
func SortRangeIterative[T SignedInts](data []T, low, high int) error {
	if low >= high {
		return nil
	}
	if err := checkRange(len(data), low, high); err != nil {
		return err
	}
	sortIterative(data, low, high)
	return nil
}

// sortIterative loops on the smaller side of each pivot and defers the larger
// side to the stack, so the stack never holds more than log2(n) ranges.
func sortIterative[T SignedInts](data []T, low, high int) {
	var pending [64]span
	stack := pending[:0]

	for {
		for low < high {
			p := partition(data, low, high)
			left := span{low, p - 1}
			right := span{p + 1, high}
			if left.size() > right.size() {
				left, right = right, left
			}
			if right.size() > 1 {
				stack = append(stack, right)
			}
			low, high = left.low, left.high
		}

		if len(stack) == 0 {
			return
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		low, high = top.low, top.high
	}
}
