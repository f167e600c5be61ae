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

// Partition rearranges data[low:high+1] around the pivot data[high] using the
// Lomuto scheme and returns the pivot's final index p. Afterwards
// data[low:p] <= data[p] and data[p+1:high+1] > data[p].
//
// Partition requires 0 <= low <= high < len(data) and returns an error
// wrapping ErrInvalidRange otherwise, leaving data untouched.
func Partition[T SignedInts](data []T, low, high int) (int, error) {
	if err := checkRange(len(data), low, high); err != nil {
		return 0, err
	}
	return partition(data, low, high), nil
}

// partition is Partition without the bounds check.
func partition[T SignedInts](data []T, low, high int) int {
	pivot := data[high]

	// data[low:i+1] holds the elements <= pivot seen so far.
	i := low - 1
	for j := low; j < high; j++ {
		if data[j] <= pivot {
			i++
			data[i], data[j] = data[j], data[i]
		}
	}

	data[i+1], data[high] = data[high], data[i+1]
	return i + 1
}
