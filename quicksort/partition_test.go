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
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkPartitioned verifies data[low:p] <= data[p] < data[p+1:high+1].
func checkPartitioned(t *testing.T, data []int, low, p, high int) {
	t.Helper()
	for i := low; i < p; i++ {
		require.LessOrEqual(t, data[i], data[p], "data[%d] left of pivot index %d", i, p)
	}
	for i := p + 1; i <= high; i++ {
		require.Greater(t, data[i], data[p], "data[%d] right of pivot index %d", i, p)
	}
}

func TestPartition(t *testing.T) {
	data := []int{5, 2, 9, 1, 9, 3}

	p, err := Partition(data, 0, len(data)-1)
	require.NoError(t, err)

	// Pivot 3: {2, 1} go left, so 3 lands at index 2.
	assert.Equal(t, 2, p)
	assert.Equal(t, 3, data[p])
	checkPartitioned(t, data, 0, p, len(data)-1)
}

func TestPartitionLomutoOrder(t *testing.T) {
	// Walk through the scan by hand: pivot 4, elements <= 4 are swapped
	// forward in scan order, then the pivot is swapped into i+1.
	data := []int{7, 1, 8, 3, 4}

	p, err := Partition(data, 0, 4)
	require.NoError(t, err)

	assert.Equal(t, 2, p)
	assert.Equal(t, []int{1, 3, 4, 7, 8}, data)
}

func TestPartitionSubRange(t *testing.T) {
	data := []int{100, 6, 2, 7, 4, -100}

	p, err := Partition(data, 1, 4)
	require.NoError(t, err)

	assert.Equal(t, 2, p)
	assert.Equal(t, 100, data[0], "element before range must not move")
	assert.Equal(t, -100, data[5], "element after range must not move")
	checkPartitioned(t, data, 1, p, 4)
}

func TestPartitionSingleElement(t *testing.T) {
	data := []int{3, 1, 2}

	p, err := Partition(data, 1, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, p)
	assert.Equal(t, []int{3, 1, 2}, data)
}

func TestPartitionPivotExtremes(t *testing.T) {
	tests := []struct {
		name string
		data []int
		want int
	}{
		{"pivot is max", []int{3, 1, 2, 9}, 3},
		{"pivot is min", []int{3, 1, 2, 0}, 0},
		{"all equal", []int{4, 4, 4, 4}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Partition(tt.data, 0, len(tt.data)-1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
			checkPartitioned(t, tt.data, 0, p, len(tt.data)-1)
		})
	}
}

func TestPartitionInvalidRange(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		low, high int
	}{
		{"empty sequence", 0, 0, 0},
		{"negative low", 5, -1, 3},
		{"high past end", 5, 0, 5},
		{"low after high", 5, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]int, tt.n)
			for i := range data {
				data[i] = tt.n - i
			}
			orig := slices.Clone(data)

			_, err := Partition(data, tt.low, tt.high)
			require.ErrorIs(t, err, ErrInvalidRange)
			assert.Equal(t, orig, data, "data must be untouched on error")
		})
	}
}

func TestPartitionRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	for range 200 {
		n := 1 + rng.Intn(64)
		data := make([]int, n)
		for i := range data {
			data[i] = rng.Intn(20) - 10
		}
		low := rng.Intn(n)
		high := low + rng.Intn(n-low)
		pivot := data[high]

		p, err := Partition(data, low, high)
		require.NoError(t, err)
		require.Equal(t, pivot, data[p])
		checkPartitioned(t, data, low, p, high)
	}
}

func TestPartitionInt8(t *testing.T) {
	data := []int8{-128, 127, 0, -1}

	p, err := Partition(data, 0, 3)
	require.NoError(t, err)

	assert.Equal(t, 1, p)
	assert.Equal(t, int8(-1), data[p])
}

func TestPartitionNoAlloc(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ref := randomInts(rng, 10000, 1<<20)
	data := make([]int, len(ref))

	allocs := testing.AllocsPerRun(20, func() {
		copy(data, ref)
		if _, err := Partition(data, 0, len(data)-1); err != nil {
			t.Fatal(err)
		}
	})
	assert.Zero(t, allocs, "Partition allocated")
}
