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

package intio

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/ajroetker/go-quicksort/quicksort"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	tests := []struct {
		name string
		data []int
		want string
	}{
		{"several", []int{1, 2, 3, 5, 9, 9}, "1 2 3 5 9 9\n"},
		{"single", []int{7}, "7\n"},
		{"empty", []int{}, "\n"},
		{"nil", nil, "\n"},
		{"negative", []int{-12, 0, 4}, "-12 0 4\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, tt.data))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteTrailingSpace(t *testing.T) {
	tests := []struct {
		name string
		data []int
		want string
	}{
		{"several", []int{1, 2, 3}, "1 2 3 \n"},
		{"single", []int{7}, "7 \n"},
		{"empty", nil, "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, tt.data, WithTrailingSpace()))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteInt64Extremes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []int64{math.MinInt64, math.MaxInt64}))
	assert.Equal(t, "-9223372036854775808 9223372036854775807\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteError(t *testing.T) {
	err := Write(failingWriter{}, []int{1, 2, 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestLoadSortWrite(t *testing.T) {
	data, err := Load(strings.NewReader("5 2 9 1 9 3\n"), 6)
	require.NoError(t, err)

	quicksort.Sort(data)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, data))
	assert.Equal(t, "1 2 3 5 9 9\n", buf.String())

	// Written output loads back as the same sequence.
	again, err := Load(&buf, 0)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}
