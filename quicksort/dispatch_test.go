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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "recursive", StrategyRecursive.String())
	assert.Equal(t, "iterative", StrategyIterative.String())
	assert.Equal(t, "parallel", StrategyParallel.String())
	assert.Equal(t, "unknown", Strategy(-1).String())
}

func TestParseStrategy(t *testing.T) {
	for _, s := range Strategies() {
		got, err := ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := ParseStrategy("  Parallel ")
	require.NoError(t, err)
	assert.Equal(t, StrategyParallel, got)

	_, err = ParseStrategy("bogo")
	require.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestStrategyEnv(t *testing.T) {
	t.Setenv(StrategyEnvVar, "")
	_, ok := StrategyEnv()
	assert.False(t, ok, "unset")

	t.Setenv(StrategyEnvVar, "recursive")
	s, ok := StrategyEnv()
	require.True(t, ok)
	assert.Equal(t, StrategyRecursive, s)

	t.Setenv(StrategyEnvVar, "bubble")
	_, ok = StrategyEnv()
	assert.False(t, ok, "unknown names are ignored")
}

func TestCurrentStrategy(t *testing.T) {
	want := StrategyIterative
	if s, ok := StrategyEnv(); ok {
		want = s
	}
	assert.Equal(t, want, CurrentStrategy())
}
