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
	"os"
	"strings"

	"github.com/pkg/errors"
)

// StrategyEnvVar names the environment variable that overrides the default
// strategy used by Sort.
const StrategyEnvVar = "QSORT_STRATEGY"

// ErrUnknownStrategy is returned for a strategy name or value that does not
// exist.
var ErrUnknownStrategy = errors.New("quicksort: unknown strategy")

// Strategy selects how the ranges around each pivot are sorted.
type Strategy int

const (
	// StrategyRecursive recurses into the left range, then the right range.
	StrategyRecursive Strategy = iota

	// StrategyIterative keeps pending ranges on an explicit stack.
	StrategyIterative

	// StrategyParallel sorts independent ranges on a worker pool.
	StrategyParallel
)

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyRecursive:
		return "recursive"
	case StrategyIterative:
		return "iterative"
	case StrategyParallel:
		return "parallel"
	default:
		return "unknown"
	}
}

// Strategies returns every known strategy.
func Strategies() []Strategy {
	return []Strategy{StrategyRecursive, StrategyIterative, StrategyParallel}
}

// ParseStrategy returns the strategy with the given name, ignoring case and
// surrounding whitespace.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range Strategies() {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownStrategy, "%q", name)
}

// currentStrategy is the strategy used by Sort. Set by init().
var currentStrategy = StrategyIterative

func init() {
	if s, ok := StrategyEnv(); ok {
		currentStrategy = s
	}
}

// CurrentStrategy returns the strategy used by Sort.
func CurrentStrategy() Strategy {
	return currentStrategy
}

// StrategyEnv reads QSORT_STRATEGY. It reports false when the variable is
// unset or does not name a strategy.
func StrategyEnv() (Strategy, bool) {
	val := os.Getenv(StrategyEnvVar)
	if val == "" {
		return 0, false
	}
	s, err := ParseStrategy(val)
	if err != nil {
		return 0, false
	}
	return s, true
}
