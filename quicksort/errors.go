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

import "github.com/pkg/errors"

// ErrInvalidRange is returned when the requested bounds do not describe a
// range inside the sequence. It is a caller error, never a transient one.
var ErrInvalidRange = errors.New("quicksort: invalid range")

// checkRange verifies 0 <= low <= high < n.
func checkRange(n, low, high int) error {
	if low < 0 || high >= n || low > high {
		return errors.Wrapf(ErrInvalidRange, "[%d, %d] for length %d", low, high, n)
	}
	return nil
}
