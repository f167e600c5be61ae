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
	"bufio"
	"io"
	"strconv"

	"github.com/ajroetker/go-quicksort/quicksort"
	"github.com/pkg/errors"
)

// Option configures Write.
type Option func(*writeOptions)

type writeOptions struct {
	trailingSpace bool
}

// WithTrailingSpace follows every value with a space, including the last,
// as printf("%d ", v) per value does.
func WithTrailingSpace() Option {
	return func(o *writeOptions) {
		o.trailingSpace = true
	}
}

// Write prints data to w as one line of space-separated decimal values
// followed by a newline. An empty sequence produces a bare newline.
func Write[T quicksort.SignedInts](w io.Writer, data []T, opts ...Option) error {
	var o writeOptions
	for _, opt := range opts {
		opt(&o)
	}

	bw := bufio.NewWriter(w)

	// bufio.Writer keeps the first error; Flush reports it.
	var buf [24]byte
	for i, v := range data {
		if i > 0 && !o.trailingSpace {
			bw.WriteByte(' ')
		}
		bw.Write(strconv.AppendInt(buf[:0], int64(v), 10))
		if o.trailingSpace {
			bw.WriteByte(' ')
		}
	}
	bw.WriteByte('\n')

	return errors.Wrap(bw.Flush(), "intio: write")
}
