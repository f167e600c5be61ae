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
	"bytes"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// maxPrealloc caps the capacity reserved up front for a requested count.
const maxPrealloc = 1 << 20

// Load reads whitespace-separated decimal integers from r.
//
// With n > 0 it returns exactly n values and ignores anything after them; a
// source holding fewer returns an error wrapping ErrShortInput. With n == 0
// it reads every value up to EOF.
func Load(r io.Reader, n int) ([]int, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidCount, "%d", n)
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	data := make([]int, 0, min(n, maxPrealloc))
	for n == 0 || len(data) < n {
		if !sc.Scan() {
			break
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, &ParseError{Index: len(data), Token: sc.Text(), Err: err}
		}
		data = append(data, v)
	}
	if err := sc.Err(); err != nil {
		// A token longer than the scanner buffer is no integer either.
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &ParseError{Index: len(data), Err: err}
		}
		return nil, errors.Wrap(err, "intio: read")
	}

	if len(data) < n {
		return nil, errors.Wrapf(ErrShortInput, "got %d of %d values", len(data), n)
	}
	return data, nil
}

// LoadFile is Load over the contents of the named file. On Linux and the BSDs
// regular files are memory mapped for the duration of the parse.
func LoadFile(path string, n int) ([]int, error) {
	src, err := openSource(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return Load(bytes.NewReader(src.Bytes()), n)
}

// source is the in-memory contents of an input file.
type source interface {
	Bytes() []byte
	Close() error
}

// heapSource holds contents read with ordinary reads.
type heapSource []byte

func (s heapSource) Bytes() []byte { return s }
func (s heapSource) Close() error  { return nil }

func readSource(path string, r io.Reader) (source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	return heapSource(data), nil
}
