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

// Package intio reads and writes sequences of decimal integers as text.
//
// Load parses whitespace-separated integers such as the contents of a
// nums.txt file, and Write prints a sequence on a single line separated by
// spaces.
package intio

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInputUnavailable is returned when the input source cannot be opened
	// or read into memory.
	ErrInputUnavailable = errors.New("intio: input unavailable")

	// ErrShortInput is returned when the source ends before the requested
	// number of integers.
	ErrShortInput = errors.New("intio: short input")

	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("intio: parse failure")

	// ErrInvalidCount is returned for a negative count.
	ErrInvalidCount = errors.New("intio: invalid count")
)

// InputError records a failure to open or map an input source.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrInputUnavailable, e.Path, e.Err)
}

// Unwrap matches both ErrInputUnavailable and the underlying cause.
func (e *InputError) Unwrap() []error {
	return []error{ErrInputUnavailable, e.Err}
}

// ParseError records a token that is not a decimal integer.
type ParseError struct {
	Index int    // position of the value in the sequence
	Token string // offending text, empty if it overflowed the scan buffer
	Err   error  // strconv error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: value %d: %q: %v", ErrParse, e.Index, e.Token, e.Err)
}

// Unwrap matches both ErrParse and the strconv error.
func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}
