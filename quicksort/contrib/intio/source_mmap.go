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

//go:build darwin || freebsd || linux || netbsd || openbsd

package intio

import (
	"math"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// mappedSource is a read-only shared mapping of a whole file.
type mappedSource struct {
	data []byte
}

func (m *mappedSource) Bytes() []byte { return m.data }

func (m *mappedSource) Close() error {
	if m.data == nil {
		return nil
	}
	err := unix.Munmap(m.data)
	m.data = nil
	return errors.Wrap(err, "intio: munmap")
}

func openSource(path string) (source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}

	// Pipes, devices and empty files cannot be mapped.
	if !fi.Mode().IsRegular() || fi.Size() == 0 {
		return readSource(path, f)
	}
	if fi.Size() > math.MaxInt {
		return nil, &InputError{Path: path, Err: errors.Errorf("file too large: %d bytes", fi.Size())}
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(fi.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	return &mappedSource{data: data}, nil
}
