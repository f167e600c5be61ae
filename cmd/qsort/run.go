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

package main

import (
	"io"
	"os"

	"github.com/ajroetker/go-quicksort/quicksort"
	"github.com/ajroetker/go-quicksort/quicksort/contrib/intio"
	"github.com/ajroetker/go-quicksort/quicksort/contrib/workerpool"
	"github.com/convox/logger"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// ErrNotSorted is returned by --check when the sort left values out of order.
var ErrNotSorted = errors.New("result is not sorted")

// run loads, sorts and writes according to cfg. Logs go to stderr when
// cfg.Verbose is set.
func run(cfg Config, stdin io.Reader, stdout, stderr io.Writer) error {
	strategy, err := cfg.Validate()
	if err != nil {
		return err
	}

	logw := io.Discard
	if cfg.Verbose {
		logw = stderr
	}
	log := logger.NewWriter("ns=qsort", logw)

	l := log.At("load").Start()
	data, err := load(cfg.Input, cfg.Count, stdin)
	if err != nil {
		return l.Error(err)
	}
	l.Successf("input=%q count=%s", cfg.Input, humanize.Comma(int64(len(data))))

	var pool *workerpool.Pool
	if strategy == quicksort.StrategyParallel {
		pool = workerpool.New(cfg.Workers)
		defer pool.Close()
	}

	l = log.At("sort").Start()
	if err := quicksort.SortWith(data, strategy, pool); err != nil {
		return l.Error(err)
	}
	if cfg.Check && !quicksort.IsSorted(data) {
		return l.Error(errors.WithStack(ErrNotSorted))
	}
	l.Successf("strategy=%s", strategy)

	l = log.At("write").Start()
	var opts []intio.Option
	if cfg.TrailingSpace {
		opts = append(opts, intio.WithTrailingSpace())
	}
	n, err := write(cfg.Output, data, stdout, opts...)
	if err != nil {
		return l.Error(err)
	}
	l.Successf("output=%q size=%s", cfg.Output, humanize.Bytes(uint64(n)))

	return nil
}

func load(input string, count int, stdin io.Reader) ([]int, error) {
	if input == "-" {
		return intio.Load(stdin, count)
	}
	return intio.LoadFile(input, count)
}

// write writes data to output, or to stdout for "-", and returns the number
// of bytes written.
func write(output string, data []int, stdout io.Writer, opts ...intio.Option) (n int64, err error) {
	w := stdout
	if output != "-" {
		f, ferr := os.Create(output)
		if ferr != nil {
			return 0, errors.Wrap(ferr, "output")
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = errors.Wrap(cerr, "output")
			}
		}()
		w = f
	}

	cw := &countingWriter{w: w}
	err = intio.Write(cw, data, opts...)
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
