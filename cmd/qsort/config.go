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
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds every setting of a qsort run.
type Config struct {
	Input    string `yaml:"input"`    // input file, "-" for stdin
	Count    int    `yaml:"count"`    // values to read, 0 for all
	Output   string `yaml:"output"`   // output file, "-" for stdout
	Strategy string `yaml:"strategy"` // recursive, iterative or parallel
	Workers  int    `yaml:"workers"`  // parallel workers, 0 for GOMAXPROCS
	Check    bool   `yaml:"check"`    // verify the order after sorting
	Verbose  bool   `yaml:"verbose"`  // log progress to stderr

	TrailingSpace bool `yaml:"trailing_space"` // end every value, including the last, with a space
}

// DefaultConfig returns the settings used when nothing else is given.
func DefaultConfig() Config {
	return Config{
		Input:    "nums.txt",
		Count:    10000,
		Output:   "-",
		Strategy: quicksort.CurrentStrategy().String(),
	}
}

// loadConfigFile overlays the YAML file at path onto cfg. Keys missing from
// the file keep their current values; unknown keys are an error.
func loadConfigFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "config")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	// An empty file decodes to io.EOF and changes nothing.
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrapf(err, "config %s", path)
	}
	return nil
}

// Validate checks cfg and returns the parsed strategy.
func (c Config) Validate() (quicksort.Strategy, error) {
	if c.Input == "" {
		return 0, errors.New("input must not be empty")
	}
	if c.Output == "" {
		return 0, errors.New("output must not be empty")
	}
	if c.Count < 0 {
		return 0, errors.Errorf("count must be >= 0, got %d", c.Count)
	}
	if c.Workers < 0 {
		return 0, errors.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	return quicksort.ParseStrategy(c.Strategy)
}
