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

// Command qsort reads whitespace-separated integers from a text file, sorts
// them with a Lomuto quicksort and prints them on one line to stdout.
//
// Usage:
//
//	qsort                                  # first 10000 values of nums.txt
//	qsort -n 0 data.txt                    # every value in data.txt
//	qsort -i - -s parallel -w 8 < data.txt # read stdin, sort on 8 workers
//	qsort --config qsort.yaml --verbose    # settings from a YAML file, log to stderr
//
// Flags override the config file, which overrides the QSORT_STRATEGY
// environment variable and the built-in defaults.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
		os.Exit(1)
	}
}
