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
	"strings"

	"github.com/ajroetker/go-quicksort/quicksort"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		configFile string
		flags      = DefaultConfig()
	)

	strategyNames := lo.Map(quicksort.Strategies(), func(s quicksort.Strategy, _ int) string {
		return s.String()
	})

	cmd := &cobra.Command{
		Use:   "qsort [flags] [input]",
		Short: "Sort whitespace-separated integers with a Lomuto quicksort",
		Long: `qsort reads integers from a text file, sorts them in place and writes
them to stdout as a single line of space-separated values.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := DefaultConfig()
			if configFile != "" {
				if err := loadConfigFile(configFile, &cfg); err != nil {
					return err
				}
			}

			fs := cmd.Flags()
			if fs.Changed("input") {
				cfg.Input = flags.Input
			}
			if fs.Changed("count") {
				cfg.Count = flags.Count
			}
			if fs.Changed("output") {
				cfg.Output = flags.Output
			}
			if fs.Changed("strategy") {
				cfg.Strategy = flags.Strategy
			}
			if fs.Changed("workers") {
				cfg.Workers = flags.Workers
			}
			if fs.Changed("check") {
				cfg.Check = flags.Check
			}
			if fs.Changed("verbose") {
				cfg.Verbose = flags.Verbose
			}
			if fs.Changed("trailing-space") {
				cfg.TrailingSpace = flags.TrailingSpace
			}
			if len(args) == 1 {
				cfg.Input = args[0]
			}

			return run(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&configFile, "config", "", "YAML config file")
	fs.StringVarP(&flags.Input, "input", "i", flags.Input, `input file, "-" for stdin`)
	fs.IntVarP(&flags.Count, "count", "n", flags.Count, "number of integers to read, 0 for all")
	fs.StringVarP(&flags.Output, "output", "o", flags.Output, `output file, "-" for stdout`)
	fs.StringVarP(&flags.Strategy, "strategy", "s", flags.Strategy, "sort strategy ("+strings.Join(strategyNames, ", ")+")")
	fs.IntVarP(&flags.Workers, "workers", "w", flags.Workers, "workers for the parallel strategy, 0 for GOMAXPROCS")
	fs.BoolVar(&flags.Check, "check", flags.Check, "verify the result is sorted before writing it")
	fs.BoolVarP(&flags.Verbose, "verbose", "v", flags.Verbose, "log progress to stderr")
	fs.BoolVar(&flags.TrailingSpace, "trailing-space", flags.TrailingSpace, `print "%d " per value, leaving a space before the newline`)

	return cmd
}
