// Copyright 2025 go-lazyseq Authors
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

// Command seqbench measures the lazy sequence engine against an eager
// baseline and cross-checks its sorting paths.
//
// Usage:
//
//	seqbench run --size 100000 --iterations 50
//	seqbench run --workloads orderby,window --pretty
//	seqbench verify --trials 500 --workers 8
//
// Every flag can also be set from the environment with the SEQBENCH_ prefix,
// for example SEQBENCH_SIZE=5000 or SEQBENCH_LOG_LEVEL=debug. Flags take
// precedence over the environment.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "seqbench",
		Short:         "Benchmark and verify the lazy sequence engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.Int("size", 10000, "Number of generated elements")
	pf.Int64("seed", 1, "Seed for generated data")
	pf.Int("workers", 0, "Worker goroutines (0 means GOMAXPROCS)")
	pf.String("log-level", "info", "Log level: debug, info, warn or error")
	pf.Bool("pretty", false, "Write human-readable logs instead of JSON")

	root.AddCommand(newRunCmd(), newVerifyCmd())
	return root
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Time each workload through the lazy engine and the eager baseline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.checkRun(); err != nil {
				return err
			}
			log, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.Pretty)
			if err != nil {
				return err
			}
			return runBench(cmd.OutOrStdout(), cfg, log)
		},
	}
	cmd.Flags().Int("iterations", 20, "Timed runs per workload and engine")
	cmd.Flags().StringSlice("workloads", workloadNames(), "Workloads to run")
	return cmd
}

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check full sort, selection and partial sort on random inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.checkVerify(); err != nil {
				return err
			}
			log, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.Pretty)
			if err != nil {
				return err
			}
			return runVerify(cfg, log)
		},
	}
	cmd.Flags().Int("trials", 200, "Number of random trials")
	return cmd
}
