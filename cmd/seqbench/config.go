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

package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "SEQBENCH"

var errConfig = errors.New("invalid configuration")

// Config is the merged result of defaults, SEQBENCH_* variables and flags.
type Config struct {
	Iterations int
	Size       int
	Seed       int64
	Workloads  []string
	Workers    int
	Trials     int
	LogLevel   string
	Pretty     bool
}

// loadConfig reads the flags of cmd, falling back to the environment and
// then to the flag defaults.
func loadConfig(cmd *cobra.Command) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Config{}, fmt.Errorf("failed to bind flags: %w", err)
	}

	return Config{
		Iterations: v.GetInt("iterations"),
		Size:       v.GetInt("size"),
		Seed:       v.GetInt64("seed"),
		Workloads:  splitList(v.GetStringSlice("workloads")),
		Workers:    v.GetInt("workers"),
		Trials:     v.GetInt("trials"),
		LogLevel:   v.GetString("log-level"),
		Pretty:     v.GetBool("pretty"),
	}, nil
}

// splitList flattens comma-separated entries. Lists from the environment
// arrive as a single space-separated value.
func splitList(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func (c Config) checkCommon() error {
	if c.Size < 1 {
		return fmt.Errorf("%w: size must be positive, got %d", errConfig, c.Size)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", errConfig, c.Workers)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", errConfig, c.LogLevel)
	}
	return nil
}

func (c Config) checkRun() error {
	if err := c.checkCommon(); err != nil {
		return err
	}
	if c.Iterations < 1 {
		return fmt.Errorf("%w: iterations must be positive, got %d", errConfig, c.Iterations)
	}
	if len(c.Workloads) == 0 {
		return fmt.Errorf("%w: no workloads selected", errConfig)
	}
	known := workloadNames()
	for _, name := range c.Workloads {
		if !slices.Contains(known, name) {
			return fmt.Errorf("%w: unknown workload %q (have %s)", errConfig, name, strings.Join(known, ", "))
		}
	}
	return nil
}

func (c Config) checkVerify() error {
	if err := c.checkCommon(); err != nil {
		return err
	}
	if c.Trials < 1 {
		return fmt.Errorf("%w: trials must be positive, got %d", errConfig, c.Trials)
	}
	return nil
}
