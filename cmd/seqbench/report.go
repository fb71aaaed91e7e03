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
	"fmt"
	"io"
	"math"
	"runtime"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/stat"
)

// header describes the machine and parameters of a run.
type header struct {
	goVersion  string
	platform   string
	maxProcs   int
	features   []string
	size       int
	iterations int
	seed       int64
}

func newHeader(cfg Config) header {
	return header{
		goVersion:  runtime.Version(),
		platform:   runtime.GOOS + "/" + runtime.GOARCH,
		maxProcs:   runtime.GOMAXPROCS(0),
		features:   cpuFeatures(),
		size:       cfg.Size,
		iterations: cfg.Iterations,
		seed:       cfg.Seed,
	}
}

// summary is the statistics of one measurement.
type summary struct {
	workload string
	engine   string
	mean     time.Duration
	stddev   time.Duration
	p50      time.Duration
	p95      time.Duration
	bytes    uint64
}

func summarize(m measurement) summary {
	sorted := slices.Clone(m.samples)
	slices.Sort(sorted)

	mean, stddev := stat.MeanStdDev(sorted, nil)
	if len(sorted) < 2 || math.IsNaN(stddev) {
		stddev = 0
	}
	return summary{
		workload: m.workload,
		engine:   m.engine,
		mean:     time.Duration(mean),
		stddev:   time.Duration(stddev),
		p50:      time.Duration(stat.Quantile(0.5, stat.Empirical, sorted, nil)),
		p95:      time.Duration(stat.Quantile(0.95, stat.Empirical, sorted, nil)),
		bytes:    m.bytes,
	}
}

// ratio formats how many times faster the lazy engine was on average.
func ratio(lazy, eager summary) string {
	if lazy.mean <= 0 {
		return "-"
	}
	return humanize.FtoaWithDigits(float64(eager.mean)/float64(lazy.mean), 2) + "x"
}

func writeReport(w io.Writer, h header, results []measurement) error {
	features := "none detected"
	if len(h.features) > 0 {
		features = strings.Join(h.features, " ")
	}
	fmt.Fprintf(w, "go: %s  platform: %s  GOMAXPROCS: %d\n", h.goVersion, h.platform, h.maxProcs)
	fmt.Fprintf(w, "cpu: %s\n", features)
	fmt.Fprintf(w, "size: %s  iterations: %s  seed: %d\n\n",
		humanize.Comma(int64(h.size)), humanize.Comma(int64(h.iterations)), h.seed)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WORKLOAD\tENGINE\tMEAN\tSTDDEV\tP50\tP95\tALLOC/OP\tSPEEDUP")

	summaries := make([]summary, len(results))
	for i, m := range results {
		summaries[i] = summarize(m)
	}
	for i, s := range summaries {
		speedup := "-"
		if s.engine == engineLazy && i+1 < len(summaries) && summaries[i+1].workload == s.workload {
			speedup = ratio(s, summaries[i+1])
		}
		fmt.Fprintf(tw, "%s\t%s\t%v\t%v\t%v\t%v\t%s\t%s\n",
			s.workload, s.engine, s.mean, s.stddev, s.p50, s.p95, humanize.IBytes(s.bytes), speedup)
	}
	return tw.Flush()
}
