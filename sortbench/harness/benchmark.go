// Copyright 2025 go-sortbench Authors
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

package harness

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ajroetker/go-sortbench/sortbench/gen"
	"github.com/ajroetker/go-sortbench/sortbench/sort"
)

// Reporter receives the output of a Benchmark.
type Reporter interface {
	// Header announces an algorithm before its inputs are generated.
	Header(name string, size, runs int) error

	// Line reports the aggregate of one distribution.
	Line(label string, stats Stats) error
}

// Result is the outcome of one algorithm on one distribution.
type Result struct {
	Algorithm    string
	Distribution gen.Distribution
	Samples      []time.Duration
	Stats        Stats
}

// Benchmark drives the algorithm x distribution x run matrix.
type Benchmark struct {
	cfg      Config
	gen      *gen.Generator
	runner   *Runner
	reporter Reporter
	logger   *slog.Logger
}

// New returns a Benchmark for cfg writing to reporter.
func New(cfg Config, reporter Reporter) (*Benchmark, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if reporter == nil {
		return nil, fmt.Errorf("%w: nil reporter", ErrInvalidConfig)
	}
	g := &gen.Generator{}
	if cfg.Seed != nil {
		g = gen.NewSeeded(*cfg.Seed)
	}
	return &Benchmark{
		cfg:      cfg,
		gen:      g,
		runner:   NewRunner(),
		reporter: reporter,
		logger:   cfg.logger(),
	}, nil
}

// Run benchmarks every algorithm in order and returns one Result per
// algorithm and distribution.
func (b *Benchmark) Run(algorithms []sort.Algorithm) ([]Result, error) {
	if len(algorithms) == 0 {
		return nil, fmt.Errorf("%w: no algorithms", ErrInvalidConfig)
	}
	for i, alg := range algorithms {
		if alg.Name == "" || alg.Sort == nil {
			return nil, fmt.Errorf("%w: algorithm %d needs a name and a sort function", ErrInvalidConfig, i)
		}
	}

	var results []Result
	for _, alg := range algorithms {
		res, err := b.RunAlgorithm(alg)
		if err != nil {
			return results, err
		}
		results = append(results, res...)
	}
	return results, nil
}

// RunAlgorithm benchmarks a single algorithm over every distribution.
func (b *Benchmark) RunAlgorithm(alg sort.Algorithm) ([]Result, error) {
	started := time.Now()
	if err := b.reporter.Header(alg.Name, b.cfg.Size, b.cfg.Runs); err != nil {
		return nil, fmt.Errorf("reporting %s header: %w", alg.Name, err)
	}

	// Generate everything first so generation cost stays out of the timings.
	dists := gen.Distributions()
	inputs := make([][][]int, len(dists))
	for i, dist := range dists {
		inputs[i] = make([][]int, b.cfg.Runs)
		for run := range b.cfg.Runs {
			inputs[i][run] = b.gen.Generate(dist, b.cfg.Size)
		}
	}

	b.warmup(alg)

	results := make([]Result, 0, len(dists))
	for i, dist := range dists {
		samples := make([]time.Duration, b.cfg.Runs)
		for run, src := range inputs[i] {
			samples[run] = b.runner.Time(alg.Sort, src)
			b.logger.Debug("timed run",
				"algorithm", alg.Name, "distribution", dist.String(),
				"run", run, "elapsed", samples[run])
		}
		// Inputs of this distribution are no longer needed.
		inputs[i] = nil

		stats := Aggregate(samples)
		if err := b.reporter.Line(dist.String(), stats); err != nil {
			return results, fmt.Errorf("reporting %s/%v: %w", alg.Name, dist, err)
		}
		results = append(results, Result{
			Algorithm:    alg.Name,
			Distribution: dist,
			Samples:      samples,
			Stats:        stats,
		})
	}

	b.logger.Info("benchmarked algorithm", "algorithm", alg.Name,
		"size", b.cfg.Size, "runs", b.cfg.Runs, "elapsed", time.Since(started))
	return results, nil
}

// warmup sorts throwaway random inputs and discards the timings.
func (b *Benchmark) warmup(alg sort.Algorithm) {
	for range b.cfg.WarmupRuns {
		alg.Sort(b.gen.Random(b.cfg.WarmupSize))
	}
}
