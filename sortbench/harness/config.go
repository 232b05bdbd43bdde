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

// Package harness times sorting algorithms over generated inputs and
// aggregates the results.
//
// A Benchmark runs strictly sequentially. For each algorithm it pre-generates
// every input, performs a few untimed warm-up sorts, times each run on a
// private clone of its input, and hands one Stats per distribution to a
// Reporter.
//
// Usage:
//
//	b, err := harness.New(harness.DefaultConfig(), report.New(os.Stdout))
//	if err != nil {
//	    return err
//	}
//	results, err := b.Run(sort.Builtin())
package harness

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrInvalidConfig is returned when a Config or algorithm set cannot be run.
var ErrInvalidConfig = errors.New("invalid benchmark config")

const (
	// DefaultSize is the length of every timed input sequence.
	DefaultSize = 7000

	// DefaultRuns is the number of timed runs per algorithm and distribution.
	DefaultRuns = 10

	// DefaultWarmupRuns is the number of untimed sorts before timing starts.
	DefaultWarmupRuns = 3

	// DefaultWarmupSize is the length of each warm-up input.
	DefaultWarmupSize = 1000
)

// Config controls a Benchmark.
type Config struct {
	// Size is the length of every timed input sequence.
	Size int

	// Runs is the number of timed runs per algorithm and distribution.
	Runs int

	// WarmupRuns untimed sorts of WarmupSize random elements are executed
	// before each algorithm's timed runs. Zero disables warm-up.
	WarmupRuns int
	WarmupSize int

	// Seed makes input generation reproducible. Nil draws from the global
	// unseeded source.
	Seed *uint64

	// Logger receives progress messages. Nil uses slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the configuration of the shipped benchmark.
func DefaultConfig() Config {
	return Config{
		Size:       DefaultSize,
		Runs:       DefaultRuns,
		WarmupRuns: DefaultWarmupRuns,
		WarmupSize: DefaultWarmupSize,
	}
}

// Validate reports whether c describes a runnable benchmark.
func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalidConfig, c.Size)
	case c.Runs <= 0:
		return fmt.Errorf("%w: runs must be positive, got %d", ErrInvalidConfig, c.Runs)
	case c.WarmupRuns < 0:
		return fmt.Errorf("%w: warm-up runs must not be negative, got %d", ErrInvalidConfig, c.WarmupRuns)
	case c.WarmupRuns > 0 && c.WarmupSize <= 0:
		return fmt.Errorf("%w: warm-up size must be positive, got %d", ErrInvalidConfig, c.WarmupSize)
	}
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}
