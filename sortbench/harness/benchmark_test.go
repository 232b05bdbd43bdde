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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-sortbench/sortbench/gen"
	"github.com/ajroetker/go-sortbench/sortbench/sort"
)

type header struct {
	name       string
	size, runs int
}

type line struct {
	label string
	stats Stats
}

// recorder is a Reporter that keeps every call in order.
type recorder struct {
	events []any
	err    error
}

func (r *recorder) Header(name string, size, runs int) error {
	r.events = append(r.events, header{name, size, runs})
	return r.err
}

func (r *recorder) Line(label string, stats Stats) error {
	r.events = append(r.events, line{label, stats})
	return r.err
}

func quietConfig() Config {
	seed := uint64(2025)
	return Config{
		Size:       64,
		Runs:       4,
		WarmupRuns: 3,
		WarmupSize: 16,
		Seed:       &seed,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero_size", func(c *Config) { c.Size = 0 }},
		{"negative_runs", func(c *Config) { c.Runs = -1 }},
		{"zero_runs", func(c *Config) { c.Runs = 0 }},
		{"negative_warmup", func(c *Config) { c.WarmupRuns = -2 }},
		{"warmup_without_size", func(c *Config) { c.WarmupSize = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	noWarmup := DefaultConfig()
	noWarmup.WarmupRuns, noWarmup.WarmupSize = 0, 0
	assert.NoError(t, noWarmup.Validate())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 7000, cfg.Size)
	assert.Equal(t, 10, cfg.Runs)
	assert.Equal(t, 3, cfg.WarmupRuns)
	assert.Equal(t, 1000, cfg.WarmupSize)
	assert.Nil(t, cfg.Seed)
}

func TestNewRejectsInvalid(t *testing.T) {
	_, err := New(Config{}, &recorder{})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(quietConfig(), nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRunRejectsBadAlgorithms(t *testing.T) {
	b, err := New(quietConfig(), &recorder{})
	require.NoError(t, err)

	_, err = b.Run(nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = b.Run([]sort.Algorithm{{Name: "nameless sort"}})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = b.Run([]sort.Algorithm{{Sort: sort.MergeSort[int]}})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRunReportsInOrder(t *testing.T) {
	rec := &recorder{}
	cfg := quietConfig()
	b, err := New(cfg, rec)
	require.NoError(t, err)

	results, err := b.Run(sort.Builtin())
	require.NoError(t, err)
	require.Len(t, results, 9)
	require.Len(t, rec.events, 12)

	labels := []string{"Random", "Partially Sorted", "Reversed"}
	for i, alg := range sort.Builtin() {
		section := rec.events[i*4 : i*4+4]
		assert.Equal(t, header{alg.Name, cfg.Size, cfg.Runs}, section[0])
		for j, label := range labels {
			l, ok := section[j+1].(line)
			require.True(t, ok, "event %d is not a line", i*4+j+1)
			assert.Equal(t, label, l.label)
			assert.Equal(t, cfg.Runs, l.stats.Count)

			res := results[i*3+j]
			assert.Equal(t, alg.Name, res.Algorithm)
			assert.Equal(t, gen.Distributions()[j], res.Distribution)
			assert.Len(t, res.Samples, cfg.Runs)
			assert.Equal(t, Aggregate(res.Samples), res.Stats)
			assert.Equal(t, res.Stats, l.stats)
		}
	}
}

// TestRunAlgorithmCallPattern checks warm-up parity and input shapes.
func TestRunAlgorithmCallPattern(t *testing.T) {
	cfg := quietConfig()
	b, err := New(cfg, &recorder{})
	require.NoError(t, err)

	var calls [][]int
	spy := sort.Algorithm{Name: "Spy Sort", Sort: func(data []int) {
		calls = append(calls, slices.Clone(data))
		sort.QuickSort(data)
	}}

	_, err = b.RunAlgorithm(spy)
	require.NoError(t, err)
	require.Len(t, calls, cfg.WarmupRuns+3*cfg.Runs)

	for i, c := range calls[:cfg.WarmupRuns] {
		assert.Len(t, c, cfg.WarmupSize, "warm-up call %d", i)
	}
	timed := calls[cfg.WarmupRuns:]
	for i, c := range timed {
		require.Len(t, c, cfg.Size, "timed call %d", i)
		switch dist := gen.Distributions()[i/cfg.Runs]; dist {
		case gen.PartiallySorted:
			assert.True(t, slices.IsSorted(c[:cfg.Size/2]), "call %d", i)
		case gen.Reversed:
			assert.Equal(t, gen.GenerateReversed(cfg.Size), c, "call %d", i)
		}
		for _, v := range c {
			assert.Less(t, v, cfg.Size*10+1)
		}
	}
}

func TestRunIsReproducibleWithSeed(t *testing.T) {
	capture := func() [][]int {
		b, err := New(quietConfig(), &recorder{})
		require.NoError(t, err)
		var inputs [][]int
		_, err = b.RunAlgorithm(sort.Algorithm{Name: "Capture", Sort: func(data []int) {
			inputs = append(inputs, slices.Clone(data))
		}})
		require.NoError(t, err)
		return inputs
	}
	assert.Equal(t, capture(), capture())
}

func TestRunPropagatesReporterError(t *testing.T) {
	errBroken := errors.New("broken pipe")
	rec := &recorder{err: errBroken}
	b, err := New(quietConfig(), rec)
	require.NoError(t, err)

	_, err = b.Run(sort.Builtin())
	require.Error(t, err)
	assert.ErrorIs(t, err, errBroken)
	assert.Len(t, rec.events, 1, "must stop after the failed header")
}

// lineFailer fails on the first Line call only.
type lineFailer struct{ recorder }

func (l *lineFailer) Line(label string, stats Stats) error {
	l.events = append(l.events, line{label, stats})
	return fmt.Errorf("disk full")
}

func TestRunStopsOnLineError(t *testing.T) {
	rep := &lineFailer{}
	b, err := New(quietConfig(), rep)
	require.NoError(t, err)

	results, err := b.Run(sort.Builtin())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bubble Sort/Random")
	assert.Empty(t, results)
	assert.Len(t, rep.events, 2)
}
