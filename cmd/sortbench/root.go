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

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-sortbench/sortbench/harness"
	"github.com/ajroetker/go-sortbench/sortbench/platform"
	"github.com/ajroetker/go-sortbench/sortbench/report"
	"github.com/ajroetker/go-sortbench/sortbench/sort"
)

// options holds what the root command wires together.
type options struct {
	config harness.Config
	stdout io.Writer
	stderr io.Writer
}

func defaultOptions() options {
	return options{
		config: harness.DefaultConfig(),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

func newRootCommand(opts options) *cobra.Command {
	return &cobra.Command{
		Use:   "sortbench",
		Short: "Compare bubble, merge and quick sort on fixed-size integer inputs",
		Long: fmt.Sprintf(
			"sortbench sorts %d integers %d times per input shape (random, partially sorted, reversed)\n"+
				"with each algorithm and reports the average, minimum and maximum time in milliseconds.",
			opts.config.Size, opts.config.Runs),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(opts)
		},
	}
}

func run(opts options) error {
	logger := newLogger(opts.stderr)
	cfg := opts.config
	cfg.Logger = logger

	logger.Info("starting benchmark", "platform", platform.Detect().String(),
		"size", cfg.Size, "runs", cfg.Runs)
	started := time.Now()

	b, err := harness.New(cfg, report.New(opts.stdout))
	if err != nil {
		return err
	}
	if _, err := b.Run(sort.Builtin()); err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}

	logger.Info("benchmark complete", "elapsed", time.Since(started).Round(time.Millisecond))
	return nil
}

// newLogger returns the progress logger. The report owns stdout.
func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
