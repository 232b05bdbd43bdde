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

// Command sortbench times bubble sort, merge sort and quick sort on random,
// partially sorted and reversed integer sequences and prints the average,
// minimum and maximum time per input shape.
//
// Usage:
//
//	sortbench
//
// The benchmark takes no arguments: every algorithm sorts 7000 elements,
// 10 times per input shape, after 3 untimed warm-up sorts of 1000 elements.
// The report is written to standard output; progress messages go to
// standard error.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand(defaultOptions())
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
