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

// Package gen produces the integer test sequences fed to the sorting
// benchmark.
//
// Three distribution shapes are supported:
//   - Random: values drawn uniformly from [0, size*10)
//   - PartiallySorted: a random sequence whose first half is sorted
//   - Reversed: size, size-1, ..., 1
//
// The package-level functions draw from the unseeded global source, so
// successive calls differ. Use NewSeeded for reproducible fixtures.
package gen

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// Distribution is the shape of a generated test sequence.
type Distribution int

const (
	// Random draws every element independently.
	Random Distribution = iota

	// PartiallySorted sorts the first half of a random sequence.
	PartiallySorted

	// Reversed is strictly descending and fully deterministic.
	Reversed
)

// Distributions returns every distribution kind in reporting order.
func Distributions() []Distribution {
	return []Distribution{Random, PartiallySorted, Reversed}
}

// String returns the human-readable label used in reports.
func (d Distribution) String() string {
	switch d {
	case Random:
		return "Random"
	case PartiallySorted:
		return "Partially Sorted"
	case Reversed:
		return "Reversed"
	default:
		return fmt.Sprintf("Distribution(%d)", int(d))
	}
}

// Generator produces test sequences from a random source.
// The zero value uses the global unseeded source.
type Generator struct {
	rng *rand.Rand
}

// NewSeeded returns a Generator whose output is fully determined by seed.
func NewSeeded(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (g *Generator) intN(n int) int {
	if g == nil || g.rng == nil {
		return rand.IntN(n)
	}
	return g.rng.IntN(n)
}

// Random returns size integers drawn uniformly from [0, size*10).
func (g *Generator) Random(size int) []int {
	data := make([]int, size)
	if size == 0 {
		return data
	}
	limit := size * 10
	for i := range data {
		data[i] = g.intN(limit)
	}
	return data
}

// PartiallySorted returns a random sequence whose first size/2 elements are
// in non-decreasing order. The second half is left as drawn.
func (g *Generator) PartiallySorted(size int) []int {
	data := g.Random(size)
	slices.Sort(data[:size/2])
	return data
}

// Reversed returns the strictly descending sequence size, size-1, ..., 1.
func (g *Generator) Reversed(size int) []int {
	data := make([]int, size)
	for i := range data {
		data[i] = size - i
	}
	return data
}

// Generate dispatches to the generator for dist. It panics on an unknown
// distribution, which is a programming error.
func (g *Generator) Generate(dist Distribution, size int) []int {
	switch dist {
	case Random:
		return g.Random(size)
	case PartiallySorted:
		return g.PartiallySorted(size)
	case Reversed:
		return g.Reversed(size)
	default:
		panic(fmt.Sprintf("gen: unknown %v", dist))
	}
}

// defaultGenerator uses the global source.
var defaultGenerator = &Generator{}

// GenerateRandom returns size integers drawn uniformly from [0, size*10).
func GenerateRandom(size int) []int {
	return defaultGenerator.Random(size)
}

// GeneratePartiallySorted returns a random sequence with its first half sorted.
func GeneratePartiallySorted(size int) []int {
	return defaultGenerator.PartiallySorted(size)
}

// GenerateReversed returns size, size-1, ..., 1.
func GenerateReversed(size int) []int {
	return defaultGenerator.Reversed(size)
}
