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

package sort

import "cmp"

// Func sorts a sequence of ints in place.
type Func func(data []int)

// Algorithm is a named sorting routine.
type Algorithm struct {
	Name string
	Sort Func
}

// Builtin returns the algorithms measured by the benchmark, in reporting order.
func Builtin() []Algorithm {
	return []Algorithm{
		{Name: "Bubble Sort", Sort: BubbleSort[int]},
		{Name: "Merge Sort", Sort: MergeSort[int]},
		{Name: "Quick Sort", Sort: QuickSort[int]},
	}
}

// BubbleSort sorts data in place in ascending order.
func BubbleSort[T cmp.Ordered](data []T) {
	BubbleSortFunc(data, cmp.Compare[T])
}

// BubbleSortFunc sorts data in place using compare, which must return a
// negative number when a < b, zero when equal and a positive number when a > b.
func BubbleSortFunc[E any](data []E, compare func(a, b E) int) {
	n := len(data)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if compare(data[j], data[j+1]) > 0 {
				data[j], data[j+1] = data[j+1], data[j]
				swapped = true
			}
		}
		// No swap in a full pass: the rest is already in order.
		if !swapped {
			return
		}
	}
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted[T cmp.Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}
