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

// QuickSort sorts data in place in ascending order.
//
// The pivot is always the last element, so already sorted or reverse sorted
// input degrades to O(n²) comparisons and O(n) recursion depth.
func QuickSort[T cmp.Ordered](data []T) {
	QuickSortFunc(data, cmp.Compare[T])
}

// QuickSortFunc sorts data in place using compare. It is not stable.
func QuickSortFunc[E any](data []E, compare func(a, b E) int) {
	if len(data) <= 1 {
		return
	}
	p := Partition(data, compare)
	QuickSortFunc(data[:p], compare)
	QuickSortFunc(data[p+1:], compare)
}

// Partition performs a Lomuto partition of data around its last element and
// returns the pivot's final index p. Afterwards:
//   - data[0:p] < pivot
//   - data[p] == pivot
//   - data[p+1:n] >= pivot
//
// data must not be empty.
func Partition[E any](data []E, compare func(a, b E) int) int {
	hi := len(data) - 1
	pivot := data[hi]
	boundary := 0
	for j := 0; j < hi; j++ {
		if compare(data[j], pivot) < 0 {
			data[boundary], data[j] = data[j], data[boundary]
			boundary++
		}
	}
	data[boundary], data[hi] = data[hi], data[boundary]
	return boundary
}
