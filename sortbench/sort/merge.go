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

// MergeSort sorts data in place in ascending order. The sort is stable.
func MergeSort[T cmp.Ordered](data []T) {
	MergeSortFunc(data, cmp.Compare[T])
}

// MergeSortFunc sorts data in place using compare, keeping the original
// order of elements that compare equal.
func MergeSortFunc[E any](data []E, compare func(a, b E) int) {
	if len(data) <= 1 {
		return
	}
	mid := len(data) / 2
	MergeSortFunc(data[:mid], compare)
	MergeSortFunc(data[mid:], compare)
	merge(data, mid, compare)
}

// merge combines the sorted runs data[:mid] and data[mid:].
func merge[E any](data []E, mid int, compare func(a, b E) int) {
	left := make([]E, mid)
	right := make([]E, len(data)-mid)
	copy(left, data[:mid])
	copy(right, data[mid:])

	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		// Ties take the left element to keep the merge stable.
		if compare(left[i], right[j]) <= 0 {
			data[k] = left[i]
			i++
		} else {
			data[k] = right[j]
			j++
		}
		k++
	}
	k += copy(data[k:], left[i:])
	copy(data[k:], right[j:])
}
