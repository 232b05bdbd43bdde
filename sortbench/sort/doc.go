// Package sort provides the textbook in-place sorting algorithms measured by
// sortbench: bubble sort, merge sort and quick sort.
//
// # Algorithms
//
//   - BubbleSort: adjacent compare-and-swap passes, stopping after a pass that
//     performs no swap. O(n) on sorted input, O(n²) otherwise.
//   - MergeSort: top-down merge sort with a stable two-pointer merge.
//     O(n log n) in every case, O(n) auxiliary space per merge.
//   - QuickSort: Lomuto partition around the last element. The pivot choice is
//     fixed, so sorted and reverse-sorted input hit the O(n²) worst case.
//
// Every algorithm has a ...Func variant that orders elements with a three-way
// comparison function, in the style of slices.SortFunc.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-sortbench/sortbench/sort"
//
//	func Process(data []int) {
//	    sort.MergeSort(data) // In-place ascending sort
//	}
//
// Algorithms are plain functions so they can be passed around as values; see
// Algorithm and Builtin for the named set the benchmark runs.
package sort
