package util

import (
	"math/bits"
	"strings"
)

// Ranges of at most this many elements are finished with insertion sort.
const insertionSortCutoff = 12

// Sort orders s in place so that cmp(s[i], s[i+1]) <= 0 for every adjacent
// pair. It is a partition-exchange sort around the middle element and is
// not stable.
//
// The sort always recurses into the smaller partition and loops over the
// larger one, so recursion depth never exceeds MaxSortDepth(len(s)). After
// 2*MaxSortDepth(len(s)) partition rounds on one range the rest of that
// range is heap sorted, which keeps degenerate inputs (for example many
// equal keys) at O(n log n).
//
// cmp must be a consistent ordering; if it is not, the resulting order is
// unspecified but Sort still terminates without panicking.
func Sort[T any](s []T, cmp func(a, b T) int) {
	if len(s) < 2 {
		return
	}
	quickSort(s, 0, len(s)-1, cmp, 2*MaxSortDepth(len(s)), 0)
}

// SortStrings sorts s by byte-wise comparison.
func SortStrings(s []string) {
	Sort(s, strings.Compare)
}

// MaxSortDepth is the deepest recursion Sort reaches for n elements.
func MaxSortDepth(n int) int {
	if n < 2 {
		return 0
	}
	return bits.Len(uint(n))
}

// quickSort sorts s[lo..hi] inclusive and reports the deepest recursion
// level it reached.
func quickSort[T any](s []T, lo, hi int, cmp func(a, b T) int, budget, level int) int {
	deepest := level
	for hi-lo+1 > insertionSortCutoff {
		if budget == 0 {
			heapSort(s[lo:hi+1], cmp)
			return deepest
		}
		budget--

		p := partition(s, lo, hi, cmp)
		var d int
		if p-lo < hi-p {
			d = quickSort(s, lo, p-1, cmp, budget, level+1)
			lo = p + 1
		} else {
			d = quickSort(s, p+1, hi, cmp, budget, level+1)
			hi = p - 1
		}
		deepest = max(deepest, d)
	}
	insertionSort(s, lo, hi, cmp)
	return deepest
}

// partition moves the middle element to hi, sweeps both cursors towards
// each other swapping out-of-order pairs, and drops the pivot where they
// meet. Elements left of the returned index compare <= pivot, elements
// right of it compare >= pivot.
func partition[T any](s []T, lo, hi int, cmp func(a, b T) int) int {
	mid := int(uint(lo+hi) >> 1)
	s[mid], s[hi] = s[hi], s[mid]
	pivot := s[hi]

	i, j := lo, hi
	for i < j {
		for i < j && cmp(s[i], pivot) <= 0 {
			i++
		}
		for i < j && cmp(pivot, s[j]) <= 0 {
			j--
		}
		if i < j {
			s[i], s[j] = s[j], s[i]
		}
	}
	// s[hi] still holds the pivot unless cmp is inconsistent; swapping
	// keeps the slice a permutation of its input either way.
	s[j], s[hi] = s[hi], s[j]
	return j
}

// insertionSort sorts s[lo..hi] inclusive. Empty and single element ranges
// (including lo > hi) are left alone; two elements are a single
// compare-and-swap.
func insertionSort[T any](s []T, lo, hi int, cmp func(a, b T) int) {
	for i := lo + 1; i <= hi; i++ {
		for j := i; j > lo && cmp(s[j-1], s[j]) > 0; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

func heapSort[T any](s []T, cmp func(a, b T) int) {
	n := len(s)
	for i := (n - 1) / 2; i >= 0; i-- {
		siftDown(s, i, n, cmp)
	}
	for i := n - 1; i > 0; i-- {
		s[0], s[i] = s[i], s[0]
		siftDown(s, 0, i, cmp)
	}
}

// siftDown restores the max-heap property of s[:hi] below root.
func siftDown[T any](s []T, root, hi int, cmp func(a, b T) int) {
	for {
		child := 2*root + 1
		if child >= hi {
			return
		}
		if child+1 < hi && cmp(s[child], s[child+1]) < 0 {
			child++
		}
		if cmp(s[root], s[child]) >= 0 {
			return
		}
		s[root], s[child] = s[child], s[root]
		root = child
	}
}
