// Package search provides divide-and-conquer search over sorted slices.
//
// Two equivalent renditions ship side by side: a direct-recursive one that
// mirrors the state machine, and a loop one with the tail call eliminated
// for use wherever call-stack depth is a concern. Both probe the lower
// middle element of the remaining span on even spans, and they agree on
// every input.
//
// Sortedness (non-decreasing under the comparator) is a precondition, not
// a checked property: verifying it would cost O(n) and defeat the O(log n)
// search. On unsorted input the result is unspecified — possibly a false
// negative — but never a panic or out-of-range access.
package search

import "cmp"

// CompareFunc reports the ordering of a relative to b:
// negative if a < b, zero if equal, positive if a > b.
type CompareFunc[T any] func(a, b T) int

// midpoint returns the probe index for the span [lo, hi): the lower middle
// element, biasing down when the span has an even number of elements.
func midpoint(lo, hi int) int {
	return lo + (hi-lo-1)/2
}

// Binary reports whether target occurs in sorted, and at which index.
// sorted must be non-decreasing. When target occurs more than once, the
// index of any one occurrence is returned.
func Binary[T cmp.Ordered](target T, sorted []T) (int, bool) {
	return BinaryFunc(target, sorted, cmp.Compare[T])
}

// BinaryRecursive is the direct-recursive equivalent of Binary. Recursion
// depth is logarithmic in len(sorted), so it is practically bounded; prefer
// Binary where any recursion at all is unwelcome.
func BinaryRecursive[T cmp.Ordered](target T, sorted []T) (int, bool) {
	return BinaryRecursiveFunc(target, sorted, cmp.Compare[T])
}

// BinaryFunc is Binary over an explicit comparator. sorted must be
// non-decreasing under compare.
func BinaryFunc[T any](target T, sorted []T, compare CompareFunc[T]) (int, bool) {
	lo, hi := 0, len(sorted)
	// Tail calls of the recursive form become reassignments of lo/hi.
	for lo < hi {
		mid := midpoint(lo, hi)
		switch c := compare(target, sorted[mid]); {
		case c == 0:
			return mid, true
		case hi-lo == 1:
			return 0, false
		case c < 0:
			hi = mid
		default:
			lo = mid + 1
		}
	}
	return 0, false
}

// BinaryRecursiveFunc is BinaryRecursive over an explicit comparator.
func BinaryRecursiveFunc[T any](target T, sorted []T, compare CompareFunc[T]) (int, bool) {
	return searchSpan(target, sorted, 0, len(sorted), compare)
}

func searchSpan[T any](target T, sorted []T, lo, hi int, compare CompareFunc[T]) (int, bool) {
	if lo >= hi {
		return 0, false
	}
	mid := midpoint(lo, hi)
	switch c := compare(target, sorted[mid]); {
	case c == 0:
		return mid, true
	case hi-lo == 1:
		return 0, false
	case c < 0:
		return searchSpan(target, sorted, lo, mid, compare)
	default:
		return searchSpan(target, sorted, mid+1, hi, compare)
	}
}
