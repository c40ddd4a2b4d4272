package osdep

import "slices"

// Sort reorders items in place using the provided total-order comparator.
// cmp returns a negative number when a sorts before b, zero when equal,
// positive otherwise. Stability is not part of the contract; use
// SortStable when equal elements must keep their relative order.
func Sort[S ~[]E, E any](items S, cmp func(a, b E) int) {
	slices.SortFunc(items, cmp)
}

// SortStable is Sort with a stability guarantee.
func SortStable[S ~[]E, E any](items S, cmp func(a, b E) int) {
	slices.SortStableFunc(items, cmp)
}
