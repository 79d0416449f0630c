package btree

import "golang.org/x/exp/constraints"

// Comparator defines a strict weak ordering over keys of type K. It must
// return a negative number if a < b, zero if a == b, and a positive number
// if a > b. The tree requires the comparator to be pure and stable: it must
// not depend on mutable state that changes the relative order of keys
// already stored in the tree.
type Comparator[K any] func(a, b K) int

// OrderedComparator returns the natural Comparator for any type with Go's
// built-in ordering operators.
func OrderedComparator[K constraints.Ordered]() Comparator[K] {
	return func(a, b K) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
}
