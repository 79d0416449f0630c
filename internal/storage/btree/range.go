package btree

// Pair is a single key/value result from a range scan.
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// Range returns every entry with a key in [low, high], inclusive of both
// ends, in ascending order. If low > high under the comparator the result
// is empty.
func (t *Tree[K, V]) Range(low, high K) []Pair[K, V] {
	if t.cmp(low, high) > 0 {
		return nil
	}

	leaf := t.findLeaf(low)
	idx := leaf.leafLowerBound(t.cmp, low)

	var out []Pair[K, V]
	for leaf != nil {
		for ; idx < len(leaf.entries); idx++ {
			e := leaf.entries[idx]
			if t.cmp(e.key, high) > 0 {
				return out
			}
			out = append(out, Pair[K, V]{Key: e.key, Value: e.val})
		}
		leaf = leaf.next
		idx = 0
	}
	return out
}

// RangeCount returns up to count entries with keys >= low, in ascending
// order. count == 0 yields an empty result.
func (t *Tree[K, V]) RangeCount(low K, count int) []Pair[K, V] {
	if count <= 0 {
		return nil
	}

	leaf := t.findLeaf(low)
	idx := leaf.leafLowerBound(t.cmp, low)

	out := make([]Pair[K, V], 0, count)
	for leaf != nil && len(out) < count {
		for ; idx < len(leaf.entries) && len(out) < count; idx++ {
			e := leaf.entries[idx]
			out = append(out, Pair[K, V]{Key: e.key, Value: e.val})
		}
		leaf = leaf.next
		idx = 0
	}
	return out
}

// All returns a cursor over every entry in the tree, equivalent to
// Begin but named for symmetry with the comparator-relative scans below.
func (t *Tree[K, V]) All() *Iterator[K, V] {
	return t.Begin()
}

// GreaterThanOrEqual returns an open-ended cursor over every entry with
// key >= key, walking forward with no upper bound.
func (t *Tree[K, V]) GreaterThanOrEqual(key K) *Iterator[K, V] {
	leaf := t.findLeaf(key)
	idx := leaf.leafLowerBound(t.cmp, key)
	leaf, idx = normalizeForward(leaf, idx)
	return &Iterator[K, V]{tree: t, leaf: leaf, idx: idx}
}

// GreaterThan returns an open-ended cursor over every entry with
// key > key, walking forward with no upper bound.
func (t *Tree[K, V]) GreaterThan(key K) *Iterator[K, V] {
	leaf := t.findLeaf(key)
	idx := leaf.leafLowerBound(t.cmp, key)
	if idx < len(leaf.entries) && t.cmp(leaf.entries[idx].key, key) == 0 {
		idx++
	}
	leaf, idx = normalizeForward(leaf, idx)
	return &Iterator[K, V]{tree: t, leaf: leaf, idx: idx}
}

// LessThan returns every entry with key < high, in ascending order.
func (t *Tree[K, V]) LessThan(high K) []Pair[K, V] {
	var out []Pair[K, V]
	for leaf := t.findLeftmostLeaf(); leaf != nil; leaf = leaf.next {
		for _, e := range leaf.entries {
			if t.cmp(e.key, high) >= 0 {
				return out
			}
			out = append(out, Pair[K, V]{Key: e.key, Value: e.val})
		}
	}
	return out
}

// LessThanOrEqual returns every entry with key <= high, in ascending
// order.
func (t *Tree[K, V]) LessThanOrEqual(high K) []Pair[K, V] {
	var out []Pair[K, V]
	for leaf := t.findLeftmostLeaf(); leaf != nil; leaf = leaf.next {
		for _, e := range leaf.entries {
			if t.cmp(e.key, high) > 0 {
				return out
			}
			out = append(out, Pair[K, V]{Key: e.key, Value: e.val})
		}
	}
	return out
}
