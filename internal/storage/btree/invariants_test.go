package btree

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// checkInvariants asserts the structural invariants of §3/§8 hold for tr:
// equal leaf depth, per-node occupancy bounds, separator correctness, an
// intact bidirectional leaf chain in ascending order, and size agreement.
func checkInvariants[K any, V any](t *testing.T, tr *Tree[K, V]) {
	t.Helper()
	require.NoError(t, validateTree(tr))
}

func validateTree[K any, V any](tr *Tree[K, V]) error {
	if err := validateOccupancy(tr.root, true, tr.capacity); err != nil {
		return errors.Wrap(err, "occupancy")
	}

	var depths []int
	collectLeafDepths(tr.root, 0, &depths)
	for i := 1; i < len(depths); i++ {
		if depths[i] != depths[0] {
			return errors.Errorf("leaves at unequal depth: %d vs %d", depths[0], depths[i])
		}
	}

	if err := validateSeparators(tr.root, tr.cmp); err != nil {
		return errors.Wrap(err, "separators")
	}

	if err := validateLeafChain(tr); err != nil {
		return errors.Wrap(err, "leaf chain")
	}

	return nil
}

func validateOccupancy[K any, V any](n *node[K, V], isRoot bool, c int) error {
	if !isRoot && n.keyCount() < c-1 {
		return errors.Errorf("node has %d keys, below minimum %d", n.keyCount(), c-1)
	}
	if n.keyCount() > 2*c-1 {
		return errors.Errorf("node has %d keys, above maximum %d", n.keyCount(), 2*c-1)
	}
	if n.isLeaf {
		return nil
	}
	if len(n.children) != len(n.keys)+1 {
		return errors.Errorf("internal node has %d keys but %d children", len(n.keys), len(n.children))
	}
	for _, child := range n.children {
		if err := validateOccupancy(child, false, c); err != nil {
			return err
		}
	}
	return nil
}

func collectLeafDepths[K any, V any](n *node[K, V], depth int, out *[]int) {
	if n.isLeaf {
		*out = append(*out, depth)
		return
	}
	for _, c := range n.children {
		collectLeafDepths(c, depth+1, out)
	}
}

func validateSeparators[K any, V any](n *node[K, V], cmp Comparator[K]) error {
	if n.isLeaf {
		return nil
	}
	for i, key := range n.keys {
		minKey, _ := minEntryUnder(n.children[i+1])
		if cmp(minKey, key) != 0 {
			return errors.Errorf("routing key %d does not equal min key of its right subtree", i)
		}
	}
	for _, c := range n.children {
		if err := validateSeparators(c, cmp); err != nil {
			return err
		}
	}
	return nil
}

func validateLeafChain[K any, V any](tr *Tree[K, V]) error {
	leaf := tr.findLeftmostLeaf()
	if leaf.prev != nil {
		return errors.New("leftmost leaf has non-nil prev")
	}

	var prevKey K
	first := true
	count := 0
	var last *node[K, V]
	for leaf != nil {
		for _, e := range leaf.entries {
			if !first && tr.cmp(prevKey, e.key) >= 0 {
				return errors.New("leaf chain is not strictly ascending")
			}
			prevKey = e.key
			first = false
			count++
		}
		last = leaf
		leaf = leaf.next
	}
	if last != nil && last.next != nil {
		return errors.New("rightmost leaf has non-nil next")
	}
	if count != tr.size {
		return errors.Errorf("forward chain visited %d entries, tree size is %d", count, tr.size)
	}

	reverseCount := 0
	for leaf := tr.findRightmostLeaf(); leaf != nil; leaf = leaf.prev {
		reverseCount += len(leaf.entries)
	}
	if reverseCount != tr.size {
		return errors.Errorf("reverse chain visited %d entries, tree size is %d", reverseCount, tr.size)
	}

	return nil
}
