// Package dynamickey implements the heterogeneous-key comparator sketched
// in the btree core's external-interface contract: a total order over
// tagged dynamic values, for use by a language-binding layer that exposes
// the tree to a host runtime with loosely-typed keys. It lives outside
// internal/storage/btree because the core requires only an abstract
// Comparator — it has no business knowing about tagged dynamic values.
package dynamickey

import "strings"

// Tag identifies the dynamic type carried by a Key. Tags impose a fixed
// ordering used to break ties between values that are not otherwise
// comparable (e.g. a string against a bool).
type Tag int

const (
	TagInt Tag = iota
	TagFloat
	TagString
	TagBool
	TagOther
)

// Key is a tagged dynamic value: one of int64, float64, string, bool, or
// an opaque "other" value identified only by a stable ordinal.
type Key struct {
	tag Tag
	i   int64
	f   float64
	s   string
	b   bool
	// ord breaks ties between values of the same tag that carry no other
	// comparable payload (Other), and between two Bool values with equal
	// b. It must be assigned by the caller from a stable source (e.g. an
	// insertion counter or object identity), never derived here.
	ord uint64
}

// Int wraps an integer key.
func Int(v int64) Key { return Key{tag: TagInt, i: v} }

// Float wraps a floating-point key.
func Float(v float64) Key { return Key{tag: TagFloat, f: v} }

// String wraps a string key.
func String(v string) Key { return Key{tag: TagString, s: v} }

// Bool wraps a boolean key. ord breaks ties between two Bool keys with
// the same b; callers that only ever store one key per logical slot can
// pass 0.
func Bool(v bool, ord uint64) Key { return Key{tag: TagBool, b: v, ord: ord} }

// Other wraps a value the binding layer cannot otherwise compare,
// identified by ord — a caller-assigned stable identity used only to
// break ties deterministically.
func Other(ord uint64) Key { return Key{tag: TagOther, ord: ord} }

func (k Key) numeric() (float64, bool) {
	switch k.tag {
	case TagInt:
		return float64(k.i), true
	case TagFloat:
		return k.f, true
	default:
		return 0, false
	}
}

// Compare is a strict weak ordering over Key suitable for
// btree.Comparator[Key]. Numbers compare numerically regardless of
// whether they were wrapped as Int or Float; strings compare
// lexicographically; any other pairing falls back to a fixed tag order,
// broken by the caller-supplied ord field.
func Compare(a, b Key) int {
	an, aNum := a.numeric()
	bn, bNum := b.numeric()
	if aNum && bNum {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	}

	if a.tag == TagString && b.tag == TagString {
		return strings.Compare(a.s, b.s)
	}

	if a.tag != b.tag {
		if a.tag < b.tag {
			return -1
		}
		return 1
	}

	// Same tag, neither numeric nor string: Bool or Other. Order by
	// value first (for Bool), then break remaining ties by ord.
	if a.tag == TagBool && a.b != b.b {
		if !a.b {
			return -1
		}
		return 1
	}

	switch {
	case a.ord < b.ord:
		return -1
	case a.ord > b.ord:
		return 1
	default:
		return 0
	}
}
