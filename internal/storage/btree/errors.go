package btree

import "errors"

// Tree errors.
var (
	// ErrKeyNotFound is returned by indexed access when the key is absent.
	// Unlike some ordered-map conventions, absence is never an implicit
	// insert.
	ErrKeyNotFound = errors.New("btree: key not found")

	// ErrTreeEmpty is returned by operations that require at least one
	// entry (First, Last) when the tree holds none.
	ErrTreeEmpty = errors.New("btree: tree is empty")

	// ErrInvalidCapacity is the value WithCapacity panics with when C < 2: a node
	// must be able to hold at least one key after a split.
	ErrInvalidCapacity = errors.New("btree: capacity must be at least 2")
)
