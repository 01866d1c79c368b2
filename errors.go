package chainmap

import "errors"

// Every fallible operation reports exactly one of these (possibly wrapped);
// callers should test with errors.Is.
var (
	// ErrNullArgument means a required argument was absent: a nil (or
	// destroyed) map, a nil policy callback, or a nil filter.
	ErrNullArgument = errors.New("chainmap: null argument")

	// ErrOutOfMemory means a clone callback failed. The map is left in its
	// pre-call state.
	ErrOutOfMemory = errors.New("chainmap: out of memory")

	// ErrItemNotFound means a removal targeted a key that is not in the map.
	ErrItemNotFound = errors.New("chainmap: item not found")
)
