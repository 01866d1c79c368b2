package chainmap

import "iter"

// The map carries a single embedded cursor for First/Next iteration. Any
// successful mutation (Put, Remove, Clear, and Copy on the source) bumps the
// map's generation, which makes a previously captured cursor stale: Next on
// a stale cursor reports absent and the caller must call First again.

// First positions the cursor at the smallest key and returns it. Absent on a
// nil or empty map, with the cursor left unset.
func (m *Map[K, V]) First() (K, bool) {
	var zero K
	if !m.live() || m.head.next == nil {
		return zero, false
	}
	m.cursor = m.head.next
	m.cursorGen = m.gen
	return m.cursor.key, true
}

// Next advances the cursor and returns the key it lands on. Absent if the
// cursor is unset, stale, or already at the last entry; in the last case the
// cursor stays where it is and further Next calls keep returning absent.
func (m *Map[K, V]) Next() (K, bool) {
	var zero K
	if !m.live() || m.cursor == nil || m.cursorGen != m.gen {
		return zero, false
	}
	if m.cursor.next == nil {
		return zero, false
	}
	m.cursor = m.cursor.next
	return m.cursor.key, true
}

// All returns an in-order iterator over entries. It walks the chain directly
// and does not touch the embedded cursor; the map must not be mutated during
// the walk.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if !m.live() {
			return
		}
		for e := m.head.next; e != nil; e = e.next {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Keys returns an in-order iterator over keys, with the same rules as All.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		if !m.live() {
			return
		}
		for e := m.head.next; e != nil; e = e.next {
			if !yield(e.key) {
				return
			}
		}
	}
}
