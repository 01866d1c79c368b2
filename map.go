// Package chainmap provides a generic sorted key-value map over a singly
// linked chain kept in strictly ascending key order. Element cloning,
// release and ordering are delegated to a caller-supplied Policy fixed at
// construction; the map stores independently owned copies, never aliases of
// caller values.
//
// Lookup is an O(n) scan with early exit. The design trades lookup speed for
// a minimal ownership model; it is not a balanced tree and not safe for
// concurrent use.
package chainmap

import (
	"fmt"

	"github.com/danagershon/chainmap/keyfilter"
)

// entry is one chain node. Each entry exclusively owns its key, its value
// and its successor; the chain is rooted at a sentinel that carries no data.
type entry[K, V any] struct {
	key   K
	value V
	next  *entry[K, V]
}

// Map is a sorted associative map. Use New to create one; the zero value is
// not usable. A nil *Map is accepted by every method and behaves as the
// documented fail-closed result.
type Map[K, V any] struct {
	head   *entry[K, V] // sentinel, never nil while the map is live
	size   int
	policy Policy[K, V]
	filter *keyfilter.Filter[K]

	// cursor state for First/Next; see cursor.go. gen counts successful
	// mutations, a cursor captured under an older gen is stale.
	cursor    *entry[K, V]
	cursorGen uint64
	gen       uint64
}

// New creates an empty map governed by p. All policy callbacks are required.
func New[K, V any](p Policy[K, V]) (*Map[K, V], error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &Map[K, V]{head: &entry[K, V]{}, policy: p}, nil
}

// NewWithFilter creates an empty map that consults f before scanning the
// chain, so lookups of keys that were never inserted skip the scan entirely.
// Removed keys stay in the filter until Clear; that only costs a redundant
// scan, never a wrong answer.
func NewWithFilter[K, V any](p Policy[K, V], f *keyfilter.Filter[K]) (*Map[K, V], error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil filter", ErrNullArgument)
	}
	m, err := New(p)
	if err != nil {
		return nil, err
	}
	m.filter = f
	return m, nil
}

// live reports whether m can be operated on. A destroyed map has no sentinel
// and is treated the same as a nil one.
func (m *Map[K, V]) live() bool {
	return m != nil && m.head != nil
}

// findPrev walks the chain and returns the last entry whose key sorts before
// key, so the match (if found) is prev.next and an insertion keeping the
// chain sorted goes immediately after prev. The scan stops as soon as it
// passes the point where key would belong.
func (m *Map[K, V]) findPrev(key K) (prev *entry[K, V], found bool) {
	prev = m.head
	for next := prev.next; next != nil; next = prev.next {
		r := m.policy.Compare(key, next.key)
		if r == 0 {
			return prev, true
		}
		if r < 0 {
			return prev, false
		}
		prev = next
	}
	return prev, false
}

// Len returns the number of entries, or -1 on a nil or destroyed map.
func (m *Map[K, V]) Len() int {
	if !m.live() {
		return -1
	}
	return m.size
}

// Contains reports whether key is in the map. False on a nil map.
func (m *Map[K, V]) Contains(key K) bool {
	if !m.live() {
		return false
	}
	if m.filter != nil && !m.filter.MayContain(key) {
		return false
	}
	_, found := m.findPrev(key)
	return found
}

// Get returns the value stored under key. The value is returned as stored,
// not cloned; the map retains ownership.
func (m *Map[K, V]) Get(key K) (V, bool) {
	var zero V
	if !m.live() {
		return zero, false
	}
	if m.filter != nil && !m.filter.MayContain(key) {
		return zero, false
	}
	prev, found := m.findPrev(key)
	if !found {
		return zero, false
	}
	return prev.next.value, true
}

// Put inserts a clone of (key, value), or replaces the stored value if key
// is already present. The existing key is kept on replacement. The new value
// is cloned before the old one is released, so a failed clone leaves the
// previous value in place and the map unchanged.
func (m *Map[K, V]) Put(key K, value V) error {
	if !m.live() {
		return ErrNullArgument
	}
	prev, found := m.findPrev(key)
	if found {
		clone, err := m.policy.CloneValue(value)
		if err != nil {
			return fmt.Errorf("%w: clone value: %v", ErrOutOfMemory, err)
		}
		old := prev.next.value
		prev.next.value = clone
		m.policy.ReleaseValue(old)
	} else {
		e, err := m.newEntry(key, value)
		if err != nil {
			return err
		}
		e.next = prev.next
		prev.next = e
		m.size++
		if m.filter != nil {
			m.filter.Add(key)
		}
	}
	m.gen++
	return nil
}

// newEntry clones key and value into a fresh entry. On failure whatever was
// already cloned is released and the chain is untouched.
func (m *Map[K, V]) newEntry(key K, value V) (*entry[K, V], error) {
	k, err := m.policy.CloneKey(key)
	if err != nil {
		return nil, fmt.Errorf("%w: clone key: %v", ErrOutOfMemory, err)
	}
	v, err := m.policy.CloneValue(value)
	if err != nil {
		m.policy.ReleaseKey(k)
		return nil, fmt.Errorf("%w: clone value: %v", ErrOutOfMemory, err)
	}
	return &entry[K, V]{key: k, value: v}, nil
}

// Remove unlinks key's entry and releases its key and value. Returns
// ErrItemNotFound, with the map unchanged, if key is absent.
func (m *Map[K, V]) Remove(key K) error {
	if !m.live() {
		return ErrNullArgument
	}
	if m.filter != nil && !m.filter.MayContain(key) {
		return ErrItemNotFound
	}
	prev, found := m.findPrev(key)
	if !found {
		return ErrItemNotFound
	}
	doomed := prev.next
	prev.next = doomed.next
	doomed.next = nil
	m.policy.ReleaseKey(doomed.key)
	m.policy.ReleaseValue(doomed.value)
	m.size--
	m.gen++
	return nil
}

// Clear releases every entry, leaving an empty map with its policy and
// filter intact.
func (m *Map[K, V]) Clear() error {
	if !m.live() {
		return ErrNullArgument
	}
	m.releaseChain(m.head.next)
	m.head.next = nil
	m.size = 0
	if m.filter != nil {
		m.filter.Reset()
	}
	m.gen++
	return nil
}

// Destroy releases every entry and renders the map unusable: subsequent
// operations behave as on a nil map. Safe to call on a nil map.
func (m *Map[K, V]) Destroy() {
	if !m.live() {
		return
	}
	m.releaseChain(m.head.next)
	m.head = nil
	m.cursor = nil
	m.size = 0
}

func (m *Map[K, V]) releaseChain(e *entry[K, V]) {
	for e != nil {
		next := e.next
		e.next = nil
		m.policy.ReleaseKey(e.key)
		m.policy.ReleaseValue(e.value)
		e = next
	}
}
