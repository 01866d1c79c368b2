package chainmap

// Copy returns a deep copy of m: every key and value is cloned through m's
// policy, which the copy shares by reference. The source chain is already
// sorted, so entries are streamed in order and never re-sorted. If any clone
// fails, everything built so far is released and ErrOutOfMemory is reported
// with the source untouched.
//
// Copying counts as a mutation event for the source's cursor: after a
// successful Copy the source's Next reports absent until First is called
// again. The copy starts with no filter attached.
func (m *Map[K, V]) Copy() (*Map[K, V], error) {
	if !m.live() {
		return nil, ErrNullArgument
	}
	dst := &Map[K, V]{head: &entry[K, V]{}, policy: m.policy}
	tail := dst.head
	for e := m.head.next; e != nil; e = e.next {
		clone, err := dst.newEntry(e.key, e.value)
		if err != nil {
			dst.releaseChain(dst.head.next)
			dst.head = nil
			return nil, err
		}
		tail.next = clone
		tail = clone
		dst.size++
	}
	m.gen++
	return dst, nil
}
