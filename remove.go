package linearmap

// Pop removes key from the map and returns its value, and whether the key
// was present. Pop on a missing key is a no-op that returns (zero, false).
//
// Removing from an open-addressed table with linear probing cannot simply
// mark the slot empty: a later lookup for any key whose probe chain passes
// through the vacated slot would misread the empty slot as "absent". This
// implementation avoids tombstones entirely by repairing the probe chain
// in place: after vacating the victim slot, it walks forward re-inserting
// every entry it finds until it reaches an empty slot. Each re-inserted
// entry lands either back where it was or earlier on its own probe chain
// — never later — so the scan is guaranteed to terminate: reinsertion only
// fills holes at or behind the scan position (possibly the victim slot
// itself), the slots ahead of the scan are left untouched, and a table
// that is never more than 3/4 full always has a hole ahead for the scan
// to reach.
func (m *Map[K, V]) Pop(key K) (V, bool) {
	return m.popWithHash(m.hash(key), key)
}

// Remove removes key from the map and reports whether it was present.
func (m *Map[K, V]) Remove(key K) bool {
	_, ok := m.Pop(key)
	return ok
}

// Swap removes any existing value for key, inserts value, and returns the
// removed value (if any). It always behaves as if implemented by a Pop
// followed by an Insert, even though it only computes the key's hash once.
func (m *Map[K, V]) Swap(key K, value V) (V, bool) {
	h := m.hash(key)
	old, existed := m.popWithHash(h, key)

	if m.size >= m.resizeAt {
		m.grow()
	}
	m.insertWithHash(h, key, value)
	return old, existed
}

// popWithHash is Pop's body, parameterised on an already-computed hash so
// that Swap need not hash the key twice.
func (m *Map[K, V]) popWithHash(h uint64, key K) (V, bool) {
	m.checkMutable()
	capacity := len(m.slots)
	idx := 0
	switch r := m.search(h, key); r.kind {
	case searchFoundEntry:
		idx = r.index
	default:
		var zero V
		return zero, false
	}

	victim := &m.slots[idx]
	value := victim.value
	*victim = slot[K, V]{}

	size := m.size - 1
	j := nextBucket(idx, capacity)
	for m.slots[j].used {
		displaced := m.slots[j]
		m.slots[j] = slot[K, V]{}
		m.insertWithHash(displaced.hash, displaced.key, displaced.value)
		j = nextBucket(j, capacity)
	}
	m.size = size

	return value, true
}
