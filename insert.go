package linearmap

// Insert adds key/value to the map, replacing any existing value (and key
// — equality does not imply identity) for that key. It reports whether
// the key was newly added.
//
// If size has reached resizeAt, Insert grows the table before searching,
// even if this call turns out to be an overwrite; see the package design
// notes for why that trade-off was kept.
func (m *Map[K, V]) Insert(key K, value V) bool {
	m.checkMutable()
	if m.size >= m.resizeAt {
		m.grow()
	}
	h := m.hash(key)
	return m.insertWithHash(h, key, value)
}

// insertWithHash places key/value using an already-computed hash, without
// ever triggering a grow. It is used both by Insert (after growing, if
// needed) and by grow/repair loops that are reinserting entries whose hash
// is already known and must not be recomputed.
func (m *Map[K, V]) insertWithHash(h uint64, key K, value V) bool {
	switch r := m.search(h, key); r.kind {
	case searchFoundHole:
		s := &m.slots[r.index]
		s.hash, s.key, s.value, s.used = h, key, value, true
		m.size++
		return true
	case searchFoundEntry:
		s := &m.slots[r.index]
		s.hash, s.key, s.value = h, key, value
		return false
	default:
		errInternal("search returned TableFull during insert (size=%d, cap=%d)", m.size, len(m.slots))
		panic("unreachable")
	}
}

// grow doubles the bucket array and reinserts every occupied slot from the
// old array using its cached hash — the hash function is never invoked
// during growth.
func (m *Map[K, V]) grow() {
	m.checkMutable()
	old := m.slots
	capacity := len(old) * 2
	m.slots = make([]slot[K, V], capacity)
	m.resizeAt = resizeAt(capacity)
	m.size = 0
	for i := range old {
		if old[i].used {
			m.insertWithHash(old[i].hash, old[i].key, old[i].value)
		}
	}
}
