package linearmap

// Find returns the value stored for key, and whether it was present.
func (m *Map[K, V]) Find(key K) (V, bool) {
	switch r := m.search(m.hash(key), key); r.kind {
	case searchFoundEntry:
		return m.slots[r.index].value, true
	default:
		var zero V
		return zero, false
	}
}

// Contains reports whether key is present in the map.
func (m *Map[K, V]) Contains(key K) bool {
	return m.search(m.hash(key), key).kind == searchFoundEntry
}

// Get is the infallible variant of Find: it panics naming the key if the
// key is absent.
func (m *Map[K, V]) Get(key K) V {
	v, ok := m.Find(key)
	if !ok {
		errMissingKey(key)
	}
	return v
}
