package linearmap

// EqualFunc reports whether m and other contain the same set of keys, each
// mapped to values considered equal by eq. Seeds, capacity, and slot
// layout never participate in equality.
func (m *Map[K, V]) EqualFunc(other *Map[K, V], eq func(a, b V) bool) bool {
	if m.size != other.size {
		return false
	}
	equal := true
	m.ForEach(func(key K, value V) bool {
		v, ok := other.Find(key)
		if !ok || !eq(value, v) {
			equal = false
			return false
		}
		return true
	})
	return equal
}

// Equal reports whether m and other contain the same set of keys, each
// mapped to an equal value, for value types that are themselves
// comparable. Use EqualFunc for value types that aren't.
func Equal[K comparable, V comparable](m, other *Map[K, V]) bool {
	return m.EqualFunc(other, func(a, b V) bool { return a == b })
}
