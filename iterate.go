package linearmap

// ForEach visits every (key, value) pair in slot order, stopping early if
// visit returns false. Slot order is an implementation detail, not a
// semantic guarantee. Mutating m from within visit — directly, or through
// any method that writes to m's slot array, Drain included — panics:
// nested calls to ForEach on the same m are fine (they only read), but there is no
// borrow checker to stop a write, so one is trapped here instead of being
// left to silently corrupt the slot array mid-traversal.
func (m *Map[K, V]) ForEach(visit func(key K, value V) bool) {
	m.iterating++
	defer func() { m.iterating-- }()
	for i := range m.slots {
		s := &m.slots[i]
		if s.used && !visit(s.key, s.value) {
			return
		}
	}
}

// ForEachKey is the key-only projection of ForEach.
func (m *Map[K, V]) ForEachKey(visit func(key K) bool) {
	m.ForEach(func(key K, _ V) bool { return visit(key) })
}

// ForEachValue is the value-only projection of ForEach.
func (m *Map[K, V]) ForEachValue(visit func(value V) bool) {
	m.ForEach(func(_ K, value V) bool { return visit(value) })
}

// Drain hands ownership of every (key, value) pair to visit, in slot
// order, emptying the map. The bucket array is swapped out for a fresh one
// before visit is ever called, so a panic inside visit still leaves the
// map at size 0 with a fully empty, consistent bucket array — none of the
// drained entries are recoverable, but none of them are half-drained
// either. As with ForEach, mutating m from within visit panics.
func (m *Map[K, V]) Drain(visit func(key K, value V)) {
	m.checkMutable()
	old := m.slots
	m.slots = make([]slot[K, V], len(old))
	m.size = 0
	m.iterating++
	defer func() { m.iterating-- }()
	for i := range old {
		if old[i].used {
			visit(old[i].key, old[i].value)
		}
	}
}
