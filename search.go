package linearmap

// searchKind distinguishes the three outcomes of the search primitive.
type searchKind uint8

const (
	searchFoundEntry searchKind = iota
	searchFoundHole
	searchTableFull
)

// searchResult is the outcome of search: either the key's existing slot,
// the first empty slot on its probe chain (key absent), or TableFull (a
// full revolution of the bucket array without finding either).
type searchResult struct {
	kind  searchKind
	index int
}

// search walks the probe sequence for hash h looking for key. It never
// mutates the map and never recomputes a stored slot's hash.
func (m *Map[K, V]) search(h uint64, key K) searchResult {
	var result searchResult
	ok := walkProbe(h, len(m.slots), func(i int) bool {
		s := &m.slots[i]
		if !s.used {
			result = searchResult{kind: searchFoundHole, index: i}
			return false
		}
		if s.hash == h && s.key == key {
			result = searchResult{kind: searchFoundEntry, index: i}
			return false
		}
		return true
	})
	if !ok {
		return searchResult{kind: searchTableFull}
	}
	return result
}
