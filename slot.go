package linearmap

import (
	"math/rand/v2"

	"github.com/db47h/linearmap/hash"
)

// minCapacity is the smallest bucket array length a Map ever has (2^5).
const minCapacity = 32

// slot is one cell of the bucket array: either empty (used == false) or
// occupied, in which case it carries the cached hash of its key so that
// probing and resizing never need to recompute it.
type slot[K comparable, V any] struct {
	hash  uint64
	key   K
	value V
	used  bool
}

// Map is an open-addressed hash map with linear probing. The zero value is
// not usable; construct one with New, WithCapacity, WithCapacityAndSeeds,
// or WithHasher.
type Map[K comparable, V any] struct {
	seed0, seed1 uint64
	hasher       hash.Func[K]
	slots        []slot[K, V]
	size         int
	resizeAt     int
	iterating    int // depth of live ForEach/Drain traversals; mutation is rejected while > 0
}

// resizeAt returns floor(capacity * 3/4) for a capacity that is a multiple
// of 4 (true of every power of two >= minCapacity).
func resizeAt(capacity int) int {
	return (capacity >> 2) * 3
}

// capacityFor returns the smallest power-of-two capacity, at least
// minCapacity, such that n <= resizeAt(capacity).
func capacityFor(n int) int {
	c := minCapacity
	for resizeAt(c) < n {
		c <<= 1
	}
	return c
}

func newSeed() uint64 {
	return rand.Uint64()
}

func newMap[K comparable, V any](seed0, seed1 uint64, hasher hash.Func[K], n int) *Map[K, V] {
	capacity := capacityFor(n)
	return &Map[K, V]{
		seed0:    seed0,
		seed1:    seed1,
		hasher:   hasher,
		slots:    make([]slot[K, V], capacity),
		resizeAt: resizeAt(capacity),
	}
}

// New returns an empty Map at the minimum capacity, using the default
// comparable-key hasher (see package linearmap/hash) seeded from a
// process-wide randomness source.
func New[K comparable, V any]() *Map[K, V] {
	return newMap[K, V](newSeed(), newSeed(), hash.Comparable[K](), 0)
}

// WithCapacity returns an empty Map sized so that at least n insertions fit
// before the first growth.
func WithCapacity[K comparable, V any](n int) *Map[K, V] {
	return newMap[K, V](newSeed(), newSeed(), hash.Comparable[K](), n)
}

// WithCapacityAndSeeds is WithCapacity with caller-supplied seeds. The
// default hasher it uses draws a random seed of its own each time it is
// constructed, so two maps built with the same seeds do not necessarily
// hash keys to the same slots.
func WithCapacityAndSeeds[K comparable, V any](seed0, seed1 uint64, n int) *Map[K, V] {
	return newMap[K, V](seed0, seed1, hash.Comparable[K](), n)
}

// WithHasher is WithCapacity with a caller-supplied hasher, for key shapes
// that need a specific hash.Func (e.g. hash.Number, hash.String, hash.Bytes)
// instead of the default hash.Comparable.
func WithHasher[K comparable, V any](h hash.Func[K], n int) *Map[K, V] {
	return newMap[K, V](newSeed(), newSeed(), h, n)
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int { return m.size }

// IsEmpty reports whether the map contains no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.size == 0 }

// Cap returns the current bucket array length.
func (m *Map[K, V]) Cap() int { return len(m.slots) }

// Clear removes every entry, without shrinking the bucket array.
func (m *Map[K, V]) Clear() {
	m.checkMutable()
	clear(m.slots)
	m.size = 0
}

// checkMutable panics if called while a ForEach or Drain traversal of m is
// in progress. Every exported method that writes to m's slot array calls
// this first.
func (m *Map[K, V]) checkMutable() {
	if m.iterating != 0 {
		errMutateWhileIterating()
	}
}

func (m *Map[K, V]) hash(key K) uint64 {
	return m.hasher(key, m.seed0, m.seed1)
}
