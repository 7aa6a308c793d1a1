package cache

import "time"

// Sized is implemented by cache value types that report their own size,
// in whatever unit the caller wants capacity accounted in (bytes, item
// count, ...).
type Sized interface {
	Size() int64
}

// entry wraps a cached value together with its intrusive LRU list
// pointers and (when the cache has a TTL configured) its position in the
// expiry heap.
type entry[K comparable, V Sized] struct {
	next, prev *entry[K, V]

	key      K
	value    V
	deadline time.Time
	heapIdx  int // -1 when not tracked by the expiry heap
}
