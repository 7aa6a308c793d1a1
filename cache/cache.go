// Copyright (c) 2016 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package cache implements a capacity-bounded, optionally TTL-expiring
// key/value cache with least-recently-used eviction.
//
// It is built directly on top of linearmap.Map: the teacher package this
// is descended from kept its entries in a raw builtin map guarded by a
// mutex; here the builtin map is replaced by a linearmap.Map[K, *entry],
// making this package both a concrete domain use of the core map and the
// "callers serialise externally" story the core package's concurrency
// notes describe — the mutex below is that external serialisation.
//
// Item creation and removal callbacks are supported. With a
// NewValueHandler configured, a single Get call on a missing key creates,
// inserts and returns the new value under the cache's lock, as an atomic
// cache-fill in place of a separate lookup followed by Set.
package cache

import (
	"errors"
	"sync"
	"time"

	"github.com/db47h/linearmap"
	"github.com/db47h/linearmap/hash"
)

// NoCap can be used as the capacity argument to New to disable
// size-driven eviction; only a configured TTL (if any) will then evict
// entries.
const NoCap = int64(^uint64(0) >> 1)

// ErrFull is returned by Get (via a configured NewValueHandler) when a
// newly created value cannot fit even after evicting every other entry.
var ErrFull = errors.New("cache: full")

// Cache is a capacity-bounded, LRU-evicting key/value cache. The zero
// value is not usable; construct one with New.
type Cache[K comparable, V Sized] struct {
	mu     sync.Mutex
	cap    int64
	sz     int64
	ttl    time.Duration
	list   entryList[K, V]
	expiry entryHeap[K, V]
	m      *linearmap.Map[K, *entry[K, V]]

	hasher       hash.Func[K]
	evictHandler func(key K, value V)
	newHandler   func(key K) (V, error)
}

// New returns a new Cache with the given capacity (in whatever unit V.Size
// reports) and options.
func New[K comparable, V Sized](capacity int64, opts ...Option[K, V]) (*Cache[K, V], error) {
	c := &Cache[K, V]{
		cap: capacity,
	}
	c.list.init()
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.hasher != nil {
		c.m = linearmap.WithHasher[K, *entry[K, V]](c.hasher, 0)
	} else {
		c.m = linearmap.New[K, *entry[K, V]]()
	}
	return c, nil
}

func (c *Cache[K, V]) callEvictHandler(key K, value V) {
	if c.evictHandler != nil {
		c.evictHandler(key, value)
	}
}

// evict evicts e and returns the entry that was before it in LRU order,
// so that callers can keep walking the list while evicting.
func (c *Cache[K, V]) evict(e *entry[K, V]) *entry[K, V] {
	prev := e.prev
	e.unlink()
	if c.ttl > 0 && e.heapIdx >= 0 {
		c.expiry.remove(e.heapIdx)
	}
	c.m.Remove(e.key)
	c.sz -= e.value.Size()
	c.callEvictHandler(e.key, e.value)
	return prev
}

// reserve evicts least-recently-used entries until there is room for an
// entry of size sz, short-circuiting sentinel (the entry being replaced,
// if any) so Set doesn't evict the very entry it is about to update.
func (c *Cache[K, V]) reserve(sz int64, sentinel *entry[K, V]) bool {
	target := c.cap - sz
	if c.sz <= target {
		return true
	}
	for e := c.list.back(); c.sz > target && c.list.isValid(e) && e != sentinel; e = c.evict(e) {
	}
	return c.sz+sz <= c.cap
}

// expireLocked evicts every entry whose TTL deadline has passed. Callers
// must hold c.mu.
func (c *Cache[K, V]) expireLocked() {
	if c.ttl <= 0 {
		return
	}
	now := time.Now()
	for c.expiry.Len() > 0 && !c.expiry[0].deadline.After(now) {
		e := c.expiry[0]
		e.unlink()
		c.expiry.pop()
		c.m.Remove(e.key)
		c.sz -= e.value.Size()
		c.callEvictHandler(e.key, e.value)
	}
}

// touchDeadline refreshes e's expiry deadline when a TTL is configured.
func (c *Cache[K, V]) touchDeadline(e *entry[K, V]) {
	if c.ttl <= 0 {
		return
	}
	e.deadline = time.Now().Add(c.ttl)
	if e.heapIdx >= 0 {
		c.expiry.remove(e.heapIdx)
	}
	c.expiry.push(e)
}

func (c *Cache[K, V]) fill(key K, value V) bool {
	sz := value.Size()
	if !c.reserve(sz, c.list.sentinel()) {
		return false
	}
	e := &entry[K, V]{key: key, value: value, heapIdx: -1}
	c.list.pushFront(e)
	c.m.Insert(key, e)
	c.sz += sz
	c.touchDeadline(e)
	return true
}

// Set writes value for key, evicting least-recently-used entries if
// needed to make room. It reports whether the write succeeded: it fails
// only if value alone is too large to ever fit within the cache's
// capacity.
func (c *Cache[K, V]) Set(key K, value V) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expireLocked()

	if e, ok := c.m.Find(key); ok {
		c.list.moveToFront(e)
		sz := value.Size() - e.value.Size()
		if !c.reserve(sz, e) {
			return false
		}
		c.callEvictHandler(e.key, e.value)
		e.value = value
		c.sz += sz
		c.touchDeadline(e)
		return true
	}
	return c.fill(key, value)
}

// Get returns the value for key, promoting it to most-recently-used. If
// key is absent and a NewValueHandler is configured, it is called to
// atomically create, insert, and return a new value; otherwise Get
// returns (zero, nil).
func (c *Cache[K, V]) Get(key K) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expireLocked()

	if e, ok := c.m.Find(key); ok {
		c.list.moveToFront(e)
		c.touchDeadline(e)
		return e.value, nil
	}

	var zero V
	if c.newHandler == nil {
		return zero, nil
	}
	v, err := c.newHandler(key)
	if err != nil {
		return zero, err
	}
	if !c.fill(key, v) {
		c.callEvictHandler(key, v)
		return zero, ErrFull
	}
	return v, nil
}

// Evict removes key from the cache and returns its value, if present.
func (c *Cache[K, V]) Evict(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.m.Find(key)
	if !ok {
		var zero V
		return zero, false
	}
	v := e.value
	c.evict(e)
	return v, true
}

// EvictToSize evicts least-recently-used entries until the total size is
// at most size. It can be used to implement manual or soft/hard eviction
// limits from a service goroutine.
func (c *Cache[K, V]) EvictToSize(size int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for e := c.list.back(); c.sz > size && c.list.isValid(e); e = c.evict(e) {
	}
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.m.Len()
}

// Size returns the total size of the entries present in the cache.
func (c *Cache[K, V]) Size() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sz
}

// Capacity returns the cache's configured capacity.
func (c *Cache[K, V]) Capacity() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cap
}

// SetCapacity changes the cache capacity. There is no automatic pruning
// if the new capacity is less than the current size; call EvictToSize
// afterwards for that.
func (c *Cache[K, V]) SetCapacity(capacity int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cap = capacity
}
