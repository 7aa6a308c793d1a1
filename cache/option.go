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

package cache

import (
	"time"

	"github.com/db47h/linearmap/hash"
)

// Option configures a Cache at construction time, following the teacher
// package's func-based option shape (as opposed to the unrelated
// interface-based Option that belonged solely to its now-superseded
// swiss-table Map — see DESIGN.md).
type Option[K comparable, V Sized] func(c *Cache[K, V]) error

// EvictHandler configures a function called for every entry evicted from
// the cache, whether by capacity pressure, TTL expiry, an explicit Evict
// call, or a Set call that replaces an existing key's value.
func EvictHandler[K comparable, V Sized](f func(key K, value V)) Option[K, V] {
	return func(c *Cache[K, V]) error {
		c.evictHandler = f
		return nil
	}
}

// NewValueHandler configures a handler called to atomically generate a
// new value on a Get miss: the generated value is inserted into the cache
// before being returned, enabling atomic fill-on-miss under the cache's
// own lock.
func NewValueHandler[K comparable, V Sized](f func(key K) (V, error)) Option[K, V] {
	return func(c *Cache[K, V]) error {
		c.newHandler = f
		return nil
	}
}

// WithTTL configures every entry to expire ttl after it was last written
// by Set or read by Get, independent of the capacity-driven LRU eviction. A zero or negative ttl
// (the default) disables TTL-based expiry entirely.
func WithTTL[K comparable, V Sized](ttl time.Duration) Option[K, V] {
	return func(c *Cache[K, V]) error {
		c.ttl = ttl
		return nil
	}
}

// WithHasher configures the backing linearmap.Map to use h instead of the
// default hash.Comparable, for key shapes that need hash.Number,
// hash.String, hash.Bytes, or a caller-supplied hasher.
func WithHasher[K comparable, V Sized](h hash.Func[K]) Option[K, V] {
	return func(c *Cache[K, V]) error {
		c.hasher = h
		return nil
	}
}
