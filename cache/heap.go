// Copyright 2009 The Go Authors. All rights reserved.
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.GO file.

// This is a modified version of Go stdlib's heap.go, specialised to a
// min-heap of *entry[K, V] ordered by deadline instead of the teacher
// package's timestamp-ordered entryHeap.

package cache

// entryHeap is a min-heap of *entry[K, V], ordered by deadline, used to
// find and evict the next entry whose TTL has expired without scanning
// every entry in the cache.
type entryHeap[K comparable, V Sized] []*entry[K, V]

func (h entryHeap[K, V]) Len() int           { return len(h) }
func (h entryHeap[K, V]) Less(i, j int) bool { return h[i].deadline.Before(h[j].deadline) }
func (h entryHeap[K, V]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].heapIdx, h[j].heapIdx = i, j
}

// push pushes e onto the heap. The complexity is O(log(n)).
func (h *entryHeap[K, V]) push(e *entry[K, V]) {
	e.heapIdx = h.Len()
	*h = append(*h, e)
	h.up(h.Len() - 1)
}

// pop removes the entry with the earliest deadline. The complexity is
// O(log(n)).
func (h *entryHeap[K, V]) pop() *entry[K, V] {
	n := h.Len() - 1
	h.Swap(0, n)
	h.down(0, n)
	e := (*h)[n]
	*h = (*h)[:n]
	e.heapIdx = -1
	return e
}

// remove removes the entry at index i from the heap. The complexity is
// O(log(n)).
func (h *entryHeap[K, V]) remove(i int) {
	n := h.Len() - 1
	if n != i {
		h.Swap(i, n)
		h.down(i, n)
		h.up(i)
	}
	e := (*h)[n]
	*h = (*h)[:n]
	e.heapIdx = -1
}

func (h entryHeap[K, V]) up(j int) {
	for {
		i := (j - 1) / 2
		if i == j || !h.Less(j, i) {
			break
		}
		h.Swap(i, j)
		j = i
	}
}

func (h entryHeap[K, V]) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 {
			break
		}
		j := j1
		if j2 := j1 + 1; j2 < n && !h.Less(j1, j2) {
			j = j2
		}
		if !h.Less(j, i) {
			break
		}
		h.Swap(i, j)
		i = j
	}
	return i > i0
}
