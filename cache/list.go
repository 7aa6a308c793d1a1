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

// entryList is descended from the teacher package's list.go ring-with-
// sentinel implementation, generalised over entry[K, V]. It is not a
// sync.Map/list.List: it exists purely to give O(1) move-to-front and
// O(1) removal from the middle of the list.
type entryList[K comparable, V Sized] struct {
	head entry[K, V]
}

func (l *entryList[K, V]) init() {
	l.head.prev, l.head.next = &l.head, &l.head
}

func (l *entryList[K, V]) sentinel() *entry[K, V] {
	return &l.head
}

func (l *entryList[K, V]) back() *entry[K, V] {
	return l.head.prev
}

func (l *entryList[K, V]) isValid(e *entry[K, V]) bool {
	return e != &l.head
}

// insert places e immediately after at.
func (e *entry[K, V]) insert(at *entry[K, V]) {
	n := at.next
	at.next = e
	e.prev = at
	e.next = n
	n.prev = e
}

// unlink removes e from whatever list it is in.
func (e *entry[K, V]) unlink() {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = nil
	e.prev = nil
}

func (l *entryList[K, V]) pushFront(e *entry[K, V]) {
	e.insert(&l.head)
}

func (l *entryList[K, V]) moveToFront(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.insert(&l.head)
}
