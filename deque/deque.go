// Package deque provides a double-ended queue backed by a ring buffer.
package deque

import (
	"fmt"

	"github.com/dogmatiq/retainmut"
)

// minCapacity is the capacity allocated by the first push to an empty deque.
const minCapacity = 8

// Deque is a double-ended queue that supports access to its elements by
// position.
//
// The zero value is an empty deque, ready to use. It is not safe for
// concurrent use.
type Deque[E any] struct {
	buf  []E
	head int
	size int
}

var _ retainmut.Indexed[int] = (*Deque[int])(nil)

// New returns a deque containing the given elements, front to back.
func New[E any](elems ...E) *Deque[E] {
	d := &Deque[E]{}

	if len(elems) != 0 {
		d.buf = make([]E, max(len(elems), minCapacity))
		d.size = copy(d.buf, elems)
	}

	return d
}

// Len returns the number of elements in the deque.
func (d *Deque[E]) Len() int {
	return d.size
}

// Cap returns the number of elements the deque can hold before it must grow.
func (d *Deque[E]) Cap() int {
	return len(d.buf)
}

// PushBack adds an element to the back of the deque.
func (d *Deque[E]) PushBack(e E) {
	d.grow()
	d.buf[d.physical(d.size)] = e
	d.size++
}

// PushFront adds an element to the front of the deque.
func (d *Deque[E]) PushFront(e E) {
	d.grow()
	d.head = d.wrap(d.head - 1)
	d.buf[d.head] = e
	d.size++
}

// PopFront removes and returns the element at the front of the deque.
func (d *Deque[E]) PopFront() (E, bool) {
	var zero E

	if d.size == 0 {
		return zero, false
	}

	e := d.buf[d.head]
	d.buf[d.head] = zero // avoid memory leak
	d.head = d.wrap(d.head + 1)
	d.size--

	return e, true
}

// PopBack removes and returns the element at the back of the deque.
func (d *Deque[E]) PopBack() (E, bool) {
	var zero E

	if d.size == 0 {
		return zero, false
	}

	d.size--
	i := d.physical(d.size)
	e := d.buf[i]
	d.buf[i] = zero // avoid memory leak

	return e, true
}

// Front returns the element at the front of the deque without removing it.
func (d *Deque[E]) Front() (E, bool) {
	if d.size == 0 {
		var zero E
		return zero, false
	}
	return d.buf[d.head], true
}

// Back returns the element at the back of the deque without removing it.
func (d *Deque[E]) Back() (E, bool) {
	if d.size == 0 {
		var zero E
		return zero, false
	}
	return d.buf[d.physical(d.size-1)], true
}

// At returns a pointer to the element at index i, where index 0 is the front
// of the deque.
//
// The pointer remains valid until the next push, pop or truncation. It panics
// if i is out of range.
func (d *Deque[E]) At(i int) *E {
	d.checkIndex(i)
	return &d.buf[d.physical(i)]
}

// Swap exchanges the elements at indices i and j.
func (d *Deque[E]) Swap(i, j int) {
	d.checkIndex(i)
	d.checkIndex(j)

	i = d.physical(i)
	j = d.physical(j)
	d.buf[i], d.buf[j] = d.buf[j], d.buf[i]
}

// Truncate removes all but the first n elements from the deque.
//
// The removed elements are destroyed in order using [retainmut.Drop]. It
// panics if n is negative or greater than the number of elements.
func (d *Deque[E]) Truncate(n int) {
	if n < 0 || n > d.size {
		panic(fmt.Sprintf("deque: cannot truncate to %d elements, deque has %d", n, d.size))
	}

	size := d.size
	d.size = n

	for i := n; i < size; i++ {
		retainmut.Drop(&d.buf[d.physical(i)])
	}
}

// Clear removes all elements from the deque.
func (d *Deque[E]) Clear() {
	d.Truncate(0)
	d.head = 0
}

// RetainFunc removes all elements for which keep() returns false.
//
// See [retainmut.Sequence] for details, including its behavior if keep()
// panics.
func (d *Deque[E]) RetainFunc(keep func(*E) bool) {
	retainmut.Sequence[E](d, keep)
}

// All returns an iterator over the index and value of each element, front to
// back.
func (d *Deque[E]) All() func(yield func(int, E) bool) {
	return func(yield func(int, E) bool) {
		for i := 0; i < d.size; i++ {
			if !yield(i, d.buf[d.physical(i)]) {
				return
			}
		}
	}
}

// Slice returns a copy of the elements in the deque, front to back.
func (d *Deque[E]) Slice() []E {
	s := make([]E, d.size)

	if d.size == 0 {
		return s
	}

	if end := d.head + d.size; end <= len(d.buf) {
		copy(s, d.buf[d.head:end])
	} else {
		n := copy(s, d.buf[d.head:])
		copy(s[n:], d.buf[:end-len(d.buf)])
	}

	return s
}

// grow makes room for at least one more element.
func (d *Deque[E]) grow() {
	if d.size < len(d.buf) {
		return
	}

	buf := make([]E, max(len(d.buf)*2, minCapacity))
	n := copy(buf, d.buf[d.head:])
	copy(buf[n:], d.buf[:d.head])

	d.buf = buf
	d.head = 0
}

// physical returns the index into d.buf of the element at logical index i.
func (d *Deque[E]) physical(i int) int {
	return d.wrap(d.head + i)
}

func (d *Deque[E]) wrap(i int) int {
	n := len(d.buf)

	if i < 0 {
		return i + n
	}
	if i >= n {
		return i - n
	}
	return i
}

func (d *Deque[E]) checkIndex(i int) {
	if i < 0 || i >= d.size {
		panic(fmt.Sprintf("deque: index %d out of range [0:%d]", i, d.size))
	}
}
