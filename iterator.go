// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpsc

import (
	"io"
	"iter"

	"code.hybscloud.com/spin"
)

// Iterator is a read-only, single-use view of the queue from the head at
// creation time up to the live tail.
//
// Elements enqueued while iterating become visible if the iterator has not
// passed their ticket yet. The iterator is valid only while the consumer
// removes nothing: any Dequeue or Clear after Iter makes the next call to
// Next return ErrConcurrentModification. Producers never invalidate it.
//
// Iterator belongs to the consumer side and must not be used concurrently
// with Dequeue, Peek or Clear.
type Iterator[T any] struct {
	q        *Queue[T]
	cursor   uint64
	expected uint64   // head at creation
	node     *node[T] // Last chain node visited
}

// Iter returns an iterator starting at the current head (single consumer only).
func (q *Queue[T]) Iter() *Iterator[T] {
	head := q.head.LoadRelaxed()
	return &Iterator[T]{q: q, cursor: head, expected: head, node: q.headNode}
}

// HasNext reports whether the cursor is behind the live tail.
func (it *Iterator[T]) HasNext() bool {
	return it.cursor != it.q.tail.LoadAcquire()
}

// Next returns the element at the cursor and advances it.
//
// Returns io.EOF when the cursor has reached the tail,
// ErrConcurrentModification when the consumer removed an element since
// Iter, or ErrWouldBlock when the ticket at the cursor is claimed but not
// yet published. The cursor does not move on error.
func (it *Iterator[T]) Next() (T, error) {
	var zero T
	if !it.HasNext() {
		return zero, io.EOF
	}
	q := it.q
	if q.head.LoadRelaxed() != it.expected {
		return zero, ErrConcurrentModification
	}

	slot := &q.buffer[it.cursor&q.mask]
	if slot.seq.LoadAcquire() == it.cursor+1 {
		elem := slot.data
		it.cursor++
		return elem, nil
	}

	// Fast path follows the chain from the last visited node; a producer
	// that lost the Swap race may have linked this ticket earlier.
	_, n := it.node.find(it.cursor)
	if n == nil {
		_, n = q.headNode.find(it.cursor)
	}
	if n == nil {
		return zero, ErrWouldBlock
	}
	it.node = n
	it.cursor++
	return n.value, nil
}

// Remove always returns ErrUnsupported.
func (it *Iterator[T]) Remove() error {
	return ErrUnsupported
}

// All returns the snapshot iterator as a range-over-func sequence
// (single consumer only).
//
// Tickets claimed but not yet published are waited for with spin.Wait.
// If the consumer removes an element while ranging, the sequence yields a
// final (zero-value, ErrConcurrentModification) and stops.
//
// Example:
//
//	for ev, err := range q.All() {
//	    if err != nil {
//	        break
//	    }
//	    inspect(ev)
//	}
func (q *Queue[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		it := q.Iter()
		sw := spin.Wait{}
		for it.HasNext() {
			elem, err := it.Next()
			if IsWouldBlock(err) {
				sw.Once()
				continue
			}
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			sw.Reset()
			if !yield(elem, nil) {
				return
			}
		}
	}
}

// AppendTo appends every element claimed before the call to dst, oldest
// first, without removing them (single consumer only).
func (q *Queue[T]) AppendTo(dst []T) ([]T, error) {
	end := q.tail.LoadAcquire()
	it := q.Iter()
	sw := spin.Wait{}
	for it.cursor != end {
		elem, err := it.Next()
		if IsWouldBlock(err) {
			sw.Once()
			continue
		}
		if err != nil {
			return dst, err
		}
		sw.Reset()
		dst = append(dst, elem)
	}
	return dst, nil
}
