// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpsc

import (
	"math/bits"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Queue is an unbounded lock-free multi-producer single-consumer FIFO queue.
//
// Producers claim a ticket with FAA on tail. A ticket less than Cap() ahead
// of the consumer is written into the ring buffer; any other ticket is
// appended to the overflow chain, a linked list that grows without bound.
// The consumer removes tickets in claim order from whichever storage holds
// them.
//
// Only one goroutine may call Dequeue, Peek, Clear, Iter, All or AppendTo
// at a time. Nothing inside Queue serializes the consumer side: head and
// the overflow head node are written without synchronization safe for a
// second consumer, and running two consumers corrupts the queue.
//
// Memory: Cap() ring slots (64+ bytes each) plus one node per overflowed element
type Queue[T any] struct {
	_        pad
	head     atomix.Uint64 // Consumer index (single consumer writes, producers read)
	_        pad
	tail     atomix.Uint64 // Producer index (FAA)
	_        pad
	tailNode atomix.Pointer[node[T]] // Back of the overflow chain (producers swap)
	_        padPtr
	headNode *node[T] // Front sentinel of the overflow chain (consumer only)
	missAt   *node[T] // Where the last failed chain scan for missPos stopped
	missPos  uint64
	buffer   []ringSlot[T]
	mask     uint64
	capacity uint64
}

type ringSlot[T any] struct {
	seq  atomix.Uint64 // Ticket+1 of the published element, 0 if never used
	data T
	_    padShort
}

// maxCapacity is the largest estimate whose power-of-2 round-up fits in int.
const maxCapacity = 1 << (bits.UintSize - 2)

// New creates an unbounded MPSC queue.
// The ring buffer length rounds up to the next power of 2.
// Panics if estimatedCapacity <= 0 or estimatedCapacity > 1<<(bits.UintSize-2).
func New[T any](estimatedCapacity int) *Queue[T] {
	if estimatedCapacity <= 0 {
		panic("mpsc: capacity must be > 0")
	}
	if estimatedCapacity > maxCapacity {
		panic("mpsc: capacity too large")
	}

	n := uint64(roundToPow2(estimatedCapacity))
	sentinel := &node[T]{}
	q := &Queue[T]{
		headNode: sentinel,
		buffer:   make([]ringSlot[T], n),
		mask:     n - 1,
		capacity: n,
	}
	q.tailNode.StoreRelease(sentinel)

	return q
}

// Enqueue adds an element to the queue (multiple producers safe).
// Never blocks and never reports full. Returns ErrNilElement if elem is nil.
func (q *Queue[T]) Enqueue(elem *T) error {
	if elem == nil {
		return ErrNilElement
	}

	t := q.tail.AddAcqRel(1) - 1
	h := q.head.LoadAcquire()

	// h <= t: the consumer cannot pass a ticket before it is published.
	if t-h < q.capacity {
		slot := &q.buffer[t&q.mask]
		slot.data = *elem
		slot.seq.StoreRelease(t + 1)
		return nil
	}

	n := &node[T]{pos: t, value: *elem}
	q.tailNode.Swap(n).next.StoreRelease(n)
	return nil
}

// Dequeue removes and returns the oldest element (single consumer only).
// Returns (zero-value, ErrWouldBlock) if the queue is empty, or if the
// oldest ticket is claimed but its producer has not published it yet.
//
// A ticket missing from the ring is looked up in the overflow chain. The
// first failed poll for a ticket walks the whole chain; later polls for the
// same ticket walk only the nodes linked since.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	head := q.head.LoadRelaxed()
	if head == q.tail.LoadAcquire() {
		return zero, ErrWouldBlock
	}

	slot := &q.buffer[head&q.mask]
	if slot.seq.LoadAcquire() == head+1 {
		elem := slot.data
		slot.data = zero
		q.missAt = nil
		q.head.StoreRelease(head + 1)
		return elem, nil
	}

	prev, n := q.scan(head)
	if n == nil {
		return zero, ErrWouldBlock
	}
	elem := n.value
	q.missAt = nil
	q.unlink(prev, n)
	q.head.StoreRelease(head + 1)

	return elem, nil
}

// Peek returns the oldest element without removing it (single consumer only).
// Returns (zero-value, ErrWouldBlock) under the same conditions as Dequeue.
func (q *Queue[T]) Peek() (T, error) {
	var zero T
	head := q.head.LoadRelaxed()
	if head == q.tail.LoadAcquire() {
		return zero, ErrWouldBlock
	}
	slot := &q.buffer[head&q.mask]
	if slot.seq.LoadAcquire() == head+1 {
		return slot.data, nil
	}
	if _, n := q.scan(head); n != nil {
		return n.value, nil
	}
	return zero, ErrWouldBlock
}

// scan looks up ticket head in the overflow chain (single consumer only).
// A miss records the node the walk stopped at, so the next scan for the
// same head resumes there: nodes before it were already checked, and new
// nodes only become reachable through it.
func (q *Queue[T]) scan(head uint64) (prev, n *node[T]) {
	from := q.headNode
	if q.missAt != nil && q.missPos == head {
		from = q.missAt
	}
	prev, n = from.find(head)
	if n == nil {
		q.missAt, q.missPos = prev, head
		return nil, nil
	}
	return prev, n
}

// Clear removes every element claimed before the call (single consumer only).
// Tickets claimed but not yet published are waited for with spin.Wait.
// Returns the number of elements removed.
func (q *Queue[T]) Clear() int {
	end := q.tail.LoadAcquire()
	removed := 0
	sw := spin.Wait{}
	for q.head.LoadRelaxed() != end {
		if _, err := q.Dequeue(); err != nil {
			sw.Once()
			continue
		}
		sw.Reset()
		removed++
	}
	return removed
}

// Len returns the number of elements claimed and not yet removed.
//
// Under concurrent producers the result is a snapshot valid at some instant
// between the two counter loads; it is exact once producers are quiescent.
// On 32-bit platforms a count above math.MaxInt32 does not fit in int and
// the result wraps.
func (q *Queue[T]) Len() int {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()
	return int(tail - head)
}

// Empty reports whether Len() would return 0. Approximate under concurrent producers.
func (q *Queue[T]) Empty() bool {
	return q.head.LoadAcquire() == q.tail.LoadAcquire()
}

// Cap returns the ring buffer length. The queue itself is unbounded.
// The length always fits in int because New rejects larger estimates.
func (q *Queue[T]) Cap() int {
	return int(q.capacity)
}
