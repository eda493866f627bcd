// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpsc

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs. The queue
// stores a copy of the pointed-to value, so the original can be modified
// after Enqueue returns. A nil pointer is the only rejected input.
type Producer[T any] interface {
	// Enqueue adds an element to the queue (non-blocking, never full).
	// Returns nil on success, ErrNilElement if elem is nil.
	// Safe for any number of concurrent producers.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
//
// The element is returned by value. The storage it occupied is cleared to
// allow garbage collection of referenced objects.
type Consumer[T any] interface {
	// Dequeue removes and returns the element at the head of the queue.
	// Returns (zero-value, ErrWouldBlock) if nothing can be removed now.
	// Single consumer only.
	Dequeue() (T, error)
}

// Peeker reads the head of the queue without removing it.
type Peeker[T any] interface {
	// Peek returns what Dequeue would return, without removing it.
	// Single consumer only.
	Peek() (T, error)
}

// ConsumerPeeker combines Consumer and Peeker.
//
// Example (batch handler that stops at a sentinel):
//
//	func handle(c mpsc.ConsumerPeeker[Event]) {
//	    for {
//	        ev, err := c.Peek()
//	        if err != nil || ev.Kind == KindFlush {
//	            return
//	        }
//	        c.Dequeue()
//	        process(ev)
//	    }
//	}
type ConsumerPeeker[T any] interface {
	Consumer[T]
	Peeker[T]
}

var (
	_ Producer[int]       = (*Queue[int])(nil)
	_ ConsumerPeeker[int] = (*Queue[int])(nil)
)
