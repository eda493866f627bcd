// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mpsc provides an unbounded lock-free multi-producer
// single-consumer FIFO queue.
//
// The queue combines a fixed-size ring buffer for the common case with an
// overflow chain of linked nodes that absorbs bursts once the consumer falls
// more than Cap() elements behind. Enqueue never blocks and never reports
// full.
//
// # Quick Start
//
//	q := mpsc.New[Event](1024)
//
//	// Any number of producers
//	ev := Event{ID: 1}
//	q.Enqueue(&ev)
//
//	// Exactly one consumer
//	ev, err := q.Dequeue()
//	if mpsc.IsWouldBlock(err) {
//	    // Nothing to remove right now - poll again later
//	}
//
// # Event Aggregation
//
//	q := mpsc.New[Event](4096)
//
//	// Multiple producers (event sources)
//	for _, s := range sensors {
//	    go func(s Sensor) {
//	        for ev := range s.Events() {
//	            q.Enqueue(&ev)
//	        }
//	    }(s)
//	}
//
//	// Single consumer (aggregator)
//	go func() {
//	    backoff := iox.Backoff{}
//	    for {
//	        ev, err := q.Dequeue()
//	        if err != nil {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        aggregate(ev)
//	    }
//	}()
//
// # Storage
//
// Every Enqueue claims a ticket by FAA on the tail counter; the consumer
// removes tickets in claim order.
//
//	ticket - head <  Cap()  → ring slot ticket & (Cap()-1), tagged ticket+1
//	ticket - head >= Cap()  → new node appended to the overflow chain
//
// Where an element lands is decided once, by the producer, and never
// changes. Ring slots carry the ticket they hold and chain nodes carry their
// ticket, so the consumer finds each ticket without guessing from the
// counters. Producers racing at the Cap() boundary may put a later ticket in
// the ring and an earlier one in the chain; ordering is unaffected.
//
// Enqueue allocates only when it overflows. Dequeue never allocates.
//
// # Thread Safety
//
//   - Enqueue: any number of goroutines
//   - Dequeue, Peek, Clear, Iter, All, AppendTo: one goroutine at a time
//
// The consumer side has no internal mutual exclusion. Running two consumers
// concurrently corrupts the queue; serialize them externally if the consumer
// role moves between goroutines.
//
// Len and Empty may be called from anywhere but are snapshots: under
// concurrent producers they are valid at some instant during the call.
//
// # Error Handling
//
// Dequeue and Peek return [ErrWouldBlock] when nothing can be removed now:
// the queue is empty, or the oldest ticket is claimed but its producer has
// not published it yet. This error is sourced from [code.hybscloud.com/iox]
// and is a control flow signal, not a failure.
//
//	mpsc.IsWouldBlock(err)  // true if nothing to remove yet
//	mpsc.IsSemantic(err)    // true if control flow signal
//	mpsc.IsNonFailure(err)  // true if nil or ErrWouldBlock
//
// Other errors:
//
//	ErrNilElement              // Enqueue(nil); queue unchanged
//	ErrConcurrentModification  // Iterator.Next after the consumer removed an element
//	ErrUnsupported             // Iterator.Remove
//
// New panics if estimatedCapacity <= 0.
//
// # Iteration
//
// Iter returns a snapshot iterator from the current head to the live tail.
// It observes elements enqueued while iterating and fails with
// [ErrConcurrentModification] if the consumer removes anything first:
//
//	it := q.Iter()
//	for it.HasNext() {
//	    ev, err := it.Next()
//	    if err != nil {
//	        break
//	    }
//	    inspect(ev)
//	}
//
// All wraps the same iterator as an iter.Seq2, and AppendTo copies the
// elements claimed before the call.
//
// # Capacity and Length
//
// The ring length rounds up to the next power of 2:
//
//	mpsc.New[int](1).Cap()     // 1
//	mpsc.New[int](3).Cap()     // 4
//	mpsc.New[int](17).Cap()    // 32
//	mpsc.New[int](1024).Cap()  // 1024
//
// Cap is the ring length only. The queue has no size bound; the overflow
// chain grows as long as producers outpace the consumer.
//
// # Race Detection
//
// Ring slot data is published with a release store on an atomix sequence
// tag, and overflow nodes with a release store on an atomix next link. Go's
// race detector cannot observe these happens-before edges and may report
// false positives for concurrent producers. Tests that depend on them
// skip when [RaceEnabled] is true.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, and [code.hybscloud.com/spin] for CPU pause instructions.
package mpsc
