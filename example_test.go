// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpsc_test

import (
	"errors"
	"fmt"

	"code.hybscloud.com/mpsc"
)

// ExampleNew demonstrates basic enqueue and dequeue.
func ExampleNew() {
	q := mpsc.New[int](8)

	for i := 1; i <= 5; i++ {
		v := i * 10
		q.Enqueue(&v)
	}

	for range 5 {
		v, _ := q.Dequeue()
		fmt.Println(v)
	}

	// Output:
	// 10
	// 20
	// 30
	// 40
	// 50
}

// ExampleQueue_Cap demonstrates ring length rounding.
func ExampleQueue_Cap() {
	for _, n := range []int{1, 3, 17, 1000} {
		fmt.Printf("New(%d).Cap() = %d\n", n, mpsc.New[int](n).Cap())
	}

	// Output:
	// New(1).Cap() = 1
	// New(3).Cap() = 4
	// New(17).Cap() = 32
	// New(1000).Cap() = 1024
}

// ExampleQueue_Enqueue_overflow demonstrates that the queue is unbounded:
// elements beyond Cap() go to the overflow chain and keep FIFO order.
func ExampleQueue_Enqueue_overflow() {
	q := mpsc.New[string](2)

	for _, s := range []string{"a", "b", "c", "d", "e"} {
		if err := q.Enqueue(&s); err != nil {
			fmt.Println("unexpected:", err)
		}
	}
	fmt.Println("cap:", q.Cap(), "len:", q.Len())

	var got []string
	for {
		s, err := q.Dequeue()
		if mpsc.IsWouldBlock(err) {
			break
		}
		got = append(got, s)
	}
	fmt.Println(got)

	// Output:
	// cap: 2 len: 5
	// [a b c d e]
}

// ExampleQueue_Peek demonstrates looking at the head without removing it.
func ExampleQueue_Peek() {
	q := mpsc.New[int](4)
	v := 7
	q.Enqueue(&v)

	head, _ := q.Peek()
	fmt.Println("peek:", head, "len:", q.Len())

	got, _ := q.Dequeue()
	fmt.Println("dequeue:", got, "len:", q.Len())

	_, err := q.Peek()
	fmt.Println("empty:", errors.Is(err, mpsc.ErrWouldBlock))

	// Output:
	// peek: 7 len: 1
	// dequeue: 7 len: 0
	// empty: true
}

// ExampleQueue_Iter demonstrates snapshot iteration and invalidation.
func ExampleQueue_Iter() {
	q := mpsc.New[int](2)
	for i := range 4 {
		q.Enqueue(&i)
	}

	var got []int
	it := q.Iter()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			break
		}
		got = append(got, v)
	}
	fmt.Println(got)

	it = q.Iter()
	q.Dequeue()
	_, err := it.Next()
	fmt.Println(err)

	// Output:
	// [0 1 2 3]
	// mpsc: concurrent modification
}

// ExampleQueue_All demonstrates range-over-func iteration.
func ExampleQueue_All() {
	q := mpsc.New[string](4)
	for _, s := range []string{"x", "y", "z"} {
		q.Enqueue(&s)
	}

	for s, err := range q.All() {
		if err != nil {
			break
		}
		fmt.Println(s)
	}

	// Output:
	// x
	// y
	// z
}

// ExampleQueue_Enqueue_nil demonstrates nil rejection.
func ExampleQueue_Enqueue_nil() {
	q := mpsc.New[int](4)
	err := q.Enqueue(nil)
	fmt.Println(err, q.Len())

	// Output:
	// mpsc: nil element 0
}
