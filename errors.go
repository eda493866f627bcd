// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpsc

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// For Dequeue and Peek: the queue is empty, or the element at the head has
// been claimed by a producer that has not finished publishing it yet.
// For Iterator.Next: the element at the cursor is not published yet.
//
// Enqueue never returns ErrWouldBlock; the queue is unbounded.
//
// ErrWouldBlock is a control flow signal, not a failure. The caller should
// poll again later (with backoff or yield) rather than propagating the error.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrNilElement is returned by Enqueue when elem is nil.
// The queue is not modified.
var ErrNilElement = errors.New("mpsc: nil element")

// ErrConcurrentModification is returned by Iterator.Next when the consumer
// removed an element after the iterator was created.
// Producer activity never invalidates an iterator.
var ErrConcurrentModification = errors.New("mpsc: concurrent modification")

// ErrUnsupported is returned by Iterator.Remove.
// errors.Is(ErrUnsupported, errors.ErrUnsupported) reports true.
var ErrUnsupported = fmt.Errorf("mpsc: iterator removal: %w", errors.ErrUnsupported)

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrWouldBlock, or ErrMore.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
