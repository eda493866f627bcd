// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpsc

import "code.hybscloud.com/atomix"

// node is one element of the overflow chain.
//
// Producers write pos and value before publishing the node through the
// previous node's next link, and set each next link exactly once. The
// consumer may rewrite a next link that is already set, because no
// producer touches a node again once it has a successor.
//
// Nodes are linked in Swap order, which is not always ticket order when
// producers race, so the consumer looks nodes up by pos.
type node[T any] struct {
	next  atomix.Pointer[node[T]]
	pos   uint64 // Ticket claimed from tail
	value T
	taken bool // Removed but still linked (consumer only)
}

// find returns the first node after n holding ticket pos, and the node
// linked before it. If no linked node holds pos, match is nil and prev is
// the last node walked.
func (n *node[T]) find(pos uint64) (prev, match *node[T]) {
	prev = n
	for cur := n.next.LoadAcquire(); cur != nil; prev, cur = cur, cur.next.LoadAcquire() {
		if cur.pos == pos && !cur.taken {
			return prev, cur
		}
	}
	return prev, nil
}

// unlink removes n from the chain (single consumer only).
//
// n is bypassed when it already has a successor. Otherwise n may still be
// the back of the chain, so it stays linked and is marked taken. The head
// node then advances over any taken prefix, which makes the last removed
// node the new sentinel.
func (q *Queue[T]) unlink(prev, n *node[T]) {
	var zero T
	n.value = zero
	n.taken = true
	if next := n.next.LoadAcquire(); next != nil {
		prev.next.StoreRelease(next)
	}

	for next := q.headNode.next.LoadAcquire(); next != nil && next.taken; next = q.headNode.next.LoadAcquire() {
		q.headNode = next
	}
}
