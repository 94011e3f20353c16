// Package queue implements a FIFO container over the same sentinel-anchored
// circular ring as package list, with the element count tracked
// incrementally instead of computed by traversal. The queue owns its nodes
// exclusively and obtains them from an arena.Allocator. Not safe for
// concurrent use.
package queue

import (
	"context"
	"iter"

	"github.com/sharedcode/collections"
	"github.com/sharedcode/collections/arena"
)

// Node is one owned cell of the ring. Exported only so allocators can be
// instantiated with it.
type Node[TV any] struct {
	ID   collections.UUID
	Data TV

	prev     *Node[TV]
	next     *Node[TV]
	sentinel bool
}

// pushBack splices node immediately before n in the ring. node must be
// freshly created and unlinked; its links are overwritten. O(1).
func (n *Node[TV]) pushBack(node *Node[TV]) {
	node.prev = n.prev
	node.next = n
	n.prev.next = node
	n.prev = node
}

// Queue owns the sentinel and every node reachable from it. head.next is
// the oldest element, head.prev the newest. size tracks the element count;
// assignment, move and swap keep it synchronized with the ring.
type Queue[TV any] struct {
	alloc arena.Allocator[Node[TV]]
	head  *Node[TV]
	size  int
}

// New returns an empty queue backed by the default heap allocator.
func New[TV any](ctx context.Context) (*Queue[TV], error) {
	return NewWithAllocator(ctx, arena.NewHeap[Node[TV]]())
}

// NewWithAllocator returns an empty queue that takes all its nodes from
// alloc.
func NewWithAllocator[TV any](ctx context.Context, alloc arena.Allocator[Node[TV]]) (*Queue[TV], error) {
	q := &Queue[TV]{alloc: alloc}
	head, err := q.createSentinel(ctx)
	if err != nil {
		return nil, err
	}
	q.head = head
	return q, nil
}

// NewFromSlice returns a queue holding the values in order, oldest first.
func NewFromSlice[TV any](ctx context.Context, values []TV) (*Queue[TV], error) {
	q, err := New[TV](ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		if err := q.PushBack(ctx, v); err != nil {
			q.Dispose()
			return nil, err
		}
	}
	return q, nil
}

// NewFromSeq returns a queue holding the sequence's values in order.
func NewFromSeq[TV any](ctx context.Context, seq iter.Seq[TV]) (*Queue[TV], error) {
	q, err := New[TV](ctx)
	if err != nil {
		return nil, err
	}
	for v := range seq {
		if err := q.PushBack(ctx, v); err != nil {
			q.Dispose()
			return nil, err
		}
	}
	return q, nil
}

func (q *Queue[TV]) createNode(ctx context.Context, data TV) (*Node[TV], error) {
	slot, err := q.alloc.Allocate(ctx)
	if err != nil {
		return nil, err
	}
	if err := q.alloc.Construct(slot, Node[TV]{ID: collections.NewUUID(), Data: data}); err != nil {
		q.alloc.Deallocate(slot)
		return nil, collections.Error{Code: collections.ConstructionFailure, Err: err}
	}
	slot.prev = slot
	slot.next = slot
	return slot, nil
}

func (q *Queue[TV]) createSentinel(ctx context.Context) (*Node[TV], error) {
	slot, err := q.alloc.Allocate(ctx)
	if err != nil {
		return nil, err
	}
	if err := q.alloc.Construct(slot, Node[TV]{ID: collections.NewUUID(), sentinel: true}); err != nil {
		q.alloc.Deallocate(slot)
		return nil, collections.Error{Code: collections.ConstructionFailure, Err: err}
	}
	slot.prev = slot
	slot.next = slot
	return slot, nil
}

// PushBack enqueues data. Strong guarantee: a construction failure leaves
// the queue unchanged.
func (q *Queue[TV]) PushBack(ctx context.Context, data TV) error {
	node, err := q.createNode(ctx, data)
	if err != nil {
		return err
	}
	q.head.pushBack(node)
	q.size++
	return nil
}

// EmplaceBack enqueues an element built in place by construct, with the
// same rollback guarantee as PushBack.
func (q *Queue[TV]) EmplaceBack(ctx context.Context, construct func() (TV, error)) error {
	slot, err := q.alloc.Allocate(ctx)
	if err != nil {
		return err
	}
	data, err := construct()
	if err != nil {
		q.alloc.Deallocate(slot)
		return collections.Error{Code: collections.ConstructionFailure, Err: err}
	}
	if err := q.alloc.Construct(slot, Node[TV]{ID: collections.NewUUID(), Data: data}); err != nil {
		q.alloc.Deallocate(slot)
		return collections.Error{Code: collections.ConstructionFailure, Err: err}
	}
	slot.prev = slot
	slot.next = slot
	q.head.pushBack(slot)
	q.size++
	return nil
}

// PopFront dequeues the oldest element. No-op on an empty queue.
func (q *Queue[TV]) PopFront() {
	target := q.head.next
	if target == q.head {
		return
	}
	target.prev.next = target.next
	target.next.prev = target.prev
	q.alloc.Destroy(target)
	q.alloc.Deallocate(target)
	q.size--
}

// Front returns a reference to the oldest element, or false when empty.
func (q *Queue[TV]) Front() (*TV, bool) {
	if q.IsEmpty() {
		return nil, false
	}
	return &q.head.next.Data, true
}

// Back returns a reference to the newest element, or false when empty.
func (q *Queue[TV]) Back() (*TV, bool) {
	if q.IsEmpty() {
		return nil, false
	}
	return &q.head.prev.Data, true
}

// IsEmpty reports whether the sentinel's links both point to itself.
func (q *Queue[TV]) IsEmpty() bool {
	return q.head.next == q.head && q.head.prev == q.head
}

// Size returns the tracked element count. O(1); the queue pays for this by
// keeping the count synchronized through every mutation, assignment and
// swap.
func (q *Queue[TV]) Size() int {
	return q.size
}

// All yields the elements oldest to newest.
func (q *Queue[TV]) All() iter.Seq[TV] {
	return func(yield func(TV) bool) {
		for n := q.head.next; n != q.head; n = n.next {
			if !yield(n.Data) {
				return
			}
		}
	}
}

// Clear dequeues everything. The sentinel stays allocated and self-linked.
func (q *Queue[TV]) Clear() {
	for !q.IsEmpty() {
		q.PopFront()
	}
}

// Dispose clears the queue and releases the sentinel. The queue must not be
// used afterwards.
func (q *Queue[TV]) Dispose() {
	if q.head == nil {
		return
	}
	q.Clear()
	q.alloc.Destroy(q.head)
	q.alloc.Deallocate(q.head)
	q.head = nil
}
