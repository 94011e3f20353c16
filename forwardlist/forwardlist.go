// Package forwardlist implements a singly-linked list. The chain is
// nil-headed and null-terminated: there is no sentinel, head is nil when the
// list is empty, and the zero Iterator is the end position. The list owns
// its nodes exclusively and obtains them from an arena.Allocator. Not safe
// for concurrent use.
package forwardlist

import (
	"context"
	"iter"

	"github.com/sharedcode/collections"
	"github.com/sharedcode/collections/arena"
)

// Node is one owned cell of the chain. Exported only so allocators can be
// instantiated with it.
type Node[TV any] struct {
	ID   collections.UUID
	Data TV

	next *Node[TV]
}

// ForwardList owns the chain hanging off head.
type ForwardList[TV any] struct {
	alloc arena.Allocator[Node[TV]]
	head  *Node[TV]
}

// New returns an empty list backed by the default heap allocator.
func New[TV any]() *ForwardList[TV] {
	return NewWithAllocator(arena.NewHeap[Node[TV]]())
}

// NewWithAllocator returns an empty list that takes all its nodes from
// alloc. No allocation happens until the first insert.
func NewWithAllocator[TV any](alloc arena.Allocator[Node[TV]]) *ForwardList[TV] {
	return &ForwardList[TV]{alloc: alloc}
}

// NewFromSlice returns a list holding the values in order.
func NewFromSlice[TV any](ctx context.Context, values []TV) (*ForwardList[TV], error) {
	l := New[TV]()
	for _, v := range values {
		if err := l.appendTail(ctx, v); err != nil {
			l.Clear()
			return nil, err
		}
	}
	return l, nil
}

// NewFromSeq returns a list holding the sequence's values in order.
func NewFromSeq[TV any](ctx context.Context, seq iter.Seq[TV]) (*ForwardList[TV], error) {
	l := New[TV]()
	for v := range seq {
		if err := l.appendTail(ctx, v); err != nil {
			l.Clear()
			return nil, err
		}
	}
	return l, nil
}

// createNode reserves a slot, constructs the element and links next. A
// construction failure rolls the reservation back.
func (l *ForwardList[TV]) createNode(ctx context.Context, data TV, next *Node[TV]) (*Node[TV], error) {
	slot, err := l.alloc.Allocate(ctx)
	if err != nil {
		return nil, err
	}
	if err := l.alloc.Construct(slot, Node[TV]{ID: collections.NewUUID(), Data: data}); err != nil {
		l.alloc.Deallocate(slot)
		return nil, collections.Error{Code: collections.ConstructionFailure, Err: err}
	}
	slot.next = next
	return slot, nil
}

// appendTail walks to the last node and links a fresh one after it. Used by
// the ordered constructors and by extension during assignment.
func (l *ForwardList[TV]) appendTail(ctx context.Context, data TV) error {
	node, err := l.createNode(ctx, data, nil)
	if err != nil {
		return err
	}
	if l.head == nil {
		l.head = node
		return nil
	}
	cursor := l.head
	for cursor.next != nil {
		cursor = cursor.next
	}
	cursor.next = node
	return nil
}

// PushFront prepends data. Strong guarantee: a failure leaves the list
// unchanged.
func (l *ForwardList[TV]) PushFront(ctx context.Context, data TV) error {
	node, err := l.createNode(ctx, data, l.head)
	if err != nil {
		return err
	}
	l.head = node
	return nil
}

// EmplaceFront prepends an element built in place by construct, with the
// same rollback guarantee as PushFront.
func (l *ForwardList[TV]) EmplaceFront(ctx context.Context, construct func() (TV, error)) error {
	slot, err := l.alloc.Allocate(ctx)
	if err != nil {
		return err
	}
	data, err := construct()
	if err != nil {
		l.alloc.Deallocate(slot)
		return collections.Error{Code: collections.ConstructionFailure, Err: err}
	}
	if err := l.alloc.Construct(slot, Node[TV]{ID: collections.NewUUID(), Data: data}); err != nil {
		l.alloc.Deallocate(slot)
		return collections.Error{Code: collections.ConstructionFailure, Err: err}
	}
	slot.next = l.head
	l.head = slot
	return nil
}

// InsertAfter links a new element after position. An end or zero position is
// a no-op, mirroring the guarded splice of the doubly-linked list.
func (l *ForwardList[TV]) InsertAfter(ctx context.Context, position Iterator[TV], data TV) error {
	current := position.cursor
	if current == nil {
		return nil
	}
	node, err := l.createNode(ctx, data, current.next)
	if err != nil {
		return err
	}
	current.next = node
	return nil
}

// InsertAfterN inserts count copies of data, the insertion point advancing
// one node per copy so the copies end up in sequence.
func (l *ForwardList[TV]) InsertAfterN(ctx context.Context, position Iterator[TV], count int, data TV) error {
	for ; count > 0; count-- {
		if err := l.InsertAfter(ctx, position, data); err != nil {
			return err
		}
		position = position.Next()
	}
	return nil
}

// InsertAfterSeq inserts the sequence's values after position in order,
// advancing the insertion point past each inserted node. A failure leaves
// the already-inserted prefix in place.
func (l *ForwardList[TV]) InsertAfterSeq(ctx context.Context, position Iterator[TV], seq iter.Seq[TV]) error {
	for v := range seq {
		if err := l.InsertAfter(ctx, position, v); err != nil {
			return err
		}
		position = position.Next()
	}
	return nil
}

// EmplaceAfter links an element built in place by construct after position.
// An end or zero position is a no-op.
func (l *ForwardList[TV]) EmplaceAfter(ctx context.Context, position Iterator[TV], construct func() (TV, error)) error {
	current := position.cursor
	if current == nil {
		return nil
	}
	slot, err := l.alloc.Allocate(ctx)
	if err != nil {
		return err
	}
	data, err := construct()
	if err != nil {
		l.alloc.Deallocate(slot)
		return collections.Error{Code: collections.ConstructionFailure, Err: err}
	}
	if err := l.alloc.Construct(slot, Node[TV]{ID: collections.NewUUID(), Data: data}); err != nil {
		l.alloc.Deallocate(slot)
		return collections.Error{Code: collections.ConstructionFailure, Err: err}
	}
	slot.next = current.next
	current.next = slot
	return nil
}

// PopFront removes and releases the first element. No-op on an empty list.
func (l *ForwardList[TV]) PopFront() {
	if target := l.head; target != nil {
		l.head = target.next
		l.alloc.Destroy(target)
		l.alloc.Deallocate(target)
	}
}

// EraseAfter removes the element following prev. No-op when prev is the end
// position or has no successor.
func (l *ForwardList[TV]) EraseAfter(prev Iterator[TV]) {
	current := prev.cursor
	if current == nil {
		return
	}
	target := current.next
	if target == nil {
		return
	}
	current.next = target.next
	l.alloc.Destroy(target)
	l.alloc.Deallocate(target)
}

// EraseAfterRange removes the elements in the exclusive range (prev, end):
// everything after prev up to but not including end's node.
func (l *ForwardList[TV]) EraseAfterRange(prev, end Iterator[TV]) {
	current := prev.cursor
	if current == nil {
		return
	}
	for current.next != nil && current.next != end.cursor {
		l.EraseAfter(prev)
	}
}

// Front returns a reference to the first element, or false when empty.
func (l *ForwardList[TV]) Front() (*TV, bool) {
	if l.head == nil {
		return nil, false
	}
	return &l.head.Data, true
}

// IsEmpty reports whether the list holds no elements.
func (l *ForwardList[TV]) IsEmpty() bool {
	return l.head == nil
}

// Size counts the elements by traversal. O(n); the list deliberately carries
// no element counter.
func (l *ForwardList[TV]) Size() int {
	count := 0
	for n := l.head; n != nil; n = n.next {
		count++
	}
	return count
}

// Reverse reverses the chain in place by relinking. O(n), no allocation,
// never fails.
func (l *ForwardList[TV]) Reverse() {
	var prev *Node[TV]
	curr := l.head
	for curr != nil {
		next := curr.next
		curr.next = prev
		prev = curr
		curr = next
	}
	l.head = prev
}

// Begin returns an iterator at the first element; equal to End when empty.
func (l *ForwardList[TV]) Begin() Iterator[TV] {
	return Iterator[TV]{cursor: l.head}
}

// End returns the one-past-the-last position, which for this list is the
// zero iterator.
func (l *ForwardList[TV]) End() Iterator[TV] {
	return Iterator[TV]{}
}

// All yields the elements front to back.
func (l *ForwardList[TV]) All() iter.Seq[TV] {
	return func(yield func(TV) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.Data) {
				return
			}
		}
	}
}

// Clear pops until the list is empty. The list remains fully usable.
func (l *ForwardList[TV]) Clear() {
	for l.head != nil {
		l.PopFront()
	}
}

// Dispose releases every node. There is no sentinel, so this is Clear under
// the teardown name the other containers share.
func (l *ForwardList[TV]) Dispose() {
	l.Clear()
}
