// Package list implements a doubly-linked circular list that owns its nodes
// and obtains them from an arena.Allocator. The list keeps one always-present
// sentinel node whose self-loop marks the empty state; the ring is circular,
// so walking next from any node eventually returns to the sentinel.
//
// The list is a single-owner structure: no node is ever shared between two
// lists, copies clone fresh nodes, and moves transfer the sentinel while
// leaving the source valid and empty. It is not safe for concurrent use.
package list

import (
	"context"
	"iter"

	"github.com/sharedcode/collections/arena"
)

// List owns the sentinel node and, transitively, every node reachable from
// it. head.next is the first element (or head itself when empty); head.prev
// is the last.
type List[TV any] struct {
	alloc arena.Allocator[Node[TV]]
	head  *Node[TV]
}

// New returns an empty list backed by the default heap allocator.
func New[TV any](ctx context.Context) (*List[TV], error) {
	return NewWithAllocator(ctx, arena.NewHeap[Node[TV]]())
}

// NewWithAllocator returns an empty list that takes all its nodes from
// alloc.
func NewWithAllocator[TV any](ctx context.Context, alloc arena.Allocator[Node[TV]]) (*List[TV], error) {
	l := &List[TV]{alloc: alloc}
	head, err := l.createSentinel(ctx)
	if err != nil {
		return nil, err
	}
	l.head = head
	return l, nil
}

// NewFromSlice returns a list holding the values in order.
func NewFromSlice[TV any](ctx context.Context, values []TV) (*List[TV], error) {
	l, err := New[TV](ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		if err := l.PushBack(ctx, v); err != nil {
			l.Dispose()
			return nil, err
		}
	}
	return l, nil
}

// NewFromSeq returns a list holding the sequence's values in order.
func NewFromSeq[TV any](ctx context.Context, seq iter.Seq[TV]) (*List[TV], error) {
	l, err := New[TV](ctx)
	if err != nil {
		return nil, err
	}
	for v := range seq {
		if err := l.PushBack(ctx, v); err != nil {
			l.Dispose()
			return nil, err
		}
	}
	return l, nil
}

// Front returns a reference to the first element, or false when the list is
// empty. Empty access is not an error and never panics.
func (l *List[TV]) Front() (*TV, bool) {
	if l.IsEmpty() {
		return nil, false
	}
	return &l.head.next.Data, true
}

// Back returns a reference to the last element, or false when the list is
// empty.
func (l *List[TV]) Back() (*TV, bool) {
	if l.IsEmpty() {
		return nil, false
	}
	return &l.head.prev.Data, true
}

// IsEmpty reports whether the sentinel's links both point to itself.
func (l *List[TV]) IsEmpty() bool {
	return l.head.next == l.head && l.head.prev == l.head
}

// Size counts the elements by traversing from Begin to End. O(n): the list
// deliberately carries no size field, so assignment, move and swap have no
// second piece of invariant state to keep synchronized.
func (l *List[TV]) Size() int {
	var n int
	for it := l.Begin(); it != l.End(); it = it.Next() {
		n++
	}
	return n
}

// Begin returns an iterator on the first element; equal to End when the
// list is empty.
func (l *List[TV]) Begin() Iterator[TV] {
	return Iterator[TV]{cursor: l.head.next}
}

// End returns the past-the-end iterator, positioned on the sentinel. It is
// never dereferenceable.
func (l *List[TV]) End() Iterator[TV] {
	return Iterator[TV]{cursor: l.head}
}

// All yields the elements front to back.
func (l *List[TV]) All() iter.Seq[TV] {
	return func(yield func(TV) bool) {
		for n := l.head.next; n != l.head; n = n.next {
			if !yield(n.Data) {
				return
			}
		}
	}
}

// Backward yields the elements back to front.
func (l *List[TV]) Backward() iter.Seq[TV] {
	return func(yield func(TV) bool) {
		for n := l.head.prev; n != l.head; n = n.prev {
			if !yield(n.Data) {
				return
			}
		}
	}
}
