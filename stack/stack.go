// Package stack implements a singly-linked LIFO container. There is no
// sentinel: the head pointer is nil when the stack is empty, and the element
// count is tracked incrementally. The stack owns its nodes exclusively and
// obtains them from an arena.Allocator. Not safe for concurrent use.
package stack

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

// Stack owns the chain hanging off head. head is the top element, nil when
// empty.
type Stack[TV any] struct {
	alloc arena.Allocator[Node[TV]]
	head  *Node[TV]
	size  int
}

// New returns an empty stack backed by the default heap allocator.
func New[TV any]() *Stack[TV] {
	return NewWithAllocator(arena.NewHeap[Node[TV]]())
}

// NewWithAllocator returns an empty stack that takes all its nodes from
// alloc. No allocation happens until the first push.
func NewWithAllocator[TV any](alloc arena.Allocator[Node[TV]]) *Stack[TV] {
	return &Stack[TV]{alloc: alloc}
}

// NewFromSlice returns a stack with the values pushed in order; the last
// value ends up on top.
func NewFromSlice[TV any](ctx context.Context, values []TV) (*Stack[TV], error) {
	s := New[TV]()
	for _, v := range values {
		if err := s.Push(ctx, v); err != nil {
			s.Clear()
			return nil, err
		}
	}
	return s, nil
}

// NewFromSeq returns a stack with the sequence's values pushed in order.
func NewFromSeq[TV any](ctx context.Context, seq iter.Seq[TV]) (*Stack[TV], error) {
	s := New[TV]()
	for v := range seq {
		if err := s.Push(ctx, v); err != nil {
			s.Clear()
			return nil, err
		}
	}
	return s, nil
}

// createNode reserves a slot, constructs the element and links next. A
// construction failure rolls the reservation back.
func (s *Stack[TV]) createNode(ctx context.Context, data TV, next *Node[TV]) (*Node[TV], error) {
	slot, err := s.alloc.Allocate(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.alloc.Construct(slot, Node[TV]{ID: collections.NewUUID(), Data: data}); err != nil {
		s.alloc.Deallocate(slot)
		return nil, collections.Error{Code: collections.ConstructionFailure, Err: err}
	}
	slot.next = next
	return slot, nil
}

// Push places data on top of the stack. Strong guarantee: a failure leaves
// the stack unchanged.
func (s *Stack[TV]) Push(ctx context.Context, data TV) error {
	node, err := s.createNode(ctx, data, s.head)
	if err != nil {
		return err
	}
	s.head = node
	s.size++
	return nil
}

// Emplace places an element built in place by construct on top of the
// stack, with the same rollback guarantee as Push.
func (s *Stack[TV]) Emplace(ctx context.Context, construct func() (TV, error)) error {
	slot, err := s.alloc.Allocate(ctx)
	if err != nil {
		return err
	}
	data, err := construct()
	if err != nil {
		s.alloc.Deallocate(slot)
		return collections.Error{Code: collections.ConstructionFailure, Err: err}
	}
	if err := s.alloc.Construct(slot, Node[TV]{ID: collections.NewUUID(), Data: data}); err != nil {
		s.alloc.Deallocate(slot)
		return collections.Error{Code: collections.ConstructionFailure, Err: err}
	}
	slot.next = s.head
	s.head = slot
	s.size++
	return nil
}

// Pop removes and releases the top element. No-op on an empty stack.
func (s *Stack[TV]) Pop() {
	if target := s.head; target != nil {
		s.head = target.next
		s.alloc.Destroy(target)
		s.alloc.Deallocate(target)
		s.size--
	}
}

// Top returns a reference to the top element, or false when empty.
func (s *Stack[TV]) Top() (*TV, bool) {
	if s.head == nil {
		return nil, false
	}
	return &s.head.Data, true
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[TV]) IsEmpty() bool {
	return s.head == nil
}

// Size returns the tracked element count. O(1).
func (s *Stack[TV]) Size() int {
	return s.size
}

// All yields the elements top to bottom.
func (s *Stack[TV]) All() iter.Seq[TV] {
	return func(yield func(TV) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(n.Data) {
				return
			}
		}
	}
}

// Clear pops until the stack is empty. The stack remains fully usable;
// there is no sentinel to release, so Clear is also the full teardown.
func (s *Stack[TV]) Clear() {
	for s.head != nil {
		s.Pop()
	}
}

// Dispose releases every node. There is no sentinel, so this is Clear under
// the teardown name the other containers share.
func (s *Stack[TV]) Dispose() {
	s.Clear()
}

// Clone returns an independent copy with its own allocator (per
// SelectOnCopyConstruction) and the chain cloned top-first, preserving
// order. A failure mid-clone unwinds the partial copy.
func (s *Stack[TV]) Clone(ctx context.Context) (*Stack[TV], error) {
	clone := &Stack[TV]{alloc: s.alloc.SelectOnCopyConstruction()}
	if s.head == nil {
		return clone, nil
	}

	node, err := clone.createNode(ctx, s.head.Data, nil)
	if err != nil {
		return nil, err
	}
	clone.head = node
	clone.size = 1

	cursor := node
	for source := s.head.next; source != nil; source = source.next {
		node, err = clone.createNode(ctx, source.Data, nil)
		if err != nil {
			clone.Clear()
			return nil, err
		}
		cursor.next = node
		cursor = node
		clone.size++
	}
	return clone, nil
}

// Move transfers the chain and size to a returned new stack and leaves the
// receiver valid and empty. Pointer-only, never fails.
func (s *Stack[TV]) Move() *Stack[TV] {
	moved := &Stack[TV]{alloc: s.alloc, head: s.head, size: s.size}
	s.head = nil
	s.size = 0
	return moved
}

// Assign replaces the receiver's content with a copy of rhs's, matching its
// length exactly: value-assign over the shorter count, then extend at the
// bottom or cut the excess. Propagation branches as in package list.
// Self-assignment is a no-op.
func (s *Stack[TV]) Assign(ctx context.Context, rhs *Stack[TV]) error {
	if s == rhs {
		return nil
	}
	if pol := s.alloc.Policy(); pol.PropagateOnCopy && !pol.AlwaysEqual {
		if !s.alloc.Equals(rhs.alloc) {
			s.Clear()
		}
		s.alloc = rhs.alloc
	}
	return s.assign(ctx, rhs)
}

func (s *Stack[TV]) assign(ctx context.Context, rhs *Stack[TV]) error {
	if rhs.head == nil {
		s.Clear()
		return nil
	}

	cursor := s.head
	source := rhs.head
	var last *Node[TV]

	for count := min(s.size, rhs.size); count > 0; count-- {
		cursor.Data = source.Data
		last = cursor
		cursor = cursor.next
		source = source.next
	}

	if s.size > rhs.size {
		// Cut the chain after the shared prefix and release the rest.
		if last != nil {
			last.next = nil
		} else {
			s.head = nil
		}
		for count := s.size - rhs.size; count > 0; count-- {
			target := cursor
			cursor = cursor.next
			s.alloc.Destroy(target)
			s.alloc.Deallocate(target)
			s.size--
		}
		return nil
	}

	for count := rhs.size - s.size; count > 0; count-- {
		node, err := s.createNode(ctx, source.Data, nil)
		if err != nil {
			return err
		}
		if last == nil {
			s.head = node
		} else {
			last.next = node
		}
		last = node
		source = source.next
		s.size++
	}
	return nil
}

// MoveAssign transfers rhs's chain and size to the receiver and leaves rhs
// valid and empty. Allocator propagation follows the same branches as in
// package list. Pointer-only, never fails. Self-move is a no-op.
func (s *Stack[TV]) MoveAssign(rhs *Stack[TV]) {
	if s == rhs {
		return
	}
	pol := s.alloc.Policy()
	propagate := pol.PropagateOnMove || pol.AlwaysEqual
	if !propagate && s.alloc.Equals(rhs.alloc) {
		propagate = true
	}

	s.Clear()
	if propagate {
		s.alloc = rhs.alloc
	}
	s.head = rhs.head
	s.size = rhs.size
	rhs.head = nil
	rhs.size = 0
}

// Swap exchanges the chains, sizes, and (when the policy propagates on
// swap) the allocator instances in O(1). Never fails.
func (s *Stack[TV]) Swap(rhs *Stack[TV]) {
	if s.alloc.Policy().PropagateOnSwap {
		s.alloc, rhs.alloc = rhs.alloc, s.alloc
	}
	s.head, rhs.head = rhs.head, s.head
	s.size, rhs.size = rhs.size, s.size
}
