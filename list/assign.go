package list

import (
	"context"
)

// Clone returns an independent copy of the list: its own allocator (per
// SelectOnCopyConstruction), its own sentinel, and fresh nodes cloned in
// traversal order. A failure mid-clone unwinds the partial copy before the
// error is returned.
func (l *List[TV]) Clone(ctx context.Context) (*List[TV], error) {
	clone := &List[TV]{alloc: l.alloc.SelectOnCopyConstruction()}
	head, err := clone.createSentinel(ctx)
	if err != nil {
		return nil, err
	}
	clone.head = head
	for n := l.head.next; n != l.head; n = n.next {
		if err := clone.PushBack(ctx, n.Data); err != nil {
			clone.Dispose()
			return nil, err
		}
	}
	return clone, nil
}

// Move transfers ownership of the whole ring to a returned new list and
// leaves the receiver valid and empty with a freshly allocated sentinel.
// The allocator instance moves with the ring.
func (l *List[TV]) Move(ctx context.Context) (*List[TV], error) {
	fresh, err := l.createSentinel(ctx)
	if err != nil {
		return nil, err
	}
	moved := &List[TV]{alloc: l.alloc, head: l.head}
	l.head = fresh
	return moved, nil
}

// Assign replaces the receiver's sequence with a copy of rhs's, matching
// its length exactly: elements are value-assigned over the shorter of the
// two sequences, then the receiver is extended with fresh nodes or
// truncated. When the allocator propagates on copy and the two allocators
// differ (and are not always-equal), the receiver is cleared first and
// adopts rhs's allocator. Self-assignment is a no-op.
func (l *List[TV]) Assign(ctx context.Context, rhs *List[TV]) error {
	if l == rhs {
		return nil
	}
	if pol := l.alloc.Policy(); pol.PropagateOnCopy && !pol.AlwaysEqual {
		if !l.alloc.Equals(rhs.alloc) {
			l.Clear()
		}
		l.alloc = rhs.alloc
	}
	return l.assignRange(ctx, rhs)
}

// assignRange is the shared value-assign/extend/truncate algorithm of copy
// assignment.
func (l *List[TV]) assignRange(ctx context.Context, rhs *List[TV]) error {
	src := rhs.head.next
	dst := l.head.next
	for src != rhs.head && dst != l.head {
		dst.Data = src.Data
		src = src.next
		dst = dst.next
	}
	if src != rhs.head {
		for ; src != rhs.head; src = src.next {
			if err := l.PushBack(ctx, src.Data); err != nil {
				return err
			}
		}
		return nil
	}
	l.EraseRange(Iterator[TV]{cursor: dst}, l.End())
	return nil
}

// MoveAssign transfers rhs's ring to the receiver and leaves rhs valid and
// empty. With a propagating (or always-equal, or equal-comparing) allocator
// the receiver adopts rhs's allocator; otherwise ownership still moves by
// head exchange even though the allocator instance does not. Self-move is a
// no-op.
func (l *List[TV]) MoveAssign(ctx context.Context, rhs *List[TV]) error {
	if l == rhs {
		return nil
	}
	pol := l.alloc.Policy()
	propagate := pol.PropagateOnMove || pol.AlwaysEqual
	if !propagate && l.alloc.Equals(rhs.alloc) {
		propagate = true
	}

	// Re-sentinel the source first so a failure leaves both lists intact.
	fresh, err := rhs.createSentinel(ctx)
	if err != nil {
		return err
	}

	l.Clear()
	l.alloc.Destroy(l.head)
	l.alloc.Deallocate(l.head)
	if propagate {
		l.alloc = rhs.alloc
	}
	l.head = rhs.head
	rhs.head = fresh
	return nil
}

// Swap exchanges the two rings in O(1) by swapping sentinels, and the
// allocator instances as well when the policy propagates on swap. Never
// fails.
func (l *List[TV]) Swap(rhs *List[TV]) {
	if l.alloc.Policy().PropagateOnSwap {
		l.alloc, rhs.alloc = rhs.alloc, l.alloc
	}
	l.head, rhs.head = rhs.head, l.head
}
