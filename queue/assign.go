package queue

import "context"

// Clone returns an independent copy with its own allocator (per
// SelectOnCopyConstruction), its own sentinel, and fresh nodes in order. A
// failure mid-clone unwinds the partial copy.
func (q *Queue[TV]) Clone(ctx context.Context) (*Queue[TV], error) {
	clone := &Queue[TV]{alloc: q.alloc.SelectOnCopyConstruction()}
	head, err := clone.createSentinel(ctx)
	if err != nil {
		return nil, err
	}
	clone.head = head
	for n := q.head.next; n != q.head; n = n.next {
		if err := clone.PushBack(ctx, n.Data); err != nil {
			clone.Dispose()
			return nil, err
		}
	}
	return clone, nil
}

// Move transfers the ring and the tracked size to a returned new queue and
// leaves the receiver valid and empty with a fresh sentinel.
func (q *Queue[TV]) Move(ctx context.Context) (*Queue[TV], error) {
	fresh, err := q.createSentinel(ctx)
	if err != nil {
		return nil, err
	}
	moved := &Queue[TV]{alloc: q.alloc, head: q.head, size: q.size}
	q.head = fresh
	q.size = 0
	return moved, nil
}

// Assign replaces the receiver's sequence with a copy of rhs's, matching
// its length exactly. The walk is driven by the tracked sizes: value-assign
// over the shorter count, then extend with fresh nodes or unlink the
// excess. Propagation branches as in package list. Self-assignment is a
// no-op.
func (q *Queue[TV]) Assign(ctx context.Context, rhs *Queue[TV]) error {
	if q == rhs {
		return nil
	}
	if pol := q.alloc.Policy(); pol.PropagateOnCopy && !pol.AlwaysEqual {
		if !q.alloc.Equals(rhs.alloc) {
			q.Clear()
		}
		q.alloc = rhs.alloc
	}
	return q.assign(ctx, rhs)
}

func (q *Queue[TV]) assign(ctx context.Context, rhs *Queue[TV]) error {
	cursor := q.head.next
	source := rhs.head.next

	shared := min(q.size, rhs.size)
	for count := shared; count > 0; count-- {
		cursor.Data = source.Data
		cursor = cursor.next
		source = source.next
	}

	if q.size < rhs.size {
		for count := rhs.size - q.size; count > 0; count-- {
			if err := q.PushBack(ctx, source.Data); err != nil {
				return err
			}
			source = source.next
		}
		return nil
	}

	for count := q.size - rhs.size; count > 0; count-- {
		target := cursor
		cursor.prev.next = cursor.next
		cursor.next.prev = cursor.prev
		cursor = cursor.next
		q.alloc.Destroy(target)
		q.alloc.Deallocate(target)
		q.size--
	}
	return nil
}

// MoveAssign transfers rhs's ring and size to the receiver and leaves rhs
// valid and empty. Allocator propagation follows the same branches as in
// package list; with unequal non-propagating allocators ownership still
// moves by head exchange. Self-move is a no-op.
func (q *Queue[TV]) MoveAssign(ctx context.Context, rhs *Queue[TV]) error {
	if q == rhs {
		return nil
	}
	pol := q.alloc.Policy()
	propagate := pol.PropagateOnMove || pol.AlwaysEqual
	if !propagate && q.alloc.Equals(rhs.alloc) {
		propagate = true
	}

	fresh, err := rhs.createSentinel(ctx)
	if err != nil {
		return err
	}

	q.Clear()
	q.alloc.Destroy(q.head)
	q.alloc.Deallocate(q.head)
	if propagate {
		q.alloc = rhs.alloc
	}
	q.head = rhs.head
	q.size = rhs.size
	rhs.head = fresh
	rhs.size = 0
	return nil
}

// Swap exchanges the rings, sizes, and (when the policy propagates on swap)
// the allocator instances in O(1). Never fails.
func (q *Queue[TV]) Swap(rhs *Queue[TV]) {
	if q.alloc.Policy().PropagateOnSwap {
		q.alloc, rhs.alloc = rhs.alloc, q.alloc
	}
	q.head, rhs.head = rhs.head, q.head
	q.size, rhs.size = rhs.size, q.size
}
