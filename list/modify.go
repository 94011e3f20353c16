package list

import (
	"context"
	"iter"
)

// PushBack appends data. Strong guarantee: a construction failure leaves
// the list unchanged.
func (l *List[TV]) PushBack(ctx context.Context, data TV) error {
	node, err := l.createNode(ctx, data)
	if err != nil {
		return err
	}
	l.head.pushBack(node)
	return nil
}

// PushFront prepends data. Strong guarantee as with PushBack.
func (l *List[TV]) PushFront(ctx context.Context, data TV) error {
	node, err := l.createNode(ctx, data)
	if err != nil {
		return err
	}
	l.head.pushFront(node)
	return nil
}

// EmplaceBack appends an element built in place by construct.
func (l *List[TV]) EmplaceBack(ctx context.Context, construct func() (TV, error)) error {
	node, err := l.emplaceNode(ctx, construct)
	if err != nil {
		return err
	}
	l.head.pushBack(node)
	return nil
}

// EmplaceFront prepends an element built in place by construct.
func (l *List[TV]) EmplaceFront(ctx context.Context, construct func() (TV, error)) error {
	node, err := l.emplaceNode(ctx, construct)
	if err != nil {
		return err
	}
	l.head.pushFront(node)
	return nil
}

// InsertBefore splices a freshly created node holding data immediately
// before position. Inserting before End appends.
func (l *List[TV]) InsertBefore(ctx context.Context, position Iterator[TV], data TV) error {
	node, err := l.createNode(ctx, data)
	if err != nil {
		return err
	}
	position.cursor.pushBack(node)
	return nil
}

// InsertAfter splices a freshly created node holding data immediately after
// position.
func (l *List[TV]) InsertAfter(ctx context.Context, position Iterator[TV], data TV) error {
	node, err := l.createNode(ctx, data)
	if err != nil {
		return err
	}
	position.cursor.pushFront(node)
	return nil
}

// InsertBeforeN inserts count copies of data before position, one node at a
// time. An intermediate failure leaves the already inserted prefix in
// place.
func (l *List[TV]) InsertBeforeN(ctx context.Context, position Iterator[TV], count int, data TV) error {
	for ; count > 0; count-- {
		if err := l.InsertBefore(ctx, position, data); err != nil {
			return err
		}
	}
	return nil
}

// InsertAfterN inserts count copies of data after position, one node at a
// time, with the same partial-prefix behavior as InsertBeforeN.
func (l *List[TV]) InsertAfterN(ctx context.Context, position Iterator[TV], count int, data TV) error {
	for ; count > 0; count-- {
		if err := l.InsertAfter(ctx, position, data); err != nil {
			return err
		}
	}
	return nil
}

// InsertBeforeSeq inserts the sequence's values before position in order.
func (l *List[TV]) InsertBeforeSeq(ctx context.Context, position Iterator[TV], seq iter.Seq[TV]) error {
	for v := range seq {
		if err := l.InsertBefore(ctx, position, v); err != nil {
			return err
		}
	}
	return nil
}

// InsertAfterSeq inserts the sequence's values after position in order; the
// insertion point advances past each inserted node so the sequence order is
// preserved.
func (l *List[TV]) InsertAfterSeq(ctx context.Context, position Iterator[TV], seq iter.Seq[TV]) error {
	for v := range seq {
		if err := l.InsertAfter(ctx, position, v); err != nil {
			return err
		}
		position = position.Next()
	}
	return nil
}

// EmplaceBefore splices an element built in place by construct before
// position.
func (l *List[TV]) EmplaceBefore(ctx context.Context, position Iterator[TV], construct func() (TV, error)) error {
	node, err := l.emplaceNode(ctx, construct)
	if err != nil {
		return err
	}
	position.cursor.pushBack(node)
	return nil
}

// EmplaceAfter splices an element built in place by construct after
// position.
func (l *List[TV]) EmplaceAfter(ctx context.Context, position Iterator[TV], construct func() (TV, error)) error {
	node, err := l.emplaceNode(ctx, construct)
	if err != nil {
		return err
	}
	position.cursor.pushFront(node)
	return nil
}

// PopFront removes and releases the first element. No-op on an empty list.
func (l *List[TV]) PopFront() {
	l.Erase(Iterator[TV]{cursor: l.head.next})
}

// PopBack removes and releases the last element. No-op on an empty list.
func (l *List[TV]) PopBack() {
	l.Erase(Iterator[TV]{cursor: l.head.prev})
}

// Erase unlinks the referenced node from the ring, destroys and releases
// it, and returns an iterator on the following node. Erasing End is a
// no-op returning the same position. O(1).
func (l *List[TV]) Erase(position Iterator[TV]) Iterator[TV] {
	target := position.cursor
	if target == nil || target.sentinel {
		return position
	}

	target.prev.next = target.next
	target.next.prev = target.prev
	next := target.next

	l.alloc.Destroy(target)
	l.alloc.Deallocate(target)

	return Iterator[TV]{cursor: next}
}

// EraseRange erases [first, last) one node at a time and returns last.
func (l *List[TV]) EraseRange(first, last Iterator[TV]) Iterator[TV] {
	for first != last {
		first = l.Erase(first)
	}
	return last
}

// Clear pops elements until the list is empty. The sentinel stays allocated
// and self-linked; the list remains fully usable.
func (l *List[TV]) Clear() {
	for !l.IsEmpty() {
		l.PopFront()
	}
}

// Dispose clears the list and releases the sentinel itself. The list must
// not be used afterwards. This is the explicit teardown counterpart of
// construction, so stateful arenas can balance their books.
func (l *List[TV]) Dispose() {
	if l.head == nil {
		return
	}
	l.Clear()
	l.alloc.Destroy(l.head)
	l.alloc.Deallocate(l.head)
	l.head = nil
}
