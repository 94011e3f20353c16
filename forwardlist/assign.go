package forwardlist

import "context"

// Clone returns an independent copy with its own allocator (per
// SelectOnCopyConstruction) and the chain copied front-first, preserving
// order. A failure mid-clone unwinds the partial copy.
func (l *ForwardList[TV]) Clone(ctx context.Context) (*ForwardList[TV], error) {
	clone := &ForwardList[TV]{alloc: l.alloc.SelectOnCopyConstruction()}
	if l.head == nil {
		return clone, nil
	}

	node, err := clone.createNode(ctx, l.head.Data, nil)
	if err != nil {
		return nil, err
	}
	clone.head = node

	cursor := node
	for source := l.head.next; source != nil; source = source.next {
		node, err = clone.createNode(ctx, source.Data, nil)
		if err != nil {
			clone.Clear()
			return nil, err
		}
		cursor.next = node
		cursor = node
	}
	return clone, nil
}

// Move transfers the chain to a returned new list and leaves the receiver
// valid and empty. Pointer-only, never fails.
func (l *ForwardList[TV]) Move() *ForwardList[TV] {
	moved := &ForwardList[TV]{alloc: l.alloc, head: l.head}
	l.head = nil
	return moved
}

// Assign replaces the receiver's content with a copy of rhs's, matching its
// length exactly: value-assign over the shared prefix, then extend at the
// tail or cut the excess. Propagation branches as in package list.
// Self-assignment is a no-op.
func (l *ForwardList[TV]) Assign(ctx context.Context, rhs *ForwardList[TV]) error {
	if l == rhs {
		return nil
	}
	if pol := l.alloc.Policy(); pol.PropagateOnCopy && !pol.AlwaysEqual {
		if !l.alloc.Equals(rhs.alloc) {
			l.Clear()
		}
		l.alloc = rhs.alloc
	}
	return l.assign(ctx, rhs)
}

func (l *ForwardList[TV]) assign(ctx context.Context, rhs *ForwardList[TV]) error {
	if rhs.head == nil {
		l.Clear()
		return nil
	}

	cursor := l.head
	source := rhs.head
	var last *Node[TV]

	for cursor != nil && source != nil {
		cursor.Data = source.Data
		last = cursor
		cursor = cursor.next
		source = source.next
	}

	if cursor != nil {
		// Receiver is longer: cut the chain after the shared prefix.
		if last != nil {
			last.next = nil
		} else {
			l.head = nil
		}
		for cursor != nil {
			target := cursor
			cursor = cursor.next
			l.alloc.Destroy(target)
			l.alloc.Deallocate(target)
		}
		return nil
	}

	for source != nil {
		node, err := l.createNode(ctx, source.Data, nil)
		if err != nil {
			return err
		}
		if last == nil {
			l.head = node
		} else {
			last.next = node
		}
		last = node
		source = source.next
	}
	return nil
}

// MoveAssign transfers rhs's chain to the receiver and leaves rhs valid and
// empty. Allocator propagation follows the same branches as in package list.
// Pointer-only, never fails. Self-move is a no-op.
func (l *ForwardList[TV]) MoveAssign(rhs *ForwardList[TV]) {
	if l == rhs {
		return
	}
	pol := l.alloc.Policy()
	propagate := pol.PropagateOnMove || pol.AlwaysEqual
	if !propagate && l.alloc.Equals(rhs.alloc) {
		propagate = true
	}

	l.Clear()
	if propagate {
		l.alloc = rhs.alloc
	}
	l.head = rhs.head
	rhs.head = nil
}

// Swap exchanges the chains and (when the policy propagates on swap) the
// allocator instances in O(1). Never fails.
func (l *ForwardList[TV]) Swap(rhs *ForwardList[TV]) {
	if l.alloc.Policy().PropagateOnSwap {
		l.alloc, rhs.alloc = rhs.alloc, l.alloc
	}
	l.head, rhs.head = rhs.head, l.head
}
