package list

import (
	"context"

	"github.com/sharedcode/collections"
)

// Node is one owned heap cell of the ring: one element plus two non-owning
// navigation links. The links are managed exclusively by the owning List.
// A node's default links point to itself, which doubles as the sentinel
// state. Node is exported only so allocators can be instantiated with it;
// its links are not reachable from outside the package.
type Node[TV any] struct {
	// ID identifies the node for allocator bookkeeping and diagnostics.
	ID collections.UUID
	// Data is the element held by this node. Meaningless on the sentinel.
	Data TV

	prev     *Node[TV]
	next     *Node[TV]
	sentinel bool
}

// pushFront splices node immediately after n in the ring. node must be a
// freshly created, unlinked node; its own links are overwritten. O(1),
// pointer-only, no allocation.
func (n *Node[TV]) pushFront(node *Node[TV]) {
	node.next = n.next
	node.prev = n
	n.next.prev = node
	n.next = node
}

// pushBack splices node immediately before n in the ring. Same contract as
// pushFront.
func (n *Node[TV]) pushBack(node *Node[TV]) {
	node.prev = n.prev
	node.next = n
	n.prev.next = node
	n.prev = node
}

// createNode reserves a slot from the allocator, constructs the element in
// it and returns the self-linked node. If construction fails after the slot
// was reserved, the reservation is rolled back before the error propagates,
// so no raw storage leaks.
func (l *List[TV]) createNode(ctx context.Context, data TV) (*Node[TV], error) {
	slot, err := l.alloc.Allocate(ctx)
	if err != nil {
		return nil, err
	}
	if err := l.alloc.Construct(slot, Node[TV]{ID: collections.NewUUID(), Data: data}); err != nil {
		l.alloc.Deallocate(slot)
		return nil, collections.Error{Code: collections.ConstructionFailure, Err: err}
	}
	slot.prev = slot
	slot.next = slot
	return slot, nil
}

// emplaceNode is createNode with the element built in place by construct,
// after the slot reservation. A failing construct rolls the reservation
// back the same way a failing Construct does.
func (l *List[TV]) emplaceNode(ctx context.Context, construct func() (TV, error)) (*Node[TV], error) {
	slot, err := l.alloc.Allocate(ctx)
	if err != nil {
		return nil, err
	}
	data, err := construct()
	if err != nil {
		l.alloc.Deallocate(slot)
		return nil, collections.Error{Code: collections.ConstructionFailure, Err: err}
	}
	if err := l.alloc.Construct(slot, Node[TV]{ID: collections.NewUUID(), Data: data}); err != nil {
		l.alloc.Deallocate(slot)
		return nil, collections.Error{Code: collections.ConstructionFailure, Err: err}
	}
	slot.prev = slot
	slot.next = slot
	return slot, nil
}

// createSentinel builds the always-present head node. It stores no
// meaningful data and marks the logical end of the ring.
func (l *List[TV]) createSentinel(ctx context.Context) (*Node[TV], error) {
	slot, err := l.alloc.Allocate(ctx)
	if err != nil {
		return nil, err
	}
	if err := l.alloc.Construct(slot, Node[TV]{ID: collections.NewUUID(), sentinel: true}); err != nil {
		l.alloc.Deallocate(slot)
		return nil, collections.Error{Code: collections.ConstructionFailure, Err: err}
	}
	slot.prev = slot
	slot.next = slot
	return slot, nil
}
