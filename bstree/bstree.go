// Package bstree implements an unbalanced binary search tree. Nodes carry
// parent links so traversal, cloning and removal all run iteratively with no
// recursion and no auxiliary stack. Equal values descend left. The tree owns
// its nodes exclusively and obtains them from an arena.Allocator. Not safe
// for concurrent use.
package bstree

import (
	"cmp"
	"context"

	"github.com/sharedcode/collections"
	"github.com/sharedcode/collections/arena"
)

// ComparerFunc allows providing an ordering separate from the value type.
// It returns -1, 0, or 1 as a is less than, equal to, or greater than b.
type ComparerFunc[TV any] func(a TV, b TV) int

// Node is one owned cell of the tree. Exported only so allocators can be
// instantiated with it.
type Node[TV any] struct {
	ID   collections.UUID
	Data TV

	parent *Node[TV]
	left   *Node[TV]
	right  *Node[TV]
}

// Tree owns the nodes reachable from root and tracks the element count
// incrementally.
type Tree[TV any] struct {
	alloc   arena.Allocator[Node[TV]]
	compare ComparerFunc[TV]
	root    *Node[TV]
	size    int
}

// New returns an empty tree ordered by the natural ordering of TV, backed by
// the default heap allocator.
func New[TV cmp.Ordered]() *Tree[TV] {
	return NewWithAllocator[TV](arena.NewHeap[Node[TV]]())
}

// NewWithAllocator returns an empty tree ordered by the natural ordering of
// TV that takes all its nodes from alloc.
func NewWithAllocator[TV cmp.Ordered](alloc arena.Allocator[Node[TV]]) *Tree[TV] {
	return NewWithComparer(cmp.Compare[TV], alloc)
}

// NewWithComparer returns an empty tree ordered by compare, for value types
// without a natural ordering. No allocation happens until the first insert.
func NewWithComparer[TV any](compare ComparerFunc[TV], alloc arena.Allocator[Node[TV]]) *Tree[TV] {
	return &Tree[TV]{alloc: alloc, compare: compare}
}

// NewFromSlice returns a tree holding the values, inserted in order.
func NewFromSlice[TV cmp.Ordered](ctx context.Context, values []TV) (*Tree[TV], error) {
	t := New[TV]()
	for _, v := range values {
		if err := t.Insert(ctx, v); err != nil {
			t.Clear()
			return nil, err
		}
	}
	return t, nil
}

// createNode reserves a slot and constructs an unlinked element. A
// construction failure rolls the reservation back.
func (t *Tree[TV]) createNode(ctx context.Context, data TV) (*Node[TV], error) {
	slot, err := t.alloc.Allocate(ctx)
	if err != nil {
		return nil, err
	}
	if err := t.alloc.Construct(slot, Node[TV]{ID: collections.NewUUID(), Data: data}); err != nil {
		t.alloc.Deallocate(slot)
		return nil, collections.Error{Code: collections.ConstructionFailure, Err: err}
	}
	return slot, nil
}

// insertNode walks down from the root and links node as a leaf. Equal values
// descend left.
func (t *Tree[TV]) insertNode(node *Node[TV]) {
	if t.root == nil {
		t.root = node
		t.size++
		return
	}

	current := t.root
	var parent *Node[TV]
	for current != nil {
		parent = current
		if t.compare(node.Data, current.Data) <= 0 {
			current = current.left
		} else {
			current = current.right
		}
	}

	node.parent = parent
	if t.compare(node.Data, parent.Data) <= 0 {
		parent.left = node
	} else {
		parent.right = node
	}
	t.size++
}

// Insert adds data to the tree. Duplicates are kept. Strong guarantee: a
// failure leaves the tree unchanged.
func (t *Tree[TV]) Insert(ctx context.Context, data TV) error {
	node, err := t.createNode(ctx, data)
	if err != nil {
		return err
	}
	t.insertNode(node)
	return nil
}

// Emplace adds an element built in place by construct, with the same
// rollback guarantee as Insert.
func (t *Tree[TV]) Emplace(ctx context.Context, construct func() (TV, error)) error {
	slot, err := t.alloc.Allocate(ctx)
	if err != nil {
		return err
	}
	data, err := construct()
	if err != nil {
		t.alloc.Deallocate(slot)
		return collections.Error{Code: collections.ConstructionFailure, Err: err}
	}
	if err := t.alloc.Construct(slot, Node[TV]{ID: collections.NewUUID(), Data: data}); err != nil {
		t.alloc.Deallocate(slot)
		return collections.Error{Code: collections.ConstructionFailure, Err: err}
	}
	t.insertNode(slot)
	return nil
}

// find returns the highest node comparing equal to key, or nil.
func (t *Tree[TV]) find(key TV) *Node[TV] {
	current := t.root
	for current != nil {
		switch c := t.compare(key, current.Data); {
		case c < 0:
			current = current.left
		case c > 0:
			current = current.right
		default:
			return current
		}
	}
	return nil
}

// Search returns a reference to the stored value comparing equal to key, or
// false when absent. Mutating the referent in a way that changes its
// ordering corrupts the tree.
func (t *Tree[TV]) Search(key TV) (*TV, bool) {
	if node := t.find(key); node != nil {
		return &node.Data, true
	}
	return nil, false
}

// Contains reports whether a value comparing equal to key is present.
func (t *Tree[TV]) Contains(key TV) bool {
	return t.find(key) != nil
}

// Remove unlinks and releases one node comparing equal to key and reports
// whether one was found. A node with two children swaps data with its
// in-order successor and the successor's node is released instead, so no
// subtree moves.
func (t *Tree[TV]) Remove(key TV) bool {
	current := t.find(key)
	if current == nil {
		return false
	}

	if current.left != nil && current.right != nil {
		successor := current.right
		for successor.left != nil {
			successor = successor.left
		}
		current.Data = successor.Data
		current = successor
	}

	// current has at most one child now.
	child := current.left
	if child == nil {
		child = current.right
	}
	if child != nil {
		child.parent = current.parent
	}
	switch parent := current.parent; {
	case parent == nil:
		t.root = child
	case parent.left == current:
		parent.left = child
	default:
		parent.right = child
	}

	t.alloc.Destroy(current)
	t.alloc.Deallocate(current)
	t.size--
	return true
}

// IsEmpty reports whether the tree holds no elements.
func (t *Tree[TV]) IsEmpty() bool {
	return t.root == nil
}

// Size returns the tracked element count. O(1).
func (t *Tree[TV]) Size() int {
	return t.size
}

// Min returns the smallest value, or false when empty.
func (t *Tree[TV]) Min() (TV, bool) {
	if t.root == nil {
		var zero TV
		return zero, false
	}
	current := t.root
	for current.left != nil {
		current = current.left
	}
	return current.Data, true
}

// Max returns the largest value, or false when empty.
func (t *Tree[TV]) Max() (TV, bool) {
	if t.root == nil {
		var zero TV
		return zero, false
	}
	current := t.root
	for current.right != nil {
		current = current.right
	}
	return current.Data, true
}

// Clear releases every node by iterative right-rotation teardown: a node
// with no left child is released and its right child visited next, otherwise
// the left child is rotated above it. O(n), no recursion.
func (t *Tree[TV]) Clear() {
	current := t.root
	for current != nil {
		if current.left == nil {
			next := current.right
			t.alloc.Destroy(current)
			t.alloc.Deallocate(current)
			current = next
		} else {
			temp := current.left
			current.left = temp.right
			temp.right = current
			current = temp
		}
	}
	t.root = nil
	t.size = 0
}

// Dispose releases every node. There is no sentinel, so this is Clear under
// the teardown name the other containers share.
func (t *Tree[TV]) Dispose() {
	t.Clear()
}
