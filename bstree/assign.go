package bstree

import "context"

// cloneSubtree copies the structure rooted at source node for node, walking
// down and back up through the parent links. A failure releases the partial
// copy and returns nil.
func (t *Tree[TV]) cloneSubtree(ctx context.Context, source *Node[TV]) (*Node[TV], error) {
	if source == nil {
		return nil, nil
	}

	root, err := t.createNode(ctx, source.Data)
	if err != nil {
		return nil, err
	}

	cursor := root
	for source != nil {
		switch {
		case source.left != nil && cursor.left == nil:
			node, err := t.createNode(ctx, source.left.Data)
			if err != nil {
				t.releaseSubtree(root)
				return nil, err
			}
			node.parent = cursor
			cursor.left = node
			source, cursor = source.left, node
		case source.right != nil && cursor.right == nil:
			node, err := t.createNode(ctx, source.right.Data)
			if err != nil {
				t.releaseSubtree(root)
				return nil, err
			}
			node.parent = cursor
			cursor.right = node
			source, cursor = source.right, node
		default:
			source, cursor = source.parent, cursor.parent
		}
	}
	return root, nil
}

// releaseSubtree tears down a detached subtree with the same rotation walk
// as Clear.
func (t *Tree[TV]) releaseSubtree(current *Node[TV]) {
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
}

// Clone returns an independent structural copy with its own allocator (per
// SelectOnCopyConstruction) and the same ordering. A failure mid-clone
// unwinds the partial copy.
func (t *Tree[TV]) Clone(ctx context.Context) (*Tree[TV], error) {
	clone := &Tree[TV]{alloc: t.alloc.SelectOnCopyConstruction(), compare: t.compare}
	root, err := clone.cloneSubtree(ctx, t.root)
	if err != nil {
		return nil, err
	}
	clone.root = root
	clone.size = t.size
	return clone, nil
}

// Move transfers the nodes and size to a returned new tree and leaves the
// receiver valid and empty. Pointer-only, never fails.
func (t *Tree[TV]) Move() *Tree[TV] {
	moved := &Tree[TV]{alloc: t.alloc, compare: t.compare, root: t.root, size: t.size}
	t.root = nil
	t.size = 0
	return moved
}

// Assign replaces the receiver's content with a structural copy of rhs's.
// Propagation branches as in package list. A failure leaves the receiver
// valid and empty. Self-assignment is a no-op.
func (t *Tree[TV]) Assign(ctx context.Context, rhs *Tree[TV]) error {
	if t == rhs {
		return nil
	}
	if pol := t.alloc.Policy(); pol.PropagateOnCopy && !pol.AlwaysEqual {
		if !t.alloc.Equals(rhs.alloc) {
			t.Clear()
		}
		t.alloc = rhs.alloc
	}

	t.Clear()
	root, err := t.cloneSubtree(ctx, rhs.root)
	if err != nil {
		return err
	}
	t.root = root
	t.size = rhs.size
	return nil
}

// MoveAssign transfers rhs's nodes and size to the receiver and leaves rhs
// valid and empty. Allocator propagation follows the same branches as in
// package list. Pointer-only, never fails. Self-move is a no-op.
func (t *Tree[TV]) MoveAssign(rhs *Tree[TV]) {
	if t == rhs {
		return
	}
	pol := t.alloc.Policy()
	propagate := pol.PropagateOnMove || pol.AlwaysEqual
	if !propagate && t.alloc.Equals(rhs.alloc) {
		propagate = true
	}

	t.Clear()
	if propagate {
		t.alloc = rhs.alloc
	}
	t.root = rhs.root
	t.size = rhs.size
	rhs.root = nil
	rhs.size = 0
}

// Swap exchanges the roots, sizes, and (when the policy propagates on swap)
// the allocator instances in O(1). Never fails.
func (t *Tree[TV]) Swap(rhs *Tree[TV]) {
	if t.alloc.Policy().PropagateOnSwap {
		t.alloc, rhs.alloc = rhs.alloc, t.alloc
	}
	t.root, rhs.root = rhs.root, t.root
	t.size, rhs.size = rhs.size, t.size
}
