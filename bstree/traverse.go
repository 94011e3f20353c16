package bstree

import "iter"

// The traversals below walk the parent links instead of threading the tree
// the Morris way, so an early break from the range loop never leaves a
// temporary link behind.

func leftmost[TV any](n *Node[TV]) *Node[TV] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// bottomLeft descends to the post-order start: left when possible,
// otherwise right.
func bottomLeft[TV any](n *Node[TV]) *Node[TV] {
	for {
		switch {
		case n.left != nil:
			n = n.left
		case n.right != nil:
			n = n.right
		default:
			return n
		}
	}
}

func inorderNext[TV any](n *Node[TV]) *Node[TV] {
	if n.right != nil {
		return leftmost(n.right)
	}
	for n.parent != nil && n.parent.right == n {
		n = n.parent
	}
	return n.parent
}

func preorderNext[TV any](n *Node[TV]) *Node[TV] {
	if n.left != nil {
		return n.left
	}
	if n.right != nil {
		return n.right
	}
	for p := n.parent; p != nil; n, p = p, p.parent {
		if p.right != nil && p.right != n {
			return p.right
		}
	}
	return nil
}

func postorderNext[TV any](n *Node[TV]) *Node[TV] {
	p := n.parent
	if p == nil {
		return nil
	}
	if p.right != nil && p.right != n {
		return bottomLeft(p.right)
	}
	return p
}

// InOrder yields the values in sorted order.
func (t *Tree[TV]) InOrder() iter.Seq[TV] {
	return func(yield func(TV) bool) {
		if t.root == nil {
			return
		}
		for n := leftmost(t.root); n != nil; n = inorderNext(n) {
			if !yield(n.Data) {
				return
			}
		}
	}
}

// PreOrder yields each node before its subtrees.
func (t *Tree[TV]) PreOrder() iter.Seq[TV] {
	return func(yield func(TV) bool) {
		for n := t.root; n != nil; n = preorderNext(n) {
			if !yield(n.Data) {
				return
			}
		}
	}
}

// PostOrder yields each node after its subtrees; the root comes last.
func (t *Tree[TV]) PostOrder() iter.Seq[TV] {
	return func(yield func(TV) bool) {
		if t.root == nil {
			return
		}
		for n := bottomLeft(t.root); n != nil; n = postorderNext(n) {
			if !yield(n.Data) {
				return
			}
		}
	}
}
