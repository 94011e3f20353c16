package list

// Iterator is a bidirectional cursor over the ring, independent of List
// ownership. It is a small value type; two iterators are equal (==) iff
// they reference the same node. Erasing a node invalidates only iterators
// positioned on that node; all others remain valid.
type Iterator[TV any] struct {
	cursor *Node[TV]
}

// Next returns the iterator advanced to the following node.
func (it Iterator[TV]) Next() Iterator[TV] {
	return Iterator[TV]{cursor: it.cursor.next}
}

// Prev returns the iterator moved to the preceding node.
func (it Iterator[TV]) Prev() Iterator[TV] {
	return Iterator[TV]{cursor: it.cursor.prev}
}

// Value returns a reference to the element of the current node. Calling it
// on an end or zero iterator is a contract violation and panics.
func (it Iterator[TV]) Value() *TV {
	if it.cursor == nil || it.cursor.sentinel {
		panic("list: Value called on an end or zero iterator")
	}
	return &it.cursor.Data
}

// ID returns the identity of the referenced node, or an empty string for a
// zero iterator. Useful for diagnostics.
func (it Iterator[TV]) ID() string {
	if it.cursor == nil {
		return ""
	}
	return it.cursor.ID.String()
}
