package forwardlist

// Iterator is a forward-only position in the chain. The zero Iterator is the
// end position; iterators compare with ==. Any mutation of the list other
// than through the iterator's own position may invalidate it.
type Iterator[TV any] struct {
	cursor *Node[TV]
}

// Next returns the position one step forward. Advancing the end position
// stays at end.
func (it Iterator[TV]) Next() Iterator[TV] {
	if it.cursor == nil {
		return it
	}
	return Iterator[TV]{cursor: it.cursor.next}
}

// Value returns a reference to the element at the position. Panics on the
// end position.
func (it Iterator[TV]) Value() *TV {
	if it.cursor == nil {
		panic("forwardlist: Value called on an end or zero iterator")
	}
	return &it.cursor.Data
}

// ID returns the node's identifier for diagnostics, or an empty string for
// the end position.
func (it Iterator[TV]) ID() string {
	if it.cursor == nil {
		return ""
	}
	return it.cursor.ID.String()
}

// IsEnd reports whether the iterator is the end position.
func (it Iterator[TV]) IsEnd() bool {
	return it.cursor == nil
}
