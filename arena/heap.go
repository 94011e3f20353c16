package arena

import "context"

// Heap is the default allocator: every slot is an independent heap cell and
// all Heap instances are interchangeable. It never fails. Its policy mirrors
// the default allocator of the original containers: stateless, always equal,
// propagating only on move.
type Heap[T any] struct{}

// NewHeap returns a Heap allocator for node type T.
func NewHeap[T any]() *Heap[T] {
	return &Heap[T]{}
}

// Allocate reserves one zeroed heap cell.
func (h *Heap[T]) Allocate(context.Context) (*T, error) {
	return new(T), nil
}

// Deallocate does nothing; unreferenced cells are collected.
func (h *Heap[T]) Deallocate(*T) {}

// Construct copies value into slot. It cannot fail.
func (h *Heap[T]) Construct(slot *T, value T) error {
	*slot = value
	return nil
}

// Destroy resets the slot to its zero value so the element no longer pins
// anything it referenced.
func (h *Heap[T]) Destroy(slot *T) {
	var zero T
	*slot = zero
}

func (h *Heap[T]) Policy() Policy {
	return Policy{
		PropagateOnMove: true,
		AlwaysEqual:     true,
	}
}

func (h *Heap[T]) SelectOnCopyConstruction() Allocator[T] {
	return h
}

// Equals is true for any other Heap; all instances share the same backing.
func (h *Heap[T]) Equals(other Allocator[T]) bool {
	_, ok := other.(*Heap[T])
	return ok
}
