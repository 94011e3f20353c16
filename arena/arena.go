// Package arena provides the allocator strategies the containers obtain
// their nodes from. An Allocator is a runtime strategy object: it reserves
// and releases raw node slots (Allocate/Deallocate), places and tears down
// element values in them (Construct/Destroy), and answers the propagation
// policy queries the containers consult during copy/move assignment and
// swap.
//
// Containers never assume a concrete allocator implementation beyond this
// contract. A failed Construct must be followed by Deallocate of the same
// slot by the caller; the containers' node factories guarantee this, so a
// construction failure never leaks reserved storage.
package arena

import "context"

// Policy carries the allocator propagation traits. They decide whether the
// allocator instance itself transfers during container copy/move/swap,
// independent of whether the owned nodes transfer.
type Policy struct {
	// PropagateOnCopy makes copy-assignment adopt the source's allocator.
	PropagateOnCopy bool
	// PropagateOnMove makes move-assignment adopt the source's allocator.
	PropagateOnMove bool
	// PropagateOnSwap makes Swap exchange the allocator instances.
	PropagateOnSwap bool
	// AlwaysEqual declares every instance interchangeable with every other;
	// equality checks can then be skipped entirely.
	AlwaysEqual bool
}

// Allocator is the strategy the containers consume. T is the container's
// node type.
type Allocator[T any] interface {
	// Allocate reserves storage for one node and returns the slot. The
	// slot's value is unspecified until Construct succeeds on it.
	Allocate(ctx context.Context) (*T, error)
	// Deallocate returns a slot to the allocator. The slot must not be
	// touched afterwards.
	Deallocate(slot *T)
	// Construct places value into slot. On error the slot still holds no
	// element and must be deallocated by the caller.
	Construct(slot *T, value T) error
	// Destroy tears down the element held in slot. The slot remains
	// reserved until Deallocate.
	Destroy(slot *T)

	// Policy returns the propagation traits of this allocator type.
	Policy() Policy
	// SelectOnCopyConstruction returns the allocator a copy-constructed
	// container should use.
	SelectOnCopyConstruction() Allocator[T]
	// Equals reports whether other can release slots reserved by this
	// allocator and vice versa.
	Equals(other Allocator[T]) bool
}
