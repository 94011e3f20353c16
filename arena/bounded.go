package arena

import (
	"context"
	"fmt"

	"github.com/sharedcode/collections"
)

// Bounded is a capacity-limited arena. Allocate fails with an
// AllocationFailure once the number of outstanding slots reaches the
// capacity, which gives callers a real allocation-failure path to exercise
// the containers' rollback guarantees against.
//
// Not safe for concurrent use.
type Bounded[T any] struct {
	capacity int
	inUse    int
}

// NewBounded returns a Bounded arena that will issue at most capacity
// outstanding slots.
func NewBounded[T any](capacity int) *Bounded[T] {
	return &Bounded[T]{capacity: capacity}
}

func (b *Bounded[T]) Allocate(context.Context) (*T, error) {
	if b.inUse >= b.capacity {
		return nil, collections.Error{
			Code:     collections.AllocationFailure,
			Err:      fmt.Errorf("arena capacity of %d slots exhausted", b.capacity),
			UserData: b.capacity,
		}
	}
	b.inUse++
	return new(T), nil
}

func (b *Bounded[T]) Deallocate(*T) {
	if b.inUse > 0 {
		b.inUse--
	}
}

func (b *Bounded[T]) Construct(slot *T, value T) error {
	*slot = value
	return nil
}

func (b *Bounded[T]) Destroy(slot *T) {
	var zero T
	*slot = zero
}

// Policy keeps Bounded instances pinned to their containers: stateful, not
// interchangeable, never propagated implicitly.
func (b *Bounded[T]) Policy() Policy {
	return Policy{}
}

// SelectOnCopyConstruction gives the copy its own budget of the same size.
func (b *Bounded[T]) SelectOnCopyConstruction() Allocator[T] {
	return NewBounded[T](b.capacity)
}

func (b *Bounded[T]) Equals(other Allocator[T]) bool {
	o, ok := other.(*Bounded[T])
	return ok && o == b
}

// InUse returns the number of outstanding slots.
func (b *Bounded[T]) InUse() int {
	return b.inUse
}
