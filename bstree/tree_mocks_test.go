package bstree

import (
	"context"
	"errors"

	"github.com/sharedcode/collections"
	"github.com/sharedcode/collections/arena"
)

// failingArena fails every Allocate after the first failAfter calls and
// counts live slots. Unlike Bounded it survives copy construction as the
// same instance, so a clone's internal unwinding stays observable.
type failingArena[T any] struct {
	inner     arena.Allocator[T]
	failAfter int
	allocs    int
	live      int
}

func newFailingArena[T any](failAfter int) *failingArena[T] {
	return &failingArena[T]{inner: arena.NewHeap[T](), failAfter: failAfter}
}

func (f *failingArena[T]) Allocate(ctx context.Context) (*T, error) {
	if f.allocs >= f.failAfter {
		return nil, collections.Error{Code: collections.AllocationFailure, Err: errors.New("arena exhausted")}
	}
	f.allocs++
	f.live++
	return f.inner.Allocate(ctx)
}

func (f *failingArena[T]) Deallocate(slot *T) {
	f.live--
	f.inner.Deallocate(slot)
}

func (f *failingArena[T]) Construct(slot *T, value T) error {
	return f.inner.Construct(slot, value)
}

func (f *failingArena[T]) Destroy(slot *T) {
	f.inner.Destroy(slot)
}

func (f *failingArena[T]) Policy() arena.Policy {
	return f.inner.Policy()
}

func (f *failingArena[T]) SelectOnCopyConstruction() arena.Allocator[T] {
	return f
}

func (f *failingArena[T]) Equals(other arena.Allocator[T]) bool {
	o, ok := other.(*failingArena[T])
	return ok && o == f
}
