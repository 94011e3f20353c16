package list

import (
	"context"
	"errors"

	"github.com/sharedcode/collections/arena"
)

var errConstruct = errors.New("element construction failed")

// flakyAllocator wraps a real allocator and fails Construct once the
// configured number of successful constructions has been reached. It lets
// tests drive the construction-failure rollback paths.
type flakyAllocator[T any] struct {
	inner       arena.Allocator[T]
	failAfter   int
	constructed int
	deallocs    int
}

func (f *flakyAllocator[T]) Allocate(ctx context.Context) (*T, error) {
	return f.inner.Allocate(ctx)
}

func (f *flakyAllocator[T]) Deallocate(slot *T) {
	f.deallocs++
	f.inner.Deallocate(slot)
}

func (f *flakyAllocator[T]) Construct(slot *T, value T) error {
	if f.constructed >= f.failAfter {
		return errConstruct
	}
	f.constructed++
	return f.inner.Construct(slot, value)
}

func (f *flakyAllocator[T]) Destroy(slot *T) {
	f.inner.Destroy(slot)
}

func (f *flakyAllocator[T]) Policy() arena.Policy {
	return f.inner.Policy()
}

func (f *flakyAllocator[T]) SelectOnCopyConstruction() arena.Allocator[T] {
	return f
}

func (f *flakyAllocator[T]) Equals(other arena.Allocator[T]) bool {
	o, ok := other.(*flakyAllocator[T])
	return ok && o == f
}
