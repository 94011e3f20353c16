package list

import (
	"errors"
	"testing"

	"github.com/sharedcode/collections"
	"github.com/sharedcode/collections/arena"
)

func TestPushRollbackOnConstructionFailure(t *testing.T) {
	tracked := arena.NewTracked[Node[int]](arena.Policy{})
	flaky := &flakyAllocator[Node[int]]{inner: tracked, failAfter: 3} // sentinel + two nodes

	l, err := NewWithAllocator(ctx, arena.Allocator[Node[int]](flaky))
	if err != nil {
		t.Fatal(err)
	}
	if err := l.PushBack(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if err := l.PushBack(ctx, 2); err != nil {
		t.Fatal(err)
	}

	// Third element construction fails; the list must be unchanged and the
	// reserved slot released.
	deallocsBefore := flaky.deallocs
	err = l.PushBack(ctx, 3)
	if err == nil {
		t.Fatalf("expected construction failure")
	}
	var ce collections.Error
	if !errors.As(err, &ce) || ce.Code != collections.ConstructionFailure {
		t.Fatalf("error = %v, want ConstructionFailure", err)
	}
	if flaky.deallocs != deallocsBefore+1 {
		t.Fatalf("reserved slot was not rolled back")
	}
	mustEqual(t, l, []int{1, 2})
	checkRing(t, l)
	if tracked.Live() != 3 { // sentinel + two elements
		t.Fatalf("arena live = %d, want 3", tracked.Live())
	}
}

func TestEmplaceRollbackOnFactoryFailure(t *testing.T) {
	tracked := arena.NewTracked[Node[string]](arena.Policy{})
	l, err := NewWithAllocator(ctx, arena.Allocator[Node[string]](tracked))
	if err != nil {
		t.Fatal(err)
	}

	wantErr := errors.New("factory refused")
	err = l.EmplaceBack(ctx, func() (string, error) { return "", wantErr })
	if err == nil {
		t.Fatalf("expected factory failure")
	}
	if !errors.Is(err, wantErr) {
		t.Fatalf("factory error not propagated: %v", err)
	}
	if !l.IsEmpty() {
		t.Fatalf("failed emplace changed the list")
	}
	if tracked.Live() != 1 { // only the sentinel
		t.Fatalf("arena live = %d, want 1", tracked.Live())
	}

	if err := l.EmplaceFront(ctx, func() (string, error) { return "ok", nil }); err != nil {
		t.Fatal(err)
	}
	mustEqual(t, l, []string{"ok"})
}

func TestBoundedArenaExhaustion(t *testing.T) {
	bounded := arena.NewBounded[Node[int]](3) // sentinel + two elements
	l, err := NewWithAllocator(ctx, arena.Allocator[Node[int]](bounded))
	if err != nil {
		t.Fatal(err)
	}
	if err := l.PushBack(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if err := l.PushBack(ctx, 2); err != nil {
		t.Fatal(err)
	}

	err = l.PushBack(ctx, 3)
	var ce collections.Error
	if !errors.As(err, &ce) || ce.Code != collections.AllocationFailure {
		t.Fatalf("error = %v, want AllocationFailure", err)
	}
	mustEqual(t, l, []int{1, 2})
	checkRing(t, l)

	// Freeing a slot makes room again.
	l.PopFront()
	if err := l.PushBack(ctx, 3); err != nil {
		t.Fatalf("push after freeing a slot: %v", err)
	}
	mustEqual(t, l, []int{2, 3})
}

func TestRangeInsertPartialPrefixOnFailure(t *testing.T) {
	bounded := arena.NewBounded[Node[int]](3) // sentinel + room for two
	l, err := NewWithAllocator(ctx, arena.Allocator[Node[int]](bounded))
	if err != nil {
		t.Fatal(err)
	}

	seq := func(yield func(int) bool) {
		for _, v := range []int{10, 11, 12, 13} {
			if !yield(v) {
				return
			}
		}
	}
	err = l.InsertBeforeSeq(ctx, l.End(), seq)
	if err == nil {
		t.Fatalf("expected the range insert to fail mid-way")
	}
	// Range insertion is repeated single insertion: the inserted prefix
	// stays.
	mustEqual(t, l, []int{10, 11})
	checkRing(t, l)
}

func TestDisposeBalancesArena(t *testing.T) {
	tracked := arena.NewTracked[Node[int]](arena.Policy{})
	l, err := NewWithAllocator(ctx, arena.Allocator[Node[int]](tracked))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		if err := l.PushBack(ctx, i); err != nil {
			t.Fatal(err)
		}
	}
	if tracked.Live() != 6 {
		t.Fatalf("arena live = %d, want 6", tracked.Live())
	}
	l.Dispose()
	if got := tracked.ReportLeaks(); got != 0 {
		t.Fatalf("arena leaked %d slots after Dispose", got)
	}
}
