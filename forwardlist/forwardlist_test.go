package forwardlist

import (
	"context"
	"errors"
	"testing"

	"github.com/sharedcode/collections"
	"github.com/sharedcode/collections/arena"
)

var ctx = context.Background()

func collect[TV any](l *ForwardList[TV]) []TV {
	var out []TV
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

func mustEqual[TV comparable](t *testing.T, l *ForwardList[TV], want []TV) {
	t.Helper()
	got := collect(l)
	if len(got) != len(want) {
		t.Fatalf("sequence length = %d, want %d (%v vs %v)", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sequence[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func values[TV any](vs ...TV) func(func(TV) bool) {
	return func(yield func(TV) bool) {
		for _, v := range vs {
			if !yield(v) {
				return
			}
		}
	}
}

func TestPushFrontOrder(t *testing.T) {
	l := New[int]()
	for i := 1; i <= 3; i++ {
		if err := l.PushFront(ctx, i); err != nil {
			t.Fatal(err)
		}
	}
	mustEqual(t, l, []int{3, 2, 1})
	if got := l.Size(); got != 3 {
		t.Fatalf("Size() = %d, want 3", got)
	}
	if v, ok := l.Front(); !ok || *v != 3 {
		t.Errorf("Front() = %v, %v, want 3, true", v, ok)
	}
}

func TestConstructorsPreserveOrder(t *testing.T) {
	a, err := NewFromSlice(ctx, []int{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	mustEqual(t, a, []int{1, 2, 3})

	b, err := NewFromSeq(ctx, values(4, 5, 6))
	if err != nil {
		t.Fatal(err)
	}
	mustEqual(t, b, []int{4, 5, 6})
}

func TestEmptyBehavior(t *testing.T) {
	l := New[string]()
	if _, ok := l.Front(); ok {
		t.Errorf("Front on empty list reported a value")
	}
	l.PopFront() // no-op
	l.EraseAfter(l.Begin())
	if !l.IsEmpty() || l.Size() != 0 {
		t.Errorf("empty list invariants violated")
	}
	if l.Begin() != l.End() {
		t.Errorf("Begin != End on empty list")
	}
}

func TestInsertAfter(t *testing.T) {
	l, _ := NewFromSlice(ctx, []int{1, 4})
	if err := l.InsertAfter(ctx, l.Begin(), 2); err != nil {
		t.Fatal(err)
	}
	if err := l.InsertAfter(ctx, l.Begin().Next(), 3); err != nil {
		t.Fatal(err)
	}
	mustEqual(t, l, []int{1, 2, 3, 4})

	// End and zero positions are no-ops.
	if err := l.InsertAfter(ctx, l.End(), 9); err != nil {
		t.Fatal(err)
	}
	if err := l.InsertAfter(ctx, Iterator[int]{}, 9); err != nil {
		t.Fatal(err)
	}
	mustEqual(t, l, []int{1, 2, 3, 4})
}

func TestInsertAfterNAndSeq(t *testing.T) {
	l, _ := NewFromSlice(ctx, []int{1, 5})
	if err := l.InsertAfterN(ctx, l.Begin(), 2, 0); err != nil {
		t.Fatal(err)
	}
	mustEqual(t, l, []int{1, 0, 0, 5})

	if err := l.InsertAfterSeq(ctx, l.Begin(), values(2, 3)); err != nil {
		t.Fatal(err)
	}
	mustEqual(t, l, []int{1, 2, 3, 0, 0, 5})
}

func TestEmplaceAfterAndFront(t *testing.T) {
	l, _ := NewFromSlice(ctx, []int{1})
	if err := l.EmplaceAfter(ctx, l.Begin(), func() (int, error) { return 2, nil }); err != nil {
		t.Fatal(err)
	}
	if err := l.EmplaceFront(ctx, func() (int, error) { return 0, nil }); err != nil {
		t.Fatal(err)
	}
	mustEqual(t, l, []int{0, 1, 2})

	wantErr := errors.New("refused")
	if err := l.EmplaceAfter(ctx, l.Begin(), func() (int, error) { return 0, wantErr }); !errors.Is(err, wantErr) {
		t.Fatalf("factory error not propagated: %v", err)
	}
	mustEqual(t, l, []int{0, 1, 2})
}

func TestEraseAfter(t *testing.T) {
	l, _ := NewFromSlice(ctx, []int{1, 2, 3})
	l.EraseAfter(l.Begin())
	mustEqual(t, l, []int{1, 3})
	l.EraseAfter(l.Begin().Next()) // no successor, no-op
	mustEqual(t, l, []int{1, 3})
}

func TestEraseAfterRange(t *testing.T) {
	l, _ := NewFromSlice(ctx, []int{1, 2, 3, 4, 5})
	end := l.Begin()
	for i := 0; i < 4; i++ {
		end = end.Next()
	}
	// Exclusive on both sides: keeps 1 and 5.
	l.EraseAfterRange(l.Begin(), end)
	mustEqual(t, l, []int{1, 5})

	l.EraseAfterRange(l.Begin(), l.End())
	mustEqual(t, l, []int{1})
}

func TestReverse(t *testing.T) {
	l, _ := NewFromSlice(ctx, []int{1, 2, 3, 4})
	l.Reverse()
	mustEqual(t, l, []int{4, 3, 2, 1})

	empty := New[int]()
	empty.Reverse()
	if !empty.IsEmpty() {
		t.Fatalf("reversing an empty list changed it")
	}

	one, _ := NewFromSlice(ctx, []int{7})
	one.Reverse()
	mustEqual(t, one, []int{7})
}

func TestIteratorWalk(t *testing.T) {
	l, _ := NewFromSlice(ctx, []int{1, 2})
	it := l.Begin()
	if *it.Value() != 1 {
		t.Fatalf("Begin value = %d, want 1", *it.Value())
	}
	it = it.Next()
	if *it.Value() != 2 {
		t.Fatalf("second value = %d, want 2", *it.Value())
	}
	it = it.Next()
	if !it.IsEnd() || it != l.End() {
		t.Fatalf("walking past the last element did not reach End")
	}
	if it.Next() != l.End() {
		t.Fatalf("advancing End moved away from End")
	}
}

func TestEndValuePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Value on end iterator did not panic")
		}
	}()
	l := New[int]()
	_ = l.End().Value()
}

func TestCloneIndependence(t *testing.T) {
	a, _ := NewFromSlice(ctx, []int{1, 2, 3})
	b, err := a.Clone(ctx)
	if err != nil {
		t.Fatal(err)
	}
	mustEqual(t, b, []int{1, 2, 3})
	b.PopFront()
	_ = b.PushFront(ctx, 9)
	mustEqual(t, a, []int{1, 2, 3})
	mustEqual(t, b, []int{9, 2, 3})
}

func TestMoveLeavesSourceValidEmpty(t *testing.T) {
	a, _ := NewFromSlice(ctx, []int{1, 2})
	b := a.Move()
	mustEqual(t, b, []int{1, 2})
	if !a.IsEmpty() {
		t.Fatalf("moved-from list is not valid-empty")
	}
	if err := a.PushFront(ctx, 5); err != nil {
		t.Fatal(err)
	}
	mustEqual(t, a, []int{5})
}

func TestAssignLengthMatching(t *testing.T) {
	cases := []struct {
		name string
		dst  []int
		src  []int
	}{
		{"extend", []int{1}, []int{7, 8, 9}},
		{"truncate", []int{1, 2, 3, 4}, []int{7, 8}},
		{"equal", []int{1, 2}, []int{7, 8}},
		{"drain", []int{1, 2}, nil},
		{"fill empty", nil, []int{7, 8}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dst, _ := NewFromSlice(ctx, tc.dst)
			src, _ := NewFromSlice(ctx, tc.src)
			if err := dst.Assign(ctx, src); err != nil {
				t.Fatal(err)
			}
			mustEqual(t, dst, tc.src)
			mustEqual(t, src, tc.src)
		})
	}
}

func TestSelfAssignNoOp(t *testing.T) {
	l, _ := NewFromSlice(ctx, []int{1, 2})
	if err := l.Assign(ctx, l); err != nil {
		t.Fatal(err)
	}
	l.MoveAssign(l)
	mustEqual(t, l, []int{1, 2})
}

func TestAssignPropagatingUnequal(t *testing.T) {
	src := arena.NewTracked[Node[int]](arena.Policy{PropagateOnCopy: true})
	dstArena := arena.NewTracked[Node[int]](arena.Policy{PropagateOnCopy: true})
	a := NewWithAllocator(arena.Allocator[Node[int]](dstArena))
	b := NewWithAllocator(arena.Allocator[Node[int]](src))
	_ = a.PushFront(ctx, 1)
	_ = b.PushFront(ctx, 8)
	_ = b.PushFront(ctx, 7)

	if err := a.Assign(ctx, b); err != nil {
		t.Fatal(err)
	}
	mustEqual(t, a, []int{7, 8})
	if a.alloc != arena.Allocator[Node[int]](src) {
		t.Fatalf("propagating copy-assign did not adopt the source allocator")
	}
	if dstArena.Live() != 0 {
		t.Fatalf("old arena live = %d after propagating assign, want 0", dstArena.Live())
	}
}

func TestMoveAssignNonPropagatingUnequal(t *testing.T) {
	arenaA := arena.NewTracked[Node[int]](arena.Policy{})
	arenaB := arena.NewTracked[Node[int]](arena.Policy{})
	a := NewWithAllocator(arena.Allocator[Node[int]](arenaA))
	b := NewWithAllocator(arena.Allocator[Node[int]](arenaB))
	_ = a.PushFront(ctx, 1)
	_ = b.PushFront(ctx, 8)
	_ = b.PushFront(ctx, 7)

	a.MoveAssign(b)
	mustEqual(t, a, []int{7, 8})
	if a.alloc != arena.Allocator[Node[int]](arenaA) {
		t.Fatalf("non-propagating move-assign replaced the allocator")
	}
	if !b.IsEmpty() {
		t.Fatalf("source not empty after move-assign")
	}
}

func TestSwap(t *testing.T) {
	a, _ := NewFromSlice(ctx, []int{1, 2})
	b, _ := NewFromSlice(ctx, []int{9})
	a.Swap(b)
	mustEqual(t, a, []int{9})
	mustEqual(t, b, []int{1, 2})
}

func TestBoundedAllocationFailure(t *testing.T) {
	bounded := arena.NewBounded[Node[int]](1)
	l := NewWithAllocator(arena.Allocator[Node[int]](bounded))
	if err := l.PushFront(ctx, 1); err != nil {
		t.Fatal(err)
	}
	err := l.PushFront(ctx, 2)
	var ce collections.Error
	if !errors.As(err, &ce) || ce.Code != collections.AllocationFailure {
		t.Fatalf("error = %v, want AllocationFailure", err)
	}
	mustEqual(t, l, []int{1})
}

func TestClearBalancesArena(t *testing.T) {
	tracked := arena.NewTracked[Node[int]](arena.Policy{})
	l := NewWithAllocator(arena.Allocator[Node[int]](tracked))
	for i := 0; i < 5; i++ {
		if err := l.PushFront(ctx, i); err != nil {
			t.Fatal(err)
		}
	}
	l.Dispose()
	if tracked.Live() != 0 {
		t.Fatalf("arena live = %d after Dispose, want 0", tracked.Live())
	}
}
