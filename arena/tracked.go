package arena

import (
	"context"
	log "log/slog"

	"github.com/sharedcode/collections"
)

// Tracked is a stateful arena that keeps a book of every live slot it has
// issued, keyed by a generated UUID. It is the allocator to use when the
// caller wants to verify that a container released everything it took
// (Live should read zero after Dispose).
//
// Tracked tolerates release of slots it does not own: a container that
// received nodes through a non-propagating move from a differently
// allocated container will legitimately hand back foreign slots. Those are
// logged at debug level and otherwise ignored.
//
// Not safe for concurrent use, matching the containers it serves.
type Tracked[T any] struct {
	policy Policy
	live   map[*T]collections.UUID
}

// NewTracked returns a Tracked arena with the given propagation policy.
func NewTracked[T any](policy Policy) *Tracked[T] {
	return &Tracked[T]{
		policy: policy,
		live:   make(map[*T]collections.UUID),
	}
}

// Allocate reserves a heap cell and registers it as live.
func (t *Tracked[T]) Allocate(context.Context) (*T, error) {
	slot := new(T)
	t.live[slot] = collections.NewUUID()
	return slot, nil
}

// Deallocate unregisters the slot. Foreign slots are ignored.
func (t *Tracked[T]) Deallocate(slot *T) {
	if _, ok := t.live[slot]; !ok {
		log.Debug("deallocate of a slot this arena did not issue")
		return
	}
	delete(t.live, slot)
}

func (t *Tracked[T]) Construct(slot *T, value T) error {
	*slot = value
	return nil
}

func (t *Tracked[T]) Destroy(slot *T) {
	var zero T
	*slot = zero
}

func (t *Tracked[T]) Policy() Policy {
	return t.policy
}

// SelectOnCopyConstruction hands a copy-constructed container a fresh book
// of its own; the copy owns none of this arena's slots.
func (t *Tracked[T]) SelectOnCopyConstruction() Allocator[T] {
	return NewTracked[T](t.policy)
}

// Equals is identity-based: only this very instance can release what it
// issued, unless the policy declares all instances equal.
func (t *Tracked[T]) Equals(other Allocator[T]) bool {
	if t.policy.AlwaysEqual {
		_, ok := other.(*Tracked[T])
		return ok
	}
	o, ok := other.(*Tracked[T])
	return ok && o == t
}

// Live returns the number of slots issued and not yet released.
func (t *Tracked[T]) Live() int {
	return len(t.live)
}

// ReportLeaks logs a warning when slots are still live; it returns the
// count so tests can assert on it.
func (t *Tracked[T]) ReportLeaks() int {
	if n := len(t.live); n > 0 {
		log.Warn("arena disposed with live slots", "count", n)
		return n
	}
	return 0
}
