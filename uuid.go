package collections

import (
	"bytes"
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
)

// UUID is a thin wrapper over github.com/google/uuid.UUID to keep the
// containers decoupled from the external package.
type UUID uuid.UUID

// NilUUID is the zero-value UUID.
var NilUUID UUID

// ParseUUID converts a string to a UUID. It returns an error if the input is
// not a valid UUID.
func ParseUUID(id string) (UUID, error) {
	u, err := uuid.Parse(id)
	return UUID(u), err
}

// NewUUID returns a new randomly generated UUID. Generating an ID is a must,
// so it retries on error with a 1ms constant backoff up to 10 times and
// panics only if all attempts fail (which should never happen under normal
// conditions).
func NewUUID() UUID {
	var id uuid.UUID
	b := retry.NewConstant(1 * time.Millisecond)
	if err := retry.Do(context.Background(), retry.WithMaxRetries(10, b), func(context.Context) error {
		var err error
		id, err = uuid.NewRandom()
		return retry.RetryableError(err)
	}); err != nil {
		panic(err)
	}
	return UUID(id)
}

// IsNil reports whether the UUID equals the zero-value UUID.
func (id UUID) IsNil() bool {
	return bytes.Equal(id[:], NilUUID[:])
}

// String returns the canonical string representation of the UUID.
func (id UUID) String() string {
	return uuid.UUID(id).String()
}

// Compare compares two UUIDs byte-wise, returning -1, 0 or 1.
func (id UUID) Compare(other UUID) int {
	return bytes.Compare(id[:], other[:])
}
