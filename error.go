package collections

import "fmt"

// ErrorCode classifies the failures the containers can surface. The only
// fallible operations are slot allocation and element construction; anything
// else is a contract violation and panics instead.
type ErrorCode int

const (
	Unknown ErrorCode = iota
	// AllocationFailure means the allocator could not reserve a node slot.
	AllocationFailure
	// ConstructionFailure means an element could not be constructed after
	// its slot was already reserved. The slot is released before this is
	// returned, so no storage leaks.
	ConstructionFailure
)

// Error is the custom error type returned by the container packages.
type Error struct {
	Code     ErrorCode
	Err      error
	UserData any
}

func (e Error) Error() string {
	return fmt.Sprintf("error code: %d, user data: %v, details: %v", e.Code, e.UserData, e.Err)
}

// Unwrap exposes the underlying error to errors.Is/As.
func (e Error) Unwrap() error {
	return e.Err
}
