package collections

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Error{Code: AllocationFailure, Err: cause, UserData: 128}

	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is did not find the cause")
	}

	var ce Error
	if !errors.As(fmt.Errorf("push: %w", err), &ce) {
		t.Fatalf("errors.As did not find the Error through wrapping")
	}
	if ce.Code != AllocationFailure || ce.UserData != 128 {
		t.Fatalf("unwrapped Error lost fields: %+v", ce)
	}
}

func TestErrorMessageCarriesDetails(t *testing.T) {
	err := Error{Code: ConstructionFailure, Err: errors.New("bad value"), UserData: "k1"}
	msg := err.Error()
	for _, want := range []string{"2", "k1", "bad value"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}
