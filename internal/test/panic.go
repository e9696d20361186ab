package test

import (
	"errors"
	"fmt"
)

// ExpectPanic calls fn and fails the test if it does not panic with the given
// value.
func ExpectPanic(
	t FailerT,
	want any,
	fn func(),
) {
	t.Helper()

	got, ok := capturePanic(fn)
	if !ok {
		t.Fatalf("expected panic with value %v, but the function returned normally", want)
	}

	Expect(
		t,
		"function panicked with an unexpected value",
		fmt.Sprint(got),
		fmt.Sprint(want),
	)
}

// ErrBoom is a panic value used to simulate a predicate that fails.
var ErrBoom = errors.New("<boom>")

func capturePanic(fn func()) (v any, panicked bool) {
	defer func() {
		if panicked {
			v = recover()
		}
	}()

	panicked = true
	fn()
	panicked = false

	return nil, false
}
