package test

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Expect compares two values and fails the test if they are different.
//
// Nil and empty slices are considered equal.
func Expect[T any](
	t FailerT,
	failMessage string,
	got, want T,
	transforms ...func(T) T,
) {
	t.Helper()

	for _, fn := range transforms {
		got = fn(got)
		want = fn(want)
	}

	if diff := cmp.Diff(
		want,
		got,
		cmpopts.EquateEmpty(),
	); diff != "" {
		t.Log(failMessage)
		t.Fatal(diff)
	}
}
