package test

import (
	"testing"

	"pgregory.net/rapid"
)

// FailerT is the subset of the [testing.TB] interface that is used by this
// package to cause tests to fail.
type FailerT interface {
	Helper()
	Log(...any)
	Logf(string, ...any)
	Fatal(...any)
	Fatalf(string, ...any)
	Error(...any)
	Errorf(string, ...any)
}

var (
	_ FailerT = (testing.TB)(nil)
	_ FailerT = (*rapid.T)(nil)
)
