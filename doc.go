// Package retainmut removes elements from sequences in-place, giving the
// predicate a pointer to each element so that it can modify the elements it
// keeps.
//
// It fills the gap left by [slices.DeleteFunc], which only passes elements by
// value.
package retainmut
