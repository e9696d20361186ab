package retainmut

// Indexed is a sequence that supports access to its elements by position.
//
// [github.com/dogmatiq/retainmut/deque.Deque] is the canonical implementation.
type Indexed[E any] interface {
	// Len returns the number of elements in the sequence.
	Len() int

	// At returns a pointer to the element at index i.
	//
	// The pointer remains valid until the sequence is next modified
	// structurally.
	At(i int) *E

	// Swap exchanges the elements at indices i and j.
	Swap(i, j int)

	// Truncate removes all but the first n elements, destroying the removed
	// elements.
	Truncate(n int)
}

// Sequence removes all elements from seq for which keep() returns false.
//
// keep() is called exactly once for each element, in order, with a pointer to
// the element. Changes it makes to elements that are kept are visible in the
// result. Rejected elements are swapped towards the back of the sequence as
// kept elements move forward, and are destroyed by a single call to
// seq.Truncate() once every element has been checked.
//
// Unlike [Slice], Sequence does not restore seq if keep() panics. The panic
// propagates with no elements removed; seq still contains all of its
// original elements but they may have been reordered by the swaps performed
// before the panic.
//
// The caller must have exclusive access to seq for the duration of the call.
func Sequence[E any](
	seq Indexed[E],
	keep func(*E) bool,
) {
	n := seq.Len()
	del := 0

	for i := 0; i < n; i++ {
		if !keep(seq.At(i)) {
			del++
		} else if del > 0 {
			seq.Swap(i-del, i)
		}
	}

	if del > 0 {
		seq.Truncate(n - del)
	}
}
