package retainmut

// Slice removes all elements from *s for which keep() returns false.
//
// keep() is called exactly once for each element, in order, with a pointer to
// the element. Changes it makes to elements that are kept are visible in the
// result. Elements that are removed are destroyed using [Drop] as soon as
// keep() rejects them.
//
// The kept elements retain their relative order and are compacted to the
// front of the existing backing array; nothing is allocated. The slots
// between the new length and the original length are zeroed.
//
// If keep() panics, the panic propagates to the caller but *s is left in a
// consistent state first: it contains the elements already kept, followed by
// every element that keep() had not yet returned a decision for, including
// the one it panicked on. Every removed element has been dropped exactly
// once.
//
// The caller must have exclusive access to *s for the duration of the call.
func Slice[S ~[]E, E any](
	s *S,
	keep func(*E) bool,
) {
	g := &sliceGuard[E]{
		v:        *s,
		original: len(*s),
	}

	// Hide the elements until the guard restores them, so that nobody can
	// observe a slot that has been moved out of or dropped.
	*s = (*s)[:0]

	defer func() {
		*s = g.release()
	}()

	// Nothing needs to move until the first element is removed.
	for g.processed < g.original {
		p := &g.v[g.processed]

		if !keep(p) {
			g.processed++
			g.deleted++
			Drop(p)
			break
		}

		g.processed++
	}

	for g.processed < g.original {
		p := &g.v[g.processed]

		if !keep(p) {
			g.processed++
			g.deleted++
			Drop(p)
			continue
		}

		g.v[g.processed-g.deleted] = *p
		g.processed++
	}
}

// sliceGuard tracks the progress of [Slice] so that the slice can be restored
// to a consistent state on every exit path.
//
// g.v[:processed-deleted] holds the kept elements, g.v[processed-deleted:
// processed] is the hole, and g.v[processed:original] holds the elements that
// have not yet been checked.
type sliceGuard[E any] struct {
	v         []E
	processed int
	deleted   int
	original  int
}

// release closes the hole by shifting any unchecked elements down, zeroes the
// vacated slots and returns the slice with its final length.
func (g *sliceGuard[E]) release() []E {
	if g.deleted > 0 {
		if g.processed < g.original {
			copy(
				g.v[g.processed-g.deleted:],
				g.v[g.processed:g.original],
			)
		}

		clear(g.v[g.original-g.deleted : g.original])
	}

	return g.v[:g.original-g.deleted]
}
