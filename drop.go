package retainmut

// Dropper is an interface for elements that must release resources when they
// are removed from a sequence.
type Dropper interface {
	Drop()
}

// Drop destroys the element at p.
//
// If the element implements [Dropper], either directly or via a pointer to
// it, its Drop() method is called exactly once. The element is then replaced
// with its zero value so that anything it references can be garbage
// collected.
func Drop[E any](p *E) {
	if d, ok := any(p).(Dropper); ok {
		d.Drop()
	} else if d, ok := any(*p).(Dropper); ok {
		d.Drop()
	}

	var zero E
	*p = zero
}
