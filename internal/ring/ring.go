// Package ring is a specialized adaption of `container/ring` for use in keyed lists.
package ring

import "iter"

// A Ring is an element of a circular list, or ring.
// Rings do not have a beginning or end; the owning list
// tracks which element is considered the head.
// An element removed from its list is self-linked and disowned.
type Ring[Value any] struct {
	next, prev *Ring[Value]
	owner      any
	Value      Value
}

// New creates a self-linked element bound to owner.
func New[Value any](value Value, owner any) *Ring[Value] {
	r := &Ring[Value]{
		Value: value,
		owner: owner,
	}
	return r.init()
}

func (r *Ring[Value]) init() *Ring[Value] {
	r.next = r
	r.prev = r
	return r
}

// Next returns the next ring element. r must not be empty.
func (r *Ring[Value]) Next() *Ring[Value] {
	if r.next == nil {
		return r.init()
	}
	return r.next
}

// Prev returns the previous ring element. r must not be empty.
func (r *Ring[Value]) Prev() *Ring[Value] {
	if r.next == nil {
		return r.init()
	}
	return r.prev
}

// Owned reports whether r is currently linked into the list owner.
func (r *Ring[Value]) Owned(owner any) bool {
	return r != nil && owner != nil && r.owner == owner
}

// Move moves n elements backward (n < 0) or forward (n >= 0)
// in the ring and returns that ring element. r must not be empty.
func (r *Ring[Value]) Move(n int) *Ring[Value] {
	if r.next == nil {
		return r.init()
	}
	switch {
	case n < 0:
		for ; n < 0; n++ {
			r = r.prev
		}
	case n > 0:
		for ; n > 0; n-- {
			r = r.next
		}
	}
	return r
}

// Link sets a.next to b and b.prev to a.
// Nothing else is touched; callers keep their own bookkeeping.
func Link[Value any](a, b *Ring[Value]) {
	a.next = b
	b.prev = a
}

// Splice threads b between a and c.
func Splice[Value any](a, b, c *Ring[Value]) {
	Link(a, b)
	Link(b, c)
}

// Detach joins the neighbours of r directly and
// leaves r as a self-linked element.
// The owner is kept so r can be spliced back into the same list.
func Detach[Value any](r *Ring[Value]) {
	Link(r.prev, r.next)
	r.init()
}

// Disown clears the owner of r.
func Disown[Value any](r *Ring[Value]) {
	r.owner = nil
}

// Iter returns an iterator over n elements starting at r,
// paired with their offset from r.
// The walk is bounded by n rather than by returning to r.
// The behavior of Iter is undefined if the ring changes during iteration.
func (r *Ring[Value]) Iter(n int) iter.Seq2[int, *Ring[Value]] {
	return func(yield func(int, *Ring[Value]) bool) {
		p := r
		for i := range n {
			if p == nil || !yield(i, p) {
				return
			}
			p = p.next
		}
	}
}

// Len computes the number of elements in ring r.
// It executes in time proportional to the number of elements.
func (r *Ring[Value]) Len() int {
	n := 0
	if r != nil {
		n = 1
		for p := r.Next(); p != r; p = p.next {
			n++
		}
	}
	return n
}
