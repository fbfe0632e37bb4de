package bitpack

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Source is a pull-based supply of values. Next returns false once exhausted.
type Source[E any] interface {
	Next() (E, bool)
}

// SourceFunc adapts a pull function, such as the one returned by iter.Pull, to Source.
type SourceFunc[E any] func() (E, bool)

func (f SourceFunc[E]) Next() (E, bool) {
	return f()
}

// SliceSource hands out the elements of a slice in order.
type SliceSource[E any] struct {
	values []E
}

func NewSliceSource[E any](values []E) *SliceSource[E] {
	return &SliceSource[E]{values: values}
}

func (s *SliceSource[E]) Next() (E, bool) {
	if len(s.values) == 0 {
		var zero E
		return zero, false
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v, true
}

// Remaining returns the values not pulled yet.
func (s *SliceSource[E]) Remaining() []E {
	return s.values
}

// FromSource fills a view by pulling exactly Len() values from src; the first
// value pulled lands at logical index 0 whatever the direction. It fails when
// src runs dry first, in which case every value src had was consumed.
func FromSource[W, E constraints.Unsigned](src Source[E], d Direction) (Packed[W, E], bool) {
	wb, eb := bitsOf[W](), bitsOf[E]()
	checkWidths(wb, eb)

	var c W
	for n := wb / eb; n > 0; n-- {
		v, ok := src.Next()
		if !ok {
			return Packed[W, E]{}, false
		}
		// earlier values move towards the most significant end
		c = c<<uint(eb) | W(v)
	}

	p := Packed[W, E]{container: c, direction: d}
	if d == LeastSignificantFirst {
		p.Reverse()
	}
	return p, true
}

// FromSeq fills a view from the first Len() values of seq. With requireFull,
// a seq holding more values than that is a failure too.
func FromSeq[W, E constraints.Unsigned](seq iter.Seq[E], requireFull bool, d Direction) (Packed[W, E], bool) {
	next, stop := iter.Pull(seq)
	defer stop()

	p, ok := FromSource[W, E](SourceFunc[E](next), d)
	if !ok {
		return p, false
	}
	if requireFull {
		if _, more := next(); more {
			return Packed[W, E]{}, false
		}
	}
	return p, true
}

// FromSlice is FromSeq over a slice.
func FromSlice[W, E constraints.Unsigned](values []E, requireFull bool, d Direction) (Packed[W, E], bool) {
	src := NewSliceSource(values)
	p, ok := FromSource[W, E](src, d)
	if !ok {
		return p, false
	}
	if requireFull && len(src.Remaining()) != 0 {
		return Packed[W, E]{}, false
	}
	return p, true
}

// Cursor walks a snapshot of a view's elements in forward order.
type Cursor[W, E constraints.Unsigned] struct {
	p     Packed[W, E]
	index int
}

// Iterator returns a cursor over the current elements. Later changes to p
// are not observed by the cursor.
func (p Packed[W, E]) Iterator() *Cursor[W, E] {
	return &Cursor[W, E]{p: p, index: p.StartIndex()}
}

func (c *Cursor[W, E]) Next() (E, bool) {
	if c.index == c.p.EndIndex() {
		return 0, false
	}
	v := c.p.Get(c.index)
	c.index = c.p.IndexAfter(c.index)
	return v, true
}

// Index returns the logical index the next call to Next will read.
func (c *Cursor[W, E]) Index() int {
	return c.index
}
