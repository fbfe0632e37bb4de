package bitpack

import (
	"iter"
)

// Sequence is a read-only random-access sequence with stepped logical indices.
// Valid indices start at StartIndex and are advanced with IndexAfter until
// EndIndex is reached.
type Sequence[E any] interface {
	Len() int
	StartIndex() int
	EndIndex() int
	IndexAfter(i int) int
	IndexBefore(i int) int
	Get(i int) E
}

// MutableSequence is a Sequence whose elements can be replaced in place.
type MutableSequence[E any] interface {
	Sequence[E]
	Set(i int, v E)
	Swap(i, j int)
}

// Contiguous is implemented by sequences that can expose their elements as a
// byte buffer. Both methods return ErrNotContiguous when that is not possible.
type Contiguous interface {
	WithBytes(fn func(b []byte) error) error
	WithMutableBytes(fn func(b []byte) error) error
}

var (
	_ Sequence[uint8]        = Packed[uint32, uint8]{}
	_ MutableSequence[uint8] = (*Packed[uint32, uint8])(nil)
	_ Contiguous             = (*Packed[uint32, uint8])(nil)
	_ MutableSequence[uint8] = View[uint32, uint8]{}
)

// Collect returns the elements of s in index order.
func Collect[E any](s Sequence[E]) []E {
	out := make([]E, 0, s.Len())
	for i := s.StartIndex(); i != s.EndIndex(); i = s.IndexAfter(i) {
		out = append(out, s.Get(i))
	}
	return out
}

// Reverse reverses s in place by swapping pairs from both ends inward.
func Reverse[E any](s MutableSequence[E]) {
	if s.Len() < 2 {
		return
	}
	lo, hi := s.StartIndex(), s.IndexBefore(s.EndIndex())
	for lo < hi {
		s.Swap(lo, hi)
		lo, hi = s.IndexAfter(lo), s.IndexBefore(hi)
	}
}

// FirstIndexFunc returns the first index whose element satisfies f.
func FirstIndexFunc[E any](s Sequence[E], f func(E) bool) (int, bool) {
	for i := s.StartIndex(); i != s.EndIndex(); i = s.IndexAfter(i) {
		if f(s.Get(i)) {
			return i, true
		}
	}
	return 0, false
}

// LastIndexFunc returns the last index whose element satisfies f.
func LastIndexFunc[E any](s Sequence[E], f func(E) bool) (int, bool) {
	if s.Len() == 0 {
		return 0, false
	}
	for i := s.IndexBefore(s.EndIndex()); ; i = s.IndexBefore(i) {
		if f(s.Get(i)) {
			return i, true
		}
		if i == s.StartIndex() {
			return 0, false
		}
	}
}

// All yields every (logical index, element) pair in forward order.
func (p Packed[W, E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i := range p.Indices().All() {
			if !yield(i, p.Get(i)) {
				return
			}
		}
	}
}

// Backward yields every (logical index, element) pair in reverse order.
func (p Packed[W, E]) Backward() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i := range p.Indices().Backward() {
			if !yield(i, p.Get(i)) {
				return
			}
		}
	}
}

// Values yields every element in forward order.
func (p Packed[W, E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, v := range p.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Elements returns the elements in forward order.
func (p Packed[W, E]) Elements() []E {
	return Collect[E](p)
}

func (p Packed[W, E]) FirstIndex(v E) (int, bool) {
	return FirstIndexFunc[E](p, func(e E) bool { return e == v })
}

func (p Packed[W, E]) LastIndex(v E) (int, bool) {
	return LastIndexFunc[E](p, func(e E) bool { return e == v })
}

func (p Packed[W, E]) Contains(v E) bool {
	_, ok := p.FirstIndex(v)
	return ok
}

// Reverse reverses the element order in place. The direction is unchanged.
func (p *Packed[W, E]) Reverse() {
	Reverse[E](p)
}

// Reversed returns a copy with the element order reversed.
func (p Packed[W, E]) Reversed() Packed[W, E] {
	p.Reverse()
	return p
}

// Slice returns a window over the logical indices [from, to) of p.
// Both bounds must be valid indices of p or its EndIndex.
func (p *Packed[W, E]) Slice(from, to int) View[W, E] {
	return View[W, E]{parent: p, indices: p.Indices().Slice(from, to)}
}
