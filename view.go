package bitpack

import (
	"iter"

	"github.com/astef/bitpack/stride"
	"golang.org/x/exp/constraints"
)

// View is a window over a contiguous run of a Packed's logical indices.
// It shares the parent's storage: writes through a View are writes to the parent.
type View[W, E constraints.Unsigned] struct {
	parent  *Packed[W, E]
	indices stride.Seq
}

func (v View[W, E]) Len() int {
	return v.indices.Len()
}

func (v View[W, E]) StartIndex() int {
	return v.indices.Low()
}

func (v View[W, E]) EndIndex() int {
	return v.indices.High()
}

func (v View[W, E]) Indices() stride.Seq {
	return v.indices
}

func (v View[W, E]) IndexAfter(i int) int {
	return v.indices.After(i)
}

func (v View[W, E]) IndexBefore(i int) int {
	return v.indices.Before(i)
}

func (v View[W, E]) Get(i int) E {
	return v.parent.Get(i)
}

func (v View[W, E]) Set(i int, e E) {
	v.parent.Set(i, e)
}

func (v View[W, E]) Swap(i, j int) {
	v.parent.Swap(i, j)
}

// Slice narrows the window further. Indices stay those of the parent.
func (v View[W, E]) Slice(from, to int) View[W, E] {
	return View[W, E]{parent: v.parent, indices: v.indices.Slice(from, to)}
}

func (v View[W, E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i := range v.indices.All() {
			if !yield(i, v.parent.Get(i)) {
				return
			}
		}
	}
}

func (v View[W, E]) Elements() []E {
	return Collect[E](v)
}

// Reverse reverses the window's elements in place, leaving the rest of the parent untouched.
func (v View[W, E]) Reverse() {
	Reverse[E](v)
}

func (v View[W, E]) String() string {
	return formatElements(v.Elements())
}
