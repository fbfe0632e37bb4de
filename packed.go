package bitpack

import (
	"github.com/astef/bitpack/stride"
	"golang.org/x/exp/constraints"
)

// Packed views a single W as a fixed-length sequence of E values, each taking
// bits(E) bits of the container. bits(W) must be a multiple of bits(E).
//
// Indices are signed bit offsets. With LeastSignificantFirst they run
// 0, bits(E), ... up to bits(W); with MostSignificantFirst they are the
// negated offsets, running from bits(E)-bits(W) up to bits(E). Either way
// ascending index order is the forward traversal order, and the physical
// offset of an index is its absolute value.
//
// Packed is a plain value: copying it copies the container.
type Packed[W, E constraints.Unsigned] struct {
	container W
	direction Direction
}

// New wraps the container verbatim.
func New[W, E constraints.Unsigned](container W, d Direction) Packed[W, E] {
	checkWidths(bitsOf[W](), bitsOf[E]())
	return Packed[W, E]{container: container, direction: d}
}

// Repeating returns a view where every element equals e.
func Repeating[W, E constraints.Unsigned](e E, d Direction) Packed[W, E] {
	checkWidths(bitsOf[W](), bitsOf[E]())
	// one set bit at the bottom of every slot
	ones := ^W(0) / W(^E(0))
	return Packed[W, E]{container: W(e) * ones, direction: d}
}

func (p Packed[W, E]) Container() W {
	return p.container
}

func (p Packed[W, E]) Direction() Direction {
	return p.direction
}

func (p Packed[W, E]) ContainerBits() int {
	return bitsOf[W]()
}

func (p Packed[W, E]) ElementBits() int {
	return bitsOf[E]()
}

// Returns the number of elements. It never changes for a given pair of types.
func (p Packed[W, E]) Len() int {
	return bitsOf[W]() / bitsOf[E]()
}

func (p Packed[W, E]) StartIndex() int {
	if p.direction == MostSignificantFirst {
		return bitsOf[E]() - bitsOf[W]()
	}
	return 0
}

func (p Packed[W, E]) EndIndex() int {
	if p.direction == MostSignificantFirst {
		return bitsOf[E]()
	}
	return bitsOf[W]()
}

// Indices returns the progression of valid indices.
func (p Packed[W, E]) Indices() stride.Seq {
	return stride.New(bitsOf[E](), p.StartIndex(), p.EndIndex())
}

func (p Packed[W, E]) IndexAfter(i int) int {
	return p.Indices().After(i)
}

func (p Packed[W, E]) IndexBefore(i int) int {
	return p.Indices().Before(i)
}

func (p Packed[W, E]) IndexOffset(i, d int) int {
	return p.Indices().Offset(i, d)
}

// IndexOffsetLimited is IndexOffset that reports no result instead of moving
// past limit or overflowing.
func (p Packed[W, E]) IndexOffsetLimited(i, d, limit int) (int, bool) {
	return p.Indices().OffsetLimited(i, d, limit)
}

func (p Packed[W, E]) Distance(from, to int) int {
	return p.Indices().Distance(from, to)
}

// Index returns the logical index of the n-th element.
func (p Packed[W, E]) Index(n int) int {
	checkBounds(p.Len(), n)
	return p.StartIndex() + n*bitsOf[E]()
}

// Get returns the element at logical index i.
func (p Packed[W, E]) Get(i int) E {
	return E(p.container >> offset(i))
}

// Set replaces the element at logical index i, leaving every other slot untouched.
func (p *Packed[W, E]) Set(i int, v E) {
	flip := p.Get(i) ^ v
	p.container ^= W(flip) << offset(i)
}

// Swap exchanges the elements at logical indices i and j.
func (p *Packed[W, E]) Swap(i, j int) {
	flip := W(p.Get(i) ^ p.Get(j))
	p.container ^= flip<<offset(i) | flip<<offset(j)
}

// At returns the n-th element.
func (p Packed[W, E]) At(n int) E {
	return p.Get(p.Index(n))
}

// SetAt replaces the n-th element.
func (p *Packed[W, E]) SetAt(n int, v E) {
	p.Set(p.Index(n), v)
}

// Equal reports whether both views hold the same container in the same direction.
func (p Packed[W, E]) Equal(o Packed[W, E]) bool {
	return p == o
}

func offset(i int) uint {
	if i < 0 {
		return uint(-i)
	}
	return uint(i)
}
