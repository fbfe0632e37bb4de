// Package stride describes arithmetic progressions of integer indices.
//
// A Seq is the set {low, low+stride, low+2*stride, ...} bounded above by high
// (exclusive). It carries no storage, only the three numbers, so it can be
// recomputed whenever a collection needs index arithmetic.
package stride

import (
	"fmt"
	"iter"
	"math"
)

type Seq struct {
	stride int
	low    int
	// always congruent to low modulo stride
	high int
}

// New returns the progression [low, high) stepping by stride.
// It panics if stride is not positive, if low > high, or if low and high are
// not congruent modulo stride.
func New(stride, low, high int) Seq {
	if stride <= 0 {
		panic(fmt.Sprintf("stride must be positive, got %v", stride))
	}
	checkSliceBounds(low, high)
	if diff(low, high)%uint(stride) != 0 {
		panic(fmt.Sprintf("bounds [%v:%v] are not congruent modulo %v", low, high, stride))
	}
	return Seq{stride: stride, low: low, high: high}
}

func (s Seq) Stride() int { return s.stride }
func (s Seq) Low() int    { return s.low }
func (s Seq) High() int   { return s.high }

// Returns the number of indices in the progression.
func (s Seq) Len() int {
	if s.stride == 0 {
		return 0
	}
	return int(diff(s.low, s.high) / uint(s.stride))
}

func (s Seq) IsEmpty() bool {
	return s.low == s.high
}

// At returns the n-th index of the progression.
func (s Seq) At(n int) int {
	checkBounds(s.Len(), n)
	return s.low + n*s.stride
}

func (s Seq) After(i int) int {
	return i + s.stride
}

func (s Seq) Before(i int) int {
	return i - s.stride
}

// Offset moves i by d steps. The result is not checked for overflow or
// against the bounds.
func (s Seq) Offset(i, d int) int {
	return i + d*s.stride
}

// OffsetLimited moves i by d steps unless doing so would travel past limit.
// The limit only applies when it lies in the direction of travel; reaching it
// exactly is allowed. Overflow of the index range is reported as no result.
// A zero step always succeeds, even when i equals limit.
func (s Seq) OffsetLimited(i, d, limit int) (int, bool) {
	if d == 0 {
		return i, true
	}
	if limit == i {
		return 0, false
	}
	step, overflow := mul(d, s.stride)
	if overflow {
		return 0, false
	}
	r, overflow := add(i, step)
	if overflow {
		return 0, false
	}
	if (d > 0) != (limit > i) {
		// limit is behind us
		return r, true
	}
	if (d > 0 && r > limit) || (d < 0 && r < limit) {
		return 0, false
	}
	return r, true
}

// Distance returns the number of steps from one index to another. Both
// indices must belong to the same progression.
func (s Seq) Distance(from, to int) int {
	return (to - from) / s.stride
}

// Contains reports whether i is one of the indices of the progression.
func (s Seq) Contains(i int) bool {
	if i < s.low || i >= s.high {
		return false
	}
	return diff(s.low, i)%uint(s.stride) == 0
}

// FirstIndex returns i itself when it is a member: a progression has no
// duplicates, so the first and last occurrences coincide.
func (s Seq) FirstIndex(i int) (int, bool) {
	if !s.Contains(i) {
		return 0, false
	}
	return i, true
}

func (s Seq) LastIndex(i int) (int, bool) {
	return s.FirstIndex(i)
}

// Selects a half-open range which includes the "from" index, but excludes the "to" one.
// Both bounds must be members of the progression or its high bound.
func (s Seq) Slice(from, to int) Seq {
	checkSliceBounds(from, to)
	if from < s.low || to > s.high {
		panic(fmt.Sprintf("slice bounds out of range [%v:%v] with bounds [%v:%v]", from, to, s.low, s.high))
	}
	if diff(s.low, from)%uint(s.stride) != 0 || diff(s.low, to)%uint(s.stride) != 0 {
		panic(fmt.Sprintf("slice bounds [%v:%v] are not aligned to stride %v", from, to, s.stride))
	}
	return Seq{stride: s.stride, low: from, high: to}
}

// All yields every index in ascending order.
func (s Seq) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for n, l := 0, s.Len(); n < l; n++ {
			if !yield(s.low + n*s.stride) {
				return
			}
		}
	}
}

// Backward yields every index in descending order.
func (s Seq) Backward() iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := s.Len() - 1; n >= 0; n-- {
			if !yield(s.low + n*s.stride) {
				return
			}
		}
	}
}

func (s Seq) String() string {
	return fmt.Sprintf("[%v:%v:%v]", s.low, s.high, s.stride)
}

// diff returns hi-lo for lo <= hi without overflowing.
func diff(lo, hi int) uint {
	return uint(hi) - uint(lo)
}

func mul(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, false
	}
	c := a * b
	if c/b != a || (b == -1 && a == math.MinInt) {
		return c, true
	}
	return c, false
}

func add(a, b int) (int, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return c, true
	}
	return c, false
}

func checkSliceBounds(from, to int) {
	if from > to {
		panic(fmt.Sprintf("slice bounds out of range [%v:%v]", from, to))
	}
}

func checkBounds(len int, index int) {
	if index < 0 || index >= len {
		panic(fmt.Sprintf("index out of range [%v] with length %v", index, len))
	}
}
