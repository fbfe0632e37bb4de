package bitpack

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Bytes returns the container's bytes, first element first: big-endian for
// MostSignificantFirst and little-endian for LeastSignificantFirst.
func (p Packed[W, E]) Bytes() []byte {
	return p.AppendBytes(make([]byte, 0, bytesOf[W]()))
}

// AppendBytes appends the bytes returned by Bytes to dst.
func (p Packed[W, E]) AppendBytes(dst []byte) []byte {
	return AppendUint(dst, p.container, p.direction.ByteOrder())
}

// FromBytes is the inverse of Bytes.
func FromBytes[W, E constraints.Unsigned](b []byte, d Direction) (Packed[W, E], error) {
	c, err := ReadUint[W](b, d.ByteOrder())
	if err != nil {
		return Packed[W, E]{}, err
	}
	return New[W, E](c, d), nil
}

// WithBytes calls fn with the elements laid out as bytes in index order.
// The buffer is a copy: writing to it does not change p.
// It returns ErrNotContiguous without calling fn unless E is a single byte.
func (p *Packed[W, E]) WithBytes(fn func(b []byte) error) error {
	if bitsOf[E]() != 8 {
		return fmt.Errorf("%T: %w", p, ErrNotContiguous)
	}
	return fn(p.Bytes())
}

// WithMutableBytes calls fn with the elements laid out as bytes in index
// order, then stores the buffer back into the container. The write back also
// happens when fn returns an error or panics.
// It returns ErrNotContiguous without calling fn unless E is a single byte.
func (p *Packed[W, E]) WithMutableBytes(fn func(b []byte) error) error {
	if bitsOf[E]() != 8 {
		return fmt.Errorf("%T: %w", p, ErrNotContiguous)
	}
	buf := p.Bytes()
	defer p.storeBytes(buf)
	return fn(buf)
}

func (p *Packed[W, E]) storeBytes(buf []byte) {
	c, err := ReadUint[W](buf, p.direction.ByteOrder())
	bugOn(err != nil, "byte image of %T lost its length: %v", p, err)
	p.container = c
}
