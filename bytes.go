package bitpack

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// ByteOrder is the order in which a container's bytes are laid out.
type ByteOrder uint8

const (
	BigEndian ByteOrder = iota
	LittleEndian
)

func (o ByteOrder) String() string {
	if o == BigEndian {
		return "big-endian"
	}
	return "little-endian"
}

type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

func (o ByteOrder) binary() byteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

var hostLittleEndian = binary.NativeEndian.Uint16([]byte{1, 0}) == 1

// bitsOf returns the width of T in bits.
func bitsOf[T constraints.Unsigned]() int {
	return bits.Len64(uint64(^T(0)))
}

func bytesOf[T constraints.Unsigned]() int {
	return bitsOf[T]() / 8
}

// SwapBytes reverses the byte order of w.
func SwapBytes[W constraints.Unsigned](w W) W {
	switch bitsOf[W]() {
	case 16:
		return W(bits.ReverseBytes16(uint16(w)))
	case 32:
		return W(bits.ReverseBytes32(uint32(w)))
	case 64:
		return W(bits.ReverseBytes64(uint64(w)))
	default:
		return w
	}
}

// ToBigEndian returns the value whose in-memory representation on this host
// is the big-endian representation of w. FromBigEndian is its inverse.
func ToBigEndian[W constraints.Unsigned](w W) W {
	if hostLittleEndian {
		return SwapBytes(w)
	}
	return w
}

func FromBigEndian[W constraints.Unsigned](w W) W {
	return ToBigEndian(w)
}

// ToLittleEndian returns the value whose in-memory representation on this
// host is the little-endian representation of w. FromLittleEndian is its inverse.
func ToLittleEndian[W constraints.Unsigned](w W) W {
	if hostLittleEndian {
		return w
	}
	return SwapBytes(w)
}

func FromLittleEndian[W constraints.Unsigned](w W) W {
	return ToLittleEndian(w)
}

// AppendUint appends the bytes of w to dst in the given order.
func AppendUint[W constraints.Unsigned](dst []byte, w W, order ByteOrder) []byte {
	bo := order.binary()
	switch bitsOf[W]() {
	case 8:
		return append(dst, byte(w))
	case 16:
		return bo.AppendUint16(dst, uint16(w))
	case 32:
		return bo.AppendUint32(dst, uint32(w))
	default:
		return bo.AppendUint64(dst, uint64(w))
	}
}

// ReadUint decodes a W from the first bytes of b in the given order.
func ReadUint[W constraints.Unsigned](b []byte, order ByteOrder) (W, error) {
	if n := bytesOf[W](); len(b) < n {
		return 0, fmt.Errorf("read %v bytes from %v: %w", n, len(b), ErrShortBuffer)
	}
	bo := order.binary()
	switch bitsOf[W]() {
	case 8:
		return W(b[0]), nil
	case 16:
		return W(bo.Uint16(b)), nil
	case 32:
		return W(bo.Uint32(b)), nil
	default:
		return W(bo.Uint64(b)), nil
	}
}

// putUint writes w over the first bytes of b in the given order.
func putUint[W constraints.Unsigned](b []byte, w W, order ByteOrder) {
	bo := order.binary()
	switch bitsOf[W]() {
	case 8:
		b[0] = byte(w)
	case 16:
		bo.PutUint16(b, uint16(w))
	case 32:
		bo.PutUint32(b, uint32(w))
	default:
		bo.PutUint64(b, uint64(w))
	}
}
