package bitpack

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// The structural encodings below carry the container and the direction
// verbatim; decoding is the exact inverse of encoding.

type jsonPacked struct {
	Container uint64    `json:"container"`
	Direction Direction `json:"direction"`
}

type cborPacked struct {
	Container uint64 `cbor:"1,keyasint"`
	Direction uint8  `cbor:"2,keyasint"`
}

var (
	cborEncMode cbor.EncMode
	cborDecMode cbor.DecMode
)

func init() {
	var err error
	cborEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("FATAL: cbor encoding mode: %v", err))
	}
	cborDecMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("FATAL: cbor decoding mode: %v", err))
	}
}

func (p Packed[W, E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonPacked{Container: uint64(p.container), Direction: p.direction})
}

func (p *Packed[W, E]) UnmarshalJSON(data []byte) error {
	var w jsonPacked
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return p.assign(w.Container, w.Direction)
}

func (p Packed[W, E]) MarshalCBOR() ([]byte, error) {
	return cborEncMode.Marshal(cborPacked{Container: uint64(p.container), Direction: uint8(p.direction)})
}

func (p *Packed[W, E]) UnmarshalCBOR(data []byte) error {
	var w cborPacked
	if err := cborDecMode.Unmarshal(data, &w); err != nil {
		return err
	}
	return p.assign(w.Container, Direction(w.Direction))
}

// MarshalBinary encodes the direction as one byte followed by the container in big-endian order.
func (p Packed[W, E]) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 1, 1+bytesOf[W]())
	buf[0] = byte(p.direction)
	return AppendUint(buf, p.container, BigEndian), nil
}

func (p *Packed[W, E]) UnmarshalBinary(data []byte) error {
	n := 1 + bytesOf[W]()
	if len(data) < n {
		return fmt.Errorf("decode %T from %v bytes: %w", p, len(data), ErrShortBuffer)
	}
	if len(data) > n {
		return fmt.Errorf("decode %T: %v trailing bytes", p, len(data)-n)
	}
	c, err := ReadUint[W](data[1:], BigEndian)
	if err != nil {
		return err
	}
	return p.assign(uint64(c), Direction(data[0]))
}

func (p *Packed[W, E]) assign(container uint64, d Direction) error {
	if !d.valid() {
		return fmt.Errorf("decode %T: %w: %v", p, ErrInvalidDirection, d)
	}
	c := W(container)
	if uint64(c) != container {
		return fmt.Errorf("decode %T: %w: %#x", p, ErrValueTooLarge, container)
	}
	*p = New[W, E](c, d)
	return nil
}
