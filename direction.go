package bitpack

import (
	"fmt"
)

// Direction selects which end of the container holds the logically first element.
type Direction uint8

const (
	MostSignificantFirst Direction = iota
	LeastSignificantFirst
)

func (d Direction) String() string {
	switch d {
	case MostSignificantFirst:
		return "msf"
	case LeastSignificantFirst:
		return "lsf"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == MostSignificantFirst {
		return LeastSignificantFirst
	}
	return MostSignificantFirst
}

// ByteOrder returns the byte order whose first byte holds the direction's first element.
func (d Direction) ByteOrder() ByteOrder {
	if d == MostSignificantFirst {
		return BigEndian
	}
	return LittleEndian
}

func (d Direction) MarshalText() ([]byte, error) {
	if !d.valid() {
		return nil, fmt.Errorf("marshal %v: %w", d, ErrInvalidDirection)
	}
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "msf", "MostSignificantFirst":
		*d = MostSignificantFirst
	case "lsf", "LeastSignificantFirst":
		*d = LeastSignificantFirst
	default:
		return fmt.Errorf("unmarshal %q: %w", text, ErrInvalidDirection)
	}
	return nil
}

func (d Direction) valid() bool {
	return d == MostSignificantFirst || d == LeastSignificantFirst
}
