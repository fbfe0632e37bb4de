package bitpack

import (
	"errors"
	"fmt"
)

var (
	ErrNotContiguous    = errors.New("element type is not a single byte")
	ErrShortBuffer      = errors.New("buffer too small")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrValueTooLarge    = errors.New("value too large for container")
)

// Internal consistency checks, compiled out unless debug is set.
const debug = false

func bugOn(cond bool, format string, msg ...any) {
	if debug && cond {
		panic(fmt.Sprintf("BUG: "+format, msg...))
	}
}

func checkBounds(len int, index int) {
	if index < 0 || index >= len {
		panic(fmt.Sprintf("index out of range [%v] with length %v", index, len))
	}
}

func checkWidths(containerBits, elementBits int) {
	if elementBits == 0 || containerBits%elementBits != 0 {
		panic(fmt.Sprintf("container width %v is not a multiple of element width %v", containerBits, elementBits))
	}
}
