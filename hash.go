package bitpack

import (
	"github.com/zeebo/xxh3"
)

// Hash is structural: equal views hash equally.
func (p Packed[W, E]) Hash() uint64 {
	return xxh3.Hash(p.hashInput())
}

func (p Packed[W, E]) HashWithSeed(seed uint64) uint64 {
	return xxh3.HashSeed(p.hashInput(), seed)
}

func (p Packed[W, E]) hashInput() []byte {
	var buf [9]byte
	buf[0] = byte(p.direction)
	return AppendUint(buf[:1], p.container, LittleEndian)
}
