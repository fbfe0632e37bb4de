package bitpack

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	p := New[uint64, uint16](0x000100A00B00C000, MostSignificantFirst)
	assert.Equal(t, []uint16{0x1, 0xA0, 0xB00, 0xC000}, Collect[uint16](p))
	assert.Equal(t, []uint16{0x1, 0xA0, 0xB00, 0xC000}, slices.Collect(p.Values()))
}

func TestBackward(t *testing.T) {
	p := New[uint32, uint8](0x41424344, LeastSignificantFirst)
	var indices []int
	var values []uint8
	for i, v := range p.Backward() {
		indices = append(indices, i)
		values = append(values, v)
	}
	assert.Equal(t, []int{24, 16, 8, 0}, indices)
	assert.Equal(t, []uint8{0x41, 0x42, 0x43, 0x44}, values)
}

func TestAllStopsEarly(t *testing.T) {
	p := New[uint32, uint8](0x41424344, MostSignificantFirst)
	var values []uint8
	for _, v := range p.All() {
		if v == 0x43 {
			break
		}
		values = append(values, v)
	}
	assert.Equal(t, []uint8{0x41, 0x42}, values)
}

func TestSearch(t *testing.T) {
	tests := map[string]struct {
		p           Packed[uint32, uint8]
		value       uint8
		first, last int
		found       bool
	}{
		"msf_once":    {New[uint32, uint8](0x41424344, MostSignificantFirst), 0x42, -16, -16, true},
		"lsf_once":    {New[uint32, uint8](0x41424344, LeastSignificantFirst), 0x42, 16, 16, true},
		"msf_twice":   {New[uint32, uint8](0x41424142, MostSignificantFirst), 0x42, -16, 0, true},
		"lsf_twice":   {New[uint32, uint8](0x41424142, LeastSignificantFirst), 0x42, 0, 16, true},
		"msf_missing": {New[uint32, uint8](0x41424344, MostSignificantFirst), 0x45, 0, 0, false},
		"lsf_all":     {Repeating[uint32, uint8](7, LeastSignificantFirst), 7, 0, 24, true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			first, ok := tc.p.FirstIndex(tc.value)
			require.Equal(t, tc.found, ok)
			last, ok := tc.p.LastIndex(tc.value)
			require.Equal(t, tc.found, ok)
			assert.Equal(t, tc.found, tc.p.Contains(tc.value))
			if tc.found {
				assert.Equal(t, tc.first, first)
				assert.Equal(t, tc.last, last)
			}
		})
	}
}

func TestReverse(t *testing.T) {
	for name, d := range directions {
		t.Run(name, func(t *testing.T) {
			for n := 0; n < 100; n++ {
				p := New[uint64, uint8](rand.Uint64(), d)
				expected := p.Elements()
				slices.Reverse(expected)

				q := p.Reversed()
				assert.Equal(t, expected, q.Elements())
				assert.Equal(t, d, q.Direction())

				p.Reverse()
				assert.Equal(t, q, p)
			}
		})
	}

	one := New[uint16, uint16](0xBEEF, MostSignificantFirst)
	one.Reverse()
	assert.Equal(t, uint16(0xBEEF), one.Container())

	odd := New[uint64, uint16](0x1111222233334444, MostSignificantFirst)
	odd.Reverse()
	assert.Equal(t, uint64(0x4444333322221111), odd.Container())
}

func TestView(t *testing.T) {
	p := New[uint32, uint8](0x41424344, MostSignificantFirst)
	v := p.Slice(p.Index(1), p.EndIndex())

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, -16, v.StartIndex())
	assert.Equal(t, 8, v.EndIndex())
	assert.Equal(t, []uint8{0x42, 0x43, 0x44}, v.Elements())
	assert.Equal(t, "[42, 43, 44]", v.String())

	v.Set(v.StartIndex(), 0x52)
	assert.Equal(t, uint32(0x41524344), p.Container())

	v.Reverse()
	assert.Equal(t, []uint8{0x41, 0x44, 0x43, 0x52}, p.Elements())

	inner := v.Slice(-8, 0)
	assert.Equal(t, []uint8{0x43}, inner.Elements())
	inner.Swap(-8, -8)
	assert.Equal(t, []uint8{0x41, 0x44, 0x43, 0x52}, p.Elements())

	var seen []int
	for i := range v.All() {
		seen = append(seen, i)
	}
	assert.Equal(t, []int{-16, -8, 0}, seen)
	assert.Equal(t, 3, v.Indices().Len())
}

func TestEmptyView(t *testing.T) {
	p := New[uint32, uint8](0x41424344, LeastSignificantFirst)
	v := p.Slice(8, 8)
	assert.Equal(t, 0, v.Len())
	assert.Empty(t, v.Elements())
	assert.Equal(t, "[]", v.String())
	_, ok := LastIndexFunc[uint8](v, func(uint8) bool { return true })
	assert.False(t, ok)
	_, ok = FirstIndexFunc[uint8](v, func(uint8) bool { return true })
	assert.False(t, ok)
	v.Reverse()
	assert.Equal(t, uint32(0x41424344), p.Container())
}

func TestSlicePanics(t *testing.T) {
	p := New[uint32, uint8](0, LeastSignificantFirst)
	assert.Panics(t, func() { p.Slice(16, 8) })
	assert.Panics(t, func() { p.Slice(0, 40) })
	assert.Panics(t, func() { p.Slice(4, 8) })
}
