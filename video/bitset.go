package video

import "math/bits"

// bitset128 tracks the 128 object slots, set bit = free.
type bitset128 struct {
	lo, hi uint64
}

func newBitset128() bitset128 {
	return bitset128{lo: ^uint64(0), hi: ^uint64(0)}
}

// firstFree is the lowest free slot, or -1 when full.
func (b *bitset128) firstFree() int {
	if b.lo != 0 {
		return bits.TrailingZeros64(b.lo)
	}
	if b.hi != 0 {
		return 64 + bits.TrailingZeros64(b.hi)
	}
	return -1
}

func (b *bitset128) take(i int) {
	if i < 64 {
		b.lo &^= 1 << i
	} else {
		b.hi &^= 1 << (i - 64)
	}
}

func (b *bitset128) free(i int) {
	if i < 64 {
		b.lo |= 1 << i
	} else {
		b.hi |= 1 << (i - 64)
	}
}
