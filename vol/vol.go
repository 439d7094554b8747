// Package vol provides volatile-style access to memory-mapped regions.
//
// Every Read and Write performs exactly one access on the backing Memory,
// in the order issued by the caller. Nothing is cached, merged, elided or
// reordered, which makes these types the only sanctioned way of touching
// hardware memory: the display controller may observe any individual store.
package vol

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned for single-element access outside a block.
var ErrOutOfRange = errors.New("vol: index out of range")

// Memory is one hardware memory region. Load and Store are single bus
// accesses; i is an element index, not a byte offset, so misaligned access
// is unrepresentable.
type Memory[T any] interface {
	Load(i int) T
	Store(i int, v T)
	Len() int
}

// Cell is a handle to a single memory-mapped location.
type Cell[T any] struct {
	mem Memory[T]
	idx int
}

// Read performs one hardware load.
func (c Cell[T]) Read() T { return c.mem.Load(c.idx) }

// Write performs one hardware store.
func (c Cell[T]) Write(v T) { c.mem.Store(c.idx, v) }

// Block is a bounds-checked view over a contiguous range of cells.
//
// Blocks are only handed out by the named hardware regions; application
// code never constructs one from an arbitrary address.
type Block[T any] struct {
	mem Memory[T]
	off int
	n   int
}

// NewBlock views the whole of mem as a block.
func NewBlock[T any](mem Memory[T]) Block[T] {
	return Block[T]{mem: mem, n: mem.Len()}
}

// Len is the number of elements in the block.
func (b Block[T]) Len() int { return b.n }

// Index returns the cell at i, or ErrOutOfRange. The failure is explicit;
// there is no wraparound.
func (b Block[T]) Index(i int) (Cell[T], error) {
	if i < 0 || i >= b.n {
		return Cell[T]{}, fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, i, b.n)
	}
	return Cell[T]{mem: b.mem, idx: b.off + i}, nil
}

// Cell is like Index for indices known good at the call site. It panics on
// a bad index: that is a programming error, not a runtime condition.
func (b Block[T]) Cell(i int) Cell[T] {
	c, err := b.Index(i)
	if err != nil {
		panic(err)
	}
	return c
}

// Sub returns the sub-block of n elements starting at off.
func (b Block[T]) Sub(off, n int) (Block[T], error) {
	if off < 0 || n < 0 || off+n > b.n {
		return Block[T]{}, fmt.Errorf("%w: [%d,%d) not in [0,%d)", ErrOutOfRange, off, off+n, b.n)
	}
	return Block[T]{mem: b.mem, off: b.off + off, n: n}, nil
}

// MustSub is Sub for statically known-good ranges.
func (b Block[T]) MustSub(off, n int) Block[T] {
	s, err := b.Sub(off, n)
	if err != nil {
		panic(err)
	}
	return s
}

// WriteSliceAt stores each element of src to consecutive cells starting at
// off: src[0] lands at off, src[1] at off+1, and so on. If src does not fit,
// writing stops at the end of the block; the remainder of src is silently
// ignored and no store ever lands past the block.
func (b Block[T]) WriteSliceAt(off int, src []T) {
	n := b.span(off, len(src))
	for i := 0; i < n; i++ {
		b.mem.Store(b.off+off+i, src[i])
	}
}

// ReadSliceAt loads consecutive cells starting at off into dst, reading at
// most min(len(dst), Len()-off) elements.
func (b Block[T]) ReadSliceAt(off int, dst []T) {
	n := b.span(off, len(dst))
	for i := 0; i < n; i++ {
		dst[i] = b.mem.Load(b.off + off + i)
	}
}

// WriteSlice is WriteSliceAt from the start of the block.
func (b Block[T]) WriteSlice(src []T) { b.WriteSliceAt(0, src) }

// ReadSlice is ReadSliceAt from the start of the block.
func (b Block[T]) ReadSlice(dst []T) { b.ReadSliceAt(0, dst) }

// Fill stores v to every cell of the block, in ascending order.
func (b Block[T]) Fill(v T) {
	for i := 0; i < b.n; i++ {
		b.mem.Store(b.off+i, v)
	}
}

// span clamps a transfer of count elements at off to the block bounds.
func (b Block[T]) span(off, count int) int {
	if off < 0 || off >= b.n {
		return 0
	}
	if max := b.n - off; count > max {
		return max
	}
	return count
}
