// Package video is the abstraction layer over the console's video memory.
//
// Create a single Control over the hardware and use its methods; the
// Control (and the handles it issues) is the only path to tile memory,
// palette memory, OAM and the display registers.
package video

import "github.com/ksutton/gadvance/console"

// Tile is one tile map cell: a tile index plus flip bits and, for 16-color
// backgrounds, a palette bank.
type Tile uint16

// EMPTY_TILE indexes tile 0, which assets keep fully transparent.
const EMPTY_TILE Tile = 0

// NewTile makes a plain map cell for tile id.
func NewTile(id uint16) Tile { return Tile(id & console.ENTRY_TILE_MASK) }

// Index is the tile number this cell references.
func (t Tile) Index() uint16 { return uint16(t) & console.ENTRY_TILE_MASK }

// FlipH toggles horizontal mirroring.
func (t Tile) FlipH() Tile { return t ^ console.ENTRY_HFLIP }

// FlipV toggles vertical mirroring.
func (t Tile) FlipV() Tile { return t ^ console.ENTRY_VFLIP }

// WithBank selects the palette bank used by this cell. Only meaningful on
// a 16-color background.
func (t Tile) WithBank(bank uint8) Tile {
	t &^= 0xF << console.ENTRY_BANK_SHIFT
	return t | Tile(bank&0xF)<<console.ENTRY_BANK_SHIFT
}

// Pos is a position in tile units on a tile map, or in pixels for object
// attributes. Which coordinate space applies is determined by the
// operation it is passed to, never by the value itself.
type Pos struct {
	X, Y int
}

// Add offsets p by q.
func (p Pos) Add(q Pos) Pos { return Pos{X: p.X + q.X, Y: p.Y + q.Y} }

// Rect is a width/height extent with origin at (0, 0).
type Rect struct {
	W, H int
}

// Contains reports whether p falls inside the extent.
func (r Rect) Contains(p Pos) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < r.W && p.Y < r.H
}
