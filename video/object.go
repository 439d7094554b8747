package video

import "github.com/ksutton/gadvance/console"

// Shape is an object's footprint, one of the twelve the hardware draws.
// The high two bits are the shape direction (square, wide, tall), the low
// two the size, matching the attr0/attr1 field split.
type Shape uint8

const (
	SHAPE_8X8   Shape = 0<<2 | 0
	SHAPE_16X16 Shape = 0<<2 | 1
	SHAPE_32X32 Shape = 0<<2 | 2
	SHAPE_64X64 Shape = 0<<2 | 3

	SHAPE_16X8  Shape = 1<<2 | 0
	SHAPE_32X8  Shape = 1<<2 | 1
	SHAPE_32X16 Shape = 1<<2 | 2
	SHAPE_64X32 Shape = 1<<2 | 3

	SHAPE_8X16  Shape = 2<<2 | 0
	SHAPE_8X32  Shape = 2<<2 | 1
	SHAPE_16X32 Shape = 2<<2 | 2
	SHAPE_32X64 Shape = 2<<2 | 3
)

var shapeDims = [3][4][2]int{
	{{8, 8}, {16, 16}, {32, 32}, {64, 64}},
	{{16, 8}, {32, 8}, {32, 16}, {64, 32}},
	{{8, 16}, {8, 32}, {16, 32}, {32, 64}},
}

func (s Shape) dir() int  { return int(s >> 2) }
func (s Shape) size() int { return int(s & 3) }

// Dims is the shape's width and height in pixels.
func (s Shape) Dims() (w, h int) {
	d := shapeDims[s.dir()][s.size()]
	return d[0], d[1]
}

// Attrs is the full drawn state of one object slot. WriteAttributes packs
// it into the slot's attribute words in a single bulk write, so a moving
// object never shows a half-updated position.
type Attrs struct {
	X, Y     int
	Shape    Shape
	Tile     uint16 // tile number in object tile memory, in 32-byte units
	Color256 bool
	Bank     uint8 // palette bank, 16-color objects only
	Priority uint8
	HFlip    bool
	VFlip    bool
	Hidden   bool
}

func (a Attrs) words() [3]uint16 {
	a0 := uint16(a.Y) & console.ATTR0_Y_MASK
	a0 |= uint16(a.Shape.dir()) << console.ATTR0_SHAPE_SHIFT
	if a.Hidden {
		a0 |= console.ATTR0_HIDE
	}
	if a.Color256 {
		a0 |= console.ATTR0_BIT8
	}

	a1 := uint16(a.X) & console.ATTR1_X_MASK
	a1 |= uint16(a.Shape.size()) << console.ATTR1_SIZE_SHIFT
	if a.HFlip {
		a1 |= console.ATTR1_HFLIP
	}
	if a.VFlip {
		a1 |= console.ATTR1_VFLIP
	}

	a2 := a.Tile & console.ATTR2_TILE_MASK
	a2 |= uint16(a.Priority&3) << console.ATTR2_PRIO_SHIFT
	a2 |= uint16(a.Bank&0xF) << console.ATTR2_BANK_SHIFT

	return [3]uint16{a0, a1, a2}
}

func attrsFromWords(w [3]uint16) Attrs {
	a := Attrs{
		Y:        int(w[0] & console.ATTR0_Y_MASK),
		X:        int(w[1] & console.ATTR1_X_MASK),
		Shape:    Shape(w[0]>>console.ATTR0_SHAPE_SHIFT)<<2 | Shape(w[1]>>console.ATTR1_SIZE_SHIFT),
		Tile:     w[2] & console.ATTR2_TILE_MASK,
		Color256: w[0]&console.ATTR0_BIT8 != 0,
		Bank:     uint8(w[2] >> console.ATTR2_BANK_SHIFT),
		Priority: uint8(w[2]>>console.ATTR2_PRIO_SHIFT) & 3,
		HFlip:    w[1]&console.ATTR1_HFLIP != 0,
		VFlip:    w[1]&console.ATTR1_VFLIP != 0,
		Hidden:   w[0]&console.ATTR0_MODE_MASK == console.ATTR0_HIDE,
	}
	return a
}
