// Package console implements the simulated video hardware: the fixed
// memory-mapped regions, the scan beam that gates writes to them, and the
// display controller that samples them line by line.
package console

import (
	"github.com/ksutton/gadvance/scan"
)

// Region sizes. All regions sit on a 16-bit bus; sizes are in 16-bit words
// and every access moves one word, which is why there is no byte-level API.
const (
	VRAM_WORDS     = 0xC000 // 96KB: background data then object tiles
	BG_VRAM_WORDS  = 0x8000 // 64KB of character + screen blocks
	OBJ_VRAM_WORDS = 0x4000 // 32KB of object tiles
	OAM_WORDS      = OBJ_COUNT * OBJ_ATTR_WORDS
	PALRAM_WORDS   = 512 // 256 background + 256 object colors
	REG_WORDS      = 0xA0

	OBJ_COUNT      = 128
	OBJ_ATTR_WORDS = 4 // three attribute words plus one unused filler

	CBB_WORDS = 0x2000 // one character base block
	CBB_COUNT = 4
	SBB_WORDS = 0x400 // one screen base block: a 32x32 tile map
	SBB_COUNT = 32

	TILEMAP_W = 32
	TILEMAP_H = 32

	OBJ_PAL_OFFSET = 256 // object colors in the second half of palette RAM
)

// Display register word indices within the register region.
const (
	REG_DISPCNT  = 0x00
	REG_DISPSTAT = 0x02
	REG_VCOUNT   = 0x03
	REG_BG0CNT   = 0x04
	REG_BG1CNT   = 0x05
	REG_BG2CNT   = 0x06
	REG_BG3CNT   = 0x07
	REG_BG0HOFS  = 0x08 // HOFS/VOFS pairs, two words per layer
	REG_BG0VOFS  = 0x09
	REG_BG1HOFS  = 0x0A
	REG_BG1VOFS  = 0x0B
	REG_BG2HOFS  = 0x0C
	REG_BG2VOFS  = 0x0D
	REG_BG3HOFS  = 0x0E
	REG_BG3VOFS  = 0x0F
	REG_KEYINPUT = 0x98
)

// Scroll offsets are 9 bits; the hardware ignores the rest.
const OFS_MASK = 0x01FF

// DISPCNT bit layout.
const (
	DISPCNT_MODE_MASK    = 0x0007
	DISPCNT_OBJ_1D       = 1 << 6
	DISPCNT_FORCED_BLANK = 1 << 7
	DISPCNT_BG0          = 1 << 8
	DISPCNT_BG1          = 1 << 9
	DISPCNT_BG2          = 1 << 10
	DISPCNT_BG3          = 1 << 11
	DISPCNT_OBJ          = 1 << 12
)

// DISPSTAT bit layout (read-only here).
const (
	DISPSTAT_VBLANK = 1 << 0
	DISPSTAT_HBLANK = 1 << 1
)

// BGxCNT bit layout.
const (
	BGCNT_PRIO_MASK    = 0x0003
	BGCNT_CHAR_SHIFT   = 2
	BGCNT_CHAR_MASK    = 0x3
	BGCNT_BIT8         = 1 << 7
	BGCNT_SCREEN_SHIFT = 8
	BGCNT_SCREEN_MASK  = 0x1F
)

// Text screen entry bit layout (one tile map cell).
const (
	ENTRY_TILE_MASK  = 0x03FF
	ENTRY_HFLIP      = 1 << 10
	ENTRY_VFLIP      = 1 << 11
	ENTRY_BANK_SHIFT = 12
)

// Object attribute bit layout.
//
// attr0: YYYYYYYY then rotation/disable (01 = hidden), mode, mosaic,
// color depth (1 = 8bpp), shape direction.
// attr1: XXXXXXXXX then flips and shape size.
// attr2: tile number, priority, palette bank.
const (
	ATTR0_Y_MASK      = 0x00FF
	ATTR0_HIDE        = 0x0200
	ATTR0_MODE_MASK   = 0x0300
	ATTR0_BIT8        = 1 << 13
	ATTR0_SHAPE_SHIFT = 14

	ATTR1_X_MASK     = 0x01FF
	ATTR1_HFLIP      = 1 << 12
	ATTR1_VFLIP      = 1 << 13
	ATTR1_SIZE_SHIFT = 14

	ATTR2_TILE_MASK  = 0x03FF
	ATTR2_PRIO_SHIFT = 10
	ATTR2_BANK_SHIFT = 12
)

// region is one blank-gated memory area. Loads are free; stores issued
// while the beam is in the visible window still land (the bus has no
// backpressure) but are counted as torn.
type region struct {
	c     *Console
	words []uint16
	gated bool
}

func (r *region) Load(i int) uint16 { return r.words[i] }

func (r *region) Store(i int, v uint16) {
	if r.gated && r.c.beam.Window() == scan.Visible {
		r.c.tornWrites++
	}
	r.words[i] = v
}

func (r *region) Len() int { return len(r.words) }

// regsRegion holds the display registers. Always safe to write; VCOUNT and
// DISPSTAT read back the live beam position and ignore stores, the same
// way the hardware wires them.
type regsRegion struct {
	c     *Console
	words []uint16
}

func (r *regsRegion) Load(i int) uint16 {
	switch i {
	case REG_VCOUNT:
		return uint16(r.c.beam.Line())
	case REG_DISPSTAT:
		return r.c.dispstat()
	}
	return r.words[i]
}

func (r *regsRegion) Store(i int, v uint16) {
	switch i {
	case REG_VCOUNT, REG_DISPSTAT, REG_KEYINPUT:
		return
	}
	r.words[i] = v
}

func (r *regsRegion) Len() int { return len(r.words) }
