package video

import (
	"fmt"

	"github.com/ksutton/gadvance/console"
)

// ColorMode is the pixel depth of a background layer's tiles.
type ColorMode int

const (
	// Color16 tiles are 4 bits per pixel; each map cell picks one of 16
	// palette banks.
	Color16 ColorMode = iota
	// Color256 tiles are 8 bits per pixel over the full palette.
	Color256
)

// Layer is a handle on one background layer's control register.
type Layer struct {
	ctrl *Control
	n    int
}

// Layer returns the handle for background layer n (0-3).
func (c *Control) Layer(n int) Layer {
	if n < 0 || n > 3 {
		panic(fmt.Sprintf("video: bad layer %d", n))
	}
	return Layer{ctrl: c, n: n}
}

func (l Layer) reg() int { return console.REG_BG0CNT + l.n }

func (l Layer) update(f func(uint16) uint16) {
	cell := l.ctrl.regs.Cell(l.reg())
	cell.Write(f(cell.Read()))
}

// SetPriority orders this layer against the others; 0 draws on top.
func (l Layer) SetPriority(p int) {
	if p < 0 || p > 3 {
		panic(fmt.Sprintf("video: bad priority %d", p))
	}
	l.update(func(v uint16) uint16 {
		return v&^console.BGCNT_PRIO_MASK | uint16(p)
	})
}

// SetCharBase points the layer's tile data at character base block cbb.
func (l Layer) SetCharBase(cbb int) {
	if cbb < 0 || cbb >= console.CBB_COUNT {
		panic(fmt.Sprintf("video: bad character base block %d", cbb))
	}
	l.update(func(v uint16) uint16 {
		v &^= console.BGCNT_CHAR_MASK << console.BGCNT_CHAR_SHIFT
		return v | uint16(cbb)<<console.BGCNT_CHAR_SHIFT
	})
}

// SetScreenBase points the layer's tile map at screen base block sbb.
func (l Layer) SetScreenBase(sbb int) {
	if sbb < 0 || sbb >= console.SBB_COUNT {
		panic(fmt.Sprintf("video: bad screen base block %d", sbb))
	}
	l.update(func(v uint16) uint16 {
		v &^= console.BGCNT_SCREEN_MASK << console.BGCNT_SCREEN_SHIFT
		return v | uint16(sbb)<<console.BGCNT_SCREEN_SHIFT
	})
}

// SetXOffset scrolls the layer horizontally: screen pixel 0 shows map
// pixel column x. Only the low 9 bits are significant; the map wraps.
func (l Layer) SetXOffset(x int) {
	l.ctrl.regs.Cell(console.REG_BG0HOFS + 2*l.n).Write(uint16(x) & console.OFS_MASK)
}

// SetYOffset scrolls the layer vertically.
func (l Layer) SetYOffset(y int) {
	l.ctrl.regs.Cell(console.REG_BG0VOFS + 2*l.n).Write(uint16(y) & console.OFS_MASK)
}

// SetColorMode selects the layer's tile pixel depth.
func (l Layer) SetColorMode(m ColorMode) {
	l.update(func(v uint16) uint16 {
		if m == Color256 {
			return v | console.BGCNT_BIT8
		}
		return v &^ console.BGCNT_BIT8
	})
}
