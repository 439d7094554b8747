package video

import (
	"fmt"

	"github.com/ksutton/gadvance/console"
	"github.com/ksutton/gadvance/scan"
	"github.com/ksutton/gadvance/vol"
)

// Hardware is what the abstraction layer needs from the machine: the named
// memory regions and the timing gate. *console.Console satisfies it; tests
// substitute fakes.
type Hardware interface {
	VRAM() vol.Block[uint16]
	OAM() vol.Block[uint16]
	Palette() vol.Block[uint16]
	Registers() vol.Block[uint16]
	scan.Gate
}

// Control mediates every write to video memory. Create at most one per
// console: it assumes exclusive ownership of the regions it wraps, which
// is what makes handle-based access a safe substitute for locking.
//
// Bulk drawing methods (LoadTileset, LoadPalette, Map writes) do not gate
// themselves; the frame loop calls them after WaitFor(VBlank), keeping the
// whole frame's writes inside one window. The object methods gate
// individually since game logic may call them at any point.
type Control struct {
	hw Hardware

	regs   vol.Block[uint16]
	bg     vol.Block[uint16] // background character + screen blocks
	obj    vol.Block[uint16] // object tiles
	pal    vol.Block[uint16] // background palette
	objPal vol.Block[uint16] // object palette
	oam    vol.Block[uint16]

	resident [console.CBB_COUNT]Token
	objects  Allocator
	sprites  spriteTable
}

// NewControl wraps the hardware. The display starts however the machine
// left it; call ResetDisplayControl and ResetObjects for a known state.
func NewControl(hw Hardware) *Control {
	vram := hw.VRAM()
	pal := hw.Palette()
	c := &Control{
		hw:     hw,
		regs:   hw.Registers(),
		bg:     vram.MustSub(0, console.BG_VRAM_WORDS),
		obj:    vram.MustSub(console.BG_VRAM_WORDS, console.OBJ_VRAM_WORDS),
		pal:    pal.MustSub(0, console.OBJ_PAL_OFFSET),
		objPal: pal.MustSub(console.OBJ_PAL_OFFSET, console.PALRAM_WORDS-console.OBJ_PAL_OFFSET),
		oam:    hw.OAM(),
	}
	c.objects.ctrl = c
	c.sprites.ctrl = c
	return c
}

// Gate exposes the hardware timing gate to the frame loop.
func (c *Control) Gate() scan.Gate { return c.hw }

func (c *Control) dispcnt() uint16 { return c.regs.Cell(console.REG_DISPCNT).Read() }

func (c *Control) setDispcnt(v uint16) { c.regs.Cell(console.REG_DISPCNT).Write(v) }

// ensureBlank parks the beam in VBLANK when it is mid-scanout, so that a
// one-off gated write cannot tear. Inside either blanking window it is a
// no-op.
func (c *Control) ensureBlank() {
	if c.hw.Window() == scan.Visible {
		c.hw.WaitFor(scan.VBlank)
	}
}

// ResetDisplayControl blanks the display control register: mode 0, all
// layers and objects off.
func (c *Control) ResetDisplayControl() { c.setDispcnt(0) }

// SetMode selects the display mode. Only the tile modes are modelled.
func (c *Control) SetMode(mode int) {
	if mode < 0 || mode > 2 {
		panic(fmt.Sprintf("video: bad display mode %d", mode))
	}
	c.setDispcnt(c.dispcnt()&^console.DISPCNT_MODE_MASK | uint16(mode))
}

// EnableLayer turns background layer n on.
func (c *Control) EnableLayer(n int) {
	c.setDispcnt(c.dispcnt() | layerBit(n))
}

// DisableLayer turns background layer n off.
func (c *Control) DisableLayer(n int) {
	c.setDispcnt(c.dispcnt() &^ layerBit(n))
}

func layerBit(n int) uint16 {
	if n < 0 || n > 3 {
		panic(fmt.Sprintf("video: bad layer %d", n))
	}
	return console.DISPCNT_BG0 << n
}

// EnableObjects turns the object layer on.
func (c *Control) EnableObjects() { c.setDispcnt(c.dispcnt() | console.DISPCNT_OBJ) }

// DisableObjects turns the object layer off.
func (c *Control) DisableObjects() { c.setDispcnt(c.dispcnt() &^ console.DISPCNT_OBJ) }

// TileMapping is the memory layout of multi-tile objects.
type TileMapping int

const (
	// OneDim: an object's tiles follow each other in memory. The layout
	// the sprite loader uses.
	OneDim TileMapping = iota
	// TwoDim: object tiles are addressed as rows of a 32-unit wide sheet.
	TwoDim
)

// SetObjectTileMapping selects the object tile layout.
func (c *Control) SetObjectTileMapping(m TileMapping) {
	if m == OneDim {
		c.setDispcnt(c.dispcnt() | console.DISPCNT_OBJ_1D)
	} else {
		c.setDispcnt(c.dispcnt() &^ console.DISPCNT_OBJ_1D)
	}
}

// LoadPalette writes a palette into background palette memory starting at
// color index offset, truncating at the end of the bank.
func (c *Control) LoadPalette(offset int, p *Palette) {
	c.pal.WriteSliceAt(offset, p.colors)
}

// LoadObjectPalette is LoadPalette for the object palette bank.
func (c *Control) LoadObjectPalette(offset int, p *Palette) {
	c.objPal.WriteSliceAt(offset, p.colors)
}

// LoadTileset copies a tileset into the given character base block. If the
// tileset resident in that block already has this identity the call is a
// no-op; that check is by token, so it costs nothing and never scans tile
// content. Data longer than one block spills into the following blocks,
// invalidating whatever was resident there.
func (c *Control) LoadTileset(cbb int, ts *Tileset) {
	if cbb < 0 || cbb >= console.CBB_COUNT {
		panic(fmt.Sprintf("video: bad character base block %d", cbb))
	}
	if c.resident[cbb] == ts.token {
		return
	}
	c.bg.WriteSliceAt(cbb*console.CBB_WORDS, ts.data)
	c.resident[cbb] = ts.token
	covered := (len(ts.data) + console.CBB_WORDS - 1) / console.CBB_WORDS
	for i := cbb + 1; i < cbb+covered && i < console.CBB_COUNT; i++ {
		c.resident[i] = 0
	}
}

// ResidentTileset is the identity of the tileset loaded in a character
// base block, zero if unknown.
func (c *Control) ResidentTileset(cbb int) Token {
	if cbb < 0 || cbb >= console.CBB_COUNT {
		panic(fmt.Sprintf("video: bad character base block %d", cbb))
	}
	return c.resident[cbb]
}

// Objects is the object slot allocator for this control.
func (c *Control) Objects() *Allocator { return &c.objects }

// ResetObjects hides every object slot, gated. Useful once at startup so
// power-on OAM garbage never reaches the screen.
func (c *Control) ResetObjects() {
	c.ensureBlank()
	for i := 0; i < console.OBJ_COUNT; i++ {
		c.oam.Cell(i * console.OBJ_ATTR_WORDS).Write(console.ATTR0_HIDE)
	}
}

// hideSlot writes the hide attribute for one slot, gated.
func (c *Control) hideSlot(slot int) {
	c.ensureBlank()
	c.oam.Cell(slot * console.OBJ_ATTR_WORDS).Write(console.ATTR0_HIDE)
}

// writeSlot writes a slot's three attribute words, gated.
func (c *Control) writeSlot(slot int, a Attrs) {
	c.ensureBlank()
	w := a.words()
	c.oam.WriteSliceAt(slot*console.OBJ_ATTR_WORDS, w[:])
}
