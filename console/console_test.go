package console

import (
	"testing"

	"github.com/ksutton/gadvance/scan"
)

func TestWaitForVBlankNeverReturnsEarly(t *testing.T) {
	c := New()
	// Hit WaitFor from many different beam positions across a frame.
	for i := 0; i < 64; i++ {
		c.StepDots(i*97 + 13)
		c.WaitFor(scan.VBlank)
		if got := c.Window(); got != scan.VBlank {
			t.Fatalf("iteration %d: WaitFor(VBlank) returned in %v", i, got)
		}
		line := int(c.Registers().Cell(REG_VCOUNT).Read())
		if line < scan.VISIBLE_LINES {
			t.Fatalf("iteration %d: VCOUNT = %d, want >= %d", i, line, scan.VISIBLE_LINES)
		}
		c.WaitFor(scan.Visible)
	}
}

func TestWaitForEntersAtDocumentedBoundaries(t *testing.T) {
	c := New()

	c.WaitFor(scan.HBlank)
	if got, want := c.beam.Dot(), scan.VISIBLE_DOTS; got != want {
		t.Errorf("first hblank entry at dot %d, want %d", got, want)
	}
	if got := c.beam.Line(); got != 0 {
		t.Errorf("first hblank entry on line %d, want 0", got)
	}

	c.WaitFor(scan.VBlank)
	if got, want := c.beam.Line(), scan.VISIBLE_LINES; got != want {
		t.Errorf("vblank entry on line %d, want %d", got, want)
	}
	if got := c.beam.Dot(); got != 0 {
		t.Errorf("vblank entry at dot %d, want 0", got)
	}

	c.WaitFor(scan.Visible)
	if got, want := c.beam.Line(), 0; got != want {
		t.Errorf("visible entry on line %d, want %d", got, want)
	}
}

func TestWaitForIsImmediateInsideWindow(t *testing.T) {
	c := New()
	c.WaitFor(scan.VBlank)
	line, dot := c.beam.Line(), c.beam.Dot()
	c.WaitFor(scan.VBlank) // already there: must not move the beam
	if c.beam.Line() != line || c.beam.Dot() != dot {
		t.Errorf("beam moved to line %d dot %d, want line %d dot %d",
			c.beam.Line(), c.beam.Dot(), line, dot)
	}
}

func TestTornWriteAccounting(t *testing.T) {
	c := New()
	vram := c.VRAM()

	// Beam starts in the visible window: this store tears.
	vram.Cell(0).Write(1)
	if got := c.TornWrites(); got != 1 {
		t.Errorf("TornWrites() = %d, want 1", got)
	}

	// Reads never tear.
	_ = vram.Cell(0).Read()
	if got := c.TornWrites(); got != 1 {
		t.Errorf("TornWrites() after read = %d, want 1", got)
	}

	// Blanked windows are safe.
	c.WaitFor(scan.HBlank)
	vram.Cell(1).Write(1)
	c.WaitFor(scan.VBlank)
	vram.Cell(2).Write(1)
	c.OAM().Cell(0).Write(1)
	c.Palette().Cell(0).Write(1)
	if got := c.TornWrites(); got != 1 {
		t.Errorf("TornWrites() after blanked writes = %d, want 1", got)
	}

	// Registers are always safe.
	c.WaitFor(scan.Visible)
	c.Registers().Cell(REG_DISPCNT).Write(DISPCNT_BG0)
	if got := c.TornWrites(); got != 1 {
		t.Errorf("TornWrites() after register write = %d, want 1", got)
	}
}

func TestReadOnlyRegisters(t *testing.T) {
	c := New()
	regs := c.Registers()

	regs.Cell(REG_VCOUNT).Write(99)
	if got := regs.Cell(REG_VCOUNT).Read(); got != 0 {
		t.Errorf("VCOUNT after write = %d, want 0", got)
	}

	c.StepDots(scan.DOTS_PER_LINE * 5)
	if got := regs.Cell(REG_VCOUNT).Read(); got != 5 {
		t.Errorf("VCOUNT = %d, want 5", got)
	}

	c.WaitFor(scan.VBlank)
	if got := regs.Cell(REG_DISPSTAT).Read() & DISPSTAT_VBLANK; got == 0 {
		t.Error("DISPSTAT vblank flag clear during vblank")
	}
}

func TestKeypad(t *testing.T) {
	c := New()
	if got := c.ReadKeys(); got != 0 {
		t.Errorf("ReadKeys() at power-on = %#x, want 0", got)
	}

	c.SetPressed(KEY_A | KEY_LEFT)
	got := c.ReadKeys()
	if !got.Any(KEY_A) || !got.All(KEY_A|KEY_LEFT) {
		t.Errorf("ReadKeys() = %#x, want A|LEFT", got)
	}
	if got.Any(KEY_START) {
		t.Errorf("ReadKeys() = %#x, START not pressed", got)
	}

	// Attempted direct register store must not stick.
	c.Registers().Cell(REG_KEYINPUT).Write(0)
	if got := c.ReadKeys(); got != KEY_A|KEY_LEFT {
		t.Errorf("ReadKeys() after rogue write = %#x, want A|LEFT", got)
	}
}

// pixel returns the RGBA bytes at (x, y) of the composited frame.
func pixel(c *Console, x, y int) [4]byte {
	f := c.FrameRGBA()
	off := (y*SCREEN_W + x) * 4
	return [4]byte{f[off], f[off+1], f[off+2], f[off+3]}
}

func TestCompositorBackdropAndTile(t *testing.T) {
	c := New()
	c.WaitFor(scan.VBlank)

	// Palette: backdrop dark red (index 0), index 1 pure green.
	pal := c.Palette()
	pal.Cell(0).Write(0x0008)          // r=8
	pal.Cell(1).Write(uint16(31) << 5) // g=31

	// 8bpp tile 1: all pixels color index 1.
	vram := c.VRAM()
	tileWords := make([]uint16, 32)
	for i := range tileWords {
		tileWords[i] = 0x0101
	}
	vram.WriteSliceAt(32, tileWords) // tile 1 of char block 0

	// Map: screen block 8, tile 1 at map position (2, 1).
	vram.Cell(8*SBB_WORDS + 1*TILEMAP_W + 2).Write(1)

	regs := c.Registers()
	regs.Cell(REG_BG0CNT).Write(BGCNT_BIT8 | 8<<BGCNT_SCREEN_SHIFT)
	regs.Cell(REG_DISPCNT).Write(DISPCNT_BG0)

	// Scan out a full frame.
	c.WaitFor(scan.Visible)
	c.WaitFor(scan.VBlank)

	if got := pixel(c, 0, 0); got != [4]byte{0x40, 0, 0, 0xFF} {
		t.Errorf("backdrop pixel = %v, want dark red", got)
	}
	if got := pixel(c, 2*8+3, 1*8+4); got != [4]byte{0, 0xF8, 0, 0xFF} {
		t.Errorf("tile pixel = %v, want green", got)
	}
}

// A scrolled layer samples map pixels shifted by HOFS/VOFS, wrapping at
// the map edge.
func TestCompositorScrolledLayer(t *testing.T) {
	c := New()
	c.WaitFor(scan.VBlank)

	pal := c.Palette()
	pal.Cell(1).Write(uint16(31) << 5) // index 1 green

	// 8bpp tile 1: all pixels color index 1, placed at map cell (3, 2).
	vram := c.VRAM()
	tileWords := make([]uint16, 32)
	for i := range tileWords {
		tileWords[i] = 0x0101
	}
	vram.WriteSliceAt(32, tileWords)
	vram.Cell(8*SBB_WORDS + 2*TILEMAP_W + 3).Write(1)

	regs := c.Registers()
	regs.Cell(REG_BG0CNT).Write(BGCNT_BIT8 | 8<<BGCNT_SCREEN_SHIFT)
	regs.Cell(REG_BG0HOFS).Write(8) // one tile right
	regs.Cell(REG_BG0VOFS).Write(16 + 3)
	regs.Cell(REG_DISPCNT).Write(DISPCNT_BG0)

	c.WaitFor(scan.Visible)
	c.WaitFor(scan.VBlank)

	// Map pixel (3*8, 2*8) appears at screen (3*8-8, 2*8-16-3).
	if got := pixel(c, 16, 0); got[1] != 0xF8 {
		t.Errorf("scrolled tile pixel = %v, want green", got)
	}
	// Its unscrolled position shows backdrop.
	if got := pixel(c, 3*8+1, 2*8+1); got[1] != 0 {
		t.Errorf("unscrolled position = %v, want backdrop", got)
	}
	// The last visible row of the tile: map y 23 at screen y 23-19 = 4.
	if got := pixel(c, 16, 4); got[1] != 0xF8 {
		t.Errorf("tile row 7 pixel = %v, want green", got)
	}
	if got := pixel(c, 16, 5); got[1] != 0 {
		t.Errorf("pixel below scrolled tile = %v, want backdrop", got)
	}

	// Scroll offsets only affect their own layer: BG1 untouched by BG0's
	// registers wraps nothing (it is disabled here anyway), and offsets
	// past 9 bits are masked off.
	regs.Cell(REG_BG0HOFS).Write(8 + 512) // bit 9 ignored
	c.WaitFor(scan.Visible)
	c.WaitFor(scan.VBlank)
	if got := pixel(c, 16, 0); got[1] != 0xF8 {
		t.Errorf("offset with high bits = %v, want green (masked to 8)", got)
	}
}

func TestCompositorObject(t *testing.T) {
	c := New()
	c.WaitFor(scan.VBlank)

	pal := c.Palette()
	pal.Cell(OBJ_PAL_OFFSET + 5).Write(uint16(31) << 10) // obj color 5: blue

	// 8bpp object tile 0 (even index), all pixels color 5.
	vram := c.VRAM()
	tileWords := make([]uint16, 32)
	for i := range tileWords {
		tileWords[i] = 0x0505
	}
	vram.WriteSliceAt(BG_VRAM_WORDS, tileWords)

	// Slot 0: 8x8 8bpp object at (10, 20). Slot 1 stays hidden.
	oam := c.OAM()
	oam.Cell(0).Write(20 | ATTR0_BIT8)
	oam.Cell(1).Write(10)
	oam.Cell(2).Write(0)
	oam.Cell(4).Write(ATTR0_HIDE | ATTR0_BIT8)

	c.Registers().Cell(REG_DISPCNT).Write(DISPCNT_OBJ | DISPCNT_OBJ_1D)

	c.WaitFor(scan.Visible)
	c.WaitFor(scan.VBlank)

	if got := pixel(c, 10, 20); got != [4]byte{0, 0, 0xF8, 0xFF} {
		t.Errorf("object pixel = %v, want blue", got)
	}
	if got := pixel(c, 10, 19); got != [4]byte{0, 0, 0, 0xFF} {
		t.Errorf("pixel above object = %v, want backdrop", got)
	}
	if got := pixel(c, 18, 20); got != [4]byte{0, 0, 0, 0xFF} {
		t.Errorf("pixel right of object = %v, want backdrop", got)
	}
}

// A store issued mid-frame lands on the lines the beam has not reached
// yet: the classic tear.
func TestMidFrameWriteTears(t *testing.T) {
	c := New()
	c.WaitFor(scan.VBlank)

	pal := c.Palette()
	pal.Cell(0).Write(uint16(31)) // backdrop red
	c.Registers().Cell(REG_DISPCNT).Write(0)

	c.WaitFor(scan.Visible)
	c.StepDots(scan.DOTS_PER_LINE * 80) // beam now at line 80
	pal.Cell(0).Write(uint16(31) << 5)  // backdrop green, torn
	c.WaitFor(scan.VBlank)

	if got := pixel(c, 0, 40); got != [4]byte{0xF8, 0, 0, 0xFF} {
		t.Errorf("line 40 = %v, want red (scanned before the write)", got)
	}
	if got := pixel(c, 0, 120); got != [4]byte{0, 0xF8, 0, 0xFF} {
		t.Errorf("line 120 = %v, want green (scanned after the write)", got)
	}
	if got := c.TornWrites(); got != 1 {
		t.Errorf("TornWrites() = %d, want 1", got)
	}
}
