package console

import (
	"github.com/ksutton/gadvance/scan"
	"github.com/ksutton/gadvance/vol"
)

// Display resolution, tied to the beam timing.
const (
	SCREEN_W = scan.VISIBLE_DOTS
	SCREEN_H = scan.VISIBLE_LINES
)

// Console is the simulated machine: the video memory regions, the scan
// beam, and the display controller output. There is exactly one thread of
// control; nothing here locks, and WaitFor is the only blocking primitive.
type Console struct {
	beam scan.Counter

	vram *region
	oam  *region
	pal  *region
	regs *regsRegion

	// frame is the display controller's output, RGBA, one byte quad per
	// pixel. Lines are sampled from memory as the beam finishes them, so
	// writes issued outside a blanking window show up as real tearing.
	frame []byte

	tornWrites int
}

// New powers on a console: memory zeroed, beam at the top-left of the
// frame, all keys released.
func New() *Console {
	c := &Console{
		frame: make([]byte, SCREEN_W*SCREEN_H*4),
	}
	c.vram = &region{c: c, words: make([]uint16, VRAM_WORDS), gated: true}
	c.oam = &region{c: c, words: make([]uint16, OAM_WORDS), gated: true}
	c.pal = &region{c: c, words: make([]uint16, PALRAM_WORDS), gated: true}
	c.regs = &regsRegion{c: c, words: make([]uint16, REG_WORDS)}
	c.regs.words[REG_KEYINPUT] = uint16(KEY_MASK) // released = 1
	for i := 3; i < len(c.frame); i += 4 {
		c.frame[i] = 0xFF
	}
	return c
}

// The named region constructors below are the only way to obtain a block
// over hardware memory; blocks are never built from raw addresses.

// VRAM is the whole of video RAM: background data followed by object
// tiles.
func (c *Console) VRAM() vol.Block[uint16] { return vol.NewBlock[uint16](c.vram) }

// OAM is the object attribute table, OBJ_ATTR_WORDS per slot.
func (c *Console) OAM() vol.Block[uint16] { return vol.NewBlock[uint16](c.oam) }

// Palette is palette RAM: background colors then object colors.
func (c *Console) Palette() vol.Block[uint16] { return vol.NewBlock[uint16](c.pal) }

// Registers is the display register file.
func (c *Console) Registers() vol.Block[uint16] { return vol.NewBlock[uint16](c.regs) }

// WaitFor advances the beam until it is inside w, rendering visible lines
// as it passes them. Returns immediately if the beam is already inside w.
// Implements scan.Gate.
func (c *Console) WaitFor(w scan.Window) {
	for c.beam.Window() != w {
		c.step()
	}
}

// Window reports the beam's current timing window.
func (c *Console) Window() scan.Window { return c.beam.Window() }

// StepDots advances the beam by n dots without waiting for any window.
// Mostly useful to tests and to frame pacing code.
func (c *Console) StepDots(n int) {
	for i := 0; i < n; i++ {
		c.step()
	}
}

// step advances one dot. A visible line is scanned out of memory the
// moment its horizontal blank begins; anything written to gated regions
// after that shows on the next frame (or tears, if written mid-frame).
func (c *Console) step() {
	c.beam.Step(1)
	if c.beam.Dot() == scan.VISIBLE_DOTS && c.beam.Line() < scan.VISIBLE_LINES {
		c.renderLine(c.beam.Line())
	}
}

// FrameRGBA is the display controller output. The returned slice aliases
// the live frame; callers that keep it across WaitFor must copy.
func (c *Console) FrameRGBA() []byte { return c.frame }

// Frame counts completed frames since power-on.
func (c *Console) Frame() int { return c.beam.Frame() }

// TornWrites counts stores to blank-gated regions issued while the beam
// was in the visible window. The write still lands (the bus cannot refuse
// it); a non-zero count means a latent tearing bug in the caller.
func (c *Console) TornWrites() int { return c.tornWrites }

// dispstat mirrors the beam position into the status register layout.
func (c *Console) dispstat() uint16 {
	var v uint16
	if c.beam.Line() >= scan.VISIBLE_LINES {
		v |= DISPSTAT_VBLANK
	}
	if c.beam.Dot() >= scan.VISIBLE_DOTS {
		v |= DISPSTAT_HBLANK
	}
	return v
}
