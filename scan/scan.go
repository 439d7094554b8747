// Package scan models the display scan beam and its timing windows.
//
// The display controller reads video memory continuously while drawing.
// Writes to the display buffer regions are only safe while the beam is in
// a blanking interval: HBLANK (the short gap at the end of each visible
// line) or VBLANK (the long gap at the end of each frame).
package scan

import "fmt"

// Beam timing, in dots. One dot is one pixel period.
const (
	VISIBLE_DOTS  = 240
	HBLANK_DOTS   = 68
	DOTS_PER_LINE = VISIBLE_DOTS + HBLANK_DOTS // 308

	VISIBLE_LINES   = 160
	VBLANK_LINES    = 68
	LINES_PER_FRAME = VISIBLE_LINES + VBLANK_LINES // 228

	DOTS_PER_FRAME = DOTS_PER_LINE * LINES_PER_FRAME
)

// Window is the timing window the beam currently occupies.
type Window int

const (
	// Visible: the beam is scanning out pixels. Display buffer writes
	// tear.
	Visible Window = iota
	// HBlank: the gap between visible lines. Safe for small, line-scoped
	// writes.
	HBlank
	// VBlank: the gap between frames. Safe for bulk writes.
	VBlank
)

func (w Window) String() string {
	switch w {
	case Visible:
		return "visible"
	case HBlank:
		return "hblank"
	case VBlank:
		return "vblank"
	}
	return fmt.Sprintf("window(%d)", int(w))
}

// Gate exposes the beam position to code that must only write during a
// blanking interval.
type Gate interface {
	// WaitFor blocks until the beam is inside w. If the beam is already
	// inside w it returns immediately, so a caller sitting in VBLANK can
	// issue gated writes without giving up the rest of the window.
	//
	// Once WaitFor(VBlank) returns at window entry, the caller has the
	// whole VBLANK before the next visible line; the per-frame write
	// volume must be kept within that budget, the gate cannot roll back
	// stores that miss it.
	WaitFor(w Window)
	// Window reports the window the beam is currently in.
	Window() Window
}

// Counter is the beam position state machine. It is pure bookkeeping;
// advancing it is the machine's job.
type Counter struct {
	dot   int
	line  int
	frame int
}

// Step advances the beam by n dots.
func (c *Counter) Step(n int) {
	c.dot += n
	for c.dot >= DOTS_PER_LINE {
		c.dot -= DOTS_PER_LINE
		c.line++
		if c.line == LINES_PER_FRAME {
			c.line = 0
			c.frame++
		}
	}
}

// Dot is the dot within the current line, 0..DOTS_PER_LINE-1.
func (c *Counter) Dot() int { return c.dot }

// Line is the current scanline, 0..LINES_PER_FRAME-1. This is the value a
// VCOUNT register reads back.
func (c *Counter) Line() int { return c.line }

// Frame counts completed frames since reset.
func (c *Counter) Frame() int { return c.frame }

// Window reports the timing window at the current beam position. The
// VBLANK lines count as VBlank for their whole duration, including the
// per-line horizontal gap.
func (c *Counter) Window() Window {
	if c.line >= VISIBLE_LINES {
		return VBlank
	}
	if c.dot >= VISIBLE_DOTS {
		return HBlank
	}
	return Visible
}
