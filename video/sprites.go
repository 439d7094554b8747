package video

import (
	"errors"

	"github.com/ksutton/gadvance/console"
)

// ErrSpriteSpace means object tile memory cannot fit the sprite.
var ErrSpriteSpace = errors.New("video: no room in object tile memory")

// MAX_LOADED_SPRITES bounds the residency table, not the memory; memory
// runs out first for any realistically sized sprites.
const MAX_LOADED_SPRITES = 32

// objUnits is object tile memory capacity in 32-byte tile units.
const objUnits = console.OBJ_VRAM_WORDS / 16

type loadedSprite struct {
	token Token
	base  int // first tile unit
	units int
}

// spriteTable tracks which tilesets are resident in object tile memory.
// Placement is first-fit over the unit space, so freeing and loading
// churn reuses low memory before fragmenting upward.
type spriteTable struct {
	ctrl   *Control
	loaded []loadedSprite
}

// LoadSprite copies a tileset into object tile memory and returns the
// tile number of its first unit, for use in Attrs.Tile. If the tileset is
// already resident (by identity token) no copy happens and the existing
// tile number is returned. 256-color objects must start on an even unit;
// all placements are even-aligned so one loader serves both depths.
func (c *Control) LoadSprite(ts *Tileset) (uint16, error) {
	return c.sprites.load(ts)
}

// UnloadSprite releases a tileset's object tile memory. Unloading a
// tileset that is not resident is a no-op. The caller is responsible for
// hiding any objects still pointing at the freed tiles.
func (c *Control) UnloadSprite(ts *Tileset) {
	c.sprites.unload(ts.token)
}

func (t *spriteTable) load(ts *Tileset) (uint16, error) {
	for _, s := range t.loaded {
		if s.token == ts.token {
			return uint16(s.base), nil
		}
	}
	units := ts.Units()
	if units == 0 {
		return 0, ErrSpriteSpace
	}
	if len(t.loaded) >= MAX_LOADED_SPRITES {
		return 0, ErrSpriteSpace
	}
	base, ok := t.place(units)
	if !ok {
		return 0, ErrSpriteSpace
	}
	t.ctrl.obj.WriteSliceAt(base*16, ts.data)
	t.loaded = append(t.loaded, loadedSprite{token: ts.token, base: base, units: units})
	return uint16(base), nil
}

// place finds the lowest even-aligned run of n free units.
func (t *spriteTable) place(n int) (int, bool) {
	base := 0
	for {
		if base+n > objUnits {
			return 0, false
		}
		conflict := -1
		for _, s := range t.loaded {
			if base < s.base+s.units && s.base < base+n {
				if s.base+s.units > conflict {
					conflict = s.base + s.units
				}
			}
		}
		if conflict < 0 {
			return base, true
		}
		base = (conflict + 1) &^ 1 // next even unit past the conflict
	}
}

func (t *spriteTable) unload(tok Token) {
	for i, s := range t.loaded {
		if s.token == tok {
			t.loaded = append(t.loaded[:i], t.loaded[i+1:]...)
			return
		}
	}
}
