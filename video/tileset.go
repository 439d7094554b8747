package video

import "sync/atomic"

// Token identifies one tileset definition site. Tokens are comparable and
// ordered; two tilesets defined separately get distinct tokens even when
// their data is byte-identical, and the same definition referenced twice
// compares equal. Zero is never issued, so it doubles as "none".
type Token uint32

var lastToken atomic.Uint32

// Tileset is an immutable set of tile bitmap data, 16 words per 32-byte
// tile unit (one 16-color tile, half of a 256-color tile).
//
// Define each asset exactly once, normally in a package-level var: the
// identity token is stamped per NewTileset call, and residency checks in
// LoadTileset and LoadSprite compare tokens, never content.
type Tileset struct {
	token Token
	data  []uint16
}

// NewTileset wraps statically defined tile data. The data must never be
// mutated afterwards.
func NewTileset(data []uint16) *Tileset {
	return &Tileset{token: Token(lastToken.Add(1)), data: data}
}

// Token is this tileset's identity.
func (t *Tileset) Token() Token { return t.token }

// Words is the data length in 16-bit words.
func (t *Tileset) Words() int { return len(t.data) }

// Units is the data length in 32-byte tile units, the unit object tile
// numbers count in.
func (t *Tileset) Units() int { return len(t.data) / 16 }

// Palette is an immutable list of 15-bit colors.
type Palette struct {
	colors []uint16
}

// NewPalette wraps statically defined color data; index 0 is the
// transparent/backdrop entry.
func NewPalette(colors []uint16) *Palette {
	return &Palette{colors: colors}
}

// Len is the number of colors.
func (p *Palette) Len() int { return len(p.colors) }

// RGB15 packs a 15-bit hardware color from 5-bit channels.
func RGB15(r, g, b uint8) uint16 {
	return uint16(r&0x1F) | uint16(g&0x1F)<<5 | uint16(b&0x1F)<<10
}
