// Package assets holds the built-in tile art, authored as string art and
// packed into 256-color tile data at init. Each asset is a package-level
// tileset so its identity is stamped exactly once; loaders compare those
// identities to skip redundant copies.
package assets

import (
	"fmt"

	"github.com/ksutton/gadvance/video"
)

// Art color key. '.' is transparent (color 0).
var artColors = map[byte]byte{
	'.': 0,
	'#': 1,
	'+': 2,
	'o': 3,
	'*': 4,
	'x': 5,
}

// tiles8bpp packs rows of string art into 256-color tile words: 8x8 tiles
// taken in bands left to right, two pixels per word, low byte first. Art
// dimensions must be multiples of 8.
func tiles8bpp(art []string) []uint16 {
	h := len(art)
	if h == 0 || h%8 != 0 {
		panic(fmt.Sprintf("assets: art height %d not a multiple of 8", h))
	}
	w := len(art[0])
	if w == 0 || w%8 != 0 {
		panic(fmt.Sprintf("assets: art width %d not a multiple of 8", w))
	}

	tiles := make([]uint16, 0, w/8*h/8*32)
	for band := 0; band < h; band += 8 {
		for tx := 0; tx < w; tx += 8 {
			for py := 0; py < 8; py++ {
				row := art[band+py]
				if len(row) != w {
					panic(fmt.Sprintf("assets: ragged art row %d", band+py))
				}
				for px := 0; px < 8; px += 2 {
					lo, ok := artColors[row[tx+px]]
					if !ok {
						panic(fmt.Sprintf("assets: unknown art rune %q", row[tx+px]))
					}
					hi, ok := artColors[row[tx+px+1]]
					if !ok {
						panic(fmt.Sprintf("assets: unknown art rune %q", row[tx+px+1]))
					}
					tiles = append(tiles, uint16(lo)|uint16(hi)<<8)
				}
			}
		}
	}
	return tiles
}

// Background palette: backdrop deep blue, then the art colors.
var BGPalette = video.NewPalette([]uint16{
	video.RGB15(1, 1, 6),    // 0: backdrop
	video.RGB15(31, 31, 31), // 1: '#' white
	video.RGB15(18, 18, 22), // 2: '+' grey
	video.RGB15(10, 10, 14), // 3: 'o' dim
	video.RGB15(31, 28, 8),  // 4: '*' yellow
	video.RGB15(24, 6, 6),   // 5: 'x' red
})

// Object palette shares the art color key.
var ObjectPalette = video.NewPalette([]uint16{
	0,                       // 0: transparent
	video.RGB15(26, 26, 30), // 1: '#' hull
	video.RGB15(10, 14, 28), // 2: '+' canopy
	video.RGB15(6, 8, 14),   // 3: 'o' shadow
	video.RGB15(31, 22, 4),  // 4: '*' exhaust
	video.RGB15(28, 4, 4),   // 5: 'x' marker
})
