package assets

import "github.com/ksutton/gadvance/video"

// glyphs maps a character to its 8x8 art. Characters without art render
// as blank tiles; the set below covers the built-in screens.
var glyphs = map[byte][]string{
	'0': {
		"..####..",
		".##..##.",
		".##.###.",
		".###.##.",
		".##..##.",
		".##..##.",
		"..####..",
		"........",
	},
	'1': {
		"...##...",
		"..###...",
		"...##...",
		"...##...",
		"...##...",
		"...##...",
		".######.",
		"........",
	},
	'2': {
		"..####..",
		".##..##.",
		".....##.",
		"...###..",
		"..##....",
		".##.....",
		".######.",
		"........",
	},
	'3': {
		"..####..",
		".##..##.",
		".....##.",
		"...###..",
		".....##.",
		".##..##.",
		"..####..",
		"........",
	},
	'4': {
		"....##..",
		"...###..",
		"..#.##..",
		".#..##..",
		".######.",
		"....##..",
		"....##..",
		"........",
	},
	'5': {
		".######.",
		".##.....",
		".#####..",
		".....##.",
		".....##.",
		".##..##.",
		"..####..",
		"........",
	},
	'6': {
		"..####..",
		".##.....",
		".#####..",
		".##..##.",
		".##..##.",
		".##..##.",
		"..####..",
		"........",
	},
	'7': {
		".######.",
		".....##.",
		"....##..",
		"...##...",
		"..##....",
		"..##....",
		"..##....",
		"........",
	},
	'8': {
		"..####..",
		".##..##.",
		".##..##.",
		"..####..",
		".##..##.",
		".##..##.",
		"..####..",
		"........",
	},
	'9': {
		"..####..",
		".##..##.",
		".##..##.",
		"..#####.",
		".....##.",
		"....##..",
		"..###...",
		"........",
	},
	'A': {
		"..####..",
		".##..##.",
		".##..##.",
		".######.",
		".##..##.",
		".##..##.",
		".##..##.",
		"........",
	},
	'C': {
		"..####..",
		".##..##.",
		".##.....",
		".##.....",
		".##.....",
		".##..##.",
		"..####..",
		"........",
	},
	'D': {
		".#####..",
		".##..##.",
		".##..##.",
		".##..##.",
		".##..##.",
		".##..##.",
		".#####..",
		"........",
	},
	'E': {
		".######.",
		".##.....",
		".#####..",
		".##.....",
		".##.....",
		".##.....",
		".######.",
		"........",
	},
	'G': {
		"..####..",
		".##..##.",
		".##.....",
		".##.###.",
		".##..##.",
		".##..##.",
		"..####..",
		"........",
	},
	'N': {
		".##..##.",
		".###.##.",
		".####.#.",
		".##.###.",
		".##..##.",
		".##..##.",
		".##..##.",
		"........",
	},
	'O': {
		"..####..",
		".##..##.",
		".##..##.",
		".##..##.",
		".##..##.",
		".##..##.",
		"..####..",
		"........",
	},
	'P': {
		".#####..",
		".##..##.",
		".##..##.",
		".#####..",
		".##.....",
		".##.....",
		".##.....",
		"........",
	},
	'R': {
		".#####..",
		".##..##.",
		".##..##.",
		".#####..",
		".####...",
		".##.##..",
		".##..##.",
		"........",
	},
	'S': {
		"..####..",
		".##..##.",
		".##.....",
		"..####..",
		".....##.",
		".##..##.",
		"..####..",
		"........",
	},
	'T': {
		".######.",
		"...##...",
		"...##...",
		"...##...",
		"...##...",
		"...##...",
		"...##...",
		"........",
	},
	'V': {
		".##..##.",
		".##..##.",
		".##..##.",
		".##..##.",
		".##..##.",
		"..####..",
		"...##...",
		"........",
	},
}

// Font is a dense glyph tileset indexed from ' ', the layout Text draws
// from.
var Font = video.NewTileset(fontTiles())

func fontTiles() []uint16 {
	const first, last = byte(' '), byte('Z')
	blank := []string{
		"........", "........", "........", "........",
		"........", "........", "........", "........",
	}
	var data []uint16
	for c := first; c <= last; c++ {
		art, ok := glyphs[c]
		if !ok {
			art = blank
		}
		data = append(data, tiles8bpp(art)...)
	}
	return data
}
