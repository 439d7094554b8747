package assets

import "github.com/ksutton/gadvance/video"

// Ship is a 16x16 object, tiles in one-dimensional order.
var Ship = video.NewTileset(tiles8bpp([]string{
	".......##.......",
	".......##.......",
	"......####......",
	"......####......",
	".....##++##.....",
	".....##++##.....",
	"....###++###....",
	"....###++###....",
	"...####oo####...",
	"...####oo####...",
	"..##o##oo##o##..",
	".###o######o###.",
	"###..######..###",
	"##....*..*....##",
	"#.....*..*.....#",
	"......*..*......",
}))

// Star is an 8x8 object used for the drifting starfield sparks.
var Star = video.NewTileset(tiles8bpp([]string{
	"........",
	"...#....",
	"..###...",
	".##*##..",
	"..###...",
	"...#....",
	"........",
	"........",
}))

// Backdrop is the background tileset: tile 0 transparent, tile 1 a lone
// star dot, tile 2 a dimmer pair, tile 3 a panel fill for the status bar.
var Backdrop = video.NewTileset(tiles8bpp([]string{
	"........",
	"........",
	"........",
	"........",
	"........",
	"........",
	"........",
	"........",

	"........",
	"........",
	"...#....",
	"........",
	"........",
	"......o.",
	"........",
	"........",

	".o......",
	"........",
	"........",
	"....o...",
	"........",
	"........",
	".......o",
	"........",

	"++++++++",
	"+oooooo+",
	"+oooooo+",
	"+oooooo+",
	"+oooooo+",
	"+oooooo+",
	"+oooooo+",
	"++++++++",
}))

// Backdrop tile indices.
const (
	TILE_BLANK = 0
	TILE_STAR  = 1
	TILE_DUST  = 2
	TILE_PANEL = 3
)
