package video

import (
	"fmt"

	"github.com/ksutton/gadvance/console"
	"github.com/ksutton/gadvance/vol"
)

// Map is a handle on one screen base block: a 32x32 tile map.
type Map struct {
	ctrl  *Control
	words vol.Block[uint16]
}

// Map returns the handle for screen base block sbb (0-31).
func (c *Control) Map(sbb int) Map {
	if sbb < 0 || sbb >= console.SBB_COUNT {
		panic(fmt.Sprintf("video: bad screen base block %d", sbb))
	}
	return Map{
		ctrl:  c,
		words: c.bg.MustSub(sbb*console.SBB_WORDS, console.SBB_WORDS),
	}
}

// Size is the map extent in tiles.
func (m Map) Size() Rect { return Rect{W: console.TILEMAP_W, H: console.TILEMAP_H} }

// SetTile writes one cell. Positions outside the map are dropped.
func (m Map) SetTile(p Pos, t Tile) {
	if !m.Size().Contains(p) {
		return
	}
	m.words.Cell(p.Y*console.TILEMAP_W + p.X).Write(uint16(t))
}

// SetTiles draws d with its origin at pos. The drawable only names tiles
// and relative positions; SetTiles owns clipping to the map and picks the
// cheapest traversal the drawable supports. Cells the drawable does not
// name keep their previous contents.
func (m Map) SetTiles(pos Pos, d Drawable) {
	switch d := d.(type) {
	case RegionDrawable:
		m.setRegion(pos, d)
	case LineDrawable:
		d.ForEachLine(func(y int, line []Tile) {
			m.setLine(pos.Add(Pos{Y: y}), line)
		})
	default:
		d.ForEachTile(func(t Tile, p Pos) {
			m.SetTile(pos.Add(p), t)
		})
	}
}

// ClearTiles blanks the cells d covers when drawn at pos. A ClearDrawable
// overrides which cells that is.
func (m Map) ClearTiles(pos Pos, d Drawable) {
	if cd, ok := d.(ClearDrawable); ok {
		cd.ForEachClearPos(func(p Pos) {
			m.SetTile(pos.Add(p), EMPTY_TILE)
		})
		return
	}
	d.ForEachTile(func(_ Tile, p Pos) {
		m.SetTile(pos.Add(p), EMPTY_TILE)
	})
}

// setLine writes one row of cells starting at pos, clipped to the map, as
// a single bulk write.
func (m Map) setLine(pos Pos, line []Tile) {
	if pos.Y < 0 || pos.Y >= console.TILEMAP_H {
		return
	}
	x := pos.X
	if x < 0 {
		if -x >= len(line) {
			return
		}
		line = line[-x:]
		x = 0
	}
	if x >= console.TILEMAP_W {
		return
	}
	if end := console.TILEMAP_W - x; len(line) > end {
		line = line[:end]
	}
	row := make([]uint16, len(line))
	for i, t := range line {
		row[i] = uint16(t)
	}
	m.words.WriteSliceAt(pos.Y*console.TILEMAP_W+x, row)
}

// setRegion copies a dense rectangle row by row, clipping each row.
func (m Map) setRegion(pos Pos, d RegionDrawable) {
	r := d.Region()
	row := make([]Tile, r.W)
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			row[x] = d.TileAt(x, y)
		}
		m.setLine(pos.Add(Pos{Y: y}), row)
	}
}
