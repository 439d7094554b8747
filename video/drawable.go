package video

// Drawable is anything that can place tiles on a map. Implementations only
// decide which tile goes where; Map.SetTiles owns the memory writes, their
// timing and the clipping to the destination. A drawable never needs to
// clip itself.
//
// A drawable picks its own traversal. The base contract is a per-tile
// callback; shapes with a cheaper bulk form additionally implement
// LineDrawable or RegionDrawable and the writer uses the richest form
// available.
type Drawable interface {
	// ForEachTile calls f once per tile, at positions relative to the
	// drawable's own origin.
	ForEachTile(f func(Tile, Pos))
}

// LineDrawable emits whole rows at a time, letting the writer issue one
// bulk write per row instead of one per tile.
type LineDrawable interface {
	Drawable
	// ForEachLine calls f once per row with the row's cells. The slice
	// is only valid for the duration of the call.
	ForEachLine(f func(y int, line []Tile))
}

// RegionDrawable is a dense rectangle with random access to its cells.
type RegionDrawable interface {
	Drawable
	Region() Rect
	TileAt(x, y int) Tile
}

// ClearDrawable customizes which cells Map.ClearTiles blanks. Without it,
// clearing visits the same positions drawing would.
type ClearDrawable interface {
	ForEachClearPos(f func(Pos))
}

// Text draws a string, one glyph tile per byte, newline aware. Glyph tiles
// are expected at their ASCII code point minus 0x20, the layout text-mode
// font tilesets use.
type Text string

const asciiOffset = 0x20

func (t Text) ForEachTile(f func(Tile, Pos)) {
	var pos Pos
	for i := 0; i < len(t); i++ {
		b := t[i]
		if b == '\n' {
			pos.X = 0
			pos.Y++
			continue
		}
		if b < asciiOffset {
			b = asciiOffset
		}
		f(NewTile(uint16(b-asciiOffset)), pos)
		pos.X++
	}
}

// ForEachLine emits each text row as one slice of glyph tiles, reusing
// the backing array between rows.
func (t Text) ForEachLine(f func(y int, line []Tile)) {
	var row []Tile
	y := 0
	flush := func() {
		if len(row) > 0 {
			f(y, row)
		}
		row = row[:0]
		y++
	}
	for i := 0; i < len(t); i++ {
		b := t[i]
		if b == '\n' {
			flush()
			continue
		}
		if b < asciiOffset {
			b = asciiOffset
		}
		row = append(row, NewTile(uint16(b-asciiOffset)))
	}
	if len(row) > 0 {
		f(y, row)
	}
}

// EmptyLine draws n empty tiles in a row.
type EmptyLine int

func (l EmptyLine) ForEachTile(f func(Tile, Pos)) {
	for x := 0; x < int(l); x++ {
		f(EMPTY_TILE, Pos{X: x})
	}
}

// EmptyRect draws an empty rectangular region.
type EmptyRect Rect

func (r EmptyRect) ForEachTile(f func(Tile, Pos)) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			f(EMPTY_TILE, Pos{X: x, Y: y})
		}
	}
}

// Windowed draws Inner limited to the Window extent. Clearing a Windowed
// blanks the whole window, not just the cells Inner would have touched.
type Windowed struct {
	Inner  Drawable
	Window Rect
}

func (w Windowed) ForEachTile(f func(Tile, Pos)) {
	w.Inner.ForEachTile(func(t Tile, p Pos) {
		if w.Window.Contains(p) {
			f(t, p)
		}
	})
}

func (w Windowed) ForEachClearPos(f func(Pos)) {
	EmptyRect(w.Window).ForEachTile(func(_ Tile, p Pos) { f(p) })
}

// Grid is a dense, row-major rectangle of cells: the region-plus-raw-data
// form of the protocol.
type Grid struct {
	Size  Rect
	Tiles []Tile
}

func (g Grid) Region() Rect { return g.Size }

func (g Grid) TileAt(x, y int) Tile { return g.Tiles[y*g.Size.W+x] }

func (g Grid) ForEachTile(f func(Tile, Pos)) {
	for y := 0; y < g.Size.H; y++ {
		for x := 0; x < g.Size.W; x++ {
			f(g.TileAt(x, y), Pos{X: x, Y: y})
		}
	}
}
