package console

// The compositor is the display controller side of the machine: it reads
// the region arrays directly (it is the hardware, it does not go through
// the CPU bus) and produces one line of pixels from whatever the memory
// holds at that instant.

// Object dimensions in pixels, indexed by [shape direction][shape size].
// Directions: square, horizontal, vertical.
var objDims = [3][4][2]int{
	{{8, 8}, {16, 16}, {32, 32}, {64, 64}},
	{{16, 8}, {32, 8}, {32, 16}, {64, 32}},
	{{8, 16}, {8, 32}, {16, 32}, {32, 64}},
}

func (c *Console) renderLine(y int) {
	var line [SCREEN_W]uint16

	dispcnt := c.regs.words[REG_DISPCNT]
	if dispcnt&DISPCNT_FORCED_BLANK != 0 {
		for x := range line {
			line[x] = 0x7FFF // forced blank scans out white
		}
	} else {
		backdrop := c.pal.words[0]
		for x := range line {
			line[x] = backdrop
		}
		// Back to front: lowest priority value wins, objects beat a
		// background of equal priority.
		for prio := 3; prio >= 0; prio-- {
			for bg := 3; bg >= 0; bg-- {
				if dispcnt&(DISPCNT_BG0<<bg) == 0 {
					continue
				}
				bgcnt := c.regs.words[REG_BG0CNT+bg]
				if int(bgcnt&BGCNT_PRIO_MASK) != prio {
					continue
				}
				c.drawBackgroundLine(&line, bg, bgcnt, y)
			}
			if dispcnt&DISPCNT_OBJ != 0 {
				c.drawObjectLine(&line, y, prio, dispcnt&DISPCNT_OBJ_1D != 0)
			}
		}
	}

	off := y * SCREEN_W * 4
	for x, v := range line {
		c.frame[off+x*4+0] = byte(v&0x1F) << 3
		c.frame[off+x*4+1] = byte(v>>5&0x1F) << 3
		c.frame[off+x*4+2] = byte(v>>10&0x1F) << 3
		c.frame[off+x*4+3] = 0xFF
	}
}

func (c *Console) drawBackgroundLine(line *[SCREEN_W]uint16, bg int, bgcnt uint16, y int) {
	charBase := int(bgcnt>>BGCNT_CHAR_SHIFT&BGCNT_CHAR_MASK) * CBB_WORDS
	screenBase := int(bgcnt>>BGCNT_SCREEN_SHIFT&BGCNT_SCREEN_MASK) * SBB_WORDS
	bit8 := bgcnt&BGCNT_BIT8 != 0

	hofs := int(c.regs.words[REG_BG0HOFS+2*bg] & OFS_MASK)
	vofs := int(c.regs.words[REG_BG0VOFS+2*bg] & OFS_MASK)

	sy := y + vofs
	ty := (sy / 8) % TILEMAP_H
	py0 := sy % 8
	for x := 0; x < SCREEN_W; x++ {
		sx := x + hofs
		tx := (sx / 8) % TILEMAP_W
		entry := c.vram.words[screenBase+ty*TILEMAP_W+tx]

		px, py := sx%8, py0
		if entry&ENTRY_HFLIP != 0 {
			px = 7 - px
		}
		if entry&ENTRY_VFLIP != 0 {
			py = 7 - py
		}

		tile := int(entry & ENTRY_TILE_MASK)
		var color int
		if bit8 {
			// 8bpp tiles are 32 words, two pixels per word.
			w := c.vram.words[(charBase+tile*32+py*4+px/2)%BG_VRAM_WORDS]
			color = int(w>>uint(px%2*8)) & 0xFF
		} else {
			// 4bpp tiles are 16 words, four pixels per word; the map
			// entry picks the palette bank.
			w := c.vram.words[(charBase+tile*16+py*2+px/4)%BG_VRAM_WORDS]
			color = int(w>>uint(px%4*4)) & 0xF
			if color != 0 {
				color |= int(entry>>ENTRY_BANK_SHIFT) << 4
			}
		}
		if color != 0 {
			line[x] = c.pal.words[color]
		}
	}
}

func (c *Console) drawObjectLine(line *[SCREEN_W]uint16, y, prio int, oneDim bool) {
	for i := 0; i < OBJ_COUNT; i++ {
		a0 := c.oam.words[i*OBJ_ATTR_WORDS]
		a1 := c.oam.words[i*OBJ_ATTR_WORDS+1]
		a2 := c.oam.words[i*OBJ_ATTR_WORDS+2]

		if a0&ATTR0_MODE_MASK == ATTR0_HIDE {
			continue
		}
		if int(a2>>ATTR2_PRIO_SHIFT)&3 != prio {
			continue
		}

		shape := int(a0>>ATTR0_SHAPE_SHIFT) & 3
		size := int(a1>>ATTR1_SIZE_SHIFT) & 3
		w, h := objDims[shape][size][0], objDims[shape][size][1]

		oy := int(a0 & ATTR0_Y_MASK)
		if oy >= SCREEN_H {
			oy -= 256 // wraps off the top
		}
		row := y - oy
		if row < 0 || row >= h {
			continue
		}
		if a1&ATTR1_VFLIP != 0 {
			row = h - 1 - row
		}

		ox := int(a1 & ATTR1_X_MASK)
		if ox >= 256 {
			ox -= 512
		}

		bit8 := a0&ATTR0_BIT8 != 0
		tile := int(a2 & ATTR2_TILE_MASK)
		bank := int(a2>>ATTR2_BANK_SHIFT) & 0xF

		for dx := 0; dx < w; dx++ {
			x := ox + dx
			if x < 0 || x >= SCREEN_W {
				continue
			}
			px := dx
			if a1&ATTR1_HFLIP != 0 {
				px = w - 1 - dx
			}
			color := c.objPixel(tile, px, row, w, bit8, oneDim)
			if color == 0 {
				continue
			}
			if !bit8 {
				color |= bank << 4
			}
			line[x] = c.pal.words[OBJ_PAL_OFFSET+color]
		}
	}
}

// objPixel samples one pixel of an object. Object tile numbers always
// count 32-byte units, so an 8bpp tile consumes two units and must be
// even-numbered.
func (c *Console) objPixel(tile, px, py, w int, bit8, oneDim bool) int {
	units := 1
	if bit8 {
		units = 2
	}
	rowStride := TILEMAP_W // 2D mapping: units laid out as a 32-unit wide sheet
	if oneDim {
		rowStride = w / 8 * units
	}
	unit := (tile + py/8*rowStride + px/8*units) % (OBJ_VRAM_WORDS / 16)
	base := BG_VRAM_WORDS + unit*16
	if bit8 {
		v := c.vram.words[base+py%8*4+px%8/2]
		return int(v>>uint(px%2*8)) & 0xFF
	}
	v := c.vram.words[base+py%8*2+px%8/4]
	return int(v>>uint(px%4*4)) & 0xF
}
