package video

import (
	"errors"
	"testing"

	"github.com/ksutton/gadvance/console"
)

func TestShapeDims(t *testing.T) {
	cases := []struct {
		s    Shape
		w, h int
	}{
		{SHAPE_8X8, 8, 8},
		{SHAPE_64X64, 64, 64},
		{SHAPE_16X8, 16, 8},
		{SHAPE_64X32, 64, 32},
		{SHAPE_8X16, 8, 16},
		{SHAPE_32X64, 32, 64},
	}
	for i, c := range cases {
		w, h := c.s.Dims()
		if w != c.w || h != c.h {
			t.Errorf("case %d: Dims() = %dx%d, want %dx%d", i, w, h, c.w, c.h)
		}
	}
}

func TestAttrsRoundTrip(t *testing.T) {
	cases := []Attrs{
		{},
		{X: 239, Y: 159, Shape: SHAPE_32X16, Tile: 0x3FF, Priority: 3},
		{X: 511, Y: 255, Shape: SHAPE_64X64, Color256: true, HFlip: true},
		{Shape: SHAPE_8X32, Bank: 15, VFlip: true, Hidden: true},
	}
	for i, a := range cases {
		got := attrsFromWords(a.words())
		if got != a {
			t.Errorf("case %d: round trip = %+v, want %+v", i, got, a)
		}
	}
}

func TestAttrsHideBit(t *testing.T) {
	w := Attrs{Hidden: true}.words()
	if w[0]&console.ATTR0_MODE_MASK != console.ATTR0_HIDE {
		t.Errorf("attr0 = %#06x, hide mode not set", w[0])
	}
	w = Attrs{}.words()
	if w[0]&console.ATTR0_MODE_MASK != 0 {
		t.Errorf("attr0 = %#06x, visible object has mode bits set", w[0])
	}
}

func TestWriteAttributesIsOneBulkWrite(t *testing.T) {
	hw := newFakeHW()
	ctrl := NewControl(hw)
	h, err := ctrl.Objects().Acquire()
	if err != nil {
		t.Fatal(err)
	}

	before := hw.oam.stores
	if err := h.WriteAttributes(Attrs{X: 100, Y: 50, Shape: SHAPE_16X16, Tile: 4}); err != nil {
		t.Fatal(err)
	}
	if got := hw.oam.stores - before; got != 3 {
		t.Errorf("WriteAttributes issued %d stores, want 3", got)
	}

	base := h.Slot() * console.OBJ_ATTR_WORDS
	got := attrsFromWords([3]uint16{
		hw.oam.words[base],
		hw.oam.words[base+1],
		hw.oam.words[base+2],
	})
	want := Attrs{X: 100, Y: 50, Shape: SHAPE_16X16, Tile: 4}
	if got != want {
		t.Errorf("slot state = %+v, want %+v", got, want)
	}
}

func TestSpriteLoadAndReuse(t *testing.T) {
	hw := newFakeHW()
	ctrl := NewControl(hw)

	ship := NewTileset(make([]uint16, 16*4)) // 4 units
	base, err := ctrl.LoadSprite(ship)
	if err != nil {
		t.Fatalf("LoadSprite(): %v", err)
	}
	if base != 0 {
		t.Errorf("first sprite at unit %d, want 0", base)
	}
	first := hw.vram.stores

	// Resident: same tile number back, no copy.
	again, err := ctrl.LoadSprite(ship)
	if err != nil {
		t.Fatalf("LoadSprite() resident: %v", err)
	}
	if again != base {
		t.Errorf("resident reload at unit %d, want %d", again, base)
	}
	if hw.vram.stores != first {
		t.Error("resident reload copied tile data again")
	}

	// Second sprite lands past the first, even-aligned.
	star := NewTileset(make([]uint16, 16))
	b2, err := ctrl.LoadSprite(star)
	if err != nil {
		t.Fatalf("LoadSprite() second: %v", err)
	}
	if b2 != 4 {
		t.Errorf("second sprite at unit %d, want 4", b2)
	}
	if b2%2 != 0 {
		t.Errorf("sprite base %d not even-aligned", b2)
	}
}

func TestSpriteUnloadFreesSpace(t *testing.T) {
	hw := newFakeHW()
	ctrl := NewControl(hw)

	a := NewTileset(make([]uint16, 16*2))
	b := NewTileset(make([]uint16, 16*2))
	ctrl.LoadSprite(a)
	ctrl.LoadSprite(b) // at unit 2

	ctrl.UnloadSprite(a)
	c := NewTileset(make([]uint16, 16*2))
	base, err := ctrl.LoadSprite(c)
	if err != nil {
		t.Fatalf("LoadSprite() after unload: %v", err)
	}
	if base != 0 {
		t.Errorf("reused base = %d, want 0 (first fit)", base)
	}
}

func TestSpriteSpaceExhaustion(t *testing.T) {
	hw := newFakeHW()
	ctrl := NewControl(hw)

	// Object tile memory holds 1024 units; a 1024-unit sprite fills it.
	full := NewTileset(make([]uint16, console.OBJ_VRAM_WORDS))
	if _, err := ctrl.LoadSprite(full); err != nil {
		t.Fatalf("LoadSprite() full-size: %v", err)
	}
	one := NewTileset(make([]uint16, 16))
	if _, err := ctrl.LoadSprite(one); !errors.Is(err, ErrSpriteSpace) {
		t.Errorf("LoadSprite() into full memory = %v, want ErrSpriteSpace", err)
	}
}
