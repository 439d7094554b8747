package video

import (
	"errors"
	"testing"

	"github.com/ksutton/gadvance/console"
	"github.com/ksutton/gadvance/scan"
)

func newTestControl(t *testing.T) (*Control, *console.Console) {
	t.Helper()
	hw := console.New()
	hw.WaitFor(scan.VBlank)
	return NewControl(hw), hw
}

func TestAcquireHandsOutAllSlotsLowestFirst(t *testing.T) {
	ctrl, _ := newTestControl(t)
	alloc := ctrl.Objects()

	handles := make([]*ObjectHandle, 0, 128)
	seen := make(map[int]bool)
	for i := 0; i < 128; i++ {
		h, err := alloc.Acquire()
		if err != nil {
			t.Fatalf("Acquire() #%d: %v", i, err)
		}
		if got, want := h.Slot(), i; got != want {
			t.Fatalf("Acquire() #%d got slot %d, want %d", i, got, want)
		}
		if seen[h.Slot()] {
			t.Fatalf("slot %d handed out twice", h.Slot())
		}
		seen[h.Slot()] = true
		handles = append(handles, h)
	}

	if _, err := alloc.Acquire(); !errors.Is(err, ErrOutOfSlots) {
		t.Errorf("129th Acquire() error = %v, want ErrOutOfSlots", err)
	}
	if got := alloc.Live(); got != 128 {
		t.Errorf("Live() = %d, want 128", got)
	}

	for _, h := range handles {
		if err := h.Release(); err != nil {
			t.Fatalf("Release(slot %d): %v", h.Slot(), err)
		}
	}
	if got := alloc.Live(); got != 0 {
		t.Errorf("Live() after releasing all = %d, want 0", got)
	}
}

func TestReleaseReturnsSlotToPool(t *testing.T) {
	ctrl, _ := newTestControl(t)
	alloc := ctrl.Objects()

	a, _ := alloc.Acquire() // slot 0
	b, _ := alloc.Acquire() // slot 1
	_ = b

	if err := a.Release(); err != nil {
		t.Fatalf("Release(): %v", err)
	}
	c, err := alloc.Acquire()
	if err != nil {
		t.Fatalf("Acquire() after release: %v", err)
	}
	if got, want := c.Slot(), 0; got != want {
		t.Errorf("reacquired slot %d, want %d (lowest free)", got, want)
	}
}

func TestReleaseHidesSlotAndKillsHandle(t *testing.T) {
	ctrl, hw := newTestControl(t)
	alloc := ctrl.Objects()

	h, _ := alloc.Acquire()
	if err := h.WriteAttributes(Attrs{X: 50, Y: 30, Shape: SHAPE_16X16}); err != nil {
		t.Fatalf("WriteAttributes(): %v", err)
	}

	oam := hw.OAM()
	a0 := oam.Cell(h.Slot() * console.OBJ_ATTR_WORDS).Read()
	if a0&console.ATTR0_MODE_MASK == console.ATTR0_HIDE {
		t.Fatal("slot hidden after WriteAttributes")
	}

	slot := h.Slot()
	if err := h.Release(); err != nil {
		t.Fatalf("Release(): %v", err)
	}
	a0 = oam.Cell(slot * console.OBJ_ATTR_WORDS).Read()
	if a0&console.ATTR0_MODE_MASK != console.ATTR0_HIDE {
		t.Error("slot not hidden after Release")
	}

	if err := h.Release(); !errors.Is(err, ErrDeadHandle) {
		t.Errorf("second Release() error = %v, want ErrDeadHandle", err)
	}
	if err := h.WriteAttributes(Attrs{}); !errors.Is(err, ErrDeadHandle) {
		t.Errorf("WriteAttributes() on dead handle error = %v, want ErrDeadHandle", err)
	}
	if err := h.Hide(); !errors.Is(err, ErrDeadHandle) {
		t.Errorf("Hide() on dead handle error = %v, want ErrDeadHandle", err)
	}
}

func TestChurnReusesFreedSlots(t *testing.T) {
	ctrl, _ := newTestControl(t)
	alloc := ctrl.Objects()

	handles := make([]*ObjectHandle, 128)
	for i := range handles {
		h, err := alloc.Acquire()
		if err != nil {
			t.Fatalf("Acquire() #%d: %v", i, err)
		}
		handles[i] = h
	}

	// Free three scattered slots, then reacquire: lowest first, exactly
	// those three, then exhaustion again.
	for _, i := range []int{90, 3, 41} {
		if err := handles[i].Release(); err != nil {
			t.Fatalf("Release(%d): %v", i, err)
		}
	}
	for _, want := range []int{3, 41, 90} {
		h, err := alloc.Acquire()
		if err != nil {
			t.Fatalf("reacquire: %v", err)
		}
		if h.Slot() != want {
			t.Errorf("reacquired slot %d, want %d", h.Slot(), want)
		}
	}
	if _, err := alloc.Acquire(); !errors.Is(err, ErrOutOfSlots) {
		t.Errorf("Acquire() when full again = %v, want ErrOutOfSlots", err)
	}
}

// Gated slot writes must park the beam in vblank rather than tear.
func TestSlotWritesNeverTear(t *testing.T) {
	ctrl, hw := newTestControl(t)
	alloc := ctrl.Objects()
	h, _ := alloc.Acquire()

	hw.WaitFor(scan.Visible)
	hw.StepDots(40) // mid-scanout
	if err := h.WriteAttributes(Attrs{X: 10, Y: 10}); err != nil {
		t.Fatalf("WriteAttributes(): %v", err)
	}
	if got := hw.TornWrites(); got != 0 {
		t.Errorf("TornWrites() = %d, want 0", got)
	}
	if got := hw.Window(); got != scan.VBlank {
		t.Errorf("beam window after gated write = %v, want VBlank", got)
	}
}
