package video

import (
	"errors"
	"math/bits"
)

var (
	// ErrOutOfSlots means all 128 object slots are live.
	ErrOutOfSlots = errors.New("video: out of object slots")
	// ErrDeadHandle means the handle was already released.
	ErrDeadHandle = errors.New("video: object handle already released")
)

// Allocator hands out the hardware's object slots. Each slot is owned by
// at most one live ObjectHandle; release returns it to the pool and the
// lowest-numbered free slot is always handed out next.
type Allocator struct {
	ctrl *Control
	used bool // free initialized lazily so the zero Control works
	free bitset128
}

func (a *Allocator) init() {
	if !a.used {
		a.free = newBitset128()
		a.used = true
	}
}

// Acquire claims a free object slot. The slot starts hidden; call
// WriteAttributes to show it.
func (a *Allocator) Acquire() (*ObjectHandle, error) {
	a.init()
	slot := a.free.firstFree()
	if slot < 0 {
		return nil, ErrOutOfSlots
	}
	a.free.take(slot)
	a.ctrl.hideSlot(slot)
	return &ObjectHandle{alloc: a, slot: slot}, nil
}

// Live is the number of slots currently claimed.
func (a *Allocator) Live() int {
	a.init()
	return 128 - bits.OnesCount64(a.free.lo) - bits.OnesCount64(a.free.hi)
}

// ObjectHandle is exclusive ownership of one object slot. All access to
// the slot's attribute memory goes through the handle; once released the
// handle is dead and every method fails.
type ObjectHandle struct {
	alloc *Allocator
	slot  int
	dead  bool
}

// Slot is the hardware slot number this handle owns.
func (h *ObjectHandle) Slot() int { return h.slot }

// WriteAttributes replaces the slot's drawn state in one bulk write,
// gated to a blanking window.
func (h *ObjectHandle) WriteAttributes(a Attrs) error {
	if h.dead {
		return ErrDeadHandle
	}
	h.alloc.ctrl.writeSlot(h.slot, a)
	return nil
}

// Hide blanks the slot without giving it up.
func (h *ObjectHandle) Hide() error {
	if h.dead {
		return ErrDeadHandle
	}
	h.alloc.ctrl.hideSlot(h.slot)
	return nil
}

// Release hides the slot and returns it to the allocator. The handle is
// dead afterwards; releasing twice is an error.
func (h *ObjectHandle) Release() error {
	if h.dead {
		return ErrDeadHandle
	}
	h.dead = true
	h.alloc.ctrl.hideSlot(h.slot)
	h.alloc.free.free(h.slot)
	return nil
}
