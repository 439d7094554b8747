package console

// Keys is a set of pressed buttons. In the KEYINPUT register the hardware
// convention is inverted: a clear bit means the button is held.
type Keys uint16

const (
	KEY_A Keys = 1 << iota
	KEY_B
	KEY_SELECT
	KEY_START
	KEY_RIGHT
	KEY_LEFT
	KEY_UP
	KEY_DOWN
	KEY_L
	KEY_R

	KEY_MASK Keys = 1<<10 - 1
)

// Any reports whether any button of group is pressed.
func (k Keys) Any(group Keys) bool { return k&group != 0 }

// All reports whether every button of group is pressed.
func (k Keys) All(group Keys) bool { return k&group == group }

// SetPressed latches the currently held buttons into the keypad register.
// Display backends call this once per frame from their input source.
func (c *Console) SetPressed(k Keys) {
	c.regs.words[REG_KEYINPUT] = uint16(^k & KEY_MASK)
}

// ReadKeys reads the keypad register back as a pressed-set. This goes
// through the register region like any other hardware read.
func (c *Console) ReadKeys() Keys {
	return ^Keys(c.regs.Load(REG_KEYINPUT)) & KEY_MASK
}
