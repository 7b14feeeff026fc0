// Package joypad provides an implementation of the Game Boy
// joypad. The joypad is used to read the state of the buttons
// and the direction keys.
package joypad

import (
	"github.com/thelolagemann/dmgcore/internal/interrupts"
	"github.com/thelolagemann/dmgcore/internal/types"
)

// Button represents a physical button on the Game Boy.
type Button = uint8

const (
	// ButtonA is the A button.
	ButtonA Button = iota
	// ButtonB is the B button.
	ButtonB
	// ButtonSelect is the Select button.
	ButtonSelect
	// ButtonStart is the Start button.
	ButtonStart
	// ButtonRight is the Right button.
	ButtonRight
	// ButtonLeft is the Left button.
	ButtonLeft
	// ButtonUp is the Up button.
	ButtonUp
	// ButtonDown is the Down button.
	ButtonDown
)

var buttonNames = map[string]Button{
	"a":      ButtonA,
	"b":      ButtonB,
	"select": ButtonSelect,
	"start":  ButtonStart,
	"right":  ButtonRight,
	"left":   ButtonLeft,
	"up":     ButtonUp,
	"down":   ButtonDown,
}

// ButtonByName returns the button with the given lower case name.
func ButtonByName(name string) (Button, bool) {
	b, ok := buttonNames[name]
	return b, ok
}

// State represents the state of the joypad. Select either
// action or direction buttons by writing to the register,
// and then read out bits 0-3 to get the state of the buttons.
//
//	Bit 7 - Not used
//	Bit 6 - Not used
//	Bit 5 - P15 Select Button Keys      (0=Select)
//	Bit 4 - P14 Select Direction Keys   (0=Select)
//	Bit 3 - P13 Input Down  or Start    (0=Pressed) (Read Only)
//	Bit 2 - P12 Input Up    or Select   (0=Pressed) (Read Only)
//	Bit 1 - P11 Input Left  or Button B (0=Pressed) (Read Only)
//	Bit 0 - P10 Input Right or Button A (0=Pressed) (Read Only)
type State struct {
	// State is the current state of the joypad. The lower 4 bits
	// hold the action buttons, and the upper 4 bits the direction
	// buttons. A 1 in a bit indicates that the button is pressed.
	State uint8
	// selection holds bits 4 and 5 of the last P1 write.
	selection uint8

	irq interrupts.Requester
}

// New returns a new joypad state.
func New(irq interrupts.Requester) *State {
	return &State{
		selection: types.Bit4 | types.Bit5,
		irq:       irq,
	}
}

// Read returns the value of the P1 register.
func (s *State) Read(address uint16) uint8 {
	if address != types.P1 {
		return 0xFF
	}
	d := uint8(0xC0) | s.selection
	pressed := uint8(0)
	if s.selection&types.Bit4 == 0 {
		pressed |= s.State >> 4 & 0xF
	}
	if s.selection&types.Bit5 == 0 {
		pressed |= s.State & 0xF
	}

	// 0 = pressed
	return d | (^pressed & 0xF)
}

// Write selects which group of buttons is visible through P1.
func (s *State) Write(address uint16, value uint8) {
	if address == types.P1 {
		s.selection = value & (types.Bit4 | types.Bit5)
	}
}

// Press presses a button, requesting a joypad interrupt if the
// button was previously released.
func (s *State) Press(button Button) {
	mask := s.mask(button)
	if s.State&mask == 0 {
		s.irq.Request(interrupts.JoypadFlag)
	}
	s.State |= mask
}

// Release releases a button.
func (s *State) Release(button Button) {
	s.State &^= s.mask(button)
}

// IsPressed returns true if the button is held down.
func (s *State) IsPressed(button Button) bool {
	return s.State&s.mask(button) != 0
}

// mask returns the bit of State used by button. Action buttons
// occupy the lower nibble, and direction buttons the upper one.
func (s *State) mask(button Button) uint8 {
	return types.Bit0 << (button & 7)
}

var _ types.Device = (*State)(nil)
