// Package timer provides an implementation of the Game Boy
// timer. It is used to generate interrupts at a specific
// frequency. The frequency can be configured using the
// types.TAC register.
package timer

import (
	"github.com/thelolagemann/dmgcore/internal/interrupts"
	"github.com/thelolagemann/dmgcore/internal/types"
)

// thresholds holds the number of clock cycles between TIMA
// increments for each of the clock select values.
//
//	00: 4096   Hz (1024 clocks)
//	01: 262144 Hz (16 clocks)
//	10: 65536  Hz (64 clocks)
//	11: 16384  Hz (256 clocks)
var thresholds = [4]uint16{1024, 16, 64, 256}

// Controller is the controller for the timer. It has four registers:
//
//   - types.DIV: The divider register. It is incremented at a rate of 16384Hz.
//   - types.TIMA: The counter register. It is incremented at a rate specified by the control register.
//   - types.TMA: The modulo register. When the counter overflows, it is reset to the value of this register.
//   - types.TAC: The control register. It specifies the timer frequency.
type Controller struct {
	// divider is incremented once every 4 clocks, bits 6-13
	// are exposed as types.DIV.
	divider uint16
	// dividerClocks holds the clocks left over from the
	// last divider increment.
	dividerClocks uint8
	// sub holds the clocks accumulated towards the next
	// counter increment.
	sub uint16

	counter uint8 // the counter register (TIMA)
	modulo  uint8 // the modulo register (TMA)
	control uint8 // the control register (TAC)

	irq interrupts.Requester
}

// NewController returns a new controller.
func NewController(irq interrupts.Requester) *Controller {
	return &Controller{
		irq: irq,
	}
}

// Read returns the value of the register at the specified address.
func (c *Controller) Read(address uint16) uint8 {
	switch address {
	case types.DIV:
		return uint8(c.divider >> 6)
	case types.TIMA:
		return c.counter
	case types.TMA:
		return c.modulo
	case types.TAC:
		return c.control | 0xF8 // the upper 5 bits are unused
	}

	return 0xFF
}

// Write writes the value to the register at the specified address.
func (c *Controller) Write(address uint16, value uint8) {
	switch address {
	case types.DIV:
		// any write resets the divider
		c.divider = 0
		c.dividerClocks = 0
	case types.TIMA:
		c.counter = value
	case types.TMA:
		c.modulo = value
	case types.TAC:
		if value&0x3 != c.control&0x3 {
			c.sub = 0
		}
		c.control = value & 0x7
	}
}

// Step advances the timer by the specified number of clock cycles.
func (c *Controller) Step(cycles uint8) {
	// the divider always runs, once every 4 clocks
	clocks := uint16(c.dividerClocks) + uint16(cycles)
	c.divider += clocks / 4
	c.dividerClocks = uint8(clocks % 4)

	if !c.isEnabled() {
		return
	}

	c.sub += uint16(cycles)
	threshold := thresholds[c.control&0x3]
	for c.sub >= threshold {
		c.sub -= threshold
		c.increment()
	}
}

// increment increments TIMA, reloading it from TMA and
// requesting an interrupt if it overflows.
func (c *Controller) increment() {
	c.counter++
	if c.counter == 0 {
		c.counter = c.modulo
		c.irq.Request(interrupts.TimerFlag)
	}
}

// isEnabled returns true if the timer is enabled.
func (c *Controller) isEnabled() bool {
	return c.control&types.Bit2 != 0
}

var _ types.Peripheral = (*Controller)(nil)
var _ types.Device = (*Controller)(nil)
