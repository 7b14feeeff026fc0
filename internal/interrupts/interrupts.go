// Package interrupts provides the interrupt controller of the
// Game Boy. It holds the IF and IE registers, which are owned by
// the memory bus, and exposes a request/acknowledge protocol for
// the CPU.
package interrupts

import (
	"github.com/thelolagemann/dmgcore/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0),
	// which is requested every time the PPU enters
	// VBlank mode (lcd.VBlank).
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD interrupt flag (bit 1), which
	// is requested by the LCD STAT register (types.STAT),
	// when certain conditions are met.
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2),
	// which is requested when the timer overflows,
	// (types.TIMA > 0xFF).
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3),
	// which is requested when a serial transfer is
	// completed.
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt Flag (bit 4),
	// which is requested when any of types.P1 bits 0-3
	// go from high to low, if the corresponding select
	// bit (types.P1 bit 4 or 5) is set to 0.
	JoypadFlag = types.Bit4
)

const (
	// VBlankVector is the address jumped to when servicing VBlankFlag.
	VBlankVector uint16 = 0x0040
	// LCDVector is the address jumped to when servicing LCDFlag.
	LCDVector uint16 = 0x0048
	// TimerVector is the address jumped to when servicing TimerFlag.
	TimerVector uint16 = 0x0050
	// SerialVector is the address jumped to when servicing SerialFlag.
	SerialVector uint16 = 0x0058
	// JoypadVector is the address jumped to when servicing JoypadFlag.
	JoypadVector uint16 = 0x0060
)

// Requester is implemented by anything that can raise an
// interrupt line, peripherals only ever see this side of
// the Service.
type Requester interface {
	Request(flag uint8)
}

// Service is the interrupt service, used to request
// interrupts and to get the current interrupt vector.
//
// When an interrupt is requested, the corresponding bit
// in the Flag register is set. When an interrupt is
// enabled, the corresponding bit in the Enable register
// is set. When an interrupt is requested and enabled,
// and the CPU's IME is set, the CPU will jump to the
// interrupt vector, and the corresponding bit in the Flag
// register will be cleared.
//
// Requests are not queued, raising a line that is already
// set is a no-op. When several lines are pending at once,
// the lowest bit wins.
type Service struct {
	Flag   uint8 // interrupt Flag (types.IF)
	Enable uint8 // interrupt Enable (types.IE)
}

// NewService returns a new Service.
func NewService() *Service {
	return &Service{}
}

// Read returns the value of the IF or IE register.
func (s *Service) Read(address uint16) uint8 {
	switch address {
	case types.IF:
		return s.Flag | 0xE0 // the upper 3 bits are always set
	case types.IE:
		return s.Enable
	}
	return 0xFF
}

// Write sets the value of the IF or IE register.
func (s *Service) Write(address uint16, value uint8) {
	switch address {
	case types.IF:
		s.Flag = value & 0x1F // only the first 5 bits are used
	case types.IE:
		s.Enable = value
	}
}

// HasInterrupts returns true if there are any interrupts
// that are requested and enabled.
func (s *Service) HasInterrupts() bool {
	return s.Enable&s.Flag&0x1F != 0
}

// Request requests the specified interrupt, by setting
// the corresponding bit in the Flag register.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag & 0x1F
}

// IsPending returns true if the interrupt is both
// requested and enabled.
func (s *Service) IsPending(flag uint8) bool {
	return s.Flag&s.Enable&flag != 0
}

// Acknowledge clears the request bit of the interrupt.
func (s *Service) Acknowledge(flag uint8) {
	s.Flag &^= flag
}

// Vector returns the vector of the highest priority
// interrupt that is requested and enabled, or 0 if there
// is none. The serviced interrupt is acknowledged, any
// other pending interrupts stay requested.
func (s *Service) Vector() uint16 {
	if !s.HasInterrupts() {
		return 0
	}
	for i := uint8(0); i < 5; i++ {
		flag := uint8(1 << i)
		if s.IsPending(flag) {
			s.Acknowledge(flag)
			return VBlankVector + uint16(i)*8
		}
	}

	return 0
}
