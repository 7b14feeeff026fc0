package types

// Peripheral is a device that is advanced in lockstep with the
// CPU, such as the timer or the PPU. After every instruction the
// number of clock cycles the CPU spent is handed to Step.
type Peripheral interface {
	// Step advances the peripheral by the given number of
	// clock cycles (T-states).
	Step(cycles uint8)
}

// Device is a component that is mapped onto the memory bus.
type Device interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}
