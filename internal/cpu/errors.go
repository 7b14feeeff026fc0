package cpu

import "fmt"

// UnknownOpcodeError is recorded when the CPU executes one of the
// opcodes the LR35902 leaves undefined, locking the CPU.
type UnknownOpcodeError struct {
	Opcode  uint8
	Address uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("cpu: undefined opcode 0x%02X at 0x%04X", e.Opcode, e.Address)
}
