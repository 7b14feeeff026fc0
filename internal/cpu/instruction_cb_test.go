package cpu

import (
	"testing"
)

// testInstructionCB runs fn against a fresh CPU, for the CB prefixed
// opcode.
func testInstructionCB(t *testing.T, name string, opcode uint8, fn func(t *testing.T, instruction Instruction)) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		cpu = newTestCPU()
		fn(t, InstructionSetCB[opcode])
	})
}

func TestInstructionCB_RotatesAndShifts(t *testing.T) {
	tests := []struct {
		opcode   uint8
		value    uint8
		carry    bool
		expected uint8
		flags    uint8
	}{
		{0x00, 0x85, false, 0x0B, flags(false, false, false, true)}, // RLC B
		{0x08, 0x01, false, 0x80, flags(false, false, false, true)}, // RRC B
		{0x10, 0x80, false, 0x00, flags(true, false, false, true)},  // RL B
		{0x18, 0x01, true, 0x80, flags(false, false, false, true)},  // RR B
		{0x20, 0xFF, false, 0xFE, flags(false, false, false, true)}, // SLA B
		{0x28, 0x8A, false, 0xC5, 0x00},                             // SRA B
		{0x30, 0xF1, true, 0x1F, 0x00},                              // SWAP B
		{0x38, 0x01, false, 0x00, flags(true, false, false, true)},  // SRL B
	}
	for _, tt := range tests {
		tt := tt
		testInstructionCB(t, InstructionSetCB[tt.opcode].Name(), tt.opcode, func(t *testing.T, instruction Instruction) {
			cpu.B = tt.value
			if tt.carry {
				cpu.setFlag(FlagCarry)
			}
			if cycles := run(0xCB, tt.opcode); cycles != 8 {
				t.Errorf("expected 8 cycles, got %d", cycles)
			}
			if cpu.B != tt.expected {
				t.Errorf("expected 0x%02X in B, got 0x%02X", tt.expected, cpu.B)
			}
			if cpu.F != tt.flags {
				t.Errorf("expected flags 0x%02X, got 0x%02X", tt.flags, cpu.F)
			}
			if cpu.PC != 0xC002 {
				t.Errorf("expected PC to be 0xC002, got 0x%04X", cpu.PC)
			}
		})
	}

	testInstructionCB(t, "SWAP (HL)", 0x36, func(t *testing.T, instruction Instruction) {
		cpu.HL.SetUint16(0xC100)
		cpu.bus.Write(0xC100, 0xAB)
		if cycles := run(0xCB, 0x36); cycles != 16 {
			t.Errorf("expected 16 cycles, got %d", cycles)
		}
		if cpu.bus.Read(0xC100) != 0xBA {
			t.Errorf("expected 0xBA at 0xC100, got 0x%02X", cpu.bus.Read(0xC100))
		}
	})
}

func TestInstructionCB_Bits(t *testing.T) {
	for bit := uint8(0); bit < 8; bit++ {
		bit := bit
		opcode := 0x40 | bit<<3 | uint8(operandA)
		testInstructionCB(t, InstructionSetCB[opcode].Name(), opcode, func(t *testing.T, instruction Instruction) {
			cpu.A = 1 << bit
			cpu.setFlag(FlagCarry)
			run(0xCB, opcode)
			if cpu.F != flags(false, false, true, true) {
				t.Errorf("expected Z reset with bit %d set, got 0x%02X", bit, cpu.F)
			}

			cpu.A = ^uint8(1 << bit)
			run(0xCB, opcode)
			if cpu.F != flags(true, false, true, true) {
				t.Errorf("expected Z set with bit %d reset, got 0x%02X", bit, cpu.F)
			}
		})
	}

	testInstructionCB(t, "BIT 0, (HL)", 0x46, func(t *testing.T, instruction Instruction) {
		cpu.HL.SetUint16(0xC100)
		if cycles := run(0xCB, 0x46); cycles != 12 {
			t.Errorf("expected 12 cycles, got %d", cycles)
		}
	})
	testInstructionCB(t, "RES 7, (HL)", 0xBE, func(t *testing.T, instruction Instruction) {
		cpu.HL.SetUint16(0xC100)
		cpu.bus.Write(0xC100, 0xFF)
		if cycles := run(0xCB, 0xBE); cycles != 16 {
			t.Errorf("expected 16 cycles, got %d", cycles)
		}
		if cpu.bus.Read(0xC100) != 0x7F {
			t.Errorf("expected 0x7F at 0xC100, got 0x%02X", cpu.bus.Read(0xC100))
		}
	})
	testInstructionCB(t, "SET 3, C", 0xD9, func(t *testing.T, instruction Instruction) {
		cpu.F = 0xF0
		run(0xCB, 0xD9)
		if cpu.C != 0x08 {
			t.Errorf("expected 0x08 in C, got 0x%02X", cpu.C)
		}
		if cpu.F != 0xF0 {
			t.Errorf("expected flags to be unaffected, got 0x%02X", cpu.F)
		}
	})
}
