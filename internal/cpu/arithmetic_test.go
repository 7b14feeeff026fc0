package cpu

import (
	"testing"
)

// flags builds the value of the F register.
func flags(zero, subtract, halfCarry, carry bool) uint8 {
	var f uint8
	if zero {
		f |= 1 << FlagZero
	}
	if subtract {
		f |= 1 << FlagSubtract
	}
	if halfCarry {
		f |= 1 << FlagHalfCarry
	}
	if carry {
		f |= 1 << FlagCarry
	}
	return f
}

func TestInstruction_AddExhaustive(t *testing.T) {
	cpu = newTestCPU()
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			for carry := 0; carry < 2; carry++ {
				cpu.A = uint8(a)
				cpu.F = flags(false, false, false, carry == 1)
				cpu.add(uint8(b), true)

				sum := a + b + carry
				expected := flags(sum&0xFF == 0, false, a&0xF+b&0xF+carry > 0xF, sum > 0xFF)
				if cpu.A != uint8(sum) || cpu.F != expected {
					t.Fatalf("ADC 0x%02X + 0x%02X + %d: expected A 0x%02X F 0x%02X, got A 0x%02X F 0x%02X",
						a, b, carry, uint8(sum), expected, cpu.A, cpu.F)
				}
			}
		}
	}
}

func TestInstruction_CompareExhaustive(t *testing.T) {
	cpu = newTestCPU()
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			cpu.A = uint8(a)
			cpu.compare(uint8(b))

			expected := flags(a == b, true, a&0xF < b&0xF, a < b)
			if cpu.A != uint8(a) || cpu.F != expected {
				t.Fatalf("CP 0x%02X, 0x%02X: expected F 0x%02X, got 0x%02X", a, b, expected, cpu.F)
			}

			// SUB sets the same flags
			cpu.sub(uint8(b), false)
			if cpu.A != uint8(a-b) || cpu.F != expected {
				t.Fatalf("SUB 0x%02X, 0x%02X: expected A 0x%02X F 0x%02X, got A 0x%02X F 0x%02X",
					a, b, uint8(a-b), expected, cpu.A, cpu.F)
			}
		}
	}
}

func TestInstruction_ALU(t *testing.T) {
	type test struct {
		name     string
		opcode   uint8
		a, b, f  uint8
		expected uint8
		flags    uint8
	}
	tests := []test{
		{"ADD A, B", 0x80, 0x3A, 0xC6, 0x00, 0x00, flags(true, false, true, true)},
		{"ADC A, B", 0x88, 0xE1, 0x0F, flags(false, false, false, true), 0xF1, flags(false, false, true, false)},
		{"SUB B", 0x90, 0x3E, 0x3E, 0x00, 0x00, flags(true, true, false, false)},
		{"SBC A, B", 0x98, 0x3B, 0x2A, flags(false, false, false, true), 0x10, flags(false, true, false, false)},
		{"SBC A, B", 0x98, 0x3B, 0x4F, flags(false, false, false, true), 0xEB, flags(false, true, true, true)},
		{"AND B", 0xA0, 0x5A, 0x3F, 0x00, 0x1A, flags(false, false, true, false)},
		{"XOR B", 0xA8, 0xFF, 0xFF, 0x00, 0x00, flags(true, false, false, false)},
		{"OR B", 0xB0, 0x5A, 0x03, 0x00, 0x5B, 0x00},
		{"CP B", 0xB8, 0x3C, 0x40, 0x00, 0x3C, flags(false, true, false, true)},
	}
	for _, tt := range tests {
		tt := tt
		testInstruction(t, tt.name, tt.opcode, func(t *testing.T, instruction Instruction) {
			cpu.A = tt.a
			cpu.B = tt.b
			cpu.F = tt.f
			if cycles := run(tt.opcode); cycles != 4 {
				t.Errorf("expected 4 cycles, got %d", cycles)
			}
			if cpu.A != tt.expected {
				t.Errorf("expected 0x%02X in A, got 0x%02X", tt.expected, cpu.A)
			}
			if cpu.F != tt.flags {
				t.Errorf("expected flags 0x%02X, got 0x%02X", tt.flags, cpu.F)
			}
		})
	}

	testInstruction(t, "ADD A, (HL)", 0x86, func(t *testing.T, instruction Instruction) {
		cpu.A = 0x01
		cpu.HL.SetUint16(0xC100)
		cpu.bus.Write(0xC100, 0x02)
		if cycles := run(0x86); cycles != 8 {
			t.Errorf("expected 8 cycles, got %d", cycles)
		}
		if cpu.A != 0x03 {
			t.Errorf("expected 0x03 in A, got 0x%02X", cpu.A)
		}
	})
	testInstruction(t, "XOR d8", 0xEE, func(t *testing.T, instruction Instruction) {
		cpu.A = 0x0F
		run(0xEE, 0xFF)
		if cpu.A != 0xF0 || cpu.PC != 0xC002 {
			t.Errorf("expected 0xF0 in A and PC 0xC002, got 0x%02X 0x%04X", cpu.A, cpu.PC)
		}
	})
}

func TestInstruction_IncrementDecrement(t *testing.T) {
	testInstruction(t, "INC B", 0x04, func(t *testing.T, instruction Instruction) {
		cpu.B = 0x0F
		cpu.F = flags(false, true, false, true)
		run(0x04)
		if cpu.B != 0x10 {
			t.Errorf("expected 0x10 in B, got 0x%02X", cpu.B)
		}
		if cpu.F != flags(false, false, true, true) {
			t.Errorf("expected H set and C preserved, got 0x%02X", cpu.F)
		}
	})
	testInstruction(t, "INC A", 0x3C, func(t *testing.T, instruction Instruction) {
		cpu.A = 0xFF
		run(0x3C)
		if cpu.A != 0x00 || cpu.F != flags(true, false, true, false) {
			t.Errorf("expected A 0x00 with Z and H, got 0x%02X 0x%02X", cpu.A, cpu.F)
		}
	})
	testInstruction(t, "DEC C", 0x0D, func(t *testing.T, instruction Instruction) {
		cpu.C = 0x10
		run(0x0D)
		if cpu.C != 0x0F || cpu.F != flags(false, true, true, false) {
			t.Errorf("expected C 0x0F with N and H, got 0x%02X 0x%02X", cpu.C, cpu.F)
		}
	})
	testInstruction(t, "DEC (HL)", 0x35, func(t *testing.T, instruction Instruction) {
		cpu.HL.SetUint16(0xC100)
		cpu.bus.Write(0xC100, 0x01)
		if cycles := run(0x35); cycles != 12 {
			t.Errorf("expected 12 cycles, got %d", cycles)
		}
		if cpu.bus.Read(0xC100) != 0x00 || !cpu.isFlagSet(FlagZero) {
			t.Errorf("expected 0x00 at 0xC100 with Z set")
		}
	})
	testInstruction(t, "INC SP", 0x33, func(t *testing.T, instruction Instruction) {
		cpu.SP = 0xFFFF
		cpu.F = 0x00
		run(0x33)
		if cpu.SP != 0x0000 || cpu.F != 0x00 {
			t.Errorf("expected SP to wrap without flags, got 0x%04X 0x%02X", cpu.SP, cpu.F)
		}
	})
	testInstruction(t, "DEC BC", 0x0B, func(t *testing.T, instruction Instruction) {
		cpu.BC.SetUint16(0x0000)
		run(0x0B)
		if cpu.BC.Uint16() != 0xFFFF {
			t.Errorf("expected BC to wrap to 0xFFFF, got 0x%04X", cpu.BC.Uint16())
		}
	})
}

func TestInstruction_Add16(t *testing.T) {
	testInstruction(t, "ADD HL, DE", 0x19, func(t *testing.T, instruction Instruction) {
		cpu.HL.SetUint16(0x8A23)
		cpu.DE.SetUint16(0x0605)
		cpu.F = flags(true, true, false, false)
		run(0x19)
		if cpu.HL.Uint16() != 0x9028 {
			t.Errorf("expected 0x9028 in HL, got 0x%04X", cpu.HL.Uint16())
		}
		if cpu.F != flags(true, false, true, false) {
			t.Errorf("expected Z preserved and H set, got 0x%02X", cpu.F)
		}
	})
	testInstruction(t, "ADD HL, HL", 0x29, func(t *testing.T, instruction Instruction) {
		cpu.HL.SetUint16(0x8A23)
		run(0x29)
		if cpu.HL.Uint16() != 0x1446 || cpu.F != flags(false, false, true, true) {
			t.Errorf("expected 0x1446 with H and C, got 0x%04X 0x%02X", cpu.HL.Uint16(), cpu.F)
		}
	})
	testInstruction(t, "ADD SP, r8", 0xE8, func(t *testing.T, instruction Instruction) {
		cpu.SP = 0xFFF8
		if cycles := run(0xE8, 0x02); cycles != 16 {
			t.Errorf("expected 16 cycles, got %d", cycles)
		}
		if cpu.SP != 0xFFFA || cpu.F != 0x00 {
			t.Errorf("expected SP 0xFFFA without flags, got 0x%04X 0x%02X", cpu.SP, cpu.F)
		}
	})
}

func TestInstruction_Misc(t *testing.T) {
	testInstruction(t, "DAA", 0x27, func(t *testing.T, instruction Instruction) {
		// 0x15 + 0x27 = 0x3C, adjusted to 0x42
		cpu.A = 0x15
		cpu.add(0x27, false)
		run(0x27)
		if cpu.A != 0x42 || cpu.F != 0x00 {
			t.Errorf("expected 0x42 without flags, got 0x%02X 0x%02X", cpu.A, cpu.F)
		}
	})
	testInstruction(t, "DAA subtract", 0x27, func(t *testing.T, instruction Instruction) {
		// 0x42 - 0x15 = 0x2D, adjusted to 0x27
		cpu.A = 0x42
		cpu.sub(0x15, false)
		run(0x27)
		if cpu.A != 0x27 || cpu.F != flags(false, true, false, false) {
			t.Errorf("expected 0x27 with N, got 0x%02X 0x%02X", cpu.A, cpu.F)
		}
	})
	testInstruction(t, "DAA carry", 0x27, func(t *testing.T, instruction Instruction) {
		// 0x99 + 0x01 = 0x9A, adjusted to 0x00 with carry
		cpu.A = 0x99
		cpu.add(0x01, false)
		run(0x27)
		if cpu.A != 0x00 || cpu.F != flags(true, false, false, true) {
			t.Errorf("expected 0x00 with Z and C, got 0x%02X 0x%02X", cpu.A, cpu.F)
		}
	})
	testInstruction(t, "CPL", 0x2F, func(t *testing.T, instruction Instruction) {
		cpu.A = 0x35
		run(0x2F)
		if cpu.A != 0xCA || cpu.F != flags(false, true, true, false) {
			t.Errorf("expected 0xCA with N and H, got 0x%02X 0x%02X", cpu.A, cpu.F)
		}
	})
	testInstruction(t, "SCF", 0x37, func(t *testing.T, instruction Instruction) {
		cpu.F = flags(true, true, true, false)
		run(0x37)
		if cpu.F != flags(true, false, false, true) {
			t.Errorf("expected Z and C, got 0x%02X", cpu.F)
		}
	})
	testInstruction(t, "CCF", 0x3F, func(t *testing.T, instruction Instruction) {
		cpu.F = flags(false, true, true, true)
		run(0x3F)
		if cpu.F != 0x00 {
			t.Errorf("expected carry to be complemented, got 0x%02X", cpu.F)
		}
	})
}

func TestInstruction_RotateAccumulator(t *testing.T) {
	testInstruction(t, "RLCA", 0x07, func(t *testing.T, instruction Instruction) {
		cpu.A = 0x85
		run(0x07)
		if cpu.A != 0x0B || cpu.F != flags(false, false, false, true) {
			t.Errorf("expected 0x0B with C, got 0x%02X 0x%02X", cpu.A, cpu.F)
		}
	})
	testInstruction(t, "RLA", 0x17, func(t *testing.T, instruction Instruction) {
		// the result is zero, but Z is always reset
		cpu.A = 0x80
		run(0x17)
		if cpu.A != 0x00 || cpu.F != flags(false, false, false, true) {
			t.Errorf("expected 0x00 with only C, got 0x%02X 0x%02X", cpu.A, cpu.F)
		}
	})
	testInstruction(t, "RRCA", 0x0F, func(t *testing.T, instruction Instruction) {
		cpu.A = 0x3B
		run(0x0F)
		if cpu.A != 0x9D || cpu.F != flags(false, false, false, true) {
			t.Errorf("expected 0x9D with C, got 0x%02X 0x%02X", cpu.A, cpu.F)
		}
	})
	testInstruction(t, "RRA", 0x1F, func(t *testing.T, instruction Instruction) {
		cpu.A = 0x81
		cpu.F = 0x00
		run(0x1F)
		if cpu.A != 0x40 || cpu.F != flags(false, false, false, true) {
			t.Errorf("expected 0x40 with C, got 0x%02X 0x%02X", cpu.A, cpu.F)
		}
	})
}
