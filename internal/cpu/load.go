package cpu

import (
	"fmt"

	"github.com/thelolagemann/dmgcore/internal/types"
)

// pairNames are the 16-bit operands encoded in bits 4-5 of the load,
// increment and add opcodes.
var pairNames = [4]string{"BC", "DE", "HL", "SP"}

// getPair returns the value of the 16-bit operand at index, where
// index 3 is SP.
func (c *CPU) getPair(index uint8) uint16 {
	switch index {
	case 0:
		return c.BC.Uint16()
	case 1:
		return c.DE.Uint16()
	case 2:
		return c.HL.Uint16()
	}
	return c.SP
}

// setPair sets the value of the 16-bit operand at index.
func (c *CPU) setPair(index uint8, value uint16) {
	switch index {
	case 0:
		c.BC.SetUint16(value)
	case 1:
		c.DE.SetUint16(value)
	case 2:
		c.HL.SetUint16(value)
	default:
		c.SP = value
	}
}

func init() {
	// 0x40 - 0x7F - LD r, r'
	for dst := operandB; dst <= operandA; dst++ {
		for src := operandB; src <= operandA; src++ {
			if dst == operandHL && src == operandHL {
				continue // 0x76 - HALT
			}
			dst, src := dst, src
			cycles := operandCycles(dst, operandCycles(src, 4, 8), 8)
			DefineInstruction(0x40|uint8(dst)<<3|uint8(src), fmt.Sprintf("LD %s, %s", dst, src), cycles, func(c *CPU) {
				c.set(dst, c.get(src))
			})
		}

		// 0x06, 0x0E, ... 0x3E - LD r, d8
		dst := dst
		DefineInstruction(0x06|uint8(dst)<<3, fmt.Sprintf("LD %s, d8", dst), operandCycles(dst, 8, 12), func(c *CPU) {
			c.set(dst, c.readOperand())
		})
	}

	for i := uint8(0); i < 4; i++ {
		index := i
		// 0x01, 0x11, 0x21, 0x31 - LD rr, d16
		DefineInstruction(0x01|index<<4, fmt.Sprintf("LD %s, d16", pairNames[index]), 12, func(c *CPU) {
			c.setPair(index, c.readOperand16())
		})
	}

	// indirect loads through BC, DE and HL with post increment/decrement
	indirect := []struct {
		name    string
		address func(c *CPU) uint16
	}{
		{"(BC)", func(c *CPU) uint16 { return c.BC.Uint16() }},
		{"(DE)", func(c *CPU) uint16 { return c.DE.Uint16() }},
		{"(HL+)", func(c *CPU) uint16 {
			hl := c.HL.Uint16()
			c.HL.SetUint16(hl + 1)
			return hl
		}},
		{"(HL-)", func(c *CPU) uint16 {
			hl := c.HL.Uint16()
			c.HL.SetUint16(hl - 1)
			return hl
		}},
	}
	for i, ind := range indirect {
		ind := ind
		// 0x02, 0x12, 0x22, 0x32 - LD (rr), A
		DefineInstruction(0x02|uint8(i)<<4, fmt.Sprintf("LD %s, A", ind.name), 8, func(c *CPU) {
			c.bus.Write(ind.address(c), c.A)
		})
		// 0x0A, 0x1A, 0x2A, 0x3A - LD A, (rr)
		DefineInstruction(0x0A|uint8(i)<<4, fmt.Sprintf("LD A, %s", ind.name), 8, func(c *CPU) {
			c.A = c.bus.Read(ind.address(c))
		})
	}

	DefineInstruction(0x08, "LD (a16), SP", 20, func(c *CPU) {
		address := c.readOperand16()
		c.bus.Write(address, uint8(c.SP))
		c.bus.Write(address+1, uint8(c.SP>>8))
	})
	DefineInstruction(0xE0, "LDH (a8), A", 12, func(c *CPU) {
		c.bus.Write(0xFF00+uint16(c.readOperand()), c.A)
	})
	DefineInstruction(0xF0, "LDH A, (a8)", 12, func(c *CPU) {
		c.A = c.bus.Read(0xFF00 + uint16(c.readOperand()))
	})
	DefineInstruction(0xE2, "LD (C), A", 8, func(c *CPU) {
		c.bus.Write(0xFF00+uint16(c.C), c.A)
	})
	DefineInstruction(0xF2, "LD A, (C)", 8, func(c *CPU) {
		c.A = c.bus.Read(0xFF00 + uint16(c.C))
	})
	DefineInstruction(0xEA, "LD (a16), A", 16, func(c *CPU) {
		c.bus.Write(c.readOperand16(), c.A)
	})
	DefineInstruction(0xFA, "LD A, (a16)", 16, func(c *CPU) {
		c.A = c.bus.Read(c.readOperand16())
	})
	DefineInstruction(0xF8, "LD HL, SP+r8", 12, func(c *CPU) {
		c.HL.SetUint16(c.addSPSigned())
	})
	DefineInstruction(0xF9, "LD SP, HL", 8, func(c *CPU) {
		c.SP = c.HL.Uint16()
	})

	// 0xC1 - 0xF5 - POP rr, PUSH rr
	stackPairs := []struct {
		name string
		pair func(c *CPU) *types.RegisterPair
	}{
		{"BC", func(c *CPU) *types.RegisterPair { return c.BC }},
		{"DE", func(c *CPU) *types.RegisterPair { return c.DE }},
		{"HL", func(c *CPU) *types.RegisterPair { return c.HL }},
		{"AF", func(c *CPU) *types.RegisterPair { return c.AF }},
	}
	for i, p := range stackPairs {
		p := p
		DefineInstruction(0xC1|uint8(i)<<4, "POP "+p.name, 12, func(c *CPU) {
			p.pair(c).SetUint16(c.pop())
		})
		DefineInstruction(0xC5|uint8(i)<<4, "PUSH "+p.name, 16, func(c *CPU) {
			c.push(p.pair(c).Uint16())
		})
	}
}

