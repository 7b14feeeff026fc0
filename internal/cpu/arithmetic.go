package cpu

import "fmt"

// aluOperations are the 8-bit operations on the A Register, in the
// order they are encoded in bits 3-5 of opcodes 0x80 - 0xBF.
var aluOperations = [8]struct {
	name string
	fn   func(c *CPU, n uint8)
}{
	{"ADD A,", func(c *CPU, n uint8) { c.add(n, false) }},
	{"ADC A,", func(c *CPU, n uint8) { c.add(n, true) }},
	{"SUB", func(c *CPU, n uint8) { c.sub(n, false) }},
	{"SBC A,", func(c *CPU, n uint8) { c.sub(n, true) }},
	{"AND", (*CPU).and},
	{"XOR", (*CPU).xor},
	{"OR", (*CPU).or},
	{"CP", (*CPU).compare},
}

func init() {
	for op := uint8(0); op < 8; op++ {
		operation := aluOperations[op]

		// 0x80 - 0xBF - ALU A, r
		for src := operandB; src <= operandA; src++ {
			src := src
			DefineInstruction(0x80|op<<3|uint8(src), fmt.Sprintf("%s %s", operation.name, src), operandCycles(src, 4, 8), func(c *CPU) {
				operation.fn(c, c.get(src))
			})
		}

		// 0xC6, 0xCE, ... 0xFE - ALU A, d8
		DefineInstruction(0xC6|op<<3, fmt.Sprintf("%s d8", operation.name), 8, func(c *CPU) {
			operation.fn(c, c.readOperand())
		})
	}

	for reg := operandB; reg <= operandA; reg++ {
		reg := reg
		// 0x04, 0x0C, ... 0x3C - INC r
		DefineInstruction(0x04|uint8(reg)<<3, fmt.Sprintf("INC %s", reg), operandCycles(reg, 4, 12), func(c *CPU) {
			c.set(reg, c.increment(c.get(reg)))
		})
		// 0x05, 0x0D, ... 0x3D - DEC r
		DefineInstruction(0x05|uint8(reg)<<3, fmt.Sprintf("DEC %s", reg), operandCycles(reg, 4, 12), func(c *CPU) {
			c.set(reg, c.decrement(c.get(reg)))
		})
	}

	for i := uint8(0); i < 4; i++ {
		index := i
		// 0x03, 0x13, 0x23, 0x33 - INC rr
		DefineInstruction(0x03|index<<4, fmt.Sprintf("INC %s", pairNames[index]), 8, func(c *CPU) {
			c.setPair(index, c.getPair(index)+1)
		})
		// 0x0B, 0x1B, 0x2B, 0x3B - DEC rr
		DefineInstruction(0x0B|index<<4, fmt.Sprintf("DEC %s", pairNames[index]), 8, func(c *CPU) {
			c.setPair(index, c.getPair(index)-1)
		})
		// 0x09, 0x19, 0x29, 0x39 - ADD HL, rr
		DefineInstruction(0x09|index<<4, fmt.Sprintf("ADD HL, %s", pairNames[index]), 8, func(c *CPU) {
			c.HL.SetUint16(c.addUint16(c.HL.Uint16(), c.getPair(index)))
		})
	}

	DefineInstruction(0xE8, "ADD SP, r8", 16, func(c *CPU) {
		c.SP = c.addSPSigned()
	})

	DefineInstruction(0x07, "RLCA", 4, func(c *CPU) {
		c.rotateAccumulator((*CPU).rotateLeftCarry)
	})
	DefineInstruction(0x0F, "RRCA", 4, func(c *CPU) {
		c.rotateAccumulator((*CPU).rotateRightCarry)
	})
	DefineInstruction(0x17, "RLA", 4, func(c *CPU) {
		c.rotateAccumulator((*CPU).rotateLeftThroughCarry)
	})
	DefineInstruction(0x1F, "RRA", 4, func(c *CPU) {
		c.rotateAccumulator((*CPU).rotateRightThroughCarry)
	})
}
