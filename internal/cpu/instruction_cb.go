package cpu

import (
	"fmt"
)

// cbOperations are the rotates and shifts of the CB prefixed
// instructions 0x00 - 0x3F, in encoding order.
var cbOperations = [8]struct {
	name string
	fn   func(c *CPU, n uint8) uint8
}{
	{"RLC", (*CPU).rotateLeftCarry},
	{"RRC", (*CPU).rotateRightCarry},
	{"RL", (*CPU).rotateLeftThroughCarry},
	{"RR", (*CPU).rotateRightThroughCarry},
	{"SLA", (*CPU).shiftLeftArithmetic},
	{"SRA", (*CPU).shiftRightArithmetic},
	{"SWAP", (*CPU).swap},
	{"SRL", (*CPU).shiftRightLogical},
}

func init() {
	// loop through each register (B, C, D, E, H, L, (HL), A)
	for reg := operandB; reg <= operandA; reg++ {
		reg := reg
		// (HL) takes the cycles of an extra read and write
		cycles := operandCycles(reg, 8, 16)

		// 0x00 - 0x3F - rotates and shifts
		for op := uint8(0); op < 8; op++ {
			operation := cbOperations[op]
			DefineInstructionCB(op<<3|uint8(reg), fmt.Sprintf("%s %s", operation.name, reg), cycles, func(c *CPU) {
				c.set(reg, operation.fn(c, c.get(reg)))
			})
		}

		for bit := uint8(0); bit < 8; bit++ {
			bit := bit
			// 0x40 - 0x7F - BIT n, r, only reads (HL)
			DefineInstructionCB(0x40|bit<<3|uint8(reg), fmt.Sprintf("BIT %d, %s", bit, reg), operandCycles(reg, 8, 12), func(c *CPU) {
				c.testBit(c.get(reg), bit)
			})
			// 0x80 - 0xBF - RES n, r
			DefineInstructionCB(0x80|bit<<3|uint8(reg), fmt.Sprintf("RES %d, %s", bit, reg), cycles, func(c *CPU) {
				c.set(reg, c.get(reg)&^(1<<bit))
			})
			// 0xC0 - 0xFF - SET n, r
			DefineInstructionCB(0xC0|bit<<3|uint8(reg), fmt.Sprintf("SET %d, %s", bit, reg), cycles, func(c *CPU) {
				c.set(reg, c.get(reg)|1<<bit)
			})
		}
	}
}
