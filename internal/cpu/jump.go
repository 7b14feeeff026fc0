package cpu

import "fmt"

// conditions are the branch conditions encoded in bits 3-4 of the
// conditional jump, call and return opcodes.
var conditions = [4]struct {
	name string
	test func(c *CPU) bool
}{
	{"NZ", func(c *CPU) bool { return !c.isFlagSet(FlagZero) }},
	{"Z", func(c *CPU) bool { return c.isFlagSet(FlagZero) }},
	{"NC", func(c *CPU) bool { return !c.isFlagSet(FlagCarry) }},
	{"C", func(c *CPU) bool { return c.isFlagSet(FlagCarry) }},
}

// jumpRelative reads a signed offset and adds it to the PC, which
// already points past the operand.
func (c *CPU) jumpRelative(condition bool) {
	offset := int8(c.readOperand())
	if condition {
		c.PC = uint16(int32(c.PC) + int32(offset))
		c.branched = true
	}
}

// jumpAbsolute reads an address and jumps to it.
func (c *CPU) jumpAbsolute(condition bool) {
	address := c.readOperand16()
	if condition {
		c.PC = address
		c.branched = true
	}
}

// call reads an address, pushes the PC and jumps to the address.
func (c *CPU) call(condition bool) {
	address := c.readOperand16()
	if condition {
		c.push(c.PC)
		c.PC = address
		c.branched = true
	}
}

// ret pops the PC off the stack.
func (c *CPU) ret(condition bool) {
	if condition {
		c.PC = c.pop()
		c.branched = true
	}
}

func init() {
	DefineInstruction(0x18, "JR r8", 12, func(c *CPU) {
		c.jumpRelative(true)
	})
	DefineInstruction(0xC3, "JP a16", 16, func(c *CPU) {
		c.jumpAbsolute(true)
	})
	DefineInstruction(0xE9, "JP HL", 4, func(c *CPU) {
		c.PC = c.HL.Uint16()
	})
	DefineInstruction(0xCD, "CALL a16", 24, func(c *CPU) {
		c.call(true)
	})
	DefineInstruction(0xC9, "RET", 16, func(c *CPU) {
		c.ret(true)
	})
	DefineInstruction(0xD9, "RETI", 16, func(c *CPU) {
		c.ret(true)
		c.ime = true
		c.pendingIME = imeNone
	})

	for i, cond := range conditions {
		test := cond.test
		index := uint8(i) << 3

		// 0x20, 0x28, 0x30, 0x38 - JR cc, r8
		DefineConditional(0x20|index, fmt.Sprintf("JR %s, r8", cond.name), 8, 12, func(c *CPU) {
			c.jumpRelative(test(c))
		})
		// 0xC2, 0xCA, 0xD2, 0xDA - JP cc, a16
		DefineConditional(0xC2|index, fmt.Sprintf("JP %s, a16", cond.name), 12, 16, func(c *CPU) {
			c.jumpAbsolute(test(c))
		})
		// 0xC4, 0xCC, 0xD4, 0xDC - CALL cc, a16
		DefineConditional(0xC4|index, fmt.Sprintf("CALL %s, a16", cond.name), 12, 24, func(c *CPU) {
			c.call(test(c))
		})
		// 0xC0, 0xC8, 0xD0, 0xD8 - RET cc
		DefineConditional(0xC0|index, fmt.Sprintf("RET %s", cond.name), 8, 20, func(c *CPU) {
			c.ret(test(c))
		})
	}

	// 0xC7, 0xCF, ... 0xFF - RST n
	for i := uint8(0); i < 8; i++ {
		vector := uint16(i) * 8
		DefineInstruction(0xC7|i<<3, fmt.Sprintf("RST %02XH", vector), 16, func(c *CPU) {
			c.push(c.PC)
			c.PC = vector
		})
	}
}
