package cpu

import "fmt"

// Instruction is a single entry of an instruction table.
type Instruction struct {
	name string
	fn   func(*CPU)

	// cycles is the time taken by the instruction, and
	// branchCycles the time taken by a conditional instruction
	// that took its branch.
	cycles       uint8
	branchCycles uint8
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// Cycles returns the number of clock cycles the instruction takes,
// or takes when branching if it is conditional.
func (i Instruction) Cycles() (cycles uint8, branchCycles uint8) {
	return i.cycles, i.branchCycles
}

var (
	// InstructionSet holds the instructions for every opcode.
	InstructionSet [256]Instruction
	// InstructionSetCB holds the instructions reached through the
	// 0xCB prefix.
	InstructionSetCB [256]Instruction
)

// DefineInstruction defines the instruction in the InstructionSet,
// with the provided opcode.
func DefineInstruction(opcode uint8, name string, cycles uint8, fn func(*CPU)) {
	InstructionSet[opcode] = Instruction{name: name, fn: fn, cycles: cycles, branchCycles: cycles}
}

// DefineConditional defines a conditional instruction, which takes
// branchCycles when its branch is taken.
func DefineConditional(opcode uint8, name string, cycles, branchCycles uint8, fn func(*CPU)) {
	InstructionSet[opcode] = Instruction{name: name, fn: fn, cycles: cycles, branchCycles: branchCycles}
}

// DefineInstructionCB defines the instruction in the InstructionSetCB.
// The cycles include the prefix byte.
func DefineInstructionCB(opcode uint8, name string, cycles uint8, fn func(*CPU)) {
	InstructionSetCB[opcode] = Instruction{name: name, fn: fn, cycles: cycles, branchCycles: cycles}
}

// operand is one of the 8-bit operands encoded in the low 3 bits of
// most opcodes. Index 6 addresses memory at HL rather than a register.
type operand uint8

const (
	operandB operand = iota
	operandC
	operandD
	operandE
	operandH
	operandL
	operandHL
	operandA
)

var operandNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

func (o operand) String() string {
	return operandNames[o&7]
}

// get returns the value of the operand.
func (c *CPU) get(o operand) uint8 {
	if o == operandHL {
		return c.bus.Read(c.HL.Uint16())
	}
	return *c.register(o)
}

// set sets the value of the operand.
func (c *CPU) set(o operand, value uint8) {
	if o == operandHL {
		c.bus.Write(c.HL.Uint16(), value)
		return
	}
	*c.register(o) = value
}

// register returns a pointer to the register for the operand.
func (c *CPU) register(o operand) *uint8 {
	switch o {
	case operandB:
		return &c.B
	case operandC:
		return &c.C
	case operandD:
		return &c.D
	case operandE:
		return &c.E
	case operandH:
		return &c.H
	case operandL:
		return &c.L
	case operandA:
		return &c.A
	}
	panic(fmt.Sprintf("invalid register index: %d", o))
}

// operandCycles returns cycles, or memoryCycles if o addresses memory.
func operandCycles(o operand, cycles, memoryCycles uint8) uint8 {
	if o == operandHL {
		return memoryCycles
	}
	return cycles
}

func init() {
	DefineInstruction(0x00, "NOP", 4, func(c *CPU) {})
	DefineInstruction(0x10, "STOP", 4, func(c *CPU) {
		c.PC++ // STOP is followed by a padding byte
		c.mode = ModeStop
	})
	DefineInstruction(0x27, "DAA", 4, func(c *CPU) {
		c.decimalAdjust()
	})
	DefineInstruction(0x2F, "CPL", 4, func(c *CPU) {
		c.A = 0xFF ^ c.A
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
	})
	DefineInstruction(0x37, "SCF", 4, func(c *CPU) {
		c.setFlag(FlagCarry)
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})
	DefineInstruction(0x3F, "CCF", 4, func(c *CPU) {
		if c.isFlagSet(FlagCarry) {
			c.clearFlag(FlagCarry)
		} else {
			c.setFlag(FlagCarry)
		}
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
	})
	DefineInstruction(0x76, "HALT", 4, func(c *CPU) {
		if !c.ime && c.irq.HasInterrupts() {
			c.mode = ModeHaltBug
		} else {
			c.mode = ModeHalt
		}
	})
	DefineInstruction(0xF3, "DI", 4, func(c *CPU) { c.pendingIME = imeDisable })
	DefineInstruction(0xFB, "EI", 4, func(c *CPU) { c.pendingIME = imeEnable })
	DefineInstruction(0xCB, "PREFIX CB", 0, func(c *CPU) {})

	for _, opcode := range disallowedOpcodes {
		opcode := opcode
		DefineInstruction(opcode, "disallowed", 4, func(c *CPU) {
			c.lock(opcode)
		})
	}
}

// disallowedOpcodes are the opcodes with no defined behaviour, executing
// any of them locks up the CPU.
var disallowedOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}
