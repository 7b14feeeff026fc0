// Package cpu provides the Sharp LR35902 interpreter of the Game Boy.
// Instructions are dispatched through two 256 entry tables, and each
// call to Step executes a single instruction, returning the number of
// clock cycles (T-states) it took.
package cpu

import (
	"github.com/thelolagemann/dmgcore/internal/interrupts"
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304

	// interruptCycles is the time taken to service an interrupt.
	interruptCycles = 20
	// idleCycles is the time taken by a step of a halted,
	// stopped or locked CPU.
	idleCycles = 4
)

type mode = uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal mode = iota
	// ModeHalt is the halt CPU mode, the CPU waits for an
	// interrupt to become pending.
	ModeHalt
	// ModeStop is the stop CPU mode, the CPU waits for a
	// button to be pressed.
	ModeStop
	// ModeHaltBug is entered when HALT is executed with IME
	// disabled and an interrupt already pending. The next
	// opcode is read without incrementing the PC.
	ModeHaltBug
	// ModeLocked is entered after executing an undefined
	// opcode, the CPU stops until it is reset.
	ModeLocked
)

// imeChange is an EI or DI waiting to be applied.
type imeChange = uint8

const (
	imeNone imeChange = iota
	imeEnable
	imeDisable
)

// Registers holds the 8-bit registers of the CPU, as well as the
// 16-bit register pairs backed by them.
type Registers struct {
	A types.Register
	B types.Register
	C types.Register
	D types.Register
	E types.Register
	F types.Register
	H types.Register
	L types.Register

	BC *types.RegisterPair
	DE *types.RegisterPair
	HL *types.RegisterPair
	AF *types.RegisterPair
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	bus types.Device
	irq *interrupts.Service

	// ime is the interrupt master enable flag
	ime bool
	// pendingIME holds an EI or DI that takes effect at the
	// start of the next step
	pendingIME imeChange

	mode mode
	// branched is set by conditional instructions that took
	// their branch
	branched bool

	err error
	log log.Logger
}

// NewCPU creates a new CPU instance with the given bus and interrupt
// service. The bus is used to read and write to the memory.
func NewCPU(bus types.Device, irq *interrupts.Service) *CPU {
	c := &CPU{
		bus: bus,
		irq: irq,
		log: log.NewNullLogger(),
	}
	// create register pairs
	c.BC = types.NewRegisterPair(&c.B, &c.C)
	c.DE = types.NewRegisterPair(&c.D, &c.E)
	c.HL = types.NewRegisterPair(&c.H, &c.L)
	c.AF = types.NewFlagPair(&c.A, &c.F)

	return c
}

// SetLogger sets the logger used to report a locked CPU.
func (c *CPU) SetLogger(l log.Logger) {
	c.log = l
}

// Boot sets the registers to the values left behind by the DMG
// boot ROM, for when the cartridge is started without one.
func (c *CPU) Boot() {
	c.AF.SetUint16(0x01B0)
	c.BC.SetUint16(0x0013)
	c.DE.SetUint16(0x00D8)
	c.HL.SetUint16(0x014D)
	c.SP = 0xFFFE
	c.PC = 0x0100
}

// Step executes a single instruction, and services an interrupt if
// one is pending afterwards. It returns the number of clock cycles
// taken.
func (c *CPU) Step() uint8 {
	switch c.pendingIME {
	case imeEnable:
		c.ime = true
	case imeDisable:
		c.ime = false
	}
	c.pendingIME = imeNone

	switch c.mode {
	case ModeLocked:
		return idleCycles
	case ModeHalt:
		if !c.irq.HasInterrupts() {
			return idleCycles
		}
		c.mode = ModeNormal
		if c.ime {
			return idleCycles + c.serviceInterrupt()
		}
	case ModeStop:
		if c.irq.Flag&interrupts.JoypadFlag == 0 {
			return idleCycles
		}
		c.mode = ModeNormal
	}

	var opcode uint8
	if c.mode == ModeHaltBug {
		// the PC fails to increment, so this byte is read twice
		opcode = c.bus.Read(c.PC)
		c.mode = ModeNormal
	} else {
		opcode = c.readOperand()
	}

	cycles := c.execute(opcode)

	// did we get an interrupt?
	if c.ime && c.irq.HasInterrupts() && c.mode != ModeLocked {
		cycles += c.serviceInterrupt()
	}

	return cycles
}

// execute runs the instruction for opcode, returning the cycles it took.
func (c *CPU) execute(opcode uint8) uint8 {
	instruction := InstructionSet[opcode]
	if opcode == 0xCB {
		instruction = InstructionSetCB[c.readOperand()]
	}

	c.branched = false
	instruction.fn(c)
	if c.branched {
		return instruction.branchCycles
	}

	return instruction.cycles
}

// serviceInterrupt pushes the PC to the stack and jumps to the vector
// of the highest priority pending interrupt, acknowledging it.
func (c *CPU) serviceInterrupt() uint8 {
	c.ime = false
	c.mode = ModeNormal
	c.push(c.PC)
	c.PC = c.irq.Vector()

	return interruptCycles
}

// lock stops the CPU after an undefined opcode.
func (c *CPU) lock(opcode uint8) {
	address := c.PC - 1
	c.mode = ModeLocked
	if c.err == nil {
		c.err = &UnknownOpcodeError{Opcode: opcode, Address: address}
		c.log.Errorf("cpu locked: %v", c.err)
	}
}

// Err returns the error that locked the CPU, if any.
func (c *CPU) Err() error {
	return c.err
}

// Mode returns the current mode of the CPU.
func (c *CPU) Mode() uint8 {
	return c.mode
}

// IME returns the state of the interrupt master enable flag.
func (c *CPU) IME() bool {
	return c.ime
}

// readOperand reads the byte at PC, and increments PC.
func (c *CPU) readOperand() uint8 {
	value := c.bus.Read(c.PC)
	c.PC++
	return value
}

// readOperand16 reads the little endian 16-bit value at PC.
func (c *CPU) readOperand16() uint16 {
	low := c.readOperand()
	high := c.readOperand()
	return uint16(high)<<8 | uint16(low)
}

// push pushes value to the stack, high byte first so that the low
// byte ends up at the lower address.
func (c *CPU) push(value uint16) {
	c.SP--
	c.bus.Write(c.SP, uint8(value>>8))
	c.SP--
	c.bus.Write(c.SP, uint8(value))
}

// pop pops a 16-bit value off the stack.
func (c *CPU) pop() uint16 {
	low := c.bus.Read(c.SP)
	c.SP++
	high := c.bus.Read(c.SP)
	c.SP++
	return uint16(high)<<8 | uint16(low)
}
