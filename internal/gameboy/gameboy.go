// Package gameboy provides an emulation of a Nintendo Game Boy.
//
// A GameBoy owns every component of the console, and steps them
// in lockstep with the CPU: each instruction reports the clock
// cycles it took, which are then handed to the timer and the PPU.
package gameboy

import (
	"github.com/pkg/errors"
	"github.com/thelolagemann/dmgcore/internal/boot"
	"github.com/thelolagemann/dmgcore/internal/cartridge"
	"github.com/thelolagemann/dmgcore/internal/cpu"
	"github.com/thelolagemann/dmgcore/internal/interrupts"
	"github.com/thelolagemann/dmgcore/internal/joypad"
	"github.com/thelolagemann/dmgcore/internal/mmu"
	"github.com/thelolagemann/dmgcore/internal/ppu"
	"github.com/thelolagemann/dmgcore/internal/ppu/palette"
	"github.com/thelolagemann/dmgcore/internal/timer"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = cpu.ClockSpeed // 4.194304 MHz
	// CyclesPerFrame is the number of clock cycles per frame.
	CyclesPerFrame = ppu.FrameDots // 70224
)

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
type GameBoy struct {
	CPU *cpu.CPU
	MMU *mmu.MMU
	ppu *ppu.PPU

	Joypad     *joypad.State
	Interrupts *interrupts.Service
	Timer      *timer.Controller
	Cartridge  cartridge.Cartridge

	log.Logger

	bootROM        []byte
	scheme         *palette.Scheme
	skipValidation bool
}

// New returns a new GameBoy running rom. Unless a boot ROM is
// provided with WithBootROM, the GameBoy starts in the state the
// boot ROM leaves it in.
func New(rom []byte, opts ...Opt) (*GameBoy, error) {
	g := &GameBoy{
		Logger: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	var cart cartridge.Cartridge
	var err error
	if g.skipValidation {
		cart, err = cartridge.NewUnchecked(rom)
	} else {
		cart, err = cartridge.New(rom)
	}
	if err != nil {
		return nil, errors.Wrap(err, "loading cartridge")
	}
	g.Cartridge = cart
	g.Infof("cartridge %s", cart.Header().String())

	g.Interrupts = interrupts.NewService()
	g.Joypad = joypad.New(g.Interrupts)
	g.Timer = timer.NewController(g.Interrupts)
	g.ppu = ppu.New(g.Interrupts)
	if g.scheme != nil {
		g.ppu.SetScheme(*g.scheme)
	}

	g.MMU = mmu.NewMMU(cart, g.ppu, g.Timer, g.Joypad, g.Interrupts)
	g.MMU.Log = g.Logger
	g.CPU = cpu.NewCPU(g.MMU, g.Interrupts)
	g.CPU.SetLogger(g.Logger)

	if g.bootROM != nil {
		b, err := boot.LoadBootROM(g.bootROM)
		if err != nil {
			return nil, errors.Wrap(err, "loading boot rom")
		}
		g.Infof("boot rom %s (%s)", b.Model(), b.Checksum())
		g.MMU.SetBootROM(b)
		g.CPU.PC = 0x0000
	} else {
		g.CPU.Boot()
		for _, w := range postBootWrites {
			g.MMU.Write(w.address, w.value)
		}
	}

	return g, nil
}

// postBootWrites are the IO register values left behind by
// the DMG boot ROM.
var postBootWrites = []struct {
	address uint16
	value   uint8
}{
	{0xFF05, 0x00}, {0xFF06, 0x00}, {0xFF07, 0x00},
	{0xFF10, 0x80}, {0xFF11, 0xBF}, {0xFF12, 0xF3}, {0xFF14, 0xBF},
	{0xFF16, 0x3F}, {0xFF17, 0x00}, {0xFF19, 0xBF},
	{0xFF1A, 0x7F}, {0xFF1B, 0xFF}, {0xFF1C, 0x9F}, {0xFF1E, 0xBF},
	{0xFF20, 0xFF}, {0xFF21, 0x00}, {0xFF22, 0x00}, {0xFF23, 0xBF},
	{0xFF24, 0x77}, {0xFF25, 0xF3}, {0xFF26, 0xF1},
	{0xFF40, 0x91}, {0xFF42, 0x00}, {0xFF43, 0x00}, {0xFF45, 0x00},
	{0xFF47, 0xFC}, {0xFF48, 0xFF}, {0xFF49, 0xFF}, {0xFF4A, 0x00}, {0xFF4B, 0x00},
	{0xFFFF, 0x00},
}

// Step executes a single CPU instruction, and steps the timer
// and the PPU by the cycles it took. The number of cycles
// is returned.
func (g *GameBoy) Step() uint8 {
	cycles := g.CPU.Step()
	g.Timer.Step(cycles)
	g.ppu.Step(cycles)
	return cycles
}

// Frame will step the emulation until the PPU has finished
// rendering the current frame, and return it. With the LCD
// off no frame is ever completed, so the emulation is stepped
// for one frame's worth of cycles instead and the last
// completed frame is returned.
//
// If the CPU locked up on an undefined opcode, the error is
// returned along with the frame.
func (g *GameBoy) Frame() ([]uint32, error) {
	var cycles uint32
	for !g.ppu.HasFrame() {
		cycles += uint32(g.Step())
		if !g.ppu.Enabled && cycles >= CyclesPerFrame {
			break
		}
	}

	return g.ppu.Frame(), g.CPU.Err()
}

// Frames returns the number of frames the PPU has completed.
func (g *GameBoy) Frames() uint64 {
	return g.ppu.Frames()
}

// Press presses a button on the joypad.
func (g *GameBoy) Press(button joypad.Button) {
	g.Joypad.Press(button)
}

// Release releases a button on the joypad.
func (g *GameBoy) Release(button joypad.Button) {
	g.Joypad.Release(button)
}
