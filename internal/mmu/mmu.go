// Package mmu provides the memory management unit of the Game Boy. The
// MMU is unaware of what the other components do, it only decodes
// addresses and delegates reads and writes to the device that owns them.
package mmu

import (
	"github.com/thelolagemann/dmgcore/internal/boot"
	"github.com/thelolagemann/dmgcore/internal/cartridge"
	"github.com/thelolagemann/dmgcore/internal/ram"
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// openBus is returned when reading an address no device answers.
const openBus = 0xFF

// IOBus is the interface that the MMU uses to communicate with the other
// components.
type IOBus = types.Device

// address holds the read and write handlers of a single address.
type address struct {
	Read  func(uint16) uint8
	Write func(uint16, uint8)
}

// MMU is the memory management unit for the Game Boy. It handles all
// memory reads and writes to the Game Boy's 64kB of memory, and
// delegates to the other components through the IOBus interface.
type MMU struct {
	// 64kB address space
	raw [0x10000]*address

	// 0x0000 - 0x00FF - BOOT ROM (256B)
	bootROM     *boot.ROM
	bootROMDone bool

	// 0x0000 - 0x7FFF - ROM (32kB)
	// 0xA000 - 0xBFFF - External RAM (8kB)
	Cart cartridge.Cartridge

	// 0x8000 - 0x9FFF - Video RAM (8kB)
	// 0xFE00 - 0xFE9F - Sprite Attribute Table (160B)
	// 0xFF40 - 0xFF4B - LCD registers
	Video IOBus

	// 0xC000 - 0xDFFF - Work RAM (8kB)
	// 0xE000 - 0xFDFF - Echo RAM (7.5kB)
	wRAM ram.RAM

	// 0xFF00 - joypad
	Joypad IOBus
	// 0xFF01 - 0xFF02 - serial transfer data and control
	sb, sc uint8
	// 0xFF04 - 0xFF07 - timer
	Timer IOBus
	// 0xFF0F, 0xFFFF - interrupt flag and enable
	Interrupts IOBus
	// 0xFF10 - 0xFF3F - sound registers and wave pattern RAM, stored
	// without any synthesis
	sound ram.RAM
	// 0xFF46 - the last value written to the DMA register
	dma uint8

	// 0xFF80 - 0xFFFE - Zero Page RAM (127B)
	zRAM ram.RAM

	Log log.Logger
}

// NewMMU returns a new MMU for the given cartridge and devices.
func NewMMU(cart cartridge.Cartridge, video, timer, joypad, interrupts IOBus) *MMU {
	m := &MMU{
		Cart:       cart,
		Video:      video,
		Timer:      timer,
		Joypad:     joypad,
		Interrupts: interrupts,

		wRAM:  ram.NewRAM(0xC000, 0x2000),
		sound: ram.NewRAM(0xFF10, 0x30),
		zRAM:  ram.NewRAM(0xFF80, 0x7F),

		Log: log.NewNullLogger(),
	}
	m.init()

	return m
}

func (m *MMU) init() {
	unmapped := &address{Read: m.readUnmapped, Write: m.writeUnmapped}
	for i := range m.raw {
		m.raw[i] = unmapped
	}

	cart := &address{Read: m.Cart.Read, Write: m.Cart.Write}
	video := &address{Read: m.Video.Read, Write: m.Video.Write}
	wram := &address{Read: m.wRAM.Read, Write: m.wRAM.Write}
	echo := &address{
		Read: func(addr uint16) uint8 {
			return m.wRAM.Read(addr - 0x2000)
		},
		Write: func(addr uint16, v uint8) {
			m.wRAM.Write(addr-0x2000, v)
		},
	}

	// 0x0000 - 0x7FFF - ROM (32kB)
	m.fill(0x0000, 0x0100, &address{Read: m.readBoot, Write: m.Cart.Write})
	m.fill(0x0100, 0x8000, cart)
	// 0x8000 - 0x9FFF - VRAM (8kB)
	m.fill(0x8000, 0xA000, video)
	// 0xA000 - 0xBFFF - external RAM (8kB)
	m.fill(0xA000, 0xC000, cart)
	// 0xC000 - 0xDFFF - internal RAM (8kB)
	m.fill(0xC000, 0xE000, wram)
	// 0xE000 - 0xFDFF - echo of 0xC000 - 0xDDFF
	m.fill(0xE000, 0xFE00, echo)
	// 0xFE00 - 0xFE9F - sprite attribute table (OAM) (160B)
	m.fill(0xFE00, 0xFEA0, video)
	// 0xFEA0 - 0xFEFF - unusable memory (96B) stays unmapped

	// 0xFF00 - 0xFF7F - I/O registers
	m.raw[types.P1] = &address{Read: m.Joypad.Read, Write: m.Joypad.Write}
	m.raw[types.SB] = &address{
		Read: func(uint16) uint8 {
			return m.sb
		},
		Write: func(_ uint16, v uint8) {
			m.sb = v
		},
	}
	m.raw[types.SC] = &address{
		Read: func(uint16) uint8 {
			return m.sc | 0x7E // only bits 0 and 7 are used
		},
		Write: func(_ uint16, v uint8) {
			m.sc = v & 0x81
		},
	}
	m.fill(types.DIV, types.TAC+1, &address{Read: m.Timer.Read, Write: m.Timer.Write})
	m.raw[types.IF] = &address{Read: m.Interrupts.Read, Write: m.Interrupts.Write}
	m.fill(types.NR10, 0xFF40, &address{Read: m.sound.Read, Write: m.sound.Write})
	m.fill(types.LCDC, types.WX+1, video)
	m.raw[types.DMA] = &address{
		Read: func(uint16) uint8 {
			return m.dma
		},
		Write: func(_ uint16, v uint8) {
			m.transferOAM(v)
		},
	}
	m.raw[types.BDIS] = &address{
		Read: func(uint16) uint8 {
			return openBus
		},
		Write: func(uint16, uint8) {
			// any write disables the boot ROM, until the next reset
			m.bootROMDone = true
		},
	}

	// 0xFF80 - 0xFFFE - Zero Page RAM (127B)
	m.fill(0xFF80, 0xFFFF, &address{Read: m.zRAM.Read, Write: m.zRAM.Write})
	// 0xFFFF - interrupt enable register
	m.raw[types.IE] = &address{Read: m.Interrupts.Read, Write: m.Interrupts.Write}
}

// fill maps the addresses start through end-1 to a.
func (m *MMU) fill(start, end uint16, a *address) {
	for i := int(start); i < int(end); i++ {
		m.raw[i] = a
	}
}

// SetBootROM maps the boot ROM over the first 256 bytes of the
// cartridge, until types.BDIS is written to.
func (m *MMU) SetBootROM(rom *boot.ROM) {
	m.bootROM = rom
	m.bootROMDone = false
}

// BootROMActive returns true if the boot ROM is currently mapped.
func (m *MMU) BootROMActive() bool {
	return m.bootROM != nil && !m.bootROMDone
}

func (m *MMU) readBoot(address uint16) uint8 {
	if m.BootROMActive() {
		return m.bootROM.Read(address)
	}

	return m.Cart.Read(address)
}

// transferOAM performs an OAM DMA transfer, copying the 160 bytes
// starting at value * 0x100 into the sprite attribute table. The
// transfer completes immediately.
func (m *MMU) transferOAM(value uint8) {
	m.dma = value
	source := uint16(value) << 8
	for i := uint16(0); i < 0xA0; i++ {
		m.Video.Write(0xFE00+i, m.Read(source+i))
	}
}

func (m *MMU) readUnmapped(address uint16) uint8 {
	m.Log.Debugf("read from unmapped address 0x%04X", address)
	return openBus
}

func (m *MMU) writeUnmapped(address uint16, value uint8) {
	m.Log.Debugf("write of 0x%02X to unmapped address 0x%04X ignored", value, address)
}

// Read returns the value at the given address. It handles all the memory
// banks, mirroring, I/O, etc.
func (m *MMU) Read(address uint16) uint8 {
	return m.raw[address].Read(address)
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	m.raw[address].Write(address, value)
}

// Read16 returns the little endian 16-bit value at the given address.
func (m *MMU) Read16(address uint16) uint16 {
	return uint16(m.Read(address)) | uint16(m.Read(address+1))<<8
}

// Write16 writes the 16-bit value at the given address, low byte first.
func (m *MMU) Write16(address uint16, value uint16) {
	m.Write(address, uint8(value))
	m.Write(address+1, uint8(value>>8))
}

var _ IOBus = (*MMU)(nil)
