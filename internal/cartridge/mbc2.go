package cartridge

// MemoryBankedCartridge2 represents a MemoryBankedCartridge2 cartridge. It has
// 512 half-bytes of built in RAM, and supports up to 16 ROM banks. Bit 8 of
// the address written to in 0x0000 - 0x3FFF decides whether the write
// controls the RAM gate (clear) or the ROM bank (set).
type MemoryBankedCartridge2 struct {
	baseCartridge

	ramg bool
	romb uint8
}

// NewMemoryBankedCartridge2 returns a new MemoryBankedCartridge2 cartridge.
func NewMemoryBankedCartridge2(rom []byte, header *Header) *MemoryBankedCartridge2 {
	return &MemoryBankedCartridge2{
		baseCartridge: baseCartridge{rom: rom, ram: make([]byte, 512), header: header},
		romb:          0x01,
	}
}

// Read returns the value from the cartridges ROM or RAM, depending on the bank
// selected. The RAM is mirrored across the whole 0xA000 - 0xBFFF window, and
// only the lower nibble is backed.
func (m *MemoryBankedCartridge2) Read(address uint16) uint8 {
	switch {
	case address < 0x4000:
		return m.rom[address]
	case address < 0x8000:
		return m.readROM(uint32(m.romb), address)
	case address >= 0xA000 && address < 0xC000:
		if m.ramg {
			return m.ram[address&0x01FF] | 0xF0
		}
	}
	return openBus
}

func (m *MemoryBankedCartridge2) Write(address uint16, value uint8) {
	switch {
	case address < 0x4000:
		if address&0x100 == 0x100 {
			m.romb = value & 0x0F
			if m.romb == 0 {
				m.romb = 1
			}
		} else {
			m.ramg = value&0x0F == 0x0A
		}
	case address >= 0xA000 && address < 0xC000:
		if m.ramg {
			m.ram[address&0x01FF] = value & 0x0F
		}
	}
}
