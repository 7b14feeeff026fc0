package cartridge

// MemoryBankedCartridge5 represents a MemoryBankedCartridge5 cartridge. It
// supports up to 8MB of ROM through a 9-bit bank number (bank 0 may be
// mapped into the switchable window) and up to 128kB of RAM.
type MemoryBankedCartridge5 struct {
	baseCartridge

	ramEnabled bool
	romBank    uint32
	ramBank    uint32
}

func NewMemoryBankedCartridge5(rom []byte, header *Header) *MemoryBankedCartridge5 {
	m := &MemoryBankedCartridge5{
		baseCartridge: baseCartridge{rom: rom, header: header},
		romBank:       1,
	}
	if header.CartridgeType.HasRAM() {
		m.ram = make([]byte, header.RAMSize)
	}
	return m
}

func (m *MemoryBankedCartridge5) Read(address uint16) uint8 {
	switch {
	case address < 0x4000:
		return m.rom[address] // first bank is always fixed
	case address < 0x8000:
		return m.readROM(m.romBank, address)
	case address >= 0xA000 && address < 0xC000:
		if m.ramEnabled {
			if offset := m.ramOffset(m.ramBank, address); offset >= 0 {
				return m.ram[offset]
			}
		}
	}
	return openBus
}

func (m *MemoryBankedCartridge5) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		m.ramEnabled = len(m.ram) > 0 && value&0x0F == 0x0A
	case address < 0x3000:
		// ROM bank number (lower 8 bits)
		m.romBank = m.romBank&0x100 | uint32(value)
	case address < 0x4000:
		// ROM bank number (upper 1 bit)
		m.romBank = m.romBank&0xFF | uint32(value&0x01)<<8
	case address < 0x6000:
		m.ramBank = uint32(value & 0x0F)
	case address >= 0xA000 && address < 0xC000:
		if m.ramEnabled {
			if offset := m.ramOffset(m.ramBank, address); offset >= 0 {
				m.ram[offset] = value
			}
		}
	}
}
