package cartridge

// MemoryBankedCartridge1 represents a MemoryBankedCartridge1 cartridge. This cartridge type
// supports up to 2MB of ROM and 32kB of external RAM.
//
//	0x0000 - 0x1FFF  RAM enable (0x0A in the lower nibble enables)
//	0x2000 - 0x3FFF  BANK1, lower 5 bits of the ROM bank (0 is treated as 1)
//	0x4000 - 0x5FFF  BANK2, upper 2 bits of the ROM bank or the RAM bank
//	0x6000 - 0x7FFF  MODE, selects how BANK2 is interpreted
//
// In ROM banking mode (MODE=0) BANK2 extends the ROM bank and RAM
// bank 0 is always mapped. In RAM banking mode (MODE=1) BANK2 selects
// the RAM bank and only BANK1 selects the ROM bank.
type MemoryBankedCartridge1 struct {
	baseCartridge

	ramEnabled bool
	bank1      uint8
	bank2      uint8
	ramBanking bool
}

// NewMemoryBankedCartridge1 returns a new MemoryBankedCartridge1 cartridge.
func NewMemoryBankedCartridge1(rom []byte, header *Header) *MemoryBankedCartridge1 {
	m := &MemoryBankedCartridge1{
		baseCartridge: baseCartridge{rom: rom, header: header},
		bank1:         1,
	}
	if header.CartridgeType != MBC1 {
		m.ram = make([]byte, header.RAMSize)
	}
	return m
}

// ROMBank returns the bank currently mapped at 0x4000 - 0x7FFF.
func (m *MemoryBankedCartridge1) ROMBank() uint32 {
	bank := uint32(m.bank1)
	if !m.ramBanking {
		bank |= uint32(m.bank2) << 5
	}
	return bank % m.romBanks()
}

// RAMBank returns the bank currently mapped at 0xA000 - 0xBFFF.
func (m *MemoryBankedCartridge1) RAMBank() uint32 {
	if m.ramBanking {
		return uint32(m.bank2)
	}
	return 0
}

// RAMEnabled returns true if external RAM is accessible.
func (m *MemoryBankedCartridge1) RAMEnabled() bool {
	return m.ramEnabled
}

// Read returns the value from the cartridges ROM or RAM, depending on the bank
// selected.
func (m *MemoryBankedCartridge1) Read(address uint16) uint8 {
	switch {
	case address < 0x4000:
		return m.rom[address] // first bank is always fixed
	case address < 0x8000:
		return m.readROM(m.ROMBank(), address)
	case address >= 0xA000 && address < 0xC000:
		if m.ramEnabled {
			if offset := m.ramOffset(m.RAMBank(), address); offset >= 0 {
				return m.ram[offset]
			}
		}
	}

	return openBus
}

// Write attempts to switch the ROM or RAM bank, or writes to
// the selected RAM bank.
func (m *MemoryBankedCartridge1) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		m.ramEnabled = len(m.ram) > 0 && value&0x0F == 0x0A
	case address < 0x4000:
		m.bank1 = value & 0x1F
		if m.bank1 == 0 {
			m.bank1 = 1
		}
	case address < 0x6000:
		m.bank2 = value & 0x03
	case address < 0x8000:
		m.ramBanking = value&0x01 == 0x01
	case address >= 0xA000 && address < 0xC000:
		if m.ramEnabled {
			if offset := m.ramOffset(m.RAMBank(), address); offset >= 0 {
				m.ram[offset] = value
			}
		}
	}
}
