package cartridge

// ROMCartridge represents a ROM cartridge. This cartridge type is the simplest
// cartridge type and has no MBC, the whole 32kB image is mapped directly.
// The ROM+RAM variants map up to 8kB of RAM at 0xA000 - 0xBFFF.
type ROMCartridge struct {
	baseCartridge
}

// NewROMCartridge returns a new ROM cartridge.
func NewROMCartridge(rom []byte, header *Header) *ROMCartridge {
	r := &ROMCartridge{baseCartridge{rom: rom, header: header}}
	if header.CartridgeType != ROM && header.RAMSize > 0 {
		r.ram = make([]byte, header.RAMSize)
	}
	return r
}

// Read returns the value at the given address.
func (r *ROMCartridge) Read(address uint16) uint8 {
	switch {
	case address < 0x8000:
		return r.rom[address]
	case address >= 0xA000 && address < 0xC000:
		if offset := r.ramOffset(0, address); offset >= 0 {
			return r.ram[offset]
		}
	}
	return openBus
}

// Write writes the value to the given address. Writes to the
// ROM area are ignored.
func (r *ROMCartridge) Write(address uint16, value uint8) {
	if address >= 0xA000 && address < 0xC000 {
		if offset := r.ramOffset(0, address); offset >= 0 {
			r.ram[offset] = value
		}
	}
}
