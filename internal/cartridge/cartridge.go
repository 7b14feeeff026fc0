// Package cartridge provides the cartridge side of the memory bus.
// The cartridge holds the game ROM and any external RAM, and the
// memory bank controller that decides which banks are visible in
// the 0x4000 - 0x7FFF and 0xA000 - 0xBFFF windows.
package cartridge

import (
	"github.com/pkg/errors"
)

const (
	romBankSize = 0x4000
	ramBankSize = 0x2000

	// openBus is returned for reads that no bank answers.
	openBus = 0xFF
)

// Cartridge represents a basic game cartridge.
type Cartridge interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)

	Header() *Header
}

// New parses and validates the header of rom, and returns the
// Cartridge for its cartridge type.
func New(rom []byte) (Cartridge, error) {
	header, err := ParseHeader(rom)
	if err != nil {
		return nil, err
	}
	if err := header.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid header")
	}
	return newCartridge(rom, header)
}

// NewUnchecked is like New, but does not validate the logo or
// the header checksum. Useful for homebrew and test images.
func NewUnchecked(rom []byte) (Cartridge, error) {
	header, err := ParseHeader(rom)
	if err != nil {
		return nil, err
	}
	return newCartridge(rom, header)
}

func newCartridge(rom []byte, header *Header) (Cartridge, error) {
	rom = padROM(rom)

	switch header.CartridgeType {
	case ROM, ROMRAM, ROMRAMBATT:
		return NewROMCartridge(rom, header), nil
	case MBC1, MBC1RAM, MBC1RAMBATT:
		return NewMemoryBankedCartridge1(rom, header), nil
	case MBC2, MBC2BATT:
		return NewMemoryBankedCartridge2(rom, header), nil
	case MBC5, MBC5RAM, MBC5RAMBATT, MBC5RUMBLE, MBC5RUMBLERAM, MBC5RUMBLERAMBATT:
		return NewMemoryBankedCartridge5(rom, header), nil
	}

	return nil, &UnsupportedTypeError{Type: header.CartridgeType}
}

// padROM makes sure the image covers at least two whole ROM
// banks, filling the gap with the open bus value.
func padROM(rom []byte) []byte {
	size := len(rom)
	if size < 2*romBankSize {
		size = 2 * romBankSize
	}
	if rem := size % romBankSize; rem != 0 {
		size += romBankSize - rem
	}
	if size == len(rom) {
		return rom
	}
	padded := make([]byte, size)
	copy(padded, rom)
	for i := len(rom); i < size; i++ {
		padded[i] = openBus
	}
	return padded
}

// baseCartridge holds the state shared by every controller.
type baseCartridge struct {
	rom    []byte
	ram    []byte
	header *Header
}

// Header returns the parsed cartridge header.
func (c *baseCartridge) Header() *Header {
	return c.header
}

// RAM returns the external RAM of the cartridge.
func (c *baseCartridge) RAM() []byte {
	return c.ram
}

func (c *baseCartridge) romBanks() uint32 {
	return uint32(len(c.rom) / romBankSize)
}

func (c *baseCartridge) ramBanks() uint32 {
	return uint32(len(c.ram) / ramBankSize)
}

// readROM reads from the given 16kB ROM bank, wrapping the bank
// number around the number of banks present.
func (c *baseCartridge) readROM(bank uint32, address uint16) uint8 {
	bank %= c.romBanks()
	return c.rom[bank*romBankSize+uint32(address&0x3FFF)]
}

// ramOffset returns the offset into ram for the given 8kB RAM
// bank, or -1 if no RAM backs it.
func (c *baseCartridge) ramOffset(bank uint32, address uint16) int {
	if len(c.ram) == 0 {
		return -1
	}
	if len(c.ram) < ramBankSize {
		return int(address&0x1FFF) % len(c.ram)
	}
	bank %= c.ramBanks()
	return int(bank*ramBankSize + uint32(address&0x1FFF))
}
