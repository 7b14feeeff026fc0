package cartridge

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Flag describes which hardware the cartridge targets.
type Flag uint8

const (
	FlagOnlyDMG Flag = iota
	FlagSupportsCGB
	FlagOnlyCGB
)

const (
	headerStart      = 0x0100
	headerEnd        = 0x0150
	checksumStart    = 0x0134
	checksumEnd      = 0x014C
	headerChecksumAt = 0x014D
)

// Logo is the bitmap the boot ROM compares against 0x0104 - 0x0133
// before handing control to the cartridge.
var Logo = [48]byte{
	0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B, 0x03, 0x73, 0x00, 0x83,
	0x00, 0x0C, 0x00, 0x0D, 0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E,
	0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99, 0xBB, 0xBB, 0x67, 0x63,
	0x6E, 0x0E, 0xEC, 0xCC, 0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
}

var (
	ramMAP = map[uint8]uint{
		0x00: 0,
		0x01: 2 * 1024,
		0x02: 8 * 1024,
		0x03: 32 * 1024,
		0x04: 128 * 1024,
		0x05: 64 * 1024,
	}
	destinations = map[uint8]string{
		0x00: "Japanese",
		0x01: "Non-Japanese",
	}
)

// Header represents the header of a cartridge, each cartridge has a header and is
// located at the address space 0x0100-0x014F. The header contains information about
// the cartridge itself, and the hardware it expects to run on.
type Header struct {
	// 0x0104-0x0133 - Logo bitmap
	Logo [48]byte

	// 0x0134-0x0143 - Title of the game
	Title string

	// 0x013F-0x0142 - ManufacturerCode of the game
	ManufacturerCode string

	// 0x0143 - CartridgeGBMode of the game. In older cartridges this byte was part
	// of the title, but the Colour Game Boy and later models interpret this byte
	// to determine if the cartridge is compatible with the Colour Game Boy.
	CartridgeGBMode Flag

	// 0x0144-0x0145 - NewLicenseeCode of the game, only used when
	// OldLicenseeCode is 0x33.
	NewLicenseeCode string
	// 0x0146 - SGBFlag is set if the cartridge supports SGB functions.
	SGBFlag bool
	// 0x0147 - CartridgeType selects the memory bank controller.
	CartridgeType Type
	// 0x0148 - ROMSize in bytes, 32kB << n.
	ROMSize uint
	// 0x0149 - RAMSize in bytes.
	RAMSize uint
	// 0x014A - DestinationCode, 0x00 for Japan.
	DestinationCode uint8
	// 0x014B - OldLicenseeCode
	OldLicenseeCode uint8
	// 0x014C - MaskROMVersion
	MaskROMVersion uint8
	// 0x014D - HeaderChecksum
	HeaderChecksum uint8
	// 0x014E-0x014F - GlobalChecksum, stored big endian and
	// not verified by the hardware.
	GlobalChecksum uint16

	// computed over 0x0134 - 0x014C when parsed
	computedChecksum uint8
}

// ParseHeader parses the header of the given ROM image.
func ParseHeader(rom []byte) (*Header, error) {
	if len(rom) < headerEnd {
		return nil, errors.Wrapf(ErrTooSmall, "%d bytes", len(rom))
	}
	header := rom[headerStart:headerEnd]
	h := &Header{}

	copy(h.Logo[:], header[0x04:0x34])

	// parse the mode of the cartridge and parse the header accordingly
	switch header[0x43] {
	case 0x80:
		h.CartridgeGBMode = FlagSupportsCGB
	case 0xC0:
		h.CartridgeGBMode = FlagOnlyCGB
	default:
		h.CartridgeGBMode = FlagOnlyDMG
	}

	// parse the title
	if h.CartridgeGBMode == FlagOnlyDMG {
		h.Title = cleanString(header[0x34:0x44])
	} else {
		h.Title = cleanString(header[0x34:0x43])
	}

	h.ManufacturerCode = cleanString(header[0x3F:0x43])
	h.NewLicenseeCode = cleanString(header[0x44:0x46])
	h.SGBFlag = header[0x46] == 0x03
	h.CartridgeType = Type(header[0x47])

	// parse the ROM size (calculated by 32kB x (1 << n))
	h.ROMSize = (32 * 1024) << (header[0x48] & 0x0F)
	h.RAMSize = ramMAP[header[0x49]]

	h.DestinationCode = header[0x4A]
	h.OldLicenseeCode = header[0x4B]
	h.MaskROMVersion = header[0x4C]
	h.HeaderChecksum = header[0x4D]
	h.GlobalChecksum = uint16(header[0x4E])<<8 | uint16(header[0x4F])

	h.computedChecksum = ComputeChecksum(rom)

	return h, nil
}

// ComputeChecksum computes the header checksum over 0x0134 - 0x014C,
// as the boot ROM does:
//
//	x = 0
//	for i := 0x0134; i <= 0x014C; i++ {
//		x = x - rom[i] - 1
//	}
func ComputeChecksum(rom []byte) uint8 {
	var x uint8
	for _, b := range rom[checksumStart : checksumEnd+1] {
		x = x - b - 1
	}
	return x
}

// Validate checks the logo and the header checksum, returning every
// failure it finds.
func (h *Header) Validate() error {
	var result *multierror.Error
	if !bytes.Equal(h.Logo[:], Logo[:]) {
		result = multierror.Append(result, ErrInvalidLogo)
	}
	if h.computedChecksum != h.HeaderChecksum {
		result = multierror.Append(result, errors.Wrapf(ErrChecksum, "expected 0x%02X, got 0x%02X", h.HeaderChecksum, h.computedChecksum))
	}
	return result.ErrorOrNil()
}

// ROMBanks returns the number of 16kB ROM banks.
func (h *Header) ROMBanks() uint {
	return h.ROMSize / 0x4000
}

// RAMBanks returns the number of 8kB RAM banks.
func (h *Header) RAMBanks() uint {
	return h.RAMSize / 0x2000
}

// Destination returns a readable description of the destination code.
func (h *Header) Destination() string {
	if d, ok := destinations[h.DestinationCode]; ok {
		return d
	}
	return "Unknown"
}

// Licensee returns the licensee code, using the new licensee
// code if the old one refers to it.
func (h *Header) Licensee() string {
	if h.OldLicenseeCode == 0x33 {
		return h.NewLicenseeCode
	}
	return fmt.Sprintf("%02X", h.OldLicenseeCode)
}

func (h *Header) GameboyColor() bool {
	return h.CartridgeGBMode == FlagOnlyCGB || h.CartridgeGBMode == FlagSupportsCGB
}

func (h *Header) Hardware() string {
	switch h.CartridgeGBMode {
	case FlagOnlyDMG:
		return "DMG"
	case FlagSupportsCGB, FlagOnlyCGB:
		return "CGB"
	default:
		return "Unknown"
	}
}

func (h *Header) String() string {
	return fmt.Sprintf("%s | Type: %s | Mode: %s | ROM Size: %dkB | RAM Size: %dkB | Destination: %s | Version: %d",
		h.Title, h.CartridgeType, h.Hardware(), h.ROMSize/1024, h.RAMSize/1024, h.Destination(), h.MaskROMVersion)
}

// cleanString trims the padding NUL bytes of a header field.
func cleanString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return strings.TrimSpace(string(b))
}
