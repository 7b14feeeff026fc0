package gameboy

import (
	"github.com/thelolagemann/dmgcore/internal/ppu/palette"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance before its hardware is assembled.
type Opt func(gb *GameBoy)

// WithLogger sets the logger used by the emulator and
// its components.
func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithBootROM sets the boot ROM for the emulator. The
// emulator will start executing at 0x0000 with every
// register cleared, instead of at 0x0100 with the
// registers set to the values upon completion of the
// boot ROM.
func WithBootROM(rom []byte) Opt {
	return func(gb *GameBoy) {
		gb.bootROM = rom
	}
}

// WithPalette sets the colours used to render the four
// shades of the display.
func WithPalette(scheme palette.Scheme) Opt {
	return func(gb *GameBoy) {
		gb.scheme = &scheme
	}
}

// SkipHeaderValidation accepts cartridges with an invalid
// logo or header checksum.
func SkipHeaderValidation() Opt {
	return func(gb *GameBoy) {
		gb.skipValidation = true
	}
}
