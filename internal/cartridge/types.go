package cartridge

import "fmt"

// Type is the cartridge type byte found at 0x0147 of the
// header, it describes which memory bank controller and
// what additional hardware is present in the cartridge.
type Type uint8

const (
	ROM                  Type = 0x00
	MBC1                 Type = 0x01
	MBC1RAM              Type = 0x02
	MBC1RAMBATT          Type = 0x03
	MBC2                 Type = 0x05
	MBC2BATT             Type = 0x06
	ROMRAM               Type = 0x08
	ROMRAMBATT           Type = 0x09
	MMM01                Type = 0x0B
	MMM01RAM             Type = 0x0C
	MMM01RAMBATT         Type = 0x0D
	MBC3TIMERBATT        Type = 0x0F
	MBC3TIMERRAMBATT     Type = 0x10
	MBC3                 Type = 0x11
	MBC3RAM              Type = 0x12
	MBC3RAMBATT          Type = 0x13
	MBC4                 Type = 0x15
	MBC4RAM              Type = 0x16
	MBC4RAMBATT          Type = 0x17
	MBC5                 Type = 0x19
	MBC5RAM              Type = 0x1A
	MBC5RAMBATT          Type = 0x1B
	MBC5RUMBLE           Type = 0x1C
	MBC5RUMBLERAM        Type = 0x1D
	MBC5RUMBLERAMBATT    Type = 0x1E
	POCKETCAMERA         Type = 0x1F
	BANDAITAMA5          Type = 0xFD
	HUDSONHUC3           Type = 0xFE
	HUDSONHUC1RAMBATTERY Type = 0xFF
)

var typeNames = map[Type]string{
	ROM:                  "ROM ONLY",
	MBC1:                 "MBC1",
	MBC1RAM:              "MBC1+RAM",
	MBC1RAMBATT:          "MBC1+RAM+BATTERY",
	MBC2:                 "MBC2",
	MBC2BATT:             "MBC2+BATTERY",
	ROMRAM:               "ROM+RAM",
	ROMRAMBATT:           "ROM+RAM+BATTERY",
	MMM01:                "MMM01",
	MMM01RAM:             "MMM01+RAM",
	MMM01RAMBATT:         "MMM01+RAM+BATTERY",
	MBC3TIMERBATT:        "MBC3+TIMER+BATTERY",
	MBC3TIMERRAMBATT:     "MBC3+TIMER+RAM+BATTERY",
	MBC3:                 "MBC3",
	MBC3RAM:              "MBC3+RAM",
	MBC3RAMBATT:          "MBC3+RAM+BATTERY",
	MBC4:                 "MBC4",
	MBC4RAM:              "MBC4+RAM",
	MBC4RAMBATT:          "MBC4+RAM+BATTERY",
	MBC5:                 "MBC5",
	MBC5RAM:              "MBC5+RAM",
	MBC5RAMBATT:          "MBC5+RAM+BATTERY",
	MBC5RUMBLE:           "MBC5+RUMBLE",
	MBC5RUMBLERAM:        "MBC5+RUMBLE+RAM",
	MBC5RUMBLERAMBATT:    "MBC5+RUMBLE+RAM+BATTERY",
	POCKETCAMERA:         "POCKET CAMERA",
	BANDAITAMA5:          "BANDAI TAMA5",
	HUDSONHUC3:           "HuC3",
	HUDSONHUC1RAMBATTERY: "HuC1+RAM+BATTERY",
}

// String returns the documented name of the cartridge type,
// e.g. "MBC1+RAM+BATTERY".
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN (0x%02X)", uint8(t))
}

// HasRAM returns true if the cartridge type carries external RAM.
func (t Type) HasRAM() bool {
	switch t {
	case MBC1RAM, MBC1RAMBATT, MBC2, MBC2BATT, ROMRAM, ROMRAMBATT, MBC5RAM, MBC5RAMBATT,
		MBC5RUMBLERAM, MBC5RUMBLERAMBATT:
		return true
	}
	return false
}
