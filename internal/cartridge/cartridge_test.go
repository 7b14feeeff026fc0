package cartridge

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
)

// newTestROM builds a ROM image of the given number of 16kB banks with
// a valid header. Every byte of a bank holds the bank number.
func newTestROM(t Type, banks int, ramCode uint8) []byte {
	rom := make([]byte, banks*romBankSize)
	for bank := 0; bank < banks; bank++ {
		for i := 0; i < romBankSize; i++ {
			rom[bank*romBankSize+i] = uint8(bank)
		}
	}
	for i := 0x100; i < 0x150; i++ {
		rom[i] = 0
	}
	copy(rom[0x104:], Logo[:])
	copy(rom[0x134:], "TESTROM")
	rom[0x147] = uint8(t)
	for code := uint8(0); code < 9; code++ {
		if 32*1024<<code == banks*romBankSize {
			rom[0x148] = code
		}
	}
	rom[0x149] = ramCode
	rom[0x14D] = ComputeChecksum(rom)
	return rom
}

func TestComputeChecksum(t *testing.T) {
	rom := make([]byte, 0x8000)
	for i := 0x134; i <= 0x14C; i++ {
		rom[i] = uint8(i * 7)
	}
	sum := 0
	for i := 0x134; i <= 0x14C; i++ {
		sum += int(rom[i]) + 1
	}
	expected := uint8(-sum & 0xFF)
	if got := ComputeChecksum(rom); got != expected {
		t.Errorf("expected checksum 0x%02X, got 0x%02X", expected, got)
	}
}

func TestHeader_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		h, err := ParseHeader(newTestROM(MBC1, 4, 0))
		if err != nil {
			t.Fatal(err)
		}
		if err := h.Validate(); err != nil {
			t.Errorf("expected header to be valid, got %v", err)
		}
	})
	t.Run("checksum mismatch", func(t *testing.T) {
		rom := newTestROM(ROM, 2, 0)
		rom[0x14D]++
		_, err := New(rom)
		if !errors.Is(err, ErrChecksum) {
			t.Errorf("expected checksum error, got %v", err)
		}
	})
	t.Run("logo and checksum mismatch", func(t *testing.T) {
		rom := newTestROM(ROM, 2, 0)
		rom[0x104] = 0x00
		rom[0x14D]++
		h, err := ParseHeader(rom)
		if err != nil {
			t.Fatal(err)
		}
		err = h.Validate()
		var merr *multierror.Error
		if !errors.As(err, &merr) || len(merr.Errors) != 2 {
			t.Fatalf("expected 2 errors, got %v", err)
		}
		if !errors.Is(err, ErrInvalidLogo) {
			t.Errorf("expected logo error, got %v", err)
		}
	})
	t.Run("unchecked", func(t *testing.T) {
		rom := newTestROM(ROM, 2, 0)
		rom[0x14D]++
		if _, err := NewUnchecked(rom); err != nil {
			t.Errorf("expected unchecked load to succeed, got %v", err)
		}
	})
	t.Run("too small", func(t *testing.T) {
		if _, err := New(make([]byte, 0x100)); !errors.Is(err, ErrTooSmall) {
			t.Errorf("expected too small error, got %v", err)
		}
	})
}

func TestHeader_Fields(t *testing.T) {
	rom := newTestROM(MBC1RAMBATT, 8, 0x03)
	rom[0x14A] = 0x01
	rom[0x14C] = 0x02
	rom[0x14E], rom[0x14F] = 0x12, 0x34
	rom[0x14D] = ComputeChecksum(rom)

	h, err := ParseHeader(rom)
	if err != nil {
		t.Fatal(err)
	}
	if h.Title != "TESTROM" {
		t.Errorf("expected title TESTROM, got %q", h.Title)
	}
	if h.ROMSize != 128*1024 || h.ROMBanks() != 8 {
		t.Errorf("expected 128kB ROM in 8 banks, got %d (%d banks)", h.ROMSize, h.ROMBanks())
	}
	if h.RAMSize != 32*1024 || h.RAMBanks() != 4 {
		t.Errorf("expected 32kB RAM in 4 banks, got %d (%d banks)", h.RAMSize, h.RAMBanks())
	}
	if h.Destination() != "Non-Japanese" {
		t.Errorf("expected Non-Japanese destination, got %s", h.Destination())
	}
	if h.MaskROMVersion != 2 {
		t.Errorf("expected version 2, got %d", h.MaskROMVersion)
	}
	if h.GlobalChecksum != 0x1234 {
		t.Errorf("expected global checksum 0x1234, got 0x%04X", h.GlobalChecksum)
	}
	if h.CartridgeType.String() != "MBC1+RAM+BATTERY" {
		t.Errorf("expected MBC1+RAM+BATTERY, got %s", h.CartridgeType)
	}
}

func TestNew_Types(t *testing.T) {
	for _, tt := range []struct {
		typ  Type
		name string
		want string
	}{
		{ROM, "ROM ONLY", "*cartridge.ROMCartridge"},
		{ROMRAM, "ROM+RAM", "*cartridge.ROMCartridge"},
		{MBC1, "MBC1", "*cartridge.MemoryBankedCartridge1"},
		{MBC1RAM, "MBC1+RAM", "*cartridge.MemoryBankedCartridge1"},
		{MBC2, "MBC2", "*cartridge.MemoryBankedCartridge2"},
		{MBC5RAMBATT, "MBC5+RAM+BATTERY", "*cartridge.MemoryBankedCartridge5"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(newTestROM(tt.typ, 4, 0x02))
			if err != nil {
				t.Fatal(err)
			}
			if c.Header().CartridgeType.String() != tt.name {
				t.Errorf("expected %s, got %s", tt.name, c.Header().CartridgeType)
			}
			if got := typeName(c); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}

	_, err := New(newTestROM(MBC3, 4, 0))
	var unsupported *UnsupportedTypeError
	if !errors.As(err, &unsupported) || unsupported.Type != MBC3 {
		t.Errorf("expected unsupported type error for MBC3, got %v", err)
	}
}

func typeName(c Cartridge) string {
	switch c.(type) {
	case *ROMCartridge:
		return "*cartridge.ROMCartridge"
	case *MemoryBankedCartridge1:
		return "*cartridge.MemoryBankedCartridge1"
	case *MemoryBankedCartridge2:
		return "*cartridge.MemoryBankedCartridge2"
	case *MemoryBankedCartridge5:
		return "*cartridge.MemoryBankedCartridge5"
	}
	return "unknown"
}

func TestROMCartridge(t *testing.T) {
	c, err := New(newTestROM(ROM, 2, 0))
	if err != nil {
		t.Fatal(err)
	}
	c.Write(0x2000, 0x05)
	if c.Read(0x4000) != 1 {
		t.Errorf("expected ROM only cartridge to ignore bank writes, got bank %d", c.Read(0x4000))
	}
	c.Write(0xA000, 0x42)
	if c.Read(0xA000) != 0xFF {
		t.Errorf("expected missing RAM to read 0xFF, got 0x%02X", c.Read(0xA000))
	}
}

func TestMemoryBankedCartridge1(t *testing.T) {
	newMBC1 := func(t *testing.T) *MemoryBankedCartridge1 {
		c, err := New(newTestROM(MBC1RAM, 128, 0x03))
		if err != nil {
			t.Fatal(err)
		}
		return c.(*MemoryBankedCartridge1)
	}

	t.Run("bank 0 is fixed", func(t *testing.T) {
		m := newMBC1(t)
		m.Write(0x2000, 0x05)
		if m.Read(0x0000) != 0 || m.Read(0x3FFF) != 0 {
			t.Errorf("expected bank 0 in 0x0000-0x3FFF")
		}
	})
	t.Run("bank 0 selects bank 1", func(t *testing.T) {
		m := newMBC1(t)
		m.Write(0x2000, 0x00)
		if m.Read(0x4000) != 1 {
			t.Errorf("expected bank 1, got %d", m.Read(0x4000))
		}
	})
	t.Run("bank select", func(t *testing.T) {
		m := newMBC1(t)
		for bank := uint8(1); bank < 0x20; bank++ {
			m.Write(0x2000, bank)
			if m.Read(0x4000) != bank || m.Read(0x7FFF) != bank {
				t.Errorf("expected bank %d, got %d", bank, m.Read(0x4000))
			}
		}
		// only the lower 5 bits are used
		m.Write(0x2000, 0xE3)
		if m.ROMBank() != 3 {
			t.Errorf("expected bank 3, got %d", m.ROMBank())
		}
	})
	t.Run("upper bits in rom banking mode", func(t *testing.T) {
		m := newMBC1(t)
		m.Write(0x2000, 0x02)
		m.Write(0x4000, 0x01)
		if m.Read(0x4000) != 0x22 {
			t.Errorf("expected bank 0x22, got 0x%02X", m.Read(0x4000))
		}
		if m.RAMBank() != 0 {
			t.Errorf("expected RAM bank 0 in ROM banking mode, got %d", m.RAMBank())
		}
	})
	t.Run("ram banking mode", func(t *testing.T) {
		m := newMBC1(t)
		m.Write(0x2000, 0x02)
		m.Write(0x4000, 0x03)
		m.Write(0x6000, 0x01)
		if m.Read(0x4000) != 0x02 {
			t.Errorf("expected bank 0x02, got 0x%02X", m.Read(0x4000))
		}
		if m.RAMBank() != 3 {
			t.Errorf("expected RAM bank 3, got %d", m.RAMBank())
		}
	})
	t.Run("ram enable", func(t *testing.T) {
		m := newMBC1(t)
		m.Write(0xA000, 0x42)
		if m.Read(0xA000) != 0xFF {
			t.Errorf("expected disabled RAM to read 0xFF, got 0x%02X", m.Read(0xA000))
		}
		for _, v := range []uint8{0x0A, 0x1A, 0xFA} {
			m.Write(0x0000, 0x00)
			m.Write(0x1FFF, v)
			if !m.RAMEnabled() {
				t.Errorf("expected 0x%02X to enable RAM", v)
			}
		}
		m.Write(0xA000, 0x42)
		if m.Read(0xA000) != 0x42 {
			t.Errorf("expected 0x42, got 0x%02X", m.Read(0xA000))
		}
		m.Write(0x0000, 0x00)
		if m.Read(0xA000) != 0xFF {
			t.Errorf("expected disabled RAM to read 0xFF, got 0x%02X", m.Read(0xA000))
		}
	})
	t.Run("ram banks", func(t *testing.T) {
		m := newMBC1(t)
		m.Write(0x0000, 0x0A)
		m.Write(0x6000, 0x01)
		for bank := uint8(0); bank < 4; bank++ {
			m.Write(0x4000, bank)
			m.Write(0xB000, bank+0x10)
		}
		for bank := uint8(0); bank < 4; bank++ {
			m.Write(0x4000, bank)
			if m.Read(0xB000) != bank+0x10 {
				t.Errorf("expected 0x%02X in RAM bank %d, got 0x%02X", bank+0x10, bank, m.Read(0xB000))
			}
		}
	})
	t.Run("bank wraps", func(t *testing.T) {
		c, err := New(newTestROM(MBC1, 4, 0))
		if err != nil {
			t.Fatal(err)
		}
		c.Write(0x2000, 0x05)
		if c.Read(0x4000) != 1 {
			t.Errorf("expected bank 5 to wrap to 1, got %d", c.Read(0x4000))
		}
	})
}

func TestMemoryBankedCartridge2(t *testing.T) {
	c, err := New(newTestROM(MBC2, 16, 0))
	if err != nil {
		t.Fatal(err)
	}
	c.Write(0x2100, 0x07)
	if c.Read(0x4000) != 7 {
		t.Errorf("expected bank 7, got %d", c.Read(0x4000))
	}
	c.Write(0x2100, 0x00)
	if c.Read(0x4000) != 1 {
		t.Errorf("expected bank 0 to select bank 1, got %d", c.Read(0x4000))
	}
	c.Write(0x0000, 0x0A)
	c.Write(0xA000, 0xAB)
	if c.Read(0xA000) != 0xFB {
		t.Errorf("expected 0xFB, got 0x%02X", c.Read(0xA000))
	}
	if c.Read(0xA200) != 0xFB {
		t.Errorf("expected RAM to be mirrored, got 0x%02X", c.Read(0xA200))
	}
}

func TestMemoryBankedCartridge5(t *testing.T) {
	c, err := New(newTestROM(MBC5RAM, 4, 0x03))
	if err != nil {
		t.Fatal(err)
	}
	c.Write(0x2000, 0x00)
	if c.Read(0x4000) != 0 {
		t.Errorf("expected MBC5 to map bank 0, got %d", c.Read(0x4000))
	}
	c.Write(0x2000, 0x03)
	if c.Read(0x4000) != 3 {
		t.Errorf("expected bank 3, got %d", c.Read(0x4000))
	}
	c.Write(0x0000, 0x0A)
	c.Write(0x4000, 0x02)
	c.Write(0xA000, 0x99)
	c.Write(0x4000, 0x00)
	if c.Read(0xA000) == 0x99 {
		t.Errorf("expected RAM bank 0 to differ from bank 2")
	}
	c.Write(0x4000, 0x02)
	if c.Read(0xA000) != 0x99 {
		t.Errorf("expected 0x99 in RAM bank 2, got 0x%02X", c.Read(0xA000))
	}
}
