// Package ppu provides the (P)ixel (P)rocessing (U)nit of the
// Game Boy. The PPU owns video RAM, object attribute memory and
// the LCD registers, and renders one scanline at a time into an
// ARGB framebuffer while stepping through the LCD modes.
package ppu

import (
	"github.com/thelolagemann/dmgcore/internal/interrupts"
	"github.com/thelolagemann/dmgcore/internal/ppu/lcd"
	"github.com/thelolagemann/dmgcore/internal/ppu/palette"
	"github.com/thelolagemann/dmgcore/internal/types"
)

const (
	// ScreenWidth is the width of the screen in pixels.
	ScreenWidth = 160
	// ScreenHeight is the height of the screen in pixels.
	ScreenHeight = 144
)

const (
	// ModeOAMDots (Mode 2) - OAM Scan
	//
	//	Duration: 80 dots (fixed)
	//	- STAT interrupt available if enabled via STAT.5
	//	- Occurs at start of each line
	ModeOAMDots = 80

	// ModeVRAMDots (Mode 3) - Pixel Transfer
	//
	//	Duration: 172-289 dots on hardware, fixed here
	//	- No STAT interrupts available
	//	- The scanline is rendered at the end of this mode
	ModeVRAMDots = 172

	// ModeHBlankDots (Mode 0) - Horizontal Blanking Period
	//
	//	Duration: the rest of the 456 dot line
	//	- STAT interrupt available if enabled via STAT.3
	ModeHBlankDots = LineDots - ModeOAMDots - ModeVRAMDots

	// LineDots is the length of a single scanline.
	LineDots = 456

	// FrameDots is the length of a full frame, 154 lines.
	FrameDots = LineDots * Lines

	// Lines is the number of scanlines, including the 10
	// lines of VBlank (Mode 1, LY 144 - 153).
	Lines = 154
)

// PPU implements the Game Boy's (P)ixel (P)rocessing (U)nit.
//
// References:
//   - [Pan Docs](https://gbdev.io/pandocs/Graphics.html)
type PPU struct {
	*lcd.Controller
	*lcd.Status

	// 0x8000 - 0x9FFF - Video RAM (8kB)
	vRAM [0x2000]uint8
	// 0xFE00 - 0xFE9F - Sprite Attribute Table (160B)
	oam *OAM

	// scroll & window registers
	scy, scx uint8
	wy, wx   uint8

	// current scanline (LY) and line compare (LYC)
	ly, lyc uint8
	// windowLine is the internal line counter of the window,
	// only advanced on lines the window was drawn on.
	windowLine uint8

	// dots counts the dots spent in the current mode
	dots uint16

	bgp, obp0, obp1 palette.Palette
	scheme          palette.Scheme

	// buffer is drawn into one scanline at a time, frame holds
	// the last completed frame.
	buffer     [ScreenWidth * ScreenHeight]uint32
	frame      [ScreenWidth * ScreenHeight]uint32
	frameReady bool
	frames     uint64

	irq interrupts.Requester
}

// New returns a new PPU with the LCD disabled, raising its
// interrupts through irq.
func New(irq interrupts.Requester) *PPU {
	p := &PPU{
		Controller: lcd.NewController(),
		Status:     lcd.NewStatus(),
		oam:        NewOAM(),
		scheme:     palette.Schemes[palette.Greyscale],
		irq:        irq,
	}
	p.bgp = palette.ByteToPalette(0xFC, p.scheme)
	p.obp0 = palette.ByteToPalette(0xFF, p.scheme)
	p.obp1 = palette.ByteToPalette(0xFF, p.scheme)
	p.clear()

	return p
}

// SetScheme changes the colours the four shades resolve to.
func (p *PPU) SetScheme(scheme palette.Scheme) {
	p.scheme = scheme
	p.bgp = palette.ByteToPalette(p.bgp.ToByte(), scheme)
	p.obp0 = palette.ByteToPalette(p.obp0.ToByte(), scheme)
	p.obp1 = palette.ByteToPalette(p.obp1.ToByte(), scheme)
}

// Read returns the value at the given address of VRAM, OAM or
// one of the LCD registers. Any other address reads 0xFF.
func (p *PPU) Read(address uint16) uint8 {
	switch {
	case address >= 0x8000 && address <= 0x9FFF:
		return p.vRAM[address-0x8000]
	case address >= 0xFE00 && address <= 0xFE9F:
		return p.oam.Read(address - 0xFE00)
	}

	switch address {
	case types.LCDC:
		return p.Controller.Read(address)
	case types.STAT:
		return p.Status.Read(address)
	case types.SCY:
		return p.scy
	case types.SCX:
		return p.scx
	case types.LY:
		return p.ly
	case types.LYC:
		return p.lyc
	case types.BGP:
		return p.bgp.ToByte()
	case types.OBP0:
		return p.obp0.ToByte()
	case types.OBP1:
		return p.obp1.ToByte()
	case types.WY:
		return p.wy
	case types.WX:
		return p.wx
	}

	return 0xFF
}

// Write writes the value to the given address of VRAM, OAM or
// one of the LCD registers. Writes to any other address, or to
// the read only LY register, are ignored.
func (p *PPU) Write(address uint16, value uint8) {
	switch {
	case address >= 0x8000 && address <= 0x9FFF:
		p.vRAM[address-0x8000] = value
		return
	case address >= 0xFE00 && address <= 0xFE9F:
		p.oam.Write(address-0xFE00, value)
		return
	}

	switch address {
	case types.LCDC:
		wasEnabled := p.Enabled
		p.Controller.Write(address, value)
		if wasEnabled && !p.Enabled {
			p.disable()
		} else if !wasEnabled && p.Enabled {
			p.enable()
		}
	case types.STAT:
		p.Status.Write(address, value)
	case types.SCY:
		p.scy = value
	case types.SCX:
		p.scx = value
	case types.LYC:
		p.lyc = value
		if p.Enabled {
			p.checkCoincidence()
		}
	case types.BGP:
		p.bgp = palette.ByteToPalette(value, p.scheme)
	case types.OBP0:
		p.obp0 = palette.ByteToPalette(value, p.scheme)
	case types.OBP1:
		p.obp1 = palette.ByteToPalette(value, p.scheme)
	case types.WY:
		p.wy = value
	case types.WX:
		p.wx = value
	}
}

// Step advances the PPU by the given number of clock cycles,
// moving through the LCD modes:
//
//	OAM (80) -> VRAM (172) -> HBlank (204)  lines 0 - 143
//	VBlank (456)                            lines 144 - 153
func (p *PPU) Step(cycles uint8) {
	if !p.Enabled {
		return
	}
	p.dots += uint16(cycles)

	for {
		switch p.Mode {
		case lcd.OAM:
			if p.dots < ModeOAMDots {
				return
			}
			p.dots -= ModeOAMDots
			p.setMode(lcd.VRAM)
		case lcd.VRAM:
			if p.dots < ModeVRAMDots {
				return
			}
			p.dots -= ModeVRAMDots
			p.renderScanline()
			p.setMode(lcd.HBlank)
		case lcd.HBlank:
			if p.dots < ModeHBlankDots {
				return
			}
			p.dots -= ModeHBlankDots
			p.ly++
			if p.ly == ScreenHeight {
				p.setMode(lcd.VBlank)
				p.irq.Request(interrupts.VBlankFlag)
				p.finishFrame()
			} else {
				p.setMode(lcd.OAM)
			}
			p.checkCoincidence()
		case lcd.VBlank:
			if p.dots < LineDots {
				return
			}
			p.dots -= LineDots
			p.ly++
			if p.ly == Lines {
				p.ly = 0
				p.windowLine = 0
				p.setMode(lcd.OAM)
			}
			p.checkCoincidence()
		}
	}
}

// setMode changes the current mode, requesting a STAT interrupt
// if the source for the new mode is enabled.
func (p *PPU) setMode(mode lcd.Mode) {
	p.Mode = mode
	if p.ModeInterrupt(mode) {
		p.irq.Request(interrupts.LCDFlag)
	}
}

// checkCoincidence compares LY against LYC, requesting a STAT
// interrupt when they start to match and the source is enabled.
func (p *PPU) checkCoincidence() {
	was := p.Coincidence
	p.Coincidence = p.ly == p.lyc
	if p.Coincidence && !was && p.CoincidenceInterrupt {
		p.irq.Request(interrupts.LCDFlag)
	}
}

// enable restarts the LCD at the beginning of line 0.
func (p *PPU) enable() {
	p.ly = 0
	p.dots = 0
	p.windowLine = 0
	p.Mode = lcd.OAM
	p.checkCoincidence()
}

// disable turns the LCD off, which blanks the screen and resets LY.
func (p *PPU) disable() {
	p.ly = 0
	p.dots = 0
	p.Mode = lcd.HBlank
	p.clear()
	p.frame = p.buffer
	p.frameReady = true
}

// clear fills the framebuffer with the lightest shade.
func (p *PPU) clear() {
	for i := range p.buffer {
		p.buffer[i] = p.scheme[0]
	}
}

// finishFrame publishes the framebuffer once all visible lines
// have been drawn.
func (p *PPU) finishFrame() {
	p.frame = p.buffer
	p.frameReady = true
	p.frames++
}

// HasFrame returns true if a frame has been completed since the
// last call to Frame.
func (p *PPU) HasFrame() bool {
	return p.frameReady
}

// Frame returns a copy of the last completed frame, as 160x144
// ARGB pixels in row major order.
func (p *PPU) Frame() []uint32 {
	p.frameReady = false
	out := make([]uint32, len(p.frame))
	copy(out, p.frame[:])
	return out
}

// Frames returns the number of frames completed since power on.
func (p *PPU) Frames() uint64 {
	return p.frames
}

// LY returns the current scanline.
func (p *PPU) LY() uint8 {
	return p.ly
}

// Dots returns the dots spent in the current mode.
func (p *PPU) Dots() uint16 {
	return p.dots
}

var _ types.Peripheral = (*PPU)(nil)
var _ types.Device = (*PPU)(nil)
