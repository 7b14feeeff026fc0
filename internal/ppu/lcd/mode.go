package lcd

// Mode represents a mode of the LCD, as reported in bits 0-1
// of the status register.
type Mode = uint8

const (
	// HBlank is the horizontal blanking mode. The CPU can access both the display RAM and OAM.
	HBlank Mode = iota
	// VBlank is the vertical blanking mode. The CPU can access both the display RAM and OAM.
	VBlank
	// OAM is the OAM mode. The CPU can access the display RAM but not OAM.
	OAM
	// VRAM is the pixel transfer mode. The PPU is reading from both the
	// display RAM and OAM.
	VRAM
)

// ModeName returns a short name for the mode, used when logging.
func ModeName(m Mode) string {
	switch m {
	case HBlank:
		return "HBlank"
	case VBlank:
		return "VBlank"
	case OAM:
		return "OAM"
	case VRAM:
		return "VRAM"
	}
	return "unknown"
}
