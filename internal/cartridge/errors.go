package cartridge

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidLogo is returned when the logo at 0x0104 - 0x0133
	// does not match the one the boot ROM expects.
	ErrInvalidLogo = errors.New("cartridge: invalid logo")
	// ErrChecksum is returned when the header checksum at 0x014D
	// does not match the computed checksum.
	ErrChecksum = errors.New("cartridge: header checksum mismatch")
	// ErrTooSmall is returned when the image is too small to hold
	// a header and the first two ROM banks.
	ErrTooSmall = errors.New("cartridge: image too small")
)

// UnsupportedTypeError is returned when the cartridge type byte
// names a memory bank controller that is not emulated.
type UnsupportedTypeError struct {
	Type Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("cartridge: unsupported cartridge type %s", e.Type)
}
