// Package palette maps the 2-bit colour indices of the DMG to
// ARGB colours, and packs/unpacks the palette registers.
package palette

import "strings"

// Scheme holds the ARGB colour of each of the four shades,
// from lightest (0) to darkest (3).
type Scheme [4]uint32

const (
	// Greyscale is the default greyscale scheme.
	Greyscale = iota
	// Green is the green scheme which attempts to emulate
	// the original colour palette as it would have appeared
	// on the original Game Boy.
	Green
	// Red is a red scheme.
	Red
	// Yellow is a yellow scheme.
	Yellow
)

// Schemes is a list of all available schemes.
var Schemes = []Scheme{
	// Greyscale
	{0xFFFFFFFF, 0xFFDDDDDD, 0xFF808080, 0xFF000000},
	// Green
	{0xFF9BBC0F, 0xFF8BAC0F, 0xFF306230, 0xFF0F380F},
	// Red
	{0xFFFF0000, 0xFFCC0000, 0xFF770000, 0xFF000000},
	// Yellow
	{0xFFFFFF00, 0xFFCCCC00, 0xFF777700, 0xFF000000},
}

var schemeNames = map[string]int{
	"greyscale": Greyscale,
	"grayscale": Greyscale,
	"green":     Green,
	"red":       Red,
	"yellow":    Yellow,
}

// ByName returns the scheme with the given name.
func ByName(name string) (Scheme, bool) {
	i, ok := schemeNames[strings.ToLower(name)]
	if !ok {
		return Scheme{}, false
	}
	return Schemes[i], true
}

// Palette represents one of the palette registers (types.BGP,
// types.OBP0, types.OBP1). Each of the four colour indices selects
// one of the four shades, which is resolved to an ARGB colour.
//
//	Bit 7-6 - Shade for Color Number 3
//	Bit 5-4 - Shade for Color Number 2
//	Bit 3-2 - Shade for Color Number 1
//	Bit 1-0 - Shade for Color Number 0
type Palette struct {
	Shades  [4]uint8
	Colours [4]uint32
}

// ByteToPalette creates a new palette from a byte, using the
// given scheme to resolve the shades.
func ByteToPalette(b byte, scheme Scheme) Palette {
	var p Palette
	for i := 0; i < 4; i++ {
		p.Shades[i] = (b >> (i * 2)) & 0x03
		p.Colours[i] = scheme[p.Shades[i]]
	}
	return p
}

// ToByte packs the palette back into its register form.
func (p Palette) ToByte() byte {
	var b byte
	for i := 0; i < 4; i++ {
		b |= p.Shades[i] << (i * 2)
	}
	return b
}

// GetColour returns the ARGB colour of the colour index.
func (p Palette) GetColour(index uint8) uint32 {
	return p.Colours[index&0x03]
}
