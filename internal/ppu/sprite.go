package ppu

import "sort"

// maxSpritesPerLine is the number of sprites the OAM scan
// selects for a single line.
const maxSpritesPerLine = 10

// Sprite is a single entry of the OAM. X and Y are stored as
// written, offset by 8 and 16 respectively from the screen
// position.
type Sprite struct {
	Y      uint8
	X      uint8
	TileID uint8
	spriteAttributes

	// index is the position of the sprite in the OAM
	index uint8
}

// spriteAttributes represents the attributes of a sprite.
type spriteAttributes struct {
	// Bit 7 - OBJ-to-BG priority (0=OBJ Above BG, 1=OBJ Behind BG color 1-3)
	// (Used for both BG and Window. BG color 0 is always behind OBJ)
	behindBG bool
	// Bit 6 - Y flip          (0=Normal, 1=Vertically mirrored)
	flipY bool
	// Bit 5 - X flip          (0=Normal, 1=Horizontally mirrored)
	flipX bool
	// Bit 4 - Palette number  (0=OBP0, 1=OBP1)
	useSecondPalette bool

	// raw holds the attribute byte as written, bits 0-3 are
	// only used on the CGB but still read back.
	raw uint8
}

// Update updates the sprite from a write to the given OAM offset.
func (s *Sprite) Update(offset uint16, value uint8) {
	switch offset % 4 {
	case 0:
		s.Y = value
	case 1:
		s.X = value
	case 2:
		s.TileID = value
	case 3:
		s.raw = value
		s.behindBG = value&0x80 != 0
		s.flipY = value&0x40 != 0
		s.flipX = value&0x20 != 0
		s.useSecondPalette = value&0x10 != 0
	}
}

// Read returns the byte of the sprite at the given OAM offset.
func (s *Sprite) Read(offset uint16) uint8 {
	switch offset % 4 {
	case 0:
		return s.Y
	case 1:
		return s.X
	case 2:
		return s.TileID
	}
	return s.raw
}

// Index returns the position of the sprite in the OAM.
func (s *Sprite) Index() uint8 {
	return s.index
}

// visibleOn returns true if the sprite covers the scanline.
func (s *Sprite) visibleOn(line uint8, height uint8) bool {
	top := int(s.Y) - 16
	return int(line) >= top && int(line) < top+int(height)
}

// spritesForLine performs the OAM scan for a line, selecting at
// most 10 sprites in OAM order, and returns them sorted by
// descending X, with ties broken by ascending OAM index.
func (o *OAM) spritesForLine(line uint8, height uint8) []*Sprite {
	sprites := make([]*Sprite, 0, maxSpritesPerLine)
	for i := range o.Sprites {
		if o.Sprites[i].visibleOn(line, height) {
			sprites = append(sprites, &o.Sprites[i])
			if len(sprites) == maxSpritesPerLine {
				break
			}
		}
	}

	sortSprites(sprites)
	return sprites
}

// sortSprites sorts sprites by descending X, ties broken by
// ascending OAM index.
func sortSprites(sprites []*Sprite) {
	sort.SliceStable(sprites, func(i, j int) bool {
		if sprites[i].X != sprites[j].X {
			return sprites[i].X > sprites[j].X
		}
		return sprites[i].index < sprites[j].index
	})
}
