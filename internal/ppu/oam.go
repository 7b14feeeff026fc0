package ppu

// OAM (Object Attribute Memory) is the memory used to store the
// attributes of the sprites. It is 160 bytes long and is located at
// 0xFE00-0xFE9F in the memory map. It is divided in 40 entries of 4 bytes
// each, each entry representing a sprite.
type OAM struct {
	Sprites [40]Sprite // 40 sprites
}

func NewOAM() *OAM {
	o := &OAM{}
	for i := range o.Sprites {
		o.Sprites[i].index = uint8(i)
	}
	return o
}

// Read returns the value at the given offset into OAM.
func (o *OAM) Read(offset uint16) uint8 {
	return o.Sprites[offset>>2].Read(offset)
}

// Write writes the given value at the given offset into OAM.
func (o *OAM) Write(offset uint16, value uint8) {
	o.Sprites[offset>>2].Update(offset, value)
}
