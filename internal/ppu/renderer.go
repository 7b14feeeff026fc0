package ppu

// renderScanline draws the current line into the framebuffer,
// layering the background, the window and the sprites.
func (p *PPU) renderScanline() {
	if p.ly >= ScreenHeight {
		return
	}
	line := p.buffer[int(p.ly)*ScreenWidth : int(p.ly+1)*ScreenWidth]

	// colour indices of the background and window, sprites
	// flagged as behind the background only show over index 0
	var bgIndex [ScreenWidth]uint8

	// backdrop
	for x := range line {
		line[x] = p.scheme[0]
	}

	if p.BackgroundEnabled {
		p.renderBackground(line, &bgIndex)
		p.renderWindow(line, &bgIndex)
	}
	if p.SpriteEnabled {
		p.renderSprites(line, &bgIndex)
	}
}

// renderBackground draws the background layer, scrolled by
// SCX and SCY and wrapping around the 256x256 tile map.
func (p *PPU) renderBackground(line []uint32, bgIndex *[ScreenWidth]uint8) {
	y := p.ly + p.scy
	for x := uint8(0); x < ScreenWidth; x++ {
		px := x + p.scx
		colour := p.backgroundPixel(p.BackgroundTileMapAddress, px, y)
		bgIndex[x] = colour
		line[x] = p.bgp.GetColour(colour)
	}
}

// renderWindow draws the window layer, which is not scrolled and
// starts at WX-7, WY.
func (p *PPU) renderWindow(line []uint32, bgIndex *[ScreenWidth]uint8) {
	if !p.WindowEnabled || p.ly < p.wy || p.wx > 166 {
		return
	}
	start := int(p.wx) - 7
	for x := 0; x < ScreenWidth; x++ {
		if x < start {
			continue
		}
		colour := p.backgroundPixel(p.WindowTileMapAddress, uint8(x-start), p.windowLine)
		bgIndex[x] = colour
		line[x] = p.bgp.GetColour(colour)
	}
	p.windowLine++
}

// backgroundPixel returns the colour index of the pixel at x, y of
// the tile map starting at tileMap.
func (p *PPU) backgroundPixel(tileMap uint16, x, y uint8) uint8 {
	tileID := p.vRAM[tileMap-0x8000+uint16(y/8)*32+uint16(x/8)]
	address := p.TileAddress(tileID) + uint16(y%8)*2
	return p.tilePixel(address, 7-x%8)
}

// tilePixel decodes bit of the 2 bit per pixel tile row at address.
func (p *PPU) tilePixel(address uint16, bit uint8) uint8 {
	low := p.vRAM[address-0x8000] >> bit & 1
	high := p.vRAM[address-0x8000+1] >> bit & 1
	return high<<1 | low
}

// renderSprites draws the sprites selected for the current line. They
// are visited in descending X order, and a pixel already drawn by a
// sprite is only replaced by one further to the left, so that the
// sprite with the smaller X (or the lower OAM index on a tie) wins.
func (p *PPU) renderSprites(line []uint32, bgIndex *[ScreenWidth]uint8) {
	var owner [ScreenWidth]*Sprite

	height := p.SpriteSize
	for _, s := range p.oam.spritesForLine(p.ly, height) {
		row := p.ly - (s.Y - 16)
		if s.flipY {
			row = height - 1 - row
		}
		tile := s.TileID
		if height == 16 {
			tile &= 0xFE
		}
		address := 0x8000 + uint16(tile)*16 + uint16(row)*2

		pal := p.obp0
		if s.useSecondPalette {
			pal = p.obp1
		}

		for px := uint8(0); px < 8; px++ {
			x := int(s.X) - 8 + int(px)
			if x < 0 || x >= ScreenWidth {
				continue
			}
			bit := 7 - px
			if s.flipX {
				bit = px
			}
			colour := p.tilePixel(address, bit)
			if colour == 0 {
				continue // transparent
			}
			if o := owner[x]; o != nil && o.X <= s.X {
				continue
			}
			owner[x] = s
			if s.behindBG && bgIndex[x] != 0 {
				p.restoreBackground(line, bgIndex, x)
				continue
			}
			line[x] = pal.GetColour(colour)
		}
	}
}

// restoreBackground undoes a lower priority sprite pixel, for when the
// winning sprite is hidden behind the background.
func (p *PPU) restoreBackground(line []uint32, bgIndex *[ScreenWidth]uint8, x int) {
	line[x] = p.bgp.GetColour(bgIndex[x])
}
