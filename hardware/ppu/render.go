// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package ppu

import "slices"

// offsets into VRAM
const (
	tileMap0 = 0x1800
	tileMap1 = 0x1c00
)

// sprite attribute bits
const (
	attrPalette  = 0x10
	attrFlipX    = 0x20
	attrFlipY    = 0x40
	attrPriority = 0x80
)

// the hardware draws no more than ten sprites on a single line
const maxSpritesPerLine = 10

type sprite struct {
	y     int
	x     int
	tile  uint8
	attr  uint8
	index int
}

// tileRow returns the two bytes making up a row of a background or window
// tile. The addressing mode is selected by LCDC bit 4.
func (ppu *PPU) tileRow(vram []uint8, tile uint8, row int) (uint8, uint8) {
	var addr int
	if ppu.lcdc&lcdcTileData == lcdcTileData {
		addr = int(tile) * 16
	} else {
		addr = 0x1000 + int(int8(tile))*16
	}
	addr += row * 2
	return vram[addr], vram[addr+1]
}

// colourIndex returns the two bit colour index for the pixel at bit in the
// tile row. Bit 7 is the left-most pixel.
func colourIndex(lo, hi uint8, bit int) uint8 {
	return (hi>>bit)&0x01<<1 | (lo>>bit)&0x01
}

// shade applies a palette register to a colour index.
func (ppu *PPU) shade(reg uint8, idx uint8) uint32 {
	return ppu.palette[(reg>>(idx*2))&0x03]
}

func (ppu *PPU) renderLine(vram []uint8, oam []uint8) {
	line := ppu.back[int(ppu.ly)*Width : (int(ppu.ly)+1)*Width]

	if ppu.lcdc&lcdcBackground == lcdcBackground {
		ppu.renderBackground(vram, line)
		ppu.renderWindow(vram, line)
	} else {
		clear(ppu.bgIndex[:])
		for x := range line {
			line[x] = ppu.palette[0]
		}
	}

	if ppu.lcdc&lcdcSprites == lcdcSprites {
		ppu.renderSprites(vram, oam, line)
	}
}

func (ppu *PPU) renderBackground(vram []uint8, line []uint32) {
	base := tileMap0
	if ppu.lcdc&lcdcBGMap == lcdcBGMap {
		base = tileMap1
	}

	y := int(ppu.ly + ppu.scy)
	for x := range Width {
		px := int(uint8(x) + ppu.scx)
		tile := vram[base+(y/8)*32+px/8]
		lo, hi := ppu.tileRow(vram, tile, y%8)
		idx := colourIndex(lo, hi, 7-px%8)
		ppu.bgIndex[x] = idx
		line[x] = ppu.shade(ppu.bgp, idx)
	}
}

func (ppu *PPU) renderWindow(vram []uint8, line []uint32) {
	if ppu.lcdc&lcdcWindow != lcdcWindow || ppu.ly < ppu.wy || ppu.wx > 166 {
		return
	}

	base := tileMap0
	if ppu.lcdc&lcdcWindowMap == lcdcWindowMap {
		base = tileMap1
	}

	y := ppu.windowLine
	start := max(int(ppu.wx)-7, 0)
	for x := start; x < Width; x++ {
		wx := x - (int(ppu.wx) - 7)
		tile := vram[base+(y/8)*32+wx/8]
		lo, hi := ppu.tileRow(vram, tile, y%8)
		idx := colourIndex(lo, hi, 7-wx%8)
		ppu.bgIndex[x] = idx
		line[x] = ppu.shade(ppu.bgp, idx)
	}

	ppu.windowLine++
}

func (ppu *PPU) renderSprites(vram []uint8, oam []uint8, line []uint32) {
	height := 8
	if ppu.lcdc&lcdcTallSprites == lcdcTallSprites {
		height = 16
	}

	// select the first ten sprites in OAM that cover this line
	ly := int(ppu.ly)
	visible := make([]sprite, 0, maxSpritesPerLine)
	for i := 0; i < len(oam) && len(visible) < maxSpritesPerLine; i += 4 {
		s := sprite{
			y:     int(oam[i]) - 16,
			x:     int(oam[i+1]) - 8,
			tile:  oam[i+2],
			attr:  oam[i+3],
			index: i / 4,
		}
		if ly >= s.y && ly < s.y+height {
			visible = append(visible, s)
		}
	}

	// sprites with a lower x coordinate have priority. sprites with the same
	// x coordinate are ordered by their position in OAM. the sort is stable
	// and so the second condition is met automatically
	slices.SortStableFunc(visible, func(a, b sprite) int {
		return a.x - b.x
	})

	// draw in reverse order of priority so that higher priority sprites are
	// drawn over lower priority sprites
	for _, s := range slices.Backward(visible) {
		row := ly - s.y
		if s.attr&attrFlipY == attrFlipY {
			row = height - 1 - row
		}

		tile := s.tile
		if height == 16 {
			tile &^= 0x01
		}
		addr := int(tile)*16 + row*2
		lo, hi := vram[addr], vram[addr+1]

		pal := ppu.obp0
		if s.attr&attrPalette == attrPalette {
			pal = ppu.obp1
		}

		for i := range 8 {
			x := s.x + i
			if x < 0 || x >= Width {
				continue
			}

			bit := 7 - i
			if s.attr&attrFlipX == attrFlipX {
				bit = i
			}

			idx := colourIndex(lo, hi, bit)
			if idx == 0 {
				continue
			}
			if s.attr&attrPriority == attrPriority && ppu.bgIndex[x] != 0 {
				continue
			}
			line[x] = ppu.shade(pal, idx)
		}
	}
}
