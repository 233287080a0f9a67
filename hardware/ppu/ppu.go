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

import (
	"fmt"

	"github.com/gopherboy/gopherboy/hardware/interrupts"
	"github.com/gopherboy/gopherboy/hardware/memory/addresses"
	"github.com/gopherboy/gopherboy/hardware/memory/chipbus"
)

// Timing of the PPU in M-cycles.
const (
	ScanlineCycles = 114
	OAMScanCycles  = 20
	TransferCycles = 43
	HBlankCycles   = 51

	Lines      = 154
	VBlankLine = Height

	FrameCycles = ScanlineCycles * Lines
)

// Mode is the value of the lower two bits of the STAT register.
type Mode uint8

// List of valid Mode values.
const (
	HBlank Mode = iota
	VBlank
	OAMScan
	Transfer
)

func (m Mode) String() string {
	switch m {
	case HBlank:
		return "HBlank"
	case VBlank:
		return "VBlank"
	case OAMScan:
		return "OAM scan"
	case Transfer:
		return "Transfer"
	}
	return "unknown mode"
}

// LCDC bits.
const (
	lcdcBackground  = 0x01
	lcdcSprites     = 0x02
	lcdcTallSprites = 0x04
	lcdcBGMap       = 0x08
	lcdcTileData    = 0x10
	lcdcWindow      = 0x20
	lcdcWindowMap   = 0x40
	lcdcEnable      = 0x80
)

// STAT bits.
const (
	statMode       = 0x03
	statCoincident = 0x04
	statHBlank     = 0x08
	statVBlank     = 0x10
	statOAM        = 0x20
	statLYC        = 0x40
)

// Bus is the view of memory required by the PPU.
type Bus interface {
	chipbus.Memory
	VRAM() []uint8
	OAM() []uint8
}

// PPU implements the pixel processing unit.
type PPU struct {
	palette Palette

	lcdc uint8
	stat uint8
	scy  uint8
	scx  uint8
	lyc  uint8
	bgp  uint8
	obp0 uint8
	obp1 uint8
	wy   uint8
	wx   uint8

	ly   uint8
	mode Mode

	// M-cycles into the current scanline
	cycle int

	enabled  bool
	turnedOn bool

	// the internal line counter of the window. only advances on lines where
	// the window is drawn
	windowLine int

	// state of the STAT interrupt line. the interrupt is requested on the
	// rising edge
	statLine bool

	front FrameBuffer
	back  FrameBuffer

	// the background colour index of every pixel on the current line. used
	// for sprite priority
	bgIndex [Width]uint8

	frames int
}

// NewPPU is the preferred method of initialisation for the PPU type.
func NewPPU(palette Palette) *PPU {
	return &PPU{palette: palette}
}

func (ppu *PPU) String() string {
	return fmt.Sprintf("LY=%03d mode=%d cycle=%03d LCDC=%02x", ppu.ly, ppu.mode, ppu.cycle, ppu.lcdc)
}

// Reset the PPU. The LCD state is taken from the LCDC register on the bus.
func (ppu *PPU) Reset(mem chipbus.Memory) {
	ppu.lcdc = mem.ChipRead(addresses.LCDC)
	ppu.enabled = ppu.lcdc&lcdcEnable == lcdcEnable
	ppu.turnedOn = false
	ppu.ly = 0
	ppu.cycle = 0
	ppu.windowLine = 0
	ppu.statLine = false
	ppu.frames = 0
	if ppu.enabled {
		ppu.mode = OAMScan
	} else {
		ppu.mode = HBlank
	}
	ppu.front.Fill(ppu.palette[0])
	ppu.back.Fill(ppu.palette[0])
	ppu.writeBack(mem)
}

// SetPalette changes the colours used for new scanlines.
func (ppu *PPU) SetPalette(palette Palette) {
	ppu.palette = palette
}

// FrameBuffer returns the most recently completed frame.
func (ppu *PPU) FrameBuffer() *FrameBuffer {
	return &ppu.front
}

// Frames returns the number of frames completed since the last reset.
func (ppu *PPU) Frames() int {
	return ppu.frames
}

// LY returns the current scanline.
func (ppu *PPU) LY() uint8 {
	return ppu.ly
}

// Mode returns the current mode.
func (ppu *PPU) Mode() Mode {
	return ppu.mode
}

// Enabled returns true if the LCD is on.
func (ppu *PPU) Enabled() bool {
	return ppu.enabled
}

// ScreenTurnedOn returns true if the LCD was turned on during the current
// machine step.
func (ppu *PPU) ScreenTurnedOn() bool {
	return ppu.turnedOn
}

// ClearScreenTurnedOn acknowledges the LCD being turned on.
func (ppu *PPU) ClearScreenTurnedOn() {
	ppu.turnedOn = false
}

// Sync the PPU with the registers on the bus. Turning the LCD on or off
// takes effect immediately.
func (ppu *PPU) Sync(mem chipbus.Memory) {
	ppu.lcdc = mem.ChipRead(addresses.LCDC)
	ppu.stat = mem.ChipRead(addresses.STAT)
	ppu.scy = mem.ChipRead(addresses.SCY)
	ppu.scx = mem.ChipRead(addresses.SCX)
	ppu.lyc = mem.ChipRead(addresses.LYC)
	ppu.bgp = mem.ChipRead(addresses.BGP)
	ppu.obp0 = mem.ChipRead(addresses.OBP0)
	ppu.obp1 = mem.ChipRead(addresses.OBP1)
	ppu.wy = mem.ChipRead(addresses.WY)
	ppu.wx = mem.ChipRead(addresses.WX)

	on := ppu.lcdc&lcdcEnable == lcdcEnable
	if on == ppu.enabled {
		return
	}

	ppu.enabled = on
	ppu.ly = 0
	ppu.cycle = 0
	ppu.windowLine = 0
	ppu.statLine = false

	if on {
		ppu.turnedOn = true
		ppu.mode = OAMScan
	} else {
		ppu.mode = HBlank
		ppu.front.Fill(ppu.palette[0])
	}
	ppu.writeBack(mem)
}

// Step the PPU by the number of M-cycles.
func (ppu *PPU) Step(mem Bus, cycles int) {
	if !ppu.enabled {
		return
	}

	for range cycles {
		ppu.cycle++

		if ppu.ly < VBlankLine {
			switch ppu.cycle {
			case OAMScanCycles:
				ppu.mode = Transfer
				ppu.renderLine(mem.VRAM(), mem.OAM())
			case OAMScanCycles + TransferCycles:
				ppu.mode = HBlank
			}
		}

		if ppu.cycle >= ScanlineCycles {
			ppu.cycle = 0
			ppu.ly++

			switch {
			case ppu.ly == VBlankLine:
				ppu.mode = VBlank
				ppu.front = ppu.back
				ppu.frames++
				ppu.windowLine = 0
				interrupts.Request(mem, interrupts.VBlank)
			case ppu.ly >= Lines:
				ppu.ly = 0
				ppu.mode = OAMScan
			case ppu.ly < VBlankLine:
				ppu.mode = OAMScan
			}
		}

		ppu.updateStatLine(mem)
	}

	ppu.writeBack(mem)
}

// updateStatLine requests the STAT interrupt on the rising edge of the
// combined interrupt sources.
func (ppu *PPU) updateStatLine(mem chipbus.Memory) {
	line := (ppu.ly == ppu.lyc && ppu.stat&statLYC == statLYC) ||
		(ppu.mode == HBlank && ppu.stat&statHBlank == statHBlank) ||
		(ppu.mode == VBlank && ppu.stat&statVBlank == statVBlank) ||
		(ppu.mode == OAMScan && ppu.stat&statOAM == statOAM)

	if line && !ppu.statLine {
		interrupts.Request(mem, interrupts.LCDStat)
	}
	ppu.statLine = line
}

// writeBack updates LY and the read-only bits of STAT on the bus.
func (ppu *PPU) writeBack(mem chipbus.Memory) {
	stat := mem.ChipRead(addresses.STAT) &^ (statMode | statCoincident)
	stat |= uint8(ppu.mode)
	if ppu.ly == ppu.lyc {
		stat |= statCoincident
	}
	mem.ChipWrite(addresses.STAT, stat)
	mem.ChipWrite(addresses.LY, ppu.ly)
}
