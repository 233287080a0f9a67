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

package ppu_test

import (
	"testing"

	"github.com/gopherboy/gopherboy/hardware/memory/addresses"
	"github.com/gopherboy/gopherboy/hardware/ppu"
	"github.com/gopherboy/gopherboy/test"
)

type mockBus struct {
	internal [0x10000]uint8
}

func (mem *mockBus) ChipRead(reg uint16) uint8 { return mem.internal[reg] }
func (mem *mockBus) ChipWrite(reg uint16, data uint8) { mem.internal[reg] = data }
func (mem *mockBus) ChipHasChanged(reg uint16) bool { return false }

func (mem *mockBus) VRAM() []uint8 {
	return mem.internal[addresses.VRAM : addresses.VRAMEnd+1]
}

func (mem *mockBus) OAM() []uint8 {
	return mem.internal[addresses.OAM : addresses.OAMEnd+1]
}

var grey, _ = ppu.PaletteByName("grey")

func newPPU(mem *mockBus, lcdc uint8) *ppu.PPU {
	mem.internal[addresses.LCDC] = lcdc
	mem.internal[addresses.BGP] = 0xe4
	mem.internal[addresses.OBP0] = 0xe4
	p := ppu.NewPPU(grey)
	p.Reset(mem)
	p.Sync(mem)
	return p
}

func TestPalettes(t *testing.T) {
	_, err := ppu.PaletteByName("dmg")
	test.ExpectSuccess(t, err)
	_, err = ppu.PaletteByName("sepia")
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, len(ppu.PaletteNames()), 4)
	test.ExpectEquality(t, ppu.PaletteNames()[0], "DMG")
}

func TestModes(t *testing.T) {
	mem := &mockBus{}
	p := newPPU(mem, 0x91)

	test.ExpectEquality(t, p.Mode(), ppu.OAMScan)
	p.Step(mem, ppu.OAMScanCycles-1)
	test.ExpectEquality(t, p.Mode(), ppu.OAMScan)
	p.Step(mem, 1)
	test.ExpectEquality(t, p.Mode(), ppu.Transfer)
	test.ExpectEquality(t, mem.internal[addresses.STAT]&0x03, uint8(ppu.Transfer))
	p.Step(mem, ppu.TransferCycles)
	test.ExpectEquality(t, p.Mode(), ppu.HBlank)
	p.Step(mem, ppu.HBlankCycles)
	test.ExpectEquality(t, p.Mode(), ppu.OAMScan)
	test.ExpectEquality(t, mem.internal[addresses.LY], uint8(1))
}

func TestFrame(t *testing.T) {
	mem := &mockBus{}
	p := newPPU(mem, 0x91)

	p.Step(mem, ppu.ScanlineCycles*ppu.VBlankLine-1)
	test.ExpectEquality(t, mem.internal[addresses.IF], uint8(0x00))
	test.ExpectEquality(t, p.Frames(), 0)

	p.Step(mem, 1)
	test.ExpectEquality(t, p.LY(), uint8(ppu.VBlankLine))
	test.ExpectEquality(t, p.Mode(), ppu.VBlank)
	test.ExpectEquality(t, mem.internal[addresses.IF], uint8(0x01))
	test.ExpectEquality(t, p.Frames(), 1)

	p.Step(mem, ppu.ScanlineCycles*(ppu.Lines-ppu.VBlankLine))
	test.ExpectEquality(t, p.LY(), uint8(0))
	test.ExpectEquality(t, p.Mode(), ppu.OAMScan)

	// a complete frame returns to the same point
	p.Step(mem, ppu.FrameCycles)
	test.ExpectEquality(t, p.LY(), uint8(0))
	test.ExpectEquality(t, p.Frames(), 2)
}

func TestSTATInterrupt(t *testing.T) {
	mem := &mockBus{}
	p := newPPU(mem, 0x91)

	mem.internal[addresses.LYC] = 2
	mem.internal[addresses.STAT] = 0x40
	p.Sync(mem)

	p.Step(mem, ppu.ScanlineCycles*2-1)
	test.ExpectEquality(t, mem.internal[addresses.IF], uint8(0x00))
	p.Step(mem, 1)
	test.ExpectEquality(t, mem.internal[addresses.IF], uint8(0x02))
	test.ExpectEquality(t, mem.internal[addresses.STAT]&0x04, uint8(0x04))

	// the line stays high for the rest of the scanline and so the interrupt
	// is not requested again
	mem.internal[addresses.IF] = 0
	p.Step(mem, ppu.ScanlineCycles-1)
	test.ExpectEquality(t, mem.internal[addresses.IF], uint8(0x00))
}

func TestLCDOnOff(t *testing.T) {
	mem := &mockBus{}
	p := newPPU(mem, 0x00)

	test.ExpectFailure(t, p.Enabled())
	p.Step(mem, 1000)
	test.ExpectEquality(t, p.LY(), uint8(0))

	mem.internal[addresses.LCDC] = 0x91
	p.Sync(mem)
	test.ExpectSuccess(t, p.ScreenTurnedOn())
	p.ClearScreenTurnedOn()
	test.ExpectFailure(t, p.ScreenTurnedOn())

	p.Step(mem, ppu.ScanlineCycles*5)
	test.ExpectEquality(t, p.LY(), uint8(5))

	mem.internal[addresses.LCDC] = 0x11
	p.Sync(mem)
	test.ExpectFailure(t, p.Enabled())
	test.ExpectFailure(t, p.ScreenTurnedOn())
	test.ExpectEquality(t, mem.internal[addresses.LY], uint8(0))
	test.ExpectEquality(t, mem.internal[addresses.STAT]&0x03, uint8(ppu.HBlank))
	test.ExpectEquality(t, p.FrameBuffer().Pixel(80, 72), grey[0])
}

func TestBackgroundAndSprite(t *testing.T) {
	mem := &mockBus{}

	// tile 1 is solid colour 3. tile 2 is solid colour 1
	for row := range 8 {
		mem.internal[addresses.VRAM+16+row*2] = 0xff
		mem.internal[addresses.VRAM+16+row*2+1] = 0xff
		mem.internal[addresses.VRAM+32+row*2] = 0xff
	}

	// the top-left tile of the background map is tile 1
	mem.internal[addresses.VRAM+0x1800] = 1

	// sprite 0 at screen position 20,0 using tile 2
	mem.internal[addresses.OAM+0] = 16
	mem.internal[addresses.OAM+1] = 28
	mem.internal[addresses.OAM+2] = 2

	p := newPPU(mem, 0x93)
	p.Step(mem, ppu.FrameCycles)

	fb := p.FrameBuffer()
	test.ExpectEquality(t, fb.Pixel(0, 0), grey[3])
	test.ExpectEquality(t, fb.Pixel(7, 7), grey[3])
	test.ExpectEquality(t, fb.Pixel(8, 0), grey[0])
	test.ExpectEquality(t, fb.Pixel(0, 8), grey[0])
	test.ExpectEquality(t, fb.Pixel(20, 0), grey[1])
	test.ExpectEquality(t, fb.Pixel(27, 7), grey[1])
	test.ExpectEquality(t, fb.Pixel(28, 0), grey[0])
	test.ExpectEquality(t, fb.Pixel(20, 8), grey[0])

	img := fb.Image()
	test.ExpectEquality(t, img.Bounds().Dx(), ppu.Width)
	test.ExpectEquality(t, img.RGBAAt(0, 0).R, uint8(0x00))
}
